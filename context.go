package authkit

import "context"

type outcomeKey struct{}

// WithOutcome stashes an authentication outcome on the context, normally
// done by Middleware.
func WithOutcome[User any](ctx context.Context, o Outcome[User]) context.Context {
	return context.WithValue(ctx, outcomeKey{}, o)
}

// OutcomeFromContext returns the outcome attached to the context. ok is
// false when the request never went through authentication, or went through
// an Authenticator of a different user type.
func OutcomeFromContext[User any](ctx context.Context) (Outcome[User], bool) {
	o, ok := ctx.Value(outcomeKey{}).(Outcome[User])
	return o, ok
}

// UserFromContext returns the authenticated user attached to the context.
// ok is false for anonymous and rejected requests.
func UserFromContext[User any](ctx context.Context) (User, bool) {
	o, ok := OutcomeFromContext[User](ctx)
	if !ok || !o.Authenticated() {
		var zero User
		return zero, false
	}
	return o.User, true
}
