package authkit

import (
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Middleware authenticates every request and passes the Outcome down via
// the request context, where OutcomeFromContext and UserFromContext read
// it. Anonymous and rejected requests still reach the next handler; pair
// with RequireUser for routes that need a user. Collaborator failures
// terminate the request with a 500.
func (a *Authenticator[User]) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		outcome, err := a.Authenticate(ctx, w, r)
		if err != nil {
			a.log.ErrorContext(ctx, "authentication pass failed", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithOutcome(ctx, outcome)))
	})
}

// RequireUser rejects requests that reached this point without an
// authenticated user. Mount it behind Middleware.
func (a *Authenticator[User]) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext[User](r.Context()); !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
