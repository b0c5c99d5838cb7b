package authkit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/session"
)

// Authenticator runs the session cookie state machine for one request at a
// time: restore a user from a live session, establish a session from
// submitted credentials, or clear a cookie the store no longer recognizes.
//
// The zero value is not usable; construct with New. An Authenticator holds
// no per-request state and is safe for concurrent use.
type Authenticator[User any] struct {
	store    session.Store
	verifier CredentialVerifier[User]
	resolver UserResolver[User]
	jar      CookieJar
	cfg      Config
	log      *slog.Logger
}

// New wires an Authenticator from its three collaborators. Without
// WithCookieJar it uses an unsigned pkg/cookie jar; without WithLogger it
// stays silent.
func New[User any](
	store session.Store,
	verifier CredentialVerifier[User],
	resolver UserResolver[User],
	opts ...Option,
) (*Authenticator[User], error) {
	if store == nil {
		return nil, errors.New("authkit: nil session store")
	}
	if verifier == nil {
		return nil, errors.New("authkit: nil credential verifier")
	}
	if resolver == nil {
		return nil, errors.New("authkit: nil user resolver")
	}

	s, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Authenticator[User]{
		store:    store,
		verifier: verifier,
		resolver: resolver,
		jar:      s.jar,
		cfg:      s.cfg,
		log:      s.log.With(logger.Component("authkit")),
	}, nil
}

// Authenticate answers "who is making this request" and applies at most one
// cookie write to w, mirrored in the Outcome's Directive.
//
// A cookie referencing a session the store recognizes restores that user.
// A cookie the store does not recognize is stale: it is overwritten with a
// past expiry and the request proceeds anonymously, never as an error. With
// no cookie at all, the submitted form or query fields are checked as
// credentials; success creates a session bound to the user and sets the
// session cookie.
//
// Refused credentials surface in the Outcome as StatusRejected, not as an
// error. The error return is reserved for store, verifier, and resolver
// failures, which abort the pass with no state change beyond any cookie
// write already applied.
func (a *Authenticator[User]) Authenticate(ctx context.Context, w http.ResponseWriter, r *http.Request) (Outcome[User], error) {
	if token, ok := a.jar.ReadToken(r, a.cfg.CookieName); ok {
		return a.restore(ctx, w, token)
	}
	return a.login(ctx, w, r)
}

// restore maps a client-held token back to a user. The token is untrusted
// until the store recognizes it.
func (a *Authenticator[User]) restore(ctx context.Context, w http.ResponseWriter, token string) (Outcome[User], error) {
	rec, err := a.store.Load(ctx, token)
	if errors.Is(err, session.ErrNotFound) {
		directive, err := a.expireCookie(w)
		if err != nil {
			return Outcome[User]{}, err
		}
		a.log.DebugContext(ctx, "cleared stale session cookie", logger.SessionID(token))
		return Outcome[User]{Status: StatusAnonymous, Directive: directive}, nil
	}
	if err != nil {
		return Outcome[User]{}, fmt.Errorf("authkit: load session: %w", err)
	}

	uid, ok := rec.UserID()
	if !ok {
		return Outcome[User]{}, fmt.Errorf("%w: session %q", ErrSessionUnbound, rec.ID)
	}

	user, err := a.resolver.Resolve(ctx, uid)
	if err != nil {
		return Outcome[User]{}, fmt.Errorf("authkit: resolve user %q: %w", uid, err)
	}

	// The existing cookie still references a live session; leave it alone.
	return Outcome[User]{Status: StatusAuthenticated, User: user, Session: rec}, nil
}

// login checks submitted credentials and, on success, creates the session
// and issues its cookie.
func (a *Authenticator[User]) login(ctx context.Context, w http.ResponseWriter, r *http.Request) (Outcome[User], error) {
	uid, user, err := a.verifier.Verify(ctx, submittedFields(r))
	if err != nil {
		if IsRejection(err) {
			return Outcome[User]{Status: StatusRejected, Reason: rejectReason(err), Err: err}, nil
		}
		return Outcome[User]{}, fmt.Errorf("authkit: verify credentials: %w", err)
	}

	rec, err := a.store.Create(ctx, map[string]any{session.KeyUserID: uid})
	if err != nil {
		return Outcome[User]{}, fmt.Errorf("authkit: create session: %w", err)
	}

	if err := a.jar.SetToken(w, a.cfg.CookieName, rec.ID, a.cfg.CookiePath, a.cfg.CookieTTL); err != nil {
		return Outcome[User]{}, fmt.Errorf("authkit: write session cookie: %w", err)
	}

	a.log.InfoContext(ctx, "session established", logger.UserID(uid), logger.SessionID(rec.ID))

	return Outcome[User]{
		Status:  StatusAuthenticated,
		User:    user,
		Session: rec,
		Directive: &CookieDirective{
			Kind:  DirectiveSet,
			Name:  a.cfg.CookieName,
			Value: rec.ID,
			Path:  a.cfg.CookiePath,
			TTL:   a.cfg.CookieTTL,
		},
	}, nil
}

// Logout deletes the session referenced by the request's cookie, if any,
// and expires the cookie either way. Safe to call for anonymous requests.
func (a *Authenticator[User]) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if token, ok := a.jar.ReadToken(r, a.cfg.CookieName); ok {
		if err := a.store.Delete(ctx, token); err != nil {
			return fmt.Errorf("authkit: delete session: %w", err)
		}
		a.log.InfoContext(ctx, "session terminated", logger.SessionID(token))
	}
	if _, err := a.expireCookie(w); err != nil {
		return err
	}
	return nil
}

func (a *Authenticator[User]) expireCookie(w http.ResponseWriter) (*CookieDirective, error) {
	if err := a.jar.ExpireToken(w, a.cfg.CookieName, a.cfg.CookiePath); err != nil {
		return nil, fmt.Errorf("authkit: expire session cookie: %w", err)
	}
	return &CookieDirective{
		Kind: DirectiveExpire,
		Name: a.cfg.CookieName,
		Path: a.cfg.CookiePath,
	}, nil
}

// submittedFields merges query and form parameters, the two places login
// credentials arrive from.
func submittedFields(r *http.Request) url.Values {
	// A malformed body still leaves query parameters available.
	_ = r.ParseForm()
	return r.Form
}

func rejectReason(err error) string {
	if errors.Is(err, ErrMissingCredentials) {
		return "Missing username or password"
	}
	return "Bad username or password"
}
