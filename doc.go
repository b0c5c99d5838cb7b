// Package authkit implements session-cookie authentication for HTTP
// applications: it decides, per request, whether the caller already holds a
// valid session, restores the user when so, or establishes a new session
// after validating submitted credentials.
//
// The core is a small state machine around three pluggable collaborators:
// a session.Store keeps server-side session records, a CredentialVerifier
// checks login fields against a user directory, and a UserResolver maps a
// stored user id back to a full record. A CookieJar moves the session token
// between client and server. Defaults for all four live under pkg/.
//
// The machine emits at most one cookie write per request. A cookie that
// references a session the store has lost is repaired by expiring it on the
// client and letting the request proceed anonymously; refused credentials
// never touch cookie state and carry a displayable reason instead.
//
// # Usage
//
//	dir, _ := userdir.NewMemoryDirectory(userdir.User{
//		ID:       "42",
//		Username: "alice",
//		Password: "hunter2",
//	})
//
//	auth, err := authkit.New[userdir.User](
//		session.NewMemoryStore(time.Hour),
//		userdir.NewVerifier(dir),
//		userdir.NewResolver(dir),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.Handle("/", auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		if user, ok := authkit.UserFromContext[userdir.User](r.Context()); ok {
//			fmt.Fprintf(w, "hello, %s", user.Username)
//			return
//		}
//		fmt.Fprint(w, "hello, stranger")
//	})))
//
// Handlers that must only serve logged-in users wrap with RequireUser:
//
//	mux.Handle("/account", auth.Middleware(auth.RequireUser(accountHandler)))
//
// Outside middleware, call Authenticate directly to inspect the Outcome,
// including the cookie directive that was applied and the rejection reason
// to render on a login form.
package authkit
