// Package cookie implements the client-side half of cookie sessions: a Jar
// that reads the session token from an inbound request and writes the single
// outbound cookie mutation a request may produce.
//
// The Jar is deliberately narrow. It knows three operations:
//
//   - ReadToken: fetch the token by cookie name; malformed or badly signed
//     cookies are reported as absent, never as an error
//   - SetToken: write a fresh token, by default as a session-lifetime cookie
//   - ExpireToken: instruct the client to discard a stale cookie by writing
//     an empty value with an expiry in the past
//
// Tokens are written verbatim unless signing secrets are configured, in
// which case values are wrapped as base64(token) + "|" + base64(HMAC-SHA256)
// and verified against every configured secret on read, allowing secrets to
// be rotated without invalidating live sessions.
//
// Usage:
//
//	jar, err := cookie.NewJar(
//		cookie.WithSecure(true),
//		cookie.WithSigningSecrets(os.Getenv("COOKIE_SECRET")),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// on login
//	_ = jar.SetToken(w, "sessionid", token, "/", 0)
//
//	// on a later request
//	token, ok := jar.ReadToken(r, "sessionid")
package cookie
