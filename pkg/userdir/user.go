package userdir

// User is one directory entry. The Password field holds whatever the
// directory keeps in its password column — the plain secret for PlainMatch
// directories, a bcrypt hash for BcryptMatch ones. It never travels further
// than the verifier; sessions only ever carry the ID.
type User struct {
	ID       string
	Username string
	Password string
	Name     string
	Email    string
}
