package authkit

import "context"

// UserResolver materializes the user a session is bound to. A failed
// resolution, including "no such user", propagates to the caller unchanged:
// a live session pointing at a vanished user is a data inconsistency the
// authenticator does not paper over.
type UserResolver[User any] interface {
	Resolve(ctx context.Context, userID string) (User, error)
}
