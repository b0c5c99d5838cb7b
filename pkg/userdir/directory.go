package userdir

import "context"

// Directory is the read side of a user store. Implementations must be safe
// for concurrent use.
type Directory interface {
	// FindByUsername returns every record with the given username, in
	// directory order. No match yields an empty slice, not an error.
	FindByUsername(ctx context.Context, username string) ([]User, error)

	// FindByID returns the record for the identifier, or ErrNotFound.
	FindByID(ctx context.Context, id string) (User, error)
}
