package session

import "context"

// Store persists session records keyed by identifier. Implementations must
// be safe for concurrent use; the only consistency the rest of the system
// relies on is that Create never hands out an identifier already backing a
// live record, and that Load and Mutate report ErrNotFound for identifiers
// they do not recognize — including ones an expiry policy has reclaimed.
type Store interface {
	// Create allocates a fresh identifier and persists a record seeded with
	// the given fields.
	Create(ctx context.Context, initial map[string]any) (Record, error)

	// Load returns the record for the identifier, or ErrNotFound when the
	// identifier is unknown or the record has expired.
	Load(ctx context.Context, id string) (Record, error)

	// Mutate updates a single data field of a live record. Fails with
	// ErrNotFound under the same conditions as Load.
	Mutate(ctx context.Context, id, field string, value any) error

	// Exists reports whether a live record backs the identifier.
	Exists(ctx context.Context, id string) (bool, error)

	// Delete removes the record. Deleting an unknown identifier is not an
	// error.
	Delete(ctx context.Context, id string) error
}
