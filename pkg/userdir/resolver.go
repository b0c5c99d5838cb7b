package userdir

import "context"

// Resolver materializes the user behind a session's stored identifier.
type Resolver struct {
	dir Directory
}

func NewResolver(dir Directory) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve returns the directory record for the identifier. ErrNotFound
// passes through untouched so callers can tell a vanished user from a
// directory outage.
func (r *Resolver) Resolve(ctx context.Context, id string) (User, error) {
	return r.dir.FindByID(ctx, id)
}
