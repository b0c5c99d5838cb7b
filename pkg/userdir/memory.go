package userdir

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryDirectory is a map-backed Directory, mainly for tests, examples and
// tools with a handful of fixed accounts. Lookups by username scan in
// insertion order, which keeps "first match wins" deterministic.
type MemoryDirectory struct {
	mu    sync.RWMutex
	byID  map[string]User
	order []string
}

// NewMemoryDirectory seeds a directory. Users without an ID get a fresh
// UUID assigned; a duplicate ID fails with ErrDuplicateID.
func NewMemoryDirectory(users ...User) (*MemoryDirectory, error) {
	d := &MemoryDirectory{
		byID: make(map[string]User, len(users)),
	}
	for _, u := range users {
		if _, err := d.Add(u); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Add inserts one user and returns it with its assigned ID.
func (d *MemoryDirectory) Add(u User) (User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if _, taken := d.byID[u.ID]; taken {
		return User{}, fmt.Errorf("%w: %q", ErrDuplicateID, u.ID)
	}

	d.byID[u.ID] = u
	d.order = append(d.order, u.ID)
	return u, nil
}

func (d *MemoryDirectory) FindByUsername(ctx context.Context, username string) ([]User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []User
	for _, id := range d.order {
		if u := d.byID[id]; u.Username == username {
			out = append(out, u)
		}
	}
	return out, nil
}

func (d *MemoryDirectory) FindByID(ctx context.Context, id string) (User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

// Len returns the number of seeded users.
func (d *MemoryDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byID)
}
