package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"maps"
	"time"
)

// KeyUserID is the well-known Data key holding the authenticated user's
// identifier. Every record created through a login carries it.
const KeyUserID = "uid"

// Record is one server-side session. The ID is assigned at creation, never
// changes, and is the exact value encoded into the cookie that references
// the record. Stores hand out copies; mutating a returned Record does not
// affect the stored one — all persistent changes go through Store.Mutate.
type Record struct {
	ID        string
	Data      map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time // zero means the record does not expire
}

// UserID returns the user identifier bound to the session.
func (r Record) UserID() (string, bool) {
	v, ok := r.Data[KeyUserID]
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// Value returns an arbitrary data field.
func (r Record) Value(key string) (any, bool) {
	v, ok := r.Data[key]
	return v, ok
}

// StringValue returns a data field coerced to string.
func (r Record) StringValue(key string) (string, bool) {
	v, ok := r.Data[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// IsExpired reports whether the record's expiry stamp has passed. Records
// without a stamp never expire.
func (r Record) IsExpired() bool {
	return !r.ExpiresAt.IsZero() && time.Now().After(r.ExpiresAt)
}

// clone returns a copy whose Data map is independent of the original.
func (r Record) clone() Record {
	c := r
	c.Data = make(map[string]any, len(r.Data))
	maps.Copy(c.Data, r.Data)
	return c
}

// newRecord assembles a fresh record for the given identifier. A positive
// ttl fixes the expiry relative to the creation time; expiry never slides.
func newRecord(id string, initial map[string]any, ttl time.Duration) Record {
	now := time.Now()
	r := Record{
		ID:        id,
		Data:      make(map[string]any, len(initial)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	maps.Copy(r.Data, initial)
	if ttl > 0 {
		r.ExpiresAt = now.Add(ttl)
	}
	return r
}

// NewID returns a fresh session identifier: 32 bytes from crypto/rand,
// base64 raw-URL encoded. Collision handling is the store's job; the
// identifier space makes collisions a practical impossibility.
func NewID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: generate id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
