package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a mutex-guarded map. Suited to tests and
// single-process deployments; sessions do not survive a restart, which is
// exactly the condition the stale-cookie repair path exists for.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Record

	ttl  time.Duration
	done chan struct{}
	once sync.Once
}

// NewMemoryStore creates an in-memory store. A positive ttl makes records
// expire that long after creation and starts a background sweep; ttl zero
// keeps records until they are deleted. Call Close when done to stop the
// sweep goroutine.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]Record),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	if ttl > 0 {
		go s.sweep(ttl)
	}
	return s
}

func (s *MemoryStore) Create(ctx context.Context, initial map[string]any) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Regenerate on collision so a returned identifier is never already
	// backing a live record.
	var id string
	for {
		var err error
		id, err = NewID()
		if err != nil {
			return Record{}, err
		}
		if _, taken := s.sessions[id]; !taken {
			break
		}
	}

	rec := newRecord(id, initial, s.ttl)
	s.sessions[id] = rec
	return rec.clone(), nil
}

func (s *MemoryStore) Load(ctx context.Context, id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	if rec.IsExpired() {
		delete(s.sessions, id)
		return Record{}, ErrNotFound
	}
	return rec.clone(), nil
}

func (s *MemoryStore) Mutate(ctx context.Context, id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[id]
	if !ok || rec.IsExpired() {
		delete(s.sessions, id)
		return ErrNotFound
	}

	rec = rec.clone()
	rec.Data[field] = value
	rec.UpdatedAt = time.Now()
	s.sessions[id] = rec
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sessions[id]
	return ok && !rec.IsExpired(), nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Len returns the number of live records, expired ones included until the
// next sweep touches them.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the background sweep. Safe to call more than once.
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *MemoryStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			for id, rec := range s.sessions {
				if rec.IsExpired() {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}
