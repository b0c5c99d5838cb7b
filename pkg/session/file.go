package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore keeps one JSON document per session under a base directory.
// Writes go through a temp file plus rename (or link, for creation) so a
// concurrent reader never observes a torn record. Expired records are
// reclaimed lazily on access and in bulk by Cleanup.
type FileStore struct {
	dir string
	ttl time.Duration
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed. All records live directly under dir with 0600
// permissions. A positive ttl expires records that long after creation.
func NewFileStore(dir string, ttl time.Duration) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("session: file store directory is required")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("session: resolve directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return nil, fmt.Errorf("session: create directory: %w", err)
	}

	return &FileStore{dir: abs, ttl: ttl}, nil
}

// fileRecord is the on-disk envelope.
type fileRecord struct {
	ID        string         `json:"id"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

func (s *FileStore) Create(ctx context.Context, initial map[string]any) (Record, error) {
	for {
		id, err := NewID()
		if err != nil {
			return Record{}, err
		}

		rec := newRecord(id, initial, s.ttl)
		tmp, err := s.writeTemp(rec)
		if err != nil {
			return Record{}, err
		}

		// Link claims the identifier atomically: it fails with ErrExist when
		// another record already owns the name, in which case a fresh
		// identifier is drawn.
		linkErr := os.Link(tmp, s.path(id))
		_ = os.Remove(tmp)
		if linkErr == nil {
			return rec, nil
		}
		if !errors.Is(linkErr, fs.ErrExist) {
			return Record{}, fmt.Errorf("session: persist record: %w", linkErr)
		}
	}
}

func (s *FileStore) Load(ctx context.Context, id string) (Record, error) {
	if !validID(id) {
		return Record{}, ErrNotFound
	}

	raw, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("session: read record: %w", err)
	}

	var env fileRecord
	if err := json.Unmarshal(raw, &env); err != nil {
		return Record{}, fmt.Errorf("session: decode record %q: %w", id, err)
	}

	rec := env.record()
	if rec.IsExpired() {
		_ = os.Remove(s.path(id))
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (s *FileStore) Mutate(ctx context.Context, id, field string, value any) error {
	rec, err := s.Load(ctx, id)
	if err != nil {
		return err
	}

	rec.Data[field] = value
	rec.UpdatedAt = time.Now()

	tmp, err := s.writeTemp(rec)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path(id)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("session: persist record: %w", err)
	}
	return nil
}

func (s *FileStore) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.Load(ctx, id)
	switch {
	case errors.Is(err, ErrNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if err := os.Remove(s.path(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: delete record: %w", err)
	}
	return nil
}

// Cleanup removes every expired record and returns how many were reclaimed.
// Meant to be run periodically by the host, e.g. from a cron-style job.
func (s *FileStore) Cleanup(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("session: scan directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var env fileRecord
		if err := json.Unmarshal(raw, &env); err != nil {
			continue
		}
		if env.record().IsExpired() && os.Remove(path) == nil {
			removed++
		}
	}
	return removed, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *FileStore) writeTemp(rec Record) (string, error) {
	f, err := os.CreateTemp(s.dir, ".session-*")
	if err != nil {
		return "", fmt.Errorf("session: create temp file: %w", err)
	}

	env := fileRecord{
		ID:        rec.ID,
		Data:      rec.Data,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		ExpiresAt: rec.ExpiresAt,
	}
	if err := json.NewEncoder(f).Encode(env); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("session: encode record: %w", err)
	}
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("session: chmod record: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("session: close record: %w", err)
	}
	return f.Name(), nil
}

func (env fileRecord) record() Record {
	if env.Data == nil {
		env.Data = make(map[string]any)
	}
	return Record{
		ID:        env.ID,
		Data:      env.Data,
		CreatedAt: env.CreatedAt,
		UpdatedAt: env.UpdatedAt,
		ExpiresAt: env.ExpiresAt,
	}
}

// validID rejects anything that could escape the base directory. Generated
// identifiers only ever contain the base64 URL alphabet.
func validID(id string) bool {
	if id == "" {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
