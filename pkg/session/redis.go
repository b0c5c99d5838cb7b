package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Hash field layout: data fields carry a "d:" prefix so they can never
// collide with record metadata.
const (
	fieldCreated = "m:created"
	fieldUpdated = "m:updated"
	dataPrefix   = "d:"
)

// createScript claims the identifier, writes every field and arms the TTL in
// one atomic step, so a half-written record can never be observed or left
// behind. ARGV[1] is the TTL in milliseconds (0 disables expiry), the rest
// are field/value pairs. Returns 0 when the identifier is already taken.
var createScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
  return 0
end
redis.call("HSET", KEYS[1], unpack(ARGV, 2))
if tonumber(ARGV[1]) > 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return 1
`)

// mutateScript updates one field only when the record is still live, so a
// mutation can never resurrect a key that expiry just reclaimed.
var mutateScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
  return 0
end
redis.call("HSET", KEYS[1], ARGV[1], ARGV[2], ARGV[3], ARGV[4])
return 1
`)

// RedisStore keeps each session as a Redis hash, one hash field per data
// field, with values JSON-encoded. Expiry is a key-level TTL, so mutations
// keep the original deadline. Note that JSON round-tripping turns numeric
// data values into float64 on load.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

type RedisOption func(*RedisStore)

// WithKeyPrefix changes the key namespace, "session:" by default.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore creates a Redis-backed store. A positive ttl expires records
// that long after creation; zero keeps them until deleted.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Create(ctx context.Context, initial map[string]any) (Record, error) {
	for {
		id, err := NewID()
		if err != nil {
			return Record{}, err
		}

		rec := newRecord(id, initial, s.ttl)
		fields, err := encodeFields(rec)
		if err != nil {
			return Record{}, err
		}

		args := make([]any, 0, 3+len(fields))
		args = append(args, s.ttl.Milliseconds())
		args = append(args, fieldCreated, rec.CreatedAt.Format(time.RFC3339Nano))
		args = append(args, fields...)

		// A failed claim means a collision with a live record and a fresh
		// identifier is drawn.
		claimed, err := createScript.Run(ctx, s.client, []string{s.key(id)}, args...).Int()
		if err != nil {
			return Record{}, fmt.Errorf("session: persist record: %w", err)
		}
		if claimed == 0 {
			continue
		}

		return rec, nil
	}
}

func (s *RedisStore) Load(ctx context.Context, id string) (Record, error) {
	key := s.key(id)

	var (
		all  *redis.MapStringStringCmd
		pttl *redis.DurationCmd
	)
	if _, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		all = pipe.HGetAll(ctx, key)
		pttl = pipe.PTTL(ctx, key)
		return nil
	}); err != nil {
		return Record{}, fmt.Errorf("session: load record: %w", err)
	}

	raw := all.Val()
	if len(raw) == 0 {
		return Record{}, ErrNotFound
	}

	rec, err := decodeFields(id, raw)
	if err != nil {
		return Record{}, err
	}
	if d := pttl.Val(); d > 0 {
		rec.ExpiresAt = time.Now().Add(d)
	}
	return rec, nil
}

func (s *RedisStore) Mutate(ctx context.Context, id, field string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("session: encode field %q: %w", field, err)
	}

	n, err := mutateScript.Run(ctx, s.client, []string{s.key(id)},
		dataPrefix+field, string(raw),
		fieldUpdated, time.Now().Format(time.RFC3339Nano),
	).Int()
	if err != nil {
		return fmt.Errorf("session: mutate record: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("session: check record: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("session: delete record: %w", err)
	}
	return nil
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func encodeFields(rec Record) ([]any, error) {
	fields := make([]any, 0, 2+2*len(rec.Data))
	fields = append(fields, fieldUpdated, rec.UpdatedAt.Format(time.RFC3339Nano))
	for k, v := range rec.Data {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("session: encode field %q: %w", k, err)
		}
		fields = append(fields, dataPrefix+k, string(raw))
	}
	return fields, nil
}

func decodeFields(id string, raw map[string]string) (Record, error) {
	rec := Record{ID: id, Data: make(map[string]any)}
	for k, v := range raw {
		switch {
		case k == fieldCreated:
			rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, v)
		case k == fieldUpdated:
			rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, v)
		case strings.HasPrefix(k, dataPrefix):
			var val any
			if err := json.Unmarshal([]byte(v), &val); err != nil {
				return Record{}, fmt.Errorf("session: decode field %q: %w", k, err)
			}
			rec.Data[strings.TrimPrefix(k, dataPrefix)] = val
		}
	}
	return rec, nil
}
