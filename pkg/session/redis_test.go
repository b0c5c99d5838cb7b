package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/session"
)

func newRedisStore(t *testing.T, ttl time.Duration, opts ...session.RedisOption) (*session.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return session.NewRedisStore(client, ttl, opts...), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := newRedisStore(t, 0)
	ctx := context.Background()

	rec, err := store.Create(ctx, map[string]any{
		session.KeyUserID: "42",
		"admin":           true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)

	got, err := store.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.False(t, got.CreatedAt.IsZero())

	uid, ok := got.UserID()
	assert.True(t, ok)
	assert.Equal(t, "42", uid)

	admin, ok := got.Value("admin")
	assert.True(t, ok)
	assert.Equal(t, true, admin)
}

func TestRedisStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("record lands fully formed", func(t *testing.T) {
		store, mr := newRedisStore(t, time.Hour)

		rec, err := store.Create(ctx, map[string]any{session.KeyUserID: "42"})
		require.NoError(t, err)

		// claim, data fields and expiry are one write, so the key is never
		// observable without its user binding
		key := "session:" + rec.ID
		require.True(t, mr.Exists(key))
		assert.Greater(t, mr.TTL(key), time.Duration(0))

		got, err := store.Load(ctx, rec.ID)
		require.NoError(t, err)
		uid, ok := got.UserID()
		require.True(t, ok)
		assert.Equal(t, "42", uid)
	})

	t.Run("zero ttl leaves the key without expiry", func(t *testing.T) {
		store, mr := newRedisStore(t, 0)

		rec, err := store.Create(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, mr.TTL("session:"+rec.ID))
	})
}

func TestRedisStore_Load(t *testing.T) {
	store, _ := newRedisStore(t, 0)
	ctx := context.Background()

	_, err := store.Load(ctx, "abc123")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisStore_Mutate(t *testing.T) {
	ctx := context.Background()

	t.Run("updates one field", func(t *testing.T) {
		store, _ := newRedisStore(t, 0)

		rec, err := store.Create(ctx, map[string]any{session.KeyUserID: "42"})
		require.NoError(t, err)

		require.NoError(t, store.Mutate(ctx, rec.ID, "theme", "dark"))

		got, err := store.Load(ctx, rec.ID)
		require.NoError(t, err)
		theme, _ := got.StringValue("theme")
		assert.Equal(t, "dark", theme)
		uid, _ := got.UserID()
		assert.Equal(t, "42", uid)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		store, _ := newRedisStore(t, 0)
		err := store.Mutate(ctx, "abc123", "theme", "dark")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("keeps the original expiry", func(t *testing.T) {
		store, mr := newRedisStore(t, time.Hour)

		rec, err := store.Create(ctx, nil)
		require.NoError(t, err)

		mr.FastForward(30 * time.Minute)
		require.NoError(t, store.Mutate(ctx, rec.ID, "theme", "dark"))

		// the mutation must not have pushed the deadline out
		mr.FastForward(31 * time.Minute)
		_, err = store.Load(ctx, rec.ID)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	rec, err := store.Create(ctx, map[string]any{session.KeyUserID: "42"})
	require.NoError(t, err)
	assert.False(t, rec.ExpiresAt.IsZero())

	got, err := store.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.False(t, got.ExpiresAt.IsZero())

	mr.FastForward(2 * time.Minute)

	_, err = store.Load(ctx, rec.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)

	ok, err := store.Exists(ctx, rec.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_ExistsAndDelete(t *testing.T) {
	store, _ := newRedisStore(t, 0)
	ctx := context.Background()

	rec, err := store.Create(ctx, nil)
	require.NoError(t, err)

	ok, err := store.Exists(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Delete(ctx, rec.ID))
	require.NoError(t, store.Delete(ctx, rec.ID))

	ok, err = store.Exists(ctx, rec.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	store, mr := newRedisStore(t, 0, session.WithKeyPrefix("auth:"))
	ctx := context.Background()

	rec, err := store.Create(ctx, nil)
	require.NoError(t, err)

	assert.True(t, mr.Exists("auth:"+rec.ID))
}
