package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/session"
)

func TestFileStore_New(t *testing.T) {
	t.Run("creates the directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "sessions")
		_, err := session.NewFileStore(dir, 0)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("empty directory rejected", func(t *testing.T) {
		_, err := session.NewFileStore("", 0)
		assert.Error(t, err)
	})
}

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := session.NewFileStore(t.TempDir(), 0)
	require.NoError(t, err)

	ctx := context.Background()

	rec, err := store.Create(ctx, map[string]any{session.KeyUserID: "42", "lang": "en"})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)

	got, err := store.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	uid, ok := got.UserID()
	assert.True(t, ok)
	assert.Equal(t, "42", uid)
	lang, _ := got.StringValue("lang")
	assert.Equal(t, "en", lang)
}

func TestFileStore_Load(t *testing.T) {
	store, err := session.NewFileStore(t.TempDir(), 0)
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := store.Load(ctx, "abc123")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("traversal attempt reads as unknown", func(t *testing.T) {
		_, err := store.Load(ctx, "../../etc/passwd")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})
}

func TestFileStore_Mutate(t *testing.T) {
	store, err := session.NewFileStore(t.TempDir(), 0)
	require.NoError(t, err)

	ctx := context.Background()

	rec, err := store.Create(ctx, map[string]any{session.KeyUserID: "42"})
	require.NoError(t, err)

	require.NoError(t, store.Mutate(ctx, rec.ID, "theme", "dark"))

	got, err := store.Load(ctx, rec.ID)
	require.NoError(t, err)
	theme, _ := got.StringValue("theme")
	assert.Equal(t, "dark", theme)
	uid, _ := got.UserID()
	assert.Equal(t, "42", uid)

	err = store.Mutate(ctx, "missing-id", "theme", "dark")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestFileStore_ExistsAndDelete(t *testing.T) {
	store, err := session.NewFileStore(t.TempDir(), 0)
	require.NoError(t, err)

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

func TestFileStore_Expiry(t *testing.T) {
	dir := t.TempDir()
	store, err := session.NewFileStore(dir, 30*time.Millisecond)
	require.NoError(t, err)

	ctx := context.Background()

	rec, err := store.Create(ctx, map[string]any{session.KeyUserID: "42"})
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	_, err = store.Load(ctx, rec.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// lazy reclaim removed the file
	_, statErr := os.Stat(filepath.Join(dir, rec.ID+".json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileStore_Cleanup(t *testing.T) {
	dir := t.TempDir()

	expiring, err := session.NewFileStore(dir, 30*time.Millisecond)
	require.NoError(t, err)
	durable, err := session.NewFileStore(dir, 0)
	require.NoError(t, err)

	ctx := context.Background()

	for range 3 {
		_, err := expiring.Create(ctx, nil)
		require.NoError(t, err)
	}
	keeper, err := durable.Create(ctx, nil)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	removed, err := durable.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	ok, err := durable.Exists(ctx, keeper.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
