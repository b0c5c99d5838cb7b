package userdir_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit"
	"github.com/dmitrymomot/authkit/pkg/userdir"
)

type brokenDirectory struct {
	err error
}

func (d brokenDirectory) FindByUsername(ctx context.Context, username string) ([]userdir.User, error) {
	return nil, d.err
}

func (d brokenDirectory) FindByID(ctx context.Context, id string) (userdir.User, error) {
	return userdir.User{}, d.err
}

func fields(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}

func TestVerifier_Verify(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) *userdir.MemoryDirectory {
		t.Helper()
		dir, err := userdir.NewMemoryDirectory(
			userdir.User{ID: "42", Username: "alice", Password: "hunter2"},
			userdir.User{ID: "43", Username: "bob", Password: "swordfish"},
		)
		require.NoError(t, err)
		return dir
	}

	t.Run("accepts matching credentials", func(t *testing.T) {
		v := userdir.NewVerifier(seed(t))

		uid, user, err := v.Verify(ctx, fields("user", "alice", "password", "hunter2"))
		require.NoError(t, err)
		assert.Equal(t, "42", uid)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		v := userdir.NewVerifier(seed(t))

		_, _, err := v.Verify(ctx, fields("user", "alice", "password", "wrong"))
		assert.ErrorIs(t, err, authkit.ErrBadCredentials)
	})

	t.Run("rejects an unknown username", func(t *testing.T) {
		v := userdir.NewVerifier(seed(t))

		_, _, err := v.Verify(ctx, fields("user", "mallory", "password", "hunter2"))
		assert.ErrorIs(t, err, authkit.ErrBadCredentials)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		v := userdir.NewVerifier(seed(t))

		_, _, err := v.Verify(ctx, fields("user", "alice"))
		assert.ErrorIs(t, err, authkit.ErrMissingCredentials)

		_, _, err = v.Verify(ctx, fields("password", "hunter2"))
		assert.ErrorIs(t, err, authkit.ErrMissingCredentials)

		_, _, err = v.Verify(ctx, url.Values{})
		assert.ErrorIs(t, err, authkit.ErrMissingCredentials)
	})

	t.Run("reads renamed fields", func(t *testing.T) {
		v := userdir.NewVerifier(seed(t), userdir.WithFieldNames("login", "secret"))

		uid, _, err := v.Verify(ctx, fields("login", "bob", "secret", "swordfish"))
		require.NoError(t, err)
		assert.Equal(t, "43", uid)

		_, _, err = v.Verify(ctx, fields("user", "bob", "password", "swordfish"))
		assert.ErrorIs(t, err, authkit.ErrMissingCredentials, "default field names are no longer read")
	})

	t.Run("config applies field names", func(t *testing.T) {
		v := userdir.NewVerifier(seed(t), userdir.WithConfig(userdir.Config{
			UserField:     "login",
			PasswordField: "secret",
		}))

		uid, _, err := v.Verify(ctx, fields("login", "alice", "secret", "hunter2"))
		require.NoError(t, err)
		assert.Equal(t, "42", uid)
	})

	t.Run("first matching user wins on ambiguous credentials", func(t *testing.T) {
		dir, err := userdir.NewMemoryDirectory(
			userdir.User{ID: "1", Username: "dup", Password: "shared"},
			userdir.User{ID: "2", Username: "dup", Password: "shared"},
		)
		require.NoError(t, err)

		uid, user, err := userdir.NewVerifier(dir).Verify(ctx, fields("user", "dup", "password", "shared"))
		require.NoError(t, err)
		assert.Equal(t, "1", uid)
		assert.Equal(t, "1", user.ID)
	})

	t.Run("same username with different passwords picks the one that matches", func(t *testing.T) {
		dir, err := userdir.NewMemoryDirectory(
			userdir.User{ID: "1", Username: "dup", Password: "first"},
			userdir.User{ID: "2", Username: "dup", Password: "second"},
		)
		require.NoError(t, err)

		uid, _, err := userdir.NewVerifier(dir).Verify(ctx, fields("user", "dup", "password", "second"))
		require.NoError(t, err)
		assert.Equal(t, "2", uid)
	})

	t.Run("bcrypt matcher verifies hashed columns", func(t *testing.T) {
		hash, err := userdir.HashPassword("hunter2")
		require.NoError(t, err)

		dir, err := userdir.NewMemoryDirectory(userdir.User{ID: "42", Username: "alice", Password: hash})
		require.NoError(t, err)

		v := userdir.NewVerifier(dir, userdir.WithMatcher(userdir.BcryptMatch))

		uid, _, err := v.Verify(ctx, fields("user", "alice", "password", "hunter2"))
		require.NoError(t, err)
		assert.Equal(t, "42", uid)

		_, _, err = v.Verify(ctx, fields("user", "alice", "password", "wrong"))
		assert.ErrorIs(t, err, authkit.ErrBadCredentials)
	})

	t.Run("directory failure propagates without becoming a rejection", func(t *testing.T) {
		errDown := errors.New("directory down")
		v := userdir.NewVerifier(brokenDirectory{err: errDown})

		_, _, err := v.Verify(ctx, fields("user", "alice", "password", "hunter2"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errDown)
		assert.False(t, authkit.IsRejection(err))
	})
}
