package userdir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/userdir"
)

func TestPlainMatch(t *testing.T) {
	assert.True(t, userdir.PlainMatch("hunter2", "hunter2"))
	assert.False(t, userdir.PlainMatch("hunter2", "hunter3"))
	assert.False(t, userdir.PlainMatch("hunter2", ""))
	assert.False(t, userdir.PlainMatch("", "hunter2"))
}

func TestBcryptMatch(t *testing.T) {
	hash, err := userdir.HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	assert.True(t, userdir.BcryptMatch(hash, "hunter2"))
	assert.False(t, userdir.BcryptMatch(hash, "hunter3"))
	assert.False(t, userdir.BcryptMatch("not-a-hash", "hunter2"))
}
