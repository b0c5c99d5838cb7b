package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("reads tagged fields from the environment", func(t *testing.T) {
		type envConfig struct {
			Name string        `env:"TEST_LOAD_NAME"`
			TTL  time.Duration `env:"TEST_LOAD_TTL"`
		}

		t.Setenv("TEST_LOAD_NAME", "alice")
		t.Setenv("TEST_LOAD_TTL", "90s")

		var cfg envConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "alice", cfg.Name)
		assert.Equal(t, 90*time.Second, cfg.TTL)
	})

	t.Run("applies defaults when variables are unset", func(t *testing.T) {
		type defaultsConfig struct {
			CookieName string `env:"TEST_LOAD_COOKIE" envDefault:"sessionid"`
			Path       string `env:"TEST_LOAD_PATH" envDefault:"/"`
		}

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "sessionid", cfg.CookieName)
		assert.Equal(t, "/", cfg.Path)
	})

	t.Run("reports missing required variables", func(t *testing.T) {
		type requiredConfig struct {
			Secret string `env:"TEST_LOAD_REQUIRED_SECRET,required"`
		}

		var cfg requiredConfig
		err := config.Load(&cfg)

		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects nil destination", func(t *testing.T) {
		type nilConfig struct{}

		err := config.Load[nilConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("caches by type across calls", func(t *testing.T) {
		type cachedConfig struct {
			Value string `env:"TEST_LOAD_CACHED"`
		}

		t.Setenv("TEST_LOAD_CACHED", "first")

		var first cachedConfig
		require.NoError(t, config.Load(&first))
		require.Equal(t, "first", first.Value)

		t.Setenv("TEST_LOAD_CACHED", "second")

		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value, "second load should return the cached value")
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns the parsed config", func(t *testing.T) {
		type mustConfig struct {
			Addr string `env:"TEST_MUSTLOAD_ADDR" envDefault:":8080"`
		}

		var cfg mustConfig
		require.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, ":8080", cfg.Addr)
	})

	t.Run("panics when parsing fails", func(t *testing.T) {
		type mustFailConfig struct {
			Token string `env:"TEST_MUSTLOAD_TOKEN,required"`
		}

		var cfg mustFailConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}
