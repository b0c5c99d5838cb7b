package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	mu     sync.RWMutex
	loaded = make(map[string]any)
)

// Load populates the struct from environment variables according to its
// `env` tags. The first call in the process also loads a .env file when one
// is present. Each struct type is parsed once; later calls for the same type
// return the cached value, so every component reading the same Config sees
// identical settings.
//
//	type AppConfig struct {
//		CookieName string `env:"AUTH_COOKIE_NAME" envDefault:"sessionid"`
//		RedisURL   string `env:"REDIS_URL,required"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		...
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// A missing .env file is the normal production case.
		_ = godotenv.Load()
	})

	name := typeName[T]()

	mu.RLock()
	cached, ok := loaded[name]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	// Another goroutine may have parsed the type while we waited.
	if cached, ok := loaded[name]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	loaded[name] = *v
	return nil
}

// MustLoad works like Load but panics on failure. Meant for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Errorf("config: load %s: %w", typeName[T](), err))
	}
}

func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
