package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
	onces  map[reflect.Type]*sync.Once
}

var (
	global = &cache{
		values: make(map[reflect.Type]any),
		onces:  make(map[reflect.Type]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// LoadEnv reads env files into the process environment. Values already set
// in the environment win. Without arguments the .env file in the working
// directory is read.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses the environment into v. Each type is parsed once; later calls
// copy the cached value.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := reflect.TypeFor[T]()
	if global.get(key, v) {
		return nil
	}

	global.mu.Lock()
	once, ok := global.onces[key]
	if !ok {
		once = new(sync.Once)
		global.onces[key] = once
	}
	global.mu.Unlock()

	var err error
	once.Do(func() {
		var parsed T
		if perr := env.Parse(&parsed); perr != nil {
			err = errors.Join(ErrParsingConfig, perr)
			return
		}
		global.mu.Lock()
		global.values[key] = parsed
		global.mu.Unlock()
	})
	if err != nil {
		// Allow a retry once the environment is fixed.
		global.mu.Lock()
		delete(global.onces, key)
		global.mu.Unlock()
		return err
	}

	if global.get(key, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// ForceReload drops the cached value for T and parses the environment again.
func ForceReload[T any](v *T) error {
	key := reflect.TypeFor[T]()
	global.mu.Lock()
	delete(global.values, key)
	delete(global.onces, key)
	global.mu.Unlock()
	return Load(v)
}

// ResetCache forgets every loaded configuration.
func ResetCache() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.values = make(map[reflect.Type]any)
	global.onces = make(map[reflect.Type]*sync.Once)
}

func (c *cache) get(key reflect.Type, dst any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, ok := c.values[key]
	if !ok {
		return false
	}
	reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(cached))
	return true
}
