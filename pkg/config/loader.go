package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed value per configuration type.
type cache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
	onces  map[reflect.Type]*sync.Once
}

var (
	global = newCache()

	defaultEnvOnce sync.Once
)

func newCache() *cache {
	return &cache{
		values: make(map[reflect.Type]any),
		onces:  make(map[reflect.Type]*sync.Once),
	}
}

func (c *cache) get(t reflect.Type) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[t]
	return v, ok
}

func (c *cache) once(t reflect.Type) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.onces[t]
	if !ok {
		o = new(sync.Once)
		c.onces[t] = o
	}
	return o
}

func (c *cache) store(t reflect.Type, v any) {
	c.mu.Lock()
	c.values[t] = v
	c.mu.Unlock()
}

func (c *cache) forget(t reflect.Type) {
	c.mu.Lock()
	delete(c.values, t)
	delete(c.onces, t)
	c.mu.Unlock()
}

// Load parses environment variables into v using its `env` struct tags.
// The default .env file, when present, is read once before the first parse.
// Each configuration type is parsed once; later calls copy the cached value.
// A failed parse is not cached.
//
//	type Settings struct {
//		Source string `env:"NAIJAFAKE_SOURCE" envDefault:"builtin"`
//		Seed   uint64 `env:"NAIJAFAKE_SEED"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() {
		// a missing .env is fine
		_ = godotenv.Load()
	})

	t := typeOf[T]()
	if cached, ok := global.get(t); ok {
		*v = cached.(T)
		return nil
	}

	var err error
	global.once(t).Do(func() {
		var parsed T
		if perr := env.Parse(&parsed); perr != nil {
			err = errors.Join(ErrParsingConfig, perr)
			return
		}
		global.store(t, parsed)
	})
	if err != nil {
		// let the next call try again once the environment is fixed
		global.forget(t)
		return err
	}

	cached, ok := global.get(t)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached.(T)
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load %s: %v", typeOf[T](), err))
	}
}

// Reload drops the cached value of T and parses the environment again.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	global.forget(typeOf[T]())
	return Load(v)
}

// ResetCache drops every cached configuration.
func ResetCache() {
	global.mu.Lock()
	global.values = make(map[reflect.Type]any)
	global.onces = make(map[reflect.Type]*sync.Once)
	global.mu.Unlock()
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
