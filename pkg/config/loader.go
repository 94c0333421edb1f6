package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option adjusts how Load reads the environment.
type Option func(*env.Options)

// WithPrefix only reads variables starting with prefix, e.g. "DTMATCH_".
// Struct tags are written without the prefix.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment reads variables from vars instead of the process
// environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// LoadEnv loads one or more dotenv files into the process environment.
// Variables that are already set are left untouched.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load populates v from environment variables according to its `env` and
// `envDefault` struct tags. The first call also loads ./.env if present.
//
// Example:
//
//	type AppConfig struct {
//	    CacheSize int    `env:"CACHE_SIZE" envDefault:"256"`
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg AppConfig
//	err := config.Load(&cfg, config.WithPrefix("DTMATCH_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		if _, err := os.Stat(".env"); err == nil {
			_ = godotenv.Load()
		}
	})

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}
	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
