package cli

import (
	"github.com/dmitrymomot/dtmatch/pkg/config"
	"github.com/dmitrymomot/dtmatch/pkg/httpserver"
	"github.com/dmitrymomot/dtmatch/pkg/logger"
)

// EnvPrefix is prepended to every environment variable read by the CLI,
// including the nested HTTP settings (DTMATCH_HTTP_ADDR, ...).
const EnvPrefix = "DTMATCH_"

// Config is the application configuration.
type Config struct {
	Env       string `env:"ENV" envDefault:"production"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	CacheSize int    `env:"CACHE_SIZE" envDefault:"256"`

	HTTP httpserver.Config
}

// LoadConfig reads Config from the environment, after loading envFiles.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return Config{}, err
		}
	}
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(EnvPrefix)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loggerOptions starts from the environment preset and applies explicit
// level and format settings on top.
func (c Config) loggerOptions() ([]logger.Option, error) {
	opts := []logger.Option{logger.WithEnvironment(c.Env, "dtmatch")}
	if c.LogLevel != "" {
		lvl, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	if c.LogFormat != "" {
		f, err := logger.ParseFormat(c.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(f))
	}
	return opts, nil
}
