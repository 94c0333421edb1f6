// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files:
//
//	type Config struct {
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	    CacheSize int    `env:"CACHE_SIZE" envDefault:"256"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("DTMATCH_")); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// The first Load reads ./.env when it exists. LoadEnv loads additional files
// explicitly. Values already present in the environment always win over
// dotenv files.
//
// Every call parses afresh; callers that need a single shared instance keep
// the struct themselves.
package config
