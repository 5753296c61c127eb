package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings shared by every subcommand.
type Config struct {
	// path to the sqlite3 database file
	DB string `mapstructure:"db"`

	// address for the http server, like ":9999"
	Addr string `mapstructure:"addr"`

	Log LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	// debug, info, warn, or error
	Level string `mapstructure:"level"`
}

// Load builds a Config from defaults, then the config file at path (if path
// is not empty), then environment variables starting with prefix.
//
// Environment variables map onto keys by dropping the prefix, lowercasing,
// and turning underscores into dots: with the prefix "MOVIES_",
// MOVIES_LOG_LEVEL sets log.level.
func Load(prefix, path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("db", "movies.db")
	v.SetDefault("addr", ":9999")
	v.SetDefault("log.level", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file '%s': %w", path, err)
		}
	}

	prefix = strings.ToUpper(prefix)
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || prefix == "" || !strings.HasPrefix(key, prefix) {
			continue
		}
		key = strings.ToLower(strings.TrimPrefix(key, prefix))
		key = strings.Trim(strings.ReplaceAll(key, "_", "."), ".")
		if key == "" {
			continue
		}
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &cfg, nil
}
