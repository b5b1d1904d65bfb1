package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds settings read from the optional TOML config file at
// ~/.config/wordgraph/config.toml. Command-line flags override file values.
//
// Example:
//
//	dictionary = "/usr/share/dict/words"
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
type Config struct {
	// Dictionary is the default word list for the serve command.
	Dictionary string `toml:"dictionary"`

	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
}

// ServerConfig configures the HTTP search API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig configures the server's result cache.
type CacheConfig struct {
	// Backend selects the cache implementation: "none", "file", or "redis".
	Backend   string `toml:"backend"`
	RedisAddr string `toml:"redis_addr"`
	// TTL is a Go duration string; empty or "0" keeps entries forever.
	TTL string `toml:"ttl"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache: CacheConfig{
			Backend:   "file",
			RedisAddr: "localhost:6379",
			TTL:       "24h",
		},
	}
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error: defaults apply.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// cacheTTL parses the configured TTL. Unparseable values fall back to zero
// (no expiration) rather than failing startup.
func (c CacheConfig) cacheTTL() time.Duration {
	if c.TTL == "" {
		return 0
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0
	}
	return d
}
