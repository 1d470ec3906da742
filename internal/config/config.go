package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/gymkeeper/internal/storage"
)

// Config holds runtime settings for the gym CLI.
type Config struct {
	StorageBackend string        `envconfig:"STORAGE_BACKEND"`
	StorageDSN     string        `envconfig:"STORAGE_DSN"`
	DataDir        string        `envconfig:"DATA_DIR"`
	RedisAddr      string        `envconfig:"REDIS_ADDR"`
	SlideInterval  time.Duration `envconfig:"SLIDE_INTERVAL"`
	AlertTimeout   time.Duration `envconfig:"ALERT_TIMEOUT"`
	LogLevel       string        `envconfig:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = storage.BackendSQLite
	c.StorageDSN = "gym.db"
	c.DataDir = "data"
	c.RedisAddr = "127.0.0.1:6379"
	c.SlideInterval = 4 * time.Second
	c.AlertTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// StorageOptions maps the storage-related fields onto storage.Options.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:   c.StorageBackend,
		DSN:       c.StorageDSN,
		DataDir:   c.DataDir,
		RedisAddr: c.RedisAddr,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays JSON,
// environment and command-line flags. Later sources take precedence.
// Unreadable JSON, bad environment values or bad flags panic.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
