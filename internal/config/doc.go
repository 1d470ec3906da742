// Package config loads runtime configuration for the gym CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by -c / -config or $GYM_CONFIG (see parseJson).
//  3. Environment variables prefixed GYM_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-s string   storage backend: sqlite, postgres, redis or memory
//	-d string   storage DSN (sqlite file name or postgres URL)
//	-r string   redis address host:port
//	-i int      carousel auto-advance interval (seconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Intervals use timex.Duration, so they may be strings like "4s" or integer
// nanoseconds:
//
//	{
//	  "storage_backend": "sqlite",
//	  "storage_dsn": "gym.db",
//	  "data_dir": "data",
//	  "redis_addr": "127.0.0.1:6379",
//	  "slide_interval": "4s",
//	  "alert_timeout": "5s",
//	  "log_level": "info"
//	}
package config
