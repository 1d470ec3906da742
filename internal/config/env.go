package config

import "github.com/kelseyhightower/envconfig"

// EnvPrefix is prepended to every variable name, e.g. GYM_STORAGE_BACKEND.
const EnvPrefix = "GYM"

// parseEnv overlays cfg with GYM_* environment variables. Unset variables
// leave the current value alone; malformed values panic.
func parseEnv(cfg *Config) {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		panic(err)
	}
}
