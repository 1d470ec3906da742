package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gymkeeper/internal/flagx"
	"github.com/dmitrijs2005/gymkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from "set to the zero value", so a partial file
// only overrides what it names.
type JsonConfig struct {
	StorageBackend *string         `json:"storage_backend"`
	StorageDSN     *string         `json:"storage_dsn"`
	DataDir        *string         `json:"data_dir"`
	RedisAddr      *string         `json:"redis_addr"`
	SlideInterval  *timex.Duration `json:"slide_interval"`
	AlertTimeout   *timex.Duration `json:"alert_timeout"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args or
// by $GYM_CONFIG. Without a file it does nothing; read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.StorageDSN, jc.StorageDSN)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.SlideInterval != nil {
		cfg.SlideInterval = jc.SlideInterval.Duration
	}
	if jc.AlertTimeout != nil {
		cfg.AlertTimeout = jc.AlertTimeout.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
