package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gymkeeper/internal/flagx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"storage_backend": "postgres",
		"slide_interval":  "10s",
		"alert_timeout":   int64(2 * time.Second),
	})
	pathEnv := writeTempJSON(t, dir, "env.json", map[string]any{
		"storage_backend": "memory",
	})

	t.Run("loads from flags", func(t *testing.T) {
		t.Setenv(flagx.ConfigEnv, "")

		cfg := &Config{}
		parseJson(cfg, []string{"-config", pathFlag})

		assert.Equal(t, "postgres", cfg.StorageBackend)
		assert.Equal(t, 10*time.Second, cfg.SlideInterval)
		assert.Equal(t, 2*time.Second, cfg.AlertTimeout)
	})

	t.Run("loads from env", func(t *testing.T) {
		t.Setenv(flagx.ConfigEnv, pathEnv)

		cfg := &Config{}
		parseJson(cfg, nil)

		assert.Equal(t, "memory", cfg.StorageBackend)
	})

	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(flagx.ConfigEnv, pathEnv)

		cfg := &Config{}
		parseJson(cfg, []string{"-c", pathFlag})

		assert.Equal(t, "postgres", cfg.StorageBackend)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		t.Setenv(flagx.ConfigEnv, "")

		cfg := &Config{
			StorageBackend: "defaults",
			SlideInterval:  42 * time.Second,
		}
		parseJson(cfg, nil)

		assert.Equal(t, "defaults", cfg.StorageBackend)
		assert.Equal(t, 42*time.Second, cfg.SlideInterval)
	})

	t.Run("partial file keeps other fields", func(t *testing.T) {
		t.Setenv(flagx.ConfigEnv, "")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", pathEnv})

		assert.Equal(t, "memory", cfg.StorageBackend)
		assert.Equal(t, "gym.db", cfg.StorageDSN)
		assert.Equal(t, 5*time.Second, cfg.AlertTimeout)
	})

	t.Run("missing file → panics", func(t *testing.T) {
		t.Setenv(flagx.ConfigEnv, "")

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		t.Setenv(flagx.ConfigEnv, "")
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-config", bad}) })
	})
}
