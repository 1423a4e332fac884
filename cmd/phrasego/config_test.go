package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "utf-8", cfg.Input.Encoding)
	assert.Equal(t, 5, cfg.Search.MaxDistance)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
input:
  path: /data/romeo.txt
  encoding: gb18030
search:
  maxDistance: 12
logging:
  level: debug
  format: json
metrics:
  enabled: true
  addr: ":9191"
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/romeo.txt", cfg.Input.Path)
	assert.Equal(t, "gb18030", cfg.Input.Encoding)
	assert.Equal(t, 12, cfg.Search.MaxDistance)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9191", cfg.Metrics.Addr)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PHRASEGO_INPUT_PATH", "/env/text.txt")
	t.Setenv("PHRASEGO_MAX_DISTANCE", "3")
	t.Setenv("PHRASEGO_LOGGING_FORMAT", "json")

	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/env/text.txt", cfg.Input.Path)
	assert.Equal(t, 3, cfg.Search.MaxDistance)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig("/does/not/exist.yaml")
	assert.Error(t, err)
}
