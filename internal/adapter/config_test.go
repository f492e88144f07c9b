package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := loadConfig(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, SourceTypePicsum, cfg.Source.Type)
	assert.Equal(t, "https://picsum.photos", cfg.Source.BaseURL)
	assert.Equal(t, 30, cfg.Source.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 3, cfg.UI.GridColumns)
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
source:
  base_url: http://localhost:9999
  page_size: 12
  timeout: 5s
ui:
  grid_columns: 4
viewer:
  command: feh
  args: ["--fullscreen"]
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := loadConfig(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.Source.BaseURL)
	assert.Equal(t, 12, cfg.Source.PageSize)
	assert.Equal(t, 5*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 4, cfg.UI.GridColumns)
	assert.Equal(t, 1, cfg.UI.EndThreshold, "unset keys keep their defaults")
	assert.Equal(t, "feh", cfg.Viewer.Command)
	assert.Equal(t, []string{"--fullscreen"}, cfg.Viewer.Args)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("PHOTOVAULT_UI_GRID_COLUMNS", "5")
	t.Setenv("PHOTOVAULT_SOURCE_BASE_URL", "http://example.test")

	cfg, err := loadConfig(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.UI.GridColumns)
	assert.Equal(t, "http://example.test", cfg.Source.BaseURL)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ui:\n  grid_columns: 0\n"), 0644))

	_, err := loadConfig(viper.New(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid_columns")
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("source: [unterminated"), 0644))

	_, err := loadConfig(viper.New(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
