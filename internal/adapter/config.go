package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SourceType identifies the photo listing backend
type SourceType string

const (
	SourceTypePicsum SourceType = "picsum"
)

// Config holds all application configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	UI      UIConfig      `mapstructure:"ui"`
	Picker  PickerConfig  `mapstructure:"picker"`
	Viewer  ViewerConfig  `mapstructure:"viewer"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SourceConfig holds photo listing service configuration
type SourceConfig struct {
	Type     SourceType    `mapstructure:"type"`
	BaseURL  string        `mapstructure:"base_url"`
	PageSize int           `mapstructure:"page_size"` // records requested per page
	Timeout  time.Duration `mapstructure:"timeout"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	GridColumns  int `mapstructure:"grid_columns"`
	EndThreshold int `mapstructure:"end_threshold"` // rows from the end that trigger the next page
}

// PickerConfig holds image picker configuration
type PickerConfig struct {
	StartDir   string `mapstructure:"start_dir"`
	ShowHidden bool   `mapstructure:"show_hidden"`
}

// ViewerConfig holds external image viewer configuration
type ViewerConfig struct {
	Command string   `mapstructure:"command"` // empty = auto-detect
	Args    []string `mapstructure:"args"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

var envKeyReplacer = strings.NewReplacer(".", "_")

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Source: SourceConfig{
			Type:     SourceTypePicsum,
			BaseURL:  "https://picsum.photos",
			PageSize: 30,
			Timeout:  30 * time.Second,
		},
		UI: UIConfig{
			GridColumns:  3,
			EndThreshold: 1,
		},
		Picker: PickerConfig{
			StartDir: home,
		},
		Viewer: ViewerConfig{
			Args: []string{},
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "photovault", "photovault.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "photovault", "photovault.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "photovault")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "photovault")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), defaultConfigPath(), ".")
}

// loadConfig reads config.yaml from the given search paths into the defaults.
// A missing file is not an error.
func loadConfig(v *viper.Viper, paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Environment variable overrides, e.g. PHOTOVAULT_SOURCE_PAGE_SIZE
	v.SetEnvPrefix("PHOTOVAULT")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
	bindEnvKeys(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindEnvKeys registers every known key so AutomaticEnv applies during Unmarshal
func bindEnvKeys(v *viper.Viper) {
	for _, k := range []string{
		"source.type", "source.base_url", "source.page_size", "source.timeout",
		"ui.grid_columns", "ui.end_threshold",
		"picker.start_dir", "picker.show_hidden",
		"viewer.command", "viewer.args",
		"logging.file", "logging.level",
	} {
		_ = v.BindEnv(k)
	}
}

// Validate rejects values the UI cannot work with
func (c *Config) Validate() error {
	if c.Source.BaseURL == "" {
		return fmt.Errorf("source.base_url is required")
	}
	if c.Source.PageSize < 1 {
		return fmt.Errorf("source.page_size must be positive, got %d", c.Source.PageSize)
	}
	if c.UI.GridColumns < 1 {
		return fmt.Errorf("ui.grid_columns must be positive, got %d", c.UI.GridColumns)
	}
	if c.UI.EndThreshold < 0 {
		return fmt.Errorf("ui.end_threshold must not be negative, got %d", c.UI.EndThreshold)
	}
	return nil
}
