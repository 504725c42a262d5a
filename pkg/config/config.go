package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// TracksDir overrides game-directory detection with an explicit path
	// to the folder holding one subdirectory per track.
	TracksDir string `yaml:"tracks_dir"`

	// ExtraModels are root models analyzed alongside the track's own .3do.
	// The game loads these even though no track model references them.
	ExtraModels []string `yaml:"extra_models"`

	// ReportSuffix is appended to the track name to form the report filename.
	ReportSuffix string `yaml:"report_suffix"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
	TableWidth int    `yaml:"table_width"`

	// Watch Settings
	WatchDebounceMS int `yaml:"watch_debounce_ms"`

	// Chart Settings
	ChartMaxBars int `yaml:"chart_max_bars"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		TracksDir:       "",
		ExtraModels:     []string{"sky.3do", "horiz.3do"},
		ReportSuffix:    "_file_analysis.txt",
		ColorTheme:      "auto",
		TableWidth:      0,
		WatchDebounceMS: 500,
		ChartMaxBars:    30,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// A missing config file is not an error, defaults apply
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.ExtraModels == nil {
		cfg.ExtraModels = []string{}
	}
	if cfg.ReportSuffix == "" {
		cfg.ReportSuffix = "_file_analysis.txt"
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}
	if cfg.ChartMaxBars <= 0 {
		cfg.ChartMaxBars = 30
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
