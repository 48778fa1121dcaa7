package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the per-directory config file
const FileName = ".dragboard.json"

// Config represents the full dragboard configuration
type Config struct {
	Board   BoardConfig  `json:"board"`
	Sensors SensorConfig `json:"sensors"`
	Log     LogConfig    `json:"log"`
	UI      UIConfig     `json:"ui"`
}

// BoardConfig selects the board to open
type BoardConfig struct {
	Path string `json:"path"` // Empty opens the sample board
}

// SensorConfig holds drag activation thresholds
type SensorConfig struct {
	Pointer PointerSensorConfig `json:"pointer"`
	Touch   TouchSensorConfig   `json:"touch"`
}

// PointerSensorConfig: a pointer drag starts after moving Distance cells
type PointerSensorConfig struct {
	Distance int `json:"distance"`
}

// TouchSensorConfig: a touch drag starts after holding DelayMs while
// staying within Tolerance
type TouchSensorConfig struct {
	DelayMs   int `json:"delayMs"`
	Tolerance int `json:"tolerance"`
}

// Delay returns the hold duration as a time.Duration
func (t TouchSensorConfig) Delay() time.Duration {
	return time.Duration(t.DelayMs) * time.Millisecond
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"` // Empty discards logs; the TUI owns stdout
}

// UIConfig contains board layout settings
type UIConfig struct {
	MinColumnWidth int `json:"minColumnWidth"`
	CardHeight     int `json:"cardHeight"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			Path: "",
		},
		Sensors: SensorConfig{
			Pointer: PointerSensorConfig{
				Distance: 10,
			},
			Touch: TouchSensorConfig{
				DelayMs:   250,
				Tolerance: 500,
			},
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
		UI: UIConfig{
			MinColumnWidth: 24,
			CardHeight:     4,
		},
	}
}

// LoadConfig loads configuration from project path with priority:
// 1. DRAGBOARD_* environment variables
// 2. .dragboard.json in project root (with version migration support)
// 3. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	cfg := DefaultConfig()

	configPath := filepath.Join(projectPath, FileName)
	if data, err := os.ReadFile(configPath); err == nil {
		parsed, err := ParseVersionedConfig(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
		}
		cfg = MergeWithDefaults(parsed)
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Sensors
	if cfg.Sensors.Pointer.Distance == 0 {
		cfg.Sensors.Pointer.Distance = defaults.Sensors.Pointer.Distance
	}
	if cfg.Sensors.Touch.DelayMs == 0 {
		cfg.Sensors.Touch.DelayMs = defaults.Sensors.Touch.DelayMs
	}
	if cfg.Sensors.Touch.Tolerance == 0 {
		cfg.Sensors.Touch.Tolerance = defaults.Sensors.Touch.Tolerance
	}

	// Log
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	// UI
	if cfg.UI.MinColumnWidth == 0 {
		cfg.UI.MinColumnWidth = defaults.UI.MinColumnWidth
	}
	if cfg.UI.CardHeight == 0 {
		cfg.UI.CardHeight = defaults.UI.CardHeight
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
