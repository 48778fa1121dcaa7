package config

import (
	"encoding/json"
	"fmt"
)

// CurrentVersion is the current config schema version
const CurrentVersion = 1

// VersionedConfig wraps a Config with a version field for migrations
type VersionedConfig struct {
	Version int     `json:"version"`
	Config  *Config `json:"config,omitempty"`

	// Inline config fields for files written without the nested config key
	Board   BoardConfig  `json:"board,omitempty"`
	Sensors SensorConfig `json:"sensors,omitempty"`
	Log     LogConfig    `json:"log,omitempty"`
	UI      UIConfig     `json:"ui,omitempty"`
}

// Migration represents a config migration function
type Migration struct {
	FromVersion int
	ToVersion   int
	Migrate     func(data map[string]interface{}) (map[string]interface{}, error)
}

// migrations is the list of migrations in order
var migrations = []Migration{
	// 0 -> 1: sensors.mouse became sensors.pointer
	{
		FromVersion: 0,
		ToVersion:   1,
		Migrate: func(data map[string]interface{}) (map[string]interface{}, error) {
			if sensors, ok := data["sensors"].(map[string]interface{}); ok {
				if mouse, ok := sensors["mouse"]; ok {
					if _, exists := sensors["pointer"]; !exists {
						sensors["pointer"] = mouse
					}
					delete(sensors, "mouse")
				}
			}
			data["version"] = 1
			return data, nil
		},
	},
}

// ParseVersionedConfig parses config data with version migration support
func ParseVersionedConfig(data []byte) (*Config, error) {
	// First, parse as raw JSON to get version
	var rawConfig map[string]interface{}
	if err := json.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// Detect version (0 if not present = legacy config)
	version := 0
	if v, ok := rawConfig["version"].(float64); ok {
		version = int(v)
	}

	if version > CurrentVersion {
		return nil, fmt.Errorf("config version %d is newer than supported version %d", version, CurrentVersion)
	}

	if version < CurrentVersion {
		var err error
		rawConfig, err = ApplyMigrations(rawConfig, version)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate config: %w", err)
		}
	}

	// Re-marshal and unmarshal to get proper types
	migratedData, err := json.Marshal(rawConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal migrated config: %w", err)
	}

	var versioned VersionedConfig
	if err := json.Unmarshal(migratedData, &versioned); err != nil {
		return nil, fmt.Errorf("failed to parse versioned config: %w", err)
	}

	if versioned.Config != nil {
		return versioned.Config, nil
	}

	return &Config{
		Board:   versioned.Board,
		Sensors: versioned.Sensors,
		Log:     versioned.Log,
		UI:      versioned.UI,
	}, nil
}

// ApplyMigrations applies all migrations from the given version to CurrentVersion
func ApplyMigrations(data map[string]interface{}, fromVersion int) (map[string]interface{}, error) {
	for _, migration := range migrations {
		if migration.FromVersion == fromVersion {
			var err error
			data, err = migration.Migrate(data)
			if err != nil {
				return nil, fmt.Errorf("migration %d -> %d failed: %w",
					migration.FromVersion, migration.ToVersion, err)
			}
			fromVersion = migration.ToVersion
		}
	}

	if fromVersion < CurrentVersion {
		return nil, fmt.Errorf("no migration path from version %d to %d", fromVersion, CurrentVersion)
	}

	return data, nil
}

// MarshalVersionedConfig serializes a config as a flat object with a version key
func MarshalVersionedConfig(cfg *Config) ([]byte, error) {
	cfgData, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	var cfgMap map[string]interface{}
	if err := json.Unmarshal(cfgData, &cfgMap); err != nil {
		return nil, err
	}
	cfgMap["version"] = CurrentVersion

	return json.MarshalIndent(cfgMap, "", "  ")
}
