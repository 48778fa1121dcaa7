package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. DRAGBOARD_LOG_LEVEL
const EnvPrefix = "DRAGBOARD"

// ApplyEnv overrides cfg with any DRAGBOARD_* variables that are set
func ApplyEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.IsSet("board.path") {
		cfg.Board.Path = v.GetString("board.path")
	}
	if v.IsSet("log.level") {
		cfg.Log.Level = v.GetString("log.level")
	}
	if v.IsSet("log.file") {
		cfg.Log.File = v.GetString("log.file")
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"sensors.pointer.distance", &cfg.Sensors.Pointer.Distance},
		{"sensors.touch.delayms", &cfg.Sensors.Touch.DelayMs},
		{"sensors.touch.tolerance", &cfg.Sensors.Touch.Tolerance},
		{"ui.mincolumnwidth", &cfg.UI.MinColumnWidth},
		{"ui.cardheight", &cfg.UI.CardHeight},
	}
	for _, o := range ints {
		if !v.IsSet(o.key) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(o.key)))
		if err != nil {
			return fmt.Errorf("invalid %s_%s: %w", EnvPrefix, strings.ToUpper(strings.ReplaceAll(o.key, ".", "_")), err)
		}
		*o.dst = n
	}
	return nil
}

// LogLevel parses Log.Level, falling back to info
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
