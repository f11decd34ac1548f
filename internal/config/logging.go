package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level,omitempty"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format,omitempty"` // json, text
	File   string `yaml:"file" json:"file,omitempty"`     // appended, never rotated
}

// ZapLevel parses Level. An empty level means debug, so everything is captured.
func (c LoggingConfig) ZapLevel() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.DebugLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return lvl, fmt.Errorf("invalid logging.level %q: %w", c.Level, err)
	}
	return lvl, nil
}

// IsJSON reports whether log lines should be JSON instead of console text.
func (c LoggingConfig) IsJSON() bool {
	return c.Format == "json"
}
