package config

import (
	"time"

	"github.com/kbukum/transcriptkit/grouper"
	"github.com/kbukum/transcriptkit/logger"
	"github.com/kbukum/transcriptkit/validation"
)

// Config holds all engine tunables.
type Config struct {
	// Grouping holds the segment grouping heuristics.
	Grouping grouper.Params `json:"grouping" mapstructure:"grouping"`
	// GapThreshold is the silence duration, in seconds, at or above which
	// a gap becomes an explicit token.
	GapThreshold float64 `json:"gap_threshold" mapstructure:"gap_threshold" validate:"gt=0"`
	// HistoryLimit caps the undo/redo log.
	HistoryLimit int `json:"history_limit" mapstructure:"history_limit" validate:"gte=1"`
	// DebounceWindow suppresses re-entrant split/merge triggers arriving
	// within this window from the same gesture.
	DebounceWindow time.Duration `json:"debounce_window" mapstructure:"debounce_window" validate:"gte=0"`
	// Logging configures the engine logger.
	Logging logger.Config `json:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to unset fields.
func (c *Config) ApplyDefaults() {
	c.Grouping.ApplyDefaults()
	if c.GapThreshold == 0 {
		c.GapThreshold = 1.0
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = 50
	}
	if c.DebounceWindow == 0 {
		c.DebounceWindow = 300 * time.Millisecond
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Grouping.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Default returns a fully defaulted configuration.
func Default() Config {
	var c Config
	c.ApplyDefaults()
	return c
}
