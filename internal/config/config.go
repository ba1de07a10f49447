// Package config holds the dashboard's startup configuration: where the
// dataset comes from, the idle tick interval and optional debug outputs.
package config

import (
	"fmt"
	"os"
	"time"

	"theoryboard/internal/input"
)

// Environment overrides, read before command-line flags.
const (
	DatasetEnv  = "THEORYBOARD_DATASET"
	DebugLogEnv = "THEORYBOARD_DEBUG_LOG"
	TickEnv     = "THEORYBOARD_TICK"
)

// Replay frame size used when no terminal is attached.
const (
	DefaultWidth  = 100
	DefaultHeight = 32
)

// Config is the resolved startup configuration.
type Config struct {
	DatasetPath  string        // empty = built-in dataset
	TickInterval time.Duration // idle interval before a Tick is emitted
	DebugLog     string        // empty = logging discarded
	Replay       string        // key script to replay headlessly; empty = interactive
	Width        int           // replay frame width
	Height       int           // replay frame height
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		TickInterval: input.DefaultPollTimeout,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
	}
}

// FromEnv returns DefaultConfig with environment overrides applied.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	cfg.DatasetPath = os.Getenv(DatasetEnv)
	cfg.DebugLog = os.Getenv(DebugLogEnv)
	if v := os.Getenv(TickEnv); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", TickEnv, err)
		}
		cfg.TickInterval = d
	}
	return cfg, nil
}

// Validate rejects settings the dashboard cannot run with.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.Width < 20 || c.Height < 10 {
		return fmt.Errorf("frame size %dx%d too small (minimum 20x10)", c.Width, c.Height)
	}
	return nil
}
