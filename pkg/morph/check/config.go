package check

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config selects which validators [Run] executes and with what tolerances.
// It maps one-to-one onto the TOML configuration file consumed by the CLI:
//
//	[monotonic]
//	enabled = true
//	tolerance = 1e-6
//
//	[flatness]
//	enabled = false
//	tolerance = 0.1
//	method = "ratio"
//
//	[backtracking]
//	enabled = true
//
//	[duplicates]
//	enabled = true
//	tolerance = 0.0
type Config struct {
	Monotonic    MonotonicConfig    `toml:"monotonic"`
	Flatness     FlatnessConfig     `toml:"flatness"`
	BackTracking BackTrackingConfig `toml:"backtracking"`
	Duplicates   DuplicatesConfig   `toml:"duplicates"`
}

// MonotonicConfig configures the monotonic-radius validator.
type MonotonicConfig struct {
	Enabled   bool    `toml:"enabled"`
	Tolerance float64 `toml:"tolerance"`
}

// FlatnessConfig configures the flatness validator. Method is "tolerance"
// or "ratio".
type FlatnessConfig struct {
	Enabled   bool    `toml:"enabled"`
	Tolerance float64 `toml:"tolerance"`
	Method    string  `toml:"method"`
}

// BackTrackingConfig configures the back-tracking validator.
type BackTrackingConfig struct {
	Enabled bool `toml:"enabled"`
}

// DuplicatesConfig configures the duplicate-point validator.
type DuplicatesConfig struct {
	Enabled   bool    `toml:"enabled"`
	Tolerance float64 `toml:"tolerance"`
}

// DefaultConfig returns the configuration used when no file is given:
// monotonicity, back-tracking and exact duplicate detection on, flatness
// off (planar reconstructions are legitimate for some preparations).
func DefaultConfig() Config {
	return Config{
		Monotonic:    MonotonicConfig{Enabled: true, Tolerance: 1e-6},
		Flatness:     FlatnessConfig{Enabled: false, Tolerance: 0.1, Method: "ratio"},
		BackTracking: BackTrackingConfig{Enabled: true},
		Duplicates:   DuplicatesConfig{Enabled: true},
	}
}

// LoadConfig reads a TOML configuration file on top of the defaults, so a
// file only needs the tables it wants to change.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load check config: %w", err)
	}
	if _, err := cfg.Flatness.method(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c FlatnessConfig) method() (FlatnessMethod, error) {
	switch c.Method {
	case "", "ratio":
		return FlatnessRatio, nil
	case "tolerance":
		return FlatnessTolerance, nil
	}
	return 0, fmt.Errorf("unknown flatness method %q", c.Method)
}
