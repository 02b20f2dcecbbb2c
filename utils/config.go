package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	PatternGlider = "glider"
	PatternRandom = "random"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel"`
	UseBoundedGrid      bool          `json:"use_bounded_grid"`
	MaxGenerations      int           `json:"max_generations"`
	Pattern             string        `json:"pattern"`
	Seed                int64         `json:"seed"`
	Colors              bool          `json:"colors"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               40,
		Height:              20,
		FrameRate:           250 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseParallel:         false,
		UseBoundedGrid:      true, // Enable active region optimization
		MaxGenerations:      1000,
		Pattern:             PatternRandom,
		Colors:              true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] bad values in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values the simulation cannot run without
func (c Config) Validate() error {
	switch {
	case c.Width < 2 || c.Height < 2:
		return errors.Wrapf(ErrInvalidConfig, "board must be at least 2x2, got %dx%d", c.Width, c.Height)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "frame rate must be positive, got %v", c.FrameRate)
	case c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "stagnation threshold must be at least 1, got %d", c.StagnationThreshold)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max generations cannot be negative, got %d", c.MaxGenerations)
	case c.Pattern != PatternGlider && c.Pattern != PatternRandom:
		return errors.Wrapf(ErrInvalidConfig, "unknown pattern %q", c.Pattern)
	}
	return nil
}
