package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations uint64        `json:"max_generations"` // 0 runs until extinction
	UseMemoryPool  bool          `json:"use_memory_pool"`
	Seed           uint64        `json:"seed"` // 0 seeds from the clock
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          160,
		Height:         36,
		FrameRate:      100 * time.Millisecond,
		MaxGenerations: 0,
		UseMemoryPool:  true,
		Seed:           0,
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
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the configuration for values the game cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] board dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame rate must not be negative, got %s", c.FrameRate)
	}
	return nil
}

// RandomSeed returns the configured seed, or a clock-derived one when unset
func (c Config) RandomSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
