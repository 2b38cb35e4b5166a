package utils

import (
	"encoding/json"
	"os"
	"runtime"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-colony-life/model"
)

// Config holds the configuration for a run
type Config struct {
	MaxBoardSize  int   `json:"max_board_size"`
	Generations   int   `json:"generations"`
	Seed          int64 `json:"seed"`
	Workers       int   `json:"workers"`
	UseMemoryPool bool  `json:"use_memory_pool"`
	ShowCensus    bool  `json:"show_census"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxBoardSize:  model.DefaultMaxBoardSize,
		Generations:   1,
		Seed:          0, // 0 draws tie-breaks from the shared time-seeded source
		Workers:       runtime.NumCPU(),
		UseMemoryPool: true,
		ShowCensus:    true,
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

// Validate rejects settings the run cannot honor
func (c Config) Validate() error {
	if c.MaxBoardSize <= 0 {
		return errors.Errorf("[Validate] max_board_size must be positive, got %d", c.MaxBoardSize)
	}
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generations must not be negative, got %d", c.Generations)
	}
	if c.Workers <= 0 {
		return errors.Errorf("[Validate] workers must be positive, got %d", c.Workers)
	}
	return nil
}
