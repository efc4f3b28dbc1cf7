// Package config loads and validates the runtime configuration for a
// training run.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shallow-ml/shallow/internal/nn"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	HiddenUnits  int     `yaml:"hidden_units"`
	Epochs       int     `yaml:"epochs"`
	LearningRate float32 `yaml:"learning_rate"`
	Seed         int64   `yaml:"seed"`
	Activation   string  `yaml:"activation"`
	LogEvery     int     `yaml:"log_every"`
}

// Default returns the demo configuration: a 1-8-1 network trained for 50
// epochs at learning rate 0.2 with ELU activation.
func Default() *Config {
	return &Config{
		HiddenUnits:  8,
		Epochs:       50,
		LearningRate: 0.2,
		Seed:         1,
		Activation:   "elu",
		LogEvery:     1,
	}
}

// Load reads and validates a Config from a YAML file. Keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overrides captures CLI supplied values.
type Overrides struct {
	HiddenUnits  int
	Epochs       int
	LearningRate float64
	Seed         int64
	Activation   string
	LogEvery     int
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.HiddenUnits > 0 {
		c.HiddenUnits = o.HiddenUnits
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.LearningRate > 0 {
		c.LearningRate = float32(o.LearningRate)
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Activation != "" {
		c.Activation = o.Activation
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c.HiddenUnits <= 0 {
		return fmt.Errorf("hidden_units must be > 0 (got %d)", c.HiddenUnits)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning_rate must be > 0 (got %g)", c.LearningRate)
	}
	if _, err := nn.ParseActivation(c.Activation); err != nil {
		return err
	}
	if c.LogEvery <= 0 {
		return fmt.Errorf("log_every must be > 0 (got %d)", c.LogEvery)
	}
	return nil
}
