package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/registry"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	DefaultAlgorithm     = "bubble_sort"
	DefaultDataset       = "random"
	DefaultFrameInterval = 50
	DefaultFPS           = 25
	DefaultTheme         = "cyberpunk"
	DefaultLang          = "en"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Algorithm   string `yaml:"algorithm"`
	Dataset     string `yaml:"dataset"`
	Count       int    `yaml:"count"`
	Seed        int64  `yaml:"seed"`
	MaxAttempts int    `yaml:"max_attempts"`
	// FrameInterval is the playback delay between frames in milliseconds.
	FrameInterval int    `yaml:"frame_interval"`
	FPS           int    `yaml:"fps"`
	Theme         string `yaml:"theme"`
	Compact       bool   `yaml:"compact"`
	Output        string `yaml:"output,omitempty"`
	Lang          string `yaml:"lang"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm:     DefaultAlgorithm,
		Dataset:       DefaultDataset,
		Count:         dataset.DefaultCount,
		MaxAttempts:   sorting.DefaultMaxAttempts,
		FrameInterval: DefaultFrameInterval,
		FPS:           DefaultFPS,
		Theme:         DefaultTheme,
		Lang:          DefaultLang,
	}
}

func Load(path string) (*Config, error) {
	return Overlay(path, DefaultConfig())
}

// Overlay reads path on top of a copy of base. Fields the file leaves out
// keep base's values.
func Overlay(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first field that cannot drive a run.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidConfig, c.Count)
	}
	if c.Count > sorting.MaxElements {
		return fmt.Errorf("%w: count %d exceeds %d", ErrInvalidConfig, c.Count, sorting.MaxElements)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame interval must be positive, got %d", ErrInvalidConfig, c.FrameInterval)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if _, err := registry.Parse(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := dataset.Parse(c.Dataset); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) Options() registry.Options {
	return registry.Options{
		MaxAttempts: c.MaxAttempts,
		Seed:        c.Seed,
	}
}

// Values generates the configured initial array.
func (c *Config) Values() ([]int, error) {
	k, err := dataset.Parse(c.Dataset)
	if err != nil {
		return nil, err
	}
	return dataset.GenerateSeeded(k, c.Count, c.Seed)
}
