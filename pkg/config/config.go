// Package config provides configuration loading and management for
// fouriersketch. It handles loading configuration from YAML files and
// provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Edge extraction parameters
	Edge struct {
		// LowThreshold is the lower Canny hysteresis bound on the 0-255 scale
		LowThreshold float64 `yaml:"lowThreshold"`

		// HighThreshold is the upper Canny hysteresis bound on the 0-255 scale
		HighThreshold float64 `yaml:"highThreshold"`

		// DilateRadius is the Chebyshev radius used to thicken detected edges
		DilateRadius int `yaml:"dilateRadius"`

		// Thin controls whether dilated edges are skeletonized back to
		// single-pixel width before tracing
		Thin bool `yaml:"thin"`
	} `yaml:"edge"`

	// Epicycle selection parameters
	Epicycles struct {
		// Terms is the maximum number of epicycles kept after ranking (K)
		Terms int `yaml:"terms"`

		// MinRadius drops epicycles smaller than this normalized radius;
		// they would be invisible at drawing scale
		MinRadius float64 `yaml:"minRadius"`

		// FrequencyConvention selects the frequency index numbering:
		// "symmetric" (centered around zero) or "zero-based"
		FrequencyConvention string `yaml:"frequencyConvention"`
	} `yaml:"epicycles"`

	// Animation parameters
	Animation struct {
		// Frames is the number of evaluation steps per full drawing cycle
		Frames int `yaml:"frames"`

		// TrailPoints caps how many traced points stay visible
		TrailPoints int `yaml:"trailPoints"`

		// Width and Height are the output canvas dimensions in pixels
		Width  int `yaml:"width"`
		Height int `yaml:"height"`

		// DelayCS is the per-frame GIF delay in hundredths of a second
		DelayCS int `yaml:"delayCS"`

		// Workers is the number of goroutines rasterizing frames in parallel
		Workers int `yaml:"workers"`
	} `yaml:"animation"`

	// Output parameters
	Output struct {
		// Directory is where rendered files are written
		Directory string `yaml:"directory"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default edge extraction parameters
	cfg.Edge.LowThreshold = 50
	cfg.Edge.HighThreshold = 100
	cfg.Edge.DilateRadius = 2
	cfg.Edge.Thin = true

	// Set default epicycle parameters
	cfg.Epicycles.Terms = 500
	cfg.Epicycles.MinRadius = 0.001
	cfg.Epicycles.FrequencyConvention = "symmetric"

	// Set default animation parameters
	cfg.Animation.Frames = 1200
	cfg.Animation.TrailPoints = 15000
	cfg.Animation.Width = 900
	cfg.Animation.Height = 800
	cfg.Animation.DelayCS = 2
	cfg.Animation.Workers = runtime.NumCPU()

	// Set default output parameters
	cfg.Output.Directory = "sketch_output"
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
