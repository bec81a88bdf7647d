// Package config loads user preferences for the authoring session.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// struct for user-tunable settings
type Config struct {
	// Overlay defaults applied when a session opens
	Overlay struct {
		AnchorX float64 `yaml:"anchor_x"`
		AnchorY float64 `yaml:"anchor_y"`
		Width   float64 `yaml:"width"`
		Height  float64 `yaml:"height"`
	} `yaml:"overlay"`

	// Transcription settings
	Transcribe struct {
		Model    string `yaml:"model"`
		Language string `yaml:"language"`
	} `yaml:"transcribe"`
}

func Default() *Config {
	c := &Config{}
	c.Overlay.AnchorX = 50
	c.Overlay.AnchorY = 15
	c.Overlay.Width = 320
	c.Overlay.Height = 80
	c.Transcribe.Model = "whisper-1"
	return c
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "overcue", "config.yaml"), nil
}

// Load reads a config file, applying defaults for anything unset. A missing
// file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Overlay.Width <= 0 || cfg.Overlay.Height <= 0 {
		return nil, fmt.Errorf("config %s: overlay size must be positive", path)
	}

	return cfg, nil
}
