// Package config reads the optional weft.yaml application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-weft/weft/pkg/rendering"
)

// Defaults applied by Resolve.
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	// DefaultMaxRestarts bounds pipeline restarts per render cycle. A
	// correct tree reaches its fixed point in a handful of passes; anything
	// still enqueueing events after this many is looping.
	DefaultMaxRestarts = 16
)

// DefaultBackground is the viewport fill painted behind the root widget.
const DefaultBackground = "#272822"

// Config represents the optional weft.yaml configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Window   WindowConfig   `yaml:"window"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// WindowConfig contains the initial window geometry and colors.
type WindowConfig struct {
	Width      float64 `yaml:"width,omitempty"`
	Height     float64 `yaml:"height,omitempty"`
	Background string  `yaml:"background,omitempty"`
}

// PipelineConfig contains render pipeline settings.
type PipelineConfig struct {
	MaxRestarts int `yaml:"max_restarts,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	AppName     string
	WindowSize  rendering.Size
	Background  rendering.Color
	MaxRestarts int
}

// LoadOptional reads weft.yaml from dir if present. A missing file yields
// an empty config, not an error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "weft.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read weft.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse weft.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve fills defaults and parses color values.
func (c *Config) Resolve() (*Resolved, error) {
	resolved := &Resolved{
		AppName: c.App.Name,
		WindowSize: rendering.Size{
			Width:  c.Window.Width,
			Height: c.Window.Height,
		},
		MaxRestarts: c.Pipeline.MaxRestarts,
	}
	if resolved.WindowSize.Width <= 0 {
		resolved.WindowSize.Width = DefaultWindowWidth
	}
	if resolved.WindowSize.Height <= 0 {
		resolved.WindowSize.Height = DefaultWindowHeight
	}
	if resolved.MaxRestarts <= 0 {
		resolved.MaxRestarts = DefaultMaxRestarts
	}

	background := c.Window.Background
	if background == "" {
		background = DefaultBackground
	}
	color, err := rendering.ParseHex(background)
	if err != nil {
		return nil, fmt.Errorf("window.background: %w", err)
	}
	resolved.Background = color

	return resolved, nil
}
