package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/decidiag/internal/decision"
	"github.com/san-kum/decidiag/internal/figure"
)

const (
	DefaultTheme    = "cyberpunk"
	DefaultAddr     = "127.0.0.1:8501"
	DefaultLogLevel = "info"
)

type Config struct {
	Params decision.Params `yaml:"params"`
	Theme  string          `yaml:"theme"`
	Figure FigureConfig    `yaml:"figure"`
	Server ServerConfig    `yaml:"server"`
	Log    LogConfig       `yaml:"log"`
}

type FigureConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Params: decision.DefaultParams(),
		Theme:  DefaultTheme,
		Figure: FigureConfig{
			Width:  figure.DefaultWidth,
			Height: figure.DefaultHeight,
		},
		Server: ServerConfig{Addr: DefaultAddr},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads a YAML file on top of the defaults and snaps the parameters
// onto their slider steps.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file on top of base. Keys missing from the file keep
// the values of base, so a preset applied to base survives a file that sets
// no params.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Params = cfg.Params.Snapped()
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if c.Figure.Width <= 0 || c.Figure.Height <= 0 {
		return fmt.Errorf("figure size %dx%d must be positive", c.Figure.Width, c.Figure.Height)
	}
	return nil
}

// ApplyPreset copies the parameters of a named preset into c.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	c.Params = p.Params
	return nil
}
