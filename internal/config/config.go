// Package config loads and validates server configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"focuspeak/pkg/peaking"
)

// PeakingConfig holds the default highlight parameters applied to requests
// that do not override them.
type PeakingConfig struct {
	Threshold  int     `yaml:"threshold"`
	Color      string  `yaml:"color"`
	BlendAlpha float64 `yaml:"blend_alpha"`
	Detector   string  `yaml:"detector"`
	CleanMask  bool    `yaml:"clean_mask"`
}

type Config struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	StaticDir   string        `yaml:"static_dir"`
	BodyLimitMB int           `yaml:"body_limit_mb"`
	Peaking     PeakingConfig `yaml:"peaking"`
}

func Default() *Config {
	return &Config{
		Host:        "0.0.0.0",
		Port:        8080,
		BodyLimitMB: 32,
		Peaking: PeakingConfig{
			Threshold:  peaking.DefaultThreshold,
			Color:      "#FF0000",
			BlendAlpha: peaking.DefaultBlendAlpha,
			Detector:   "laplacian",
			CleanMask:  true,
		},
	}
}

// Load reads a YAML config file on top of the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.BodyLimitMB < 1 {
		return fmt.Errorf("body_limit_mb must be positive, got %d", c.BodyLimitMB)
	}
	if _, err := c.PeakingParams(); err != nil {
		return err
	}
	return nil
}

// PeakingParams converts the configured defaults into pipeline parameters.
func (c *Config) PeakingParams() (*peaking.Params, error) {
	color, err := peaking.ParseHexColor(c.Peaking.Color)
	if err != nil {
		return nil, err
	}
	detector, err := peaking.ParseDetector(c.Peaking.Detector)
	if err != nil {
		return nil, err
	}
	p := peaking.NewParams()
	p.Threshold = c.Peaking.Threshold
	p.Color = color
	p.BlendAlpha = c.Peaking.BlendAlpha
	p.Detector = detector
	p.CleanMask = c.Peaking.CleanMask
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
