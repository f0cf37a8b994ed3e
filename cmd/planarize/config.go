package main

import (
	"fmt"
	"os"

	"github.com/tdewolff/planar"
	"gopkg.in/yaml.v3"
)

// Config is the YAML options file. Absent keys keep their value.
type Config struct {
	Tolerance     *float64  `yaml:"tolerance"`
	SnapTolerance *float64  `yaml:"snap_tolerance"`
	Box           []float64 `yaml:"box"`
	MaxPasses     *int      `yaml:"max_passes"`
	Workers       *int      `yaml:"workers"`
	Degenerate    string    `yaml:"degenerate"`
}

func loadConfig(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Apply sets the options given in the file.
func (cfg *Config) Apply(opts *planar.Options) error {
	if cfg.Tolerance != nil {
		opts.Tolerance = *cfg.Tolerance
	}
	if cfg.SnapTolerance != nil {
		opts.SnapTolerance = *cfg.SnapTolerance
	}
	if cfg.Box != nil {
		if len(cfg.Box) != 2 {
			return fmt.Errorf("box must have two values, got %d", len(cfg.Box))
		}
		opts.Box = &planar.Point{X: cfg.Box[0], Y: cfg.Box[1]}
	}
	if cfg.MaxPasses != nil {
		opts.MaxPasses = *cfg.MaxPasses
	}
	if cfg.Workers != nil {
		opts.Workers = *cfg.Workers
	}
	switch cfg.Degenerate {
	case "":
	case planar.DropDegenerate.String():
		opts.Degenerate = planar.DropDegenerate
	case planar.RejectDegenerate.String():
		opts.Degenerate = planar.RejectDegenerate
	default:
		return fmt.Errorf("unknown degenerate policy %q", cfg.Degenerate)
	}
	return nil
}
