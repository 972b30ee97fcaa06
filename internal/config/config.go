// Package config loads analysis settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-swv/dsp/core"
	"github.com/cwbudde/algo-swv/measure/swv"
)

// Config mirrors the tunable analysis parameters. Zero values are replaced
// by the swv defaults.
type Config struct {
	Smoothing Smoothing `yaml:"smoothing"`
	Search    Search    `yaml:"search"`

	TargetPotential  *float64 `yaml:"target_potential"`
	SpacingTolerance float64  `yaml:"spacing_tolerance,omitempty"`
}

// Smoothing configures the Savitzky-Golay smoother.
type Smoothing struct {
	WindowLength int  `yaml:"window_length"`
	PolyOrder    *int `yaml:"poly_order"` // 0 is a valid order
}

// Search configures the adaptive extremum search.
type Search struct {
	Prominence float64 `yaml:"prominence"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	target := swv.DefaultTargetPotential
	order := swv.DefaultPolyOrder
	return Config{
		Smoothing: Smoothing{
			WindowLength: swv.DefaultWindowLength,
			PolyOrder:    &order,
		},
		Search:           Search{Prominence: swv.DefaultProminence},
		TargetPotential:  &target,
		SpacingTolerance: swv.DefaultSpacingTolerance,
	}
}

// Load reads a YAML configuration file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML from r, fills defaults and validates the result.
// An empty document yields the defaults.
func Decode(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Smoothing.WindowLength == 0 {
		c.Smoothing.WindowLength = def.Smoothing.WindowLength
	}
	if c.Smoothing.PolyOrder == nil {
		c.Smoothing.PolyOrder = def.Smoothing.PolyOrder
	}
	if c.Search.Prominence == 0 {
		c.Search.Prominence = def.Search.Prominence
	}
	if c.TargetPotential == nil {
		c.TargetPotential = def.TargetPotential
	}
	if c.SpacingTolerance == 0 {
		c.SpacingTolerance = def.SpacingTolerance
	}
}

// Validate rejects settings the analysis would refuse anyway, so a bad file
// is reported before any trace is read.
func (c *Config) Validate() error {
	if c.Smoothing.PolyOrder == nil || c.TargetPotential == nil {
		return errors.New("incomplete configuration: call Default or Decode")
	}
	w, p := c.Smoothing.WindowLength, *c.Smoothing.PolyOrder
	if w < 1 || w%2 == 0 {
		return fmt.Errorf("smoothing.window_length must be a positive odd number: %d", w)
	}
	if p < 0 || p >= w {
		return fmt.Errorf("smoothing.poly_order must be in [0, %d): %d", w, p)
	}
	if p := c.Search.Prominence; !(p > 0) || !core.IsFinite(p) {
		return fmt.Errorf("search.prominence must be finite and > 0: %g", p)
	}
	if v := *c.TargetPotential; !core.IsFinite(v) {
		return fmt.Errorf("target_potential must be finite: %g", v)
	}
	if tol := c.SpacingTolerance; !(tol >= 0) || !core.IsFinite(tol) {
		return fmt.Errorf("spacing_tolerance must be finite and >= 0: %g", tol)
	}
	return nil
}

// Options converts the configuration to analyzer options.
func (c *Config) Options() []swv.Option {
	opts := []swv.Option{
		swv.WithWindowLength(c.Smoothing.WindowLength),
		swv.WithProminence(c.Search.Prominence),
		swv.WithSpacingTolerance(c.SpacingTolerance),
	}
	if c.Smoothing.PolyOrder != nil {
		opts = append(opts, swv.WithPolyOrder(*c.Smoothing.PolyOrder))
	}
	if c.TargetPotential != nil {
		opts = append(opts, swv.WithTargetPotential(*c.TargetPotential))
	}
	return opts
}
