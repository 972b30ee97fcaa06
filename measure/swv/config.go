package swv

import (
	"io"
	"log/slog"
)

// Defaults applied by DefaultConfig.
const (
	DefaultWindowLength    = 11
	DefaultPolyOrder       = 3
	DefaultProminence      = 0.1
	DefaultTargetPotential = -0.3
)

// Config holds the analysis parameters.
type Config struct {
	WindowLength     int
	PolyOrder        int
	Prominence       float64 // initial threshold for both extremum searches
	TargetPotential  float64 // expected dip position, in the trace's potential unit
	SpacingTolerance float64 // see Trace.Validate

	Logger *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the parameters used when no option is given.
func DefaultConfig() Config {
	return Config{
		WindowLength:     DefaultWindowLength,
		PolyOrder:        DefaultPolyOrder,
		Prominence:       DefaultProminence,
		TargetPotential:  DefaultTargetPotential,
		SpacingTolerance: DefaultSpacingTolerance,
	}
}

// WithWindowLength sets the smoothing window length. It must be odd.
func WithWindowLength(n int) Option {
	return func(cfg *Config) {
		cfg.WindowLength = n
	}
}

// WithPolyOrder sets the smoothing polynomial order.
func WithPolyOrder(order int) Option {
	return func(cfg *Config) {
		cfg.PolyOrder = order
	}
}

// WithProminence sets the initial prominence threshold.
func WithProminence(p float64) Option {
	return func(cfg *Config) {
		cfg.Prominence = p
	}
}

// WithTargetPotential sets the potential the selected dip should be closest to.
func WithTargetPotential(v float64) Option {
	return func(cfg *Config) {
		cfg.TargetPotential = v
	}
}

// WithSpacingTolerance sets the accepted relative potential step deviation.
// Non-positive values are ignored.
func WithSpacingTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 {
			cfg.SpacingTolerance = tol
		}
	}
}

// WithLogger attaches a logger for stage-level debug records.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}
