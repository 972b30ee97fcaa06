package swv

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-swv/dsp/core"
	"github.com/cwbudde/algo-swv/dsp/peaks"
)

// Stage is a state of the analysis pipeline.
type Stage int

// Pipeline states, in the order an analysis passes through them.
const (
	StageRaw Stage = iota
	StageSmoothed
	StageMinimaFound
	StageMaximaFound
	StageFeatureSelected
	StageGainComputed
)

func (s Stage) String() string {
	switch s {
	case StageRaw:
		return "raw"
	case StageSmoothed:
		return "smoothed"
	case StageMinimaFound:
		return "minima found"
	case StageMaximaFound:
		return "maxima found"
	case StageFeatureSelected:
		return "feature selected"
	case StageGainComputed:
		return "gain computed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one analysis.
type Result struct {
	// Gain is the depth of the dip below the baseline: projected minus
	// observed current at the minimum. Positive for a dip.
	Gain float64
	// Difference is observed minus projected current, i.e. -Gain.
	Difference float64

	Window   FeatureWindow
	Baseline Baseline

	// Smoothed is the trace every index in Window refers to.
	Smoothed Trace

	Minima peaks.SearchResult
	Maxima peaks.SearchResult
}

// Analyzer runs the gain pipeline with a fixed configuration.
type Analyzer struct {
	cfg Config
	log *slog.Logger
}

// NewAnalyzer creates an analyzer from the default config and the given options.
func NewAnalyzer(opts ...Option) *Analyzer {
	cfg := ApplyOptions(opts...)
	return &Analyzer{cfg: cfg, log: cfg.Logger}
}

// Analyze is a one-shot helper for NewAnalyzer(opts...).Analyze(t).
func Analyze(t Trace, opts ...Option) (Result, error) {
	return NewAnalyzer(opts...).Analyze(t)
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Analyze runs validation, smoothing, both extremum searches, feature
// selection and baseline projection in order. The first failing stage stops
// the run; its error is returned as a *StageError.
func (a *Analyzer) Analyze(t Trace) (Result, error) {
	cfg := a.cfg

	if !core.IsFinite(cfg.TargetPotential) {
		return Result{}, a.fail(StageRaw, fmt.Errorf("%w: %v", ErrInvalidTarget, cfg.TargetPotential))
	}
	if err := t.Validate(cfg.SpacingTolerance); err != nil {
		return Result{}, a.fail(StageRaw, err)
	}

	smoothed, err := Smooth(t, cfg.WindowLength, cfg.PolyOrder)
	if err != nil {
		return Result{}, a.fail(StageSmoothed, err)
	}
	a.log.Debug("trace smoothed", "samples", smoothed.Len(),
		"window", cfg.WindowLength, "order", cfg.PolyOrder)

	minima, err := peaks.Search(smoothed.Current, peaks.Minimum, cfg.Prominence)
	if err != nil {
		return Result{}, a.fail(StageMinimaFound, err)
	}
	a.log.Debug("minima found", "count", len(minima.Indices),
		"prominence", minima.Prominence, "attempts", minima.Attempts)

	maxima, err := peaks.Search(smoothed.Current, peaks.Maximum, cfg.Prominence)
	if err != nil {
		return Result{}, a.fail(StageMaximaFound, err)
	}
	a.log.Debug("maxima found", "count", len(maxima.Indices),
		"prominence", maxima.Prominence, "attempts", maxima.Attempts)

	window, err := SelectFeature(smoothed, minima.Indices, maxima.Indices, cfg.TargetPotential)
	if err != nil {
		return Result{}, a.fail(StageFeatureSelected, err)
	}
	a.log.Debug("feature selected", "window", window.String(), "target", cfg.TargetPotential)

	baseline, err := FitBaseline(smoothed, window)
	if err != nil {
		return Result{}, a.fail(StageGainComputed, err)
	}
	diff, err := difference(smoothed, window.Minimum, baseline)
	if err != nil {
		return Result{}, a.fail(StageGainComputed, err)
	}
	a.log.Debug("gain computed", "gain", -diff, "slope", baseline.Slope)

	return Result{
		Gain:       -diff,
		Difference: diff,
		Window:     window,
		Baseline:   baseline,
		Smoothed:   smoothed,
		Minima:     minima,
		Maxima:     maxima,
	}, nil
}

func (a *Analyzer) fail(stage Stage, err error) error {
	a.log.Debug("analysis failed", "stage", stage.String(), "err", err)
	return &StageError{Stage: stage, Err: err}
}
