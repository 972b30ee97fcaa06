package swv

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/cwbudde/algo-swv/dsp/peaks"
	"github.com/cwbudde/algo-swv/internal/testutil"
)

func TestAnalyzeScenarioA(t *testing.T) {
	tr := scenarioATrace()

	res, err := Analyze(tr)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	w := res.Window
	if w.Minimum != 20 {
		t.Fatalf("minimum index = %d, want 20", w.Minimum)
	}
	if w.Before < 4 || w.Before > 6 {
		t.Fatalf("before = %d, want ~5", w.Before)
	}
	if w.After < 34 || w.After > 36 {
		t.Fatalf("after = %d, want ~35", w.After)
	}
	if math.Abs(res.Gain-3) > 0.15 {
		t.Fatalf("gain = %v, want ~3", res.Gain)
	}
	if res.Difference != -res.Gain {
		t.Fatalf("difference = %v, want %v", res.Difference, -res.Gain)
	}
	if res.Smoothed.Len() != tr.Len() {
		t.Fatalf("smoothed length = %d, want %d", res.Smoothed.Len(), tr.Len())
	}
}

func TestAnalyzeScenarioBFlat(t *testing.T) {
	tr := Trace{
		Potential: testutil.Linspace(-0.5, 0.5, 101),
		Current:   testutil.DC(1.5, 101),
	}

	_, err := Analyze(tr)
	if !errors.Is(err, ErrNoExtremumFound) {
		t.Fatalf("err = %v, want ErrNoExtremumFound", err)
	}

	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageMinimaFound {
		t.Fatalf("err = %v, want StageError at %s", err, StageMinimaFound)
	}

	var ex *peaks.ExhaustedError
	if !errors.As(err, &ex) || ex.Attempts != peaks.MaxAttempts {
		t.Fatalf("err = %v, want exhaustion after %d attempts", err, peaks.MaxAttempts)
	}
}

func TestAnalyzeTwoDips(t *testing.T) {
	tr := twoDipTrace()

	tests := []struct {
		name   string
		target float64
		want   FeatureWindow
		gain   float64
	}{
		{name: "first dip", target: -0.3, want: FeatureWindow{Minimum: 40, Before: 10, After: 90}, gain: 1.5},
		{name: "second dip", target: 0.25, want: FeatureWindow{Minimum: 140, Before: 90, After: 170}, gain: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Analyze(tr, WithTargetPotential(tt.target))
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if res.Window != tt.want {
				t.Fatalf("window = %+v, want %+v", res.Window, tt.want)
			}
			if math.Abs(res.Gain-tt.gain) > 0.05 {
				t.Fatalf("gain = %v, want ~%v", res.Gain, tt.gain)
			}
			if res.Minima.Attempts != 1 || res.Maxima.Attempts != 1 {
				t.Fatalf("attempts = (%d, %d), want (1, 1)", res.Minima.Attempts, res.Maxima.Attempts)
			}
		})
	}
}

func TestAnalyzeNoisyTrace(t *testing.T) {
	tr := twoDipTrace()
	noise := testutil.DeterministicNoise(11, 0.01, tr.Len())
	for i := range tr.Current {
		tr.Current[i] += noise[i]
	}

	res, err := Analyze(tr)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Window.Minimum < 38 || res.Window.Minimum > 42 {
		t.Fatalf("minimum = %d, want ~40", res.Window.Minimum)
	}
	if math.Abs(res.Gain-1.5) > 0.1 {
		t.Fatalf("gain = %v, want ~1.5", res.Gain)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	tr := twoDipTrace()
	a := NewAnalyzer()

	first, err := a.Analyze(tr)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	second, err := a.Analyze(tr)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated analysis produced different results")
	}
}

func TestAnalyzeDoesNotMutateInput(t *testing.T) {
	tr := twoDipTrace()
	orig := tr.Clone()

	if _, err := Analyze(tr); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, tr.Potential, orig.Potential, 0)
	testutil.RequireSliceNearlyEqual(t, tr.Current, orig.Current, 0)
}

func TestAnalyzeSingleMinimum(t *testing.T) {
	// A parabola has one minimum; a quadratic survives smoothing exactly.
	p := testutil.Linspace(-0.5, 0.5, 101)
	c := make([]float64, len(p))
	for i, v := range p {
		c[i] = v * v
	}

	_, err := Analyze(Trace{Potential: p, Current: c})
	if !errors.Is(err, ErrNoExtremumFound) {
		t.Fatalf("err = %v, want ErrNoExtremumFound", err)
	}
}

func TestAnalyzeIncompleteBracket(t *testing.T) {
	tr := syntheticTrace(-0.5, 0.5, 201,
		feature{-0.45, 0.03, 0.5},
		feature{-0.3, 0.03, -1},
		feature{0, 0.03, 0.5},
		feature{0.3, 0.03, -1},
	)

	_, err := Analyze(tr, WithTargetPotential(0.3))
	if !errors.Is(err, ErrIncompleteBracket) {
		t.Fatalf("err = %v, want ErrIncompleteBracket", err)
	}

	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageGainComputed {
		t.Fatalf("err = %v, want StageError at %s", err, StageGainComputed)
	}
}

func TestAnalyzeStageErrors(t *testing.T) {
	tr := twoDipTrace()
	short := Trace{Potential: tr.Potential[:7], Current: tr.Current[:7]}
	bad := tr.Clone()
	bad.Potential[50] = bad.Potential[49]

	tests := []struct {
		name  string
		trace Trace
		opts  []Option
		stage Stage
		want  error
	}{
		{name: "non monotonic", trace: bad, stage: StageRaw, want: ErrNonMonotonic},
		{name: "even window", trace: tr, opts: []Option{WithWindowLength(10)}, stage: StageSmoothed, want: ErrInvalidSmoothingParameters},
		{name: "order too high", trace: tr, opts: []Option{WithPolyOrder(11)}, stage: StageSmoothed, want: ErrInvalidSmoothingParameters},
		{name: "too short", trace: short, stage: StageSmoothed, want: ErrInsufficientSamples},
		{name: "bad prominence", trace: tr, opts: []Option{WithProminence(0)}, stage: StageMinimaFound, want: ErrInvalidProminence},
		{name: "nan target", trace: scenarioATrace(), opts: []Option{WithTargetPotential(math.NaN())}, stage: StageRaw, want: ErrInvalidTarget},
		{name: "infinite target", trace: tr, opts: []Option{WithTargetPotential(math.Inf(1))}, stage: StageRaw, want: ErrInvalidTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Analyze(tt.trace, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var se *StageError
			if !errors.As(err, &se) || se.Stage != tt.stage {
				t.Fatalf("err = %v, want stage %s", err, tt.stage)
			}
			if !reflect.DeepEqual(res, Result{}) {
				t.Fatalf("failed analysis returned a non-zero result: %+v", res)
			}
		})
	}
}

func TestAnalyzeConcurrent(t *testing.T) {
	traces := []Trace{twoDipTrace(), scenarioATrace(), twoDipTrace()}
	a := NewAnalyzer()

	want := make([]Result, len(traces))
	for i, tr := range traces {
		res, err := a.Analyze(tr)
		if err != nil {
			t.Fatalf("Analyze[%d]: %v", i, err)
		}
		want[i] = res
	}

	got := make([]Result, len(traces))
	var wg sync.WaitGroup
	for i, tr := range traces {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i], _ = a.Analyze(tr)
		}()
	}
	wg.Wait()

	for i := range traces {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Fatalf("trace %d: concurrent result differs", i)
		}
	}
}

func TestAnalyzeLogsStages(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := Analyze(twoDipTrace(), WithLogger(logger)); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for _, msg := range []string{"trace smoothed", "minima found", "maxima found", "feature selected", "gain computed"} {
		if !strings.Contains(buf.String(), msg) {
			t.Errorf("log output missing %q", msg)
		}
	}
}

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(
		WithWindowLength(7),
		WithPolyOrder(2),
		WithProminence(0.5),
		WithTargetPotential(0.1),
		WithSpacingTolerance(0.2),
		nil,
	)
	if cfg.WindowLength != 7 || cfg.PolyOrder != 2 || cfg.Prominence != 0.5 ||
		cfg.TargetPotential != 0.1 || cfg.SpacingTolerance != 0.2 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Logger == nil {
		t.Fatal("default logger missing")
	}

	def := ApplyOptions(WithSpacingTolerance(-1))
	if def.SpacingTolerance != DefaultSpacingTolerance {
		t.Fatalf("negative tolerance not ignored: %v", def.SpacingTolerance)
	}
	if def.WindowLength != DefaultWindowLength || def.PolyOrder != DefaultPolyOrder ||
		def.Prominence != DefaultProminence || def.TargetPotential != DefaultTargetPotential {
		t.Fatalf("unexpected defaults %+v", def)
	}
}

func TestStageString(t *testing.T) {
	if StageMaximaFound.String() != "maxima found" {
		t.Fatalf("String() = %q", StageMaximaFound.String())
	}
	if Stage(42).String() != "unknown" {
		t.Fatalf("String() = %q", Stage(42).String())
	}
	err := &StageError{Stage: StageSmoothed, Err: ErrInsufficientSamples}
	if !strings.Contains(err.Error(), "smoothed") {
		t.Fatalf("Error() = %q", err.Error())
	}
}
