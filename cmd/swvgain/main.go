// Command swvgain measures the gain of a square-wave voltammetry trace.
//
// Usage:
//
//	swvgain [flags] trace.csv
//
// The trace is read from a CSV file with a potential and a current column,
// optionally compressed with gzip or zstd.
// The current at the dip nearest the target potential is compared with a
// straight baseline drawn between the two neighbouring maxima; the depth of
// the dip below that baseline is the gain.
//
// Examples:
//
//	swvgain sweep.csv
//	swvgain -config analysis.yaml -overlay overlay.csv sweep.csv
//	swvgain -window 15 -order 2 -target -0.25 -v sweep.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-swv/internal/config"
	"github.com/cwbudde/algo-swv/internal/traceio"
	"github.com/cwbudde/algo-swv/measure/swv"
	"github.com/cwbudde/algo-swv/stats/residual"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("swvgain", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfgPath := fs.String("config", "", "YAML analysis configuration")
	window := fs.Int("window", swv.DefaultWindowLength, "smoothing window length (odd)")
	order := fs.Int("order", swv.DefaultPolyOrder, "smoothing polynomial order")
	prominence := fs.Float64("prominence", swv.DefaultProminence, "initial extremum prominence")
	target := fs.Float64("target", swv.DefaultTargetPotential, "target potential of the feature")
	overlay := fs.String("overlay", "", "write smoothed trace, baseline and markers as CSV to this file")
	verbose := fs.Bool("v", false, "log pipeline stages to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: swvgain [flags] trace.csv\n\n")
		fmt.Fprintf(stderr, "Measures the dip depth below the local baseline of an SWV trace.\n")
		fmt.Fprintf(stderr, "Flags given on the command line override the configuration file.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.New().String())

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logger.Error("loading configuration", "error", err)
			return 1
		}
		cfg = *loaded
	}

	opts := cfg.Options()
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "window":
			opts = append(opts, swv.WithWindowLength(*window))
		case "order":
			opts = append(opts, swv.WithPolyOrder(*order))
		case "prominence":
			opts = append(opts, swv.WithProminence(*prominence))
		case "target":
			opts = append(opts, swv.WithTargetPotential(*target))
		}
	})
	opts = append(opts, swv.WithLogger(logger))

	path := fs.Arg(0)
	tr, units, stats, err := traceio.ReadFile(path)
	if err != nil {
		logger.Error("reading trace", "path", path, "error", err)
		return 1
	}
	if stats.Dropped > 0 {
		logger.Warn("dropped incomplete rows", "path", path, "rows", stats.Rows, "dropped", stats.Dropped)
	}

	res, err := swv.Analyze(tr, opts...)
	if err != nil {
		var se *swv.StageError
		if errors.As(err, &se) {
			logger.Error("analysis failed", "path", path, "stage", se.Stage, "error", se.Err)
		} else {
			logger.Error("analysis failed", "path", path, "error", err)
		}
		return 1
	}

	if *overlay != "" {
		if err := writeOverlay(*overlay, res, units); err != nil {
			logger.Error("writing overlay", "path", *overlay, "error", err)
			return 1
		}
	}

	noise, err := residual.Calculate(tr.Current, res.Smoothed.Current)
	if err != nil {
		logger.Error("residual statistics", "error", err)
		return 1
	}

	if err := printReport(stdout, path, tr, res, noise, units); err != nil {
		fmt.Fprintf(stderr, "error: failed to write report: %v\n", err)
		return 1
	}
	return 0
}

func writeOverlay(path string, res swv.Result, units traceio.Units) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return traceio.WriteOverlay(f, res, units)
}

func printReport(w io.Writer, path string, raw swv.Trace, res swv.Result, noise residual.Stats, units traceio.Units) error {
	pu := unitSuffix(units.Of(traceio.Potential))
	cu := unitSuffix(units.Of(traceio.Current))
	sm := res.Smoothed
	win := res.Window

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Trace\t%s\n", path)
	fmt.Fprintf(tw, "Samples\t%d\n", raw.Len())
	fmt.Fprintf(tw, "Minimum\t#%d at %.4f%s\n", win.Minimum, sm.Potential[win.Minimum], pu)
	fmt.Fprintf(tw, "Maximum before\t#%d at %.4f%s\n", win.Before, sm.Potential[win.Before], pu)
	fmt.Fprintf(tw, "Maximum after\t#%d at %.4f%s\n", win.After, sm.Potential[win.After], pu)
	fmt.Fprintf(tw, "Baseline\t%.6g * E + %.6g\n", res.Baseline.Slope, res.Baseline.Intercept)
	fmt.Fprintf(tw, "Search\t%d minima (%d attempts), %d maxima (%d attempts)\n",
		len(res.Minima.Indices), res.Minima.Attempts, len(res.Maxima.Indices), res.Maxima.Attempts)
	fmt.Fprintf(tw, "Residual RMS\t%.3g%s (%d zero crossings)\n", noise.RMS, cu, noise.ZeroCrossings)
	fmt.Fprintf(tw, "SNR\t%.1f dB\n", noise.SNR(res.Gain))
	fmt.Fprintf(tw, "Gain\t%.6g%s\n", res.Gain, cu)
	return tw.Flush()
}

func unitSuffix(u string) string {
	if u == "" {
		return ""
	}
	return " " + u
}
