package traceio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-swv/measure/swv"
)

// Marker values written in the overlay "feature" column.
const (
	MarkMinimum   = "minimum"
	MarkMaxBefore = "max_before"
	MarkMaxAfter  = "max_after"
)

// WriteOverlay writes the smoothed trace of res as CSV with the baseline
// evaluated between the two bracketing maxima and a feature marker column.
// Baseline cells outside the bracket are left empty.
func WriteOverlay(w io.Writer, res swv.Result, units Units) error {
	cw := csv.NewWriter(w)

	header := []string{
		withUnit(Potential, units.Of(Potential)),
		withUnit(Current, units.Of(Current)),
		withUnit("Baseline", units.Of(Current)),
		"Feature",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	tr := res.Smoothed
	win := res.Window
	lo, hi := win.Before, win.After
	if lo > hi {
		lo, hi = hi, lo
	}

	for i := range tr.Len() {
		p, c := tr.At(i)
		row := []string{format(p), format(c), "", marker(win, i)}
		if win.Complete() && i >= lo && i <= hi {
			row[2] = format(res.Baseline.At(p))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func marker(w swv.FeatureWindow, i int) string {
	switch i {
	case w.Minimum:
		return MarkMinimum
	case w.Before:
		return MarkMaxBefore
	case w.After:
		return MarkMaxAfter
	default:
		return ""
	}
}

func withUnit(name, unit string) string {
	if unit == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, unit)
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
