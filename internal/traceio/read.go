package traceio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/cwbudde/algo-swv/measure/swv"
)

// Channel names used as Units keys.
const (
	Potential = "Potential"
	Current   = "Current"
)

var (
	ErrEmpty         = errors.New("traceio: no samples")
	ErrMissingColumn = errors.New("traceio: missing column")
)

// Units maps a channel name to its unit string. Units are for display only.
type Units map[string]string

// Of returns the unit of the named channel, or "" when unknown.
func (u Units) Of(channel string) string {
	if u == nil {
		return ""
	}
	return u[channel]
}

// ReadStats reports what the reader kept and dropped.
type ReadStats struct {
	Rows    int // data rows seen
	Dropped int // rows discarded for empty or non-finite cells
}

var headerRe = regexp.MustCompile(`^\s*([^(\[/]*?)\s*(?:[(\[]\s*([^)\]]*?)\s*[)\]]|/\s*(\S+))?\s*$`)

// ReadFile opens path and reads it with Read. Files ending in .gz or .zst
// are decompressed on the fly.
func ReadFile(path string) (swv.Trace, Units, ReadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return swv.Trace{}, nil, ReadStats{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return swv.Trace{}, nil, ReadStats{}, fmt.Errorf("traceio: %s: %w", path, err)
		}
		defer zr.Close()
		return Read(zr)
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return swv.Trace{}, nil, ReadStats{}, fmt.Errorf("traceio: %s: %w", path, err)
		}
		defer zr.Close()
		return Read(zr)
	default:
		return Read(f)
	}
}

// Read parses a CSV trace. Without a header the first two columns are taken
// as potential and current and no units are reported. Lines starting with
// '#' are ignored.
func Read(r io.Reader) (swv.Trace, Units, ReadStats, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		tr      swv.Trace
		units   = Units{}
		stats   ReadStats
		pCol    = 0
		cCol    = 1
		started bool
	)

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return swv.Trace{}, nil, stats, fmt.Errorf("traceio: %w", err)
		}

		if !started {
			started = true
			if !isNumeric(rec) {
				pCol, cCol, err = parseHeader(rec, units)
				if err != nil {
					return swv.Trace{}, nil, stats, err
				}
				continue
			}
		}

		stats.Rows++
		p, okP := cell(rec, pCol)
		c, okC := cell(rec, cCol)
		if !okP || !okC {
			stats.Dropped++
			continue
		}
		tr.Potential = append(tr.Potential, p)
		tr.Current = append(tr.Current, c)
	}

	if tr.Len() == 0 {
		return swv.Trace{}, nil, stats, ErrEmpty
	}
	return tr, units, stats, nil
}

func parseHeader(rec []string, units Units) (pCol, cCol int, err error) {
	pCol, cCol = -1, -1
	for i, field := range rec {
		name, unit := splitHeader(field)
		switch strings.ToLower(name) {
		case "potential", "voltage", "e", "v", "u":
			if pCol < 0 {
				pCol = i
				units[Potential] = unit
			}
		case "current", "i":
			if cCol < 0 {
				cCol = i
				units[Current] = unit
			}
		}
	}
	if pCol < 0 {
		return 0, 0, fmt.Errorf("%w: potential (header %q)", ErrMissingColumn, rec)
	}
	if cCol < 0 {
		return 0, 0, fmt.Errorf("%w: current (header %q)", ErrMissingColumn, rec)
	}
	return pCol, cCol, nil
}

func splitHeader(field string) (name, unit string) {
	m := headerRe.FindStringSubmatch(field)
	if m == nil {
		return strings.TrimSpace(field), ""
	}
	unit = m[2]
	if unit == "" {
		unit = m[3]
	}
	return m[1], unit
}

func isNumeric(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	return err == nil
}

func cell(rec []string, col int) (float64, bool) {
	if col >= len(rec) {
		return 0, false
	}
	s := strings.TrimSpace(rec[col])
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
