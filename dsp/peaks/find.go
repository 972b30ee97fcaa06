package peaks

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Kind selects which extrema are searched for.
type Kind int

// Extremum kinds.
const (
	Minimum Kind = iota
	Maximum
)

func (k Kind) String() string {
	switch k {
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	default:
		return "unknown"
	}
}

// MinCount is the smallest number of qualifying extrema Find reports.
// A lone extremum is discarded: selecting a feature and bracketing it
// needs at least two.
const MinCount = 2

// Find returns the ascending indices of the extrema of the given kind whose
// prominence is at least prominence. It returns nil when fewer than
// MinCount extrema qualify.
func Find(x []float64, kind Kind, prominence float64) []int {
	data := x
	if kind == Minimum {
		data = slices.Clone(x)
		floats.Scale(-1, data)
	}

	candidates := LocalMaxima(data)
	if len(candidates) < MinCount {
		return nil
	}

	prom := Prominences(data, candidates)
	out := make([]int, 0, len(candidates))
	for i, p := range candidates {
		if prom[i] >= prominence {
			out = append(out, p)
		}
	}
	if len(out) < MinCount {
		return nil
	}
	return out
}

// LocalMaxima returns the ascending indices of samples that are strictly
// greater than their left neighbour and whose right side, after an optional
// run of equal samples, drops. For a plateau the middle index is reported
// (rounded down). The first and last samples never qualify.
func LocalMaxima(x []float64) []int {
	var out []int
	last := len(x) - 1
	i := 1
	for i < last {
		if x[i-1] < x[i] {
			ahead := i + 1
			for ahead < last && x[ahead] == x[i] {
				ahead++
			}
			if x[ahead] < x[i] {
				out = append(out, (i+ahead-1)/2)
				i = ahead
			}
		}
		i++
	}
	return out
}

// Prominences computes the prominence of every index in peakIdx.
// Indices must be valid positions in x.
func Prominences(x []float64, peakIdx []int) []float64 {
	out := make([]float64, len(peakIdx))
	for k, p := range peakIdx {
		h := x[p]

		leftMin := h
		for i := p; i >= 0 && x[i] <= h; i-- {
			if x[i] < leftMin {
				leftMin = x[i]
			}
		}

		rightMin := h
		for i := p; i < len(x) && x[i] <= h; i++ {
			if x[i] < rightMin {
				rightMin = x[i]
			}
		}

		out[k] = h - max(leftMin, rightMin)
	}
	return out
}
