package swv

import "github.com/cwbudde/algo-swv/internal/testutil"

type feature struct {
	center, sigma, amplitude float64
}

func syntheticTrace(start, stop float64, n int, features ...feature) Trace {
	potential := testutil.Linspace(start, stop, n)
	current := make([]float64, n)
	for _, f := range features {
		g := testutil.Gaussian(potential, f.center, f.sigma, f.amplitude)
		for i := range current {
			current[i] += g[i]
		}
	}
	return Trace{Potential: potential, Current: current}
}

// scenarioATrace is a dip of depth 2 at -0.3 between bumps of height 1
// at -0.45 and -0.15, sampled at 101 points over [-0.5, 0.5].
func scenarioATrace() Trace {
	return syntheticTrace(-0.5, 0.5, 101,
		feature{-0.45, 0.04, 1},
		feature{-0.3, 0.04, -2},
		feature{-0.15, 0.04, 1},
	)
}

// twoDipTrace holds dips at -0.3 (depth 1) and 0.2 (depth 0.5) separated
// by bumps of height 0.5 at -0.45, -0.05 and 0.35. Sample i sits at
// -0.5 + 0.005*i.
func twoDipTrace() Trace {
	return syntheticTrace(-0.5, 0.5, 201,
		feature{-0.45, 0.03, 0.5},
		feature{-0.3, 0.03, -1},
		feature{-0.05, 0.03, 0.5},
		feature{0.2, 0.03, -0.5},
		feature{0.35, 0.03, 0.5},
	)
}
