package swv_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-swv/measure/swv"
)

func gaussianTrace() swv.Trace {
	const n = 201
	tr := swv.Trace{Potential: make([]float64, n), Current: make([]float64, n)}
	bump := func(x, c, a float64) float64 {
		d := (x - c) / 0.03
		return a * math.Exp(-0.5*d*d)
	}
	for i := range n {
		x := -0.5 + 0.005*float64(i)
		tr.Potential[i] = x
		tr.Current[i] = bump(x, -0.45, 0.5) + bump(x, -0.3, -1) + bump(x, -0.05, 0.5) +
			bump(x, 0.2, -0.5) + bump(x, 0.35, 0.5)
	}
	return tr
}

func ExampleAnalyze() {
	res, err := swv.Analyze(gaussianTrace(), swv.WithTargetPotential(-0.3))
	if err != nil {
		fmt.Println("analysis failed:", err)
		return
	}
	fmt.Println(res.Window)
	fmt.Printf("gain=%.1f\n", res.Gain)
	// Output:
	// min=40 before=10 after=90
	// gain=1.5
}

func ExampleStageError() {
	flat := swv.Trace{Potential: make([]float64, 50), Current: make([]float64, 50)}
	for i := range flat.Potential {
		flat.Potential[i] = float64(i) * 0.01
	}

	_, err := swv.Analyze(flat)

	var se *swv.StageError
	if errors.As(err, &se) {
		fmt.Println(se.Stage, errors.Is(err, swv.ErrNoExtremumFound))
	}
	// Output:
	// minima found true
}

func ExampleNearestMaxima() {
	before, after := swv.NearestMaxima([]int{55, 5}, 40)
	fmt.Println(before, after)
	// Output:
	// 5 55
}
