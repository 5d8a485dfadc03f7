package thomas_test

import (
	"fmt"

	"github.com/asmelko/diffusion-benchmarking/problem"
	"github.com/asmelko/diffusion-benchmarking/thomas"
)

// Example runs one pure-decay step in 1D: with zero diffusion the sweep
// reduces to dividing every cell by 1 + dt·λ, here exactly 2.
func Example() {
	p := problem.Problem{
		Dims:                  1,
		Nx:                    5,
		Dx:                    1,
		SubstratesCount:       1,
		DiffusionCoefficients: []float64{0},
		DecayRates:            []float64{1},
		InitialConditions:     []float64{8},
		Dt:                    1,
	}

	sv := thomas.NewSolver[float64]()
	if err := sv.Prepare(p); err != nil {
		fmt.Println(err)
		return
	}
	if err := sv.Initialize(); err != nil {
		fmt.Println(err)
		return
	}
	if err := sv.SolveX(); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.1f\n", sv.Access(0, 2, 0, 0))
	// Output: 4.0
}

// ExampleSolver_Tune shows the work_items scheduling knob; it changes the
// static chunk size of the parallel-for, never the results.
func ExampleSolver_Tune() {
	p := problem.Problem{
		Dims: 2,
		Nx:   8, Ny: 8,
		Dx: 20, Dy: 20,
		SubstratesCount:       1,
		DiffusionCoefficients: []float64{1000},
		DecayRates:            []float64{0.01},
		InitialConditions:     []float64{1},
		Dt:                    0.01,
	}

	sv := thomas.NewSolver[float64]()
	if err := sv.Prepare(p); err != nil {
		fmt.Println(err)
		return
	}
	if err := sv.Tune(map[string]any{thomas.WorkItemsKey: 8}); err != nil {
		fmt.Println(err)
		return
	}
	if err := sv.Initialize(); err != nil {
		fmt.Println(err)
		return
	}
	if err := sv.Step(); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.4f\n", sv.Access(0, 4, 4, 0))
	// Output: 0.9999
}
