package main

import (
	"log/slog"
	"math"

	"github.com/exascience/pargo/parallel"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/asmelko/diffusion-benchmarking/problem"
	"github.com/asmelko/diffusion-benchmarking/thomas"
)

// runValidation advances the least-memory solver and the full-storage
// reference over the same problem and reports the element-wise maximum
// absolute difference plus the total mass of each, per substrate.
// Validation always runs in 64-bit reals; Access is precision-agnostic, so
// the comparison would also hold for a 32-bit solver within its epsilon.
func runValidation(cmd *cobra.Command, args []string) error {
	p, err := problem.Load(flagProblem)
	if err != nil {
		return err
	}

	sv := thomas.NewSolver[float64]()
	if err = sv.Prepare(p); err != nil {
		return err
	}
	if err = sv.Tune(map[string]any{thomas.WorkItemsKey: flagWorkItems}); err != nil {
		return err
	}
	if err = sv.Initialize(); err != nil {
		return err
	}

	ref := thomas.NewReference[float64]()
	if err = ref.Prepare(p); err != nil {
		return err
	}
	if err = ref.Initialize(); err != nil {
		return err
	}

	for step := 0; step < flagSteps; step++ {
		if err = sv.Step(); err != nil {
			return err
		}
		if err = ref.Step(); err != nil {
			return err
		}
	}

	a := sv.Buffer().Data
	b := ref.Buffer().Data
	maxDiff := parallel.RangeReduceFloat64(
		0, len(a), 0,
		func(low, high int) (result float64) {
			for i := low; i < high; i++ {
				result = math.Max(result, math.Abs(a[i]-b[i]))
			}
			return
		},
		math.Max,
	)

	cells := sv.Buffer().Cells()
	for s := 0; s < p.SubstratesCount; s++ {
		lo := s * cells
		slog.Info("substrate validated",
			"substrate", s,
			"mass_least_memory", floats.Sum(a[lo:lo+cells]),
			"mass_reference", floats.Sum(b[lo:lo+cells]))
	}
	slog.Info("element-wise comparison",
		"steps", flagSteps,
		"max_abs_diff", maxDiff)
	return nil
}
