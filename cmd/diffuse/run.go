package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/asmelko/diffusion-benchmarking/grid"
	"github.com/asmelko/diffusion-benchmarking/problem"
	"github.com/asmelko/diffusion-benchmarking/thomas"
)

// runSimulation drives the least-memory solver for the requested number of
// full steps and saves the final densities.
func runSimulation(cmd *cobra.Command, args []string) error {
	p, err := problem.Load(flagProblem)
	if err != nil {
		return err
	}
	slog.Info("problem loaded",
		"dims", p.Dims, "nx", p.Nx, "ny", p.Ny, "nz", p.Nz,
		"substrates", p.SubstratesCount, "dt", p.Dt)

	if flagSingle {
		return simulate[float32](p)
	}
	return simulate[float64](p)
}

func simulate[T grid.Real](p problem.Problem) error {
	sv := thomas.NewSolver[T]()
	if err := sv.Prepare(p); err != nil {
		return err
	}
	if err := sv.Tune(map[string]any{thomas.WorkItemsKey: flagWorkItems}); err != nil {
		return err
	}
	if err := sv.Initialize(); err != nil {
		return err
	}

	start := time.Now()
	for step := 0; step < flagSteps; step++ {
		if err := sv.Step(); err != nil {
			return err
		}
	}
	slog.Info("simulation finished",
		"steps", flagSteps,
		"elapsed", time.Since(start),
		"work_items", flagWorkItems)

	if err := sv.Save(flagOut); err != nil {
		return err
	}
	slog.Info("densities saved", "path", flagOut)
	return nil
}
