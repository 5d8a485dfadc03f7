// Command diffuse runs and validates the least-memory Thomas
// reaction–diffusion solver on a JSON problem file.
//
// Usage:
//
//	diffuse run --problem p.json --steps 100 --out out.txt [--work-items 8] [--single]
//	diffuse validate --problem p.json --steps 10 [--work-items 8]
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagProblem   string
	flagSteps     int
	flagOut       string
	flagWorkItems int
	flagSingle    bool
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	root := &cobra.Command{
		Use:           "diffuse",
		Short:         "benchmark harness for the least-memory Thomas diffusion solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagProblem, "problem", "", "path to the JSON problem file")
	root.PersistentFlags().IntVar(&flagSteps, "steps", 1, "number of full time steps to run")
	root.PersistentFlags().IntVar(&flagWorkItems, "work-items", 1, "static chunk size for the parallel-for")
	root.PersistentFlags().BoolVar(&flagSingle, "single", false, "use 32-bit reals instead of 64-bit")
	root.MarkPersistentFlagRequired("problem")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation and save the final densities",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&flagOut, "out", "out.txt", "output text file")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "diff the least-memory solver against the full-storage reference",
		RunE:  runValidation,
	}

	root.AddCommand(runCmd, validateCmd)

	if err := root.Execute(); err != nil {
		slog.Error("diffuse failed", "err", err)
		os.Exit(1)
	}
}
