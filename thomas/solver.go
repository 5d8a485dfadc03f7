package thomas

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/asmelko/diffusion-benchmarking/grid"
	"github.com/asmelko/diffusion-benchmarking/problem"
)

// state tracks the façade lifecycle: CREATED → PREPARED → READY.
// Tune is accepted any time after Prepare; it only changes scheduling.
type state int

const (
	created state = iota
	prepared
	ready
)

// Solver is the least-memory Thomas solver façade. It owns the substrate
// buffer and the per-axis coefficient triples; all of both are allocated in
// Prepare/Initialize and reused across every subsequent step.
//
// A complete time step is SolveX(); SolveY(); SolveZ(), with axes above the
// problem dimensionality skipped. The façade does not enforce the order;
// callers compose it.
type Solver[T grid.Real] struct {
	prob problem.Problem
	buf  *grid.Buffer[T]

	x, y, z axisCoefficients[T]

	workItems int
	state     state
}

// NewSolver returns a solver in the CREATED state.
func NewSolver[T grid.Real]() *Solver[T] {
	return &Solver[T]{workItems: 1}
}

// Prepare installs the immutable problem, allocates the substrate buffer
// and writes the initial conditions. Returns a validation error and leaves
// the solver untouched on bad input.
func (sv *Solver[T]) Prepare(p problem.Problem) error {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}

	sv.prob = p
	sv.buf = grid.NewBuffer[T](grid.Layout{
		Nx: p.Nx, Ny: p.Ny, Nz: p.Nz, Substrates: p.SubstratesCount,
	})
	for s := 0; s < p.SubstratesCount; s++ {
		sv.buf.Fill(s, T(p.InitialConditions[s]))
	}
	sv.state = prepared
	return nil
}

// Tune consumes a key–value parameter map. The only recognised key is
// work_items (positive integer, default 1), the static chunk size of the
// parallel-for; it affects scheduling only, never results. Unknown keys are
// ignored so parameter files can be shared across sibling solver variants.
func (sv *Solver[T]) Tune(params map[string]any) error {
	if sv.state == created {
		return ErrNotPrepared
	}
	wi, present, err := workItems(params)
	if err != nil {
		return err
	}
	if present {
		sv.workItems = wi
	}
	return nil
}

// Initialize runs the coefficient precompute for every active axis,
// producing the (a, b0, threshold) triples the kernels read. Idempotent:
// re-running on the same problem yields bit-identical coefficients.
func (sv *Solver[T]) Initialize() error {
	if sv.state == created {
		return ErrNotPrepared
	}
	p := sv.prob
	sv.x = precompute[T](p, p.Dx, p.Nx)
	if p.Dims >= 2 {
		sv.y = precompute[T](p, p.Dy, p.Ny)
	}
	if p.Dims >= 3 {
		sv.z = precompute[T](p, p.Dz, p.Nz)
	}
	sv.state = ready
	return nil
}

// SolveX applies one implicit sweep along x, in place.
func (sv *Solver[T]) SolveX() error {
	if sv.state != ready {
		return ErrNotReady
	}
	if sv.prob.Dims == 1 {
		solveSliceX1D(sv.buf.Data, sv.x, sv.buf.Layout, sv.workItems)
	} else {
		solveSliceX2D3D(sv.buf.Data, sv.x, sv.buf.Layout, sv.workItems)
	}
	return nil
}

// SolveY applies one implicit sweep along y, in place.
// Callable only when dims ≥ 2.
func (sv *Solver[T]) SolveY() error {
	if sv.state != ready {
		return ErrNotReady
	}
	switch sv.prob.Dims {
	case 2:
		solveSliceY2D(sv.buf.Data, sv.y, sv.buf.Layout, sv.workItems)
	case 3:
		solveSliceY3D(sv.buf.Data, sv.y, sv.buf.Layout, sv.workItems)
	default:
		return ErrDimension
	}
	return nil
}

// SolveZ applies one implicit sweep along z, in place.
// Callable only when dims == 3.
func (sv *Solver[T]) SolveZ() error {
	if sv.state != ready {
		return ErrNotReady
	}
	if sv.prob.Dims != 3 {
		return ErrDimension
	}
	solveSliceZ3D(sv.buf.Data, sv.z, sv.buf.Layout, sv.workItems)
	return nil
}

// Step advances one full time step, sweeping every active axis in X, Y, Z
// order.
func (sv *Solver[T]) Step() error {
	if err := sv.SolveX(); err != nil {
		return err
	}
	if sv.prob.Dims >= 2 {
		if err := sv.SolveY(); err != nil {
			return err
		}
	}
	if sv.prob.Dims >= 3 {
		if err := sv.SolveZ(); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the buffer as whitespace-separated text: one line per cell in
// z-outer, y, x-inner order, each listing all substrate values followed by
// a single space. The file is a diff target for comparing solver variants,
// not a checkpoint. I/O failures are returned; the buffer is untouched.
func (sv *Solver[T]) Save(path string) error {
	if sv.state != ready {
		return ErrNotReady
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("thomas: save %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	p := sv.prob
	for z := 0; z < p.Nz; z++ {
		for y := 0; y < p.Ny; y++ {
			for x := 0; x < p.Nx; x++ {
				for s := 0; s < p.SubstratesCount; s++ {
					w.WriteString(strconv.FormatFloat(float64(sv.buf.At(s, x, y, z)), 'g', -1, 64))
					w.WriteByte(' ')
				}
				w.WriteByte('\n')
			}
		}
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("thomas: save %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("thomas: save %s: %w", path, err)
	}
	return nil
}

// Access reads one cell as a 64-bit float regardless of the instantiated
// precision, enabling precision-agnostic validation.
func (sv *Solver[T]) Access(s, x, y, z int) float64 {
	return float64(sv.buf.At(s, x, y, z))
}

// Buffer exposes the substrate buffer for harness-side inspection. The
// returned buffer is the solver's own storage; callers must not resize it.
func (sv *Solver[T]) Buffer() *grid.Buffer[T] {
	return sv.buf
}

// Problem returns the installed problem description.
func (sv *Solver[T]) Problem() problem.Problem {
	return sv.prob
}
