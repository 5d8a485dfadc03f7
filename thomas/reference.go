package thomas

import (
	"github.com/asmelko/diffusion-benchmarking/grid"
	"github.com/asmelko/diffusion-benchmarking/problem"
)

// Reference is the full-storage Thomas solver: textbook forward elimination
// with a per-row modified super-diagonal, followed by back substitution. It
// runs serially and allocates one scratch row per solver — deliberately the
// simplest correct implementation, used as the element-wise oracle for the
// least-memory variant in tests and `diffuse validate`.
type Reference[T grid.Real] struct {
	prob problem.Problem
	buf  *grid.Buffer[T]

	x, y, z axisCoefficients[T]

	cp    []T
	state state
}

// NewReference returns a reference solver in the CREATED state.
func NewReference[T grid.Real]() *Reference[T] {
	return &Reference[T]{}
}

// Prepare installs the problem, allocates the buffer and writes initial
// conditions, exactly as Solver.Prepare does.
func (rv *Reference[T]) Prepare(p problem.Problem) error {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	rv.prob = p
	rv.buf = grid.NewBuffer[T](grid.Layout{
		Nx: p.Nx, Ny: p.Ny, Nz: p.Nz, Substrates: p.SubstratesCount,
	})
	for s := 0; s < p.SubstratesCount; s++ {
		rv.buf.Fill(s, T(p.InitialConditions[s]))
	}
	rv.state = prepared
	return nil
}

// Initialize precomputes the per-axis coefficients and the scratch row.
// The convergence thresholds are computed but unused: the reference always
// stores the full divisor sequence.
func (rv *Reference[T]) Initialize() error {
	if rv.state == created {
		return ErrNotPrepared
	}
	p := rv.prob
	rv.x = precompute[T](p, p.Dx, p.Nx)
	longest := p.Nx
	if p.Dims >= 2 {
		rv.y = precompute[T](p, p.Dy, p.Ny)
		if p.Ny > longest {
			longest = p.Ny
		}
	}
	if p.Dims >= 3 {
		rv.z = precompute[T](p, p.Dz, p.Nz)
		if p.Nz > longest {
			longest = p.Nz
		}
	}
	rv.cp = make([]T, longest)
	rv.state = ready
	return nil
}

// thomasLine solves one tridiagonal line in place with full storage.
// The line starts at base and advances by stride; cp receives the modified
// super-diagonal. Diagonal pattern: [b0, b0−a, …, b0−a, b0].
func thomasLine[T grid.Real](data []T, base, stride, n int, a, b0 T, cp []T) {
	d := b0
	cp[0] = a / d
	data[base] /= d
	for i := 1; i < n; i++ {
		diag := b0 - a
		if i == n-1 {
			diag = b0
		}
		d = diag - a*cp[i-1]
		cp[i] = a / d
		idx := base + i*stride
		data[idx] = (data[idx] - a*data[idx-stride]) / d
	}
	for i := n - 2; i >= 0; i-- {
		idx := base + i*stride
		data[idx] -= cp[i] * data[idx+stride]
	}
}

// SolveX applies one x sweep over every (substrate, transverse line) pair.
func (rv *Reference[T]) SolveX() error {
	if rv.state != ready {
		return ErrNotReady
	}
	l := rv.buf.Layout
	m := l.Ny * l.Nz
	for s := 0; s < l.Substrates; s++ {
		for yz := 0; yz < m; yz++ {
			thomasLine(rv.buf.Data, (s*m+yz)*l.Nx, 1, l.Nx, rv.x.a[s], rv.x.b0[s], rv.cp)
		}
	}
	return nil
}

// SolveY applies one y sweep; callable only when dims ≥ 2.
func (rv *Reference[T]) SolveY() error {
	if rv.state != ready {
		return ErrNotReady
	}
	if rv.prob.Dims < 2 {
		return ErrDimension
	}
	l := rv.buf.Layout
	for s := 0; s < l.Substrates; s++ {
		for z := 0; z < l.Nz; z++ {
			for x := 0; x < l.Nx; x++ {
				base := x + l.Nx*l.Ny*(z+l.Nz*s)
				thomasLine(rv.buf.Data, base, l.Nx, l.Ny, rv.y.a[s], rv.y.b0[s], rv.cp)
			}
		}
	}
	return nil
}

// SolveZ applies one z sweep; callable only when dims == 3.
func (rv *Reference[T]) SolveZ() error {
	if rv.state != ready {
		return ErrNotReady
	}
	if rv.prob.Dims != 3 {
		return ErrDimension
	}
	l := rv.buf.Layout
	for s := 0; s < l.Substrates; s++ {
		for y := 0; y < l.Ny; y++ {
			for x := 0; x < l.Nx; x++ {
				base := x + l.Nx*(y+l.Ny*l.Nz*s)
				thomasLine(rv.buf.Data, base, l.Nx*l.Ny, l.Nz, rv.z.a[s], rv.z.b0[s], rv.cp)
			}
		}
	}
	return nil
}

// Step advances one full time step in X, Y, Z order.
func (rv *Reference[T]) Step() error {
	if err := rv.SolveX(); err != nil {
		return err
	}
	if rv.prob.Dims >= 2 {
		if err := rv.SolveY(); err != nil {
			return err
		}
	}
	if rv.prob.Dims >= 3 {
		if err := rv.SolveZ(); err != nil {
			return err
		}
	}
	return nil
}

// Access reads one cell as a 64-bit float.
func (rv *Reference[T]) Access(s, x, y, z int) float64 {
	return float64(rv.buf.At(s, x, y, z))
}

// Buffer exposes the substrate buffer for harness-side inspection.
func (rv *Reference[T]) Buffer() *grid.Buffer[T] {
	return rv.buf
}
