package thomas

import (
	"github.com/asmelko/diffusion-benchmarking/grid"
	"github.com/asmelko/diffusion-benchmarking/sched"
)

// The five axis-sweep kernels. Each distributes its outer loop(s) with
// static chunks of workItems and joins at return; distinct (substrate,
// transverse line) pairs write disjoint regions of data, so the schedule
// never affects results.

// solveSliceX1D sweeps x in 1D. No transverse axis; the parallel loop runs
// over substrates alone and every line is contiguous.
func solveSliceX1D[T grid.Real](data []T, c axisCoefficients[T], l grid.Layout, workItems int) {
	n := l.Nx
	sched.Range(l.Substrates, workItems, func(lo, hi int) {
		for s := lo; s < hi; s++ {
			solveLine(data[s*n:(s+1)*n], c.a[s], c.b0[s], c.threshold[s])
		}
	})
}

// solveSliceX2D3D sweeps x in 2D and 3D. The transverse y (2D) or fused
// z·ny+y (3D) axis flattens into a single index, and (substrate, transverse)
// is the collapsed parallel iteration space.
func solveSliceX2D3D[T grid.Real](data []T, c axisCoefficients[T], l grid.Layout, workItems int) {
	n := l.Nx
	m := l.Ny * l.Nz
	sched.Collapse2(l.Substrates, m, workItems, func(s, yz int) {
		base := (s*m + yz) * n
		solveLine(data[base:base+n], c.a[s], c.b0[s], c.threshold[s])
	})
}

// solveSliceY2D sweeps y in 2D. Only substrates are parallelised; inside
// each, the x rows of one substrate form a contiguous ny×nx block and x is
// the vectorised lane axis.
func solveSliceY2D[T grid.Real](data []T, c axisCoefficients[T], l grid.Layout, workItems int) {
	n, nx := l.Ny, l.Nx
	sched.Range(l.Substrates, workItems, func(lo, hi int) {
		for s := lo; s < hi; s++ {
			base := s * n * nx
			solveLanes(data[base:base+n*nx], nx, n, c.a[s], c.b0[s], c.threshold[s])
		}
	})
}

// solveSliceY3D sweeps y in 3D. (substrate, z) is the collapsed parallel
// space; each pair owns a contiguous ny×nx block with x as the lane axis.
func solveSliceY3D[T grid.Real](data []T, c axisCoefficients[T], l grid.Layout, workItems int) {
	n, nx, nz := l.Ny, l.Nx, l.Nz
	plane := n * nx
	sched.Collapse2(l.Substrates, nz, workItems, func(s, z int) {
		base := (s*nz + z) * plane
		solveLanes(data[base:base+plane], nx, n, c.a[s], c.b0[s], c.threshold[s])
	})
}

// solveSliceZ3D sweeps z in 3D. Only substrates are parallelised; the
// transverse (y,x) plane of each z row is contiguous, so the whole ny·nx
// plane is one lane run.
func solveSliceZ3D[T grid.Real](data []T, c axisCoefficients[T], l grid.Layout, workItems int) {
	n := l.Nz
	plane := l.Ny * l.Nx
	sched.Range(l.Substrates, workItems, func(lo, hi int) {
		for s := lo; s < hi; s++ {
			base := s * n * plane
			solveLanes(data[base:base+n*plane], plane, n, c.a[s], c.b0[s], c.threshold[s])
		}
	})
}
