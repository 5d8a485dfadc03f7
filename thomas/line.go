package thomas

import (
	"github.com/asmelko/diffusion-benchmarking/grid"
)

// solveLine runs the least-memory Thomas solve over one contiguous line u of
// length ≥ 3. a is the off-diagonal, b0 the base diagonal, threshold the
// precomputed convergence row for this substrate and axis.
//
// Forward sweep: rows before threshold advance the rolling divisor
// bTmp ← (b0−a) − a²/bTmp; rows at or past it reuse the frozen value.
// Back substitution reconstructs the earlier divisors through the inverse
// recurrence bTmp ← a²/(b0 − a − bTmp), so no per-row storage exists. In the
// converged regime the frozen value stands in for the divisor one row below
// within epsilon, so the rebuild divides first and steps the recurrence
// after; when the sequence never converged (threshold == n) no such
// substitution is valid and the recurrence steps before each division,
// which reproduces the full Thomas solve exactly.
//
// threshold == 1 means the divisor converged immediately: the pre-threshold
// loop runs zero times and the frozen loop starts at row 1, re-touching it
// with the same bTmp — reachable only when |a| is at or below epsilon, where
// the second update is a no-op within tolerance.
func solveLine[T grid.Real](u []T, a, b0 T, threshold int) {
	n := len(u)
	bTmp := b0

	u[1] -= a * u[0] / bTmp

	for i := 2; i < threshold; i++ {
		bTmp = (b0 - a) - a*a/bTmp
		u[i] -= a * u[i-1] / bTmp
	}
	for i := threshold; i < n; i++ {
		u[i] -= a * u[i-1] / bTmp
	}

	u[n-1] /= b0 - a*a/bTmp
	u[n-2] = (u[n-2] - a*u[n-1]) / bTmp

	if threshold < n {
		for i := n - 3; i >= threshold-1; i-- {
			u[i] = (u[i] - a*u[i+1]) / bTmp
		}
		for i := threshold - 2; i >= 0; i-- {
			u[i] = (u[i] - a*u[i+1]) / bTmp
			bTmp = a * a / (b0 - a - bTmp)
		}
		return
	}

	for i := n - 3; i >= 0; i-- {
		bTmp = a * a / (b0 - a - bTmp)
		u[i] = (u[i] - a*u[i+1]) / bTmp
	}
}

// solveLanes runs the same solve over width independent lanes in lockstep.
// block holds n rows of width contiguous elements each; lane x of row i is
// block[i*width+x]. The recurrence is loop-carried across rows only, never
// across lanes, so the inner x loops are unit-stride and vectorisable.
//
// Used by the Y and Z sweeps, where the swept axis is strided but whole rows
// (an x run, or a fused y·x plane) are contiguous.
func solveLanes[T grid.Real](block []T, width, n int, a, b0 T, threshold int) {
	bTmp := b0

	{
		u0 := block[:width]
		u1 := block[width : 2*width]
		for x := 0; x < width; x++ {
			u1[x] -= a * u0[x] / bTmp
		}
	}

	for i := 2; i < threshold; i++ {
		bTmp = (b0 - a) - a*a/bTmp
		prev := block[(i-1)*width : i*width]
		curr := block[i*width : (i+1)*width]
		for x := 0; x < width; x++ {
			curr[x] -= a * prev[x] / bTmp
		}
	}

	for i := threshold; i < n; i++ {
		prev := block[(i-1)*width : i*width]
		curr := block[i*width : (i+1)*width]
		for x := 0; x < width; x++ {
			curr[x] -= a * prev[x] / bTmp
		}
	}

	{
		div := b0 - a*a/bTmp
		last := block[(n-1)*width : n*width]
		pen := block[(n-2)*width : (n-1)*width]
		for x := 0; x < width; x++ {
			last[x] /= div
			pen[x] = (pen[x] - a*last[x]) / bTmp
		}
	}

	if threshold < n {
		for i := n - 3; i >= threshold-1; i-- {
			curr := block[i*width : (i+1)*width]
			next := block[(i+1)*width : (i+2)*width]
			for x := 0; x < width; x++ {
				curr[x] = (curr[x] - a*next[x]) / bTmp
			}
		}

		for i := threshold - 2; i >= 0; i-- {
			curr := block[i*width : (i+1)*width]
			next := block[(i+1)*width : (i+2)*width]
			for x := 0; x < width; x++ {
				curr[x] = (curr[x] - a*next[x]) / bTmp
			}
			bTmp = a * a / (b0 - a - bTmp)
		}
		return
	}

	for i := n - 3; i >= 0; i-- {
		bTmp = a * a / (b0 - a - bTmp)
		curr := block[i*width : (i+1)*width]
		next := block[(i+1)*width : (i+2)*width]
		for x := 0; x < width; x++ {
			curr[x] = (curr[x] - a*next[x]) / bTmp
		}
	}
}
