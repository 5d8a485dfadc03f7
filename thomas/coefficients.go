package thomas

import (
	"github.com/asmelko/diffusion-benchmarking/grid"
	"github.com/asmelko/diffusion-benchmarking/problem"
)

// axisCoefficients holds the precomputed tridiagonal description of one
// axis: the constant off-diagonal a, the base diagonal b0 and the row index
// at which the forward-sweep divisor has converged, per substrate.
type axisCoefficients[T grid.Real] struct {
	a         []T
	b0        []T
	threshold []int
}

// precompute builds the coefficient triple for one axis of length n with
// cell size h. For each substrate it simulates the forward sweep of the
// Thomas algorithm on the matrix with off-diagonal a and diagonal
// [b0, b0−a, …, b0−a, b0] and records the first row whose divisor differs
// from its predecessor by less than epsilon. If no row converges before the
// last, threshold is n and the kernels take no shortcut.
//
// Complexity: O(S·n) once per Initialize; the kernels amortise it over every
// transverse line of every step.
func precompute[T grid.Real](p problem.Problem, h float64, n int) axisCoefficients[T] {
	s := p.SubstratesCount
	c := axisCoefficients[T]{
		a:         make([]T, s),
		b0:        make([]T, s),
		threshold: make([]int, s),
	}

	dt := T(p.Dt)
	dims := T(p.Dims)
	h2 := T(h) * T(h)
	for i := 0; i < s; i++ {
		d := T(p.DiffusionCoefficients[i])
		c.a[i] = -dt * d / h2
		c.b0[i] = 1 + dt*T(p.DecayRates[i])/dims + dt*d/h2
	}

	eps := epsilon[T]()
	var prev, curr T
	for i := 0; i < s; i++ {
		a, b0 := c.a[i], c.b0[i]
		for row := 0; row < n; row++ {
			switch {
			case row == 0:
				curr = b0
			case row != n-1:
				prev = curr
				curr = (b0 - a) - a*a/prev
			default:
				prev = curr
				curr = b0 - a*a/prev
			}

			if row > 0 && abs(curr-prev) < eps {
				c.threshold[i] = row
				break
			}
			if row == n-1 {
				c.threshold[i] = n
			}
		}
	}

	return c
}
