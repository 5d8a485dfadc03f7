package thomas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLine fills a line with a smooth deterministic profile.
func testLine(n int) []float64 {
	u := make([]float64, n)
	for i := range u {
		u[i] = 2 + math.Sin(float64(i))
	}
	return u
}

// TestSolveLine_MatchesFullStorage diffs the least-memory line solve against
// the textbook full-storage Thomas on the same system. The inverse
// recurrence that rebuilds the divisors amplifies rounding geometrically as
// it walks back to row 0, so the bound here is the relative one.
func TestSolveLine_MatchesFullStorage(t *testing.T) {
	const n = 64
	p := coeffProblem(1, 0.1, []float64{5}, []float64{0.3})
	c := precompute[float64](p, 1, n)
	require.Less(t, c.threshold[0], n)

	got := testLine(n)
	want := testLine(n)

	solveLine(got, c.a[0], c.b0[0], c.threshold[0])
	thomasLine(want, 0, 1, n, c.a[0], c.b0[0], make([]float64, n))

	for i := 0; i < n; i++ {
		require.InDelta(t, want[i], got[i], 1e-3, "row %d", i)
		require.InEpsilon(t, want[i], got[i], 0.01, "row %d", i)
	}
}

// TestSolveLine_NoShortcutIsExact: when the divisor sequence never converges
// the back sweep steps the inverse recurrence before every division,
// reproducing the full Thomas solve to rounding.
func TestSolveLine_NoShortcutIsExact(t *testing.T) {
	const n = 9
	p := coeffProblem(1, 0.4, []float64{5}, []float64{0})
	c := precompute[float64](p, 1, n)
	require.Equal(t, n, c.threshold[0])

	got := testLine(n)
	want := testLine(n)

	solveLine(got, c.a[0], c.b0[0], c.threshold[0])
	thomasLine(want, 0, 1, n, c.a[0], c.b0[0], make([]float64, n))

	for i := 0; i < n; i++ {
		require.InDelta(t, want[i], got[i], 1e-11, "row %d", i)
	}
}

// TestSolveLine_ShortcutOnLongLine runs the shortcut solve on a line long
// enough that the threshold sits far below n, so almost every forward row
// reuses the frozen divisor and the back sweep rebuilds it across the whole
// pre-threshold range. The result must track the full-storage reference to
// a few parts in 1e4 of relative error.
func TestSolveLine_ShortcutOnLongLine(t *testing.T) {
	const n = 1024
	p := coeffProblem(1, 0.5, []float64{20}, []float64{0})
	c := precompute[float64](p, 1, n)
	require.Less(t, c.threshold[0], 64) // the shortcut must actually engage
	require.Greater(t, c.threshold[0], 1)

	got := testLine(n)
	want := testLine(n)

	solveLine(got, c.a[0], c.b0[0], c.threshold[0])
	thomasLine(want, 0, 1, n, c.a[0], c.b0[0], make([]float64, n))

	for i := 0; i < n; i++ {
		require.InEpsilon(t, want[i], got[i], 5e-4, "row %d", i)
	}
}

// TestSolveLine_ThresholdOne: with a = 0 the frozen loop re-touches row 1
// with a zero update; the solve must still reduce to the pure decay
// division.
func TestSolveLine_ThresholdOne(t *testing.T) {
	const n = 8
	p := coeffProblem(1, 1, []float64{0}, []float64{3})
	c := precompute[float64](p, 1, n)
	require.Equal(t, 1, c.threshold[0])

	u := testLine(n)
	orig := testLine(n)
	solveLine(u, c.a[0], c.b0[0], c.threshold[0])

	for i := 0; i < n; i++ {
		assert.InDelta(t, orig[i]/c.b0[0], u[i], 1e-15, "row %d", i)
	}
}

// TestSolveLanes_LockstepWithSolveLine: lanes run the exact arithmetic of
// the scalar line solve, so each extracted lane must match bit for bit.
func TestSolveLanes_LockstepWithSolveLine(t *testing.T) {
	const width, n = 8, 32
	p := coeffProblem(1, 0.1, []float64{5}, []float64{0.3})
	c := precompute[float64](p, 1, n)

	block := make([]float64, width*n)
	lines := make([][]float64, width)
	for x := 0; x < width; x++ {
		lines[x] = make([]float64, n)
		for i := 0; i < n; i++ {
			v := 2 + math.Sin(float64(i*width+x))
			block[i*width+x] = v
			lines[x][i] = v
		}
	}

	solveLanes(block, width, n, c.a[0], c.b0[0], c.threshold[0])
	for x := 0; x < width; x++ {
		solveLine(lines[x], c.a[0], c.b0[0], c.threshold[0])
	}

	for x := 0; x < width; x++ {
		for i := 0; i < n; i++ {
			require.Equal(t, lines[x][i], block[i*width+x], "lane %d row %d", x, i)
		}
	}
}

// TestThomasLine_Strided: the reference line solve must be invariant to the
// memory stride it walks.
func TestThomasLine_Strided(t *testing.T) {
	const n, stride = 16, 3
	p := coeffProblem(1, 0.1, []float64{2}, []float64{0})
	c := precompute[float64](p, 1, n)

	flat := testLine(n)
	spread := make([]float64, n*stride)
	for i := 0; i < n; i++ {
		spread[i*stride] = flat[i]
	}

	cp := make([]float64, n)
	thomasLine(flat, 0, 1, n, c.a[0], c.b0[0], cp)
	thomasLine(spread, 0, stride, n, c.a[0], c.b0[0], cp)

	for i := 0; i < n; i++ {
		require.Equal(t, flat[i], spread[i*stride], "row %d", i)
	}
}
