// Package thomas defines the solver façade types, tuning options and
// sentinel errors shared by the least-memory and reference solvers.
package thomas

import (
	"errors"

	"github.com/asmelko/diffusion-benchmarking/grid"
)

// Sentinel errors for façade state and tuning.
var (
	// ErrNotPrepared indicates Initialize or Tune before a successful Prepare.
	ErrNotPrepared = errors.New("thomas: solver is not prepared; call Prepare first")
	// ErrNotReady indicates a Solve/Save call before Initialize.
	ErrNotReady = errors.New("thomas: solver is not initialized; call Initialize first")
	// ErrDimension indicates SolveY on a 1D problem or SolveZ below 3D.
	ErrDimension = errors.New("thomas: axis sweep exceeds problem dimensionality")
	// ErrBadTuning indicates a recognised tuning key with an unusable value.
	ErrBadTuning = errors.New("thomas: work_items must be a positive integer")
)

// WorkItemsKey is the tuning key for the static parallel-for chunk size.
// Unknown keys passed to Tune are ignored for forward compatibility with
// sibling solver variants.
const WorkItemsKey = "work_items"

// epsilon is the divisor-convergence tolerance: the first forward-sweep row
// whose divisor moves by less than this defines the reuse threshold.
func epsilon[T grid.Real]() T {
	var zero T
	if _, single := any(zero).(float32); single {
		return T(1e-6)
	}
	return T(1e-12)
}

// abs is a branchy generic absolute value; math.Abs would round-trip
// float32 through float64.
func abs[T grid.Real](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// workItems extracts the work_items value from a tuning map. Numbers arrive
// as float64 when the map was decoded from JSON, so both integer and float
// encodings are accepted.
func workItems(params map[string]any) (int, bool, error) {
	raw, ok := params[WorkItemsKey]
	if !ok {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case int:
		if v < 1 {
			return 0, true, ErrBadTuning
		}
		return v, true, nil
	case int64:
		if v < 1 {
			return 0, true, ErrBadTuning
		}
		return int(v), true, nil
	case float64:
		if v < 1 || v != float64(int(v)) {
			return 0, true, ErrBadTuning
		}
		return int(v), true, nil
	default:
		return 0, true, ErrBadTuning
	}
}
