package sched

import (
	"github.com/exascience/pargo/parallel"
)

// batches converts a static chunk size into a pargo batch count for a range
// of length n. A chunk below 1 is treated as 1.
func batches(n, chunk int) int {
	if chunk < 1 {
		chunk = 1
	}
	return (n + chunk - 1) / chunk
}

// Range invokes body over subranges that exactly cover [0,n), distributing
// ⌈n/workItems⌉ static batches across goroutines and joining before return.
// body must not retain its arguments past the call.
func Range(n, workItems int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}
	parallel.Range(0, n, batches(n, workItems), body)
}

// Collapse2 invokes body(i0, i1) for every pair in [0,n0)×[0,n1), flattening
// the pair space into one range of length n0·n1 and chunking it like Range.
// The flattened order is i0-major, matching a collapsed nested loop.
func Collapse2(n0, n1, workItems int, body func(i0, i1 int)) {
	total := n0 * n1
	if total <= 0 {
		return
	}
	parallel.Range(0, total, batches(total, workItems), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			body(i/n1, i%n1)
		}
	})
}
