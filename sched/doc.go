// Package sched adapts the pargo fork/join parallel-for to the scheduling
// contract the axis-sweep kernels expect.
//
// What:
//
//   - Range runs a body over [0,n) in static chunks of a given size, with an
//     implicit barrier at return.
//   - Collapse2 flattens two nested loops into one iteration space and
//     chunks the flattened range, mirroring an OpenMP collapse(2).
//
// Why:
//
//   - The kernels parallelise over substrates (and sometimes a transverse
//     axis); chunks never communicate, so early-finishing chunks simply run
//     ahead — the nowait discipline is inherent.
//   - pargo's Range takes a batch count, not a chunk size; the adapter
//     converts work_items into ⌈n/work_items⌉ batches so that chunk size is
//     the tuning knob, as in the original harness.
//
// The chunking affects scheduling only, never results: every index is
// executed exactly once and distinct indices touch disjoint state.
package sched
