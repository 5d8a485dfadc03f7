// Package diffusion is a benchmark-oriented implementation of an implicit
// finite-difference solver for the reaction–diffusion of multiple chemical
// substrates on a regular Cartesian grid (1D/2D/3D).
//
// 🚀 What is diffusion-benchmarking?
//
//	A library built around one numerical idea — the "least-memory Thomas"
//	tridiagonal solve — plus the harness needed to run and validate it:
//		• problem/ — immutable problem description, JSON ingestion, validation
//		• grid/    — dense substrate buffer with an x-fastest linear layout
//		• sched/   — fork/join parallel-for with static chunking (pargo)
//		• thomas/  — coefficient precompute, five axis-sweep kernels,
//		             the least-memory solver façade and a full-storage
//		             reference solver for element-wise validation
//		• cmd/diffuse — CLI: run a simulation, or validate the least-memory
//		             solver against the reference
//
// ✨ Why "least-memory"?
//
//   - The tridiagonal matrix along an axis is identical for every transverse
//     line of a substrate, and its forward-sweep divisor sequence converges
//     geometrically to a fixed point.
//   - Past the detected convergence threshold the kernels keep a single
//     scalar rolling divisor instead of a per-row vector; the back sweep
//     reconstructs earlier divisors through the exact inverse recurrence.
//   - Result: O(1) coefficient storage per line, no allocation in the hot
//     loop, and SIMD-friendly inner loops over the contiguous x axis.
//
// A complete time step is the caller-composed sequence
//
//	s.SolveX(); s.SolveY(); s.SolveZ()
//
// with axes above the problem dimensionality skipped.
//
//	go get github.com/asmelko/diffusion-benchmarking
package diffusion
