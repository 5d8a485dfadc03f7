// Package thomas implements the least-memory Thomas solver for the
// dimensionally-split implicit reaction–diffusion step, together with a
// full-storage reference solver used for element-wise validation.
//
// What:
//
//   - Solver — the least-memory variant. One Crank–Nicolson-style time step
//     is the caller-composed sequence SolveX(); SolveY(); SolveZ(), each an
//     independent tridiagonal solve per (substrate, transverse line).
//   - Reference — a textbook Thomas solver over the same buffer layout,
//     storing per-row coefficients. Slow, simple, and the oracle every
//     variant is diffed against.
//
// Why "least-memory":
//
//   - Along an axis the tridiagonal matrix is the same for every transverse
//     line of a substrate: constant off-diagonal a, diagonal
//     [b0, b0−a, …, b0−a, b0] (the −a on interior rows encodes zero-flux
//     boundaries folded into the first and last rows).
//   - The forward-elimination divisor sequence d_0 = b0,
//     d_i = (b0−a) − a²/d_{i−1} converges geometrically to a fixed point.
//     Initialize detects the convergence row ("threshold") once per
//     substrate and axis; past it the kernels keep a single scalar rolling
//     divisor b_tmp instead of a per-row vector.
//   - The back sweep reconstructs earlier divisors on the fly through the
//     exact inverse recurrence b_tmp ← a²/(b0 − a − b_tmp), so no per-row
//     state is ever stored.
//
// Concurrency:
//
//   - Kernels parallelise over substrates, collapsing in a transverse axis
//     where that does not break x-contiguity of the inner loops; chunk size
//     is the work_items tuning knob. Distinct (substrate, line) pairs write
//     disjoint regions, so any schedule yields identical results.
//
// Complexity per step: O(S·Nx·Ny·Nz) time per axis, O(S) coefficient
// memory per axis, zero allocation in the hot loops.
//
// Errors:
//
//   - ErrNotPrepared, ErrNotReady: façade methods called out of order.
//   - ErrDimension: SolveY in 1D or SolveZ below 3D.
//   - ErrBadTuning: work_items present but not a positive integer.
package thomas
