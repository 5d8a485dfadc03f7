// Package grid provides the dense substrate buffer shared by all solver
// variants, together with its linear memory layout.
//
// What:
//
//   - Layout maps (substrate, x, y, z) to a linear index with x as the
//     fastest-varying axis and substrate as the slowest.
//   - Buffer owns one []T of densities for the whole grid, allocated once
//     and reused across time steps.
//
// Why:
//
//   - The axis-sweep kernels vectorise their inner loops over x; keeping x
//     contiguous turns those loops into unit-stride streams.
//   - Keeping substrate outermost makes the per-substrate parallel
//     decomposition write to disjoint memory regions.
//
// Layout:
//
//	Index(s,x,y,z) = x + Nx·(y + Ny·(z + Nz·s))
//
// Complexity: all index math is O(1) and inlineable; Buffer allocation is
// O(S·Nx·Ny·Nz) once.
package grid
