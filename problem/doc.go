// Package problem defines the immutable description of a reaction–diffusion
// simulation: grid geometry, substrate coefficients and the time step.
//
// What:
//
//   - Problem holds dimensionality, grid extents, cell sizes, per-substrate
//     diffusion coefficients, decay rates and uniform initial densities.
//   - Load reads a JSON problem file and validates it.
//   - Validate enforces structural invariants so solvers can treat every
//     field as a precondition.
//
// Why:
//
//   - Solvers in this module never re-check geometry in their hot loops; all
//     structural guarantees are established once, here.
//   - The JSON layout matches the problem files used by the benchmark
//     harness, so the same inputs drive every solver variant.
//
// Invariants after Validate:
//
//   - Dims ∈ {1,2,3}; extents of active axes ≥ 3; extents of unused axes = 1.
//   - Dx, Dy, Dz > 0 and Dt > 0.
//   - len(DiffusionCoefficients) = len(DecayRates) = len(InitialConditions)
//     = SubstratesCount ≥ 1; coefficients and rates are non-negative.
//
// Errors:
//
//   - ErrBadDimensions: dimensionality outside {1,2,3} or bad extents.
//   - ErrAxisTooShort: an active axis has fewer than 3 cells.
//   - ErrSubstrateMismatch: per-substrate slice lengths disagree.
//   - ErrBadCoefficient: negative diffusion or decay, or non-positive dt.
package problem
