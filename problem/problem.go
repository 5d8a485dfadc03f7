package problem

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for problem construction and validation.
var (
	// ErrBadDimensions indicates Dims outside {1,2,3} or a non-positive extent.
	ErrBadDimensions = errors.New("problem: dims must be 1, 2 or 3 with positive extents")
	// ErrAxisTooShort indicates an active axis with fewer than 3 cells.
	ErrAxisTooShort = errors.New("problem: active axes must have at least 3 cells")
	// ErrSubstrateMismatch indicates per-substrate slice lengths that disagree
	// with SubstratesCount.
	ErrSubstrateMismatch = errors.New("problem: per-substrate slices must have length substrates_count")
	// ErrBadCoefficient indicates a negative diffusion/decay coefficient,
	// a non-positive cell size, or a non-positive time step.
	ErrBadCoefficient = errors.New("problem: coefficients must be non-negative and dx/dy/dz/dt positive")
)

// Problem is the immutable description of one simulation. Field names match
// the JSON problem files consumed by the benchmark harness.
type Problem struct {
	// Dims is the spatial dimensionality, 1, 2 or 3.
	Dims int `json:"dims" validate:"required,min=1,max=3"`

	// Nx, Ny, Nz are the grid extents. Axes above Dims must be 1.
	Nx int `json:"nx" validate:"required,min=1"`
	Ny int `json:"ny" validate:"min=0"`
	Nz int `json:"nz" validate:"min=0"`

	// Dx, Dy, Dz are the cell sizes along each axis.
	Dx float64 `json:"dx" validate:"required,gt=0"`
	Dy float64 `json:"dy" validate:"gt=0"`
	Dz float64 `json:"dz" validate:"gt=0"`

	// SubstratesCount is the number of co-evolved scalar fields.
	SubstratesCount int `json:"substrates_count" validate:"required,min=1"`

	// DiffusionCoefficients and DecayRates hold one non-negative value per
	// substrate.
	DiffusionCoefficients []float64 `json:"diffusion_coefficients" validate:"required,dive,gte=0"`
	DecayRates            []float64 `json:"decay_rates" validate:"required,dive,gte=0"`

	// InitialConditions holds the uniform initial density of each substrate.
	InitialConditions []float64 `json:"initial_conditions" validate:"required"`

	// Dt is the time step.
	Dt float64 `json:"dt" validate:"required,gt=0"`
}

// problemValidate is the shared validator instance; validator.New is
// expensive and the instance is safe for concurrent use.
var problemValidate = validator.New()

// Load reads a JSON problem file from path, fills the conventional values
// of axes above the declared dimensionality and validates the result.
// Returns the zero Problem and an error on I/O, syntax or validation
// failure; I/O and syntax errors are wrapped with the path, validation
// errors are returned as Validate reports them.
func Load(path string) (Problem, error) {
	var p Problem
	raw, err := os.ReadFile(path)
	if err != nil {
		return Problem{}, fmt.Errorf("problem: read %s: %w", path, err)
	}
	if err = json.Unmarshal(raw, &p); err != nil {
		return Problem{}, fmt.Errorf("problem: parse %s: %w", path, err)
	}
	p = p.Normalize()
	if err = p.Validate(); err != nil {
		return Problem{}, err
	}
	return p, nil
}

// Validate checks all structural invariants. It normalises nothing; callers
// construct problems with unused axes already set to 1 (see Normalize).
// Complexity: O(S).
func (p *Problem) Validate() error {
	if err := problemValidate.Struct(p); err != nil {
		return fmt.Errorf("problem: %w", err)
	}
	if p.Dims < 1 || p.Dims > 3 {
		return ErrBadDimensions
	}
	if p.Ny < 1 || p.Nz < 1 {
		return ErrBadDimensions
	}
	if (p.Dims < 2 && p.Ny != 1) || (p.Dims < 3 && p.Nz != 1) {
		return ErrBadDimensions
	}
	if p.Nx < 3 || (p.Dims >= 2 && p.Ny < 3) || (p.Dims >= 3 && p.Nz < 3) {
		return ErrAxisTooShort
	}
	s := p.SubstratesCount
	if len(p.DiffusionCoefficients) != s || len(p.DecayRates) != s || len(p.InitialConditions) != s {
		return ErrSubstrateMismatch
	}
	for i := 0; i < s; i++ {
		if p.DiffusionCoefficients[i] < 0 || p.DecayRates[i] < 0 {
			return ErrBadCoefficient
		}
	}
	if p.Dt <= 0 || p.Dx <= 0 || p.Dy <= 0 || p.Dz <= 0 {
		return ErrBadCoefficient
	}
	if err := problemValidate.Struct(p); err != nil {
		return fmt.Errorf("problem: %w", err)
	}
	return nil
}

// Normalize fills the conventional values of unused fields: extents of axes
// above Dims become 1 and their cell sizes 1. Returns a copy; the receiver
// is never mutated.
func (p Problem) Normalize() Problem {
	if p.Dims < 2 {
		p.Ny = 1
		if p.Dy == 0 {
			p.Dy = 1
		}
	}
	if p.Dims < 3 {
		p.Nz = 1
		if p.Dz == 0 {
			p.Dz = 1
		}
	}
	return p
}

// Cells returns the number of grid cells, ignoring substrates.
func (p Problem) Cells() int {
	return p.Nx * p.Ny * p.Nz
}
