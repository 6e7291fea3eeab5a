// Package compare implements exact and tolerance-based comparison of typed
// result buffers, producing human-readable diff text for test tooling. It
// shares no data structures with the mmt4d dispatcher; it only looks at
// output buffers.
package compare

import (
	"math"
	"runtime"
)

// ToleranceConfig defines tolerance parameters for floating-point comparison.
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero.
	AbsTol float32

	// RelTol is the relative tolerance as a fraction of the larger value.
	RelTol float32

	// ULPTol is the maximum allowed difference in ULPs (Units in Last Place).
	ULPTol int

	// CheckNaN determines if NaN values should be considered equal.
	CheckNaN bool

	// CheckInf determines if Inf values should be considered equal.
	CheckInf bool
}

// DefaultTolerance returns the default tolerance configuration.
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-7,
		RelTol:   1e-5,
		ULPTol:   4,
		CheckNaN: true,
		CheckInf: true,
	}
}

// StrictTolerance returns a strict configuration for high precision checks.
func StrictTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-9,
		RelTol:   1e-7,
		ULPTol:   1,
		CheckNaN: true,
		CheckInf: true,
	}
}

// RelaxedTolerance returns a relaxed configuration for long accumulations.
func RelaxedTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-5,
		RelTol:   1e-3,
		ULPTol:   16,
		CheckNaN: true,
		CheckInf: true,
	}
}

// ArchToleranceConfig provides architecture-specific tolerance overrides.
// Kernels on different hosts round differently (FMA contraction, reassociated
// reductions), so verification against a scalar reference needs per-arch slack.
type ArchToleranceConfig struct {
	// Base tolerance for all architectures.
	Base ToleranceConfig

	// Architecture-specific overrides.
	AMD64   *ToleranceConfig
	ARM64   *ToleranceConfig
	Generic *ToleranceConfig
}

// ArchTolerance returns the appropriate tolerance for the current
// architecture.
func ArchTolerance(config ArchToleranceConfig) ToleranceConfig {
	base := config.Base

	switch runtime.GOARCH {
	case "amd64":
		if config.AMD64 != nil {
			return mergeTolerances(base, *config.AMD64)
		}
	case "arm64", "arm64be":
		if config.ARM64 != nil {
			return mergeTolerances(base, *config.ARM64)
		}
	default:
		if config.Generic != nil {
			return mergeTolerances(base, *config.Generic)
		}
	}

	return base
}

// mergeTolerances applies non-zero override fields to the base tolerance.
func mergeTolerances(base, override ToleranceConfig) ToleranceConfig {
	result := base

	if override.AbsTol > 0 {
		result.AbsTol = override.AbsTol
	}
	if override.RelTol > 0 {
		result.RelTol = override.RelTol
	}
	if override.ULPTol > 0 {
		result.ULPTol = override.ULPTol
	}

	return result
}

// MMT4DArchTolerance is the tolerance used when verifying mmt4d kernels
// against the scalar reference.
var MMT4DArchTolerance = ArchToleranceConfig{
	Base: DefaultTolerance(),
	AMD64: &ToleranceConfig{
		// FMA contraction changes rounding relative to the reference.
		RelTol: 1e-4,
		ULPTol: 8,
	},
	ARM64: &ToleranceConfig{
		RelTol: 1e-4,
		ULPTol: 8,
	},
}

// Float32NearEqual checks if two float32 values are equal within tolerance.
func Float32NearEqual(a, b float32, tol ToleranceConfig) bool {
	if tol.CheckNaN && math.IsNaN(float64(a)) && math.IsNaN(float64(b)) {
		return true
	}

	if tol.CheckInf {
		if math.IsInf(float64(a), 1) && math.IsInf(float64(b), 1) {
			return true
		}
		if math.IsInf(float64(a), -1) && math.IsInf(float64(b), -1) {
			return true
		}
	}

	// Exactly equal (handles ±0).
	if a == b {
		return true
	}

	diff := math.Abs(float64(a) - float64(b))
	if diff <= float64(tol.AbsTol) {
		return true
	}

	larger := math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
	if diff <= larger*float64(tol.RelTol) {
		return true
	}

	if tol.ULPTol > 0 && Float32ULPDiff(a, b) <= tol.ULPTol {
		return true
	}

	return false
}

// Float32ULPDiff computes the difference in ULPs between two float32 values.
// Values of different sign are reported as maximally distant.
func Float32ULPDiff(a, b float32) int {
	aBits := math.Float32bits(a)
	bBits := math.Float32bits(b)

	if (aBits^bBits)&0x80000000 != 0 {
		return math.MaxInt32
	}

	if aBits > bBits {
		return int(aBits - bBits)
	}
	return int(bBits - aBits)
}

// Float64NearEqual checks if two float64 values are equal within tolerance.
func Float64NearEqual(a, b float64, tol ToleranceConfig) bool {
	if tol.CheckNaN && math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	if tol.CheckInf {
		if math.IsInf(a, 1) && math.IsInf(b, 1) {
			return true
		}
		if math.IsInf(a, -1) && math.IsInf(b, -1) {
			return true
		}
	}

	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff <= float64(tol.AbsTol) {
		return true
	}

	larger := math.Max(math.Abs(a), math.Abs(b))
	return diff <= larger*float64(tol.RelTol)
}
