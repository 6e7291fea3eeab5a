package compare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32NearEqual(t *testing.T) {
	tol := DefaultTolerance()

	cases := []struct {
		name string
		a, b float32
		want bool
	}{
		{"exact", 1.0, 1.0, true},
		{"signed_zero", 0.0, float32(math.Copysign(0, -1)), true},
		{"tiny_abs_diff", 0.0, 5e-8, true},
		{"rel_diff_within", 1000.0, 1000.005, true},
		{"rel_diff_outside", 1000.0, 1100.0, false},
		{"sign_flip", 1.0, -1.0, false},
		{"nan_both", float32(math.NaN()), float32(math.NaN()), true},
		{"nan_one", float32(math.NaN()), 1.0, false},
		{"inf_both_pos", float32(math.Inf(1)), float32(math.Inf(1)), true},
		{"inf_mixed", float32(math.Inf(1)), float32(math.Inf(-1)), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Float32NearEqual(c.a, c.b, tol))
		})
	}
}

func TestFloat32NearEqualNaNStrict(t *testing.T) {
	tol := DefaultTolerance()
	tol.CheckNaN = false
	assert.False(t, Float32NearEqual(float32(math.NaN()), float32(math.NaN()), tol))
}

func TestFloat32ULPDiff(t *testing.T) {
	assert.Equal(t, 0, Float32ULPDiff(1.0, 1.0))
	assert.Equal(t, 1, Float32ULPDiff(1.0, math.Nextafter32(1.0, 2.0)))
	assert.Equal(t, math.MaxInt32, Float32ULPDiff(1.0, -1.0))

	// One-ULP neighbors pass the default tolerance at any magnitude.
	big := float32(3e38)
	next := math.Nextafter32(big, float32(math.Inf(1)))
	assert.True(t, Float32NearEqual(big, next, DefaultTolerance()))
}

func TestFloat64NearEqual(t *testing.T) {
	tol := DefaultTolerance()
	assert.True(t, Float64NearEqual(1.0, 1.0, tol))
	assert.True(t, Float64NearEqual(1000.0, 1000.005, tol))
	assert.False(t, Float64NearEqual(1000.0, 1100.0, tol))
	assert.True(t, Float64NearEqual(math.NaN(), math.NaN(), tol))
}

func TestArchToleranceMerge(t *testing.T) {
	cfg := ArchToleranceConfig{
		Base:    DefaultTolerance(),
		AMD64:   &ToleranceConfig{RelTol: 1e-3},
		ARM64:   &ToleranceConfig{RelTol: 1e-3},
		Generic: &ToleranceConfig{RelTol: 1e-2},
	}
	got := ArchTolerance(cfg)
	// Overrides replace only the fields they set.
	assert.Equal(t, DefaultTolerance().AbsTol, got.AbsTol)
	assert.Equal(t, DefaultTolerance().ULPTol, got.ULPTol)
	assert.NotEqual(t, float32(0), got.RelTol)
	assert.True(t, got.CheckNaN)
}

func TestMMT4DArchToleranceUsable(t *testing.T) {
	tol := ArchTolerance(MMT4DArchTolerance)
	assert.Greater(t, tol.RelTol, float32(0))
	assert.Greater(t, tol.AbsTol, float32(0))
}
