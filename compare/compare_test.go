package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestCompareResultsMatch(t *testing.T) {
	expected := []BufferView{
		FromFloat32([]float32{12.0, 17.0}),
		FromInt32([]int32{1, 2, 3, 4}),
	}
	actual := []BufferView{
		FromFloat32([]float32{12.0, 17.0}),
		FromInt32([]int32{1, 2, 3, 4}),
	}
	ok, diff := CompareResults(expected, actual, DefaultTolerance())
	assert.True(t, ok)
	assert.Empty(t, diff)
}

func TestCompareResultsFloatMismatch(t *testing.T) {
	expected := []BufferView{FromFloat32([]float32{12.0, 17.0})}
	actual := []BufferView{FromFloat32([]float32{12.0, 18.5})}
	ok, diff := CompareResults(expected, actual, DefaultTolerance())
	require.False(t, ok)
	assert.Contains(t, diff, "[FAILED] result[0]: f32 values differ at element 1")
	assert.Contains(t, diff, "expected: [12 17]")
	assert.Contains(t, diff, "actual: [12 18.5]")
}

func TestCompareResultsWithinTolerance(t *testing.T) {
	expected := []BufferView{FromFloat32([]float32{1.0})}
	actual := []BufferView{FromFloat32([]float32{1.0 + 1e-7})}
	ok, _ := CompareResults(expected, actual, DefaultTolerance())
	assert.True(t, ok, "difference below tolerance must match")

	ok, diff := CompareResults(expected, actual, ToleranceConfig{})
	assert.False(t, ok, "zero tolerance must flag any difference")
	assert.Contains(t, diff, "[FAILED]")
}

func TestCompareResultsIntegerExact(t *testing.T) {
	expected := []BufferView{FromInt8([]int8{-5, 100})}
	actual := []BufferView{FromInt8([]int8{-5, 101})}
	ok, diff := CompareResults(expected, actual, RelaxedTolerance())
	require.False(t, ok, "integers always compare exactly")
	assert.Contains(t, diff, "[FAILED] result[0]: i8 values differ at element 1")
}

func TestCompareResultsFloat16(t *testing.T) {
	bits := func(v float32) uint16 { return float16.Fromfloat32(v).Bits() }
	expected := []BufferView{FromFloat16([]uint16{bits(1.5), bits(2.0)})}
	actual := []BufferView{FromFloat16([]uint16{bits(1.5), bits(2.0)})}
	ok, _ := CompareResults(expected, actual, DefaultTolerance())
	assert.True(t, ok)

	actual = []BufferView{FromFloat16([]uint16{bits(1.5), bits(4.0)})}
	ok, diff := CompareResults(expected, actual, DefaultTolerance())
	require.False(t, ok)
	assert.Contains(t, diff, "f16 values differ")
}

func TestCompareResultsCountMismatch(t *testing.T) {
	expected := []BufferView{FromFloat32([]float32{1})}
	ok, diff := CompareResults(expected, nil, DefaultTolerance())
	require.False(t, ok)
	assert.Contains(t, diff, "[FAILED] expected 1 results, actual 0 results")
}

func TestCompareResultsKindMismatch(t *testing.T) {
	expected := []BufferView{FromFloat32([]float32{1})}
	actual := []BufferView{FromInt32([]int32{1})}
	ok, diff := CompareResults(expected, actual, DefaultTolerance())
	require.False(t, ok)
	assert.Contains(t, diff, "element kinds differ")
	assert.Contains(t, diff, "expected: f32")
	assert.Contains(t, diff, "actual: i32")
}

func TestCompareResultsLengthMismatch(t *testing.T) {
	expected := []BufferView{FromFloat32([]float32{1, 2})}
	actual := []BufferView{FromFloat32([]float32{1})}
	ok, diff := CompareResults(expected, actual, DefaultTolerance())
	require.False(t, ok)
	assert.Contains(t, diff, "element counts differ")
}

func TestCompareResultsReportsEveryMismatchedBuffer(t *testing.T) {
	expected := []BufferView{
		FromInt32([]int32{1}),
		FromInt32([]int32{2}),
		FromInt32([]int32{3}),
	}
	actual := []BufferView{
		FromInt32([]int32{9}),
		FromInt32([]int32{2}),
		FromInt32([]int32{8}),
	}
	ok, diff := CompareResults(expected, actual, DefaultTolerance())
	require.False(t, ok)
	assert.Contains(t, diff, "result[0]")
	assert.NotContains(t, diff, "result[1]")
	assert.Contains(t, diff, "result[2]")
}

func TestRenderCapsElementCount(t *testing.T) {
	long := make([]int32, maxRenderElems+9)
	for i := range long {
		long[i] = int32(i)
	}
	wrong := make([]int32, len(long))
	copy(wrong, long)
	wrong[0] = -1
	ok, diff := CompareResults(
		[]BufferView{FromInt32(long)},
		[]BufferView{FromInt32(wrong)},
		DefaultTolerance())
	require.False(t, ok)
	assert.Contains(t, diff, "...(+9 more)")
	assert.Equal(t, 2, strings.Count(diff, "...(+9 more)"))
}

func TestBufferViewLen(t *testing.T) {
	assert.Equal(t, 3, FromFloat32([]float32{1, 2, 3}).Len())
	assert.Equal(t, 2, FromInt64([]int64{1, 2}).Len())
	assert.Equal(t, 4, FromInt8([]int8{1, 2, 3, 4}).Len())
	assert.Equal(t, 0, FromFloat64(nil).Len())
	assert.Equal(t, 2, FromInt16([]int16{1, 2}).Len())
}
