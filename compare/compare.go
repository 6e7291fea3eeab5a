package compare

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/x448/float16"
)

// Kind identifies the element type of a result buffer.
type Kind int

const (
	I8 Kind = iota
	I16
	I32
	I64
	F16
	F32
	F64
)

// String returns the short type tag used in diff text.
func (k Kind) String() string {
	switch k {
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F16:
		return "f16"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return "?"
	}
}

// ElemSize returns the element width in bytes.
func (k Kind) ElemSize() int {
	switch k {
	case I8:
		return 1
	case I16, F16:
		return 2
	case I32, F32:
		return 4
	default:
		return 8
	}
}

func (k Kind) isFloat() bool {
	return k == F16 || k == F32 || k == F64
}

// BufferView is a typed, read-only view over one result buffer. Data aliases
// the caller's memory; no copies are made.
type BufferView struct {
	Kind Kind
	Data []byte
}

// Len returns the number of elements in the view.
func (b BufferView) Len() int {
	return len(b.Data) / b.Kind.ElemSize()
}

// Typed view constructors.

func FromInt8(v []int8) BufferView {
	return BufferView{Kind: I8, Data: sliceBytes(v)}
}

func FromInt16(v []int16) BufferView {
	return BufferView{Kind: I16, Data: sliceBytes(v)}
}

func FromInt32(v []int32) BufferView {
	return BufferView{Kind: I32, Data: sliceBytes(v)}
}

func FromInt64(v []int64) BufferView {
	return BufferView{Kind: I64, Data: sliceBytes(v)}
}

// FromFloat16 views raw IEEE half-precision bit patterns.
func FromFloat16(v []uint16) BufferView {
	return BufferView{Kind: F16, Data: sliceBytes(v)}
}

func FromFloat32(v []float32) BufferView {
	return BufferView{Kind: F32, Data: sliceBytes(v)}
}

func FromFloat64(v []float64) BufferView {
	return BufferView{Kind: F64, Data: sliceBytes(v)}
}

func sliceBytes[T int8 | int16 | int32 | int64 | uint16 | float32 | float64](v []T) []byte {
	if len(v) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*int(unsafe.Sizeof(zero)))
}

// maxRenderElems caps how many elements a diff line renders per buffer.
const maxRenderElems = 16

// CompareResults compares an expected result list against an actual one.
// It returns true when everything matches; otherwise the returned text holds
// one "[FAILED] result[<index>]: ..." block per mismatch, suitable for test
// logs. Integer kinds compare exactly, float kinds through tol.
func CompareResults(expected, actual []BufferView, tol ToleranceConfig) (bool, string) {
	var sb strings.Builder
	if len(expected) != len(actual) {
		fmt.Fprintf(&sb, "[FAILED] expected %d results, actual %d results\n",
			len(expected), len(actual))
		return false, sb.String()
	}
	allMatch := true
	for i := range expected {
		if !compareBuffer(i, expected[i], actual[i], tol, &sb) {
			allMatch = false
		}
	}
	return allMatch, sb.String()
}

func compareBuffer(index int, expected, actual BufferView, tol ToleranceConfig, sb *strings.Builder) bool {
	if expected.Kind != actual.Kind {
		fmt.Fprintf(sb, "[FAILED] result[%d]: element kinds differ\n  expected: %s\n  actual: %s\n",
			index, expected.Kind, actual.Kind)
		return false
	}
	if expected.Len() != actual.Len() {
		fmt.Fprintf(sb, "[FAILED] result[%d]: element counts differ\n  expected: %d\n  actual: %d\n",
			index, expected.Len(), actual.Len())
		return false
	}
	for i := 0; i < expected.Len(); i++ {
		if elementsEqual(expected, actual, i, tol) {
			continue
		}
		fmt.Fprintf(sb, "[FAILED] result[%d]: %s values differ at element %d\n  expected: %s\n  actual: %s\n",
			index, expected.Kind, i, render(expected), render(actual))
		return false
	}
	return true
}

func elementsEqual(expected, actual BufferView, i int, tol ToleranceConfig) bool {
	switch expected.Kind {
	case F16:
		return Float32NearEqual(float16.Frombits(expected.u16At(i)).Float32(),
			float16.Frombits(actual.u16At(i)).Float32(), tol)
	case F32:
		return Float32NearEqual(expected.f32At(i), actual.f32At(i), tol)
	case F64:
		return Float64NearEqual(expected.f64At(i), actual.f64At(i), tol)
	default:
		return expected.intAt(i) == actual.intAt(i)
	}
}

// render formats a buffer's contents for diff text, capped at
// maxRenderElems elements.
func render(b BufferView) string {
	var sb strings.Builder
	sb.WriteByte('[')
	n := b.Len()
	shown := n
	if shown > maxRenderElems {
		shown = maxRenderElems
	}
	for i := 0; i < shown; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch b.Kind {
		case F16:
			fmt.Fprintf(&sb, "%g", float16.Frombits(b.u16At(i)).Float32())
		case F32:
			fmt.Fprintf(&sb, "%g", b.f32At(i))
		case F64:
			fmt.Fprintf(&sb, "%g", b.f64At(i))
		default:
			fmt.Fprintf(&sb, "%d", b.intAt(i))
		}
	}
	if shown < n {
		fmt.Fprintf(&sb, " ...(+%d more)", n-shown)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Element accessors. The Len check in compareBuffer guarantees i in range.

func (b BufferView) u16At(i int) uint16 {
	return *(*uint16)(unsafe.Pointer(&b.Data[i*2]))
}

func (b BufferView) f32At(i int) float32 {
	return *(*float32)(unsafe.Pointer(&b.Data[i*4]))
}

func (b BufferView) f64At(i int) float64 {
	return *(*float64)(unsafe.Pointer(&b.Data[i*8]))
}

func (b BufferView) intAt(i int) int64 {
	switch b.Kind {
	case I8:
		return int64(int8(b.Data[i]))
	case I16:
		return int64(*(*int16)(unsafe.Pointer(&b.Data[i*2])))
	case I32:
		return int64(*(*int32)(unsafe.Pointer(&b.Data[i*4])))
	default:
		return *(*int64)(unsafe.Pointer(&b.Data[i*8]))
	}
}
