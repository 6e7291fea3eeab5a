package mmt4d

// Type tags the element kinds of one multiplication as
// (lhs kind) x (rhs kind) -> (accumulator kind).
// The set is extensible; unknown values are rejected by validation.
type Type int32

const (
	// TypeNone is the zero value and is never valid.
	TypeNone Type = iota
	// TypeF32F32F32 multiplies float32 operands into float32 accumulators.
	TypeF32F32F32
	// TypeI8I8I32 multiplies int8 operands into int32 accumulators.
	TypeI8I8I32
	// TypeF16F16F32 multiplies IEEE half-precision operands into float32
	// accumulators. Operands are stored as raw uint16 bit patterns.
	TypeF16F16F32
)

// String returns the tag in lhs-rhs-out notation.
func (t Type) String() string {
	switch t {
	case TypeF32F32F32:
		return "f32f32f32"
	case TypeI8I8I32:
		return "i8i8i32"
	case TypeF16F16F32:
		return "f16f16f32"
	default:
		return "invalid"
	}
}

// FlagAccumulate makes tile functions sum into the existing output tile
// instead of overwriting it. It is the only recognized flag bit.
const FlagAccumulate uint32 = 1 << 0

// Params describes one tiled multiplication. It is read for the duration of
// a single Execute call and never retained.
//
// Lhs holds M panels of K reduction-tiles, each tile M0*K0 elements,
// contiguous within a panel. Rhs holds N panels of K reduction-tiles of
// N0*K0 elements each; the right operand is stored transposed (panel-major).
// Out holds M*N accumulator tiles of M0*N0 elements, row-major over (i, j).
//
// Strides are element counts between the starts of consecutive panels (or
// output tile rows); they are scaled to bytes internally using the element
// width of Type.
type Params struct {
	Type  Type
	Flags uint32

	// Tile-grid extents: row-tiles, column-tiles, reduction-tiles.
	// Each must be representable in 31 unsigned bits.
	M, N, K int64

	// Tile shape: rows, columns, reduction depth of one tile.
	// Each must be representable in 15 unsigned bits.
	M0, N0, K0 int32

	Lhs []byte
	Rhs []byte
	Out []byte

	LhsStride int64
	RhsStride int64
	OutStride int64
}

// Element byte widths in log2 form, so panel-element strides convert to byte
// strides with a shift instead of a multiply in the outer loop. These are
// total over the validated Type set; validation runs before any of them.

func lhsElemSizeLog2(t Type) uint {
	switch t {
	case TypeI8I8I32:
		return 0
	case TypeF16F16F32:
		return 1
	default: // TypeF32F32F32
		return 2
	}
}

func rhsElemSizeLog2(t Type) uint {
	return lhsElemSizeLog2(t)
}

func outElemSizeLog2(t Type) uint {
	// Every supported type accumulates in 4-byte elements (float32 or int32).
	return 2
}
