package mmt4d

import "unsafe"

// Byte views over typed test data, mirroring the packing the compiler layer
// performs before calling Execute.

func f32Bytes(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
}

func i8Bytes(v []int8) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v))
}

func i32Bytes(v []int32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
}

func u16Bytes(v []uint16) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*2)
}

// forceGenericSelection routes every selection through the generic registry
// for the duration of a test, regardless of host capabilities. Returns a
// restore function.
func forceGenericSelection() func() {
	saved := archTileFunc
	archTileFunc = func(*Params) TileFunc { return nil }
	return func() { archTileFunc = saved }
}
