package mmt4d

import "github.com/x448/float16"

// genericMaxTileElems bounds M0*N0 for the portable tile functions, which
// keep the whole accumulator tile in a fixed-size stack array so the hot
// path stays allocation-free. 1024 elements is a 4KiB float32/int32 scratch.
// Architecture routines may claim larger shapes; requests beyond both get
// StatusUnsupportedGenericTileSize.
const genericMaxTileElems = 1024

// selectTileFuncGeneric returns the portable reference tile function for the
// requested type, or StatusUnsupportedGenericTileSize when the tile shape
// exceeds the scratch bound.
func selectTileFuncGeneric(p *Params) (TileFunc, Status) {
	if int64(p.M0)*int64(p.N0) > genericMaxTileElems {
		return nil, StatusUnsupportedGenericTileSize
	}
	switch p.Type {
	case TypeF32F32F32:
		return tileGenericF32F32F32, StatusOK
	case TypeI8I8I32:
		return tileGenericI8I8I32, StatusOK
	case TypeF16F16F32:
		return tileGenericF16F16F32, StatusOK
	default:
		// Unreachable after validation; kept so selection stays total.
		return nil, StatusBadType
	}
}

func tileGenericF32F32F32(out, lhs, rhs []byte, k int64, flags uint32, p *Params) {
	m0, n0, k0 := int(p.M0), int(p.N0), int(p.K0)
	elems := m0 * n0
	outv := f32s(out, elems)
	var acc [genericMaxTileElems]float32
	if flags&FlagAccumulate != 0 {
		copy(acc[:elems], outv)
	}
	lhsv := f32s(lhs, int(k)*m0*k0)
	rhsv := f32s(rhs, int(k)*n0*k0)
	for kt := 0; kt < int(k); kt++ {
		lt := lhsv[kt*m0*k0 : (kt+1)*m0*k0]
		rt := rhsv[kt*n0*k0 : (kt+1)*n0*k0]
		for i := 0; i < m0; i++ {
			li := lt[i*k0 : i*k0+k0]
			for j := 0; j < n0; j++ {
				rj := rt[j*k0 : j*k0+k0]
				sum := acc[i*n0+j]
				for kk := 0; kk < k0; kk++ {
					sum += li[kk] * rj[kk]
				}
				acc[i*n0+j] = sum
			}
		}
	}
	copy(outv, acc[:elems])
}

func tileGenericI8I8I32(out, lhs, rhs []byte, k int64, flags uint32, p *Params) {
	m0, n0, k0 := int(p.M0), int(p.N0), int(p.K0)
	elems := m0 * n0
	outv := i32s(out, elems)
	var acc [genericMaxTileElems]int32
	if flags&FlagAccumulate != 0 {
		copy(acc[:elems], outv)
	}
	lhsv := i8s(lhs, int(k)*m0*k0)
	rhsv := i8s(rhs, int(k)*n0*k0)
	for kt := 0; kt < int(k); kt++ {
		lt := lhsv[kt*m0*k0 : (kt+1)*m0*k0]
		rt := rhsv[kt*n0*k0 : (kt+1)*n0*k0]
		for i := 0; i < m0; i++ {
			li := lt[i*k0 : i*k0+k0]
			for j := 0; j < n0; j++ {
				rj := rt[j*k0 : j*k0+k0]
				sum := acc[i*n0+j]
				for kk := 0; kk < k0; kk++ {
					// Accumulation widens to int32 so int8-range inputs
					// never overflow in the product.
					sum += int32(li[kk]) * int32(rj[kk])
				}
				acc[i*n0+j] = sum
			}
		}
	}
	copy(outv, acc[:elems])
}

func tileGenericF16F16F32(out, lhs, rhs []byte, k int64, flags uint32, p *Params) {
	m0, n0, k0 := int(p.M0), int(p.N0), int(p.K0)
	elems := m0 * n0
	outv := f32s(out, elems)
	var acc [genericMaxTileElems]float32
	if flags&FlagAccumulate != 0 {
		copy(acc[:elems], outv)
	}
	lhsv := u16s(lhs, int(k)*m0*k0)
	rhsv := u16s(rhs, int(k)*n0*k0)
	for kt := 0; kt < int(k); kt++ {
		lt := lhsv[kt*m0*k0 : (kt+1)*m0*k0]
		rt := rhsv[kt*n0*k0 : (kt+1)*n0*k0]
		for i := 0; i < m0; i++ {
			li := lt[i*k0 : i*k0+k0]
			for j := 0; j < n0; j++ {
				rj := rt[j*k0 : j*k0+k0]
				sum := acc[i*n0+j]
				for kk := 0; kk < k0; kk++ {
					sum += float16.Frombits(li[kk]).Float32() *
						float16.Frombits(rj[kk]).Float32()
				}
				acc[i*n0+j] = sum
			}
		}
	}
	copy(outv, acc[:elems])
}
