package mmt4d

// Unrolled tile functions for the 8x8 tile shapes the packing layer favors
// on 256-bit SIMD hosts. The column dimension is fully unrolled into eight
// scalar accumulators per output row so the compiler keeps them in registers
// across the depth loop; the arch selectors only claim these shapes on hosts
// where the 8-wide layout pays off.

func tile8x8F32F32F32(out, lhs, rhs []byte, k int64, flags uint32, p *Params) {
	k0 := int(p.K0)
	outv := f32s(out, 64)
	var acc [64]float32
	if flags&FlagAccumulate != 0 {
		copy(acc[:], outv)
	}
	lhsv := f32s(lhs, int(k)*8*k0)
	rhsv := f32s(rhs, int(k)*8*k0)
	for kt := 0; kt < int(k); kt++ {
		lt := lhsv[kt*8*k0 : (kt+1)*8*k0]
		rt := rhsv[kt*8*k0 : (kt+1)*8*k0]
		for i := 0; i < 8; i++ {
			li := lt[i*k0 : i*k0+k0]
			a0, a1, a2, a3 := acc[i*8+0], acc[i*8+1], acc[i*8+2], acc[i*8+3]
			a4, a5, a6, a7 := acc[i*8+4], acc[i*8+5], acc[i*8+6], acc[i*8+7]
			for kk := 0; kk < k0; kk++ {
				l := li[kk]
				a0 += l * rt[0*k0+kk]
				a1 += l * rt[1*k0+kk]
				a2 += l * rt[2*k0+kk]
				a3 += l * rt[3*k0+kk]
				a4 += l * rt[4*k0+kk]
				a5 += l * rt[5*k0+kk]
				a6 += l * rt[6*k0+kk]
				a7 += l * rt[7*k0+kk]
			}
			acc[i*8+0], acc[i*8+1], acc[i*8+2], acc[i*8+3] = a0, a1, a2, a3
			acc[i*8+4], acc[i*8+5], acc[i*8+6], acc[i*8+7] = a4, a5, a6, a7
		}
	}
	copy(outv, acc[:])
}

func tile8x8I8I8I32(out, lhs, rhs []byte, k int64, flags uint32, p *Params) {
	k0 := int(p.K0)
	outv := i32s(out, 64)
	var acc [64]int32
	if flags&FlagAccumulate != 0 {
		copy(acc[:], outv)
	}
	lhsv := i8s(lhs, int(k)*8*k0)
	rhsv := i8s(rhs, int(k)*8*k0)
	for kt := 0; kt < int(k); kt++ {
		lt := lhsv[kt*8*k0 : (kt+1)*8*k0]
		rt := rhsv[kt*8*k0 : (kt+1)*8*k0]
		for i := 0; i < 8; i++ {
			li := lt[i*k0 : i*k0+k0]
			a0, a1, a2, a3 := acc[i*8+0], acc[i*8+1], acc[i*8+2], acc[i*8+3]
			a4, a5, a6, a7 := acc[i*8+4], acc[i*8+5], acc[i*8+6], acc[i*8+7]
			for kk := 0; kk < k0; kk++ {
				l := int32(li[kk])
				a0 += l * int32(rt[0*k0+kk])
				a1 += l * int32(rt[1*k0+kk])
				a2 += l * int32(rt[2*k0+kk])
				a3 += l * int32(rt[3*k0+kk])
				a4 += l * int32(rt[4*k0+kk])
				a5 += l * int32(rt[5*k0+kk])
				a6 += l * int32(rt[6*k0+kk])
				a7 += l * int32(rt[7*k0+kk])
			}
			acc[i*8+0], acc[i*8+1], acc[i*8+2], acc[i*8+3] = a0, a1, a2, a3
			acc[i*8+4], acc[i*8+5], acc[i*8+6], acc[i*8+7] = a4, a5, a6, a7
		}
	}
	copy(outv, acc[:])
}
