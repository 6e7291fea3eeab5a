package mmt4d

// Reference contains simple, obviously-correct renditions of the tiled
// multiplication, used for testing and verification of the dispatched
// implementations. They take typed slices and plain int extents instead of
// Params so a bug in parameter plumbing cannot hide in both places.
type Reference struct{}

// MMT4DF32 computes the float32 tiled product the slow way.
// Layout matches Params: lhs holds m panels of k tiles of m0*k0 elements,
// rhs holds n panels of k tiles of n0*k0 elements, out holds m*n tiles of
// m0*n0 elements. Strides are element counts between panel starts.
func (Reference) MMT4DF32(lhs, rhs, out []float32, m, n, k, m0, n0, k0 int,
	lhsStride, rhsStride, outStride int, accumulate bool) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			outTile := out[i*outStride+j*m0*n0:]
			lhsPanel := lhs[i*lhsStride:]
			rhsPanel := rhs[j*rhsStride:]
			for ii := 0; ii < m0; ii++ {
				for jj := 0; jj < n0; jj++ {
					var sum float32
					if accumulate {
						sum = outTile[ii*n0+jj]
					}
					for kt := 0; kt < k; kt++ {
						for kk := 0; kk < k0; kk++ {
							sum += lhsPanel[kt*m0*k0+ii*k0+kk] *
								rhsPanel[kt*n0*k0+jj*k0+kk]
						}
					}
					outTile[ii*n0+jj] = sum
				}
			}
		}
	}
}

// MMT4DI8 computes the int8 x int8 -> int32 tiled product the slow way.
func (Reference) MMT4DI8(lhs, rhs []int8, out []int32, m, n, k, m0, n0, k0 int,
	lhsStride, rhsStride, outStride int, accumulate bool) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			outTile := out[i*outStride+j*m0*n0:]
			lhsPanel := lhs[i*lhsStride:]
			rhsPanel := rhs[j*rhsStride:]
			for ii := 0; ii < m0; ii++ {
				for jj := 0; jj < n0; jj++ {
					var sum int32
					if accumulate {
						sum = outTile[ii*n0+jj]
					}
					for kt := 0; kt < k; kt++ {
						for kk := 0; kk < k0; kk++ {
							sum += int32(lhsPanel[kt*m0*k0+ii*k0+kk]) *
								int32(rhsPanel[kt*n0*k0+jj*k0+kk])
						}
					}
					outTile[ii*n0+jj] = sum
				}
			}
		}
	}
}
