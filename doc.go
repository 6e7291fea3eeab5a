// Copyright ©2025 The mmt4d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmt4d implements the runtime microkernel for tiled matrix
// multiplication: C = A @ B^T where all three operands are packed into
// fixed-size rectangular tiles ("mmt4d" = matrix multiply transpose,
// 4D-tiled).
//
// Callers (typically compiler-generated code) describe one multiplication
// with a Params record and invoke Execute. The package validates the
// request, selects the best per-tile compute routine for the host CPU
// (architecture-specific first, portable fallback second), and drives the
// shared outer loop over the tile grid. The hot inner reduction lives
// entirely in the selected tile function.
//
// Example:
//
//	p := &mmt4d.Params{
//	    Type: mmt4d.TypeF32F32F32,
//	    M: mTiles, N: nTiles, K: kTiles,
//	    M0: 8, N0: 8, K0: 1,
//	    Lhs: lhsBytes, Rhs: rhsBytes, Out: outBytes,
//	    LhsStride: kTiles * 8 * 1,
//	    RhsStride: kTiles * 8 * 1,
//	    OutStride: nTiles * 8 * 8,
//	}
//	if st := mmt4d.Execute(p); st != mmt4d.StatusOK {
//	    log.Fatalf("mmt4d: %v", st)
//	}
//
// Execute performs no heap allocation and no locking; concurrent calls on
// disjoint buffers are safe. Inputs must not alias the output buffer.
package mmt4d
