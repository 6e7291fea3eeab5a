package mmt4d

// Execute performs one tiled multiplication described by p.
// It sequences validation, tile-function selection, and the shared outer
// loop, short-circuiting on the first non-ok status. No byte of p.Out is
// written unless validation and selection both succeed.
func Execute(p *Params) Status {
	if st := validate(p); st != StatusOK {
		return st
	}
	tf, st := selectTileFunc(p)
	if st != StatusOK {
		return st
	}
	runTileFunc(p, tf)
	return StatusOK
}

// runTileFunc walks the output tile grid row-major and invokes tf once per
// tile. Only the innermost reduction is performance-critical and that lives
// in tf; sharing this loop nest across every type and architecture keeps the
// dispatch layer small. The same LHS panel serves a whole row of output
// tiles and the RHS panel pointer resets to the buffer start on each new
// row. Assumes p validated and tf compatible.
func runTileFunc(p *Params, tf TileFunc) {
	lhsLog2 := lhsElemSizeLog2(p.Type)
	rhsLog2 := rhsElemSizeLog2(p.Type)
	outLog2 := outElemSizeLog2(p.Type)
	outTileSize := (int64(p.M0) * int64(p.N0)) << outLog2
	lhsPanelStride := p.LhsStride << lhsLog2
	rhsPanelStride := p.RhsStride << rhsLog2
	outRowStride := p.OutStride << outLog2
	var outRow, lhsOff int64
	for i := int64(0); i < p.M; i++ {
		outOff := outRow
		var rhsOff int64
		for j := int64(0); j < p.N; j++ {
			tf(p.Out[outOff:], p.Lhs[lhsOff:], p.Rhs[rhsOff:], p.K, p.Flags, p)
			outOff += outTileSize
			rhsOff += rhsPanelStride
		}
		outRow += outRowStride
		lhsOff += lhsPanelStride
	}
}
