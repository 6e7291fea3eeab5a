package mmt4d

// outsideUintRange reports whether v is negative or needs more than bits
// unsigned bits. The narrow bounds are contractual: K is the hottest loop
// bound and some 32-bit targets want it in int32, and 15-bit tile extents
// keep within-tile indexing in narrow integer arithmetic. Widening the
// stored field types must not silently relax these checks.
func outsideUintRange(v int64, bits uint) bool {
	return v < 0 || v>>bits != 0
}

// validate rejects malformed or out-of-range requests before any
// computation. It is a pure function of p and touches no buffers.
func validate(p *Params) Status {
	if p.Flags&^FlagAccumulate != 0 {
		return StatusBadFlags
	}
	switch p.Type {
	case TypeF32F32F32, TypeI8I8I32, TypeF16F16F32:
	default:
		return StatusBadType
	}
	if outsideUintRange(p.M, 31) || outsideUintRange(p.N, 31) ||
		outsideUintRange(p.K, 31) || outsideUintRange(int64(p.M0), 15) ||
		outsideUintRange(int64(p.N0), 15) || outsideUintRange(int64(p.K0), 15) {
		return StatusUnsupportedHugeOrNegativeDimension
	}
	return StatusOK
}
