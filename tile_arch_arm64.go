//go:build arm64 && !noasm

package mmt4d

// selectTileFuncArch returns the best tile function this host can run for
// the requested type and tile shape, or nil when no specialized routine
// matches. Absence of a match is a fallback trigger, never an error.
func selectTileFuncArch(p *Params) TileFunc {
	if !hostFeatures.HasNEON {
		return nil
	}
	switch p.Type {
	case TypeF32F32F32:
		if p.M0 == 8 && p.N0 == 8 {
			return tile8x8F32F32F32
		}
	case TypeI8I8I32:
		if p.M0 == 8 && p.N0 == 8 {
			return tile8x8I8I8I32
		}
	}
	return nil
}
