//go:build (!amd64 && !arm64) || noasm

package mmt4d

// No specialized tile functions on this target; everything falls through to
// the generic registry.
func selectTileFuncArch(p *Params) TileFunc {
	return nil
}
