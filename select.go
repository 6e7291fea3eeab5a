package mmt4d

// TileFunc computes one output tile's full reduction. out points at the
// destination tile, lhs and rhs at the matching panels (all as byte tails of
// the caller's buffers), k is the reduction-tile count. The function walks k
// sub-tiles of depth K0 from the panel starts and honors FlagAccumulate
// itself; the outer loop driver is agnostic to accumulation policy.
type TileFunc func(out, lhs, rhs []byte, k int64, flags uint32, p *Params)

// The two registries behind tile-function selection. Both are assigned here
// (the arch one per GOARCH) and never mutated after init; tests substitute
// them to observe selection. The arch registry returns nil for "no match",
// which is a fallback trigger, not an error. The generic registry is the
// terminal fallback and must surface "nothing can do this" as a real status.
var (
	archTileFunc    func(p *Params) TileFunc           = selectTileFuncArch
	genericTileFunc func(p *Params) (TileFunc, Status) = selectTileFuncGeneric
)

// selectTileFunc resolves the tile function for validated params.
// Architecture-specific routines always take precedence: for the shapes they
// claim, they are assumed correct supersets of generic behavior.
func selectTileFunc(p *Params) (TileFunc, Status) {
	if tf := archTileFunc(p); tf != nil {
		return tf, StatusOK
	}
	return genericTileFunc(p)
}
