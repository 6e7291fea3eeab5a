package mmt4d

// Status is the closed set of result codes returned by Execute.
// Every failure is deterministic for a given request and host; there are no
// transient or retryable statuses.
type Status int32

const (
	// StatusOK indicates the multiplication completed.
	StatusOK Status = iota
	// StatusBadFlags indicates a flag bit outside the recognized set.
	StatusBadFlags
	// StatusBadType indicates an element-type tag outside the supported set.
	StatusBadType
	// StatusUnsupportedHugeOrNegativeDimension indicates a grid extent or
	// tile extent outside its contractual range (31-bit grid, 15-bit tile).
	StatusUnsupportedHugeOrNegativeDimension
	// StatusUnsupportedGenericTileSize indicates no architecture routine
	// claimed the tile shape and it exceeds what the portable fallback
	// supports.
	StatusUnsupportedGenericTileSize
)

// String returns a fixed diagnostic message for the status. Unrecognized
// values map to "unknown" so new codes never break message formatting.
// These strings are for logging; branch on the Status value itself.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusBadFlags:
		return "bad mmt4d flags"
	case StatusBadType:
		return "bad mmt4d type enum"
	case StatusUnsupportedHugeOrNegativeDimension:
		return "unsupported huge or negative size in mmt4d"
	case StatusUnsupportedGenericTileSize:
		return "tile size too large for the generic tile implementation"
	default:
		return "unknown"
	}
}
