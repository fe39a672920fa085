package cdg

// viewport holds the fine-scroll offsets applied when extracting the safe
// area. They are never applied to tile writes, only to the safe-area
// extractor (spec.md §3, §4.9).
type viewport struct {
	hOffset int // 0..5
	vOffset int // 0..11
}

const (
	maxHOffset = 5
	maxVOffset = 11
)

func (v *viewport) reset() {
	v.hOffset = 0
	v.vOffset = 0
}

// set clamps h and v into their valid ranges before storing them. A
// malformed scroll packet naming an offset outside [0,5]/[0,11] is
// clamped rather than rejected, per spec.md §7 OutOfRangeCoordinate.
func (v *viewport) set(h, v2 int) {
	v.hOffset = clamp(h, 0, maxHOffset)
	v.vOffset = clamp(v2, 0, maxVOffset)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
