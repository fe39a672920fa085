package cdg

import (
	"github.com/lucasb-eyer/go-colorful"
)

// paletteSize is the number of entries in a CDG color table. It never
// changes; only the entries themselves are mutated by command handlers.
const paletteSize = 16

// palette is the 16-entry indexed color table. Entries are kept as
// colorful.Color (floating point, 0..1 per channel) rather than raw bytes
// so the same value can be resolved to 8-bit RGB for a frame and to a hex
// string for debug output without losing precision in between.
type palette struct {
	entries [paletteSize]colorful.Color
}

func newPalette() palette {
	// the zero value of colorful.Color is already (0,0,0) - pure black -
	// which is the initial palette spec.md requires, but we set it
	// explicitly so the intent reads clearly.
	var p palette
	for i := range p.entries {
		p.entries[i] = colorful.Color{R: 0, G: 0, B: 0}
	}
	return p
}

// rgb255 resolves entry idx to 8-bit RGB components.
func (p *palette) rgb255(idx uint8) (r, g, b uint8) {
	return p.entries[idx&0x0f].RGB255()
}

// loadColorTable decodes spec.md's 8-entry, 16-byte color load payload and
// writes it into the table starting at base (0 for the low table, 8 for
// the high table). It reports whether any entry actually changed, so the
// caller can fold that into the decoder's visible-change tracking.
func (p *palette) loadColorTable(data [16]byte, base int) bool {
	changed := false
	for i := 0; i < 8; i++ {
		b0, b1 := data[i*2], data[i*2+1]

		// each pair of bytes packs 12 bits of RGB as:
		//   b0: 00 rrrr gg
		//   b1: gg bbbb XX
		// red and blue are whole nibbles; green is split two-high/two-low
		// across the byte boundary. the bottom two bits of b1 are padding.
		r := (b0 >> 2) & 0x0f
		g := ((b0 & 0x03) << 2) | ((b1 >> 6) & 0x03)
		b := (b1 >> 2) & 0x0f

		// CDG channels are 4 bits wide; widen to 8 bits by nibble
		// replication (0xf * 17 == 0xff) rather than a left-shift, so
		// white stays white instead of 0xf0.
		next := colorful.Color{
			R: float64(r*17) / 255,
			G: float64(g*17) / 255,
			B: float64(b*17) / 255,
		}

		idx := base + i
		if p.entries[idx] != next {
			p.entries[idx] = next
			changed = true
		}
	}
	return changed
}
