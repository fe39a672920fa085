package cdg

import (
	"image"
	"image/color"
)

// CDG runs at packetsPerSecond (300) packets/s, so a packet is exactly
// 10/3 ms; the sampler tracks position as an integer packet count and
// samples every packetsPerFrame packets (one 40ms boundary) rather than
// accumulating a fractional millisecond position.
const (
	packetsPerSecond = 300
	msPerFrame       = 40
	packetsPerFrame  = msPerFrame * packetsPerSecond / 1000 // 12
)

// Frame is a snapshot of the 288x192 safe area, taken every 40ms of
// stream position. The indexed pixels and the palette that was active at
// capture time are kept separately and resolved to RGB lazily, so a long
// decode doesn't have to materialize every frame as full RGB up front
// (spec.md §5 resource model).
type Frame struct {
	StartTime int // ms
	indices   [safeHeight][safeWidth]uint8
	pal       *palette
}

// Width and Height are the fixed dimensions of every Frame.
func (fr *Frame) Width() int  { return safeWidth }
func (fr *Frame) Height() int { return safeHeight }

// At resolves the pixel at (x, y) through the frame's captured palette.
func (fr *Frame) At(x, y int) color.RGBA {
	r, g, b := fr.pal.rgb255(fr.indices[y][x])
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// RGBA materializes the frame as a fully-resolved image, for hosts that
// want to render or further process it.
func (fr *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, safeWidth, safeHeight))
	for y := 0; y < safeHeight; y++ {
		for x := 0; x < safeWidth; x++ {
			img.SetRGBA(x, y, fr.At(x, y))
		}
	}
	return img
}

// RawBytes returns the frame's resolved RGBA pixels as a flat byte slice,
// in row-major order. This is the hook spec.md §1 sets aside for a host
// to fingerprint a frame (e.g. by hashing it) without the decoder itself
// depending on any hashing algorithm.
func (fr *Frame) RawBytes() []byte {
	return fr.RGBA().Pix
}

// paletteCache deduplicates palette snapshots across frames. Palettes
// rarely change between samples, so most frames end up sharing a pointer
// into this cache rather than carrying their own copy (spec.md Design
// Notes §9).
type paletteCache struct {
	snapshots []palette
}

func (c *paletteCache) intern(p palette) *palette {
	for i := range c.snapshots {
		if c.snapshots[i] == p {
			return &c.snapshots[i]
		}
	}
	c.snapshots = append(c.snapshots, p)
	return &c.snapshots[len(c.snapshots)-1]
}

// frameSampler accumulates the decoded frame sequence and its parallel
// skip-flag sequence, one entry per 40ms of stream position.
type frameSampler struct {
	frames []Frame
	skip   []bool
	cache  paletteCache
}

func (s *frameSampler) reset() {
	s.frames = nil
	s.skip = nil
	s.cache = paletteCache{}
}

// reserve pre-sizes the frame and skip sequences, mirroring the original
// decoder's reservation of byteLen/24 entries on Open.
func (s *frameSampler) reserve(n int) {
	s.frames = make([]Frame, 0, n)
	s.skip = make([]bool, 0, n)
}

func (s *frameSampler) sample(fb *framebuffer, pal *palette, vp *viewport, startTime int, changed bool) {
	var f Frame
	f.StartTime = startTime
	f.pal = s.cache.intern(*pal)
	for y := 0; y < safeHeight; y++ {
		for x := 0; x < safeWidth; x++ {
			f.indices[y][x] = fb.at(safeX+vp.hOffset+x, safeY+vp.vOffset+y)
		}
	}
	s.frames = append(s.frames, f)
	s.skip = append(s.skip, !changed)
}
