package cdg

// framebuffer is the 300x216 grid of 4-bit color indices described in
// spec.md §3. One index is stored per byte; tile-block and scroll inner
// loops operate on 6-pixel and full-row stripes where byte-per-pixel is
// the simplest representation to get right, per spec.md's Design Notes.
const (
	fbWidth  = 300
	fbHeight = 216

	safeWidth  = 288
	safeHeight = 192
	safeX      = 6
	safeY      = 12

	tileWidth  = 6
	tileHeight = 12
	tileCols   = fbWidth / tileWidth   // 50
	tileRows   = fbHeight / tileHeight // 18
)

type framebuffer struct {
	pix [fbHeight][fbWidth]uint8
}

func (f *framebuffer) reset() {
	*f = framebuffer{}
}

func (f *framebuffer) memoryPreset(color uint8) {
	for y := range f.pix {
		row := &f.pix[y]
		for x := range row {
			row[x] = color
		}
	}
}

// borderPreset fills the top 12 and bottom 12 lines entirely, and the
// leftmost/rightmost 6 columns of every interior line, leaving the
// 288x192 safe-area interior untouched.
func (f *framebuffer) borderPreset(color uint8) {
	for y := range f.pix {
		row := &f.pix[y]
		if y < safeY || y >= safeY+safeHeight {
			for x := range row {
				row[x] = color
			}
			continue
		}
		for x := 0; x < safeX; x++ {
			row[x] = color
		}
		for x := fbWidth - safeX; x < fbWidth; x++ {
			row[x] = color
		}
	}
}

var tileMasks = [6]uint8{0x20, 0x10, 0x08, 0x04, 0x02, 0x01}

// tileBlock places a 6x12 two-color tile with its top-left pixel at
// (col*tileWidth, row*tileHeight). row/col are clamped into range rather
// than rejected, per spec.md §7 OutOfRangeCoordinate.
func (f *framebuffer) tileBlock(color0, color1 uint8, row, col int, rows [12]uint8, xor bool) {
	row = clamp(row, 0, tileRows-1)
	col = clamp(col, 0, tileCols-1)
	top := row * tileHeight
	left := col * tileWidth

	for y := 0; y < tileHeight; y++ {
		line := &f.pix[top+y]
		bits := rows[y]
		for i, mask := range tileMasks {
			c := color0
			if bits&mask != 0 {
				c = color1
			}
			if xor {
				line[left+i] ^= c
			} else {
				line[left+i] = c
			}
		}
	}
}

// coarseScrollH shifts every line of the framebuffer left (dir<0) or
// right (dir>0) by tileWidth pixels. If wrap is true the vacated stripe
// is filled with the pixels that scrolled off the opposite edge (Scroll
// Copy); otherwise it is filled with color (Scroll Preset).
func (f *framebuffer) coarseScrollH(dir int, wrap bool, color uint8) {
	if dir == 0 {
		return
	}
	var tmp [tileWidth]uint8
	for y := range f.pix {
		line := &f.pix[y]
		if dir < 0 {
			copy(tmp[:], line[0:tileWidth])
			copy(line[0:fbWidth-tileWidth], line[tileWidth:fbWidth])
			if wrap {
				copy(line[fbWidth-tileWidth:], tmp[:])
			} else {
				fillSlice(line[fbWidth-tileWidth:], color)
			}
		} else {
			copy(tmp[:], line[fbWidth-tileWidth:])
			copy(line[tileWidth:fbWidth], line[0:fbWidth-tileWidth])
			if wrap {
				copy(line[0:tileWidth], tmp[:])
			} else {
				fillSlice(line[0:tileWidth], color)
			}
		}
	}
}

// coarseScrollV shifts the whole framebuffer up (dir<0) or down (dir>0)
// by tileHeight lines, with the same wrap/fill semantics as coarseScrollH.
func (f *framebuffer) coarseScrollV(dir int, wrap bool, color uint8) {
	if dir == 0 {
		return
	}
	var tmp [tileHeight][fbWidth]uint8
	if dir < 0 {
		copy(tmp[:], f.pix[0:tileHeight])
		copy(f.pix[0:fbHeight-tileHeight], f.pix[tileHeight:fbHeight])
		for i := 0; i < tileHeight; i++ {
			if wrap {
				f.pix[fbHeight-tileHeight+i] = tmp[i]
			} else {
				fillSlice(f.pix[fbHeight-tileHeight+i][:], color)
			}
		}
	} else {
		copy(tmp[:], f.pix[fbHeight-tileHeight:fbHeight])
		copy(f.pix[tileHeight:fbHeight], f.pix[0:fbHeight-tileHeight])
		for i := 0; i < tileHeight; i++ {
			if wrap {
				f.pix[i] = tmp[i]
			} else {
				fillSlice(f.pix[i][:], color)
			}
		}
	}
}

func fillSlice(s []uint8, v uint8) {
	for i := range s {
		s[i] = v
	}
}

// at returns the color index at framebuffer coordinate (x, y), with no
// bounds checking; callers are expected to stay within [0,fbWidth) and
// [0,fbHeight).
func (f *framebuffer) at(x, y int) uint8 {
	return f.pix[y][x]
}
