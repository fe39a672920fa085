package cdg

// instruction codes recognised by the dispatcher (spec.md §4.2), plus the
// XOR tile block opcode the distilled spec's table omits but §4.5
// describes and the original CdgParser dispatches separately (see
// SPEC_FULL.md §4).
const (
	instMemoryPreset   = 1
	instBorderPreset   = 2
	instTileBlock      = 6
	instScrollPreset   = 20
	instScrollCopy     = 24
	instDefineTransp   = 28
	instLoadColorsLow  = 30
	instLoadColorsHigh = 31
	instTileBlockXOR   = 38
)

// command is a decoded, typed payload for one of the instructions the
// dispatcher understands. Keeping decode (bit-layout knowledge) separate
// from apply (framebuffer/palette/viewport mutation) means each handler
// is a pure function of state plus variant, per spec.md's Design Notes.
type command interface {
	apply(fb *framebuffer, pal *palette, vp *viewport) bool
}

type memoryPresetCmd struct {
	color  uint8
	repeat uint8
}

type borderPresetCmd struct {
	color uint8
}

type tileBlockCmd struct {
	color0, color1 uint8
	row, col       int
	rows           [12]uint8
	xor            bool
}

type scrollCmd struct {
	color            uint8
	hCmd, vCmd       int
	hOffset, vOffset int
	wrap             bool
}

type loadColorsCmd struct {
	base int
	data [16]byte
}

// decodeCommand decodes the 16-byte payload of a dispatched instruction
// into a typed command, or returns nil for an unrecognised instruction or
// the no-op Define Transparent command.
func decodeCommand(instruction uint8, data [16]byte) command {
	switch instruction & subcodeMask {
	case instMemoryPreset:
		return memoryPresetCmd{
			color:  data[0] & 0x0f,
			repeat: data[1] & 0x0f,
		}
	case instBorderPreset:
		return borderPresetCmd{color: data[0] & 0x0f}
	case instTileBlock, instTileBlockXOR:
		var rows [12]uint8
		for i := 0; i < 12; i++ {
			rows[i] = data[4+i] & 0x3f
		}
		return tileBlockCmd{
			color0: data[0] & 0x0f,
			color1: data[1] & 0x0f,
			row:    int(data[2] & 0x1f),
			col:    int(data[3] & 0x1f),
			rows:   rows,
			xor:    instruction&subcodeMask == instTileBlockXOR,
		}
	case instScrollPreset, instScrollCopy:
		return scrollCmd{
			color:   data[0] & 0x0f,
			hCmd:    int((data[1] >> 4) & 0x03),
			hOffset: int(data[1] & 0x0f),
			vCmd:    int((data[2] >> 4) & 0x03),
			vOffset: int(data[2] & 0x0f),
			wrap:    instruction&subcodeMask == instScrollCopy,
		}
	case instLoadColorsLow:
		return loadColorsCmd{base: 0, data: data}
	case instLoadColorsHigh:
		return loadColorsCmd{base: 8, data: data}
	case instDefineTransp:
		// the CDG Red Book reserves this opcode for defining a
		// transparent palette index. commercial discs essentially never
		// use it; spec.md treats it as a no-op, matching observed player
		// behaviour, so there is nothing to decode.
		return nil
	default:
		return nil
	}
}

func (c memoryPresetCmd) apply(fb *framebuffer, _ *palette, _ *viewport) bool {
	fb.memoryPreset(c.color)
	return true
}

func (c borderPresetCmd) apply(fb *framebuffer, _ *palette, _ *viewport) bool {
	fb.borderPreset(c.color)
	return true
}

func (c tileBlockCmd) apply(fb *framebuffer, _ *palette, _ *viewport) bool {
	fb.tileBlock(c.color0, c.color1, c.row, c.col, c.rows, c.xor)
	return true
}

func (c scrollCmd) apply(fb *framebuffer, _ *palette, vp *viewport) bool {
	switch c.hCmd {
	case 2:
		fb.coarseScrollH(-1, c.wrap, c.color)
	case 1:
		fb.coarseScrollH(1, c.wrap, c.color)
	}
	switch c.vCmd {
	case 2:
		fb.coarseScrollV(-1, c.wrap, c.color)
	case 1:
		fb.coarseScrollV(1, c.wrap, c.color)
	}
	vp.set(c.hOffset, c.vOffset)
	return true
}

func (c loadColorsCmd) apply(_ *framebuffer, pal *palette, _ *viewport) bool {
	return pal.loadColorTable(c.data, c.base)
}
