package cdg

import "testing"

// cdgPacket builds one 24-byte subcode packet carrying a CDG instruction.
func cdgPacket(instruction uint8, data ...byte) []byte {
	return makePacket(cdgCommand, instruction, data...)
}

// fillerPackets builds n all-zero (non-CDG) packets, used to pad a stream
// out to a whole number of 40ms frames.
func fillerPackets(n int) []byte {
	var out []byte
	for i := 0; i < n; i++ {
		out = append(out, make([]byte, packetSize)...)
	}
	return out
}

func TestOpenEmptyInput(t *testing.T) {
	d := New()
	if err := d.Open(nil); err != ErrEmptyInput {
		t.Errorf("Open(nil) = %v, want ErrEmptyInput", err)
	}
	if d.IsOpen() {
		t.Errorf("IsOpen() = true after failed Open")
	}
}

func TestProcessWithoutOpenReturnsFalse(t *testing.T) {
	d := New()
	if d.Process() {
		t.Errorf("Process() without Open = true, want false")
	}
}

func TestDoubleProcessIsNoop(t *testing.T) {
	d := New()
	data := append(cdgPacket(instMemoryPreset, 5), fillerPackets(11)...)
	if err := d.Open(data); err != nil {
		t.Fatalf("Open: %v", err)
	}
	first := d.Process()
	framesAfterFirst := d.FrameCount()

	second := d.Process()
	if second != first {
		t.Errorf("second Process() = %v, want same result as first (%v)", second, first)
	}
	if d.FrameCount() != framesAfterFirst {
		t.Errorf("FrameCount changed across the no-op second Process call")
	}
}

func TestResetClearsDecodedState(t *testing.T) {
	d := New()
	data := append(cdgPacket(instMemoryPreset, 5), fillerPackets(11)...)
	d.Open(data)
	d.Process()
	if d.FrameCount() == 0 {
		t.Fatalf("expected at least one frame before Reset")
	}

	d.Reset()
	if d.FrameCount() != 0 || d.IsOpen() {
		t.Errorf("Reset() left frames=%d isOpen=%v, want 0/false", d.FrameCount(), d.IsOpen())
	}
}

func TestMemoryPresetAppliesToFrame(t *testing.T) {
	d := New()
	data := append(cdgPacket(instMemoryPreset, 6), fillerPackets(11)...)
	d.Open(data)
	d.Process()

	fr := d.FrameAt(40)
	if fr == nil {
		t.Fatalf("FrameAt(40) = nil")
	}
	r, g, b := fr.pal.rgb255(6)
	if got := fr.At(0, 0); fr.indices[0][0] != 6 || got.R != r || got.G != g || got.B != b {
		t.Errorf("sampled frame pixel = index %d %+v, want palette entry 6 (%d,%d,%d)", fr.indices[0][0], got, r, g, b)
	}
}

func TestRepeatedMemoryPresetIsSuppressed(t *testing.T) {
	d := New()
	// first preset sets color 3, a repeat preset claiming color 9 should be
	// ignored since repeat != 0 and the previous instruction was also a
	// memory preset.
	var data []byte
	data = append(data, cdgPacket(instMemoryPreset, 3)...)
	data = append(data, cdgPacket(instMemoryPreset, 9, 1)...)
	data = append(data, fillerPackets(10)...)
	d.Open(data)
	d.Process()

	fr := d.FrameAt(40)
	r, g, b := fr.pal.rgb255(3)
	got := fr.At(0, 0)
	if fr.indices[0][0] != 3 || got.R != r || got.G != g || got.B != b {
		t.Errorf("frame pixel = index %d %+v, want suppressed to entry 3 (%d,%d,%d)", fr.indices[0][0], got, r, g, b)
	}
}

func TestCanSkipAtDetectsIdenticalRun(t *testing.T) {
	d := New()
	// one frame visibly changed by a memory preset, followed by four
	// identical frames with no further commands.
	var data []byte
	data = append(data, cdgPacket(instMemoryPreset, 4)...)
	data = append(data, fillerPackets(11)...)
	for i := 0; i < 4; i++ {
		data = append(data, fillerPackets(12)...)
	}
	d.Open(data)
	d.Process()

	if d.FrameCount() < 5 {
		t.Fatalf("FrameCount = %d, want at least 5", d.FrameCount())
	}
	// ms=160 lands well inside the run of unchanged frames, away from the
	// single changed frame at the start of the stream.
	if !d.CanSkipAt(160) {
		t.Errorf("CanSkipAt(160) = false, want true across the identical run")
	}
}

func TestCanSkipAtFalseAtStreamEdges(t *testing.T) {
	d := New()
	data := append(cdgPacket(instMemoryPreset, 1), fillerPackets(11)...)
	d.Open(data)
	d.Process()

	if d.CanSkipAt(0) {
		t.Errorf("CanSkipAt(0) = true, want false (no preceding frame to compare)")
	}
}

func TestSetTempoClampsNonPositive(t *testing.T) {
	d := New()
	d.SetTempo(0)
	if d.Tempo() != 1 {
		t.Errorf("Tempo() = %d after SetTempo(0), want 1", d.Tempo())
	}
}

func TestDurationTracksPacketCount(t *testing.T) {
	d := New()
	data := fillerPackets(24) // 2 frames worth of packets
	d.Open(data)
	if got := d.Duration(); got != 80 {
		t.Errorf("Duration() = %d, want 80", got)
	}
}

func TestLoadColorsThenTileBlockRendersCorrectColor(t *testing.T) {
	d := New()
	var colorData [16]byte
	colorData[2] = 0x3f // entry 1: r=0xf,g=0xf... composed below
	colorData[3] = 0xfc

	var tileData [16]byte
	tileData[0] = 0    // color0 index 0 (black)
	tileData[1] = 1    // color1 index 1 (loaded white)
	tileData[2] = 1    // row 1 -> covers y 12..23, inside the safe area
	tileData[3] = 1    // col 1 -> covers x 6..11, inside the safe area
	tileData[4] = 0x20 // top-left pixel of the tile uses color1

	var data []byte
	data = append(data, cdgPacket(instLoadColorsLow, colorData[:]...)...)
	data = append(data, cdgPacket(instTileBlock, tileData[:]...)...)
	data = append(data, fillerPackets(10)...)
	d.Open(data)
	d.Process()

	fr := d.FrameAt(40)
	got := fr.At(0, 0)
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("tile pixel after load colors = %+v, want white", got)
	}
}
