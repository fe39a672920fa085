package cdg

import "testing"

func makePacket(command, instruction uint8, data ...byte) []byte {
	raw := make([]byte, packetSize)
	raw[0] = command
	raw[1] = instruction
	copy(raw[4:20], data)
	return raw
}

func TestPacketReaderDiscardsTrailingPartial(t *testing.T) {
	full := makePacket(0x09, 1, 3)
	raw := append(full, 1, 2, 3) // trailing partial packet

	r := newPacketReader(raw)
	if _, ok := r.next(); !ok {
		t.Fatalf("expected one full packet")
	}
	if _, ok := r.next(); ok {
		t.Fatalf("expected trailing partial packet to be discarded")
	}
}

func TestPacketIsCDG(t *testing.T) {
	tests := []struct {
		command uint8
		want    bool
	}{
		{0x09, true},
		{0x49, true}, // high bits set, low 6 bits still 0x09
		{0x08, false},
		{0x00, false},
	}
	for _, tt := range tests {
		p := subcodePacket{command: tt.command}
		if got := p.isCDG(); got != tt.want {
			t.Errorf("command %#02x: isCDG() = %v, want %v", tt.command, got, tt.want)
		}
	}
}

func TestPacketCount(t *testing.T) {
	if got := packetCount(make([]byte, 24*5+10)); got != 5 {
		t.Errorf("packetCount() = %d, want 5", got)
	}
}
