package cdg

// A CDG subcode packet is 24 bytes: command, instruction, 2 bytes of Q
// parity, 16 bytes of payload, and 4 bytes of P parity. Only the payload
// and the low 6 bits of command/instruction matter to the decoder; parity
// is carried by the transport and is of no use once the bytes reach here.
const packetSize = 24

// subcodeMask isolates the six significant bits of the command and
// instruction bytes; the top two bits are used by other subchannel modes
// that this decoder never sees.
const subcodeMask = 0x3f

// cdgCommand is the command value (after masking) that identifies a
// packet as belonging to the CDG graphics channel. Anything else is some
// other subcode mode and is silently skipped, per spec.
const cdgCommand = 0x09

type subcodePacket struct {
	command     uint8
	instruction uint8
	data        [16]byte
}

func (p subcodePacket) isCDG() bool {
	return p.command&subcodeMask == cdgCommand
}

// packetReader slices a raw CDG byte stream into fixed-size subcode
// packets, discarding a trailing partial packet.
type packetReader struct {
	data []byte
	pos  int
}

func newPacketReader(data []byte) *packetReader {
	return &packetReader{data: data}
}

// next returns the next packet in the stream, and false once fewer than
// packetSize bytes remain.
func (r *packetReader) next() (subcodePacket, bool) {
	if r.pos+packetSize > len(r.data) {
		return subcodePacket{}, false
	}
	raw := r.data[r.pos : r.pos+packetSize]
	r.pos += packetSize

	var p subcodePacket
	p.command = raw[0]
	p.instruction = raw[1]
	copy(p.data[:], raw[4:20])
	return p, true
}

// packetCount returns the number of whole 24-byte packets in data.
func packetCount(data []byte) int {
	return len(data) / packetSize
}
