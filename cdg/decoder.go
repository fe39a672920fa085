package cdg

import "log/slog"

// Decoder owns a CDG virtual machine: a framebuffer, a palette, the
// fine-scroll viewport, and the frame sequence sampled from them. The
// usual lifecycle is Open, Process, then any number of read-only FrameAt /
// CanSkipAt calls; see the package doc for the full contract.
type Decoder struct {
	fb      framebuffer
	pal     palette
	vp      viewport
	sampler frameSampler

	lastWasMemoryPreset bool
	changedSinceSample  bool
	lastUpdateMs        int
	tempo               int

	data         []byte
	totalPackets int
	opened       bool
	processed    bool
	isOpen       bool

	log *slog.Logger
}

// New returns a Decoder in its reset state.
func New() *Decoder {
	d := &Decoder{}
	d.Reset()
	return d
}

// SetLogger attaches a structured logger the decoder uses to trace the
// same open/process/reset lifecycle events the original implementation
// logged at info/debug level. A nil logger (the default) keeps the
// decoder silent.
func (d *Decoder) SetLogger(logger *slog.Logger) {
	d.log = logger
}

func (d *Decoder) trace(msg string, args ...any) {
	if d.log == nil {
		return
	}
	d.log.Debug(msg, args...)
}

// Reset clears frames, skip flags, framebuffer, palette, offsets and
// tempo back to their defaults. It is idempotent.
func (d *Decoder) Reset() {
	d.fb.reset()
	d.pal = newPalette()
	d.vp.reset()
	d.sampler.reset()

	d.lastWasMemoryPreset = false
	d.changedSinceSample = false
	d.lastUpdateMs = 0
	d.tempo = defaultTempo

	d.data = nil
	d.totalPackets = 0
	d.opened = false
	d.processed = false
	d.isOpen = false

	d.trace("reset")
}

// Open resets the decoder and stores data for a subsequent Process call.
// It fails with ErrEmptyInput if data is empty, leaving the decoder in
// its reset state.
func (d *Decoder) Open(data []byte) error {
	d.Reset()
	if len(data) == 0 {
		d.trace("open failed: empty input")
		return ErrEmptyInput
	}
	d.data = data
	d.totalPackets = packetCount(data)
	d.sampler.reserve(d.totalPackets)
	d.opened = true
	d.trace("opened", "bytes", len(data), "packets", d.totalPackets)
	return nil
}

// Process decodes the bytes stored by Open into the frame sequence. It
// returns false if Open never succeeded; calling Process a second time
// without an intervening Reset is a no-op that returns the first call's
// result, per spec.md §7 DoubleProcess.
func (d *Decoder) Process() bool {
	if d.processed {
		return d.isOpen
	}
	d.processed = true
	if !d.opened {
		return false
	}

	reader := newPacketReader(d.data)
	pos := 0
	frameIdx := 0
	for {
		pkt, ok := reader.next()
		if !ok {
			break
		}
		if pkt.isCDG() {
			if d.dispatch(pkt.instruction, pkt.data) {
				d.changedSinceSample = true
				d.lastUpdateMs = frameIdx * msPerFrame
			}
		}
		pos++
		if pos%packetsPerFrame == 0 {
			frameIdx++
			d.sampler.sample(&d.fb, &d.pal, &d.vp, frameIdx*msPerFrame, d.changedSinceSample)
			d.changedSinceSample = false
		}
	}

	d.data = nil
	d.isOpen = true
	d.trace("processed", "frames", len(d.sampler.frames))
	return true
}

// dispatch decodes and applies a single CDG instruction, returning
// whether it caused a visible change. Memory Preset repeats are
// suppressed here rather than in commands.go, since the suppression rule
// depends on dispatch history, not on this command's own payload.
func (d *Decoder) dispatch(instruction uint8, data [16]byte) bool {
	cmd := decodeCommand(instruction, data)
	isMemoryPreset := instruction&subcodeMask == instMemoryPreset

	var changed bool
	if cmd != nil {
		if mp, ok := cmd.(memoryPresetCmd); ok && d.lastWasMemoryPreset && mp.repeat != 0 {
			// repeated memory presets are idempotent after the first;
			// this is how the CDG format gets error resilience.
		} else {
			changed = cmd.apply(&d.fb, &d.pal, &d.vp)
		}
	}
	d.lastWasMemoryPreset = isMemoryPreset
	return changed
}

// FrameAt returns the frame covering wall-clock position ms, scaled by
// the current tempo. A position past the end of the decoded stream
// returns the last frame. FrameAt returns nil if Process has not yet
// produced any frames.
func (d *Decoder) FrameAt(ms int) *Frame {
	frames := d.sampler.frames
	if len(frames) == 0 {
		return nil
	}
	idx := frameIndexForMs(ms, d.tempo) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(frames) {
		idx = len(frames) - 1
	}
	return &frames[idx]
}

// CanSkipAt reports whether the frame at ms, and the frames immediately
// before and after it, are all marked as identical to their predecessor —
// a hint that a renderer can skip redrawing across that span.
func (d *Decoder) CanSkipAt(ms int) bool {
	skip := d.sampler.skip
	idx := frameIndexForMs(ms, d.tempo) - 1
	if idx < 1 || idx+1 >= len(skip) {
		return false
	}
	return skip[idx-1] && skip[idx] && skip[idx+1]
}

// Duration returns the decoded stream's length in milliseconds, defined
// as packetCount*40/12 (spec.md §6).
func (d *Decoder) Duration() int {
	return d.totalPackets * msPerFrame / packetsPerFrame
}

// LastUpdateMs returns the start, in milliseconds of stream position, of
// the 40ms frame in which the most recent visible change occurred.
func (d *Decoder) LastUpdateMs() int {
	return d.lastUpdateMs
}

// IsOpen reports whether Process has completed successfully.
func (d *Decoder) IsOpen() bool {
	return d.isOpen
}

// Tempo returns the current tempo percentage (100 = real time).
func (d *Decoder) Tempo() int {
	return d.tempo
}

// SetTempo sets the tempo percentage used by FrameAt and CanSkipAt.
// Values at or below zero are clamped to 1 (spec.md §7 TempoNonPositive).
func (d *Decoder) SetTempo(percent int) {
	d.tempo = clampTempo(percent)
}

// FrameCount returns the number of frames decoded so far.
func (d *Decoder) FrameCount() int {
	return len(d.sampler.frames)
}
