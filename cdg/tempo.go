package cdg

import "math"

// defaultTempo is real-time playback: 100%.
const defaultTempo = 100

// clampTempo enforces spec.md §7 TempoNonPositive: values at or below
// zero would freeze time (or run it backwards) in frameIndexForMs, so
// they're clamped up to the smallest usable value instead of rejected.
func clampTempo(percent int) int {
	if percent <= 0 {
		return 1
	}
	return percent
}

// frameIndexForMs converts a wall-clock position into a frame index,
// scaling by tempoPercent uniformly (spec.md §4.12 and §9 — applied the
// same way for both FrameAt and CanSkipAt, resolving the inconsistency
// the original decoder had between the two).
func frameIndexForMs(ms, tempoPercent int) int {
	scaled := float64(ms) * float64(tempoPercent) / 100
	return int(math.Ceil(scaled / msPerFrame))
}
