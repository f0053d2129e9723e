package sf2zone

import "github.com/cbegin/sf2synth-go/internal/sf2entity"

// Bounds is the per-voice resolved [startPos, startLoopPos, endLoopPos,
// endPos] window into a sample's storage, derived from the sample header
// plus any address-offset generators in the voice's effective state.
type Bounds struct {
	StartPos, StartLoopPos, EndLoopPos, EndPos int
}

// GeneratorReader supplies the unmodulated (no NRPN/modulator contribution)
// generator values Bounds needs; the voice state type implements this.
type GeneratorReader interface {
	UnmodulatedGenerator(idx sf2entity.Index) float64
}

// MakeBounds resolves a voice's sample bounds from the sample header and
// the address-offset generators, clamping to the sample's legal index
// range. Mirrors Render/Voice/Sample/Bounds.cpp.
func MakeBounds(sample *SampleSource, state GeneratorReader) Bounds {
	clampPos := func(v int) int {
		if v < sample.Start {
			return sample.Start
		}
		if v > sample.End {
			return sample.End
		}
		return v
	}

	offset := func(fine, coarse sf2entity.Index) int {
		return int(state.UnmodulatedGenerator(fine)) + int(state.UnmodulatedGenerator(coarse))*32768
	}

	b := Bounds{
		StartPos:     clampPos(sample.Start + offset(sf2entity.StartAddressOffset, sf2entity.StartAddressCoarseOffset)),
		StartLoopPos: clampPos(sample.StartLoop + offset(sf2entity.StartLoopAddressOffset, sf2entity.StartLoopAddressCoarseOffset)),
		EndLoopPos:   clampPos(sample.EndLoop + offset(sf2entity.EndLoopAddressOffset, sf2entity.EndLoopAddressCoarseOffset)),
		EndPos:       clampPos(sample.End + offset(sf2entity.EndAddressOffset, sf2entity.EndAddressCoarseOffset)),
	}
	return b
}

// HasLoop reports whether this bounds window describes a usable loop
// region, per Render/Voice/Sample/Bounds.cpp's hasLoop().
func (b Bounds) HasLoop() bool {
	return b.StartLoopPos > b.StartPos && b.StartLoopPos < b.EndLoopPos && b.EndLoopPos <= b.EndPos
}
