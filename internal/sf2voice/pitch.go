package sf2voice

import (
	"github.com/cbegin/sf2synth-go/internal/sf2dsp"
	"github.com/cbegin/sf2synth-go/internal/sf2entity"
	"github.com/cbegin/sf2synth-go/internal/sf2zone"
)

// Pitch resolves a voice's root key/pitch/frequency once at note-on and
// exposes the per-sample phase-increment formula the sample generator
// needs, per spec §4.7. Root resolution happens once because it depends
// only on the sample header and the (rarely-modulated) overridingRootKey
// generator; the pitch-bend, LFO, and envelope contributions are summed by
// the caller every sample and passed in as cents.
type Pitch struct {
	rootFrequency float64 // denominator Hz, at the engine's output sample rate
	scaleTuning   float64
	pitchBase     float64 // cents: scaleTuning*(key-rootPitch/100) + rootPitch
}

// ConfigurePitch resolves the root key/pitch/frequency for a newly
// configured voice. engineSampleRate is the host's output sample rate;
// sample.SampleRate is the rate the PCM data was recorded at, and the two
// may differ (grounded in Render/Voice/Sample/Pitch.cpp's treatment of
// rootFrequency as already including the sample-rate ratio).
func ConfigurePitch(state *State, sample *sf2zone.SampleSource, engineSampleRate float64) Pitch {
	rootKey := float64(sample.OriginalMIDIKey)
	if v := state.UnmodulatedGenerator(sf2entity.OverridingRootKey); v >= 0 && v <= 127 {
		rootKey = v
	}
	if rootKey < 0 || rootKey > 127 {
		rootKey = 60
	}

	rootPitch := rootKey*100.0 - float64(sample.PitchCorrection)
	rootFrequency := sf2dsp.CentsToHz(rootPitch) * engineSampleRate / sample.SampleRate

	scaleTuning := state.Modulated(sf2entity.ScaleTuning)
	if sample.IsUnpitched() {
		scaleTuning = 0
	}

	key := float64(state.Key())
	pitchBase := scaleTuning*(key-rootPitch/100.0) + rootPitch

	return Pitch{rootFrequency: rootFrequency, scaleTuning: scaleTuning, pitchBase: pitchBase}
}

// PhaseIncrement returns the per-sample advance into the source sample's
// data, given this tick's pitch-bend offset (cents, from coarse/fine tune
// and the pitch wheel default modulator) and modulation contribution
// (cents, from the modulator LFO, vibrato LFO, and modulator envelope
// pitch generators, already scaled by their respective depths).
func (p Pitch) PhaseIncrement(pitchOffsetCents, modulationCents float64) float64 {
	cents := p.pitchBase + pitchOffsetCents + modulationCents
	return sf2dsp.CentsToHz(cents) / p.rootFrequency
}
