package sf2

import "github.com/cbegin/sf2synth-go/internal/effects"

// EffectChain applies a sequence of effects in order. Used with
// SetSendEffects to post-process the chorus/reverb buses spec.md's Mixer
// only accumulates (spec §4.10), and with SetMasterEffects as a post-mix
// insert chain.
type EffectChain = effects.Chain

// NewEffectChain builds a chain from the given effects, applied in order.
func NewEffectChain(effectors ...effects.Effector) *EffectChain {
	return effects.NewChain(effectors...)
}

// NewChorus builds a chorus/flanger effect from SF2 generator units:
// delayTimecents/depthTimecents are time-cents (the same unit spec §4.6's
// delayModulatorLFO/delayVibratoLFO generators use), rateCents is LFO
// frequency-cents (spec §4.7's frequencyModulatorLFO/frequencyVibratoLFO
// range), feedback is 0..1, and the wet mix is 1 minus the attenuation of
// wetCentibels (spec §4.8's initialAttenuation scale; 0 cB is fully dry,
// 960 cB nearly fully wet).
func NewChorus(sampleRate int, delayTimecents, feedback, depthTimecents, rateCents, wetCentibels float64) effects.Effector {
	return effects.NewChorusFromGenerators(sampleRate, delayTimecents, feedback, depthTimecents, rateCents, wetCentibels)
}

// NewReverb builds a Schroeder-style reverb: roomSize and feedback are 0..1
// and control delay length/decay time, and the wet mix is 1 minus the
// attenuation of wetCentibels on spec §4.8's centibel scale (0 cB is fully
// dry).
func NewReverb(sampleRate int, roomSize, feedback, wetCentibels float64) effects.Effector {
	return effects.NewReverbFromGenerators(sampleRate, roomSize, feedback, wetCentibels)
}

// NewDelay builds an echo/delay effect: delayTimecents is the delay time on
// spec §4.6's time-cents scale, feedback and cross are 0..1, and the wet
// mix is 1 minus the attenuation of wetCentibels on spec §4.8's centibel
// scale (0 cB is fully dry).
func NewDelay(sampleRate int, delayTimecents, feedback, cross, wetCentibels float64) effects.Effector {
	return effects.NewDelayFromGenerators(sampleRate, delayTimecents, feedback, cross, wetCentibels)
}

// NewDistortion builds a waveshaping distortion stage: driveCentibels and
// makeupCentibels are gain amounts on spec §4.8's centibel scale (applied as
// boosts, the inverse of that scale's usual attenuate-only sense), and
// lpfCutoffCents is an absolute-cents frequency (spec §4.5's sample-pitch
// vocabulary) for the post-distortion lowpass, or 0 to disable it.
func NewDistortion(sampleRate int, driveCentibels, makeupCentibels, lpfCutoffCents float64) effects.Effector {
	return effects.NewDistortionFromGenerators(sampleRate, driveCentibels, makeupCentibels, lpfCutoffCents)
}

// NewCompressor builds a dynamics compressor: thresholdCentibels is an
// attenuation from full scale on spec §4.8's centibel scale, makeupCentibels
// is a makeup boost in centibels (larger adds more gain), ratio is the
// compression ratio (e.g. 4 for 4:1), and attackTimecents/releaseTimecents
// are on spec §4.6's time-cents scale.
func NewCompressor(sampleRate int, thresholdCentibels, ratio, attackTimecents, releaseTimecents, makeupCentibels float64) effects.Effector {
	return effects.NewCompressorFromGenerators(sampleRate, thresholdCentibels, ratio, attackTimecents, releaseTimecents, makeupCentibels)
}

// NewEQ3Band builds a 3-band EQ: band gains are centibel attenuations (spec
// §4.8's scale) and the crossover points are absolute-cents frequencies
// (spec §4.5's sample-pitch vocabulary).
func NewEQ3Band(sampleRate int, lowCentibels, midCentibels, highCentibels, lowFreqCents, highFreqCents float64) effects.Effector {
	return effects.NewEQ3BandFromGenerators(sampleRate, lowCentibels, midCentibels, highCentibels, lowFreqCents, highFreqCents)
}

// EQ5Band is a 5-band EQ with runtime-adjustable, lock-free-readable gains,
// settable either as a raw linear factor (SetGain) or a spec §4.8 centibel
// attenuation (SetGainCentibels).
type EQ5Band = effects.EQ5Band

// NewEQ5Band builds a 5-band EQ with all gains at unity.
func NewEQ5Band(sampleRate int) *EQ5Band {
	return effects.NewEQ5Band(sampleRate)
}
