package effects

import "github.com/cbegin/sf2synth-go/internal/sf2dsp"

// This file adapts the raw ms/Hz/dB constructors above to the SF2 generator
// vocabulary the rest of the engine already speaks: time-cents for delays
// (spec §4.6's envelope/LFO delay generators, range [-12000, 5000]),
// frequency-cents for modulation rates (spec §4.7's LFO frequency
// generators, range [-16000, 4500]), and centibels for attenuation (spec
// §4.8's initialAttenuation and effect-send generators). Callers that already
// carry these units as generator/NRPN values can wire them straight through
// instead of hand-converting to ms or dB first.

// timecentsToMs converts an SF2 time-cents value (0 tc == 1 second) to
// milliseconds.
func timecentsToMs(timecents float64) float32 {
	return float32(sf2dsp.CentsToSeconds(timecents) * 1000.0)
}

// NewChorusFromGenerators builds a Chorus from the same units spec §4.6/§4.8
// generators carry: delayTimecents/depthTimecents are time-cents, rateCents
// is LFO frequency-cents, and the wet mix is 1 minus the attenuation of
// wetCentibels (0 cB == fully dry, 960 cB == nearly fully wet).
func NewChorusFromGenerators(sampleRate int, delayTimecents, feedback, depthTimecents, rateCents, wetCentibels float64) *Chorus {
	rateHz := sf2dsp.LFOCentsToFrequency(rateCents)
	wet := 1.0 - sf2dsp.CentibelsToAttenuation(wetCentibels)
	return NewChorus(sampleRate, timecentsToMs(delayTimecents), float32(feedback), timecentsToMs(depthTimecents), float32(rateHz), float32(wet))
}

// NewReverbFromGenerators builds a Reverb whose wet mix is 1 minus the
// attenuation of wetCentibels rather than a raw [0,1] mix (0 cB == fully
// dry).
func NewReverbFromGenerators(sampleRate int, roomSize, feedback, wetCentibels float64) *Reverb {
	wet := 1.0 - sf2dsp.CentibelsToAttenuation(wetCentibels)
	return NewReverb(sampleRate, float32(roomSize), float32(feedback), float32(wet))
}

// NewDelayFromGenerators builds a Delay whose time is a time-cents value
// (the same unit spec §4.6's delayVolumeEnvelope/delayModulatorLFO
// generators use) and whose wet mix is 1 minus the attenuation of
// wetCentibels (0 cB == fully dry).
func NewDelayFromGenerators(sampleRate int, delayTimecents float64, feedback, cross, wetCentibels float64) *Delay {
	wet := 1.0 - sf2dsp.CentibelsToAttenuation(wetCentibels)
	return NewDelay(sampleRate, float64(timecentsToMs(delayTimecents)), float32(feedback), float32(cross), float32(wet))
}

// NewDistortionFromGenerators builds a Distortion whose pre/post stage gains
// are expressed as centibel boosts (positive centibels boost; the sign is
// inverted from CentibelsToAttenuation's attenuate-only convention since
// distortion drive is a gain, not a loss).
func NewDistortionFromGenerators(sampleRate int, driveCentibels, makeupCentibels, lpfCutoffCents float64) *Distortion {
	preGain := 1.0 / sf2dsp.CentibelsToAttenuation(sf2dsp.Clamp(driveCentibels, 0, 960))
	postGain := 1.0 / sf2dsp.CentibelsToAttenuation(sf2dsp.Clamp(makeupCentibels, 0, 960))
	var cutoffHz float64
	if lpfCutoffCents > 0 {
		cutoffHz = sf2dsp.ClampFilterCutoff(sf2dsp.CentsToHz(lpfCutoffCents))
	}
	return NewDistortion(sampleRate, float32(preGain), float32(postGain), float32(cutoffHz))
}

// NewCompressorFromGenerators builds a Compressor whose threshold is a
// centibel attenuation from full scale (0 cB puts the threshold at full
// scale, 960 cB at -96 dB) and whose attack/release times are
// time-cents (spec §4.6's envelope-stage vocabulary). makeupCentibels is a
// makeup boost in centibels (the inverse sense from threshold: larger
// values add more gain).
func NewCompressorFromGenerators(sampleRate int, thresholdCentibels, ratio, attackTimecents, releaseTimecents, makeupCentibels float64) *Compressor {
	thresholdDB := -thresholdCentibels / 10.0
	makeupDB := makeupCentibels / 10.0
	attackMs := float64(timecentsToMs(attackTimecents))
	releaseMs := float64(timecentsToMs(releaseTimecents))
	return NewCompressor(sampleRate, float32(thresholdDB), float32(ratio), float32(attackMs), float32(releaseMs), float32(makeupDB))
}

// NewEQ3BandFromGenerators builds an EQ3Band whose band gains are centibel
// attenuations (0 cB == unity, 960 cB == silent) and whose crossover points
// are absolute-cents frequencies (spec §4.5's sample-pitch vocabulary,
// reused here since the SF2.01 spec defines no dedicated EQ generator).
func NewEQ3BandFromGenerators(sampleRate int, lowCentibels, midCentibels, highCentibels, lowFreqCents, highFreqCents float64) *EQ3Band {
	low := sf2dsp.CentibelsToAttenuation(lowCentibels)
	mid := sf2dsp.CentibelsToAttenuation(midCentibels)
	high := sf2dsp.CentibelsToAttenuation(highCentibels)
	lowHz := sf2dsp.CentsToHz(lowFreqCents)
	highHz := sf2dsp.CentsToHz(highFreqCents)
	return NewEQ3Band(sampleRate, float32(low), float32(mid), float32(high), float32(lowHz), float32(highHz))
}

// SetGainCentibels sets band's gain from a centibel attenuation rather than
// a raw linear factor.
func (eq *EQ5Band) SetGainCentibels(band int, centibels float64) {
	eq.SetGain(band, float32(sf2dsp.CentibelsToAttenuation(centibels)))
}
