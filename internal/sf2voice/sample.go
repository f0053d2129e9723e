package sf2voice

import (
	"github.com/cbegin/sf2synth-go/internal/sf2dsp"
	"github.com/cbegin/sf2synth-go/internal/sf2zone"
)

// LoopMode mirrors the SF2.01 sampleModes generator's three meaningful
// values.
type LoopMode int

const (
	LoopNone LoopMode = iota
	LoopActiveEnvelope
	LoopDuringKeyPress
)

// LoopModeFrom decodes a raw sampleModes generator value (0-3; 2 and 0 are
// both "no loop" per SF2.01 §8.1.3).
func LoopModeFrom(raw int) LoopMode {
	switch raw {
	case 1:
		return LoopActiveEnvelope
	case 3:
		return LoopDuringKeyPress
	default:
		return LoopNone
	}
}

// Interpolator selects the resampling algorithm the sample generator uses.
type Interpolator int

const (
	InterpolateLinear Interpolator = iota
	InterpolateCubic4thOrder
)

// SampleGenerator walks a SampleSource at a caller-supplied phase increment,
// producing one interpolated value per call and handling loop wraparound
// per spec §4.6. Grounded in Render/Voice/Sample/Generator.cpp.
type SampleGenerator struct {
	sample       *sf2zone.SampleSource
	bounds       sf2zone.Bounds
	loopMode     LoopMode
	interpolator Interpolator

	phaseIndex int
	phaseFrac  float64

	looped bool
	done   bool
}

// NewSampleGenerator constructs a generator positioned at the start of its
// bounds window.
func NewSampleGenerator(sample *sf2zone.SampleSource, bounds sf2zone.Bounds, loopMode LoopMode, interpolator Interpolator) *SampleGenerator {
	return &SampleGenerator{
		sample: sample, bounds: bounds, loopMode: loopMode, interpolator: interpolator,
		phaseIndex: bounds.StartPos,
	}
}

// HasLooped reports whether this generator has wrapped around its loop
// region at least once; the voice render cycle uses this to widen the
// release noise floor once a sustain-style looped sample has gone quiet.
func (g *SampleGenerator) HasLooped() bool { return g.looped }

// IsDone reports whether the generator has walked past the end of its
// bounds window and will emit no further nonzero samples.
func (g *SampleGenerator) IsDone() bool { return g.done }

func (g *SampleGenerator) at(i int) float32 {
	if i < 0 || i >= len(g.sample.Samples) {
		return 0
	}
	return g.sample.Samples[i]
}

func (g *SampleGenerator) loopAllowed(volumeEnvelopeActive, keyDown bool) bool {
	if !g.bounds.HasLoop() {
		return false
	}
	switch g.loopMode {
	case LoopActiveEnvelope:
		return volumeEnvelopeActive
	case LoopDuringKeyPress:
		return keyDown
	default:
		return false
	}
}

// Next produces the next interpolated sample and advances the phase by
// increment (a fractional number of source-sample steps). volumeEnvelopeActive
// and keyDown gate whether looping is currently permitted, per the three
// sampleModes semantics (spec §4.6).
func (g *SampleGenerator) Next(increment float64, volumeEnvelopeActive, keyDown bool) float32 {
	if g.done {
		return 0
	}

	loop := g.loopAllowed(volumeEnvelopeActive, keyDown)
	wrap := func(i int) int {
		if loop && i >= g.bounds.EndLoopPos {
			return g.bounds.StartLoopPos + (i - g.bounds.EndLoopPos)
		}
		return i
	}

	x1idx := g.phaseIndex
	x2idx := wrap(g.phaseIndex + 1)
	x3idx := wrap(g.phaseIndex + 2)

	var out float64
	switch g.interpolator {
	case InterpolateLinear:
		out = sf2dsp.Linear(g.phaseFrac, float64(g.at(x1idx)), float64(g.at(x2idx)))
	default:
		// x[n-1] is substituted with 0 at the very first sample, per spec
		// §4.6's boundary rule.
		var x0 float64
		if x1idx > 0 {
			x0 = float64(g.at(x1idx - 1))
		}
		out = sf2dsp.Cubic4thOrder(g.phaseFrac, x0, float64(g.at(x1idx)), float64(g.at(x2idx)), float64(g.at(x3idx)))
	}

	g.phaseFrac += increment
	step := int(g.phaseFrac)
	g.phaseFrac -= float64(step)
	g.phaseIndex += step

	if loop && g.phaseIndex >= g.bounds.EndLoopPos {
		g.phaseIndex -= g.bounds.EndLoopPos - g.bounds.StartLoopPos
		g.looped = true
	} else if g.phaseIndex >= g.bounds.EndPos {
		g.done = true
	}

	return float32(out)
}
