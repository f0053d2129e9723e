// Package sf2filter implements the per-voice low-pass filter.
package sf2filter

import (
	"math"

	"github.com/cbegin/sf2synth-go/internal/sf2dsp"
)

// LowPass is a second-order (biquad) low-pass filter in direct form,
// recomputing its coefficients only when the requested cutoff or
// resonance changes from the previous sample (matching
// Render/LowPassFilter.hpp's optimization). No third-party biquad library
// appears anywhere in the example pack, so the coefficients are the
// standard RBJ (Robert Bristow-Johnson) cookbook lowpass-biquad formulas,
// hand-derived against spec §4.8's cutoff/Q inputs — see DESIGN.md.
type LowPass struct {
	sampleRate float64

	lastCutoffCents    float64
	lastResonanceCB    float64
	haveCoefficients   bool

	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

// New constructs a low-pass filter for the given sample rate.
func New(sampleRate float64) *LowPass {
	return &LowPass{sampleRate: sampleRate}
}

// SetSampleRate updates the sample rate, forcing coefficient recomputation
// on the next Transform call.
func (f *LowPass) SetSampleRate(sampleRate float64) {
	f.sampleRate = sampleRate
	f.haveCoefficients = false
}

// Reset clears the filter's history (used when a voice is reconfigured).
func (f *LowPass) Reset() {
	f.x1, f.x2, f.y1, f.y2 = 0, 0, 0, 0
	f.haveCoefficients = false
}

func (f *LowPass) recompute(cutoffCents, resonanceCB float64) {
	cutoffHz := sf2dsp.CentsToHz(cutoffCents)
	if cutoffHz > 0.45*f.sampleRate {
		cutoffHz = 0.45 * f.sampleRate
	}
	if cutoffHz < 5 {
		cutoffHz = 5
	}
	q := sf2dsp.CentibelsToResonance(resonanceCB)
	if q < 0.001 {
		q = 0.001
	}

	w0 := 2.0 * math.Pi * cutoffHz / f.sampleRate
	cosW0 := math.Cos(w0)
	sinW0 := math.Sin(w0)
	alpha := sinW0 / (2.0 * q)

	b0 := (1 - cosW0) / 2.0
	b1 := 1 - cosW0
	b2 := (1 - cosW0) / 2.0
	a0 := 1 + alpha
	a1 := -2.0 * cosW0
	a2 := 1 - alpha

	f.b0, f.b1, f.b2 = b0/a0, b1/a0, b2/a0
	f.a1, f.a2 = a1/a0, a2/a0

	f.lastCutoffCents = cutoffCents
	f.lastResonanceCB = resonanceCB
	f.haveCoefficients = true
}

// Transform applies the filter to one sample, recomputing coefficients
// first if the cutoff (cents) or resonance (centibels) requested this tick
// differ from last tick's.
func (f *LowPass) Transform(cutoffCents, resonanceCB float64, sample float64) float64 {
	if !f.haveCoefficients || cutoffCents != f.lastCutoffCents || resonanceCB != f.lastResonanceCB {
		f.recompute(cutoffCents, resonanceCB)
	}
	y := f.b0*sample + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, sample
	f.y2, f.y1 = f.y1, y
	return y
}
