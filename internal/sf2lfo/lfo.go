// Package sf2lfo implements the triangular bipolar low-frequency oscillator
// shared by the modulator and vibrato LFOs.
package sf2lfo

// Kind tags which of the two SF2 LFO roles an LFO instance plays, so call
// sites can't accidentally wire a modulator-LFO value into a vibrato slot
// or vice versa (spec §9's "distinct semantic wrappers at the call site,
// not a runtime hierarchy").
type Kind int

const (
	Modulator Kind = iota
	Vibrato
)

// LFO is a triangular, bipolar oscillator with peak amplitude 1 and an
// optional startup delay. After the delay it starts at 0 and ascends.
// Restyled after the teacher's internal/lfo.LFO shape (Set/Sample-like
// surface), with SF2's triangular-only waveform and reflect-at-peak math
// from the original Render/LFO.hpp.
type LFO struct {
	kind Kind

	counter         float64
	increment       float64
	delaySampleCount int
}

// New constructs an LFO of the given kind with no frequency (it will emit
// nothing until Configure is called).
func New(kind Kind) *LFO {
	return &LFO{kind: kind}
}

// Reset restarts the oscillator from zero, clearing any phase reflection.
func (l *LFO) Reset() {
	l.counter = 0
	if l.increment < 0 {
		l.increment = -l.increment
	}
}

// Configure sets the oscillator's frequency (Hz) and startup delay
// (seconds) given the host sample rate. Per spec §4.5, the per-sample
// increment is 4*frequency/sampleRate.
func (l *LFO) Configure(sampleRate, frequencyHz, delaySeconds float64) {
	l.delaySampleCount = int(sampleRate * delaySeconds)
	l.increment = frequencyHz / sampleRate * 4.0
}

// Value returns the current value without advancing.
func (l *LFO) Value() float64 { return l.counter }

// Advance advances the oscillator by one sample, reflecting at ±1.
func (l *LFO) Advance() {
	if l.delaySampleCount > 0 {
		l.delaySampleCount--
		return
	}
	l.counter += l.increment
	if l.counter >= 1.0 {
		l.increment = -l.increment
		l.counter = 2.0 - l.counter
	} else if l.counter <= -1.0 {
		l.increment = -l.increment
		l.counter = -2.0 - l.counter
	}
}

// GetNextValue returns the current value then advances by one sample.
func (l *LFO) GetNextValue() float64 {
	v := l.counter
	l.Advance()
	return v
}
