// Package sf2dsp holds the scalar math and precomputed lookup tables shared
// by the rendering pipeline: cents/centibel conversions, pan and attenuation
// tables, and cubic interpolation weights.
package sf2dsp

import "math"

const (
	// CentsPerOctave is the number of cents in one octave.
	CentsPerOctave = 1200.0
	// CentibelsPerDecade is the number of centibels in one decade of gain.
	CentibelsPerDecade = 200.0
	// NoiseFloor is the absolute gain below which a released voice is
	// considered inaudible and can be retired.
	NoiseFloor = 2.0e-7
	// MaximumAttenuationCentiBels is the largest attenuation the SF2 spec
	// defines (960 cB == -96 dB).
	MaximumAttenuationCentiBels = 960.0
	// LowestNoteFrequency is 440 * 2^((-69)/12), the frequency of C-1, used
	// as the zero point for cents-to-frequency conversions.
	LowestNoteFrequency = 8.17579891564370697665253828745335
)

// Clamp restricts value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// CentsToPower2 converts a cents value into a power of 2 (1200 cents/octave).
func CentsToPower2(value float64) float64 {
	return math.Exp2(value / CentsPerOctave)
}

// CentsToSeconds converts a time-cents value into seconds.
func CentsToSeconds(value float64) float64 {
	return CentsToPower2(value)
}

// LFOCentsToFrequency converts a frequency-cents value into Hz, clamped to
// the SF2-legal LFO frequency range before conversion.
func LFOCentsToFrequency(value float64) float64 {
	return LowestNoteFrequency * CentsToPower2(Clamp(value, -16000.0, 4500.0))
}

// CentibelsToResonance converts centibels into a linear Q value for use in
// low-pass filter coefficient calculations, per SF2.01 §8.1.3.
func CentibelsToResonance(centibels float64) float64 {
	return math.Pow(10.0, (Clamp(centibels, 0.0, 960.0)-30.1)/200.0)
}

// ClampFilterCutoff restricts a filter cutoff frequency (Hz) to the legal
// range.
func ClampFilterCutoff(value float64) float64 {
	return Clamp(value, 1500.0, 20000.0)
}

// TenthPercentageToNormalized converts an integer expressed in tenths of a
// percent ([0, 1000]) into a normalized [0, 1] value.
func TenthPercentageToNormalized(value float64) float64 {
	return Clamp(value/1000.0, 0.0, 1.0)
}

// UnipolarToBipolar maps [0, 1] to [-1, 1].
func UnipolarToBipolar(value float64) float64 { return 2.0*value - 1.0 }

// BipolarToUnipolar maps [-1, 1] to [0, 1].
func BipolarToUnipolar(value float64) float64 { return 0.5*value + 0.5 }

// UnipolarModulate maps a clamped [0, 1] value linearly into [lo, hi].
func UnipolarModulate(value, lo, hi float64) float64 {
	return Clamp(value, 0.0, 1.0)*(hi-lo) + lo
}

// BipolarModulate maps a clamped [-1, 1] value linearly into [lo, hi].
func BipolarModulate(value, lo, hi float64) float64 {
	mid := (hi - lo) * 0.5
	return Clamp(value, -1.0, 1.0)*mid + mid + lo
}

// centsPartialTableSize mirrors SF2Lib's CentsPartialLookup table, covering
// the 1200 cents within one octave.
const centsPartialTableSize = 1200

var centsPartialTable [centsPartialTableSize]float64

func init() {
	for i := range centsPartialTable {
		centsPartialTable[i] = LowestNoteFrequency * math.Exp2(float64(i)/CentsPerOctave)
	}
}

// CentsToHz converts an absolute cents value (0 cents == C-1, 8.17579...Hz)
// into a frequency in Hz using a table lookup for the fractional-octave
// part: 2^(cents/1200) is split into a bit-shift for the whole-octave part
// and a table lookup (one entry per cent within an octave) for the
// remainder. Negative values return 1.0, matching the original's
// degenerate-input behavior.
func CentsToHz(value float64) float64 {
	if value < 0.0 {
		return 1.0
	}
	cents := int(value)
	whole := cents / 1200
	partial := cents % 1200
	return float64(uint64(1)<<uint(whole)) * centsPartialTable[partial]
}

// HzToCents is the inverse of CentsToHz, used only by round-trip tests; the
// render path only ever goes cents->Hz.
func HzToCents(hz float64) float64 {
	return CentsPerOctave * math.Log2(hz/LowestNoteFrequency)
}

// attenuationTableSize mirrors SF2Lib's AttenuationLookup, covering
// centibels 0 through 1440 inclusive.
const attenuationTableSize = 1441

var attenuationTable [attenuationTableSize]float64

func init() {
	// 10 centibels == 1 dB; a drop of 200 centibels (20dB) is a factor of 10
	// in amplitude, so gain = 10^(-cb/200). This satisfies cb_to_atten(0)==1,
	// cb_to_atten(60)==0.501... (~6dB, half amplitude), and cb_to_atten(1440)
	// collapsing to a value below NoiseFloor (effectively silent).
	for i := range attenuationTable {
		attenuationTable[i] = math.Pow(10.0, -float64(i)/200.0)
	}
}

// centibelsToAttenuationRaw looks up the precomputed gain for whole
// centibels, used internally by CentibelsToAttenuation.
func centibelsToAttenuationRaw(index int) float64 {
	if index < 0 {
		index = 0
	}
	if index >= attenuationTableSize {
		index = attenuationTableSize - 1
	}
	return attenuationTable[index]
}

// CentibelsToAttenuation converts centibels [0, 1440] into a linear
// attenuation gain [1.0, 0.0], interpolating between adjacent whole-centibel
// table entries.
func CentibelsToAttenuation(centibels float64) float64 {
	centibels = Clamp(centibels, 0.0, 1440.0)
	index1 := int(centibels)
	partial := centibels - float64(index1)
	if partial < 1e-9 {
		return centibelsToAttenuationRaw(index1)
	}
	index2 := index1 + 1
	if index2 > 1440 {
		index2 = 1440
	}
	return Linear(partial, centibelsToAttenuationRaw(index1), centibelsToAttenuationRaw(index2))
}

// Linear interpolates between x0 (partial==0) and x1 (partial==1).
func Linear(partial, x0, x1 float64) float64 {
	return partial*(x1-x0) + x0
}

// panTableSize is the number of entries in the 1001-entry sine-based pan
// table spec §4.9 calls for, spanning pan values [-500, 500] inclusive.
const panTableSize = 1001

var panLeftTable, panRightTable [panTableSize]float64

func init() {
	// pan in [-500, 500] maps to an angle in [0, pi/2]; equal-power panning
	// via sin/cos gives left=1,right=0 at -500, left=right=0.70711 at 0, and
	// left=0,right=1 at +500, matching spec §8 scenario 2 exactly.
	for i := 0; i < panTableSize; i++ {
		angle := (float64(i) / float64(panTableSize-1)) * (math.Pi / 2.0)
		panLeftTable[i] = math.Cos(angle)
		panRightTable[i] = math.Sin(angle)
	}
}

// PanLookup computes the (left, right) gain pair for a pan value in
// [-500, 500], where -500 is full left and +500 is full right.
func PanLookup(pan float64) (left, right float64) {
	index := int(math.Round(Clamp(pan, -500.0, 500.0))) + 500
	if index < 0 {
		index = 0
	}
	if index >= panTableSize {
		index = panTableSize - 1
	}
	return panLeftTable[index], panRightTable[index]
}

// Cubic4thOrderTableSize is the number of precomputed fractional-position
// entries for the 4th-order (cubic Hermite) interpolator.
const Cubic4thOrderTableSize = 1024

// cubicWeights holds the four interpolation weights per table index.
var cubicWeights [Cubic4thOrderTableSize][4]float64

func init() {
	for i := 0; i < Cubic4thOrderTableSize; i++ {
		x := float64(i) / float64(Cubic4thOrderTableSize)
		x2 := x * x
		x3 := x2 * x
		cubicWeights[i][0] = -0.5*x3 + x2 - 0.5*x
		cubicWeights[i][1] = 1.5*x3 - 2.5*x2 + 1.0
		cubicWeights[i][2] = -1.5*x3 + 2.0*x2 + 0.5*x
		cubicWeights[i][3] = 0.5*x3 - 0.5*x2
	}
}

// CubicWeights returns the four Hermite interpolation weights for a
// fractional position in [0, 1).
func CubicWeights(partial float64) (w0, w1, w2, w3 float64) {
	index := int(partial * Cubic4thOrderTableSize)
	if index >= Cubic4thOrderTableSize {
		index = Cubic4thOrderTableSize - 1
	}
	if index < 0 {
		index = 0
	}
	w := cubicWeights[index]
	return w[0], w[1], w[2], w[3]
}

// Cubic4thOrder interpolates a value from four neighboring samples using the
// precomputed Hermite weight table.
func Cubic4thOrder(partial float64, x0, x1, x2, x3 float64) float64 {
	w0, w1, w2, w3 := CubicWeights(partial)
	return x0*w0 + x1*w1 + x2*w2 + x3*w3
}
