package sf2filter

import (
	"math"
	"testing"
)

func TestLowPassAttenuatesHighFrequency(t *testing.T) {
	const sampleRate = 44100.0
	f := New(sampleRate)

	const freq = 18000.0
	var out, peak float64
	for i := 0; i < 2000; i++ {
		x := math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
		out = f.Transform(6000, 0, x) // low cutoff well below freq
		if i > 1000 && math.Abs(out) > peak {
			peak = math.Abs(out)
		}
	}
	if peak > 0.9 {
		t.Fatalf("expected high frequency attenuated, peak=%v", peak)
	}
}

func TestLowPassRecomputesOnlyOnChange(t *testing.T) {
	f := New(44100)
	f.Transform(6000, 0, 0.5)
	if !f.haveCoefficients {
		t.Fatal("expected coefficients computed after first sample")
	}
	cutoff, resonance := f.lastCutoffCents, f.lastResonanceCB
	f.Transform(6000, 0, 0.25)
	if f.lastCutoffCents != cutoff || f.lastResonanceCB != resonance {
		t.Fatal("coefficients should not change when inputs are unchanged")
	}
}
