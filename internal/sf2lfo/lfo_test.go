package sf2lfo

import "testing"

func TestLFOStaysBipolar(t *testing.T) {
	l := New(Modulator)
	l.Configure(44100, 5.0, 0)
	for i := 0; i < 44100; i++ {
		v := l.GetNextValue()
		if v < -1.0 || v > 1.0 {
			t.Fatalf("value out of range at tick %d: %v", i, v)
		}
	}
}

func TestLFODelayHoldsZero(t *testing.T) {
	l := New(Vibrato)
	l.Configure(1000, 1.0, 0.01) // 10 sample delay
	for i := 0; i < 10; i++ {
		if v := l.GetNextValue(); v != 0 {
			t.Fatalf("expected 0 during delay at tick %d, got %v", i, v)
		}
	}
	// After the delay the oscillator starts at 0 and then ascends.
	if v0 := l.GetNextValue(); v0 != 0 {
		t.Fatalf("expected the first value after the delay to be 0, got %v", v0)
	}
	v1 := l.GetNextValue()
	if v1 <= 0 {
		t.Fatalf("expected ascent after delay, got %v", v1)
	}
}
