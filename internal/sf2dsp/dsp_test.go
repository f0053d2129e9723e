package sf2dsp

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCentsToHz(t *testing.T) {
	cases := []struct {
		name  string
		cents float64
		want  float64
		tol   float64
	}{
		{"zero", 0, 8.17579891564370697665253828745335, 1e-3},
		{"a440", 6900, 440.0, 1e-3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CentsToHz(c.cents)
			if !almostEqual(got, c.want, c.tol) {
				t.Fatalf("CentsToHz(%v) = %v, want %v", c.cents, got, c.want)
			}
		})
	}
}

func TestCentsHzRoundTrip(t *testing.T) {
	for _, hz := range []float64{8.176, 440.0, 1000.0, 20000.0} {
		cents := HzToCents(hz)
		got := CentsToHz(cents)
		if !almostEqual(got, hz, hz*0.0006) { // within ~1 cent relative
			t.Fatalf("round trip hz=%v cents=%v got=%v", hz, cents, got)
		}
	}
}

func TestBipolarUnipolarRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		got := BipolarToUnipolar(UnipolarToBipolar(x))
		if !almostEqual(got, x, 1e-9) {
			t.Fatalf("round trip x=%v got=%v", x, got)
		}
	}
}

func TestPanLookup(t *testing.T) {
	cases := []struct {
		pan        float64
		left, right float64
	}{
		{0, 0.70711, 0.70711},
		{-500, 1.0, 0.0},
		{500, 0.0, 1.0},
	}
	for _, c := range cases {
		l, r := PanLookup(c.pan)
		if !almostEqual(l, c.left, 1e-4) || !almostEqual(r, c.right, 1e-4) {
			t.Fatalf("PanLookup(%v) = (%v, %v), want (%v, %v)", c.pan, l, r, c.left, c.right)
		}
	}
}

func TestCentibelsToAttenuation(t *testing.T) {
	cases := []struct {
		cb   float64
		want float64
		tol  float64
	}{
		{0, 1.0, 1e-9},
		{60, 0.501187, 1e-6}, // 10^(-60/200), the nearest 6dB half-amplitude point
		{1440, 0.0, 1e-6},
	}
	for _, c := range cases {
		got := CentibelsToAttenuation(c.cb)
		if !almostEqual(got, c.want, c.tol) {
			t.Fatalf("CentibelsToAttenuation(%v) = %v, want %v", c.cb, got, c.want)
		}
	}
}

func TestCubicWeights(t *testing.T) {
	w0, w1, w2, w3 := CubicWeights(0)
	if !almostEqual(w0, 0, 1e-6) || !almostEqual(w1, 1, 1e-6) || !almostEqual(w2, 0, 1e-6) || !almostEqual(w3, 0, 1e-6) {
		t.Fatalf("weights at 0 = (%v,%v,%v,%v)", w0, w1, w2, w3)
	}
	w0, w1, w2, w3 = CubicWeights(0.5)
	want := 1.0 / 16.0
	if !almostEqual(w0, -want, 1e-6) || !almostEqual(w1, 9*want, 1e-6) ||
		!almostEqual(w2, 9*want, 1e-6) || !almostEqual(w3, -want, 1e-6) {
		t.Fatalf("weights at 0.5 = (%v,%v,%v,%v)", w0, w1, w2, w3)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Fatal("unclamped value changed")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Fatal("low clamp failed")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Fatal("high clamp failed")
	}
}
