package sf2envelope

import "testing"

func TestEnvelopeStaysInZeroToOne(t *testing.T) {
	var g Generator
	g.Configure(Params{
		SampleRate: 44100, Key: 60,
		DelayTimecents: -12000, AttackTimecents: -2000, HoldTimecents: -5000,
		DecayTimecents: -2000, SustainTenths: 300, ReleaseTimecents: -2000,
	})
	g.Gate(true)
	for i := 0; i < 20000; i++ {
		v := g.GetNextValue()
		if v < 0 || v > 1 {
			t.Fatalf("value out of range at tick %d: %v", i, v)
		}
	}
}

func TestEnvelopeReleaseIsMonotonicNonIncreasing(t *testing.T) {
	var g Generator
	g.Configure(Params{
		SampleRate: 44100, Key: 60,
		DelayTimecents: -12000, AttackTimecents: -12000, HoldTimecents: -12000,
		DecayTimecents: -12000, SustainTenths: 0, ReleaseTimecents: -1000,
	})
	g.Gate(true)
	for i := 0; i < 200; i++ {
		g.GetNextValue()
	}
	g.Gate(false)
	prev := g.Value()
	for i := 0; i < 30000 && g.IsActive(); i++ { // -1000 tc is ~24750 samples at 44.1kHz
		v := g.GetNextValue()
		if v > prev {
			t.Fatalf("release value increased: prev=%v now=%v at tick %d", prev, v, i)
		}
		prev = v
	}
	if g.IsActive() {
		t.Fatal("expected envelope to idle out")
	}
}

func TestEnvelopeZeroLengthStages(t *testing.T) {
	var g Generator
	g.Configure(Params{
		SampleRate: 1000, Key: 60,
		DelayTimecents: -12000, AttackTimecents: -12000, HoldTimecents: -12000,
		DecayTimecents: -12000, SustainTenths: 500, ReleaseTimecents: -12000,
	})
	g.Gate(true)
	// At 1kHz every -12000 tc (~1ms) stage rounds to zero samples, so a
	// handful of ticks should reach sustain without panicking or going out
	// of range.
	for i := 0; i < 10; i++ {
		v := g.GetNextValue()
		if v < 0 || v > 1 {
			t.Fatalf("tick %d value %v out of range", i, v)
		}
	}
	if g.Stage() != StageSustain {
		t.Fatalf("expected sustain stage quickly, got %v", g.Stage())
	}
}

func TestEnvelopeGateFalseJumpsToRelease(t *testing.T) {
	var g Generator
	g.Configure(Params{
		SampleRate: 44100, Key: 60,
		DelayTimecents: 5000, AttackTimecents: 5000, HoldTimecents: 5000,
		DecayTimecents: 5000, SustainTenths: 300, ReleaseTimecents: -2000,
	})
	g.Gate(true)
	g.GetNextValue() // still in delay
	if g.Stage() != StageDelay {
		t.Fatalf("expected delay stage, got %v", g.Stage())
	}
	g.Gate(false)
	if g.Stage() != StageRelease {
		t.Fatalf("expected immediate jump to release, got %v", g.Stage())
	}
}
