package sf2voice

import (
	"testing"

	"github.com/cbegin/sf2synth-go/internal/sf2entity"
	"github.com/cbegin/sf2synth-go/internal/sf2midi"
)

func TestStateSetAndAdjustGenerator(t *testing.T) {
	var s State
	s.Reset(sf2midi.NewChannelState(), 60, 100)

	s.SetGeneratorBase(sf2entity.InitialFilterCutoff, sf2entity.AmountOf(6000))
	s.AddGeneratorAdjustment(sf2entity.InitialFilterCutoff, sf2entity.AmountOf(500))

	got := s.UnmodulatedGenerator(sf2entity.InitialFilterCutoff)
	if got != 6500 {
		t.Fatalf("expected 6500, got %v", got)
	}
}

func TestStateGeneratorClampsToRange(t *testing.T) {
	var s State
	s.Reset(sf2midi.NewChannelState(), 60, 100)
	s.SetGeneratorBase(sf2entity.InitialFilterCutoff, sf2entity.AmountOf(20000))
	if got := s.Modulated(sf2entity.InitialFilterCutoff); got != 13500 {
		t.Fatalf("expected clamp to 13500, got %v", got)
	}
}

func TestAddModulatorDedupReplacesAmount(t *testing.T) {
	var s State
	s.Reset(sf2midi.NewChannelState(), 60, 100)
	before := s.modCount

	cfg := sf2entity.Modulator{
		Source:       sf2entity.NewCCSource(7, true, false, sf2entity.ContinuityConcave),
		AmountSource: sf2entity.NoSource,
		Amount:       500,
		Destination:  sf2entity.InitialAttenuation,
	}
	s.AddModulator(cfg)
	if s.modCount != before {
		t.Fatalf("expected dedup against default CC7 modulator, modCount grew from %d to %d", before, s.modCount)
	}
}

func TestStateKeyVelocityForceOverride(t *testing.T) {
	var s State
	s.Reset(sf2midi.NewChannelState(), 60, 100)
	if s.Key() != 60 || s.Velocity() != 100 {
		t.Fatalf("expected unmodified key/velocity, got %d/%d", s.Key(), s.Velocity())
	}
	s.SetGeneratorBase(sf2entity.ForcedMIDIKey, sf2entity.AmountOf(72))
	s.SetGeneratorBase(sf2entity.ForcedMIDIVelocity, sf2entity.AmountOf(20))
	if s.Key() != 72 || s.Velocity() != 20 {
		t.Fatalf("expected forced key/velocity 72/20, got %d/%d", s.Key(), s.Velocity())
	}
}

func TestStateNRPNAdjustmentContributes(t *testing.T) {
	cs := sf2midi.NewChannelState()
	var s State
	s.Reset(cs, 60, 100)

	cs.SetContinuousControllerValue(sf2midi.CCNRPNMSB, 120)
	cs.SetContinuousControllerValue(sf2midi.CCNRPNLSB, 8) // initialFilterCutoff's NRPN index
	cs.SetContinuousControllerValue(sf2midi.CCDataEntryMSB, 0x50)

	s.SetGeneratorBase(sf2entity.InitialFilterCutoff, sf2entity.AmountOf(6000))
	if got := s.Modulated(sf2entity.InitialFilterCutoff); got <= 6000 {
		t.Fatalf("expected NRPN adjustment to raise cutoff above 6000, got %v", got)
	}
}
