package sf2zone

import (
	"testing"

	"github.com/cbegin/sf2synth-go/internal/sf2entity"
)

func TestZoneGlobalDetection(t *testing.T) {
	global := NewZone(nil, []sf2entity.Modulator{{}}, sf2entity.Instrument)
	if !global.IsGlobal {
		t.Fatal("empty generator list with modulators should be global")
	}

	nonGlobal := NewZone([]GeneratorEntry{{Index: sf2entity.Instrument, Amount: sf2entity.AmountOf(3)}}, nil, sf2entity.Instrument)
	if nonGlobal.IsGlobal {
		t.Fatal("zone terminated by instrument link should not be global")
	}
	if nonGlobal.InstrumentIndex != 3 {
		t.Fatalf("InstrumentIndex = %d, want 3", nonGlobal.InstrumentIndex)
	}

	missingTerminal := NewZone([]GeneratorEntry{{Index: sf2entity.Pan, Amount: sf2entity.AmountOf(0)}}, nil, sf2entity.Instrument)
	if !missingTerminal.IsGlobal {
		t.Fatal("zone whose last generator isn't the terminal link should be global")
	}
}

func TestZoneKeyVelocityRange(t *testing.T) {
	z := NewZone([]GeneratorEntry{
		{Index: sf2entity.KeyRange, Amount: sf2entity.RangeAmountOf(60, 72)},
		{Index: sf2entity.VelocityRange, Amount: sf2entity.RangeAmountOf(1, 100)},
		{Index: sf2entity.SampleID, Amount: sf2entity.AmountOf(0)},
	}, nil, sf2entity.SampleID)

	if z.KeyRange.Low != 60 || z.KeyRange.High != 72 {
		t.Fatalf("KeyRange = %+v", z.KeyRange)
	}
	if z.VelRange.Low != 1 || z.VelRange.High != 100 {
		t.Fatalf("VelRange = %+v", z.VelRange)
	}
	if !z.Matches(65, 50) {
		t.Fatal("expected match within range")
	}
	if z.Matches(80, 50) {
		t.Fatal("expected no match outside key range")
	}
}

func TestPresetFindRejectsMissingSample(t *testing.T) {
	inst := NewInstrument("lead", []Zone{
		NewZone([]GeneratorEntry{{Index: sf2entity.SampleID, Amount: sf2entity.AmountOf(0)}}, nil, sf2entity.SampleID),
	})
	p := NewPreset("patch", 0, 0, []Zone{
		NewZone([]GeneratorEntry{{Index: sf2entity.Instrument, Amount: sf2entity.AmountOf(0)}}, nil, sf2entity.Instrument),
	})

	configs := p.Find(60, 100, []Instrument{inst}, nil) // no samples registered
	if len(configs) != 0 {
		t.Fatalf("expected no configs when sample source is absent, got %d", len(configs))
	}
}

func TestPresetFindMatches(t *testing.T) {
	sample := NewSampleSource(make([]float32, 100), 0, 50, 10, 40, 44100, 60, 0)
	inst := NewInstrument("lead", []Zone{
		NewZone([]GeneratorEntry{{Index: sf2entity.SampleID, Amount: sf2entity.AmountOf(0)}}, nil, sf2entity.SampleID),
	})
	p := NewPreset("patch", 0, 0, []Zone{
		NewZone([]GeneratorEntry{{Index: sf2entity.Instrument, Amount: sf2entity.AmountOf(0)}}, nil, sf2entity.Instrument),
	})

	configs := p.Find(60, 100, []Instrument{inst}, []*SampleSource{sample})
	if len(configs) != 1 {
		t.Fatalf("expected 1 config, got %d", len(configs))
	}
	if configs[0].Sample != sample {
		t.Fatal("expected resolved sample pointer")
	}
}
