package sf2entity

import "testing"

func TestDefReturnsMetadata(t *testing.T) {
	d := Def(InitialFilterCutoff)
	if d.Name != "initialFilterCutoff" {
		t.Fatalf("expected initialFilterCutoff, got %q", d.Name)
	}
	if !d.HasRange || d.Range.Min != 1500 || d.Range.Max != 13500 {
		t.Fatalf("unexpected range %+v", d.Range)
	}
	if !d.AvailableInPreset {
		t.Fatal("expected initialFilterCutoff available in preset zones")
	}
}

func TestDefOutOfRangeIsUnused(t *testing.T) {
	d := Def(Index(-1))
	if d.Kind != KindUnused {
		t.Fatalf("expected KindUnused for negative index, got %v", d.Kind)
	}
	d = Def(NumIndices)
	if d.Kind != KindUnused {
		t.Fatalf("expected KindUnused for out-of-range index, got %v", d.Kind)
	}
}

func TestClampRespectsRange(t *testing.T) {
	if got := Clamp(InitialFilterCutoff, 20000); got != 13500 {
		t.Fatalf("expected clamp to 13500, got %v", got)
	}
	if got := Clamp(InitialFilterCutoff, 0); got != 1500 {
		t.Fatalf("expected clamp to 1500, got %v", got)
	}
	// A generator with no declared range passes through unclamped.
	if got := Clamp(SampleID, 99999); got != 99999 {
		t.Fatalf("expected unclamped passthrough, got %v", got)
	}
}

func TestAmountSignedUnsigned(t *testing.T) {
	a := AmountOf(-100)
	if a.Signed() != -100 {
		t.Fatalf("expected -100, got %v", a.Signed())
	}
	a = Amount(60000)
	if a.Unsigned() != 60000 {
		t.Fatalf("expected 60000, got %v", a.Unsigned())
	}
}

func TestRangeAmountLowHigh(t *testing.T) {
	a := RangeAmountOf(36, 84)
	if a.Low() != 36 || a.High() != 84 {
		t.Fatalf("expected (36,84), got (%v,%v)", a.Low(), a.High())
	}
}

func TestDefaultModulatorsCount(t *testing.T) {
	mods := DefaultModulators()
	if len(mods) != 10 {
		t.Fatalf("expected 10 default modulators, got %d", len(mods))
	}
}

func TestModulatorEquivalentIgnoresAmount(t *testing.T) {
	a := Modulator{Source: NewCCSource(7, true, false, ContinuityConcave), AmountSource: NoSource, Amount: 500, Destination: InitialAttenuation}
	b := Modulator{Source: NewCCSource(7, true, false, ContinuityConcave), AmountSource: NoSource, Amount: 200, Destination: InitialAttenuation}
	if !a.Equivalent(b) {
		t.Fatal("expected modulators with same source/destination/amountSource to be equivalent regardless of amount")
	}
	c := Modulator{Source: NewCCSource(1, false, false, ContinuityLinear), AmountSource: NoSource, Amount: 500, Destination: InitialAttenuation}
	if a.Equivalent(c) {
		t.Fatal("expected modulators with different sources to not be equivalent")
	}
}

func TestSourceIsValid(t *testing.T) {
	if !NewCCSource(7, false, false, ContinuityLinear).IsValid() {
		t.Fatal("CC7 should be valid")
	}
	if NewCCSource(0, false, false, ContinuityLinear).IsValid() {
		t.Fatal("CC0 (bank select) should be invalid as a modulator source")
	}
	if NewCCSource(98, false, false, ContinuityLinear).IsValid() {
		t.Fatal("CC98 (NRPN LSB) should be invalid as a modulator source")
	}
	if !NewGeneralSource(GeneralNoteOnKey, false, false, ContinuityLinear).IsValid() {
		t.Fatal("noteOnKey should be valid")
	}
}
