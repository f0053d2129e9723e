package sf2entity

import "testing"

// tableRow is the subset of Definition that review has repeatedly found
// hand-transcribed wrong: the clamp range, the preset-zone gate, and the
// NRPN resolution divisor. Each expected tuple below was copied by hand from
// _examples/original_source/Sources/SF2Lib/Entity/Generator/Definition.cpp,
// row by row in declaration order, independently of generator.go's init().
type tableRow struct {
	idx               Index
	hasRange          bool
	min, max          float64
	availableInPreset bool
	nrpnMultiplier    int
}

var wantTable = []tableRow{
	{StartAddressOffset, false, 0, 0, false, 1},
	{EndAddressOffset, false, 0, 0, false, 1},
	{StartLoopAddressOffset, false, 0, 0, false, 1},
	{EndLoopAddressOffset, false, 0, 0, false, 1},
	{StartAddressCoarseOffset, false, 0, 0, false, 1},
	{ModulatorLFOToPitch, true, -12000, 12000, true, 2},
	{VibratoLFOToPitch, true, -12000, 12000, true, 2},
	{ModulatorEnvelopeToPitch, true, -12000, 12000, true, 2},
	{InitialFilterCutoff, true, 1500, 13500, true, 2},
	{InitialFilterResonance, true, 0, 960, true, 1},
	{ModulatorLFOToFilterCutoff, true, -12000, 12000, true, 2},
	{ModulatorEnvelopeToFilterCutoff, true, -12000, 12000, true, 2},
	{EndAddressCoarseOffset, false, 0, 0, false, 1},
	{ModulatorLFOToVolume, true, -960, 960, true, 1},
	{Unused1, false, 0, 0, false, 0},
	{ChorusEffectSend, true, 0, 1000, true, 1},
	{ReverbEffectSend, true, 0, 1000, true, 1},
	{Pan, true, -500, 500, true, 1},
	{Unused2, false, 0, 0, false, 0},
	{Unused3, false, 0, 0, false, 0},
	{Unused4, false, 0, 0, false, 0},
	{DelayModulatorLFO, true, -12000, 5000, true, 2},
	{FrequencyModulatorLFO, true, -16000, 4500, true, 4},
	{DelayVibratoLFO, true, -12000, 5000, true, 2},
	{FrequencyVibratoLFO, true, -16000, 4500, true, 4},
	{DelayModulatorEnvelope, true, -12000, 5000, true, 2},
	{AttackModulatorEnvelope, true, -12000, 8000, true, 2},
	{HoldModulatorEnvelope, true, -12000, 5000, true, 2},
	{DecayModulatorEnvelope, true, -12000, 8000, true, 2},
	{SustainModulatorEnvelope, true, 0, 1000, true, 1},
	{ReleaseModulatorEnvelope, true, -12000, 8000, true, 2},
	{MIDIKeyToModulatorEnvelopeHold, true, -1200, 1200, true, 1},
	{MIDIKeyToModulatorEnvelopeDecay, true, -1200, 1200, true, 1},
	{DelayVolumeEnvelope, true, -12000, 5000, true, 2},
	{AttackVolumeEnvelope, true, -12000, 8000, true, 2},
	{HoldVolumeEnvelope, true, -12000, 5000, true, 2},
	{DecayVolumeEnvelope, true, -12000, 8000, true, 2},
	{SustainVolumeEnvelope, true, 0, 1440, true, 1},
	{ReleaseVolumeEnvelope, true, -12000, 8000, true, 2},
	{MIDIKeyToVolumeEnvelopeHold, true, -1200, 1200, true, 1},
	{MIDIKeyToVolumeEnvelopeDecay, true, -1200, 1200, true, 1},
	{Instrument, false, 0, 0, true, 0},
	{Reserved1, false, 0, 0, false, 0},
	{KeyRange, false, 0, 0, true, 0},
	{VelocityRange, false, 0, 0, true, 0},
	{StartLoopAddressCoarseOffset, false, 0, 0, false, 1},
	{ForcedMIDIKey, true, -1, 127, false, 0},
	{ForcedMIDIVelocity, true, -1, 127, false, 1},
	{InitialAttenuation, true, 0, 1440, true, 1},
	{Reserved2, false, 0, 0, false, 0},
	{EndLoopAddressCoarseOffset, false, 0, 0, false, 1},
	{CoarseTune, true, -120, 120, true, 1},
	{FineTune, true, -99, 99, true, 1},
	{SampleID, false, 0, 0, false, 0},
	{SampleModes, false, 0, 0, false, 0},
	{Reserved3, false, 0, 0, false, 0},
	{ScaleTuning, true, 0, 1200, true, 1},
	{ExclusiveClass, true, 0, 127, false, 0},
	{OverridingRootKey, true, -1, 127, false, 0},
}

func TestGeneratorTableMatchesDefinitionCpp(t *testing.T) {
	if len(wantTable) != int(NumIndices) {
		t.Fatalf("test table has %d rows, want %d", len(wantTable), NumIndices)
	}
	for _, want := range wantTable {
		got := Def(want.idx)
		if got.HasRange != want.hasRange || got.Range.Min != want.min || got.Range.Max != want.max {
			t.Errorf("%s: range = (hasRange=%v, %v, %v), want (hasRange=%v, %v, %v)",
				got.Name, got.HasRange, got.Range.Min, got.Range.Max, want.hasRange, want.min, want.max)
		}
		if got.AvailableInPreset != want.availableInPreset {
			t.Errorf("%s: availableInPreset = %v, want %v", got.Name, got.AvailableInPreset, want.availableInPreset)
		}
		if got.NRPNMultiplier != want.nrpnMultiplier {
			t.Errorf("%s: nrpnMultiplier = %v, want %v", got.Name, got.NRPNMultiplier, want.nrpnMultiplier)
		}
	}
}
