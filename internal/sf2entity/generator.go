// Package sf2entity holds the static SF2.01 metadata: the 59 generator
// kinds and their clamp ranges, the amount encoding, and modulator entity
// configuration (as opposed to the render-side Modulator in sf2voice, which
// wraps one of these with a live value provider).
package sf2entity

// Index identifies one of the 59 SF2.01 generator kinds, in their exact
// declaration order from the SF2.01 spec.
type Index int

const (
	StartAddressOffset Index = iota
	EndAddressOffset
	StartLoopAddressOffset
	EndLoopAddressOffset
	StartAddressCoarseOffset
	ModulatorLFOToPitch
	VibratoLFOToPitch
	ModulatorEnvelopeToPitch
	InitialFilterCutoff
	InitialFilterResonance
	ModulatorLFOToFilterCutoff
	ModulatorEnvelopeToFilterCutoff
	EndAddressCoarseOffset
	ModulatorLFOToVolume
	Unused1
	ChorusEffectSend
	ReverbEffectSend
	Pan
	Unused2
	Unused3
	Unused4
	DelayModulatorLFO
	FrequencyModulatorLFO
	DelayVibratoLFO
	FrequencyVibratoLFO
	DelayModulatorEnvelope
	AttackModulatorEnvelope
	HoldModulatorEnvelope
	DecayModulatorEnvelope
	SustainModulatorEnvelope
	ReleaseModulatorEnvelope
	MIDIKeyToModulatorEnvelopeHold
	MIDIKeyToModulatorEnvelopeDecay
	DelayVolumeEnvelope
	AttackVolumeEnvelope
	HoldVolumeEnvelope
	DecayVolumeEnvelope
	SustainVolumeEnvelope
	ReleaseVolumeEnvelope
	MIDIKeyToVolumeEnvelopeHold
	MIDIKeyToVolumeEnvelopeDecay
	Instrument
	Reserved1
	KeyRange
	VelocityRange
	StartLoopAddressCoarseOffset
	ForcedMIDIKey
	ForcedMIDIVelocity
	InitialAttenuation
	Reserved2
	EndLoopAddressCoarseOffset
	CoarseTune
	FineTune
	SampleID
	SampleModes
	Reserved3
	ScaleTuning
	ExclusiveClass
	OverridingRootKey
	NumIndices
)

// ValueKind describes how a generator's raw 16-bit amount should be
// interpreted.
type ValueKind int

const (
	KindUnsignedShort ValueKind = iota
	KindSignedShort
	KindSignedCents
	KindSignedCentibels
	KindSignedTimeCents
	KindSignedFrequencyCents
	KindUnsignedPercent
	KindSignedPercent
	KindSignedSemitones
	KindCoarseOffset
	KindRange
	KindUnused
)

// Range is an inclusive clamp range for a generator value.
type Range struct {
	Min, Max float64
}

// Definition is the static metadata record for one generator kind.
type Definition struct {
	Index             Index
	Name              string
	Kind              ValueKind
	Range             Range
	HasRange          bool
	AvailableInPreset bool
	NRPNMultiplier    int
}

var definitions [NumIndices]Definition

func def(idx Index, name string, kind ValueKind, lo, hi float64, hasRange, availableInPreset bool, nrpnMult int) {
	definitions[idx] = Definition{
		Index: idx, Name: name, Kind: kind,
		Range: Range{Min: lo, Max: hi}, HasRange: hasRange,
		AvailableInPreset: availableInPreset, NRPNMultiplier: nrpnMult,
	}
}

// init populates the table by walking Definition.cpp in its exact
// declaration order; every (range, availableInPreset, nrpnMultiplier) tuple
// below is copied mechanically from that file, not hand-guessed. See
// generator_table_test.go for the row-by-row cross-check.
func init() {
	// name, kind, [min,max] (if any), availableInPreset, nrpnMultiplier
	def(StartAddressOffset, "startAddressOffset", KindCoarseOffset, 0, 0, false, false, 1)
	def(EndAddressOffset, "endAddressOffset", KindCoarseOffset, 0, 0, false, false, 1)
	def(StartLoopAddressOffset, "startLoopAddressOffset", KindCoarseOffset, 0, 0, false, false, 1)
	def(EndLoopAddressOffset, "endLoopAddressOffset", KindCoarseOffset, 0, 0, false, false, 1)
	def(StartAddressCoarseOffset, "startAddressCoarseOffset", KindCoarseOffset, 0, 0, false, false, 1)
	def(ModulatorLFOToPitch, "modulatorLFOToPitch", KindSignedFrequencyCents, -12000, 12000, true, true, 2)
	def(VibratoLFOToPitch, "vibratoLFOToPitch", KindSignedFrequencyCents, -12000, 12000, true, true, 2)
	def(ModulatorEnvelopeToPitch, "modulatorEnvelopeToPitch", KindSignedFrequencyCents, -12000, 12000, true, true, 2)
	def(InitialFilterCutoff, "initialFilterCutoff", KindSignedFrequencyCents, 1500, 13500, true, true, 2)
	def(InitialFilterResonance, "initialFilterResonance", KindSignedCentibels, 0, 960, true, true, 1)
	def(ModulatorLFOToFilterCutoff, "modulatorLFOToFilterCutoff", KindSignedFrequencyCents, -12000, 12000, true, true, 2)
	def(ModulatorEnvelopeToFilterCutoff, "modulatorEnvelopeToFilterCutoff", KindSignedFrequencyCents, -12000, 12000, true, true, 2)
	def(EndAddressCoarseOffset, "endAddressCoarseOffset", KindCoarseOffset, 0, 0, false, false, 1)
	def(ModulatorLFOToVolume, "modulatorLFOToVolume", KindSignedCentibels, -960, 960, true, true, 1)
	def(Unused1, "unused1", KindUnused, 0, 0, false, false, 0)
	def(ChorusEffectSend, "chorusEffectSend", KindUnsignedPercent, 0, 1000, true, true, 1)
	def(ReverbEffectSend, "reverbEffectSend", KindUnsignedPercent, 0, 1000, true, true, 1)
	def(Pan, "pan", KindSignedPercent, -500, 500, true, true, 1)
	def(Unused2, "unused2", KindUnused, 0, 0, false, false, 0)
	def(Unused3, "unused3", KindUnused, 0, 0, false, false, 0)
	def(Unused4, "unused4", KindUnused, 0, 0, false, false, 0)
	def(DelayModulatorLFO, "delayModulatorLFO", KindSignedTimeCents, -12000, 5000, true, true, 2)
	def(FrequencyModulatorLFO, "frequencyModulatorLFO", KindSignedFrequencyCents, -16000, 4500, true, true, 4)
	def(DelayVibratoLFO, "delayVibratoLFO", KindSignedTimeCents, -12000, 5000, true, true, 2)
	def(FrequencyVibratoLFO, "frequencyVibratoLFO", KindSignedFrequencyCents, -16000, 4500, true, true, 4)
	def(DelayModulatorEnvelope, "delayModulatorEnvelope", KindSignedTimeCents, -12000, 5000, true, true, 2)
	def(AttackModulatorEnvelope, "attackModulatorEnvelope", KindSignedTimeCents, -12000, 8000, true, true, 2)
	def(HoldModulatorEnvelope, "holdModulatorEnvelope", KindSignedTimeCents, -12000, 5000, true, true, 2)
	def(DecayModulatorEnvelope, "decayModulatorEnvelope", KindSignedTimeCents, -12000, 8000, true, true, 2)
	def(SustainModulatorEnvelope, "sustainModulatorEnvelope", KindUnsignedPercent, 0, 1000, true, true, 1)
	def(ReleaseModulatorEnvelope, "releaseModulatorEnvelope", KindSignedTimeCents, -12000, 8000, true, true, 2)
	def(MIDIKeyToModulatorEnvelopeHold, "midiKeyToModulatorEnvelopeHold", KindSignedShort, -1200, 1200, true, true, 1)
	def(MIDIKeyToModulatorEnvelopeDecay, "midiKeyToModulatorEnvelopeDecay", KindSignedShort, -1200, 1200, true, true, 1)
	def(DelayVolumeEnvelope, "delayVolumeEnvelope", KindSignedTimeCents, -12000, 5000, true, true, 2)
	def(AttackVolumeEnvelope, "attackVolumeEnvelope", KindSignedTimeCents, -12000, 8000, true, true, 2)
	def(HoldVolumeEnvelope, "holdVolumeEnvelope", KindSignedTimeCents, -12000, 5000, true, true, 2)
	def(DecayVolumeEnvelope, "decayVolumeEnvelope", KindSignedTimeCents, -12000, 8000, true, true, 2)
	def(SustainVolumeEnvelope, "sustainVolumeEnvelope", KindUnsignedPercent, 0, 1440, true, true, 1)
	def(ReleaseVolumeEnvelope, "releaseVolumeEnvelope", KindSignedTimeCents, -12000, 8000, true, true, 2)
	def(MIDIKeyToVolumeEnvelopeHold, "midiKeyToVolumeEnvelopeHold", KindSignedShort, -1200, 1200, true, true, 1)
	def(MIDIKeyToVolumeEnvelopeDecay, "midiKeyToVolumeEnvelopeDecay", KindSignedShort, -1200, 1200, true, true, 1)
	def(Instrument, "instrument", KindUnsignedShort, 0, 0, false, true, 0)
	def(Reserved1, "reserved1", KindUnused, 0, 0, false, false, 0)
	def(KeyRange, "keyRange", KindRange, 0, 0, false, true, 0)
	def(VelocityRange, "velocityRange", KindRange, 0, 0, false, true, 0)
	def(StartLoopAddressCoarseOffset, "startLoopAddressCoarseOffset", KindCoarseOffset, 0, 0, false, false, 1)
	def(ForcedMIDIKey, "forcedMIDIKey", KindSignedShort, -1, 127, true, false, 0)
	def(ForcedMIDIVelocity, "forcedMIDIVelocity", KindSignedShort, -1, 127, true, false, 1)
	def(InitialAttenuation, "initialAttenuation", KindSignedCentibels, 0, 1440, true, true, 1)
	def(Reserved2, "reserved2", KindUnused, 0, 0, false, false, 0)
	def(EndLoopAddressCoarseOffset, "endLoopAddressCoarseOffset", KindCoarseOffset, 0, 0, false, false, 1)
	def(CoarseTune, "coarseTune", KindSignedSemitones, -120, 120, true, true, 1)
	def(FineTune, "fineTune", KindSignedCents, -99, 99, true, true, 1)
	def(SampleID, "sampleID", KindUnsignedShort, 0, 0, false, false, 0)
	def(SampleModes, "sampleModes", KindUnsignedShort, 0, 0, false, false, 0)
	def(Reserved3, "reserved3", KindUnused, 0, 0, false, false, 0)
	def(ScaleTuning, "scaleTuning", KindUnsignedShort, 0, 1200, true, true, 1)
	def(ExclusiveClass, "exclusiveClass", KindUnsignedShort, 0, 127, true, false, 0)
	def(OverridingRootKey, "overridingRootKey", KindSignedShort, -1, 127, true, false, 0)
}

// Def returns the metadata for a generator index. Indices outside
// [0, NumIndices) return the zero Definition with Kind==KindUnused.
func Def(idx Index) Definition {
	if idx < 0 || idx >= NumIndices {
		return Definition{Kind: KindUnused}
	}
	return definitions[idx]
}

// Clamp restricts a generator's effective value to its legal range. Indices
// with no declared range (HasRange == false) pass through unclamped.
func Clamp(idx Index, value float64) float64 {
	d := Def(idx)
	if !d.HasRange {
		return value
	}
	if value < d.Range.Min {
		return d.Range.Min
	}
	if value > d.Range.Max {
		return d.Range.Max
	}
	return value
}

// Amount is the raw 2-byte generator/modulator amount, addressable as a
// signed value, an unsigned value, or a packed low/high byte pair (used by
// range generators like KeyRange/VelocityRange).
type Amount uint16

// AmountOf packs a signed value into an Amount.
func AmountOf(v int16) Amount { return Amount(uint16(v)) }

// RangeAmountOf packs (low, high) bytes into a single Amount, as used by
// KeyRange/VelocityRange generators.
func RangeAmountOf(low, high uint8) Amount {
	return Amount(uint16(low) | uint16(high)<<8)
}

// Signed interprets the amount as a signed 16-bit value.
func (a Amount) Signed() int16 { return int16(a) }

// Unsigned interprets the amount as an unsigned 16-bit value.
func (a Amount) Unsigned() uint16 { return uint16(a) }

// Low returns the low byte of the amount (used for range generators: the
// low end of the range).
func (a Amount) Low() uint8 { return uint8(a & 0xff) }

// High returns the high byte of the amount (used for range generators: the
// high end of the range).
func (a Amount) High() uint8 { return uint8(a >> 8) }
