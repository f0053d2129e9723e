package sf2entity

// SourceContinuity identifies the curve shape used to transform a
// modulator's raw controller value into a [0,1] or [-1,1] contribution.
type SourceContinuity int

const (
	ContinuityLinear SourceContinuity = iota
	ContinuityConcave
	ContinuityConvex
	ContinuitySwitched
)

// GeneralIndex enumerates the non-CC modulator sources.
type GeneralIndex int

const (
	GeneralNone                  GeneralIndex = 0
	GeneralNoteOnVelocity        GeneralIndex = 2
	GeneralNoteOnKey             GeneralIndex = 3
	GeneralKeyPressure           GeneralIndex = 10
	GeneralChannelPressure       GeneralIndex = 13
	GeneralPitchWheel            GeneralIndex = 14
	GeneralPitchWheelSensitivity GeneralIndex = 16
)

// validGeneralIndices is the set of defined non-CC controller indices.
var validGeneralIndices = map[GeneralIndex]bool{
	GeneralNone: true, GeneralNoteOnVelocity: true, GeneralNoteOnKey: true,
	GeneralKeyPressure: true, GeneralChannelPressure: true,
	GeneralPitchWheel: true, GeneralPitchWheelSensitivity: true,
}

// Source is the bit-packed modulator source encoding from SF2.01 §8.2,
// re-expressed as a plain struct rather than a raw bitfield — callers
// construct it via NewCCSource/NewGeneralSource instead of poking bits.
type Source struct {
	isCC        bool
	ccIndex     int
	general     GeneralIndex
	direction   bool // true: max-to-min (negative)
	polarity    bool // true: bipolar
	continuity  SourceContinuity
}

// NewCCSource builds a modulator source from a continuous-controller index.
func NewCCSource(cc int, negative, bipolar bool, continuity SourceContinuity) Source {
	return Source{isCC: true, ccIndex: cc, direction: negative, polarity: bipolar, continuity: continuity}
}

// NewGeneralSource builds a modulator source from a general-controller
// index.
func NewGeneralSource(general GeneralIndex, negative, bipolar bool, continuity SourceContinuity) Source {
	return Source{isCC: false, general: general, direction: negative, polarity: bipolar, continuity: continuity}
}

// NoSource is the "none" general source: modulators using it always
// contribute zero.
var NoSource = NewGeneralSource(GeneralNone, false, false, ContinuityLinear)

// IsContinuousController reports whether this source reads a MIDI CC.
func (s Source) IsContinuousController() bool { return s.isCC }

// CCIndex returns the controller-change index (only meaningful when
// IsContinuousController is true).
func (s Source) CCIndex() int { return s.ccIndex }

// GeneralIndex returns the general controller kind (only meaningful when
// IsContinuousController is false).
func (s Source) GeneralIndex() GeneralIndex { return s.general }

// Negative reports whether the source's transform direction is
// max-to-min (negative) rather than min-to-max (positive).
func (s Source) Negative() bool { return s.direction }

// Bipolar reports whether the source's transform output is bipolar
// ([-1,1]) rather than unipolar ([0,1]).
func (s Source) Bipolar() bool { return s.polarity }

// Continuity returns the curve shape used by the transform.
func (s Source) Continuity() SourceContinuity { return s.continuity }

// ControllerRange returns the number of discrete values the source's
// transform table must cover: 8192 for the 14-bit pitch wheel, 128 for
// everything else.
func (s Source) ControllerRange() int {
	if !s.isCC && s.general == GeneralPitchWheel {
		return 8192
	}
	return 128
}

// invalidCC mirrors Source::isValid()'s undefined continuous-controller
// indices from the original (0, 6, 32-63, 98, 101, 120-127).
func invalidCC(cc int) bool {
	if cc == 0 || cc == 6 || cc == 98 || cc == 101 {
		return true
	}
	if cc >= 32 && cc <= 63 {
		return true
	}
	if cc >= 120 && cc <= 127 {
		return true
	}
	return false
}

// IsValid reports whether this source decodes to a defined controller.
func (s Source) IsValid() bool {
	if s.isCC {
		return !invalidCC(s.ccIndex)
	}
	return validGeneralIndices[s.general]
}

// Transform is the modulator's output transform: identity, or absolute
// value.
type Transform int

const (
	TransformLinear Transform = iota
	TransformAbsolute
)

// Modulator is the file-level (preset/instrument zone) modulator
// configuration: a rule mapping (source, amount source) through amount into
// a contribution to a destination generator.
type Modulator struct {
	Source             Source
	AmountSource       Source
	Amount             int16
	Destination        Index
	OutputTransform    Transform
}

// Equivalent reports whether two modulators are considered the same
// modulator for deduplication purposes: same primary source, destination,
// and amount source (not amount, and not output transform — per spec §4.3
// only the listed three fields participate in equality).
func (m Modulator) Equivalent(other Modulator) bool {
	return m.Source == other.Source && m.Destination == other.Destination && m.AmountSource == other.AmountSource
}

// DefaultModulators returns the ten SF2.01 §8.4 default modulators that are
// installed into every voice's state before any zone is applied.
func DefaultModulators() []Modulator {
	return []Modulator{
		// MIDI Note-On Velocity to Initial Attenuation
		{
			Source:          NewGeneralSource(GeneralNoteOnVelocity, true, false, ContinuityConcave),
			AmountSource:    NoSource,
			Amount:          960,
			Destination:     InitialAttenuation,
			OutputTransform: TransformLinear,
		},
		// MIDI Note-On Velocity to Filter Cutoff
		{
			Source:          NewGeneralSource(GeneralNoteOnVelocity, true, false, ContinuityLinear),
			AmountSource:    NoSource,
			Amount:          -2400,
			Destination:     InitialFilterCutoff,
			OutputTransform: TransformLinear,
		},
		// MIDI Channel Pressure to Vibrato LFO Pitch Depth
		{
			Source:          NewGeneralSource(GeneralChannelPressure, false, false, ContinuityLinear),
			AmountSource:    NoSource,
			Amount:          50,
			Destination:     VibratoLFOToPitch,
			OutputTransform: TransformLinear,
		},
		// MIDI Continuous Controller 1 (Modulation Wheel) to Vibrato LFO Pitch Depth
		{
			Source:          NewCCSource(1, false, false, ContinuityLinear),
			AmountSource:    NoSource,
			Amount:          50,
			Destination:     VibratoLFOToPitch,
			OutputTransform: TransformLinear,
		},
		// MIDI Continuous Controller 7 (Volume) to Initial Attenuation
		{
			Source:          NewCCSource(7, true, false, ContinuityConcave),
			AmountSource:    NoSource,
			Amount:          960,
			Destination:     InitialAttenuation,
			OutputTransform: TransformLinear,
		},
		// MIDI Continuous Controller 10 (Pan) to Pan Position
		{
			Source:          NewCCSource(10, false, true, ContinuityLinear),
			AmountSource:    NoSource,
			Amount:          500,
			Destination:     Pan,
			OutputTransform: TransformLinear,
		},
		// MIDI Continuous Controller 11 (Expression) to Initial Attenuation
		{
			Source:          NewCCSource(11, true, false, ContinuityConcave),
			AmountSource:    NoSource,
			Amount:          960,
			Destination:     InitialAttenuation,
			OutputTransform: TransformLinear,
		},
		// MIDI Continuous Controller 91 (Reverb Send) to Reverb Effect Send
		{
			Source:          NewCCSource(91, false, false, ContinuityLinear),
			AmountSource:    NoSource,
			Amount:          200,
			Destination:     ReverbEffectSend,
			OutputTransform: TransformLinear,
		},
		// MIDI Continuous Controller 93 (Chorus Send) to Chorus Effect Send
		{
			Source:          NewCCSource(93, false, false, ContinuityLinear),
			AmountSource:    NoSource,
			Amount:          200,
			Destination:     ChorusEffectSend,
			OutputTransform: TransformLinear,
		},
		// MIDI Pitch Wheel to Initial Pitch, scaled by Pitch Wheel Sensitivity
		{
			Source:          NewGeneralSource(GeneralPitchWheel, false, true, ContinuityLinear),
			AmountSource:    NewGeneralSource(GeneralPitchWheelSensitivity, false, false, ContinuityLinear),
			Amount:          12700,
			Destination:     FineTune,
			OutputTransform: TransformLinear,
		},
	}
}
