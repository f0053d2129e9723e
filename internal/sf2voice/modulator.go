package sf2voice

import (
	"math"

	"github.com/cbegin/sf2synth-go/internal/sf2entity"
	"github.com/cbegin/sf2synth-go/internal/sf2midi"
)

// providerKind is a tagged dispatch over the value sources a modulator can
// pull from, replacing the original's pointer-to-member-function
// ValueProvider (spec §9: "replace with a tagged variant... the match is a
// small enum dispatch"). Using an enum + int instead of a closure keeps
// Modulator construction allocation-free, which matters because
// AddModulator runs during note_on (an RT-safe path per spec §5).
type providerKind int

const (
	providerNone providerKind = iota
	providerCC
	providerNoteOnKey
	providerNoteOnVelocity
	providerKeyPressure
	providerChannelPressure
	providerPitchWheel
	providerPitchWheelSensitivity
)

func providerFor(src sf2entity.Source) (kind providerKind, cc int) {
	if src.IsContinuousController() {
		return providerCC, src.CCIndex()
	}
	switch src.GeneralIndex() {
	case sf2entity.GeneralNone:
		return providerNone, 0
	case sf2entity.GeneralNoteOnKey:
		return providerNoteOnKey, 0
	case sf2entity.GeneralNoteOnVelocity:
		return providerNoteOnVelocity, 0
	case sf2entity.GeneralKeyPressure:
		return providerKeyPressure, 0
	case sf2entity.GeneralChannelPressure:
		return providerChannelPressure, 0
	case sf2entity.GeneralPitchWheel:
		return providerPitchWheel, 0
	case sf2entity.GeneralPitchWheelSensitivity:
		return providerPitchWheelSensitivity, 0
	}
	return providerNone, 0
}

func (s *State) providerValue(kind providerKind, cc int) int {
	switch kind {
	case providerCC:
		return s.channelState.ContinuousControllerValue(cc)
	case providerNoteOnKey:
		return s.Key()
	case providerNoteOnVelocity:
		return s.Velocity()
	case providerKeyPressure:
		return s.channelState.NotePressure(s.Key())
	case providerChannelPressure:
		return s.channelState.ChannelPressure()
	case providerPitchWheel:
		return s.channelState.PitchWheelValue()
	case providerPitchWheelSensitivity:
		return s.channelState.PitchWheelSensitivity()
	}
	return 0
}

// Modulator is the render-side counterpart to sf2entity.Modulator: the
// entity configuration plus a pull-based value provider for both the
// primary and amount sources. Operates in "pull" fashion — Value() always
// reflects the most current controller state, matching
// Render/Voice/State/Modulator.cpp's design.
type Modulator struct {
	config sf2entity.Modulator
	amount int16

	primaryKind      providerKind
	primaryCC        int
	primaryTransform sf2midi.ValueTransformer

	secondaryKind      providerKind
	secondaryCC        int
	secondaryTransform sf2midi.ValueTransformer
}

func newModulator(cfg sf2entity.Modulator) Modulator {
	pk, pcc := providerFor(cfg.Source)
	sk, scc := providerFor(cfg.AmountSource)
	return Modulator{
		config:             cfg,
		amount:             cfg.Amount,
		primaryKind:        pk,
		primaryCC:          pcc,
		primaryTransform:   sf2midi.NewValueTransformer(cfg.Source),
		secondaryKind:       sk,
		secondaryCC:         scc,
		secondaryTransform: sf2midi.NewValueTransformer(cfg.AmountSource),
	}
}

// takeAmountFrom replaces this modulator's amount with cfg's, used when a
// newly-added modulator configuration is equivalent to an existing one
// (spec §4.3's deduplication rule: same (source, destination, amount
// source) replaces the amount, not the whole entry).
func (m *Modulator) takeAmountFrom(cfg sf2entity.Modulator) { m.amount = cfg.Amount }

// Destination returns the generator this modulator contributes to.
func (m Modulator) Destination() sf2entity.Index { return m.config.Destination }

// Equivalent reports whether cfg describes the same modulator as m for
// dedup purposes.
func (m Modulator) Equivalent(cfg sf2entity.Modulator) bool { return m.config.Equivalent(cfg) }

// Value computes the modulator's current contribution: amount times the
// transformed primary source times the transformed amount source. If the
// primary source is "none", the modulator contributes zero per spec §4.3.
func (m Modulator) Value(s *State) float64 {
	if m.primaryKind == providerNone {
		return 0
	}
	primary := m.primaryTransform.Transform(s.providerValue(m.primaryKind, m.primaryCC))

	secondary := 1.0
	if m.secondaryKind != providerNone {
		secondary = m.secondaryTransform.Transform(s.providerValue(m.secondaryKind, m.secondaryCC))
	}

	out := float64(m.amount) * primary * secondary
	if m.config.OutputTransform == sf2entity.TransformAbsolute {
		out = math.Abs(out)
	}
	return out
}
