package sf2zone

import "github.com/cbegin/sf2synth-go/internal/sf2entity"

// GeneratorEntry is one (generator index, raw amount) pair as stored in a
// zone's generator list.
type GeneratorEntry struct {
	Index  sf2entity.Index
	Amount sf2entity.Amount
}

// KeyVelocityRange is an inclusive [Low, High] range, defaulting to the
// full MIDI range [0, 127] when a zone carries no explicit range generator.
type KeyVelocityRange struct {
	Low, High int
}

// Contains reports whether value falls within the range.
func (r KeyVelocityRange) Contains(value int) bool {
	return value >= r.Low && value <= r.High
}

var fullRange = KeyVelocityRange{Low: 0, High: 127}

// GeneratorSink receives "set" (instrument-zone) or "adjust" (preset-zone)
// generator values while a zone is being applied to voice state. Defined
// here rather than depending on sf2voice, to avoid an import cycle — the
// voice state type implements this interface.
type GeneratorSink interface {
	SetGeneratorBase(idx sf2entity.Index, amount sf2entity.Amount)
	AddGeneratorAdjustment(idx sf2entity.Index, amount sf2entity.Amount)
}

// ModulatorSink receives modulators while a zone is being applied.
type ModulatorSink interface {
	AddModulator(m sf2entity.Modulator)
}

// Zone is a collection of generator and modulator settings, plus the key
// and velocity ranges it applies to. A zone with IsGlobal true has no
// terminal link generator (instrument link for preset zones, sampleID link
// for instrument zones) and instead serves as a default for its sibling
// zones.
type Zone struct {
	Generators []GeneratorEntry
	Modulators []sf2entity.Modulator
	KeyRange   KeyVelocityRange
	VelRange   KeyVelocityRange
	IsGlobal   bool

	// InstrumentIndex/SampleIndex are populated for non-global preset/
	// instrument zones respectively; the matcher in match.go resolves them
	// into real Instrument/SampleSource references.
	InstrumentIndex int
	SampleIndex     int
}

// NewZone builds a Zone from its raw generator/modulator lists. terminal is
// the generator index that, when it is the last entry, marks this zone as
// non-global (sf2entity.Instrument for preset zones, sf2entity.SampleID for
// instrument zones).
func NewZone(generators []GeneratorEntry, modulators []sf2entity.Modulator, terminal sf2entity.Index) Zone {
	z := Zone{
		Generators: generators, Modulators: modulators,
		KeyRange: fullRange, VelRange: fullRange,
	}

	// A zone is global when it has no generators (but has modulators), or
	// when its last generator is not the terminal link generator. Mirrors
	// Render/Zone/Zone.cpp's isGlobal_ computation.
	if len(generators) == 0 {
		z.IsGlobal = len(modulators) > 0
	} else {
		last := generators[len(generators)-1]
		z.IsGlobal = last.Index != terminal
		if !z.IsGlobal {
			switch terminal {
			case sf2entity.Instrument:
				z.InstrumentIndex = int(last.Amount.Unsigned())
			case sf2entity.SampleID:
				z.SampleIndex = int(last.Amount.Unsigned())
			}
		}
	}

	// keyRange must be the first generator if present; velocityRange must
	// be first or second (immediately after keyRange), per SF2.01 §7.3.
	idx := 0
	if idx < len(generators) && generators[idx].Index == sf2entity.KeyRange {
		a := generators[idx].Amount
		z.KeyRange = KeyVelocityRange{Low: int(a.Low()), High: int(a.High())}
		idx++
	}
	if idx < len(generators) && generators[idx].Index == sf2entity.VelocityRange {
		a := generators[idx].Amount
		z.VelRange = KeyVelocityRange{Low: int(a.Low()), High: int(a.High())}
	}

	return z
}

// Matches reports whether this zone's key and velocity ranges contain the
// given key and velocity.
func (z Zone) Matches(key, velocity int) bool {
	return z.KeyRange.Contains(key) && z.VelRange.Contains(velocity)
}

// ExclusiveClass returns the zone's exclusiveClass generator value, or 0 if
// absent.
func (z Zone) ExclusiveClass() int {
	for _, g := range z.Generators {
		if g.Index == sf2entity.ExclusiveClass {
			return int(g.Amount.Unsigned())
		}
	}
	return 0
}

// ApplySet installs this zone's generators as base ("set") values and its
// modulators into sink, as instrument zones do (spec §4.2 steps 3-4: no
// availableInPreset filter, any generator may be set).
func (z Zone) ApplySet(gsink GeneratorSink, msink ModulatorSink) {
	for _, g := range z.Generators {
		if g.Index == sf2entity.Instrument || g.Index == sf2entity.SampleID ||
			g.Index == sf2entity.KeyRange || g.Index == sf2entity.VelocityRange {
			continue
		}
		gsink.SetGeneratorBase(g.Index, g.Amount)
	}
	for _, m := range z.Modulators {
		msink.AddModulator(m)
	}
}

// ApplyAdjust installs this zone's generators as adjustments (added, not
// set) and its modulators into sink, as preset zones do (spec §4.2 steps
// 5-6: generators not marked availableInPreset are silently ignored).
func (z Zone) ApplyAdjust(gsink GeneratorSink, msink ModulatorSink) {
	for _, g := range z.Generators {
		if g.Index == sf2entity.Instrument || g.Index == sf2entity.SampleID ||
			g.Index == sf2entity.KeyRange || g.Index == sf2entity.VelocityRange {
			continue
		}
		if !sf2entity.Def(g.Index).AvailableInPreset {
			continue
		}
		gsink.AddGeneratorAdjustment(g.Index, g.Amount)
	}
	for _, m := range z.Modulators {
		msink.AddModulator(m)
	}
}
