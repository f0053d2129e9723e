package sf2zone

// Preset is a named collection of preset zones plus a (bank, program) pair.
// Presets are ordered by (bank, program) in their owning PresetCollection.
type Preset struct {
	Name    string
	Bank    int
	Program int

	Zones  []Zone // non-global zones only
	Global *Zone
}

// NewPreset splits a flat zone list into the optional leading global zone
// and the remaining non-global zones, mirroring NewInstrument.
func NewPreset(name string, bank, program int, zones []Zone) Preset {
	p := Preset{Name: name, Bank: bank, Program: program}
	for i := range zones {
		if zones[i].IsGlobal {
			z := zones[i]
			p.Global = &z
			continue
		}
		p.Zones = append(p.Zones, zones[i])
	}
	return p
}

// VoiceConfig pairs one matched preset zone with one matched instrument
// zone (plus their optional global zones) for a specific (key, velocity),
// along with the sample source the instrument zone links to and the
// precomputed exclusive class. Produced by Find, consumed by the engine to
// configure a voice.
type VoiceConfig struct {
	PresetZone         Zone
	GlobalPresetZone   *Zone
	InstrumentZone     Zone
	GlobalInstrumentZone *Zone

	Sample *SampleSource

	Key, Velocity  int
	ExclusiveClass int
}

// Find enumerates the VoiceConfigs produced by matching (key, velocity)
// against this preset's zones and, for each matched preset zone, the
// matched zones of its linked instrument. Instruments and sample sources
// are resolved via the given collections (indices are assigned at load
// time by the caller building the preset/instrument graph).
func (p Preset) Find(key, velocity int, instruments []Instrument, samples []*SampleSource) []VoiceConfig {
	var configs []VoiceConfig
	for _, pz := range p.Zones {
		if !pz.Matches(key, velocity) {
			continue
		}
		if pz.InstrumentIndex < 0 || pz.InstrumentIndex >= len(instruments) {
			continue
		}
		inst := instruments[pz.InstrumentIndex]
		for _, iz := range inst.Matching(key, velocity) {
			var sample *SampleSource
			if iz.SampleIndex >= 0 && iz.SampleIndex < len(samples) {
				sample = samples[iz.SampleIndex]
			}
			if sample == nil {
				// A voice whose sample source is absent is rejected at
				// config-apply time and contributes no sound (spec §7).
				continue
			}
			configs = append(configs, VoiceConfig{
				PresetZone:           pz,
				GlobalPresetZone:     p.Global,
				InstrumentZone:       iz,
				GlobalInstrumentZone: inst.Global,
				Sample:               sample,
				Key:                  key,
				Velocity:             velocity,
				ExclusiveClass:       iz.ExclusiveClass(),
			})
		}
	}
	return configs
}

// Apply installs this config's generators/modulators into sink in the
// order spec §4.2 describes: global instrument (set), instrument (set),
// global preset (adjust), preset (adjust).
func (c VoiceConfig) Apply(gsink GeneratorSink, msink ModulatorSink) {
	if c.GlobalInstrumentZone != nil {
		c.GlobalInstrumentZone.ApplySet(gsink, msink)
	}
	c.InstrumentZone.ApplySet(gsink, msink)
	if c.GlobalPresetZone != nil {
		c.GlobalPresetZone.ApplyAdjust(gsink, msink)
	}
	c.PresetZone.ApplyAdjust(gsink, msink)
}

// PresetCollection is an ordered-by-(bank,program) list of presets plus the
// instrument and sample-source collections they reference.
type PresetCollection struct {
	Presets     []Preset
	Instruments []Instrument
	Samples     []*SampleSource
}

// IndexOf returns the index of the preset with the given (bank, program),
// or -1 if none matches.
func (pc PresetCollection) IndexOf(bank, program int) int {
	for i, p := range pc.Presets {
		if p.Bank == bank && p.Program == program {
			return i
		}
	}
	return -1
}

// Find enumerates the VoiceConfigs for (key, velocity) against the preset
// at presetIndex.
func (pc PresetCollection) Find(presetIndex, key, velocity int) []VoiceConfig {
	if presetIndex < 0 || presetIndex >= len(pc.Presets) {
		return nil
	}
	return pc.Presets[presetIndex].Find(key, velocity, pc.Instruments, pc.Samples)
}
