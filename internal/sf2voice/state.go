package sf2voice

import (
	"github.com/cbegin/sf2synth-go/internal/sf2entity"
	"github.com/cbegin/sf2synth-go/internal/sf2midi"
)

// maxModulatorsPerVoice bounds the fixed-size modulator array a State
// carries, sized generously above the 10 default modulators plus whatever a
// realistic zone stack adds, so AddModulator never allocates during
// note_on (spec §5).
const maxModulatorsPerVoice = 64

// State is a voice's generator/modulator storage: three layers of
// generator value (base from the instrument zone, preset adjustment from
// the preset zone, and a channel-wide NRPN adjustment looked up live from
// ChannelState) summed with any active modulator contributions and clamped
// to the generator's legal range on read. Implements sf2zone.GeneratorSink,
// sf2zone.ModulatorSink, and sf2zone.GeneratorReader so a zone can be
// applied directly against it.
//
// Grounded in Render/Voice/State/State.cpp's setDefaults/addModulator/
// unmodulated/modulated split.
type State struct {
	channelState *sf2midi.ChannelState

	eventKey      int
	eventVelocity int

	base       [sf2entity.NumIndices]float64
	adjustment [sf2entity.NumIndices]float64

	modulators [maxModulatorsPerVoice]Modulator
	modCount   int
}

// defaultBaseValues are the SF2.01 generator defaults that are non-zero,
// installed by step 1 of spec §4.2 before any zone is applied (everything
// not listed here defaults to 0, which Reset already leaves in place by
// zeroing the array).
var defaultBaseValues = map[sf2entity.Index]float64{
	sf2entity.InitialFilterCutoff:        13500,
	sf2entity.DelayModulatorLFO:          -12000,
	sf2entity.DelayVibratoLFO:            -12000,
	sf2entity.DelayModulatorEnvelope:     -12000,
	sf2entity.AttackModulatorEnvelope:    -12000,
	sf2entity.HoldModulatorEnvelope:      -12000,
	sf2entity.DecayModulatorEnvelope:     -12000,
	sf2entity.ReleaseModulatorEnvelope:   -12000,
	sf2entity.DelayVolumeEnvelope:        -12000,
	sf2entity.AttackVolumeEnvelope:       -12000,
	sf2entity.HoldVolumeEnvelope:         -12000,
	sf2entity.DecayVolumeEnvelope:        -12000,
	sf2entity.ReleaseVolumeEnvelope:      -12000,
	sf2entity.ScaleTuning:                100,
	sf2entity.OverridingRootKey:          -1,
	sf2entity.ForcedMIDIKey:              -1,
	sf2entity.ForcedMIDIVelocity:         -1,
}

// Reset clears all generator/modulator storage, installs the SF2.01
// default non-zero base values and the ten default modulators, preparing
// the state for a fresh voice configuration (spec §4.2 steps 1-2).
func (s *State) Reset(channelState *sf2midi.ChannelState, key, velocity int) {
	s.channelState = channelState
	s.eventKey = key
	s.eventVelocity = velocity
	for i := range s.base {
		s.base[i] = 0
		s.adjustment[i] = 0
	}
	for idx, v := range defaultBaseValues {
		s.base[idx] = v
	}
	s.modCount = 0
	for _, m := range sf2entity.DefaultModulators() {
		s.AddModulator(m)
	}
}

// SetGeneratorBase implements sf2zone.GeneratorSink: instrument zones "set"
// the base value outright.
func (s *State) SetGeneratorBase(idx sf2entity.Index, amount sf2entity.Amount) {
	if idx < 0 || idx >= sf2entity.NumIndices {
		return
	}
	s.base[idx] = rawValue(idx, amount)
}

// AddGeneratorAdjustment implements sf2zone.GeneratorSink: preset zones
// add to (rather than replace) the running adjustment.
func (s *State) AddGeneratorAdjustment(idx sf2entity.Index, amount sf2entity.Amount) {
	if idx < 0 || idx >= sf2entity.NumIndices {
		return
	}
	s.adjustment[idx] += rawValue(idx, amount)
}

// AddModulator implements sf2zone.ModulatorSink, deduplicating against any
// existing modulator with the same (source, destination, amount source) by
// replacing its amount rather than appending a second entry (spec §4.3).
func (s *State) AddModulator(cfg sf2entity.Modulator) {
	if !cfg.Source.IsValid() || !cfg.AmountSource.IsValid() {
		return
	}
	for i := 0; i < s.modCount; i++ {
		if s.modulators[i].Equivalent(cfg) {
			s.modulators[i].takeAmountFrom(cfg)
			return
		}
	}
	if s.modCount >= len(s.modulators) {
		return
	}
	s.modulators[s.modCount] = newModulator(cfg)
	s.modCount++
}

func rawValue(idx sf2entity.Index, amount sf2entity.Amount) float64 {
	switch sf2entity.Def(idx).Kind {
	case sf2entity.KindUnsignedShort, sf2entity.KindUnsignedPercent:
		return float64(amount.Unsigned())
	default:
		return float64(amount.Signed())
	}
}

// AddGlobalAdjustment folds in a front-end-configured per-generator
// override (Parameters.generatorOverride in sf2engine), summed alongside the
// preset-zone adjustment so it participates in Modulated's clamp the same
// way.
func (s *State) AddGlobalAdjustment(idx sf2entity.Index, value float64) {
	if idx < 0 || idx >= sf2entity.NumIndices {
		return
	}
	s.adjustment[idx] += value
}

// UnmodulatedGenerator implements sf2zone.GeneratorReader: base plus preset
// adjustment only, with no NRPN or modulator contribution. Used for the
// address-offset generators, which SF2.01 never modulates.
func (s *State) UnmodulatedGenerator(idx sf2entity.Index) float64 {
	if idx < 0 || idx >= sf2entity.NumIndices {
		return 0
	}
	return sf2entity.Clamp(idx, s.base[idx]+s.adjustment[idx])
}

// Modulated returns the generator's fully-resolved value: base + preset
// adjustment + NRPN adjustment + the sum of every active modulator's
// contribution to this destination, clamped to the generator's legal
// range (spec §4.3).
func (s *State) Modulated(idx sf2entity.Index) float64 {
	if idx < 0 || idx >= sf2entity.NumIndices {
		return 0
	}
	v := s.base[idx] + s.adjustment[idx]
	if s.channelState != nil {
		v += float64(s.channelState.NRPNAdjustment(idx))
	}
	for i := 0; i < s.modCount; i++ {
		if s.modulators[i].Destination() == idx {
			v += s.modulators[i].Value(s)
		}
	}
	return sf2entity.Clamp(idx, v)
}

// Key returns the sounding MIDI key: the forcedMIDIKey generator overrides
// the note-on key when set to a value in [0, 127].
func (s *State) Key() int {
	if v := s.UnmodulatedGenerator(sf2entity.ForcedMIDIKey); v >= 0 {
		return int(v)
	}
	return s.eventKey
}

// Velocity returns the sounding MIDI velocity: the forcedMIDIVelocity
// generator overrides the note-on velocity when set to a value in [0, 127].
func (s *State) Velocity() int {
	if v := s.UnmodulatedGenerator(sf2entity.ForcedMIDIVelocity); v >= 0 {
		return int(v)
	}
	return s.eventVelocity
}
