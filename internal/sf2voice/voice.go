// Package sf2voice implements the per-voice rendering pipeline: generator/
// modulator state storage, root-pitch resolution, sample playback with loop
// handling, and the per-sample render cycle combining envelopes, LFOs,
// pitch, the low-pass filter, and pan/gain into a stereo-plus-sends frame.
package sf2voice

import (
	"github.com/cbegin/sf2synth-go/internal/sf2dsp"
	"github.com/cbegin/sf2synth-go/internal/sf2entity"
	"github.com/cbegin/sf2synth-go/internal/sf2envelope"
	"github.com/cbegin/sf2synth-go/internal/sf2filter"
	"github.com/cbegin/sf2synth-go/internal/sf2lfo"
	"github.com/cbegin/sf2synth-go/internal/sf2midi"
	"github.com/cbegin/sf2synth-go/internal/sf2zone"
)

// Frame is one rendered sample: a stereo dry pair plus the chorus/reverb
// send amounts to mix in (spec §4.10).
type Frame struct {
	Left, Right           float32
	ChorusSend, ReverbSend float32
}

// Voice is one slot in the engine's voice pool: everything needed to render
// a single sounding note, reconfigured in place on each note-on (spec §4.1's
// no-allocation voice reuse).
type Voice struct {
	index int

	sampleRate   float64
	interpolator Interpolator

	state State

	volumeEnvelope     sf2envelope.Generator
	modulationEnvelope sf2envelope.Generator
	modulatorLFO       sf2lfo.LFO
	vibratoLFO         sf2lfo.LFO
	filter             sf2filter.LowPass

	sampleGen *SampleGenerator
	pitch     Pitch

	initiatingKey  int
	exclusiveClass int

	active  bool
	done    bool
	keyDown bool

	globalOverrides *[sf2entity.NumIndices]float64
}

// SetGlobalOverrides installs the front-end-configured per-generator
// override table (sf2engine.Parameters.GeneratorOverrides) that Configure
// folds into every subsequent note. A nil table disables overrides.
func (v *Voice) SetGlobalOverrides(overrides *[sf2entity.NumIndices]float64) {
	v.globalOverrides = overrides
}

// NewVoice constructs an idle voice slot for the pool at the given index
// and output sample rate.
func NewVoice(index int, sampleRate float64, interpolator Interpolator) *Voice {
	v := &Voice{
		index: index, sampleRate: sampleRate, interpolator: interpolator,
		modulatorLFO: *sf2lfo.New(sf2lfo.Modulator),
		vibratoLFO:   *sf2lfo.New(sf2lfo.Vibrato),
		filter:       *sf2filter.New(sampleRate),
	}
	return v
}

// Index returns this voice's fixed slot index in the engine's pool.
func (v *Voice) Index() int { return v.index }

// IsActive reports whether this voice currently occupies a pool slot
// (configured and not yet fully decayed to silence).
func (v *Voice) IsActive() bool { return v.active }

// IsDone reports whether this voice has finished rendering and can be
// returned to the free list.
func (v *Voice) IsDone() bool { return v.done }

// ExclusiveClass returns the voice's exclusive class (0 means none).
func (v *Voice) ExclusiveClass() int { return v.exclusiveClass }

// InitiatingKey returns the MIDI key that started this voice, used to match
// note-off events against the voices they should release.
func (v *Voice) InitiatingKey() int { return v.initiatingKey }

// Configure (re)initializes this voice from a matched preset/instrument
// zone pair, per spec §4.2's generator-layering order, and gates both
// envelopes open. Called only from the note-on path.
func (v *Voice) Configure(config sf2zone.VoiceConfig, channelState *sf2midi.ChannelState) {
	v.state.Reset(channelState, config.Key, config.Velocity)
	config.Apply(&v.state, &v.state)
	if v.globalOverrides != nil {
		for idx, value := range v.globalOverrides {
			if value != 0 {
				v.state.AddGlobalAdjustment(sf2entity.Index(idx), value)
			}
		}
	}

	v.initiatingKey = config.Key
	v.exclusiveClass = config.ExclusiveClass

	bounds := sf2zone.MakeBounds(config.Sample, &v.state)
	loopMode := LoopModeFrom(int(v.state.Modulated(sf2entity.SampleModes)))
	v.sampleGen = NewSampleGenerator(config.Sample, bounds, loopMode, v.interpolator)
	v.pitch = ConfigurePitch(&v.state, config.Sample, v.sampleRate)

	v.volumeEnvelope.Configure(sf2envelope.Params{
		SampleRate:       v.sampleRate,
		Key:              v.state.Key(),
		DelayTimecents:   v.state.Modulated(sf2entity.DelayVolumeEnvelope),
		AttackTimecents:  v.state.Modulated(sf2entity.AttackVolumeEnvelope),
		HoldTimecents:    v.state.Modulated(sf2entity.HoldVolumeEnvelope),
		DecayTimecents:   v.state.Modulated(sf2entity.DecayVolumeEnvelope),
		SustainTenths:    v.state.Modulated(sf2entity.SustainVolumeEnvelope),
		ReleaseTimecents: v.state.Modulated(sf2entity.ReleaseVolumeEnvelope),
		KeyToHoldCents:   v.state.Modulated(sf2entity.MIDIKeyToVolumeEnvelopeHold),
		KeyToDecayCents:  v.state.Modulated(sf2entity.MIDIKeyToVolumeEnvelopeDecay),
	})
	v.modulationEnvelope.Configure(sf2envelope.Params{
		SampleRate:       v.sampleRate,
		Key:              v.state.Key(),
		DelayTimecents:   v.state.Modulated(sf2entity.DelayModulatorEnvelope),
		AttackTimecents:  v.state.Modulated(sf2entity.AttackModulatorEnvelope),
		HoldTimecents:    v.state.Modulated(sf2entity.HoldModulatorEnvelope),
		DecayTimecents:   v.state.Modulated(sf2entity.DecayModulatorEnvelope),
		SustainTenths:    v.state.Modulated(sf2entity.SustainModulatorEnvelope),
		ReleaseTimecents: v.state.Modulated(sf2entity.ReleaseModulatorEnvelope),
		KeyToHoldCents:   v.state.Modulated(sf2entity.MIDIKeyToModulatorEnvelopeHold),
		KeyToDecayCents:  v.state.Modulated(sf2entity.MIDIKeyToModulatorEnvelopeDecay),
	})

	v.modulatorLFO.Configure(v.sampleRate,
		sf2dsp.LFOCentsToFrequency(v.state.Modulated(sf2entity.FrequencyModulatorLFO)),
		sf2dsp.CentsToSeconds(v.state.Modulated(sf2entity.DelayModulatorLFO)))
	v.vibratoLFO.Configure(v.sampleRate,
		sf2dsp.LFOCentsToFrequency(v.state.Modulated(sf2entity.FrequencyVibratoLFO)),
		sf2dsp.CentsToSeconds(v.state.Modulated(sf2entity.DelayVibratoLFO)))
	v.modulatorLFO.Reset()
	v.vibratoLFO.Reset()

	v.filter.Reset()

	v.volumeEnvelope.Gate(true)
	v.modulationEnvelope.Gate(true)

	v.active = true
	v.done = false
	v.keyDown = true
}

// ReleaseKey starts the release phase (note-off), letting the voice ring
// out under its release envelopes rather than stopping immediately.
func (v *Voice) ReleaseKey() {
	v.keyDown = false
	v.volumeEnvelope.Gate(false)
	v.modulationEnvelope.Gate(false)
}

// Kill stops the voice immediately (used for exclusive-class stealing and
// all-notes-off), skipping the release tail.
func (v *Voice) Kill() {
	v.volumeEnvelope.Stop()
	v.modulationEnvelope.Stop()
	v.active = false
	v.done = true
}

// RenderInto renders up to frameCount samples into mixer starting at index
// 0, stopping early (and marking the voice inactive) the moment it goes
// silent, per spec §4.9/§4.10.
func (v *Voice) RenderInto(mixer *Mixer, frameCount int) {
	if !v.active {
		return
	}
	for i := 0; i < frameCount; i++ {
		if v.done {
			v.active = false
			return
		}
		f := v.renderSample()
		mixer.Add(i, f.Left, f.Right, f.ChorusSend, f.ReverbSend)
	}
}

func (v *Voice) renderSample() Frame {
	modLFOValue := v.modulatorLFO.GetNextValue()
	vibLFOValue := v.vibratoLFO.GetNextValue()
	modEnvValue := v.modulationEnvelope.GetNextValue()
	volEnvValue := v.volumeEnvelope.GetNextValue()

	if !v.volumeEnvelope.IsActive() {
		v.done = true
		return Frame{}
	}
	if v.volumeEnvelope.IsDelayed() {
		return Frame{}
	}

	pitchOffsetCents := 100.0*v.state.Modulated(sf2entity.CoarseTune) + v.state.Modulated(sf2entity.FineTune)
	modulationCents := modLFOValue*v.state.Modulated(sf2entity.ModulatorLFOToPitch) +
		vibLFOValue*v.state.Modulated(sf2entity.VibratoLFOToPitch) +
		modEnvValue*v.state.Modulated(sf2entity.ModulatorEnvelopeToPitch)
	increment := v.pitch.PhaseIncrement(pitchOffsetCents, modulationCents)

	raw := v.sampleGen.Next(increment, v.volumeEnvelope.IsActive(), v.keyDown)
	if v.sampleGen.IsDone() {
		v.done = true
	}

	cutoffCents := v.state.Modulated(sf2entity.InitialFilterCutoff) +
		modLFOValue*v.state.Modulated(sf2entity.ModulatorLFOToFilterCutoff) +
		modEnvValue*v.state.Modulated(sf2entity.ModulatorEnvelopeToFilterCutoff)
	resonanceCB := v.state.Modulated(sf2entity.InitialFilterResonance)
	filtered := v.filter.Transform(cutoffCents, resonanceCB, float64(raw))

	attenuation := sf2dsp.CentibelsToAttenuation(v.state.Modulated(sf2entity.InitialAttenuation))
	volumeEnvelopeCB := sf2dsp.MaximumAttenuationCentiBels * (1.0 - volEnvValue)
	lfoVolumeCB := -modLFOValue * v.state.Modulated(sf2entity.ModulatorLFOToVolume)
	gain := attenuation * sf2dsp.CentibelsToAttenuation(volumeEnvelopeCB+lfoVolumeCB)

	// Release doneness threshold: NoiseFloor, relaxed ten times once the
	// sample has looped. Both values are tunable choices.
	if v.volumeEnvelope.Stage() == sf2envelope.StageRelease {
		floor := sf2dsp.NoiseFloor
		if v.sampleGen.HasLooped() {
			floor *= 10
		}
		if gain < floor {
			v.done = true
			return Frame{}
		}
	}

	out := filtered * gain
	leftGain, rightGain := sf2dsp.PanLookup(v.state.Modulated(sf2entity.Pan))

	chorusSend := sf2dsp.TenthPercentageToNormalized(v.state.Modulated(sf2entity.ChorusEffectSend))
	reverbSend := sf2dsp.TenthPercentageToNormalized(v.state.Modulated(sf2entity.ReverbEffectSend))

	return Frame{
		Left:       float32(out * leftGain),
		Right:      float32(out * rightGain),
		ChorusSend: float32(chorusSend),
		ReverbSend: float32(reverbSend),
	}
}
