package sf2voice

import (
	"math"
	"testing"

	"github.com/cbegin/sf2synth-go/internal/sf2entity"
	"github.com/cbegin/sf2synth-go/internal/sf2midi"
	"github.com/cbegin/sf2synth-go/internal/sf2zone"
)

func sineSample(n int, freq, sampleRate float64) *sf2zone.SampleSource {
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(math.Sin(2 * math.Pi * freq * float64(i) / sampleRate))
	}
	return sf2zone.NewSampleSource(samples, 0, n-1, 0, 0, sampleRate, 60, 0)
}

func simpleVoiceConfig(sample *sf2zone.SampleSource, key, velocity int) sf2zone.VoiceConfig {
	instZone := sf2zone.NewZone(
		[]sf2zone.GeneratorEntry{
			{Index: sf2entity.DelayVolumeEnvelope, Amount: sf2entity.AmountOf(-12000)},  // effectively instant
			{Index: sf2entity.AttackVolumeEnvelope, Amount: sf2entity.AmountOf(-12000)}, // effectively instant
			{Index: sf2entity.HoldVolumeEnvelope, Amount: sf2entity.AmountOf(-12000)},
			{Index: sf2entity.DecayVolumeEnvelope, Amount: sf2entity.AmountOf(-12000)},
			{Index: sf2entity.SustainVolumeEnvelope, Amount: sf2entity.AmountOf(0)}, // full sustain, no attenuation
			{Index: sf2entity.ReleaseVolumeEnvelope, Amount: sf2entity.AmountOf(-1200)}, // ~0.5s release
			{Index: sf2entity.SampleID, Amount: sf2entity.AmountOf(0)},
		},
		nil, sf2entity.SampleID,
	)
	presetZone := sf2zone.NewZone(
		[]sf2zone.GeneratorEntry{{Index: sf2entity.Instrument, Amount: sf2entity.AmountOf(0)}},
		nil, sf2entity.Instrument,
	)
	return sf2zone.VoiceConfig{
		PresetZone:     presetZone,
		InstrumentZone: instZone,
		Sample:         sample,
		Key:            key,
		Velocity:       velocity,
	}
}

func TestVoiceConfigureAndRenderProducesNonSilentOutput(t *testing.T) {
	const sampleRate = 44100.0
	sample := sineSample(8192, 440, sampleRate)

	v := NewVoice(0, sampleRate, InterpolateCubic4thOrder)
	v.Configure(simpleVoiceConfig(sample, 69, 100), sf2midi.NewChannelState())

	mixer := &Mixer{DryLeft: make([]float32, 512), DryRight: make([]float32, 512)}
	v.RenderInto(mixer, 512)

	var peak float32
	for _, s := range mixer.DryLeft {
		if s > peak {
			peak = s
		}
		if -s > peak {
			peak = -s
		}
	}
	if peak == 0 {
		t.Fatal("expected nonzero rendered output")
	}
	if !v.IsActive() {
		t.Fatal("expected voice still active after one short block")
	}
}

func TestVoiceReleaseEventuallyGoesDone(t *testing.T) {
	const sampleRate = 8000.0 // low rate keeps the test fast
	sample := sineSample(4096, 440, sampleRate)

	v := NewVoice(0, sampleRate, InterpolateLinear)
	v.Configure(simpleVoiceConfig(sample, 69, 100), sf2midi.NewChannelState())
	v.ReleaseKey()

	mixer := &Mixer{DryLeft: make([]float32, 1), DryRight: make([]float32, 1)}
	done := false
	for i := 0; i < sampleRate*5; i++ {
		v.RenderInto(mixer, 1)
		if !v.IsActive() {
			done = true
			break
		}
	}
	if !done {
		t.Fatal("expected released voice to become inactive within 5 seconds")
	}
}

func TestVoiceKillStopsImmediately(t *testing.T) {
	const sampleRate = 44100.0
	sample := sineSample(8192, 440, sampleRate)

	v := NewVoice(0, sampleRate, InterpolateCubic4thOrder)
	v.Configure(simpleVoiceConfig(sample, 69, 100), sf2midi.NewChannelState())
	v.Kill()

	if v.IsActive() {
		t.Fatal("expected voice inactive immediately after Kill")
	}
	if !v.IsDone() {
		t.Fatal("expected voice done immediately after Kill")
	}
}
