package sf2

import (
	"math"

	"github.com/cbegin/sf2synth-go/internal/sf2entity"
	"github.com/cbegin/sf2synth-go/internal/sf2zone"
)

const testSampleRate = 8000.0

func sineSource(n int, freq float64) *sf2zone.SampleSource {
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(math.Sin(2 * math.Pi * freq * float64(i) / testSampleRate))
	}
	return sf2zone.NewSampleSource(samples, 0, n-1, 0, 0, testSampleRate, 60, 0)
}

// fastEnvelopeGenerators reaches full volume almost immediately so a short
// test render window captures nonzero output.
func fastEnvelopeGenerators() []sf2zone.GeneratorEntry {
	return []sf2zone.GeneratorEntry{
		{Index: sf2entity.DelayVolumeEnvelope, Amount: sf2entity.AmountOf(-12000)},
		{Index: sf2entity.AttackVolumeEnvelope, Amount: sf2entity.AmountOf(-12000)},
		{Index: sf2entity.HoldVolumeEnvelope, Amount: sf2entity.AmountOf(-12000)},
		{Index: sf2entity.DecayVolumeEnvelope, Amount: sf2entity.AmountOf(-12000)},
		{Index: sf2entity.SustainVolumeEnvelope, Amount: sf2entity.AmountOf(0)},
		{Index: sf2entity.ReleaseVolumeEnvelope, Amount: sf2entity.AmountOf(-2400)},
	}
}

// simpleCollection builds a one-preset, one-instrument collection with a
// single whole-keyboard zone, enough to exercise the public facade.
func simpleCollection() sf2zone.PresetCollection {
	gens := append(fastEnvelopeGenerators(), sf2zone.GeneratorEntry{Index: sf2entity.SampleID, Amount: sf2entity.AmountOf(0)})
	instZone := sf2zone.NewZone(gens, nil, sf2entity.SampleID)
	inst := sf2zone.NewInstrument("lead", []sf2zone.Zone{instZone})

	presetZone := sf2zone.NewZone(
		[]sf2zone.GeneratorEntry{{Index: sf2entity.Instrument, Amount: sf2entity.AmountOf(0)}},
		nil, sf2entity.Instrument,
	)
	preset := sf2zone.NewPreset("lead", 0, 0, []sf2zone.Zone{presetZone})

	return sf2zone.PresetCollection{
		Presets:     []sf2zone.Preset{preset},
		Instruments: []sf2zone.Instrument{inst},
		Samples:     []*sf2zone.SampleSource{sineSource(4096, 440)},
	}
}
