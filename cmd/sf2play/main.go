package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cbegin/sf2synth-go/internal/sf2entity"
	"github.com/cbegin/sf2synth-go/internal/sf2zone"
	"github.com/cbegin/sf2synth-go/sf2"
)

const defaultNotes = "60,64,67,72" // C major arpeggio

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 48000, "output sample rate")
		poolSize   = flag.Int("pool-size", 64, "voice pool size")
		notes      = flag.String("notes", defaultNotes, "comma-separated MIDI note numbers to arpeggiate")
		noteMS     = flag.Int("note-ms", 400, "milliseconds each note sounds before note-off")
		velocity   = flag.Int("velocity", 100, "MIDI velocity for each note-on")
		wavOut     = flag.String("wav", "", "render offline to this WAV file instead of live playback")
		chorus     = flag.Bool("chorus", false, "process the chorus send bus through a chorus effect")
		reverb     = flag.Bool("reverb", false, "process the reverb send bus through a reverb effect")
		distortion = flag.Bool("distortion", false, "run the master mix through a distortion stage")
		compressor = flag.Bool("compressor", false, "run the master mix through a compressor stage")
		delay      = flag.Bool("delay", false, "run the master mix through an echo/delay stage")
	)
	flag.Parse()

	keys, err := parseNotes(*notes)
	if err != nil {
		log.Fatal(err)
	}

	collection := builtinTestTone()

	if *wavOut != "" {
		if err := renderToWAV(collection, *sampleRate, keys, *noteMS, *velocity, *wavOut); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", *wavOut)
		return
	}

	synth := sf2.New(*sampleRate, sf2.WithPoolSize(*poolSize))
	if err := synth.Load(collection, 0); err != nil {
		log.Fatal(err)
	}
	if *chorus || *reverb {
		var chorusChain, reverbChain *sf2.EffectChain
		if *chorus {
			// -7271 time-cents ~= 15ms, -9559 time-cents ~= 4ms, -4024 LFO
			// frequency-cents ~= 0.8Hz, 300 cB wet ~= 97% wet mix.
			chorusChain = sf2.NewEffectChain(sf2.NewChorus(*sampleRate, -7271, 0.3, -9559, -4024, 300))
		}
		if *reverb {
			reverbChain = sf2.NewEffectChain(sf2.NewReverb(*sampleRate, 0.5, 0.7, 400))
		}
		synth.SetSendEffects(chorusChain, reverbChain)
	}
	if *distortion || *compressor || *delay {
		master := sf2.NewEffectChain()
		if *distortion {
			master.Add(sf2.NewDistortion(*sampleRate, 240, 0, 0))
		}
		if *compressor {
			// -7200 time-cents ~= 16ms attack, -4800 time-cents ~= 62ms release.
			master.Add(sf2.NewCompressor(*sampleRate, 200, 4, -7200, -4800, 100))
		}
		if *delay {
			// -6386 time-cents ~= 25ms.
			master.Add(sf2.NewDelay(*sampleRate, -6386, 0.35, 0.2, 350))
		}
		synth.SetMasterEffects(master)
	}
	if err := synth.Play(); err != nil {
		log.Fatal(err)
	}
	for _, key := range keys {
		synth.NoteOn(key, *velocity)
		time.Sleep(time.Duration(*noteMS) * time.Millisecond)
		synth.NoteOff(key)
	}
	synth.AllOff()
	synth.Stop()
}

func parseNotes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	keys := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid note %q: %w", p, err)
		}
		keys = append(keys, n)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("no notes given")
	}
	return keys, nil
}

func renderToWAV(collection sf2zone.PresetCollection, sampleRate int, keys []int, noteMS int, velocity int, path string) error {
	var events []sf2.Event
	frame := 0
	framesPerNote := sampleRate * noteMS / 1000
	for _, key := range keys {
		events = append(events, sf2.Event{AtFrame: frame, MIDI: []byte{0x90, byte(key), byte(velocity)}})
		events = append(events, sf2.Event{AtFrame: frame + framesPerNote, MIDI: []byte{0x80, byte(key), 0}})
		frame += framesPerNote
	}
	seconds := float64(frame)/float64(sampleRate) + 0.5
	samples := sf2.RenderOffline(collection, 0, sampleRate, seconds, events)
	wav := sf2.EncodeWAVFloat32LE(samples, sampleRate, 2)
	return os.WriteFile(path, wav, 0o644)
}

// builtinTestTone stands in for a parsed .sf2 file: one preset over one
// looped sine sample. Parsing an actual soundfont is out of scope for this
// module (spec.md Non-goals), so this demo ships its own tone instead of
// requiring one.
func builtinTestTone() sf2zone.PresetCollection {
	const sampleRate = 44100.0
	n := int(sampleRate)
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*220*float64(i)/sampleRate))
	}
	source := sf2zone.NewSampleSource(samples, 0, n-1, 0, n-1, sampleRate, 57, 0)

	gens := []sf2zone.GeneratorEntry{
		{Index: sf2entity.SampleModes, Amount: sf2entity.AmountOf(1)}, // loop continuously
		{Index: sf2entity.AttackVolumeEnvelope, Amount: sf2entity.AmountOf(-1200)},
		{Index: sf2entity.DecayVolumeEnvelope, Amount: sf2entity.AmountOf(2400)},
		{Index: sf2entity.SustainVolumeEnvelope, Amount: sf2entity.AmountOf(200)},
		{Index: sf2entity.ReleaseVolumeEnvelope, Amount: sf2entity.AmountOf(1200)},
		{Index: sf2entity.SampleID, Amount: sf2entity.AmountOf(0)},
	}
	instZone := sf2zone.NewZone(gens, nil, sf2entity.SampleID)
	inst := sf2zone.NewInstrument("test tone", []sf2zone.Zone{instZone})

	presetZone := sf2zone.NewZone(
		[]sf2zone.GeneratorEntry{{Index: sf2entity.Instrument, Amount: sf2entity.AmountOf(0)}},
		nil, sf2entity.Instrument,
	)
	preset := sf2zone.NewPreset("test tone", 0, 0, []sf2zone.Zone{presetZone})

	return sf2zone.PresetCollection{
		Presets:     []sf2zone.Preset{preset},
		Instruments: []sf2zone.Instrument{inst},
		Samples:     []*sf2zone.SampleSource{source},
	}
}
