package sf2

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/cbegin/sf2synth-go/internal/sf2engine"
	"github.com/cbegin/sf2synth-go/internal/sf2zone"
)

// Event schedules a raw MIDI message to be handled at a given frame offset
// during an offline render.
type Event struct {
	AtFrame int
	MIDI    []byte
}

// RenderOffline renders seconds of audio from collection/presetIndex into an
// interleaved stereo float32 buffer, dispatching events at their scheduled
// frame offsets. Grounded on offline.go's RenderSamples family, but driven
// by a caller-supplied MIDI event script rather than a parsed score, since
// sequencing a score is out of scope for this module (only the live MIDI
// core is in scope).
func RenderOffline(collection sf2zone.PresetCollection, presetIndex int, sampleRate int, seconds float64, events []Event) []float32 {
	engine := sf2engine.NewEngine(float64(sampleRate), DefaultPoolSize, InterpolateCubic4thOrder)
	_ = engine.Load(collection, presetIndex)

	ordered := make([]Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].AtFrame < ordered[j].AtFrame })

	frames := int(float64(sampleRate) * seconds)
	left := make([]float32, frames)
	right := make([]float32, frames)

	pos := 0
	for _, ev := range ordered {
		at := ev.AtFrame
		if at < pos {
			at = pos
		}
		if at > frames {
			at = frames
		}
		if at > pos {
			engine.Render(left[pos:at], right[pos:at], nil, nil, nil, nil, at-pos)
			pos = at
		}
		engine.HandleMIDI(ev.MIDI)
	}
	if pos < frames {
		engine.Render(left[pos:], right[pos:], nil, nil, nil, nil, frames-pos)
	}

	out := make([]float32, frames*2)
	for i := 0; i < frames; i++ {
		out[i*2] = left[i]
		out[i*2+1] = right[i]
	}
	return out
}

// EncodeWAVFloat32LE wraps interleaved float32 PCM samples in a minimal
// IEEE-float WAV container. Kept verbatim from the teacher's offline.go: a
// generic format encoder with no dependency on the synthesis model.
func EncodeWAVFloat32LE(samples []float32, sampleRate int, channels int) []byte {
	dataSize := len(samples) * 4
	byteRate := sampleRate * channels * 4
	blockAlign := channels * 4
	chunkSize := 36 + dataSize
	out := make([]byte, 44+dataSize)
	copy(out[0:], []byte("RIFF"))
	binary.LittleEndian.PutUint32(out[4:], uint32(chunkSize))
	copy(out[8:], []byte("WAVE"))
	copy(out[12:], []byte("fmt "))
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 3)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], 32)
	copy(out[36:], []byte("data"))
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[44+i*4:], math.Float32bits(s))
	}
	return out
}
