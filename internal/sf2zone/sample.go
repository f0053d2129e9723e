// Package sf2zone holds preset/instrument/zone resolution: matching a
// (key, velocity) pair against a preset's zones to produce per-voice
// configurations, and the generator-layering rules that apply a config to
// voice state.
package sf2zone

// SampleSource is an immutable collection of normalized float samples plus
// the loop/extent metadata from the sample header. Per spec §3, samples are
// normalized from 16-bit PCM (divided by 32768) with 46 zero-samples
// appended after the end so that cubic interpolation near the end of the
// sample is always well-defined without bounds checks in the hot path.
type SampleSource struct {
	Samples []float32

	// Header fields (absolute indices into Samples before voice-level
	// generator offsets are applied).
	Start, End           int
	StartLoop, EndLoop   int
	SampleRate           float64
	OriginalMIDIKey      int
	PitchCorrection      int // cents
}

// TrailingZeroCount is the number of zero samples SF2.01 §7.10 requires
// appended after a sample's End index.
const TrailingZeroCount = 46

// NewSampleSource builds a SampleSource from raw normalized samples,
// appending the required trailing zeros if the caller hasn't already.
func NewSampleSource(samples []float32, start, end, startLoop, endLoop int, sampleRate float64, originalMIDIKey, pitchCorrection int) *SampleSource {
	needed := end + TrailingZeroCount
	if len(samples) < needed {
		padded := make([]float32, needed)
		copy(padded, samples)
		samples = padded
	}
	return &SampleSource{
		Samples: samples, Start: start, End: end,
		StartLoop: startLoop, EndLoop: endLoop,
		SampleRate: sampleRate, OriginalMIDIKey: originalMIDIKey,
		PitchCorrection: pitchCorrection,
	}
}

// IsUnpitched reports whether this sample should ignore event-key-driven
// pitch changes (original MIDI key of 255 in the SF2 file, per spec §4.7).
func (s *SampleSource) IsUnpitched() bool { return s.OriginalMIDIKey == 255 }
