package audio

// EngineRenderer is the subset of sf2engine.Engine this package depends on,
// declared locally to avoid an import cycle (internal/sf2engine doesn't need
// to know about host audio plumbing).
type EngineRenderer interface {
	Render(dryLeft, dryRight, chorusLeft, chorusRight, reverbLeft, reverbRight []float32, frameCount int)
}

// EngineSource adapts an sf2engine.Engine to the SampleSource interface the
// stream reader pulls from, interleaving the engine's planar dry L/R output
// into the stereo frames StreamReader expects. A synth driven by live MIDI
// has no natural end, so EngineSource does not implement FinishingSource.
type EngineSource struct {
	engine      EngineRenderer
	left, right []float32
}

// NewEngineSource wraps engine for playback through a Player.
func NewEngineSource(engine EngineRenderer) *EngineSource {
	return &EngineSource{engine: engine}
}

func (s *EngineSource) ensureCapacity(frames int) {
	if cap(s.left) < frames {
		s.left = make([]float32, frames)
		s.right = make([]float32, frames)
	}
	s.left = s.left[:frames]
	s.right = s.right[:frames]
}

// Process renders len(dst)/2 stereo frames from the wrapped engine,
// interleaving them into dst.
func (s *EngineSource) Process(dst []float32) {
	frames := len(dst) / 2
	s.ensureCapacity(frames)
	s.engine.Render(s.left, s.right, nil, nil, nil, nil, frames)
	for i := 0; i < frames; i++ {
		dst[i*2] = s.left[i]
		dst[i*2+1] = s.right[i]
	}
}
