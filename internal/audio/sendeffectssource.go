package audio

import "github.com/cbegin/sf2synth-go/internal/effects"

// SendEffectsSource adapts an sf2engine.Engine to SampleSource like
// EngineSource, but additionally drives the chorus/reverb send buses
// through an effects.Chain, sums the processed result back into the dry
// output, and then runs the combined mix through an optional master insert
// chain. spec.md's Mixer component only defines bus accumulation (spec
// §4.10); this gives those two buses an actual effect to feed and adds a
// post-mix insert point, the way a real front end would.
type SendEffectsSource struct {
	engine         EngineRenderer
	chorus, reverb *effects.Chain
	master         *effects.Chain

	left, right             []float32
	chorusLeft, chorusRight []float32
	reverbLeft, reverbRight []float32
}

// NewSendEffectsSource wraps engine for playback through a Player, applying
// chorus and reverb to their respective send buses and master to the final
// mixed signal. Any chain may be nil to disable that stage's processing.
func NewSendEffectsSource(engine EngineRenderer, chorus, reverb, master *effects.Chain) *SendEffectsSource {
	return &SendEffectsSource{engine: engine, chorus: chorus, reverb: reverb, master: master}
}

func (s *SendEffectsSource) ensureCapacity(frames int) {
	grow := func(buf []float32) []float32 {
		if cap(buf) < frames {
			buf = make([]float32, frames)
		}
		return buf[:frames]
	}
	s.left = grow(s.left)
	s.right = grow(s.right)
	s.chorusLeft = grow(s.chorusLeft)
	s.chorusRight = grow(s.chorusRight)
	s.reverbLeft = grow(s.reverbLeft)
	s.reverbRight = grow(s.reverbRight)
}

// Process renders len(dst)/2 stereo frames, mixing the chorus- and
// reverb-processed send buses back on top of the dry signal.
func (s *SendEffectsSource) Process(dst []float32) {
	frames := len(dst) / 2
	s.ensureCapacity(frames)
	s.engine.Render(s.left, s.right, s.chorusLeft, s.chorusRight, s.reverbLeft, s.reverbRight, frames)

	for i := 0; i < frames; i++ {
		l, r := s.left[i], s.right[i]
		if s.chorus != nil {
			cl, cr := s.chorus.Process(s.chorusLeft[i], s.chorusRight[i])
			l += cl
			r += cr
		}
		if s.reverb != nil {
			rl, rr := s.reverb.Process(s.reverbLeft[i], s.reverbRight[i])
			l += rl
			r += rr
		}
		if s.master != nil {
			l, r = s.master.Process(l, r)
		}
		dst[i*2] = l
		dst[i*2+1] = r
	}
}
