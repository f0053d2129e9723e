// Package sf2 is the public facade over the SF2 sample-based polyphonic
// synthesizer core: a live Synth driven by MIDI events and streamed to the
// host audio device, plus an offline render entry point for tests and
// batch rendering. Loading and parsing an actual .sf2 file is out of scope
// (spec.md Non-goals apply to the whole module); callers hand in an
// already-parsed sf2zone.PresetCollection.
package sf2

import (
	"sync"

	intaudio "github.com/cbegin/sf2synth-go/internal/audio"
	"github.com/cbegin/sf2synth-go/internal/effects"
	"github.com/cbegin/sf2synth-go/internal/sf2engine"
	"github.com/cbegin/sf2synth-go/internal/sf2voice"
	"github.com/cbegin/sf2synth-go/internal/sf2zone"
)

// Interpolator selects the resampling algorithm voices use.
type Interpolator = sf2voice.Interpolator

const (
	InterpolateLinear        = sf2voice.InterpolateLinear
	InterpolateCubic4thOrder = sf2voice.InterpolateCubic4thOrder
)

// DefaultPoolSize is used when WithPoolSize is not given.
const DefaultPoolSize = 64

type config struct {
	poolSize     int
	interpolator Interpolator
}

func defaultConfig() config {
	return config{poolSize: DefaultPoolSize, interpolator: InterpolateCubic4thOrder}
}

// Option configures a Synth at construction time.
type Option func(*config)

// WithPoolSize sets the fixed voice pool size (default DefaultPoolSize).
func WithPoolSize(n int) Option {
	return func(c *config) { c.poolSize = n }
}

// WithInterpolator selects the sample resampling algorithm (default cubic
// 4th-order / Hermite).
func WithInterpolator(i Interpolator) Option {
	return func(c *config) { c.interpolator = i }
}

// Synth is a ready-to-play SF2 synthesizer: a bounded voice pool engine plus
// the host audio plumbing to stream its output live.
type Synth struct {
	mu         sync.Mutex
	engine     *sf2engine.Engine
	audio      *intaudio.Player
	sampleRate int

	chorus, reverb, master *effects.Chain
}

// New constructs a Synth at the given sample rate with no preset collection
// loaded yet; call Load before NoteOn will produce any sound.
func New(sampleRate int, opts ...Option) *Synth {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Synth{
		engine:     sf2engine.NewEngine(float64(sampleRate), cfg.poolSize, cfg.interpolator),
		sampleRate: sampleRate,
	}
}

// Load installs an already-parsed preset collection and selects the preset
// at index (-1 selects none).
func (s *Synth) Load(collection sf2zone.PresetCollection, index int) error {
	return s.engine.Load(collection, index)
}

// UsePreset selects a preset by index within the currently loaded collection.
func (s *Synth) UsePreset(index int) error { return s.engine.UsePreset(index) }

// UsePresetByBankProgram selects a preset by (bank, program).
func (s *Synth) UsePresetByBankProgram(bank, program int) error {
	return s.engine.UsePresetByBankProgram(bank, program)
}

// NoteOn starts sounding (key, velocity) against the active preset.
func (s *Synth) NoteOn(key, velocity int) { s.engine.NoteOn(key, velocity) }

// NoteOff releases every voice started by key.
func (s *Synth) NoteOff(key int) { s.engine.NoteOff(key) }

// AllOff immediately silences every sounding voice.
func (s *Synth) AllOff() { s.engine.AllOff() }

// HandleMIDI decodes and dispatches one raw MIDI message (channel message or
// load-and-select SysEx frame).
func (s *Synth) HandleMIDI(data []byte) { s.engine.HandleMIDI(data) }

// Parameters returns the addressable generator/engine parameter surface.
func (s *Synth) Parameters() *sf2engine.Parameters { return s.engine.Parameters() }

// ActiveVoiceCount reports how many voices are currently sounding.
func (s *Synth) ActiveVoiceCount() int { return s.engine.ActiveVoiceCount() }

// SetSysExLoader wires the resolver used to satisfy a load-and-select SysEx
// request (F0 7E 00 bb pp <base64-path> F7). Parsing an SF2 file is out of
// scope for this module, so the caller supplies whatever parser it uses.
func (s *Synth) SetSysExLoader(loader func(path string) (sf2zone.PresetCollection, error)) {
	s.engine.Loader = loader
}

// SetSendEffects wires the chorus and reverb send buses (spec §4.10's
// Mixer accumulates them but defines no processing of its own) through the
// given effect chains before the next Play. Either may be nil to leave that
// bus unprocessed. Has no effect on a Play already in progress; call before
// Play or after Stop.
func (s *Synth) SetSendEffects(chorus, reverb *effects.Chain) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chorus, s.reverb = chorus, reverb
}

// SetMasterEffects wires a chain through the final mixed output (after the
// chorus/reverb sends have been summed back in), the way a front end's
// master insert bus processes the whole mix rather than a single send. nil
// leaves the master bus unprocessed. Has no effect on a Play already in
// progress; call before Play or after Stop.
func (s *Synth) SetMasterEffects(master *effects.Chain) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.master = master
}

// Play starts streaming this synth's live render output to the host audio
// device. A no-op if playback is already active.
func (s *Synth) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.audio != nil {
		return nil
	}
	var source intaudio.SampleSource
	if s.chorus != nil || s.reverb != nil || s.master != nil {
		source = intaudio.NewSendEffectsSource(s.engine, s.chorus, s.reverb, s.master)
	} else {
		source = intaudio.NewEngineSource(s.engine)
	}
	player, err := intaudio.NewPlayer(s.sampleRate, source)
	if err != nil {
		return err
	}
	s.audio = player
	s.audio.Play()
	return nil
}

// Pause suspends host audio output without tearing down the stream.
func (s *Synth) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.audio != nil {
		s.audio.Pause()
	}
}

// Resume resumes host audio output after Pause.
func (s *Synth) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.audio != nil {
		s.audio.Play()
	}
}

// Stop tears down host audio playback. Safe to call when not playing.
func (s *Synth) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.audio == nil {
		return nil
	}
	err := s.audio.Stop()
	s.audio = nil
	return err
}
