package sf2engine

import (
	"fmt"
	"sync"

	"github.com/cbegin/sf2synth-go/internal/sf2midi"
	"github.com/cbegin/sf2synth-go/internal/sf2voice"
	"github.com/cbegin/sf2synth-go/internal/sf2zone"
)

// Engine is the top-level synthesizer: a bounded voice pool, the currently
// loaded preset collection, one MIDI channel's live controller state, and
// the render loop that drives everything into a Mixer each block.
//
// Load and UsePreset are control-plane operations guarded by mu; they may
// block (e.g. while a front end parses a new bank) and must never be called
// concurrently with Render, which never blocks or allocates (spec §5).
// NoteOn/NoteOff/AllOff/Render/HandleMIDI all run on the render thread;
// only HandleMIDI's program-change and SysEx-load paths take mu, since they
// change the selected preset.
//
// Grounded in Render/Engine/Engine.hpp.
type Engine struct {
	sampleRate float64

	mu           sync.Mutex
	collection   sf2zone.PresetCollection
	activePreset int

	voices   []*sf2voice.Voice
	freeList []int
	lru      *lru

	channelState *sf2midi.ChannelState
	mixer        sf2voice.Mixer

	params *Parameters

	// Loader resolves a SysEx load-and-select request's decoded path into a
	// parsed preset collection. SF2 file parsing itself is out of scope
	// (spec Non-goals); a caller that never wires a Loader simply has
	// SysEx-driven loads silently ignored, same as an unresolved path.
	Loader func(path string) (sf2zone.PresetCollection, error)
}

// NewEngine constructs an engine with a fixed-size voice pool, preallocating
// every voice, the free list, and the LRU up front so NoteOn/NoteOff/Render
// never allocate (spec §5, §8's pool-size invariant).
func NewEngine(sampleRate float64, poolSize int, interpolator sf2voice.Interpolator) *Engine {
	voices := make([]*sf2voice.Voice, poolSize)
	freeList := make([]int, 0, poolSize)
	for i := 0; i < poolSize; i++ {
		voices[i] = sf2voice.NewVoice(i, sampleRate, interpolator)
		freeList = append(freeList, poolSize-1-i)
	}
	e := &Engine{
		sampleRate:   sampleRate,
		activePreset: -1,
		voices:       voices,
		freeList:     freeList,
		lru:          newLRU(poolSize),
		channelState: sf2midi.NewChannelState(),
	}
	e.params = newParameters(e)
	return e
}

// Parameters returns the engine's addressable parameter surface (spec §6).
func (e *Engine) Parameters() *Parameters { return e.params }

// PoolSize returns the fixed number of voice slots.
func (e *Engine) PoolSize() int { return len(e.voices) }

// ActiveVoiceCount reports how many voice slots are currently sounding,
// backing the activeVoiceCount meter parameter.
func (e *Engine) ActiveVoiceCount() int { return e.lru.Len() }

// Load installs an already-parsed preset collection and selects the preset
// at index, stopping every sounding voice first. Parsing an SF2 file itself
// is out of scope (spec Non-goals); callers parse off the render thread and
// hand the engine the resulting collection.
func (e *Engine) Load(collection sf2zone.PresetCollection, index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.allOffLocked()
	e.collection = collection
	return e.usePresetLocked(index)
}

// UsePreset selects a preset by index within the currently loaded
// collection. An out-of-range index deselects the active preset ("no
// preset") rather than returning an error, per spec §4.1.
func (e *Engine) UsePreset(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.allOffLocked()
	return e.usePresetLocked(index)
}

// UsePresetByBankProgram selects a preset by (bank, program). An unmatched
// pair deselects the active preset, same as UsePreset.
func (e *Engine) UsePresetByBankProgram(bank, program int) error {
	return e.UsePreset(e.collection.IndexOf(bank, program))
}

func (e *Engine) usePresetLocked(index int) error {
	if index < 0 || index >= len(e.collection.Presets) {
		e.activePreset = -1
		return nil
	}
	e.activePreset = index
	return nil
}

func (e *Engine) allOffLocked() {
	e.lru.ForEach(func(i int) {
		e.voices[i].Kill()
		e.lru.Remove(i)
		e.freeList = append(e.freeList, i)
	})
}

// AllOff immediately kills every sounding voice with no release tail,
// returning them all to the free list.
func (e *Engine) AllOff() {
	e.lru.ForEach(func(i int) {
		e.voices[i].Kill()
		e.lru.Remove(i)
		e.freeList = append(e.freeList, i)
	})
}

// NoteOn starts one voice per matched preset/instrument zone pair for
// (key, velocity). A no-op if no preset is selected. Per spec §4.1: voices
// already sounding in a matched config's exclusive class are stopped first,
// then one voice is allocated per config (free list first, else stealing
// the least-recently-started active voice).
func (e *Engine) NoteOn(key, velocity int) {
	if e.activePreset < 0 {
		return
	}
	configs := e.collection.Find(e.activePreset, key, velocity)
	for _, cfg := range configs {
		if cfg.ExclusiveClass != 0 {
			e.stopExclusiveClass(cfg.ExclusiveClass)
		}
		idx, ok := e.allocateVoice()
		if !ok {
			continue
		}
		e.voices[idx].SetGlobalOverrides(e.params.GeneratorOverrides())
		e.voices[idx].Configure(cfg, e.channelState)
		e.lru.Add(idx)
	}
}

func (e *Engine) stopExclusiveClass(class int) {
	e.lru.ForEach(func(i int) {
		if e.voices[i].ExclusiveClass() == class {
			e.voices[i].Kill()
			e.lru.Remove(i)
			e.freeList = append(e.freeList, i)
		}
	})
}

func (e *Engine) allocateVoice() (int, bool) {
	if n := len(e.freeList); n > 0 {
		idx := e.freeList[n-1]
		e.freeList = e.freeList[:n-1]
		return idx, true
	}
	return e.lru.TakeOldest()
}

// NoteOff starts the release phase on every active voice whose initiating
// key matches key.
func (e *Engine) NoteOff(key int) {
	e.lru.ForEach(func(i int) {
		if e.voices[i].InitiatingKey() == key {
			e.voices[i].ReleaseKey()
		}
	})
}

// ChannelStateChanged is the internal hook spec §4.1 names for the
// "recompute modulator-dependent state" notification triggered by CC,
// pitch-bend, and pressure events. Because Modulator.Value and
// State.Modulated both pull live controller state from ChannelState on
// every render tick rather than caching it (see internal/sf2voice), every
// active voice already reflects the new state on its very next sample; this
// method exists only to document that the notification is satisfied by
// construction and performs no work.
func (e *Engine) ChannelStateChanged() {}

// Render fills dryLeft/dryRight with up to frameCount samples by advancing
// every active voice in LRU order; chorusLeft/Right and reverbLeft/Right
// may be nil if the caller doesn't wire those send buses. Voices that go
// silent mid-block are retired to the free list before Render returns.
// Never allocates, never blocks (spec §5); this function never fails.
func (e *Engine) Render(dryLeft, dryRight, chorusLeft, chorusRight, reverbLeft, reverbRight []float32, frameCount int) {
	e.mixer.DryLeft, e.mixer.DryRight = dryLeft, dryRight
	e.mixer.ChorusLeft, e.mixer.ChorusRight = chorusLeft, chorusRight
	e.mixer.ReverbLeft, e.mixer.ReverbRight = reverbLeft, reverbRight
	e.mixer.Reset(frameCount)

	e.lru.ForEach(func(i int) {
		e.voices[i].RenderInto(&e.mixer, frameCount)
		if e.voices[i].IsDone() {
			e.lru.Remove(i)
			e.freeList = append(e.freeList, i)
		}
	})
}

// HandleMIDI decodes one MIDI message (a 1-3 byte channel message, or a
// recognized load-and-select SysEx frame) and dispatches it.
func (e *Engine) HandleMIDI(data []byte) {
	if len(data) > 0 && data[0] == 0xF0 {
		if ev, ok := sf2midi.DecodeSysExLoad(data); ok {
			e.handleSysExLoad(ev)
		}
		return
	}
	e.dispatch(sf2midi.DecodeChannelMessage(data))
}

func (e *Engine) dispatch(ev sf2midi.Event) {
	switch ev.Kind {
	case sf2midi.EventNoteOn:
		e.NoteOn(ev.Key, ev.Velocity)
	case sf2midi.EventNoteOff:
		e.NoteOff(ev.Key)
	case sf2midi.EventPolyPressure:
		e.channelState.SetNotePressure(ev.Key, ev.Value)
		e.ChannelStateChanged()
	case sf2midi.EventControlChange:
		e.channelState.SetContinuousControllerValue(ev.CC, ev.Value)
		e.ChannelStateChanged()
	case sf2midi.EventProgramChange:
		_ = e.UsePresetByBankProgram(e.channelState.Bank(), ev.Program)
	case sf2midi.EventChannelPressure:
		e.channelState.SetChannelPressure(ev.Value)
		e.ChannelStateChanged()
	case sf2midi.EventPitchBend:
		e.channelState.SetPitchWheelValue(ev.Value)
		e.ChannelStateChanged()
	}
}

func (e *Engine) handleSysExLoad(ev sf2midi.Event) {
	if e.Loader == nil {
		return
	}
	path, err := decodeSysExPath(ev.Payload)
	if err != nil {
		return
	}
	collection, err := e.Loader(path)
	if err != nil {
		return
	}
	bank, program := ev.Bank/128, ev.Bank%128
	e.mu.Lock()
	e.allOffLocked()
	e.collection = collection
	_ = e.usePresetLocked(e.collection.IndexOf(bank, program))
	e.mu.Unlock()
}

// ActivePreset returns the index of the currently selected preset, or -1 if
// none is selected.
func (e *Engine) ActivePreset() int { return e.activePreset }

// Collection returns the currently loaded preset collection.
func (e *Engine) Collection() sf2zone.PresetCollection { return e.collection }

// ChannelState exposes the engine's live MIDI controller state, primarily
// for tests and diagnostic front ends.
func (e *Engine) ChannelState() *sf2midi.ChannelState { return e.channelState }

var errEmptyPayload = fmt.Errorf("sf2engine: empty SysEx load payload")
