package sf2

import (
	"testing"

	"github.com/cbegin/sf2synth-go/internal/sf2entity"
	"github.com/cbegin/sf2synth-go/internal/sf2zone"
)

func TestSynthLoadAndNoteOnStartsVoice(t *testing.T) {
	s := New(int(testSampleRate), WithPoolSize(4), WithInterpolator(InterpolateLinear))
	if err := s.Load(simpleCollection(), 0); err != nil {
		t.Fatalf("Load: %v", err)
	}

	s.NoteOn(60, 100)
	if got := s.ActiveVoiceCount(); got != 1 {
		t.Fatalf("expected 1 active voice, got %d", got)
	}

	s.NoteOff(60)
	s.AllOff()
	if got := s.ActiveVoiceCount(); got != 0 {
		t.Fatalf("expected 0 active voices after all-off, got %d", got)
	}
}

func TestSynthUsePresetByBankProgram(t *testing.T) {
	s := New(int(testSampleRate))
	if err := s.Load(simpleCollection(), -1); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := s.UsePresetByBankProgram(0, 0); err != nil {
		t.Fatalf("UsePresetByBankProgram: %v", err)
	}
	s.NoteOn(60, 100)
	if got := s.ActiveVoiceCount(); got != 1 {
		t.Fatalf("expected note-on to start a voice after selecting by bank/program, got %d active", got)
	}
}

func TestSynthHandleMIDI(t *testing.T) {
	s := New(int(testSampleRate))
	if err := s.Load(simpleCollection(), 0); err != nil {
		t.Fatalf("Load: %v", err)
	}
	s.HandleMIDI([]byte{0x90, 64, 100})
	if got := s.ActiveVoiceCount(); got != 1 {
		t.Fatalf("expected 1 active voice after MIDI note-on, got %d", got)
	}
	s.HandleMIDI([]byte{0x80, 64, 0})
	s.AllOff()
}

func TestSynthParametersSurface(t *testing.T) {
	s := New(int(testSampleRate))
	if err := s.Load(simpleCollection(), 0); err != nil {
		t.Fatalf("Load: %v", err)
	}
	p := s.Parameters()
	if !p.Set(int(sf2entity.InitialAttenuation), 1440) {
		t.Fatal("expected Set to succeed for a generator address")
	}
	if v, ok := p.Get(int(sf2entity.InitialAttenuation)); !ok || v != 1440 {
		t.Fatalf("expected readback 1440, got %v (ok=%v)", v, ok)
	}
}

func TestSynthSysExLoader(t *testing.T) {
	s := New(int(testSampleRate))
	var requestedPath string
	s.SetSysExLoader(func(path string) (sf2zone.PresetCollection, error) {
		requestedPath = path
		return simpleCollection(), nil
	})

	// F0 7E 00 bb pp <base64url path> F7, bank=0 program=0, path "x"
	// base64url("x") without padding is "eA".
	msg := append([]byte{0xF0, 0x7E, 0x00, 0x00, 0x00}, []byte("eA")...)
	msg = append(msg, 0xF7)
	s.HandleMIDI(msg)

	if requestedPath != "x" {
		t.Fatalf("expected loader to be called with decoded path %q, got %q", "x", requestedPath)
	}
	if s.ActiveVoiceCount() != 0 {
		t.Fatal("expected sysex load-and-select alone not to start any voices")
	}
}
