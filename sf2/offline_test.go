package sf2

import "testing"

func TestRenderOfflineProducesSoundOnlyAfterNoteOn(t *testing.T) {
	collection := simpleCollection()
	events := []Event{
		{AtFrame: 100, MIDI: []byte{0x90, 60, 100}},
		{AtFrame: 300, MIDI: []byte{0x80, 60, 0}},
	}
	out := RenderOffline(collection, 0, int(testSampleRate), 0.05, events)

	frames := len(out) / 2
	if frames != int(testSampleRate*0.05) {
		t.Fatalf("expected %d frames, got %d", int(testSampleRate*0.05), frames)
	}

	silentBefore := true
	for i := 0; i < 100; i++ {
		if out[i*2] != 0 || out[i*2+1] != 0 {
			silentBefore = false
		}
	}
	if !silentBefore {
		t.Fatal("expected silence before the scheduled note-on")
	}

	soundedAfter := false
	for i := 100; i < 300; i++ {
		if out[i*2] != 0 {
			soundedAfter = true
		}
	}
	if !soundedAfter {
		t.Fatal("expected nonzero output between note-on and note-off")
	}
}

func TestRenderOfflineEventsOutOfOrderAreSorted(t *testing.T) {
	collection := simpleCollection()
	events := []Event{
		{AtFrame: 300, MIDI: []byte{0x80, 60, 0}},
		{AtFrame: 100, MIDI: []byte{0x90, 60, 100}},
	}
	// Should not panic and should behave identically to the sorted order.
	out := RenderOffline(collection, 0, int(testSampleRate), 0.05, events)
	if len(out) == 0 {
		t.Fatal("expected non-empty render output")
	}
	sorted := RenderOffline(collection, 0, int(testSampleRate), 0.05, []Event{events[1], events[0]})
	if len(sorted) != len(out) {
		t.Fatalf("expected %d samples, got %d", len(sorted), len(out))
	}
	for i := range out {
		if out[i] != sorted[i] {
			t.Fatalf("sample %d differs from the sorted-order render: %v vs %v", i, out[i], sorted[i])
		}
	}
}

func TestEncodeWAVFloat32LEHeader(t *testing.T) {
	samples := []float32{0, 0.5, -0.5, 1}
	wav := EncodeWAVFloat32LE(samples, 44100, 2)
	if len(wav) != 44+len(samples)*4 {
		t.Fatalf("expected %d bytes, got %d", 44+len(samples)*4, len(wav))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Fatal("expected a RIFF/WAVE header")
	}
	if string(wav[12:16]) != "fmt " || string(wav[36:40]) != "data" {
		t.Fatal("expected fmt and data subchunks")
	}
}
