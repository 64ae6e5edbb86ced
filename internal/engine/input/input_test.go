package input

import (
	"testing"

	"github.com/Faultbox/raymarcher/pkg/math"
)

func TestHeld(t *testing.T) {
	s := New()
	s.Handle(Event{Type: EventKeyDown, Key: KeyW})
	if !s.Held(KeyW) {
		t.Error("W should be held")
	}
	if s.Held(KeyS) {
		t.Error("S should not be held")
	}
	s.Handle(Event{Type: EventKeyUp, Key: KeyW})
	if s.Held(KeyW) {
		t.Error("W should be released")
	}
	if s.Held(Key(-3)) || s.Held(keyCount+4) {
		t.Error("out-of-range keys should never be held")
	}
}

func TestConsumeFiresOncePerPress(t *testing.T) {
	s := New()
	if s.Consume(KeyR) {
		t.Fatal("Consume fired without a press")
	}

	s.Handle(Event{Type: EventKeyDown, Key: KeyR})
	if !s.Consume(KeyR) {
		t.Fatal("first Consume should fire")
	}
	// Key repeat while held.
	s.Handle(Event{Type: EventKeyDown, Key: KeyR})
	if s.Consume(KeyR) {
		t.Error("Consume fired twice for one press")
	}

	s.Handle(Event{Type: EventKeyUp, Key: KeyR})
	s.Handle(Event{Type: EventKeyDown, Key: KeyR})
	if !s.Consume(KeyR) {
		t.Error("Consume should fire again after release")
	}
}

func TestCursorFirstSampleIsIgnored(t *testing.T) {
	s := New()
	s.Handle(Event{Type: EventCursorPos, X: 400, Y: 300})
	if d := s.CursorDelta(); d != (math.Vec2{}) {
		t.Errorf("first sample: got %v, want zero", d)
	}

	s.Handle(Event{Type: EventCursorPos, X: 410, Y: 290})
	s.Handle(Event{Type: EventCursorPos, X: 415, Y: 295})
	want := math.Vec2{X: 15, Y: -5}
	if d := s.CursorDelta(); d != want {
		t.Errorf("delta: got %v, want %v", d, want)
	}
	if d := s.CursorDelta(); d != (math.Vec2{}) {
		t.Errorf("delta should reset after read, got %v", d)
	}

	s.ResetCursor()
	s.Handle(Event{Type: EventCursorPos, X: 0, Y: 0})
	if d := s.CursorDelta(); d != (math.Vec2{}) {
		t.Errorf("sample after reset: got %v, want zero", d)
	}
}

func TestCursorRelativeDelta(t *testing.T) {
	s := New()
	s.Handle(Event{Type: EventCursorDelta, X: 3, Y: 4})
	s.Handle(Event{Type: EventCursorDelta, X: -1, Y: 1})
	want := math.Vec2{X: 2, Y: 5}
	if d := s.CursorDelta(); d != want {
		t.Errorf("delta: got %v, want %v", d, want)
	}
}

func TestResizeAndQuit(t *testing.T) {
	s := New()
	if _, _, ok := s.Resized(); ok {
		t.Error("Resized reported without an event")
	}
	s.Handle(Event{Type: EventResize, Width: 640, Height: 480})
	s.Handle(Event{Type: EventResize, Width: 800, Height: 600})
	w, h, ok := s.Resized()
	if !ok || w != 800 || h != 600 {
		t.Errorf("Resized: got %d x %d (%v), want 800 x 600", w, h, ok)
	}
	if _, _, ok := s.Resized(); ok {
		t.Error("Resized should report once")
	}

	if s.QuitRequested() {
		t.Error("quit before event")
	}
	s.Handle(Event{Type: EventQuit})
	if !s.QuitRequested() {
		t.Error("quit not recorded")
	}
}

func TestKeyString(t *testing.T) {
	if KeyF12.String() != "F12" || KeyLeftShift.String() != "LeftShift" {
		t.Errorf("unexpected names: %s %s", KeyF12, KeyLeftShift)
	}
	if Key(99).String() != "Unknown" {
		t.Errorf("Key(99): got %s", Key(99))
	}
}
