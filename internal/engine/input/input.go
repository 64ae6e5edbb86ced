// Package input tracks keyboard and cursor state independently of the window backend.
package input

import "github.com/Faultbox/raymarcher/pkg/math"

// Key identifies a key the application reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyLeftShift
	KeyR
	KeyL
	KeyM
	KeyUp
	KeyDown
	KeyF5
	KeyF12
	keyCount
)

var keyNames = [keyCount]string{
	"Unknown", "Escape", "W", "A", "S", "D", "Space", "LeftShift",
	"R", "L", "M", "Up", "Down", "F5", "F12",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// EventType is the kind of a backend event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventKeyDown
	EventKeyUp
	EventCursorPos
	EventCursorDelta
)

// Event is a window backend event translated to engine terms.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	X, Y   float64
}

// State is the input snapshot the frame loop reads.
type State struct {
	held    [keyCount]bool
	latched [keyCount]bool

	quit    bool
	resized bool
	width   int
	height  int

	haveCursor bool
	lastX      float64
	lastY      float64
	delta      math.Vec2
}

// New returns an empty input state.
func New() *State {
	return &State{}
}

// Handle applies one backend event.
func (s *State) Handle(e Event) {
	switch e.Type {
	case EventQuit:
		s.quit = true
	case EventResize:
		s.resized = true
		s.width, s.height = e.Width, e.Height
	case EventKeyDown:
		if e.Key > KeyUnknown && e.Key < keyCount {
			s.held[e.Key] = true
		}
	case EventKeyUp:
		if e.Key > KeyUnknown && e.Key < keyCount {
			s.held[e.Key] = false
			s.latched[e.Key] = false
		}
	case EventCursorPos:
		s.cursorPos(e.X, e.Y)
	case EventCursorDelta:
		s.delta.X += float32(e.X)
		s.delta.Y += float32(e.Y)
	}
}

func (s *State) cursorPos(x, y float64) {
	if !s.haveCursor {
		s.lastX, s.lastY = x, y
		s.haveCursor = true
		return
	}
	s.delta.X += float32(x - s.lastX)
	s.delta.Y += float32(y - s.lastY)
	s.lastX, s.lastY = x, y
}

// Held reports whether k is currently down.
func (s *State) Held(k Key) bool {
	if k <= KeyUnknown || k >= keyCount {
		return false
	}
	return s.held[k]
}

// Consume reports true once per press of k. The key must be released before
// it fires again.
func (s *State) Consume(k Key) bool {
	if !s.Held(k) || s.latched[k] {
		return false
	}
	s.latched[k] = true
	return true
}

// QuitRequested reports whether the window asked to close.
func (s *State) QuitRequested() bool {
	return s.quit
}

// Resized returns the latest framebuffer size once after each resize.
func (s *State) Resized() (width, height int, ok bool) {
	if !s.resized {
		return 0, 0, false
	}
	s.resized = false
	return s.width, s.height, true
}

// CursorDelta returns the cursor movement in screen space since the previous call.
func (s *State) CursorDelta() math.Vec2 {
	d := s.delta
	s.delta = math.Vec2{}
	return d
}

// ResetCursor forgets the last cursor sample so the next one produces no delta.
func (s *State) ResetCursor() {
	s.haveCursor = false
	s.delta = math.Vec2{}
}
