// Package window creates the OS window and OpenGL context and feeds input events.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/raymarcher/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window is an OS window with a current OpenGL 4.1 core context.
type Window interface {
	// PollEvents drains pending OS events into the input state.
	PollEvents(s *input.State)
	SwapBuffers()
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (int, int)
	// SetCursorCaptured hides the cursor and switches to unbounded mouse motion.
	SetCursorCaptured(captured bool)
	CursorCaptured() bool
	SetTitle(title string)
	Close()
}

// New creates a window with the named backend.
func New(backend string, cfg Config) (Window, error) {
	var (
		w   Window
		err error
	)
	switch backend {
	case BackendSDL, "":
		w, err = newSDL(cfg)
	case BackendGLFW:
		w, err = newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}
