package window

import (
	"fmt"

	"github.com/Faultbox/raymarcher/internal/engine/input"
	"github.com/Faultbox/raymarcher/internal/logger"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyEscape:    input.KeyEscape,
	glfw.KeyW:         input.KeyW,
	glfw.KeyA:         input.KeyA,
	glfw.KeyS:         input.KeyS,
	glfw.KeyD:         input.KeyD,
	glfw.KeySpace:     input.KeySpace,
	glfw.KeyLeftShift: input.KeyLeftShift,
	glfw.KeyR:         input.KeyR,
	glfw.KeyL:         input.KeyL,
	glfw.KeyM:         input.KeyM,
	glfw.KeyUp:        input.KeyUp,
	glfw.KeyDown:      input.KeyDown,
	glfw.KeyF5:        input.KeyF5,
	glfw.KeyF12:       input.KeyF12,
}

// glfwWindow wraps a GLFW window. Callbacks queue events that PollEvents
// hands to the input state.
type glfwWindow struct {
	window   *glfw.Window
	pending  []input.Event
	captured bool
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{window: win, pending: make([]input.Event, 0, 16)}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k, ok := glfwKeys[key]
		if !ok {
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			w.pending = append(w.pending, input.Event{Type: input.EventKeyDown, Key: k})
		case glfw.Release:
			w.pending = append(w.pending, input.Event{Type: input.EventKeyUp, Key: k})
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.captured {
			w.pending = append(w.pending, input.Event{Type: input.EventCursorPos, X: x, Y: y})
		}
	})

	// Framebuffer size differs from window size on high-DPI displays.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.pending = append(w.pending, input.Event{Type: input.EventResize, Width: width, Height: height})
	})

	fbw, fbh := win.GetFramebufferSize()
	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", fbw),
		zap.Int("height", fbh),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *glfwWindow) PollEvents(s *input.State) {
	glfw.PollEvents()
	for _, e := range w.pending {
		s.Handle(e)
	}
	w.pending = w.pending[:0]
	if w.window.ShouldClose() {
		s.Handle(input.Event{Type: input.EventQuit})
	}
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindow) SetCursorCaptured(captured bool) {
	if captured {
		w.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	w.captured = captured
}

func (w *glfwWindow) CursorCaptured() bool {
	return w.captured
}

func (w *glfwWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *glfwWindow) Close() {
	logger.Info("closing window", zap.String("backend", BackendGLFW))
	w.window.Destroy()
	glfw.Terminate()
}
