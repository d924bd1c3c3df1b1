// Package desktop implements window.Window on top of GLFW with an OpenGL 2.1 context.
package desktop

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/event"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	cfg     window.Config
	window  *glfw.Window
	running bool
	onEvent func(e event.Event)
}

var _ window.Window = &glfwWindow{}

// specialKeys maps the GLFW keys delivered as special key presses.
var specialKeys = map[glfw.Key]common.Key{
	glfw.KeyRight:    common.KeyRight,
	glfw.KeyLeft:     common.KeyLeft,
	glfw.KeyDown:     common.KeyDown,
	glfw.KeyUp:       common.KeyUp,
	glfw.KeyPageUp:   common.KeyPageUp,
	glfw.KeyPageDown: common.KeyPageDown,
}

// NewWindow creates and shows a GLFW window with a current OpenGL 2.1 context.
// It must be called from the main goroutine, and the program should lock that
// goroutine to the first OS thread in an init function, which macOS requires.
// The calling goroutine is locked to its OS thread here as well, and that thread
// must then drive every window and drawing call.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - window.Window: the running window
//   - error: error if GLFW or the window could not be initialised
func NewWindow(options ...window.WindowBuilderOption) (window.Window, error) {
	runtime.LockOSThread()

	cfg := window.NewConfig(options...)
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// Fixed-function lighting needs a compatibility context.
	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.DoubleBuffer, glfwBool(cfg.DoubleBuffered))
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Visible, glfw.False)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}
	win.SetPos(cfg.X, cfg.Y)
	win.MakeContextCurrent()

	gw := &glfwWindow{
		cfg:     cfg,
		window:  win,
		running: true,
	}
	gw.registerCallbacks()

	// Update stored dimensions to reflect actual framebuffer size (may differ from requested on high-DPI).
	gw.cfg.Width, gw.cfg.Height = win.GetFramebufferSize()
	win.Show()
	return gw, nil
}

// registerCallbacks translates GLFW callbacks into events.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCharCallback
func (w *glfwWindow) registerCallbacks() {
	w.window.SetCharCallback(func(_ *glfw.Window, char rune) {
		x, y := w.cursor()
		w.emit(event.KeyPress(char, x, y))
	})

	// Escape produces no character, so it is delivered as its ASCII code like other characters.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		x, y := w.cursor()
		if key == glfw.KeyEscape {
			w.emit(event.KeyPress(common.CharEscape, x, y))
			return
		}
		if k, ok := specialKeys[key]; ok {
			w.emit(event.SpecialKeyPress(k, x, y))
		}
	})

	// Use framebuffer size callback for pixel-accurate resize events.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFramebufferSizeCallback
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.cfg.Width = width
		w.cfg.Height = height
		w.emit(event.Resize(width, height))
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetRefreshCallback
	w.window.SetRefreshCallback(func(_ *glfw.Window) {
		w.emit(event.Redraw())
	})

	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.running = false
	})
}

func (w *glfwWindow) emit(e event.Event) {
	if w.onEvent != nil {
		w.onEvent(e)
	}
}

func (w *glfwWindow) cursor() (int, int) {
	x, y := w.window.GetCursorPos()
	return int(x), int(y)
}

func (w *glfwWindow) SetEventCallback(callback func(e event.Event)) {
	w.onEvent = callback
}

func (w *glfwWindow) Title() string {
	return w.cfg.Title
}

// WaitEvents sleeps until GLFW has events, then runs their callbacks.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#WaitEvents
func (w *glfwWindow) WaitEvents() {
	glfw.WaitEvents()
}

func (w *glfwWindow) SwapBuffers() {
	if w.cfg.DoubleBuffered {
		w.window.SwapBuffers()
	}
}

func (w *glfwWindow) DoubleBuffered() bool {
	return w.cfg.DoubleBuffered
}

func (w *glfwWindow) IsRunning() bool {
	return w.window != nil && w.running && !w.window.ShouldClose()
}

// Close destroys the GLFW window and terminates the GLFW library.
func (w *glfwWindow) Close() error {
	if w.window == nil {
		return errors.New("window is not initialized")
	}
	w.running = false
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
	return nil
}

func (w *glfwWindow) Width() int {
	return w.cfg.Width
}

func (w *glfwWindow) Height() int {
	return w.cfg.Height
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
