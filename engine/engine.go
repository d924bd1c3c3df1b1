package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Carmen-Shannon/oxy-gl/engine/event"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
)

// engine implements the Engine interface.
// Runs a single-threaded event loop: wait for events, apply them to the scene,
// redraw when something changed.
type engine struct {
	window   window.Window
	renderer renderer.Renderer
	scene    scene.Scene

	logger *slog.Logger
	output io.Writer

	profiler         *profiler.Profiler
	profilingEnabled bool

	dirty   bool
	quit    bool
	lastErr error
}

// Engine is the main entry point for the engine.
// It owns the window, renderer and scene and drives them from one event loop.
// All methods must be called from the thread that owns the window.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the renderer frames are executed on.
	Renderer() renderer.Renderer

	// Scene returns the scene being run.
	Scene() scene.Scene

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Run prints the scene's key help, runs its setup and then processes events
	// until the scene asks to quit or the window closes. The window is closed
	// before Run returns.
	//
	// Returns:
	//   - error: the first rendering or window error, or nil on a normal exit
	Run() error

	// Quit stops the event loop after the current event.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A window, a renderer and a scene are required.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: an error if a required collaborator is missing
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		logger: slog.Default(),
		output: os.Stdout,
	}
	for _, opt := range options {
		opt(e)
	}

	switch {
	case e.window == nil:
		return nil, errors.New("engine: no window")
	case e.renderer == nil:
		return nil, errors.New("engine: no renderer")
	case e.scene == nil:
		return nil, errors.New("engine: no scene")
	}
	e.profiler = profiler.NewProfiler(e.logger)
	e.window.SetEventCallback(e.handleEvent)
	return e, nil
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Quit() {
	e.quit = true
}

func (e *engine) Run() (err error) {
	defer func() {
		if cerr := e.window.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("engine: close window: %w", cerr)
		}
	}()

	for _, line := range e.scene.Interaction() {
		if _, err := fmt.Fprintln(e.output, line); err != nil {
			return fmt.Errorf("engine: print interaction: %w", err)
		}
	}

	if err := e.renderer.Setup(e.scene.Setup()); err != nil {
		return fmt.Errorf("engine: setup %s: %w", e.scene.Name(), err)
	}
	e.logger.Info("running scene", "scene", e.scene.Name(), "title", e.window.Title(),
		"width", e.window.Width(), "height", e.window.Height())

	// The first frame is sized to the window as created.
	e.handleEvent(event.Resize(e.window.Width(), e.window.Height()))

	for !e.quit && e.lastErr == nil {
		if e.dirty {
			e.dirty = false
			e.draw()
			continue
		}
		if !e.window.IsRunning() {
			break
		}
		e.window.WaitEvents()
	}

	if e.lastErr != nil {
		return e.lastErr
	}
	e.logger.Info("scene finished", "scene", e.scene.Name(), "frames", e.renderer.FrameCount())
	return nil
}

// handleEvent applies one event to the scene and records the follow-up.
func (e *engine) handleEvent(ev event.Event) {
	if e.quit {
		return
	}
	effect := e.scene.HandleEvent(ev)
	if effect.Has(scene.EffectRedraw) {
		e.dirty = true
	}
	if effect.Has(scene.EffectQuit) {
		e.Quit()
	}
}

// draw executes one frame of the scene.
func (e *engine) draw() {
	if err := e.renderer.Execute(e.scene.Frame()); err != nil {
		e.lastErr = fmt.Errorf("engine: draw %s: %w", e.scene.Name(), err)
		return
	}
	if e.profilingEnabled {
		e.profiler.Tick()
	}
}
