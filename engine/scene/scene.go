package scene

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/event"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
)

// Scene drives one Model: it owns the model's current state and camera, applies
// events through Update and produces complete frames. It hides the state type so
// the engine can run any demo.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Title returns the window title.
	Title() string

	// Interaction returns the key help lines.
	Interaction() []string

	// DoubleBuffered reports whether frames are presented through a back buffer.
	DoubleBuffered() bool

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Setup returns the one-time pipeline configuration.
	Setup() []renderer.Command

	// HandleEvent applies an event to the scene state. A Resize event also
	// resizes the camera.
	//
	// Parameters:
	//   - e: the event
	//
	// Returns:
	//   - Effect: what the event loop should do next
	HandleEvent(e event.Event) Effect

	// Frame returns the commands for the current state: viewport and projection
	// followed by the model's draw pass.
	//
	// Returns:
	//   - []renderer.Command: the frame
	Frame() []renderer.Command
}

// scene is the implementation of the Scene interface.
type scene[S any] struct {
	model  Model[S]
	state  S
	cam    camera.Camera
	logger *slog.Logger
}

var _ Scene = &scene[struct{}]{}

// NewScene creates a Scene running m from its initial state.
//
// Parameters:
//   - m: the demo model
//   - options: variadic list of SceneBuilderOption functions
//
// Returns:
//   - Scene: the scene
func NewScene[S any](m Model[S], options ...SceneBuilderOption) Scene {
	cfg := sceneConfig{
		width:  500,
		height: 500,
		logger: slog.Default(),
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return &scene[S]{
		model:  m,
		state:  m.Initial(),
		cam:    m.NewCamera(cfg.width, cfg.height),
		logger: cfg.logger.With("scene", m.Name()),
	}
}

// StateOf returns the current state of sc if it runs a Model[S].
//
// Parameters:
//   - sc: the scene
//
// Returns:
//   - S: the state
//   - bool: false if sc does not hold state of type S
func StateOf[S any](sc Scene) (S, bool) {
	s, ok := sc.(*scene[S])
	if !ok {
		var zero S
		return zero, false
	}
	return s.state, true
}

func (s *scene[S]) Name() string {
	return s.model.Name()
}

func (s *scene[S]) Title() string {
	return s.model.Title()
}

func (s *scene[S]) Interaction() []string {
	return s.model.Interaction()
}

func (s *scene[S]) DoubleBuffered() bool {
	return s.model.DoubleBuffered()
}

func (s *scene[S]) Camera() camera.Camera {
	return s.cam
}

func (s *scene[S]) Setup() []renderer.Command {
	return s.model.Setup()
}

func (s *scene[S]) HandleEvent(e event.Event) Effect {
	next, effect := Update(s.model, s.state, e)
	s.state = next

	switch {
	case e.Kind == event.KindResize:
		s.cam.Resize(e.Width, e.Height)
		s.logger.Debug("resized", "width", e.Width, "height", e.Height)
	case effect == EffectNone:
		s.logger.Debug("ignored event", "event", e)
	case effect.Has(EffectQuit):
		s.logger.Info("quit requested")
	}
	return effect
}

func (s *scene[S]) Frame() []renderer.Command {
	w, h := s.cam.Viewport()
	cmds := []renderer.Command{
		renderer.Viewport{Width: w, Height: h},
		renderer.LoadProjection{Matrix: s.cam.ProjectionMatrix()},
	}
	return append(cmds, s.model.Render(s.state, s.cam)...)
}
