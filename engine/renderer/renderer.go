package renderer

import (
	"fmt"
	"log/slog"
	"sync"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backend RendererBackend
	logger  *slog.Logger

	frames    uint64
	onPresent func(frame uint64)
}

// Renderer defines the interface for the rendering system.
//
// Scenes describe frames as ordered Command lists; the Renderer feeds them to its
// backend in order and keeps count of presented frames. Swapping the backend lets the
// same frame description be drawn by OpenGL or captured for inspection.
type Renderer interface {
	// Backend returns the backend this renderer drives.
	Backend() RendererBackend

	// Execute runs the commands in order, stopping at the first failure.
	//
	// Parameters:
	//   - cmds: the commands to execute
	//
	// Returns:
	//   - error: an error naming the failing command
	Execute(cmds []Command) error

	// Setup runs the one-time configuration issued before the first frame. It
	// behaves like Execute and then tells a SetupObserver backend that setup is over.
	//
	// Parameters:
	//   - cmds: the setup commands
	//
	// Returns:
	//   - error: an error naming the failing command
	Setup(cmds []Command) error

	// FrameCount returns the number of Present commands executed so far.
	FrameCount() uint64

	// Release releases the backend.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer around the given backend and initialises it.
//
// Parameters:
//   - backend: the backend that executes commands
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the renderer
//   - error: an error if the backend is nil or fails to initialise
func NewRenderer(backend RendererBackend, options ...RendererBuilderOption) (Renderer, error) {
	if backend == nil {
		return nil, fmt.Errorf("renderer: nil backend")
	}
	r := &renderer{
		mu:      &sync.Mutex{},
		backend: backend,
		logger:  slog.Default(),
	}
	for _, opt := range options {
		opt(r)
	}

	if err := backend.Init(); err != nil {
		return nil, fmt.Errorf("renderer: init %s backend: %w", backend.Type(), err)
	}
	r.logger.Debug("renderer initialised", "backend", backend.Type())
	return r, nil
}

func (r *renderer) Backend() RendererBackend {
	return r.backend
}

func (r *renderer) Execute(cmds []Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cmd := range cmds {
		if cmd == nil {
			return fmt.Errorf("renderer: nil command at %d", i)
		}
		if err := r.backend.Execute(cmd); err != nil {
			return fmt.Errorf("renderer: command %d (%s): %w", i, cmd.Op(), err)
		}
		if cmd.Op() == OpPresent {
			r.frames++
			if r.onPresent != nil {
				r.onPresent(r.frames)
			}
		}
	}
	return nil
}

func (r *renderer) Setup(cmds []Command) error {
	if err := r.Execute(cmds); err != nil {
		return err
	}
	if o, ok := r.backend.(SetupObserver); ok {
		o.EndSetup()
	}
	return nil
}

func (r *renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *renderer) Release() {
	r.backend.Release()
}
