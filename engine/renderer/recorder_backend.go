package renderer

import (
	"errors"
	"slices"
)

// ErrNotInitialised is returned when a backend executes commands before Init.
var ErrNotInitialised = errors.New("backend not initialised")

// Recorder is a RendererBackend that stores commands in memory. It backs headless
// frame dumps and lets tests assert on the exact command stream a scene produced.
// Commands run through Renderer.Setup are kept apart from the frames.
type Recorder struct {
	initialised bool
	commands    []Command
	setup       []Command
	frames      [][]Command
	pending     []Command
}

var (
	_ RendererBackend = &Recorder{}
	_ SetupObserver   = &Recorder{}
)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Type() RendererBackendType {
	return BackendTypeRecorder
}

func (r *Recorder) Init() error {
	r.initialised = true
	return nil
}

func (r *Recorder) Execute(cmd Command) error {
	if !r.initialised {
		return ErrNotInitialised
	}
	r.commands = append(r.commands, cmd)
	r.pending = append(r.pending, cmd)
	if cmd.Op() == OpPresent {
		r.frames = append(r.frames, r.pending)
		r.pending = nil
	}
	return nil
}

// EndSetup moves the commands executed so far out of the first frame.
func (r *Recorder) EndSetup() {
	r.setup = append(r.setup, r.pending...)
	r.pending = nil
}

// Release stops the recorder; later commands fail with ErrNotInitialised.
func (r *Recorder) Release() {
	r.initialised = false
}

// Commands returns every command executed so far.
func (r *Recorder) Commands() []Command {
	return slices.Clone(r.commands)
}

// SetupCommands returns the commands executed through Renderer.Setup.
func (r *Recorder) SetupCommands() []Command {
	return slices.Clone(r.setup)
}

// Frames returns the executed commands grouped into frames, each ending with Present.
func (r *Recorder) Frames() [][]Command {
	return slices.Clone(r.frames)
}

// LastFrame returns the most recently presented frame, or nil if none was presented.
func (r *Recorder) LastFrame() []Command {
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}
