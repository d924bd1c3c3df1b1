package window

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-gl/engine/event"
)

// ErrClosed is returned when closing a window that is already closed.
var ErrClosed = errors.New("window already closed")

// headlessWindow is a Window with no display. It replays a fixed queue of
// events, one per WaitEvents call, and stops running once the queue is drained.
type headlessWindow struct {
	cfg     Config
	queue   []event.Event
	onEvent func(e event.Event)
	running bool
	closed  bool
}

var _ Window = &headlessWindow{}

// NewHeadless creates a headless window that will replay events in order.
//
// Parameters:
//   - events: the events to replay
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the window, already running
func NewHeadless(events []event.Event, options ...WindowBuilderOption) Window {
	return &headlessWindow{
		cfg:     NewConfig(options...),
		queue:   append([]event.Event(nil), events...),
		running: true,
	}
}

func (w *headlessWindow) SetEventCallback(callback func(e event.Event)) {
	w.onEvent = callback
}

func (w *headlessWindow) Title() string {
	return w.cfg.Title
}

func (w *headlessWindow) WaitEvents() {
	if !w.running {
		return
	}
	if len(w.queue) == 0 {
		w.running = false
		return
	}
	e := w.queue[0]
	w.queue = w.queue[1:]
	if e.Kind == event.KindResize {
		w.cfg.Width = e.Width
		w.cfg.Height = e.Height
	}
	if w.onEvent != nil {
		w.onEvent(e)
	}
}

// SwapBuffers does nothing; there is no display to present to.
func (w *headlessWindow) SwapBuffers() {}

func (w *headlessWindow) DoubleBuffered() bool {
	return w.cfg.DoubleBuffered
}

func (w *headlessWindow) IsRunning() bool {
	return w.running
}

func (w *headlessWindow) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	w.running = false
	w.queue = nil
	return nil
}

func (w *headlessWindow) Width() int {
	return w.cfg.Width
}

func (w *headlessWindow) Height() int {
	return w.cfg.Height
}
