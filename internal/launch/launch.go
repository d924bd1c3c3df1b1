// Package launch opens demos in a desktop window backed by the OpenGL 2.1
// fixed-function pipeline.
package launch

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/gl21"
	"github.com/Carmen-Shannon/oxy-gl/engine/window/desktop"
	"github.com/Carmen-Shannon/oxy-gl/internal/cli"
)

// Desktop runs l.Scene in a GLFW window until it is closed or Escape is pressed.
// It must be called from the main goroutine.
//
// Parameters:
//   - l: the scene, configuration and logger to run with
//
// Returns:
//   - error: error if the window or GL context could not be created, or a frame failed
func Desktop(l cli.Launch) error {
	win, err := desktop.NewWindow(cli.WindowOptions(l.Scene, l.Config)...)
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}

	r, err := renderer.NewRenderer(gl21.NewBackend(win, l.Logger), renderer.WithLogger(l.Logger))
	if err != nil {
		_ = win.Close()
		return err
	}
	defer r.Release()

	e, err := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithScene(l.Scene),
		engine.WithLogger(l.Logger),
		engine.WithOutput(l.Output),
		engine.WithProfiling(l.Config.Profiling()),
	)
	if err != nil {
		_ = win.Close()
		return err
	}
	return e.Run()
}
