package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Carmen-Shannon/oxy-gl/engine"
	"github.com/Carmen-Shannon/oxy-gl/engine/config"
	"github.com/Carmen-Shannon/oxy-gl/engine/event"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/spf13/cobra"
)

// RenderFrame runs sc without a display, feeding it the key script, and returns
// the last frame it drew.
//
// Parameters:
//   - sc: the scene to run
//   - cfg: the launch configuration; its window fields set the drawable size
//   - keys: a key script such as "aa<PageDown>"
//   - logger: the logger for engine diagnostics
//
// Returns:
//   - []renderer.Command: the last frame
//   - error: an error if the script is invalid or rendering fails
func RenderFrame(sc scene.Scene, cfg config.Config, keys string, logger *slog.Logger) ([]renderer.Command, error) {
	events, err := event.FromKeys(keys)
	if err != nil {
		return nil, err
	}
	win := window.NewHeadless(events, WindowOptions(sc, cfg)...)
	rec := renderer.NewRecorder()
	r, err := renderer.NewRenderer(rec, renderer.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	defer r.Release()

	e, err := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithScene(sc),
		engine.WithLogger(logger),
		engine.WithOutput(io.Discard),
		engine.WithProfiling(cfg.Profiling()),
	)
	if err != nil {
		return nil, err
	}
	if err := e.Run(); err != nil {
		return nil, err
	}
	return rec.LastFrame(), nil
}

func newFrameCommand(v *verbosity) *cobra.Command {
	var (
		flags launchFlags
		keys  string
	)
	cmd := &cobra.Command{
		Use:   "frame [demo]",
		Short: "Print the draw commands of a demo's frame without opening a window",
		Long: "Print the draw commands of a demo's frame without opening a window.\n" +
			"Keys are replayed first; name special keys in angle brackets, e.g. --keys 'aa<PageDown><Left>'.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := v.logger(cmd.ErrOrStderr())
			d, cfg, err := flags.resolve(cmd, args)
			if err != nil {
				return err
			}
			frame, err := RenderFrame(d.New(scene.WithLogger(logger)), cfg, keys, logger)
			if err != nil {
				return fmt.Errorf("frame %s: %w", d.Name, err)
			}
			return renderer.Dump(cmd.OutOrStdout(), frame)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&keys, "keys", "k", "", "key script replayed before the frame is captured")
	return cmd
}
