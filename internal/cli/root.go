// Package cli implements the oxygl command line: listing demos, running one in
// a window, and dumping a demo's frame without a display.
package cli

import (
	"io"
	"log/slog"

	"github.com/Carmen-Shannon/oxy-gl/engine/config"
	"github.com/Carmen-Shannon/oxy-gl/engine/logging"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/spf13/cobra"
)

// Launch is everything a Launcher needs to open a window and run a scene.
type Launch struct {
	Scene  scene.Scene
	Config config.Config
	Logger *slog.Logger

	// Output receives the scene's key help.
	Output io.Writer
}

// Launcher opens a real window for l.Scene and blocks until it is done.
type Launcher func(l Launch) error

// verbosity holds the persistent logging flags.
type verbosity struct {
	debug, verbose, quiet bool
}

func (v verbosity) logger(w io.Writer) *slog.Logger {
	return logging.SetDefault(w, logging.LevelFromFlags(v.debug, v.verbose, v.quiet))
}

// NewRootCommand builds the oxygl command tree.
//
// Parameters:
//   - launch: the function that runs a scene in a window
//
// Returns:
//   - *cobra.Command: the root command
func NewRootCommand(launch Launcher) *cobra.Command {
	var v verbosity
	root := &cobra.Command{
		Use:           "oxygl",
		Short:         "Fixed-function OpenGL teaching demos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&v.debug, "vv", false, "debug logging")
	root.PersistentFlags().BoolVarP(&v.verbose, "verbose", "v", false, "info logging")
	root.PersistentFlags().BoolVarP(&v.quiet, "quiet", "q", false, "errors only")

	root.AddCommand(
		newListCommand(),
		newRunCommand(&v, launch),
		newFrameCommand(&v),
	)
	return root
}

// WindowOptions returns the window options for sc: the scene's own title and
// buffering first, then the set fields of cfg.
//
// Parameters:
//   - sc: the scene to open a window for
//   - cfg: the merged launch configuration
//
// Returns:
//   - []window.WindowBuilderOption: the options in priority order
func WindowOptions(sc scene.Scene, cfg config.Config) []window.WindowBuilderOption {
	opts := []window.WindowBuilderOption{
		window.WithTitle(sc.Title()),
		window.WithDoubleBuffer(sc.DoubleBuffered()),
	}
	return append(opts, cfg.WindowOptions()...)
}
