package cli

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/demos"
	"github.com/Carmen-Shannon/oxy-gl/engine/config"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/spf13/cobra"
)

// launchFlags are the window and config flags shared by run and frame.
type launchFlags struct {
	configPath string
	overrides  config.Config
	profile    bool
	x, y       int
}

func (f *launchFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "TOML or YAML config file")
	fs.StringVar(&f.overrides.Window.Title, "title", "", "window title (default: the demo's)")
	fs.IntVar(&f.overrides.Window.Width, "width", 0, "window width in pixels (default 500)")
	fs.IntVar(&f.overrides.Window.Height, "height", 0, "window height in pixels (default 500)")
	fs.IntVar(&f.x, "x", 0, "window x position (default 100)")
	fs.IntVar(&f.y, "y", 0, "window y position (default 100)")
	fs.BoolVar(&f.profile, "profile", false, "log redraw and memory statistics at debug level")
}

// resolve loads the config file, applies flag overrides and picks the demo.
func (f *launchFlags) resolve(cmd *cobra.Command, args []string) (demos.Demo, config.Config, error) {
	var cfg config.Config
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return demos.Demo{}, config.Config{}, err
		}
		cfg = loaded
	}
	over := f.overrides
	if len(args) > 0 {
		over.Demo = args[0]
	}
	if cmd.Flags().Changed("profile") {
		over.Profile = &f.profile
	}
	if cmd.Flags().Changed("x") {
		over.Window.X = &f.x
	}
	if cmd.Flags().Changed("y") {
		over.Window.Y = &f.y
	}
	cfg = cfg.Merge(over)
	if err := cfg.Validate(); err != nil {
		return demos.Demo{}, config.Config{}, err
	}
	if cfg.Demo == "" {
		return demos.Demo{}, config.Config{}, errors.New("no demo given; see 'oxygl list'")
	}
	d, err := demos.Lookup(cfg.Demo)
	if err != nil {
		return demos.Demo{}, config.Config{}, err
	}
	return d, cfg, nil
}

func newRunCommand(v *verbosity, launch Launcher) *cobra.Command {
	var flags launchFlags
	cmd := &cobra.Command{
		Use:   "run [demo]",
		Short: "Run a demo in a window",
		Long:  "Run a demo in a window. The demo can also be named in the config file. Press Escape to quit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := v.logger(cmd.ErrOrStderr())
			d, cfg, err := flags.resolve(cmd, args)
			if err != nil {
				return err
			}
			sc := d.New(scene.WithLogger(logger))
			logger.Debug("launching demo", "demo", d.Name, "config", fmt.Sprintf("%+v", cfg))
			if err := launch(Launch{Scene: sc, Config: cfg, Logger: logger, Output: cmd.OutOrStdout()}); err != nil {
				return fmt.Errorf("run %s: %w", d.Name, err)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
