// Package config loads demo launch settings from TOML or YAML files and merges
// them with command-line overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for a config file whose extension is not .toml, .yaml or .yml.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// maxConfigSize bounds how much of a config file is read.
const maxConfigSize = 1 << 20

// Format is a config file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// Window holds window overrides. Zero values mean unset.
type Window struct {
	Title          string `toml:"title" yaml:"title"`
	Width          int    `toml:"width" yaml:"width"`
	Height         int    `toml:"height" yaml:"height"`
	X              *int   `toml:"x" yaml:"x"` // pointers distinguish unset from 0 and false
	Y              *int   `toml:"y" yaml:"y"`
	DoubleBuffered *bool  `toml:"double_buffered" yaml:"double_buffered"`
}

// Config is the launch configuration for a demo.
type Config struct {
	Demo    string `toml:"demo" yaml:"demo"`
	Window  Window `toml:"window" yaml:"window"`
	Profile *bool  `toml:"profile" yaml:"profile"`
}

// FormatFromPath picks the encoding from the file extension.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - Format: the encoding
//   - error: ErrUnsupportedFormat for any other extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Load reads and decodes a config file.
//
// Parameters:
//   - path: the file to read; its extension selects the format
//
// Returns:
//   - Config: the decoded configuration
//   - error: an error if the file cannot be read or decoded
func Load(path string) (Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Config{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("config: %q is larger than %d bytes", path, maxConfigSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Decode(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("config: %q: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the given format. Unknown keys are rejected.
func Decode(data []byte, format Format) (Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	default:
		return Config{}, ErrUnsupportedFormat
	}
	return cfg, cfg.Validate()
}

// Validate rejects negative window sizes.
func (c Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size %dx%d must not be negative", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Merge returns c with every field that is set in over replaced by over's value.
//
// Parameters:
//   - over: the higher-priority configuration
//
// Returns:
//   - Config: the merged configuration
func (c Config) Merge(over Config) Config {
	return Config{
		Demo: common.Coalesce(over.Demo, c.Demo),
		Window: Window{
			Title:          common.Coalesce(over.Window.Title, c.Window.Title),
			Width:          common.Coalesce(over.Window.Width, c.Window.Width),
			Height:         common.Coalesce(over.Window.Height, c.Window.Height),
			X:              common.Coalesce(over.Window.X, c.Window.X),
			Y:              common.Coalesce(over.Window.Y, c.Window.Y),
			DoubleBuffered: common.Coalesce(over.Window.DoubleBuffered, c.Window.DoubleBuffered),
		},
		Profile: common.Coalesce(over.Profile, c.Profile),
	}
}

// Profiling reports whether the profile flag is set and true.
func (c Config) Profiling() bool {
	return c.Profile != nil && *c.Profile
}

// WindowOptions converts the set window fields into builder options, to be
// applied after the demo's own defaults.
//
// Returns:
//   - []window.WindowBuilderOption: one option per set field
func (c Config) WindowOptions() []window.WindowBuilderOption {
	var opts []window.WindowBuilderOption
	w := c.Window
	if w.Title != "" {
		opts = append(opts, window.WithTitle(w.Title))
	}
	if w.Width > 0 {
		opts = append(opts, window.WithWidth(w.Width))
	}
	if w.Height > 0 {
		opts = append(opts, window.WithHeight(w.Height))
	}
	if w.X != nil || w.Y != nil {
		def := window.NewConfig()
		x, y := def.X, def.Y
		if w.X != nil {
			x = *w.X
		}
		if w.Y != nil {
			y = *w.Y
		}
		opts = append(opts, window.WithPosition(x, y))
	}
	if w.DoubleBuffered != nil {
		opts = append(opts, window.WithDoubleBuffer(*w.DoubleBuffered))
	}
	return opts
}
