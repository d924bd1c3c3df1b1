// Package demos is the registry of runnable demos.
package demos

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-gl/demos/helix"
	"github.com/Carmen-Shannon/oxy-gl/demos/lighting"
	"github.com/Carmen-Shannon/oxy-gl/demos/material"
	"github.com/Carmen-Shannon/oxy-gl/demos/squares"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
)

// ErrUnknownDemo is returned by Lookup for a name with no demo.
var ErrUnknownDemo = errors.New("unknown demo")

// Demo is a registry entry.
type Demo struct {
	// Name is the identifier used on the command line.
	Name string

	// Title is the window title.
	Title string

	// Summary is a one-line description for listings.
	Summary string

	// New creates a fresh scene for the demo.
	New func(options ...scene.SceneBuilderOption) scene.Scene
}

var registry = map[string]Demo{}

func register[S any](m scene.Model[S], summary string) {
	registry[m.Name()] = Demo{
		Name:    m.Name(),
		Title:   m.Title(),
		Summary: summary,
		New: func(options ...scene.SceneBuilderOption) scene.Scene {
			return scene.NewScene(m, options...)
		},
	}
}

func init() {
	register[helix.State](helix.New(), "a helix drawn as a line strip in an orthographic view")
	register[squares.State](squares.New(), "a green square drawn over a red one")
	register[material.State](material.New(), "a lit ball with adjustable material properties")
	register[lighting.State](lighting.New(), "a lit ball under a movable, adjustable white light")
}

// All returns every demo sorted by name.
func All() []Demo {
	all := make([]Demo, 0, len(registry))
	for _, d := range registry {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Lookup returns the demo with the given name.
//
// Parameters:
//   - name: the demo name
//
// Returns:
//   - Demo: the demo
//   - error: ErrUnknownDemo if there is none
func Lookup(name string) (Demo, error) {
	d, ok := registry[name]
	if !ok {
		return Demo{}, fmt.Errorf("%w %q", ErrUnknownDemo, name)
	}
	return d, nil
}
