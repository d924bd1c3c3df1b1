// Package logging configures the structured logger shared by the engine and the CLI.
package logging

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// LevelFromFlags returns the slog.Level for the verbosity flags:
//   - vv: slog.LevelDebug
//   - v: slog.LevelInfo
//   - q: slog.LevelError
//   - (default: slog.LevelWarn)
//
// The flags are evaluated in that order, so vv wins over q.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger creates a text logger writing to w at the given level. When w is a
// colour-capable terminal the level tag is coloured.
//
// Parameters:
//   - w: the destination
//   - level: the minimum level written
//
// Returns:
//   - *slog.Logger: the logger
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	out := termenv.NewOutput(w)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(out.String(lvl.String()).Foreground(levelColor(lvl)).String())
				}
			}
			return a
		},
	}))
}

// SetDefault installs NewLogger(w, level) as the slog default and returns it.
func SetDefault(w io.Writer, level slog.Level) *slog.Logger {
	l := NewLogger(w, level)
	slog.SetDefault(l)
	return l
}

func levelColor(l slog.Level) termenv.Color {
	switch {
	case l >= slog.LevelError:
		return termenv.ANSIRed
	case l >= slog.LevelWarn:
		return termenv.ANSIYellow
	case l >= slog.LevelInfo:
		return termenv.ANSIBlue
	default:
		return termenv.ANSIBrightBlack
	}
}
