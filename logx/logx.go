// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures the default [slog] logger used
// throughout fieldview, with terminal colored level labels.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [LevelFromFlags] to the end user's preference.
// The default user verbosity level is [slog.LevelInfo].
var UserLevel = slog.LevelInfo

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - debug: [slog.LevelDebug]
//   - verbose: [slog.LevelInfo]
//   - quiet: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// debug and quiet are set, the level will be [slog.LevelDebug].
func LevelFromFlags(debug, verbose, quiet bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default logger to one writing to
// [os.Stderr] at [UserLevel], with colored level labels
// when the output is a terminal.
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr, UserLevel))
}

// NewLogger returns a new text [slog.Logger] writing to w at the given level.
// Level labels are colored using the terminal profile detected for w;
// non-terminal writers get plain text.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lv, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				a.Value = slog.StringValue(LevelLabel(out, lv))
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// LevelLabel returns the label for the given level, colored
// according to the color profile of the given output.
func LevelLabel(out *termenv.Output, lv slog.Level) string {
	label := lv.String()
	if out.Profile == termenv.Ascii {
		return label
	}
	st := out.String(label).Bold()
	switch {
	case lv >= slog.LevelError:
		st = st.Foreground(out.Color("1"))
	case lv >= slog.LevelWarn:
		st = st.Foreground(out.Color("3"))
	case lv >= slog.LevelInfo:
		st = st.Foreground(out.Color("4"))
	default:
		st = st.Foreground(out.Color("5"))
	}
	return st.String()
}
