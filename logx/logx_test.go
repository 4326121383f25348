// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(&buf, slog.LevelInfo)
	lg.Debug("hidden")
	lg.Info("shown", "index", 2)
	lg.Warn("warned")
	s := buf.String()
	assert.NotContains(t, s, "hidden")
	assert.Contains(t, s, "level=INFO")
	assert.Contains(t, s, "msg=shown index=2")
	assert.Contains(t, s, "level=WARN")
	assert.NotContains(t, s, "time=")
}

func TestLevelLabel(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	assert.Equal(t, "ERROR", LevelLabel(out, slog.LevelError))
	out = termenv.NewOutput(&buf, termenv.WithProfile(termenv.ANSI))
	assert.Contains(t, LevelLabel(out, slog.LevelWarn), "WARN")
	assert.NotEqual(t, "WARN", LevelLabel(out, slog.LevelWarn))
}
