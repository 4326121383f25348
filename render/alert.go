// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "log/slog"

// Alerter shows fatal rendering errors to the user, typically
// as a dialog or message box.
type Alerter interface {
	Alert(msg string)
}

// AlertFunc is a function adapter for [Alerter].
type AlertFunc func(msg string)

func (f AlertFunc) Alert(msg string) { f(msg) }

// LogAlerter is an [Alerter] that logs alerts at the error level,
// for headless use.
type LogAlerter struct{}

func (LogAlerter) Alert(msg string) {
	slog.Error(msg)
}
