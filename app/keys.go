// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"cogentcore.org/fieldview/base/errors"
	"cogentcore.org/fieldview/events"
)

// Shortcut is a keyboard shortcut for an app action.
type Shortcut struct {
	Rune rune
	Help string
	Do   func(a *App)
}

// Shortcuts are the keyboard shortcuts of the view, standing in for
// the zoom, flip, toggle and colormap controls.
var Shortcuts = []Shortcut{
	{'+', "zoom in", func(a *App) { a.ZoomIn() }},
	{'=', "zoom in", func(a *App) { a.ZoomIn() }},
	{'-', "zoom out", func(a *App) { a.ZoomOut() }},
	{'f', "flip colormap", func(a *App) { a.ToggleFlip() }},
	{'p', "toggle panning", func(a *App) { a.TogglePan() }},
	{'z', "toggle wheel zoom", func(a *App) { a.ToggleZoom() }},
	{'n', "next colormap", func(a *App) { a.CycleColormap(1) }},
	{'b', "previous colormap", func(a *App) { a.CycleColormap(-1) }},
	{'r', "reset view", func(a *App) { a.ResetView() }},
}

// ShortcutFor returns the shortcut for r, or nil.
func ShortcutFor(r rune) *Shortcut {
	for i := range Shortcuts {
		if Shortcuts[i].Rune == r {
			return &Shortcuts[i]
		}
	}
	return nil
}

func (a *App) handleKey(ev events.Event) {
	k, ok := ev.(*events.Key)
	if !ok {
		return
	}
	if sc := ShortcutFor(k.Rune); sc != nil {
		sc.Do(a)
		ev.SetHandled()
	}
}

// CycleColormap selects the colormap delta places after the
// requested one, wrapping around.
func (a *App) CycleColormap(delta int) {
	n := a.Registry.Len()
	if n == 0 {
		return
	}
	idx := a.selected
	if idx < 0 {
		idx = 0
	}
	errors.Log(a.SelectColormap(((idx+delta)%n + n) % n))
}

// ResetView moves the camera back to its default pan and scale,
// keeping the value range, and redraws.
func (a *App) ResetView() {
	rng := a.Camera.Range
	a.Camera.Defaults()
	a.Config.ApplyCamera(a.Camera)
	a.Camera.Range = rng
	a.Redraw()
}
