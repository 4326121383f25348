// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app ties a fieldview session together: the camera, the
// colormap registry, the render surface and the input controller,
// fed by a queue of window events.
package app

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/fieldview/base/errors"
	"cogentcore.org/fieldview/camera"
	"cogentcore.org/fieldview/colormap"
	"cogentcore.org/fieldview/config"
	"cogentcore.org/fieldview/events"
	"cogentcore.org/fieldview/field"
	"cogentcore.org/fieldview/input"
	"cogentcore.org/fieldview/render"
)

// App is the context of one viewing session. Apart from
// [App.Queue] and [App.Watch], it must only be used from
// the UI goroutine.
type App struct {

	// Config is the configuration the app was made with.
	Config *config.Config

	// Camera is the camera of the session.
	Camera *camera.Camera

	// Registry lists the colormaps to choose from.
	Registry *colormap.Registry

	// Surface draws the field.
	Surface *render.Surface

	// Controller pans and zooms the camera from pointer input.
	Controller *input.Controller

	// Bindings are the slider controls bound to the camera.
	Bindings *Bindings

	// Listeners receive the events drained from Queue.
	Listeners events.Listeners

	// Queue receives window events from any goroutine.
	Queue events.Queue

	// Rect returns the view rectangle in pointer coordinates.
	// If nil, the displayed size of the surface is used.
	Rect func() image.Rectangle

	// OnChange is called after a toggle or colormap selection changes,
	// for example to update a window title.
	OnChange func()

	reload   chan struct{}
	selected int
}

// New returns a new [App] drawing on dev, configured by cfg, reporting
// fatal rendering failures to al. The colormaps come from cfg.ColormapDir,
// or are the built-in ones when it is empty.
func New(cfg *config.Config, dev render.Device, al render.Alerter) (*App, error) {
	a := &App{Config: cfg, reload: make(chan struct{}, 1), selected: -1}
	if cfg.ColormapDir != "" {
		reg, err := colormap.OpenDir(cfg.ColormapDir)
		if err != nil {
			return nil, err
		}
		a.Registry = reg
	} else {
		a.Registry = colormap.NewRegistry(colormap.Builtins()...)
	}
	a.Camera = camera.New()
	cfg.ApplyCamera(a.Camera)
	a.Surface = render.NewSurface(dev, a.Camera, a.Registry, al)
	a.Surface.Flip = cfg.Flip
	a.Controller = input.NewController(a.Camera, a.Redraw)
	cfg.ApplyController(a.Controller)
	a.Bindings = NewBindings(a.Camera, a.Controller.ZoomStep, a.Redraw)

	a.Queue.Init()
	input.Listen(&a.Listeners, a.Controller, a.viewRect)
	a.Listeners.Add(events.Resize, func(ev events.Event) {
		a.Redraw()
		ev.SetHandled()
	})
	a.Listeners.Add(events.KeyChord, a.handleKey)
	return a, nil
}

func (a *App) viewRect() image.Rectangle {
	if a.Rect != nil {
		return a.Rect()
	}
	return image.Rectangle{Max: a.Surface.DisplaySize()}
}

func (a *App) changed() {
	if a.OnChange != nil {
		a.OnChange()
	}
}

// Start initializes the surface and requests the configured colormap.
// An out of range colormap index falls back to the first one.
func (a *App) Start() error {
	if err := a.Surface.Init(); err != nil {
		return err
	}
	if a.Registry.Len() == 0 {
		return fmt.Errorf("app: no colormaps in %q", a.Registry.Dir)
	}
	idx := a.Config.Colormap
	if idx >= a.Registry.Len() {
		slog.Warn("colormap index out of range, using 0", "index", idx, "colormaps", a.Registry.Len())
		idx = 0
	}
	return a.SelectColormap(idx)
}

// LoadField shows f, resetting the zoom, and draws it.
func (a *App) LoadField(f *field.Field) error {
	if err := a.Surface.LoadField(f); err != nil {
		return err
	}
	a.Redraw()
	return nil
}

// Redraw draws a frame, logging any error.
func (a *App) Redraw() {
	errors.Log(a.Surface.Draw())
}

// HandleEvent dispatches ev to the listeners, reporting whether it was handled.
func (a *App) HandleEvent(ev events.Event) bool {
	return a.Listeners.Call(ev)
}

// ProcessEvents handles all queued events, reloads the colormaps
// if the registry changed, and binds loaded colormaps.
// It returns the number of events handled.
func (a *App) ProcessEvents() int {
	n := 0
	a.Queue.Drain(func(ev events.Event) {
		a.HandleEvent(ev)
		n++
	})
	select {
	case <-a.reload:
		a.reloadColormaps()
	default:
	}
	a.Poll()
	return n
}

// Poll binds any colormap that has finished loading.
func (a *App) Poll() bool {
	if a.Surface.Poll() {
		a.changed()
		return true
	}
	return false
}

// SelectColormap requests the colormap at index, which must be in range.
func (a *App) SelectColormap(index int) error {
	if index < 0 || index >= a.Registry.Len() {
		return fmt.Errorf("%w: %d of %d", colormap.ErrIndex, index, a.Registry.Len())
	}
	if err := a.Surface.SetColormap(index); err != nil {
		return err
	}
	a.selected = index
	a.changed()
	return nil
}

// SelectColormapName requests the colormap with the given name.
func (a *App) SelectColormapName(name string) error {
	idx := a.Registry.IndexOf(name)
	if idx < 0 {
		return fmt.Errorf("%w: no colormap named %q", colormap.ErrIndex, name)
	}
	return a.SelectColormap(idx)
}

// ColormapName returns the name of the bound colormap, or "" if none.
func (a *App) ColormapName() string {
	if _, cm := a.Surface.Loader.Current(); cm != nil {
		return cm.Name
	}
	return ""
}

// TogglePan turns panning by dragging on or off.
func (a *App) TogglePan() bool {
	a.Controller.PanEnabled = !a.Controller.PanEnabled
	a.changed()
	return a.Controller.PanEnabled
}

// ToggleZoom turns zooming with the wheel on or off.
func (a *App) ToggleZoom() bool {
	a.Controller.ZoomEnabled = !a.Controller.ZoomEnabled
	a.changed()
	return a.Controller.ZoomEnabled
}

// ToggleFlip mirrors the colormap and redraws.
func (a *App) ToggleFlip() bool {
	a.Surface.SetFlip(!a.Surface.Flip)
	a.Redraw()
	a.changed()
	return a.Surface.Flip
}

// ZoomIn zooms in by one step.
func (a *App) ZoomIn() {
	a.Controller.ZoomIn()
}

// ZoomOut zooms out by one step, reporting whether the scale changed.
func (a *App) ZoomOut() bool {
	return a.Controller.ZoomOut()
}

// Watch watches the colormap directory, scheduling a reload of the
// colormaps on the next [App.ProcessEvents] after each change, and
// calling wake so that a waiting UI loop gets to it. It blocks until
// ctx is done, and may be called from any goroutine.
func (a *App) Watch(ctx context.Context, wake func()) error {
	return a.Registry.Watch(ctx, func() {
		select {
		case a.reload <- struct{}{}:
		default:
		}
		if wake != nil {
			wake()
		}
	})
}

// Selected returns the index of the last requested colormap, or -1.
func (a *App) Selected() int {
	return a.selected
}

// reloadColormaps drops the cached colormaps and requests the one
// now at the selected index, or the first one if there are fewer.
func (a *App) reloadColormaps() {
	a.Surface.Loader.Reset()
	n := a.Registry.Len()
	slog.Info("colormaps changed", "colormaps", n)
	if n == 0 {
		return
	}
	idx := a.selected
	if idx < 0 || idx >= n {
		idx = 0
	}
	errors.Log(a.SelectColormap(idx))
}

// Status returns a one-line summary of the view state.
func (a *App) Status() string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	return fmt.Sprintf("%s | pan %s | zoom %s | flip %s | %s %s",
		a.ColormapName(), onOff(a.Controller.PanEnabled), onOff(a.Controller.ZoomEnabled),
		onOff(a.Surface.Flip), a.Bindings.ScaleX, a.Bindings.ScaleY)
}

// Release frees the surface and its device.
func (a *App) Release() {
	a.Surface.Release()
}
