// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input translates pointer and wheel input into camera
// pan and zoom, gated by the pan and zoom enable toggles.
package input

import (
	"image"
	"log/slog"

	"cogentcore.org/fieldview/camera"
	"cogentcore.org/fieldview/events"
	"cogentcore.org/fieldview/math32"
)

// Handler is the capability interface for pointer and wheel input.
// Positions are in clip space: x and y in [-1, 1] across the view,
// with y up. Each method reports whether the input was consumed,
// in which case no default action should follow.
type Handler interface {
	OnPointerDown(pos math32.Vector2) bool
	OnPointerMove(pos math32.Vector2) bool
	OnPointerUp() bool
	OnWheel(deltaY float32) bool
}

// ClipPos converts a position in window pixels to clip space
// within the given view rectangle, flipping y so that it points up.
// An empty rectangle maps everything to the origin.
func ClipPos(where math32.Vector2, rect image.Rectangle) math32.Vector2 {
	if rect.Empty() {
		return math32.Vector2{}
	}
	rel := where.Sub(math32.Vector2FromPoint(rect.Min))
	n := rel.Div(math32.Vector2FromPoint(rect.Size()))
	return math32.Vec2(n.X*2-1, n.Y*-2+1)
}

// Controller is the [Handler] that pans and zooms a [camera.Camera].
// Dragging pans the view, and the wheel zooms it in fixed steps
// that never take the scale down to the step size or below.
type Controller struct {

	// Camera is the camera that is panned and zoomed.
	Camera *camera.Camera

	// PanEnabled enables panning by dragging.
	PanEnabled bool

	// ZoomEnabled enables zooming with the wheel.
	ZoomEnabled bool

	// ZoomStep is the scale change per wheel notch or zoom button press.
	// It is also the exclusive lower bound of the scale.
	ZoomStep float32

	// PanDamping scales pointer movement in clip space into pan distance.
	PanDamping float32

	// Redraw is called whenever the camera has been changed.
	Redraw func()

	dragging bool
	anchor   math32.Vector2
}

// NewController returns a new [Controller] for the given camera
// with default settings, calling redraw after each camera change.
func NewController(cam *camera.Camera, redraw func()) *Controller {
	c := &Controller{Camera: cam, Redraw: redraw}
	c.Defaults()
	return c
}

// Defaults enables panning and zooming with the standard step and damping.
func (c *Controller) Defaults() {
	c.PanEnabled = true
	c.ZoomEnabled = true
	c.ZoomStep = 0.02
	c.PanDamping = 0.25
}

// Dragging returns whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

func (c *Controller) redraw() {
	if c.Redraw != nil {
		c.Redraw()
	}
}

// OnPointerDown starts a drag anchored at pos.
func (c *Controller) OnPointerDown(pos math32.Vector2) bool {
	c.anchor = pos
	c.dragging = true
	return true
}

// OnPointerMove pans the camera by the damped distance moved since
// the anchor, and moves the anchor to pos. It does nothing unless
// dragging, and is not consumed at all when panning is disabled.
func (c *Controller) OnPointerMove(pos math32.Vector2) bool {
	if !c.PanEnabled {
		return false
	}
	if !c.dragging {
		return true
	}
	d := pos.Sub(c.anchor).MulScalar(c.PanDamping)
	c.Camera.Pan.X += d.X
	c.Camera.Pan.Y += d.Y
	c.anchor = pos
	c.redraw()
	return true
}

// OnPointerUp ends any drag; it also serves for the pointer leaving the view.
func (c *Controller) OnPointerUp() bool {
	c.dragging = false
	return true
}

// OnWheel zooms one step out for a positive deltaY (scrolling down)
// and one step in otherwise. A step that would take either scale
// axis to ZoomStep or below is ignored. It is not consumed when
// zooming is disabled.
func (c *Controller) OnWheel(deltaY float32) bool {
	if !c.ZoomEnabled {
		return false
	}
	dir := float32(1)
	if deltaY > 0 {
		dir = -1
	}
	sx := c.Camera.Scale.X + c.ZoomStep*dir
	sy := c.Camera.Scale.Y + c.ZoomStep*dir
	if sx > c.ZoomStep && sy > c.ZoomStep {
		c.setScale(sx, sy)
	}
	return true
}

// ZoomIn increases the scale by one step.
func (c *Controller) ZoomIn() {
	c.setScale(c.Camera.Scale.X+c.ZoomStep, c.Camera.Scale.Y+c.ZoomStep)
}

// ZoomOut decreases the scale by one step if both axes are above the
// step now and stay above it afterwards. It reports whether it zoomed.
func (c *Controller) ZoomOut() bool {
	s := c.Camera.Scale
	if s.X <= c.ZoomStep || s.Y <= c.ZoomStep {
		return false
	}
	sx, sy := s.X-c.ZoomStep, s.Y-c.ZoomStep
	if sx <= c.ZoomStep || sy <= c.ZoomStep {
		return false
	}
	c.setScale(sx, sy)
	return true
}

func (c *Controller) setScale(sx, sy float32) {
	c.Camera.Scale.X = sx
	c.Camera.Scale.Y = sy
	slog.Debug("zoom", "scale", c.Camera.Scale)
	c.redraw()
}

// HandleEvent dispatches a window event to h, converting positions
// to clip space within rect, and marks the event handled when h
// consumes it. It reports whether the event was handled.
func HandleEvent(h Handler, ev events.Event, rect image.Rectangle) bool {
	var handled bool
	switch ev.Type() {
	case events.PointerDown:
		handled = h.OnPointerDown(ClipPos(ev.Pos(), rect))
	case events.PointerMove:
		handled = h.OnPointerMove(ClipPos(ev.Pos(), rect))
	case events.PointerUp, events.PointerLeave:
		handled = h.OnPointerUp()
	case events.Scroll:
		if sc, ok := ev.(*events.PointerScroll); ok {
			handled = h.OnWheel(sc.Delta.Y)
		}
	}
	if handled {
		ev.SetHandled()
	}
	return handled
}

// Listen adds listeners for all pointer and wheel events to ls
// that dispatch to h through [HandleEvent]. rect returns the
// current view rectangle.
func Listen(ls *events.Listeners, h Handler, rect func() image.Rectangle) {
	for _, typ := range []events.Types{events.PointerDown, events.PointerMove, events.PointerUp, events.PointerLeave, events.Scroll} {
		ls.Add(typ, func(ev events.Event) {
			HandleEvent(h, ev, rect())
		})
	}
}
