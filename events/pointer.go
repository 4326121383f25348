// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"cogentcore.org/fieldview/math32"
)

// Pointer is a pointer (mouse, pen or touch) event for all
// pointer events except [Scroll].
type Pointer struct {
	Base
}

// NewPointer returns a new [Pointer] event of the given type at the given position.
func NewPointer(typ Types, where math32.Vector2) *Pointer {
	ev := &Pointer{}
	ev.Init(typ, where)
	return ev
}

func (ev *Pointer) String() string {
	return fmt.Sprintf("%v{Pos: %v, Time: %v}", ev.Type(), ev.Where, ev.Time().Format("04:05"))
}

// PointerScroll is for wheel and trackpad scrolling, recording the delta of the scroll.
type PointerScroll struct {
	Pointer

	// Delta is the amount of scrolling in each axis, in the
	// direction of page scrolling: positive Y scrolls down.
	Delta math32.Vector2
}

// NewScroll returns a new [Scroll] event at the given position.
func NewScroll(where, delta math32.Vector2) *PointerScroll {
	ev := &PointerScroll{}
	ev.Init(Scroll, where)
	ev.Delta = delta
	return ev
}

func (ev *PointerScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Time: %v}", ev.Type(), ev.Delta, ev.Where, ev.Time().Format("04:05"))
}

// WindowResize is sent when the displayed size of the view changes.
type WindowResize struct {
	Base

	// Size is the new displayed size in window pixels.
	Size image.Point
}

// NewResize returns a new [Resize] event for the given size.
func NewResize(size image.Point) *WindowResize {
	ev := &WindowResize{}
	ev.Init(Resize, math32.Vector2{})
	ev.Size = size
	return ev
}

func (ev *WindowResize) String() string {
	return fmt.Sprintf("%v{Size: %v, Time: %v}", ev.Type(), ev.Size, ev.Time().Format("04:05"))
}
