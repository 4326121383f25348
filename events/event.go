// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events delivered to the view:
// pointer presses, moves and releases, scrolling and resizing,
// together with per-type listeners and a lock-free event queue.
package events

import (
	"time"

	"cogentcore.org/fieldview/math32"
)

// Event is the interface for all input events.
type Event interface {
	// Type returns the type of event.
	Type() Types

	// Pos returns the position of the event in window pixels,
	// relative to the top-left corner of the view.
	Pos() math32.Vector2

	// Time returns when the event was created.
	Time() time.Time

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as processed, so no further
	// listeners receive it and no default action is taken.
	SetHandled()

	String() string
}

// Base is the base type for events, implementing [Event].
type Base struct {

	// Typ is the type of event.
	Typ Types

	// Where is the position of the event in window pixels.
	Where math32.Vector2

	// GenTime is when the event was created.
	GenTime time.Time

	// Handled is set when the event has been processed.
	Handled bool
}

// Init sets the type and position of the event and its time to now.
func (ev *Base) Init(typ Types, where math32.Vector2) {
	ev.Typ = typ
	ev.Where = where
	ev.GenTime = time.Now()
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Pos() math32.Vector2 {
	return ev.Where
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) IsHandled() bool {
	return ev.Handled
}

func (ev *Base) SetHandled() {
	ev.Handled = true
}
