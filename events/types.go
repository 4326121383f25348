// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of input event, and also the
// level at which one can select which events to listen to.
// The names follow the standard
// [JavaScript pointer events](https://developer.mozilla.org/en-US/docs/Web/API/Pointer_events).
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// PointerDown happens when a pointer button is pressed down
	// inside the view. It starts a drag.
	PointerDown

	// PointerMove is sent whenever the pointer moves inside the view,
	// whether or not a button is down.
	PointerMove

	// PointerUp happens when the pointer button is released.
	PointerUp

	// PointerLeave happens when the pointer leaves the view; it ends
	// any drag in progress just as PointerUp does.
	PointerLeave

	// Scroll is a mouse wheel or trackpad scroll, with a Delta
	// in which positive Y is scrolling down.
	Scroll

	// Resize is sent when the displayed size of the view changes.
	Resize

	// KeyChord is a typed character, used for keyboard shortcuts.
	KeyChord

	// TypesN is the number of event types.
	TypesN
)

var typesNames = [...]string{
	UnknownType:  "UnknownType",
	PointerDown:  "PointerDown",
	PointerMove:  "PointerMove",
	PointerUp:    "PointerUp",
	PointerLeave: "PointerLeave",
	Scroll:       "Scroll",
	Resize:       "Resize",
	KeyChord:     "KeyChord",
}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "UnknownType"
	}
	return typesNames[tp]
}
