// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/fieldview/math32"
)

// Key is a [KeyChord] event for a typed character.
type Key struct {
	Base

	// Rune is the character typed.
	Rune rune
}

// NewKey returns a new [KeyChord] event for the given character.
func NewKey(r rune) *Key {
	ev := &Key{Rune: r}
	ev.Init(KeyChord, math32.Vector2{})
	return ev
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Rune: %q, Time: %v}", ev.Type(), ev.Rune, ev.Time().Format("04:05"))
}
