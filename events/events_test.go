// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"sync"
	"testing"

	"cogentcore.org/fieldview/math32"
	"github.com/stretchr/testify/assert"
)

func TestTypesString(t *testing.T) {
	assert.Equal(t, "PointerDown", PointerDown.String())
	assert.Equal(t, "Resize", Resize.String())
	assert.Equal(t, "UnknownType", Types(99).String())
}

func TestEvents(t *testing.T) {
	ev := NewPointer(PointerDown, math32.Vec2(3, 4))
	assert.Equal(t, PointerDown, ev.Type())
	assert.Equal(t, math32.Vec2(3, 4), ev.Pos())
	assert.False(t, ev.IsHandled())
	ev.SetHandled()
	assert.True(t, ev.IsHandled())
	assert.Contains(t, ev.String(), "PointerDown")

	sc := NewScroll(math32.Vec2(1, 1), math32.Vec2(0, -120))
	var e Event = sc
	assert.Equal(t, Scroll, e.Type())
	assert.Equal(t, float32(-120), sc.Delta.Y)

	rs := NewResize(image.Pt(640, 480))
	assert.Equal(t, Resize, rs.Type())
	assert.Equal(t, image.Pt(640, 480), rs.Size)

	k := NewKey('+')
	assert.Equal(t, KeyChord, k.Type())
	assert.Equal(t, '+', k.Rune)
	assert.Contains(t, k.String(), `'+'`)
}

func TestListeners(t *testing.T) {
	var ls Listeners
	var calls []string
	ls.Add(PointerDown, func(ev Event) {
		calls = append(calls, "first")
	})
	ls.Add(PointerDown, func(ev Event) {
		calls = append(calls, "second")
	})
	assert.False(t, ls.Call(NewPointer(PointerDown, math32.Vector2{})))
	assert.Equal(t, []string{"second", "first"}, calls)

	calls = nil
	ls.Add(PointerDown, func(ev Event) {
		calls = append(calls, "handler")
		ev.SetHandled()
	})
	assert.True(t, ls.Call(NewPointer(PointerDown, math32.Vector2{})))
	assert.Equal(t, []string{"handler"}, calls)

	assert.False(t, ls.Call(NewPointer(PointerUp, math32.Vector2{})))
}

func TestQueue(t *testing.T) {
	var q Queue
	q.Init()
	assert.Nil(t, q.Next())

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				q.Send(NewPointer(PointerMove, math32.Vec2(float32(i), 0)))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, q.Len())

	n := 0
	q.Drain(func(ev Event) {
		n++
	})
	assert.Equal(t, 400, n)
	assert.Equal(t, 0, q.Len())

	q.Send(NewPointer(PointerDown, math32.Vector2{}))
	q.Send(NewPointer(PointerUp, math32.Vector2{}))
	assert.Equal(t, PointerDown, q.Next().Type())
	assert.Equal(t, PointerUp, q.Next().Type())
	assert.Nil(t, q.Next())
}
