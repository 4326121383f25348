// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"

	"cogentcore.org/fieldview/camera"
	"cogentcore.org/fieldview/math32"
)

// Slider binds a numeric control to one camera value.
type Slider struct {

	// Label is shown next to the control.
	Label string

	// Min and Max bound the value. Min itself is excluded
	// when MinExclusive is set.
	Min, Max float32

	// MinExclusive makes Min an exclusive lower bound.
	MinExclusive bool

	// Step is the increment of the control.
	Step float32

	// Precision is the number of decimals shown.
	Precision int

	get    func() float32
	set    func(v float32)
	redraw func()
}

// Value returns the current value.
func (s *Slider) Value() float32 {
	return s.get()
}

// Set clamps v to [Min, Max], stores it and calls the redraw callback.
// With MinExclusive, a value at or below Min is ignored instead, and
// Set reports false.
func (s *Slider) Set(v float32) bool {
	if s.MinExclusive && v <= s.Min {
		return false
	}
	s.set(math32.Clamp(v, s.Min, s.Max))
	if s.redraw != nil {
		s.redraw()
	}
	return true
}

// Text returns the value formatted with Precision decimals.
func (s *Slider) Text() string {
	return fmt.Sprintf("%.*f", s.Precision, s.Value())
}

func (s *Slider) String() string {
	return s.Label + ": " + s.Text()
}

// Bindings are the controls bound to the camera. Each one
// holds the redraw callback and calls it on every change.
type Bindings struct {
	ScaleX *Slider
	ScaleY *Slider
}

// NewBindings returns the bindings of cam, calling redraw after each change.
// The scale sliders stay above minScale, the zoom step, so that the
// wheel can always zoom back in.
func NewBindings(cam *camera.Camera, minScale float32, redraw func()) *Bindings {
	slider := func(label string, v *float32) *Slider {
		return &Slider{
			Label:        label,
			Min:          minScale,
			MinExclusive: true,
			Max:          10,
			Step:         0.001,
			Precision:    2,
			get:       func() float32 { return *v },
			set:       func(nv float32) { *v = nv },
			redraw:    redraw,
		}
	}
	return &Bindings{
		ScaleX: slider("Scale X", &cam.Scale.X),
		ScaleY: slider("Scale Y", &cam.Scale.Y),
	}
}

// Sliders returns all sliders in display order.
func (b *Bindings) Sliders() []*Slider {
	return []*Slider{b.ScaleX, b.ScaleY}
}
