// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the camera that places the field quad on
// screen: a view translation for panning, a model scale for zooming,
// and a perspective projection.
package camera

import (
	"fmt"

	"cogentcore.org/fieldview/field"
	"cogentcore.org/fieldview/math32"
	"cogentcore.org/fieldview/math32/minmax"
)

// Camera holds the pan, zoom and value range state of a viewing session.
// Scale is kept positive by the input layer; Camera does not enforce it.
type Camera struct {

	// Pan is the view translation; Z is the distance back from the quad.
	Pan math32.Vector3

	// Scale is the model scale; only X and Y are used for zooming.
	Scale math32.Vector3

	// Range is the value range of the loaded field, (0, 0) before any load.
	Range minmax.F32

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32
}

// New returns a new [Camera] with default values.
func New() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

// Defaults sets the default camera: looking at the quad from 2 units away,
// unscaled, with a 60 degree field of view.
func (cm *Camera) Defaults() {
	cm.Pan.Set(0, 0, -2)
	cm.ResetScale()
	cm.Range = minmax.F32{}
	cm.FOV = 60
	cm.Near = 0.01
	cm.Far = 100
}

// ResetScale sets the scale back to 1 on all axes.
func (cm *Camera) ResetScale() {
	cm.Scale.SetScalar(1)
}

// SetRange sets the value range, which must satisfy min < max.
func (cm *Camera) SetRange(rng minmax.F32) error {
	if !rng.IsStrict() {
		return fmt.Errorf("camera: %w: [%g, %g]", field.ErrInvalidRange, rng.Min, rng.Max)
	}
	cm.Range = rng
	return nil
}

// Projection returns the perspective projection for the given aspect ratio
// (width / height), with depth in [-1, 1].
func (cm *Camera) Projection(aspect float32) math32.Matrix4 {
	if aspect <= 0 || math32.IsNaN(aspect) || math32.IsInf(aspect, 0) {
		aspect = 1
	}
	return math32.Perspective4(cm.FOV, aspect, cm.Near, cm.Far)
}

// View returns the view matrix: identity translated by Pan.
func (cm *Camera) View() math32.Matrix4 {
	return math32.Translate4(cm.Pan.X, cm.Pan.Y, cm.Pan.Z)
}

// Model returns the model matrix: identity scaled by Scale.X and Scale.Y.
func (cm *Camera) Model() math32.Matrix4 {
	return math32.Scale4(cm.Scale.X, cm.Scale.Y, 1)
}

// MVP returns Projection * View * Model for the given aspect ratio.
func (cm *Camera) MVP(aspect float32) math32.Matrix4 {
	return cm.Projection(aspect).Mul(cm.View()).Mul(cm.Model())
}

func (cm *Camera) String() string {
	return fmt.Sprintf("Camera pan: %v scale: %v range: [%g, %g]", cm.Pan, cm.Scale, cm.Range.Min, cm.Range.Max)
}
