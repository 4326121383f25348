// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"cogentcore.org/fieldview/base/tolassert"
	"cogentcore.org/fieldview/field"
	"cogentcore.org/fieldview/math32"
	"cogentcore.org/fieldview/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cm := New()
	assert.Equal(t, math32.Vec3(0, 0, -2), cm.Pan)
	assert.Equal(t, math32.Vec3(1, 1, 1), cm.Scale)
	assert.Equal(t, minmax.F32{}, cm.Range)
	assert.Equal(t, float32(60), cm.FOV)
}

func TestSetRange(t *testing.T) {
	cm := New()
	assert.NoError(t, cm.SetRange(minmax.Range32(-1, 3)))
	assert.Equal(t, minmax.Range32(-1, 3), cm.Range)
	assert.ErrorIs(t, cm.SetRange(minmax.Range32(2, 2)), field.ErrInvalidRange)
	assert.ErrorIs(t, cm.SetRange(minmax.Range32(3, 1)), field.ErrInvalidRange)
	assert.Equal(t, minmax.Range32(-1, 3), cm.Range)
}

func TestMVP(t *testing.T) {
	cm := New()
	f := 1 / math32.Tan(math32.DegToRad(30))

	mvp := cm.MVP(1)
	center := math32.Vec3(0, 0, 1).MulMatrix4AsPoint(&mvp)
	tolassert.EqualTol(t, 0, center.X, 1e-6)
	tolassert.EqualTol(t, 0, center.Y, 1e-6)

	// corner at distance 1 from the eye
	corner := math32.Vec3(1, 1, 1).MulMatrix4AsPoint(&mvp)
	tolassert.EqualTol(t, f, corner.X, 1e-5)
	tolassert.EqualTol(t, f, corner.Y, 1e-5)

	// aspect only narrows x
	mvp = cm.MVP(2)
	corner = math32.Vec3(1, 1, 1).MulMatrix4AsPoint(&mvp)
	tolassert.EqualTol(t, f/2, corner.X, 1e-5)
	tolassert.EqualTol(t, f, corner.Y, 1e-5)

	// zoom scales x and y linearly, z is untouched
	cm.Scale.Set(0.5, 2, 7)
	mvp = cm.MVP(1)
	corner = math32.Vec3(1, 1, 1).MulMatrix4AsPoint(&mvp)
	tolassert.EqualTol(t, f*0.5, corner.X, 1e-5)
	tolassert.EqualTol(t, f*2, corner.Y, 1e-5)

	// pan shifts the image
	cm.ResetScale()
	cm.Pan.X = 0.25
	mvp = cm.MVP(1)
	center = math32.Vec3(0, 0, 1).MulMatrix4AsPoint(&mvp)
	tolassert.EqualTol(t, f*0.25, center.X, 1e-5)

	want := cm.Projection(1).Mul(cm.View()).Mul(cm.Model())
	assert.Equal(t, want, cm.MVP(1))
}

func TestProjectionBadAspect(t *testing.T) {
	cm := New()
	assert.Equal(t, cm.Projection(1), cm.Projection(0))
	assert.Equal(t, cm.Projection(1), cm.Projection(-3))
}
