// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soft

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"cogentcore.org/fieldview/base/iox/imagex"
	"cogentcore.org/fieldview/camera"
	"cogentcore.org/fieldview/colormap"
	"cogentcore.org/fieldview/field"
	"cogentcore.org/fieldview/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// newSurface returns a ready surface on a software device of the given
// size showing f through a red to blue colormap.
func newSurface(t *testing.T, size image.Point, f *field.Field) (*render.Surface, *Device) {
	t.Helper()
	cm, err := colormap.New("redblue", []color.RGBA{red, blue})
	require.NoError(t, err)
	d := New(size)
	s := render.NewSurface(d, camera.New(), colormap.NewRegistry(cm), render.LogAlerter{})
	require.NoError(t, s.Init())
	require.NoError(t, s.LoadField(f))
	require.NoError(t, s.SetColormap(0))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Loader.Wait(ctx))
	require.Equal(t, render.Ready, s.State())
	return s, d
}

func constField(t *testing.T, v float32) *field.Field {
	t.Helper()
	f, err := field.New([]float32{v, v, v, v}, 2, 2, 0, 1)
	require.NoError(t, err)
	return f
}

func TestUniformField(t *testing.T) {
	s, d := newSurface(t, image.Pt(32, 24), constField(t, 1))
	require.NoError(t, s.Draw())
	img := d.Snapshot()
	require.NotNil(t, img)
	assert.Equal(t, image.Pt(32, 24), img.Bounds().Size())
	// the default camera fills the view
	for _, pt := range []image.Point{{0, 0}, {31, 23}, {16, 12}} {
		assert.Equal(t, blue, img.RGBAAt(pt.X, pt.Y), "%v", pt)
	}

	s.SetFlip(true)
	require.NoError(t, s.Draw())
	assert.Equal(t, red, d.Snapshot().RGBAAt(16, 12))

	// values beyond the range are clamped
	require.NoError(t, s.LoadField(constField(t, 1)))
	s.Camera.Range.Max = 0.5
	s.SetFlip(false)
	require.NoError(t, s.Draw())
	assert.Equal(t, blue, d.Snapshot().RGBAAt(16, 12))
}

func TestZoomedOut(t *testing.T) {
	s, d := newSurface(t, image.Pt(40, 40), constField(t, 0))
	s.Camera.Scale.Set(0.2, 0.2, 1)
	require.NoError(t, s.Draw())
	img := d.Snapshot()
	black := color.RGBA{0, 0, 0, 255}
	assert.Equal(t, black, img.RGBAAt(0, 0))
	assert.Equal(t, black, img.RGBAAt(39, 39))
	assert.Equal(t, red, img.RGBAAt(20, 20))

	// panning right moves the quad right
	s.Camera.Pan.X = 0.5
	require.NoError(t, s.Draw())
	img = d.Snapshot()
	assert.Equal(t, black, img.RGBAAt(20, 20))
	assert.Equal(t, red, img.RGBAAt(37, 20))
}

func TestRamp(t *testing.T) {
	f, err := field.Pattern("ramp", 16, 4)
	require.NoError(t, err)
	s, d := newSurface(t, image.Pt(64, 48), f)
	require.NoError(t, s.Draw())
	img := d.Snapshot()
	prev := img.RGBAAt(0, 24)
	for x := 1; x < 64; x++ {
		c := img.RGBAAt(x, 24)
		assert.LessOrEqual(t, c.R, prev.R, "x=%d", x)
		assert.GreaterOrEqual(t, c.B, prev.B, "x=%d", x)
		prev = c
	}
	assert.Greater(t, img.RGBAAt(0, 24).R, img.RGBAAt(63, 24).R)
}

func TestWorkersDeterministic(t *testing.T) {
	f, err := field.Pattern("gauss", 20, 12)
	require.NoError(t, err)
	s, d := newSurface(t, image.Pt(50, 30), f)
	d.Workers = 1
	require.NoError(t, s.Draw())
	one := d.Snapshot()
	d.Workers = 7
	require.NoError(t, s.Draw())
	_, n := imagex.DiffImage(one, d.Snapshot(), 0)
	assert.Equal(t, 0, n)
}

func TestResize(t *testing.T) {
	s, d := newSurface(t, image.Pt(20, 10), constField(t, 1))
	require.NoError(t, s.Draw())
	d.Size = image.Pt(30, 30)
	require.NoError(t, s.Draw())
	assert.Equal(t, image.Pt(30, 30), d.BackingSize())
	assert.Equal(t, image.Pt(30, 30), d.Snapshot().Bounds().Size())
	assert.Equal(t, 3, d.Frames(), "one frame on colormap bind, two draws")
}

func TestCompileProgram(t *testing.T) {
	d := New(image.Pt(4, 4))
	require.NoError(t, d.Open())
	p, err := d.CompileProgram(render.Shader())
	require.NoError(t, err)
	assert.Equal(t, "fieldview", p.Source().Name)

	src := render.Shader()
	src.VertexEntry = "main"
	_, err = d.CompileProgram(src)
	assert.ErrorIs(t, err, render.ErrShaderCompile)
	var se *render.StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, render.VertexStage, se.Stage)

	src = render.Shader()
	src.FragmentEntry = "main"
	_, err = d.CompileProgram(src)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, render.FragmentStage, se.Stage)

	src = render.Shader()
	src.Code = "@vertex fn vs_main() {} @fragment fn fs_main() {}"
	_, err = d.CompileProgram(src)
	assert.ErrorIs(t, err, render.ErrProgramLink)
}

func TestOpen(t *testing.T) {
	d := New(image.Point{})
	assert.ErrorIs(t, d.Open(), render.ErrContextUnavailable)
	assert.Nil(t, d.Snapshot())

	d = New(image.Pt(2, 2))
	d.NoFloatTextures = true
	require.NoError(t, d.Open())
	assert.False(t, d.Features().FloatTextures)
	_, err := d.NewFieldTexture(constField(t, 0))
	assert.Error(t, err)
}
