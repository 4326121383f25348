// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render_test

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"cogentcore.org/fieldview/camera"
	"cogentcore.org/fieldview/colormap"
	"cogentcore.org/fieldview/field"
	"cogentcore.org/fieldview/math32"
	"cogentcore.org/fieldview/render"
	"cogentcore.org/fieldview/soft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingDevice is a software device whose context or program
// can be made to fail.
type failingDevice struct {
	*soft.Device
	openErr     error
	compileErr  error
	colormapErr error
	renders     int
}

func (d *failingDevice) NewColormapTexture(cm *colormap.Colormap) (render.Resource, error) {
	if d.colormapErr != nil {
		return nil, d.colormapErr
	}
	return d.Device.NewColormapTexture(cm)
}

func (d *failingDevice) Open() error {
	if d.openErr != nil {
		return d.openErr
	}
	return d.Device.Open()
}

func (d *failingDevice) CompileProgram(src render.ProgramSource) (render.Program, error) {
	if d.compileErr != nil {
		return nil, d.compileErr
	}
	return d.Device.CompileProgram(src)
}

func (d *failingDevice) Render(fr *render.Frame) error {
	d.renders++
	return d.Device.Render(fr)
}

type alerts []string

func (a *alerts) Alert(msg string) { *a = append(*a, msg) }

func testRegistry(t *testing.T) *colormap.Registry {
	gray, err := colormap.Gradient("gray", 16, "#000000", "#ffffff")
	require.NoError(t, err)
	hot, err := colormap.Gradient("hot", 16, "#ff0000", "#ffff00")
	require.NoError(t, err)
	return colormap.NewRegistry(gray, hot)
}

func testField(t *testing.T) *field.Field {
	f, err := field.FromRows([][]float32{{0, 10}, {20, 30}}, 0, 30)
	require.NoError(t, err)
	return f
}

func wait(t *testing.T, s *render.Surface) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Loader.Wait(ctx))
}

func TestQuad(t *testing.T) {
	q := render.Quad()
	assert.Equal(t, 2, q.Triangles())
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, q.Indices)
	for _, p := range q.Positions {
		assert.Equal(t, float32(1), p.Z)
	}
	assert.Equal(t, math32.Vec2(0, 1), q.TexCoords[0])
	assert.Equal(t, math32.Vec2(0, 0), q.TexCoords[3])
}

func TestShader(t *testing.T) {
	src := render.Shader()
	assert.Contains(t, src.Code, "fn "+src.VertexEntry+"(")
	assert.Contains(t, src.Code, "fn "+src.FragmentEntry+"(")
}

func TestBlendDepth(t *testing.T) {
	b := render.Blend{Src: render.BlendOne, Dst: render.BlendOneMinusSrcAlpha}
	assert.Equal(t, [4]float32{0.2, 0.4, 0.6, 1}, b.Apply([4]float32{0.2, 0.4, 0.6, 1}, [4]float32{1, 1, 1, 1}))
	half := b.Apply([4]float32{0.25, 0, 0, 0.5}, [4]float32{0, 1, 0, 1})
	assert.Equal(t, [4]float32{0.25, 0.5, 0, 1}, half)

	assert.True(t, render.CompareLessEqual.Test(1, 1))
	assert.False(t, render.CompareLess.Test(1, 1))
	assert.True(t, render.CompareAlways.Test(2, 1))
}

func TestSurfaceLifecycle(t *testing.T) {
	dev := &failingDevice{Device: soft.New(image.Pt(16, 16))}
	cam := camera.New()
	var al alerts
	s := render.NewSurface(dev, cam, testRegistry(t), &al)
	assert.Equal(t, render.Uninitialized, s.State())
	assert.ErrorIs(t, s.LoadField(testField(t)), render.ErrNotInitialized)
	assert.ErrorIs(t, s.SetColormap(0), render.ErrNotInitialized)
	assert.NoError(t, s.Draw())

	require.NoError(t, s.Init())
	assert.Equal(t, render.Initialized, s.State())
	assert.NotNil(t, s.Program())
	assert.NoError(t, s.Init())

	cam.Scale.Set(3, 3, 1)
	require.NoError(t, s.LoadField(testField(t)))
	assert.Equal(t, render.Initialized, s.State(), "no colormap yet")
	assert.Equal(t, math32.Vec3(1, 1, 1), cam.Scale)
	assert.Equal(t, float32(30), cam.Range.Max)
	require.NoError(t, s.Draw())
	assert.Equal(t, 0, dev.renders)

	require.NoError(t, s.SetColormap(1))
	assert.Equal(t, -1, s.ColormapIndex(), "still loading")
	wait(t, s)
	assert.Equal(t, render.Ready, s.State())
	assert.Equal(t, 1, s.ColormapIndex())
	assert.Equal(t, 1, dev.renders, "drawn when the colormap is bound")

	require.NoError(t, s.Draw())
	assert.Equal(t, 2, dev.renders)
	assert.Empty(t, al)

	fr := s.Frame()
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, fr.ClearColor)
	assert.Equal(t, float32(1), fr.ClearDepth)
	assert.Equal(t, render.Blend{Src: render.BlendOne, Dst: render.BlendOneMinusSrcAlpha}, fr.Blend)
	assert.Equal(t, render.CompareLessEqual, fr.DepthFunc)
	assert.Equal(t, cam.MVP(1), fr.Uniforms.MVP)
	assert.Equal(t, float32(0), fr.Uniforms.Min)
	assert.Equal(t, float32(30), fr.Uniforms.Max)
	assert.NotNil(t, fr.Textures[render.ColormapUnit])
	assert.NotNil(t, fr.Textures[render.DataUnit])

	s.SetFlip(true)
	assert.True(t, s.Frame().Uniforms.Flip)

	s.Release()
}

func TestSurfaceColormapRace(t *testing.T) {
	gate := make(chan struct{})
	reg := testRegistry(t)
	src := colormap.SourceFunc(func(i int) (*colormap.Colormap, error) {
		if i == 1 {
			<-gate
		}
		return reg.Load(i)
	})
	s := render.NewSurface(soft.New(image.Pt(8, 8)), camera.New(), src, nil)
	require.NoError(t, s.Init())
	require.NoError(t, s.LoadField(testField(t)))

	require.NoError(t, s.SetColormap(0))
	wait(t, s)
	require.NoError(t, s.SetColormap(1))
	require.NoError(t, s.SetColormap(0))
	assert.Equal(t, 0, s.ColormapIndex())
	close(gate)
	wait(t, s)
	assert.Equal(t, 0, s.ColormapIndex())
}

func TestSurfaceBadColormapKeepsPrevious(t *testing.T) {
	reg := testRegistry(t)
	src := colormap.SourceFunc(func(i int) (*colormap.Colormap, error) {
		if i == 1 {
			return nil, colormap.ErrNotImage
		}
		return reg.Load(i)
	})
	s := render.NewSurface(soft.New(image.Pt(8, 8)), camera.New(), src, nil)
	require.NoError(t, s.Init())
	require.NoError(t, s.LoadField(testField(t)))
	require.NoError(t, s.SetColormap(0))
	wait(t, s)
	require.NoError(t, s.SetColormap(1))
	wait(t, s)
	assert.Equal(t, 0, s.ColormapIndex())
	assert.Equal(t, render.Ready, s.State())
}

func TestSurfaceColormapUploadFails(t *testing.T) {
	dev := &failingDevice{Device: soft.New(image.Pt(8, 8))}
	s := render.NewSurface(dev, camera.New(), testRegistry(t), nil)
	require.NoError(t, s.Init())
	require.NoError(t, s.LoadField(testField(t)))
	require.NoError(t, s.SetColormap(0))
	wait(t, s)

	dev.colormapErr = errors.New("out of memory")
	require.NoError(t, s.SetColormap(1))
	wait(t, s)
	assert.Equal(t, 0, s.ColormapIndex())
	idx, cm := s.Loader.Current()
	assert.Equal(t, 0, idx)
	assert.Equal(t, "gray", cm.Name)
	assert.Equal(t, render.Ready, s.State())
}

func TestSurfaceContextUnavailable(t *testing.T) {
	dev := &failingDevice{Device: soft.New(image.Pt(8, 8)), openErr: errors.New("no adapter")}
	var al alerts
	s := render.NewSurface(dev, camera.New(), testRegistry(t), &al)
	err := s.Init()
	assert.ErrorIs(t, err, render.ErrContextUnavailable)
	assert.Equal(t, render.Failed, s.State())
	assert.ErrorIs(t, s.Err(), render.ErrContextUnavailable)
	require.Len(t, al, 1)
	assert.Contains(t, al[0], "no adapter")

	// everything after is a no-op
	assert.NoError(t, s.LoadField(testField(t)))
	assert.NoError(t, s.SetColormap(0))
	assert.NoError(t, s.Draw())
	assert.Equal(t, 0, dev.renders)
	assert.ErrorIs(t, s.Init(), render.ErrContextUnavailable)
	assert.Len(t, al, 1)
}

func TestSurfaceNoFloatTextures(t *testing.T) {
	dev := soft.New(image.Pt(8, 8))
	dev.NoFloatTextures = true
	var al alerts
	s := render.NewSurface(dev, camera.New(), testRegistry(t), &al)
	assert.ErrorIs(t, s.Init(), render.ErrContextUnavailable)
	assert.Equal(t, render.Failed, s.State())
	assert.Len(t, al, 1)
}

func TestSurfaceShaderFailure(t *testing.T) {
	for _, stage := range []render.Stages{render.VertexStage, render.FragmentStage, render.LinkStage} {
		dev := &failingDevice{Device: soft.New(image.Pt(8, 8)), compileErr: render.NewStageError(stage, "syntax error")}
		var al alerts
		s := render.NewSurface(dev, camera.New(), testRegistry(t), &al)
		err := s.Init()
		require.Len(t, al, 1)
		if stage == render.LinkStage {
			assert.ErrorIs(t, err, render.ErrProgramLink)
		} else {
			assert.ErrorIs(t, err, render.ErrShaderCompile)
			assert.Contains(t, al[0], stage.String())
		}
		assert.Nil(t, s.Program())
		assert.Equal(t, render.Failed, s.State())
		assert.NoError(t, s.Draw())
		assert.Equal(t, 0, dev.renders)
	}
}
