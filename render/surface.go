// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws a scalar field through a colormap onto a
// [Device]: the [Surface] owns the device resources (quad geometry,
// data and colormap textures, the shader program) and builds each
// frame from the camera.
package render

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/fieldview/base/errors"
	"cogentcore.org/fieldview/camera"
	"cogentcore.org/fieldview/colormap"
	"cogentcore.org/fieldview/field"
)

// States are the lifecycle states of a [Surface].
type States int32

const (
	// Uninitialized is before [Surface.Init].
	Uninitialized States = iota

	// Initialized has a device, program and geometry, but is still
	// missing a field or a colormap.
	Initialized

	// Ready has everything needed to draw.
	Ready

	// Failed is entered when the device or program could not be made.
	// It is final: all further calls do nothing.
	Failed
)

func (st States) String() string {
	switch st {
	case Uninitialized:
		return "Uninitialized"
	case Initialized:
		return "Initialized"
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("States(%d)", int32(st))
}

// Surface renders a [field.Field] through a [colormap.Colormap]
// as seen by a [camera.Camera]. It must only be used from the
// UI goroutine.
type Surface struct {

	// Device is the rendering context.
	Device Device

	// Camera supplies the transform and value range of each frame.
	Camera *camera.Camera

	// Alerter is told about fatal failures.
	Alerter Alerter

	// Loader loads colormaps for [Surface.SetColormap].
	Loader *colormap.Loader

	// Flip mirrors the colormap.
	Flip bool

	state    States
	err      error
	program  Program
	geometry Resource
	data     Resource
	cmap     Resource
	field    *field.Field
	cmIndex  int
}

// NewSurface returns a new [Surface] drawing on dev with the given camera,
// loading colormaps from src and reporting failures to al.
func NewSurface(dev Device, cam *camera.Camera, src colormap.Source, al Alerter) *Surface {
	s := &Surface{Device: dev, Camera: cam, Alerter: al, cmIndex: -1}
	s.Loader = colormap.NewLoader(src)
	s.Loader.OnLoad = s.bindColormap
	return s
}

// State returns the current lifecycle state.
func (s *Surface) State() States {
	return s.state
}

// Err returns the failure that put the surface in the [Failed] state.
func (s *Surface) Err() error {
	return s.err
}

// Program returns the field program, nil unless initialized.
func (s *Surface) Program() Program {
	return s.program
}

// Field returns the loaded field, if any.
func (s *Surface) Field() *field.Field {
	return s.field
}

// ColormapIndex returns the index of the bound colormap, or -1.
func (s *Surface) ColormapIndex() int {
	return s.cmIndex
}

// fail enters the [Failed] state and alerts the user.
func (s *Surface) fail(err error) error {
	s.state = Failed
	s.err = err
	slog.Error("rendering disabled", "err", err)
	if s.Alerter != nil {
		s.Alerter.Alert("Error: " + err.Error())
	}
	return err
}

// Init opens the device and builds the program and quad geometry.
// A device without linear-filtered float textures counts as
// unavailable. On failure the surface enters the [Failed] state,
// the user is alerted, and the error is returned.
func (s *Surface) Init() error {
	switch s.state {
	case Failed:
		return s.err
	case Initialized, Ready:
		return nil
	}
	if err := s.Device.Open(); err != nil {
		if !errors.Is(err, ErrContextUnavailable) {
			err = fmt.Errorf("%w: %w", ErrContextUnavailable, err)
		}
		return s.fail(err)
	}
	if !s.Device.Features().FloatTextures {
		return s.fail(fmt.Errorf("%w: linear filtering of float textures is not supported", ErrContextUnavailable))
	}
	prog, err := s.Device.CompileProgram(Shader())
	if err != nil {
		return s.fail(err)
	}
	s.program = prog
	geom, err := s.Device.NewGeometry(Quad())
	if err != nil {
		return s.fail(fmt.Errorf("render: uploading geometry: %w", err))
	}
	s.geometry = geom
	s.state = Initialized
	slog.Debug("surface initialized", "size", s.Device.DisplaySize())
	return nil
}

// LoadField uploads the field, replacing any previous one, and resets
// the camera scale and value range to it. It does nothing once failed.
func (s *Surface) LoadField(f *field.Field) error {
	switch s.state {
	case Failed:
		return nil
	case Uninitialized:
		return ErrNotInitialized
	}
	if !f.Range.IsStrict() {
		return fmt.Errorf("render: %w: [%g, %g]", field.ErrInvalidRange, f.Range.Min, f.Range.Max)
	}
	tex, err := s.Device.NewFieldTexture(f)
	if err != nil {
		return fmt.Errorf("render: uploading field: %w", err)
	}
	release(s.data)
	s.data = tex
	s.field = f
	s.Camera.ResetScale()
	errors.Log(s.Camera.SetRange(f.Range))
	s.updateState()
	slog.Info("field loaded", "field", f.String())
	return nil
}

// SetColormap requests the colormap at index. The current colormap
// stays bound until it has loaded, and only the latest request is
// ever bound. A colormap loaded before binds and draws immediately.
// It does nothing once failed.
func (s *Surface) SetColormap(index int) error {
	switch s.state {
	case Failed:
		return nil
	case Uninitialized:
		return ErrNotInitialized
	}
	s.Loader.Request(index)
	return nil
}

// Poll binds any colormap that has finished loading, drawing the
// new frame. It reports whether a colormap was bound.
func (s *Surface) Poll() bool {
	return s.Loader.Poll()
}

// SetFlip sets whether the colormap is mirrored.
func (s *Surface) SetFlip(flip bool) {
	s.Flip = flip
}

// bindColormap is the loader callback that uploads a loaded colormap.
func (s *Surface) bindColormap(index int, cm *colormap.Colormap) error {
	if s.state != Initialized && s.state != Ready {
		return fmt.Errorf("render: cannot bind colormap %q in state %v", cm.Name, s.state)
	}
	tex, err := s.Device.NewColormapTexture(cm)
	if err != nil {
		return fmt.Errorf("render: uploading colormap %q: %w", cm.Name, err)
	}
	release(s.cmap)
	s.cmap = tex
	s.cmIndex = index
	s.updateState()
	slog.Debug("colormap bound", "index", index, "name", cm.Name)
	errors.Log(s.Draw())
	return nil
}

func (s *Surface) updateState() {
	if s.state == Initialized && s.data != nil && s.cmap != nil {
		s.state = Ready
	}
}

// Resize sets the backing size of the device to its displayed size
// if they differ.
func (s *Surface) Resize() error {
	ds := s.Device.DisplaySize()
	if ds.X <= 0 || ds.Y <= 0 || ds == s.Device.BackingSize() {
		return nil
	}
	slog.Debug("resizing surface", "size", ds)
	return s.Device.SetBackingSize(ds)
}

// Frame returns the frame for the current camera and flip state.
func (s *Surface) Frame() *Frame {
	sz := s.Device.BackingSize()
	aspect := float32(1)
	if sz.Y > 0 {
		aspect = float32(sz.X) / float32(sz.Y)
	}
	return &Frame{
		Program:  s.program,
		Geometry: s.geometry,
		Textures: [2]Resource{ColormapUnit: s.cmap, DataUnit: s.data},
		Uniforms: Uniforms{
			MVP:  s.Camera.MVP(aspect),
			Min:  s.Camera.Range.Min,
			Max:  s.Camera.Range.Max,
			Flip: s.Flip,
		},
		ClearColor: color.RGBA{0, 0, 0, 255},
		ClearDepth: 1,
		Blend:      Blend{Src: BlendOne, Dst: BlendOneMinusSrcAlpha},
		DepthFunc:  CompareLessEqual,
	}
}

// Draw renders one frame, first matching the backing size to the
// displayed size. It does nothing unless [Ready].
func (s *Surface) Draw() error {
	if s.state != Ready || s.program == nil {
		return nil
	}
	if err := s.Resize(); err != nil {
		return err
	}
	return s.Device.Render(s.Frame())
}

// DisplaySize returns the displayed size of the device.
func (s *Surface) DisplaySize() image.Point {
	return s.Device.DisplaySize()
}

// Release frees all device resources and the device itself.
func (s *Surface) Release() {
	release(s.cmap)
	release(s.data)
	release(s.geometry)
	if s.program != nil {
		s.program.Release()
	}
	s.cmap, s.data, s.geometry, s.program = nil, nil, nil, nil
	if s.state != Uninitialized {
		s.Device.Release()
	}
}

func release(r Resource) {
	if r != nil {
		r.Release()
	}
}
