// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package soft provides a software [render.Device] that runs the
// field program on the CPU into an RGBA image, for headless
// rendering and tests.
package soft

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"runtime"
	"strings"

	"cogentcore.org/fieldview/base/iox/imagex"
	"cogentcore.org/fieldview/colormap"
	"cogentcore.org/fieldview/field"
	"cogentcore.org/fieldview/render"
)

// Device is a software rendering [render.Device]. The displayed size
// is Size; the backing image follows it through [render.Surface.Resize].
type Device struct {

	// Size is the displayed size of the view.
	Size image.Point

	// NoFloatTextures reports float textures as unsupported,
	// as on a device without linear float filtering.
	NoFloatTextures bool

	// Workers is the maximum number of goroutines shading rows in
	// parallel; 0 means [runtime.GOMAXPROCS].
	Workers int

	opened bool
	target *image.RGBA
	depth  []float32
	frames int
}

// New returns a new software [Device] displayed at the given size.
func New(size image.Point) *Device {
	return &Device{Size: size}
}

type program struct {
	src render.ProgramSource
}

func (p *program) Source() render.ProgramSource { return p.src }
func (p *program) Release()                     {}

type geometry struct {
	mesh *render.Mesh
}

func (g *geometry) Release() {}

type fieldTexture struct {
	f *field.Field
}

func (t *fieldTexture) Release() {}

type colormapTexture struct {
	cm *colormap.Colormap
}

func (t *colormapTexture) Release() {}

func (d *Device) Open() error {
	if d.Size.X <= 0 || d.Size.Y <= 0 {
		return fmt.Errorf("%w: invalid size %v", render.ErrContextUnavailable, d.Size)
	}
	d.opened = true
	return nil
}

func (d *Device) Features() render.Features {
	return render.Features{FloatTextures: !d.NoFloatTextures}
}

// CompileProgram checks that the source has the vertex and fragment
// entry points and a position output. The software pipeline itself
// is fixed and equivalent to the WGSL field program.
func (d *Device) CompileProgram(src render.ProgramSource) (render.Program, error) {
	if !strings.Contains(src.Code, "@vertex") || !strings.Contains(src.Code, "fn "+src.VertexEntry+"(") {
		return nil, render.NewStageError(render.VertexStage, fmt.Sprintf("entry point %q not found", src.VertexEntry))
	}
	if !strings.Contains(src.Code, "@fragment") || !strings.Contains(src.Code, "fn "+src.FragmentEntry+"(") {
		return nil, render.NewStageError(render.FragmentStage, fmt.Sprintf("entry point %q not found", src.FragmentEntry))
	}
	if !strings.Contains(src.Code, "@builtin(position)") {
		return nil, render.NewStageError(render.LinkStage, "vertex stage has no position output")
	}
	return &program{src: src}, nil
}

func (d *Device) NewGeometry(m *render.Mesh) (render.Resource, error) {
	if len(m.Positions) != len(m.TexCoords) || len(m.Indices)%3 != 0 {
		return nil, fmt.Errorf("soft: malformed mesh: %d positions, %d texcoords, %d indices", len(m.Positions), len(m.TexCoords), len(m.Indices))
	}
	for _, i := range m.Indices {
		if int(i) >= len(m.Positions) {
			return nil, fmt.Errorf("soft: index %d out of range", i)
		}
	}
	return &geometry{mesh: m}, nil
}

func (d *Device) NewFieldTexture(f *field.Field) (render.Resource, error) {
	if d.NoFloatTextures {
		return nil, fmt.Errorf("soft: float textures not supported")
	}
	return &fieldTexture{f: f}, nil
}

func (d *Device) NewColormapTexture(cm *colormap.Colormap) (render.Resource, error) {
	if cm.Width() == 0 {
		return nil, colormap.ErrEmpty
	}
	return &colormapTexture{cm: cm}, nil
}

func (d *Device) DisplaySize() image.Point {
	return d.Size
}

func (d *Device) BackingSize() image.Point {
	if d.target == nil {
		return image.Point{}
	}
	return d.target.Bounds().Size()
}

func (d *Device) SetBackingSize(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("soft: invalid backing size %v", size)
	}
	d.target = image.NewRGBA(image.Rectangle{Max: size})
	d.depth = make([]float32, size.X*size.Y)
	return nil
}

// Frames returns the number of frames rendered.
func (d *Device) Frames() int {
	return d.frames
}

// Snapshot returns a copy of the last rendered frame, or nil.
func (d *Device) Snapshot() *image.RGBA {
	if d.target == nil || d.frames == 0 {
		return nil
	}
	return imagex.CloneAsRGBA(d.target)
}

func (d *Device) Release() {
	d.opened = false
	d.target = nil
	d.depth = nil
}

func (d *Device) workers() int {
	if d.Workers > 0 {
		return d.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Render draws the frame: it clears the target, then rasterizes
// each triangle of the geometry, shading fragments in parallel rows.
func (d *Device) Render(fr *render.Frame) error {
	if !d.opened {
		return fmt.Errorf("soft: %w", render.ErrContextUnavailable)
	}
	if d.target == nil {
		if err := d.SetBackingSize(d.Size); err != nil {
			return err
		}
	}
	ps, err := d.pipeline(fr)
	if err != nil {
		return err
	}
	d.clear(fr.ClearColor, fr.ClearDepth)
	m := ps.geom.mesh
	clip := ps.vertices()
	for t := 0; t < m.Triangles(); t++ {
		i0, i1, i2 := m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]
		tri := triangle{
			v:  [3]vertex{clip[i0], clip[i1], clip[i2]},
			uv: [3][2]float32{uvOf(m, i0), uvOf(m, i1), uvOf(m, i2)},
		}
		if err := d.rasterize(ps, &tri); err != nil {
			return err
		}
	}
	d.frames++
	slog.Debug("soft frame rendered", "frame", d.frames, "size", d.target.Bounds().Size())
	return nil
}

func (d *Device) clear(c color.RGBA, depth float32) {
	pix := d.target.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
	for i := range d.depth {
		d.depth[i] = depth
	}
}
