// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soft

import (
	"errors"
	"fmt"

	"cogentcore.org/fieldview/colormap"
	"cogentcore.org/fieldview/math32"
	"cogentcore.org/fieldview/math32/minmax"
	"cogentcore.org/fieldview/render"
	"golang.org/x/sync/errgroup"
)

// pipelineState is a frame resolved to the software resource types.
type pipelineState struct {
	frame *render.Frame
	geom  *geometry
	data  *fieldTexture
	cmap  *colormapTexture
	rng   minmax.F32
	w, h  int
}

func (d *Device) pipeline(fr *render.Frame) (*pipelineState, error) {
	if fr.Program == nil {
		return nil, errors.New("soft: no program")
	}
	ps := &pipelineState{frame: fr, rng: minmax.Range32(fr.Uniforms.Min, fr.Uniforms.Max)}
	sz := d.target.Bounds().Size()
	ps.w, ps.h = sz.X, sz.Y
	var ok bool
	if ps.geom, ok = fr.Geometry.(*geometry); !ok {
		return nil, fmt.Errorf("soft: geometry %T not made by this device", fr.Geometry)
	}
	if ps.cmap, ok = fr.Textures[render.ColormapUnit].(*colormapTexture); !ok {
		return nil, fmt.Errorf("soft: colormap texture %T not made by this device", fr.Textures[render.ColormapUnit])
	}
	if ps.data, ok = fr.Textures[render.DataUnit].(*fieldTexture); !ok {
		return nil, fmt.Errorf("soft: data texture %T not made by this device", fr.Textures[render.DataUnit])
	}
	return ps, nil
}

// vertex is a vertex after the vertex stage and viewport transform.
type vertex struct {
	// x, y are window coordinates in pixels, y down.
	x, y float32

	// z is depth in [0, 1] within the view volume.
	z float32

	// iw is 1 / clip w, for perspective-correct interpolation.
	iw float32

	// visible is false for vertices at or behind the eye.
	visible bool
}

type triangle struct {
	v  [3]vertex
	uv [3][2]float32
}

func uvOf(m *render.Mesh, i uint16) [2]float32 {
	tc := m.TexCoords[i]
	return [2]float32{tc.X, tc.Y}
}

// vertices runs the vertex stage: clip = MVP * position, followed by
// the perspective divide and viewport transform.
func (ps *pipelineState) vertices() []vertex {
	mvp := ps.frame.Uniforms.MVP
	pos := ps.geom.mesh.Positions
	vs := make([]vertex, len(pos))
	for i, p := range pos {
		c := math32.Vector4FromVector3(p, 1).MulMatrix4(&mvp)
		if c.W <= 0 {
			continue
		}
		ndc := c.PerspDiv()
		vs[i] = vertex{
			x:       (ndc.X + 1) * 0.5 * float32(ps.w),
			y:       (1 - ndc.Y) * 0.5 * float32(ps.h),
			z:       (ndc.Z + 1) * 0.5,
			iw:      1 / c.W,
			visible: true,
		}
	}
	return vs
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// rasterize covers the pixels whose centers are inside the triangle,
// in bands of rows shaded concurrently. Triangles with a vertex at or
// behind the eye are skipped.
func (d *Device) rasterize(ps *pipelineState, tri *triangle) error {
	v0, v1, v2 := tri.v[0], tri.v[1], tri.v[2]
	if !v0.visible || !v1.visible || !v2.visible {
		return nil
	}
	area := edge(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return nil
	}
	minX := max(int(math32.Floor(min(v0.x, v1.x, v2.x))), 0)
	maxX := min(int(math32.Floor(max(v0.x, v1.x, v2.x)))+1, ps.w)
	minY := max(int(math32.Floor(min(v0.y, v1.y, v2.y))), 0)
	maxY := min(int(math32.Floor(max(v0.y, v1.y, v2.y)))+1, ps.h)
	if minX >= maxX || minY >= maxY {
		return nil
	}
	nw := d.workers()
	band := max((maxY-minY+nw-1)/nw, 1)
	var g errgroup.Group
	g.SetLimit(nw)
	for y0 := minY; y0 < maxY; y0 += band {
		y1 := min(y0+band, maxY)
		g.Go(func() error {
			for y := y0; y < y1; y++ {
				d.shadeRow(ps, tri, area, y, minX, maxX)
			}
			return nil
		})
	}
	return g.Wait()
}

func (d *Device) shadeRow(ps *pipelineState, tri *triangle, area float32, y, minX, maxX int) {
	v0, v1, v2 := tri.v[0], tri.v[1], tri.v[2]
	py := float32(y) + 0.5
	for x := minX; x < maxX; x++ {
		px := float32(x) + 0.5
		b0 := edge(v1.x, v1.y, v2.x, v2.y, px, py) / area
		b1 := edge(v2.x, v2.y, v0.x, v0.y, px, py) / area
		b2 := edge(v0.x, v0.y, v1.x, v1.y, px, py) / area
		if b0 < 0 || b1 < 0 || b2 < 0 {
			continue
		}
		z := b0*v0.z + b1*v1.z + b2*v2.z
		if z < 0 || z > 1 {
			continue
		}
		di := y*ps.w + x
		if !ps.frame.DepthFunc.Test(z, d.depth[di]) {
			continue
		}
		p0, p1, p2 := b0*v0.iw, b1*v1.iw, b2*v2.iw
		iw := p0 + p1 + p2
		u := (p0*tri.uv[0][0] + p1*tri.uv[1][0] + p2*tri.uv[2][0]) / iw
		v := (p0*tri.uv[0][1] + p1*tri.uv[1][1] + p2*tri.uv[2][1]) / iw
		src := ps.fragment(u, v)
		pi := d.target.PixOffset(x, y)
		pix := d.target.Pix[pi : pi+4 : pi+4]
		dst := [4]float32{float32(pix[0]) / 255, float32(pix[1]) / 255, float32(pix[2]) / 255, float32(pix[3]) / 255}
		out := ps.frame.Blend.Apply(src, dst)
		for i := range 4 {
			pix[i] = uint8(out[i]*255 + 0.5)
		}
		d.depth[di] = z
	}
}

// fragment runs the fragment stage for texture coordinates (u, v):
// the linearly filtered data value is normalized to the uniform
// range, optionally flipped, and looked up in the colormap.
func (ps *pipelineState) fragment(u, v float32) [4]float32 {
	raw := ps.data.f.Sample(u, v)
	nv := ps.rng.NormValue(raw)
	r, g, b := ps.cmap.cm.SampleRGB(colormap.Lookup(nv, ps.frame.Uniforms.Flip))
	return [4]float32{r, g, b, 1}
}
