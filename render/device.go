// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"

	"cogentcore.org/fieldview/colormap"
	"cogentcore.org/fieldview/field"
	"cogentcore.org/fieldview/math32"
)

// Device is a rendering context: the GPU (or a software equivalent)
// that owns programs, geometry and textures and draws frames.
// All methods are called from the UI goroutine.
type Device interface {

	// Open acquires the rendering context. It returns an error
	// wrapping [ErrContextUnavailable] when none can be had.
	Open() error

	// Features returns the optional capabilities of the opened context.
	Features() Features

	// CompileProgram builds a program from the given source, returning
	// a [StageError] naming the failing stage on failure.
	CompileProgram(src ProgramSource) (Program, error)

	// NewGeometry uploads the given mesh.
	NewGeometry(m *Mesh) (Resource, error)

	// NewFieldTexture uploads the field as a single-channel float32
	// texture with linear filtering, clamped to the edge, without mipmaps.
	NewFieldTexture(f *field.Field) (Resource, error)

	// NewColormapTexture uploads the colormap as a Width x 1 RGBA
	// texture with linear filtering, clamped to the edge.
	NewColormapTexture(cm *colormap.Colormap) (Resource, error)

	// DisplaySize returns the size the view is currently displayed at.
	DisplaySize() image.Point

	// BackingSize returns the size of the drawing buffer.
	BackingSize() image.Point

	// SetBackingSize resizes the drawing buffer.
	SetBackingSize(size image.Point) error

	// Render draws one frame.
	Render(fr *Frame) error

	// Release frees the context and everything made with it.
	Release()
}

// Features are optional device capabilities.
type Features struct {

	// FloatTextures is whether single-channel float32 textures
	// can be sampled with linear filtering.
	FloatTextures bool
}

// ProgramSource is the source of a shader program with a vertex
// and a fragment stage.
type ProgramSource struct {
	Name          string
	Code          string
	VertexEntry   string
	FragmentEntry string
}

// Resource is a device object that must be released.
type Resource interface {
	Release()
}

// Program is a compiled and linked shader program.
type Program interface {
	Resource
	Source() ProgramSource
}

// Uniforms are the per-frame values passed to the program.
type Uniforms struct {

	// MVP is the model-view-projection matrix, with depth in [-1, 1].
	MVP math32.Matrix4

	// Min and Max are the raw value range: samples are clamped to it
	// and then mapped onto [0, 1].
	Min, Max float32

	// Flip mirrors the colormap lookup.
	Flip bool
}

// BlendFactors are the factors of the blend equation.
type BlendFactors int32

const (
	BlendZero BlendFactors = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
)

// Blend is the color blend state: result = src*Src + dst*Dst.
type Blend struct {
	Src, Dst BlendFactors
}

// Apply blends src over dst, all components in [0, 1].
func (b Blend) Apply(src, dst [4]float32) [4]float32 {
	var out [4]float32
	sf := b.Src.factor(src[3])
	df := b.Dst.factor(src[3])
	for i := range out {
		out[i] = math32.Clamp(src[i]*sf+dst[i]*df, 0, 1)
	}
	return out
}

func (bf BlendFactors) factor(srcAlpha float32) float32 {
	switch bf {
	case BlendOne:
		return 1
	case BlendSrcAlpha:
		return srcAlpha
	case BlendOneMinusSrcAlpha:
		return 1 - srcAlpha
	}
	return 0
}

// CompareFuncs are depth comparison functions.
type CompareFuncs int32

const (
	CompareAlways CompareFuncs = iota
	CompareLess
	CompareLessEqual
)

// Test reports whether a fragment at depth passes against the stored depth.
func (cf CompareFuncs) Test(depth, stored float32) bool {
	switch cf {
	case CompareLess:
		return depth < stored
	case CompareLessEqual:
		return depth <= stored
	}
	return true
}

// Frame is everything needed to draw one frame.
type Frame struct {
	Program  Program
	Geometry Resource

	// Textures are bound by unit: [ColormapUnit] and [DataUnit].
	Textures [2]Resource

	Uniforms   Uniforms
	ClearColor color.RGBA
	ClearDepth float32
	Blend      Blend
	DepthFunc  CompareFuncs
}

// Texture units of the field program.
const (
	ColormapUnit = 0
	DataUnit     = 1
)
