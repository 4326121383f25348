// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"cogentcore.org/fieldview/base/tolassert"
	"cogentcore.org/fieldview/camera"
	"cogentcore.org/fieldview/math32"
	"cogentcore.org/fieldview/render"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float32At(b []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
}

func TestPackUniforms(t *testing.T) {
	cam := camera.New()
	u := render.Uniforms{MVP: cam.MVP(1.5), Min: -2, Max: 3, Flip: true}
	b := PackUniforms(u)
	require.Len(t, b, UniformsSize)

	var mvp math32.Matrix4
	for i := range mvp {
		mvp[i] = float32At(b, i)
	}
	// the quad at z = 1, 3 units in front of the camera
	p := math32.Vec3(1, 1, 1)
	gl := p.MulMatrix4AsPoint(&u.MVP)
	wg := p.MulMatrix4AsPoint(&mvp)
	tolassert.EqualTol(t, gl.X, wg.X, 1e-6)
	tolassert.EqualTol(t, gl.Y, wg.Y, 1e-6)
	tolassert.EqualTol(t, (gl.Z+1)/2, wg.Z, 1e-5)

	assert.Equal(t, float32(-2), float32At(b, 16))
	assert.Equal(t, float32(3), float32At(b, 17))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(b[18*4:]))

	u.Flip = false
	b = PackUniforms(u)
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(b[18*4:]))
}

func TestSurfaceFormat(t *testing.T) {
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, SurfaceFormat([]wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatBGRA8Unorm}))
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, SurfaceFormat([]wgpu.TextureFormat{wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatRGBA8Unorm}))
	assert.Equal(t, wgpu.TextureFormatRGBA8UnormSrgb, SurfaceFormat([]wgpu.TextureFormat{wgpu.TextureFormatRGBA8UnormSrgb}))
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, SurfaceFormat(nil))
	assert.True(t, IsSRGB(wgpu.TextureFormatBGRA8UnormSrgb))
	assert.False(t, IsSRGB(wgpu.TextureFormatRGBA8Unorm))
}

func TestPipelineState(t *testing.T) {
	assert.Equal(t, wgpu.BlendFactorOne, BlendFactor(render.BlendOne))
	assert.Equal(t, wgpu.BlendFactorOneMinusSrcAlpha, BlendFactor(render.BlendOneMinusSrcAlpha))
	assert.Equal(t, wgpu.BlendFactorZero, BlendFactor(render.BlendZero))
	assert.Equal(t, wgpu.CompareFunctionLessEqual, CompareFunction(render.CompareLessEqual))
	assert.Equal(t, wgpu.CompareFunctionAlways, CompareFunction(render.CompareAlways))

	vl := VertexLayout()
	require.Len(t, vl, 2)
	assert.Equal(t, uint64(12), vl[0].ArrayStride)
	assert.Equal(t, uint32(1), vl[1].Attributes[0].ShaderLocation)
}

func TestDeviceNoWindow(t *testing.T) {
	d := NewDevice(nil)
	err := d.Open()
	assert.ErrorIs(t, err, render.ErrContextUnavailable)
}
