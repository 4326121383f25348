// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/fieldview/math32"
	"cogentcore.org/fieldview/render"
	"github.com/cogentcore/webgpu/wgpu"
)

// UniformsSize is the size in bytes of the uniform block of the
// field program: a mat4x4<f32>, two f32 bounds, a u32 flip flag and
// one f32 of padding.
const UniformsSize = 80

// uniformBlock has the memory layout of the WGSL Uniforms struct.
type uniformBlock struct {
	MVP  math32.Matrix4
	Min  float32
	Max  float32
	Flip uint32
	Pad  float32
}

// PackUniforms returns the bytes of the uniform buffer for u.
// The MVP is remapped from [-1, 1] depth to the [0, 1] depth
// of WebGPU clip space.
func PackUniforms(u render.Uniforms) []byte {
	var dz math32.Matrix4
	dz.SetDepthZeroToOne()
	b := uniformBlock{
		MVP: dz.Mul(u.MVP),
		Min: u.Min,
		Max: u.Max,
	}
	if u.Flip {
		b.Flip = 1
	}
	return wgpu.ToBytes([]uniformBlock{b})
}
