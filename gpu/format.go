// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

// LinearFormats are the surface formats preferred for presenting,
// in order. Colormap colors are written unchanged, so the surface
// must not apply an sRGB encoding on top of them.
var LinearFormats = []wgpu.TextureFormat{
	wgpu.TextureFormatBGRA8Unorm,
	wgpu.TextureFormatRGBA8Unorm,
}

// SurfaceFormat returns the format to configure a surface with from
// the formats it supports: the first of [LinearFormats] available,
// otherwise the first supported one.
func SurfaceFormat(supported []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range LinearFormats {
		if slices.Contains(supported, f) {
			return f
		}
	}
	if len(supported) == 0 {
		return wgpu.TextureFormatBGRA8Unorm
	}
	return supported[0]
}

// IsSRGB returns whether the format applies the sRGB transfer function on write.
func IsSRGB(f wgpu.TextureFormat) bool {
	return f == wgpu.TextureFormatBGRA8UnormSrgb || f == wgpu.TextureFormatRGBA8UnormSrgb
}
