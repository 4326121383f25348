// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
)

// CloneAsRGBA returns an RGBA copy of the supplied image.
func CloneAsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	return clone.AsRGBA(src)
}

// AsRGBA returns the image as an RGBA: if it already is one, then
// it returns that image directly. Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	return CloneAsRGBA(src)
}

// Resize returns the image resized to the given size with
// linear filtering, or an RGBA copy if it already has that size.
func Resize(src image.Image, size image.Point) *image.RGBA {
	if src.Bounds().Size() == size {
		return CloneAsRGBA(src)
	}
	return transform.Resize(src, size.X, size.Y, transform.Linear)
}
