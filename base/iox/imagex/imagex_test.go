// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = ExtToFormat("jpg")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat(".exr")
	assert.Error(t, err)
	_, err = ExtToFormat("")
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := range 2 {
		for x := range 4 {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 60), uint8(y * 100), 90, 255})
		}
	}
	img.SetRGBA(1, 1, color.RGBA{200, 10, 30, 255})
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		fn := filepath.Join(t.TempDir(), "frame"+ext)
		require.NoError(t, Save(img, fn))
		back, _, err := Open(fn)
		require.NoError(t, err, ext)
		_, n := DiffImage(img, back, 0)
		assert.Equal(t, 0, n, ext)
	}
	assert.Error(t, Save(img, filepath.Join(t.TempDir(), "frame.webp")))
}

func TestCompare(t *testing.T) {
	assert.True(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{12, 9, 10, 255}, 2))
	assert.False(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{13, 10, 10, 255}, 2))

	a := image.NewRGBA(image.Rect(0, 0, 2, 2))
	b := CloneAsRGBA(a)
	b.SetRGBA(0, 0, color.RGBA{50, 0, 0, 255})
	di, n := DiffImage(a, b, 0)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint8(50), di.RGBAAt(0, 0).R)
	assert.Same(t, a, AsRGBA(a))

	r := Resize(a, image.Pt(4, 4))
	assert.Equal(t, image.Pt(4, 4), r.Bounds().Size())
}
