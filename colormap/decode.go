// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxWidth is the maximum number of palette entries kept from a
// colormap image; wider images are resampled down to this width.
var MaxWidth = 4096

// ErrNotImage is returned when colormap data is not a recognized image type.
var ErrNotImage = errors.New("colormap: not an image")

// NameFromPath returns the colormap name for a file path:
// the base name without extension.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DecodeFile decodes the colormap image file at the given path,
// named by [NameFromPath].
func DecodeFile(path string) (*Colormap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cm, err := Decode(f, NameFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cm, nil
}

// Decode reads a colormap image from r. The content must be a
// supported image type (png, jpeg, gif, bmp, tiff, webp), detected
// from the data itself rather than any file extension.
func Decode(r io.Reader, name string) (*Colormap, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !filetype.IsImage(b) {
		kind, _ := filetype.Match(b)
		return nil, fmt.Errorf("%w: %q has type %q", ErrNotImage, name, kind.MIME.Value)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("colormap: decoding %q: %w", name, err)
	}
	return FromImage(name, img)
}

// FromImage returns a new [Colormap] from the center row of the given image.
// Colormap images are 1D palettes replicated vertically, so any row
// would do. Images wider than [MaxWidth] are resampled down first.
func FromImage(name string, img image.Image) (*Colormap, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %q", ErrEmpty, name)
	}
	if b.Dx() > MaxWidth {
		dst := image.NewRGBA(image.Rect(0, 0, MaxWidth, b.Dy()))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
		b = dst.Bounds()
	}
	y := b.Min.Y + b.Dy()/2
	colors := make([]color.RGBA, b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		colors[x-b.Min.X] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	return New(name, colors)
}
