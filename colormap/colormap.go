// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides colormaps: 1D palettes of RGB colors
// addressed by a normalized [0, 1] value, together with the registry
// of available colormaps and an asynchronous, last-request-wins loader.
package colormap

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/fieldview/math32"
	"cogentcore.org/fieldview/math32/minmax"
)

var (
	// ErrEmpty is returned for a colormap without any colors.
	ErrEmpty = errors.New("colormap: no colors")
)

// Colormap is an ordered 1D palette of opaque RGB colors.
// Colors[0] is shown for the normalized value 0 and the last
// color for 1, with linear interpolation between entry centers,
// as a linear-filtered texture of Width x 1 texels does.
// A Colormap is immutable once made.
type Colormap struct {

	// Name is the display name, typically the file name without extension.
	Name string

	// Colors are the palette entries; alpha is ignored.
	Colors []color.RGBA
}

// New returns a new [Colormap] with the given name and colors.
func New(name string, colors []color.RGBA) (*Colormap, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmpty, name)
	}
	cm := &Colormap{Name: name, Colors: make([]color.RGBA, len(colors))}
	for i, c := range colors {
		c.A = 255
		cm.Colors[i] = c
	}
	return cm, nil
}

// Width returns the number of palette entries.
func (cm *Colormap) Width() int {
	return len(cm.Colors)
}

// Normalize maps value to [0, 1] within the closed range [mn, mx]:
// values are clamped to the range first, and a degenerate
// range (mn == mx) yields 0.
func Normalize(value, mn, mx float32) float32 {
	mr := minmax.Range32(mn, mx)
	return mr.NormValue(value)
}

// Lookup returns the horizontal texture coordinate for normalized value v,
// mirrored when flip is set.
func Lookup(v float32, flip bool) float32 {
	if flip {
		return 1 - v
	}
	return v
}

// Sample returns the opaque color for normalized value v in [0, 1],
// mirrored when flip is set, see [Lookup].
func (cm *Colormap) Sample(v float32, flip bool) color.RGBA {
	r, g, b := cm.SampleRGB(Lookup(v, flip))
	return color.RGBA{R: unitToByte(r), G: unitToByte(g), B: unitToByte(b), A: 255}
}

// SampleRGB returns the color components in [0, 1] at texture
// coordinate u, interpolating linearly between entry centers
// at (i + 0.5) / Width and clamping to the edge entries.
func (cm *Colormap) SampleRGB(u float32) (r, g, b float32) {
	n := len(cm.Colors)
	x := u*float32(n) - 0.5
	x0 := math32.Floor(x)
	fx := x - x0
	i := int(x0)
	ca := cm.Colors[math32.ClampInt(i, 0, n-1)]
	cb := cm.Colors[math32.ClampInt(i+1, 0, n-1)]
	r = math32.Lerp(float32(ca.R), float32(cb.R), fx) / 255
	g = math32.Lerp(float32(ca.G), float32(cb.G), fx) / 255
	b = math32.Lerp(float32(ca.B), float32(cb.B), fx) / 255
	return
}

// Image returns the colormap as a Width x 1 RGBA image, the layout
// in which it is uploaded as a texture.
func (cm *Colormap) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(cm.Colors), 1))
	for i, c := range cm.Colors {
		img.SetRGBA(i, 0, c)
	}
	return img
}

func (cm *Colormap) String() string {
	return fmt.Sprintf("Colormap %q (%d colors)", cm.Name, len(cm.Colors))
}

// unitToByte converts a [0, 1] component to 8 bits with rounding.
func unitToByte(v float32) uint8 {
	return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
}
