// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
)

// CompareUint8 returns true if two numbers are no more different than tol
func CompareUint8(cc, ic uint8, tol int) bool {
	d := int(cc) - int(ic)
	return d >= -tol && d <= tol
}

// CompareColors returns true if two colors are no more different than tol
// in every component
func CompareColors(cc, ic color.RGBA, tol int) bool {
	return CompareUint8(cc.R, ic.R, tol) &&
		CompareUint8(cc.G, ic.G, tol) &&
		CompareUint8(cc.B, ic.B, tol) &&
		CompareUint8(cc.A, ic.A, tol)
}

// RGBAAt returns the color of the image at the given point as [color.RGBA].
func RGBAAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

// DiffImage returns the difference between two images of the same bounds,
// with pixels having the abs of the difference between pixels, and the
// number of pixels that differ by more than tol.
func DiffImage(a, b image.Image, tol int) (*image.RGBA, int) {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	n := 0
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			cc := RGBAAt(a, x, y)
			ic := RGBAAt(b, x, y)
			if !CompareColors(cc, ic, tol) {
				n++
			}
			di.SetRGBA(x, y, color.RGBA{absDiff(cc.R, ic.R), absDiff(cc.G, ic.G), absDiff(cc.B, ic.B), 255})
		}
	}
	return di, n
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
