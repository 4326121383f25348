// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"

	"cogentcore.org/fieldview/base/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// BuiltinWidth is the number of entries in the built-in colormaps.
const BuiltinWidth = 256

// builtinStops are the control colors of the built-in colormaps,
// evenly spaced and blended in CIE L*a*b* space.
var builtinStops = []struct {
	name  string
	stops []string
}{
	{"gray", []string{"#000000", "#ffffff"}},
	{"seismic", []string{"#00004c", "#0000ff", "#ffffff", "#ff0000", "#7f0000"}},
	{"viridis", []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}},
	{"inferno", []string{"#000004", "#57106e", "#bc3754", "#f98e09", "#fcffa4"}},
}

// Builtins returns the built-in colormaps, used when no colormap
// directory is available.
func Builtins() []*Colormap {
	cms := make([]*Colormap, len(builtinStops))
	for i, b := range builtinStops {
		cms[i] = errors.Must1(Gradient(b.name, BuiltinWidth, b.stops...))
	}
	return cms
}

// Gradient returns a new [Colormap] of the given width blending
// evenly spaced hex color stops in CIE L*a*b* space.
func Gradient(name string, width int, stops ...string) (*Colormap, error) {
	if width <= 0 || len(stops) == 0 {
		return nil, ErrEmpty
	}
	cs := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	colors := make([]color.RGBA, width)
	ns := len(cs) - 1
	for i := range width {
		var c colorful.Color
		if ns == 0 || width == 1 {
			c = cs[0]
		} else {
			t := float64(i) / float64(width-1) * float64(ns)
			si := min(int(t), ns-1)
			c = cs[si].BlendLab(cs[si+1], t-float64(si)).Clamped()
		}
		r, g, b := c.RGB255()
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return New(name, colors)
}
