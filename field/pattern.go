// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"fmt"
	"math"
)

// Patterns are the names of the synthetic fields available from [Pattern].
var Patterns = []string{"ramp", "gauss", "waves"}

// Pattern returns a synthetic field of the given size, for previewing
// colormaps and exercising the renderer without external data:
//   - ramp: values increase linearly from 0 at the left to 1 at the right.
//   - gauss: a centered gaussian bump with peak 1.
//   - waves: a product of sines in [-1, 1], a stand-in for seismic traces.
func Pattern(name string, width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrShape, width, height)
	}
	data := make([]float32, width*height)
	mn, mx := float32(0), float32(1)
	for y := range height {
		fy := (float64(y) + 0.5) / float64(height)
		for x := range width {
			fx := (float64(x) + 0.5) / float64(width)
			var v float64
			switch name {
			case "ramp":
				v = float64(x) / float64(max(width-1, 1))
			case "gauss":
				dx, dy := fx-0.5, fy-0.5
				v = math.Exp(-(dx*dx + dy*dy) / (2 * 0.15 * 0.15))
			case "waves":
				v = math.Sin(fx*6*math.Pi) * math.Cos(fy*4*math.Pi)
				mn = -1
			default:
				return nil, fmt.Errorf("field: unknown pattern %q (have %v)", name, Patterns)
			}
			data[y*width+x] = float32(v)
		}
	}
	return New(data, width, height, mn, mx)
}
