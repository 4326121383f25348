// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field provides the scalar data field that is rendered:
// a 2D row-major grid of float32 samples together with the
// display clamp range used to normalize them.
package field

import (
	"errors"
	"fmt"

	"cogentcore.org/fieldview/math32"
	"cogentcore.org/fieldview/math32/minmax"
)

var (
	// ErrInvalidRange is returned when a display range does not
	// satisfy Min < Max.
	ErrInvalidRange = errors.New("field: invalid range, min must be less than max")

	// ErrShape is returned when the data length does not match
	// the given width and height.
	ErrShape = errors.New("field: data length does not match width * height")
)

// Field is a 2D grid of float32 samples, Width x Height, stored
// row-major, paired with the Range that clamps them for display.
// A Field is treated as immutable once constructed: loading new data
// means making a new Field.
type Field struct {

	// Width is the number of samples per row.
	Width int

	// Height is the number of rows.
	Height int

	// Data holds Width*Height samples, row-major, row 0 first.
	Data []float32

	// Range is the display clamp range; samples outside it are
	// clamped before normalization.
	Range minmax.F32
}

// New returns a new [Field] for the given data, which must have
// width*height samples, and the given display range,
// which must satisfy min < max.
func New(data []float32, width, height int, mn, mx float32) (*Field, error) {
	if width <= 0 || height <= 0 || len(data) != width*height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d", ErrShape, len(data), width, height)
	}
	rng := minmax.Range32(mn, mx)
	if !rng.IsStrict() {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, mn, mx)
	}
	return &Field{Width: width, Height: height, Data: data, Range: rng}, nil
}

// FromRows returns a new [Field] from the given rows, which must
// all have the same length.
func FromRows(rows [][]float32, mn, mx float32) (*Field, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrShape)
	}
	w := len(rows[0])
	data := make([]float32, 0, w*len(rows))
	for i, r := range rows {
		if len(r) != w {
			return nil, fmt.Errorf("%w: row %d has %d samples, expected %d", ErrShape, i, len(r), w)
		}
		data = append(data, r...)
	}
	return New(data, w, len(rows), mn, mx)
}

// Index returns the index into Data for the given column x and row y.
func (f *Field) Index(x, y int) int {
	return y*f.Width + x
}

// At returns the sample at column x and row y.
func (f *Field) At(x, y int) float32 {
	return f.Data[f.Index(x, y)]
}

// NormAt returns the normalized [0, 1] value of the sample at column x and row y.
func (f *Field) NormAt(x, y int) float32 {
	return f.Range.NormValue(f.At(x, y))
}

// Normalized returns all samples normalized into [0, 1] using Range.
func (f *Field) Normalized() []float32 {
	nv := make([]float32, len(f.Data))
	for i, v := range f.Data {
		nv[i] = f.Range.NormValue(v)
	}
	return nv
}

// MinMax returns the range of the finite samples in the field.
// If there are no finite samples, the returned range is not valid.
func (f *Field) MinMax() minmax.F32 {
	return MinMax(f.Data)
}

// MinMax returns the range of the finite values in data.
// If there are no finite values, the returned range is not valid.
func MinMax(data []float32) minmax.F32 {
	var mr minmax.F32
	mr.SetInfinity()
	for _, v := range data {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			continue
		}
		mr.FitValInRange(v)
	}
	return mr
}

// Sample returns the field value at texture coordinates (u, v) in [0, 1],
// with u across columns and v down rows, using bilinear filtering
// between sample centers and clamping to the edge samples. This is
// the value a linear-filtered single-channel float texture returns.
func (f *Field) Sample(u, v float32) float32 {
	x := u*float32(f.Width) - 0.5
	y := v*float32(f.Height) - 0.5
	x0 := math32.Floor(x)
	y0 := math32.Floor(y)
	fx := x - x0
	fy := y - y0
	ix := int(x0)
	iy := int(y0)
	mx := f.Width - 1
	my := f.Height - 1
	xa := math32.ClampInt(ix, 0, mx)
	xb := math32.ClampInt(ix+1, 0, mx)
	ya := math32.ClampInt(iy, 0, my)
	yb := math32.ClampInt(iy+1, 0, my)
	top := math32.Lerp(f.At(xa, ya), f.At(xb, ya), fx)
	bot := math32.Lerp(f.At(xa, yb), f.At(xb, yb), fx)
	return math32.Lerp(top, bot, fy)
}

func (f *Field) String() string {
	return fmt.Sprintf("Field %dx%d [%g, %g]", f.Width, f.Height, f.Range.Min, f.Range.Max)
}
