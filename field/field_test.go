// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"cogentcore.org/fieldview/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalized2x2(t *testing.T) {
	f, err := FromRows([][]float32{{0, 1}, {2, 3}}, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Width)
	assert.Equal(t, 2, f.Height)
	nv := f.Normalized()
	want := []float32{0, 1.0 / 3.0, 2.0 / 3.0, 1}
	for i := range want {
		tolassert.EqualTol(t, want[i], nv[i], 1e-6)
	}
	assert.Equal(t, float32(2), f.At(0, 1))
	tolassert.EqualTol(t, 2.0/3.0, f.NormAt(0, 1), 1e-6)
}

func TestClamp(t *testing.T) {
	f, err := New([]float32{-5, 0, 10, 20}, 4, 1, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 1, 1}, f.Normalized())
}

func TestNewErrors(t *testing.T) {
	_, err := New([]float32{1, 2, 3}, 2, 2, 0, 1)
	assert.ErrorIs(t, err, ErrShape)
	_, err = New([]float32{1, 2, 3, 4}, 2, 2, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = New([]float32{1, 2, 3, 4}, 2, 2, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = FromRows([][]float32{{1, 2}, {3}}, 0, 1)
	assert.ErrorIs(t, err, ErrShape)
	_, err = FromRows(nil, 0, 1)
	assert.ErrorIs(t, err, ErrShape)
}

func TestMinMax(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	mr := MinMax([]float32{nan, 3, -2, inf, 1})
	assert.Equal(t, float32(-2), mr.Min)
	assert.Equal(t, float32(3), mr.Max)
	mr = MinMax([]float32{nan})
	assert.False(t, mr.IsValid())
}

func TestSample(t *testing.T) {
	f, err := FromRows([][]float32{{0, 1}, {2, 3}}, 0, 3)
	require.NoError(t, err)
	// sample centers return exact values
	assert.Equal(t, float32(0), f.Sample(0.25, 0.25))
	assert.Equal(t, float32(1), f.Sample(0.75, 0.25))
	assert.Equal(t, float32(2), f.Sample(0.25, 0.75))
	assert.Equal(t, float32(3), f.Sample(0.75, 0.75))
	// edges clamp
	assert.Equal(t, float32(0), f.Sample(0, 0))
	assert.Equal(t, float32(3), f.Sample(1, 1))
	// center is the mean of all four
	tolassert.EqualTol(t, 1.5, f.Sample(0.5, 0.5), 1e-6)
	tolassert.EqualTol(t, 0.5, f.Sample(0.5, 0.25), 1e-6)
}

func TestPayload(t *testing.T) {
	js := `{"data": [0, 1, 2, 3, 4, 5], "width": 3, "height": 2, "minValue": 0, "maxValue": 5}`
	f, err := DecodePayload(strings.NewReader(js))
	require.NoError(t, err)
	assert.Equal(t, 3, f.Width)
	assert.Equal(t, 2, f.Height)
	assert.Equal(t, float32(3), f.At(0, 1))
	assert.Equal(t, float32(5), f.Range.Max)

	// range computed from data when missing
	f, err = DecodePayload(strings.NewReader(`{"data": [2, -1, 7, 3], "width": 2, "height": 2}`))
	require.NoError(t, err)
	assert.Equal(t, float32(-1), f.Range.Min)
	assert.Equal(t, float32(7), f.Range.Max)

	var buf bytes.Buffer
	require.NoError(t, EncodePayload(&buf, f))
	g, err := DecodePayload(&buf)
	require.NoError(t, err)
	assert.Equal(t, f, g)

	_, err = DecodePayload(strings.NewReader(`{"data": [1, 1], "width": 2, "height": 1}`))
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = DecodePayload(strings.NewReader(`{"data": [1, 2], "width": 3, "height": 1}`))
	assert.ErrorIs(t, err, ErrShape)
	_, err = DecodePayload(strings.NewReader(`{"data": `))
	assert.Error(t, err)
}

func TestPattern(t *testing.T) {
	for _, name := range Patterns {
		f, err := Pattern(name, 16, 8)
		require.NoError(t, err, name)
		mr := f.MinMax()
		assert.GreaterOrEqual(t, mr.Min, f.Range.Min, name)
		assert.LessOrEqual(t, mr.Max, f.Range.Max, name)
	}
	f, err := Pattern("ramp", 5, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0.25, 0.5, 0.75, 1}, f.Data)
	_, err = Pattern("nope", 4, 4)
	assert.Error(t, err)
	_, err = Pattern("ramp", 0, 4)
	assert.ErrorIs(t, err, ErrShape)
}
