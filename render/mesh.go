// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "cogentcore.org/fieldview/math32"

// Mesh is indexed triangle geometry with a texture coordinate per vertex.
type Mesh struct {
	Positions []math32.Vector3
	TexCoords []math32.Vector2
	Indices   []uint16
}

// Quad returns the unit quad the field is drawn on: four corners at
// z = 1 spanning [-1, 1] in x and y, with texture row 0 at the top,
// as two triangles.
func Quad() *Mesh {
	return &Mesh{
		Positions: []math32.Vector3{
			{X: -1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: 1},
			{X: -1, Y: 1, Z: 1},
		},
		TexCoords: []math32.Vector2{
			{X: 0, Y: 1},
			{X: 1, Y: 1},
			{X: 1, Y: 0},
			{X: 0, Y: 0},
		},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
	}
}

// Triangles returns the number of triangles.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}
