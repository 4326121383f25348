// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	_ "embed"
)

//go:embed shaders/fieldview.wgsl
var fieldviewWGSL string

// Shader returns the WGSL source of the field program: the vertex
// stage transforms the quad by the MVP uniform, and the fragment
// stage samples the data texture (unit 1), normalizes the value
// to the uniform range, optionally flips it, and looks it up in
// the colormap texture (unit 0).
func Shader() ProgramSource {
	return ProgramSource{
		Name:          "fieldview",
		Code:          fieldviewWGSL,
		VertexEntry:   "vs_main",
		FragmentEntry: "fs_main",
	}
}
