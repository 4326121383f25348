// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"cogentcore.org/fieldview/base/errors"
)

var (
	// ErrContextUnavailable is returned when no rendering context with
	// the required features (linear-filtered float textures) is available.
	ErrContextUnavailable = errors.New("render: rendering context unavailable")

	// ErrShaderCompile is returned when a shader stage fails to compile.
	ErrShaderCompile = errors.New("render: shader compile failed")

	// ErrProgramLink is returned when the compiled stages cannot be
	// linked into a program.
	ErrProgramLink = errors.New("render: program link failed")

	// ErrNotInitialized is returned when using a [Surface] before [Surface.Init].
	ErrNotInitialized = errors.New("render: surface not initialized")
)

// Stages are the stages of building a shader program.
type Stages int32

const (
	// VertexStage compiles the vertex shader.
	VertexStage Stages = iota

	// FragmentStage compiles the fragment shader.
	FragmentStage

	// LinkStage links the compiled shaders into a program.
	LinkStage
)

func (st Stages) String() string {
	switch st {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	case LinkStage:
		return "link"
	}
	return fmt.Sprintf("Stages(%d)", int32(st))
}

// StageError is a program build failure in a given stage,
// with the log reported by the device. It unwraps to
// [ErrShaderCompile] or [ErrProgramLink].
type StageError struct {
	Stage Stages
	Log   string
}

// NewStageError returns a new [StageError] for the given stage and log.
func NewStageError(stage Stages, log string) *StageError {
	return &StageError{Stage: stage, Log: log}
}

func (e *StageError) Error() string {
	if e.Stage == LinkStage {
		return fmt.Sprintf("%v: %s", ErrProgramLink, e.Log)
	}
	return fmt.Sprintf("%v (%v stage): %s", ErrShaderCompile, e.Stage, e.Log)
}

func (e *StageError) Unwrap() error {
	if e.Stage == LinkStage {
		return ErrProgramLink
	}
	return ErrShaderCompile
}
