// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the fieldview tool,
// read from a TOML file over defaults given in field tags.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/fieldview/base/errors"
	"cogentcore.org/fieldview/base/reflectx"
	"cogentcore.org/fieldview/camera"
	"cogentcore.org/fieldview/input"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Config is the main config struct that contains all of
// the configuration options for fieldview.
type Config struct {

	// ColormapDir is the directory of colormap images.
	// If empty, the built-in colormaps are used.
	ColormapDir string

	// Colormap is the index of the initially selected colormap.
	Colormap int `default:"0"`

	// Watch reloads the colormap list when ColormapDir changes.
	Watch bool `default:"true"`

	// Flip mirrors the colormap.
	Flip bool

	// Pan enables panning by dragging.
	Pan bool `default:"true"`

	// Zoom enables zooming with the wheel.
	Zoom bool `default:"true"`

	// ZoomStep is the scale change per zoom step, and the
	// exclusive lower bound of the scale.
	ZoomStep float32 `default:"0.02"`

	// PanDamping scales pointer movement into pan distance.
	PanDamping float32 `default:"0.25"`

	// Camera has the projection settings.
	Camera Camera

	// Window has the size of the view.
	Window Window

	// Workers is the number of goroutines the software renderer
	// shades rows with; 0 uses all processors.
	Workers int
}

// Camera is the projection configuration.
type Camera struct {

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"60"`

	// Near is the near clipping plane distance.
	Near float32 `default:"0.01"`

	// Far is the far clipping plane distance.
	Far float32 `default:"100"`
}

// Window is the view size configuration.
type Window struct {
	Width  int `default:"1024"`
	Height int `default:"768"`
}

// Defaults returns a new [Config] with default values.
func Defaults() *Config {
	c := &Config{}
	errors.Must(reflectx.SetFromDefaultTags(c))
	return c
}

// Open returns the defaults overridden by the TOML file at path,
// which may start with ~. Unknown keys are an error. Invalid
// values are replaced by their defaults with a warning.
func Open(path string) (*Config, error) {
	c := Defaults()
	fn, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := c.Read(f); err != nil {
		return nil, fmt.Errorf("config %s: %w", fn, err)
	}
	return c, nil
}

// Read decodes TOML from r over the current values and validates the result.
func (c *Config) Read(r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return err
	}
	return c.Validate()
}

// Write encodes the config as TOML to w.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate expands ~ in ColormapDir and resets out of range values
// to their defaults.
func (c *Config) Validate() error {
	if c.ColormapDir != "" {
		dir, err := homedir.Expand(c.ColormapDir)
		if err != nil {
			return err
		}
		c.ColormapDir = dir
	}
	def := Defaults()
	fix := func(name string, bad bool, reset func()) {
		if bad {
			slog.Warn("invalid config value, using default", "field", name)
			reset()
		}
	}
	fix("Colormap", c.Colormap < 0, func() { c.Colormap = def.Colormap })
	fix("ZoomStep", !(c.ZoomStep > 0 && c.ZoomStep < 1), func() { c.ZoomStep = def.ZoomStep })
	fix("PanDamping", !(c.PanDamping > 0), func() { c.PanDamping = def.PanDamping })
	fix("Camera.FOV", !(c.Camera.FOV > 0 && c.Camera.FOV < 180), func() { c.Camera.FOV = def.Camera.FOV })
	fix("Camera.Near", !(c.Camera.Near > 0), func() { c.Camera.Near = def.Camera.Near })
	fix("Camera.Far", !(c.Camera.Far > c.Camera.Near), func() { c.Camera.Far = def.Camera.Far })
	fix("Window.Width", c.Window.Width <= 0, func() { c.Window.Width = def.Window.Width })
	fix("Window.Height", c.Window.Height <= 0, func() { c.Window.Height = def.Window.Height })
	fix("Workers", c.Workers < 0, func() { c.Workers = def.Workers })
	return nil
}

// ApplyCamera sets the projection of cam from the config.
func (c *Config) ApplyCamera(cam *camera.Camera) {
	cam.FOV = c.Camera.FOV
	cam.Near = c.Camera.Near
	cam.Far = c.Camera.Far
}

// ApplyController sets the toggles, step and damping of ctl from the config.
func (c *Config) ApplyController(ctl *input.Controller) {
	ctl.PanEnabled = c.Pan
	ctl.ZoomEnabled = c.Zoom
	ctl.ZoomStep = c.ZoomStep
	ctl.PanDamping = c.PanDamping
}
