// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/fieldview/camera"
	"cogentcore.org/fieldview/input"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Defaults()
	assert.Equal(t, "", c.ColormapDir)
	assert.True(t, c.Pan)
	assert.True(t, c.Zoom)
	assert.True(t, c.Watch)
	assert.False(t, c.Flip)
	assert.Equal(t, float32(0.02), c.ZoomStep)
	assert.Equal(t, float32(0.25), c.PanDamping)
	assert.Equal(t, Camera{FOV: 60, Near: 0.01, Far: 100}, c.Camera)
	assert.Equal(t, Window{Width: 1024, Height: 768}, c.Window)
	assert.Equal(t, 0, c.Workers)
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "fieldview.toml")
	err := os.WriteFile(fn, []byte(`
ColormapDir = "/data/colormaps"
Colormap = 2
Flip = true
Zoom = false

[Camera]
FOV = 45

[Window]
Width = 640
`), 0666)
	require.NoError(t, err)

	c, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "/data/colormaps", c.ColormapDir)
	assert.Equal(t, 2, c.Colormap)
	assert.True(t, c.Flip)
	assert.False(t, c.Zoom)
	assert.True(t, c.Pan)
	assert.Equal(t, float32(45), c.Camera.FOV)
	assert.Equal(t, float32(100), c.Camera.Far)
	assert.Equal(t, 640, c.Window.Width)
	assert.Equal(t, 768, c.Window.Height)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	c := Defaults()
	assert.Error(t, c.Read(strings.NewReader(`Colourmap = 1`)))
	assert.Error(t, c.Read(strings.NewReader(`Colormap = "one"`)))
}

func TestValidate(t *testing.T) {
	c := Defaults()
	err := c.Read(strings.NewReader(`
Colormap = -1
ZoomStep = 0
PanDamping = -1
Workers = -4

[Camera]
FOV = 200
Near = 0
Far = 0
`))
	require.NoError(t, err)
	def := Defaults()
	assert.Equal(t, def.Colormap, c.Colormap)
	assert.Equal(t, def.ZoomStep, c.ZoomStep)
	assert.Equal(t, def.PanDamping, c.PanDamping)
	assert.Equal(t, def.Workers, c.Workers)
	assert.Equal(t, def.Camera, c.Camera)
}

func TestHomeDir(t *testing.T) {
	home, err := homedir.Dir()
	if err != nil {
		t.Skip("no home directory")
	}
	c := Defaults()
	require.NoError(t, c.Read(strings.NewReader(`ColormapDir = "~/colormaps"`)))
	assert.Equal(t, filepath.Join(home, "colormaps"), c.ColormapDir)
}

func TestWriteRead(t *testing.T) {
	c := Defaults()
	c.ColormapDir = "/cm"
	c.Flip = true
	c.Window.Height = 300
	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))
	assert.Contains(t, buf.String(), "ColormapDir = '/cm'")

	r := Defaults()
	require.NoError(t, r.Read(&buf))
	assert.Equal(t, c, r)
}

func TestApply(t *testing.T) {
	c := Defaults()
	c.Camera.FOV = 30
	c.Pan = false
	c.ZoomStep = 0.1
	cam := camera.New()
	c.ApplyCamera(cam)
	assert.Equal(t, float32(30), cam.FOV)

	ctl := input.NewController(cam, nil)
	c.ApplyController(ctl)
	assert.False(t, ctl.PanEnabled)
	assert.True(t, ctl.ZoomEnabled)
	assert.Equal(t, float32(0.1), ctl.ZoomStep)
}
