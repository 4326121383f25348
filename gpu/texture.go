// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/fieldview/base/errors"
	"cogentcore.org/fieldview/colormap"
	"cogentcore.org/fieldview/field"
	"github.com/cogentcore/webgpu/wgpu"
)

// Texture is a 2D device texture with a view of it.
type Texture struct {

	// Name labels the texture in wgpu messages.
	Name string

	// Size of the texture.
	Size image.Point

	// Format of the texture.
	Format wgpu.TextureFormat

	device  *Device
	texture *wgpu.Texture
	view    *wgpu.TextureView
}

// NewTexture returns a new empty [Texture] on the given device.
func NewTexture(dev *Device, name string) *Texture {
	return &Texture{Name: name, device: dev}
}

// Create creates the texture with the given size, format and usage,
// and a view of it. It releases any previous texture first.
func (tx *Texture) Create(size image.Point, format wgpu.TextureFormat, usage wgpu.TextureUsage) error {
	tx.Release()
	t, err := tx.device.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         tx.Name,
		Size:          tx.extent(size),
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         usage,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.texture = t
	vw, err := t.CreateView(nil)
	if errors.Log(err) != nil {
		return err
	}
	tx.view = vw
	tx.Size = size
	tx.Format = format
	return nil
}

func (tx *Texture) extent(size image.Point) wgpu.Extent3D {
	return wgpu.Extent3D{
		Width:              uint32(size.X),
		Height:             uint32(size.Y),
		DepthOrArrayLayers: 1,
	}
}

// write uploads pix, with bpp bytes per pixel, to the whole texture.
func (tx *Texture) write(pix []byte, bpp int) error {
	size := tx.extent(tx.Size)
	return tx.device.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  tx.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: 0, Y: 0, Z: 0},
		},
		pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(bpp * tx.Size.X),
			RowsPerImage: uint32(tx.Size.Y),
		},
		&size,
	)
}

// SetField uploads the field as a single-channel float32 texture,
// row 0 first.
func (tx *Texture) SetField(f *field.Field) error {
	err := tx.Create(image.Pt(f.Width, f.Height), wgpu.TextureFormatR32Float, wgpu.TextureUsageTextureBinding|wgpu.TextureUsageCopyDst)
	if err != nil {
		return err
	}
	return tx.write(wgpu.ToBytes(f.Data), 4)
}

// SetColormap uploads the colormap as a Width x 1 RGBA texture.
// The colors are stored as is, without sRGB decoding.
func (tx *Texture) SetColormap(cm *colormap.Colormap) error {
	img := cm.Image()
	err := tx.Create(img.Rect.Size(), wgpu.TextureFormatRGBA8Unorm, wgpu.TextureUsageTextureBinding|wgpu.TextureUsageCopyDst)
	if err != nil {
		return err
	}
	return tx.write(img.Pix, 4)
}

// ReleaseView releases the texture view.
func (tx *Texture) ReleaseView() {
	if tx.view != nil {
		tx.view.Release()
		tx.view = nil
	}
}

// Release releases the texture and its view.
func (tx *Texture) Release() {
	tx.ReleaseView()
	if tx.texture != nil {
		tx.texture.Release()
		tx.texture = nil
	}
}
