// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides a WebGPU [render.Device] drawing into a
// window surface, using github.com/cogentcore/webgpu.
package gpu

import (
	"fmt"
	"image"
	"log/slog"
	"slices"

	"cogentcore.org/fieldview/base/errors"
	"cogentcore.org/fieldview/colormap"
	"cogentcore.org/fieldview/field"
	"cogentcore.org/fieldview/render"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window is a native window that a [Device] draws into.
type Window interface {

	// Surface makes the WebGPU surface of the window.
	Surface(inst *wgpu.Instance) *wgpu.Surface

	// Size returns the framebuffer size of the window in pixels.
	Size() image.Point
}

// Device is a WebGPU [render.Device] rendering into the surface of a [Window].
type Device struct {

	// Window is the window drawn into.
	Window Window

	// Debug turns on wgpu logging.
	Debug bool

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	format   wgpu.TextureFormat
	alpha    wgpu.CompositeAlphaMode
	features render.Features
	size     image.Point
	depth    *Texture
	uniforms *wgpu.Buffer
	sampler  *wgpu.Sampler
}

// NewDevice returns a new [Device] drawing into win.
func NewDevice(win Window) *Device {
	return &Device{Window: win}
}

// Open creates the instance, surface, adapter and logical device,
// requesting filterable float32 textures when the adapter has them.
func (d *Device) Open() error {
	if d.Window == nil {
		return fmt.Errorf("%w: no window", render.ErrContextUnavailable)
	}
	if d.Debug {
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	}
	d.instance = wgpu.CreateInstance(nil)
	d.surface = d.Window.Surface(d.instance)
	adapter, err := d.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: d.surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("%w: requesting adapter: %w", render.ErrContextUnavailable, err)
	}
	d.adapter = adapter
	var required []wgpu.FeatureName
	if slices.Contains(adapter.EnumerateFeatures(), wgpu.FeatureNameFloat32Filterable) {
		d.features.FloatTextures = true
		required = append(required, wgpu.FeatureNameFloat32Filterable)
	}
	dev, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:            "fieldview",
		RequiredFeatures: required,
	})
	if err != nil {
		return fmt.Errorf("%w: requesting device: %w", render.ErrContextUnavailable, err)
	}
	d.device = dev
	d.queue = dev.GetQueue()

	caps := d.surface.GetCapabilities(adapter)
	d.format = SurfaceFormat(caps.Formats)
	d.alpha = wgpu.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		d.alpha = caps.AlphaModes[0]
	}

	d.uniforms, err = dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "uniforms",
		Size:  UniformsSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if errors.Log(err) != nil {
		return err
	}
	d.sampler, err = dev.CreateSampler(&wgpu.SamplerDescriptor{
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if errors.Log(err) != nil {
		return err
	}
	slog.Info("gpu device opened", "format", d.format.String(), "floatTextures", d.features.FloatTextures)
	return d.SetBackingSize(d.DisplaySize())
}

func (d *Device) Features() render.Features {
	return d.features
}

func (d *Device) DisplaySize() image.Point {
	return d.Window.Size()
}

func (d *Device) BackingSize() image.Point {
	return d.size
}

// SetBackingSize configures the surface and depth buffer at size.
func (d *Device) SetBackingSize(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	d.surface.Configure(d.adapter, d.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      d.format,
		Width:       uint32(size.X),
		Height:      uint32(size.Y),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   d.alpha,
	})
	if d.depth != nil {
		d.depth.Release()
	}
	d.depth = NewTexture(d, "depth")
	if err := d.depth.Create(size, wgpu.TextureFormatDepth32Float, wgpu.TextureUsageRenderAttachment); err != nil {
		return err
	}
	d.size = size
	return nil
}

func (d *Device) NewFieldTexture(f *field.Field) (render.Resource, error) {
	if !d.features.FloatTextures {
		return nil, fmt.Errorf("gpu: float textures not supported")
	}
	tx := NewTexture(d, "data")
	if err := tx.SetField(f); err != nil {
		return nil, err
	}
	return tx, nil
}

func (d *Device) NewColormapTexture(cm *colormap.Colormap) (render.Resource, error) {
	tx := NewTexture(d, "colormap "+cm.Name)
	if err := tx.SetColormap(cm); err != nil {
		return nil, err
	}
	return tx, nil
}

// Render draws one frame into the next surface texture and presents it.
func (d *Device) Render(fr *render.Frame) error {
	prog, ok := fr.Program.(*Program)
	if !ok {
		return fmt.Errorf("gpu: program %T is not from this device", fr.Program)
	}
	geom, ok := fr.Geometry.(*Geometry)
	if !ok {
		return fmt.Errorf("gpu: geometry %T is not from this device", fr.Geometry)
	}
	pl, err := prog.pipeline(fr.Blend, fr.DepthFunc)
	if err != nil {
		return err
	}
	bg, err := pl.bindGroup(d, fr.Textures)
	if err != nil {
		return err
	}
	if err := d.queue.WriteBuffer(d.uniforms, 0, PackUniforms(fr.Uniforms)); err != nil {
		return err
	}

	tex, err := d.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	cmd, err := d.device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return err
	}
	defer cmd.Release()
	cc := fr.ClearColor
	rp := cmd.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  wgpu.LoadOpClear,
			StoreOp: wgpu.StoreOpStore,
			ClearValue: wgpu.Color{
				R: float64(cc.R) / 255,
				G: float64(cc.G) / 255,
				B: float64(cc.B) / 255,
				A: float64(cc.A) / 255,
			},
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            d.depth.view,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: fr.ClearDepth,
		},
	})
	rp.SetPipeline(pl.rp)
	rp.SetBindGroup(0, bg, nil)
	geom.bind(rp)
	rp.DrawIndexed(uint32(len(geom.mesh.Indices)), 1, 0, 0, 0)
	if err := rp.End(); err != nil {
		return err
	}
	rp.Release()

	buf, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		return err
	}
	defer buf.Release()
	d.queue.Submit(buf)
	d.surface.Present()
	return nil
}

// Release frees the device, surface and instance.
func (d *Device) Release() {
	if d.depth != nil {
		d.depth.Release()
		d.depth = nil
	}
	if d.sampler != nil {
		d.sampler.Release()
		d.sampler = nil
	}
	if d.uniforms != nil {
		d.uniforms.Release()
		d.uniforms = nil
	}
	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.surface != nil {
		d.surface.Release()
		d.surface = nil
	}
	if d.instance != nil {
		d.instance.Release()
		d.instance = nil
	}
}
