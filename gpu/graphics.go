// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/fieldview/base/errors"
	"cogentcore.org/fieldview/render"
	"github.com/cogentcore/webgpu/wgpu"
)

// Program is a compiled shader module with the render pipelines made
// from it, one per blend and depth state.
type Program struct {
	src       render.ProgramSource
	device    *Device
	module    *wgpu.ShaderModule
	pipelines map[pipelineKey]*pipeline
}

type pipelineKey struct {
	blend render.Blend
	depth render.CompareFuncs
}

// pipeline is a render pipeline with the bind group of the
// textures it last drew with. Bind groups are tied to the
// automatic layout of their pipeline.
type pipeline struct {
	rp       *wgpu.RenderPipeline
	layout   *wgpu.BindGroupLayout
	group    *wgpu.BindGroup
	textures [2]render.Resource
}

func (pr *Program) Source() render.ProgramSource { return pr.src }

// Release releases the pipelines and the shader module.
func (pr *Program) Release() {
	for _, pl := range pr.pipelines {
		pl.release()
	}
	pr.pipelines = nil
	if pr.module != nil {
		pr.module.Release()
		pr.module = nil
	}
}

// CompileProgram compiles the WGSL source and links it into the
// default pipeline, with premultiplied alpha blending and
// less-or-equal depth testing.
func (d *Device) CompileProgram(src render.ProgramSource) (render.Program, error) {
	mod, err := d.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          src.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: src.Code},
	})
	if err != nil {
		stage := render.VertexStage
		if strings.Contains(err.Error(), src.FragmentEntry) {
			stage = render.FragmentStage
		}
		return nil, render.NewStageError(stage, err.Error())
	}
	pr := &Program{src: src, device: d, module: mod, pipelines: map[pipelineKey]*pipeline{}}
	_, err = pr.pipeline(render.Blend{Src: render.BlendOne, Dst: render.BlendOneMinusSrcAlpha}, render.CompareLessEqual)
	if err != nil {
		pr.Release()
		return nil, render.NewStageError(render.LinkStage, err.Error())
	}
	return pr, nil
}

// pipeline returns the pipeline for the given blend and depth state,
// creating it on first use.
func (pr *Program) pipeline(blend render.Blend, depth render.CompareFuncs) (*pipeline, error) {
	key := pipelineKey{blend, depth}
	if pl, ok := pr.pipelines[key]; ok {
		return pl, nil
	}
	bc := wgpu.BlendComponent{
		SrcFactor: BlendFactor(blend.Src),
		DstFactor: BlendFactor(blend.Dst),
		Operation: wgpu.BlendOperationAdd,
	}
	stencil := wgpu.StencilFaceState{
		Compare:     wgpu.CompareFunctionAlways,
		FailOp:      wgpu.StencilOperationKeep,
		DepthFailOp: wgpu.StencilOperationKeep,
		PassOp:      wgpu.StencilOperationKeep,
	}
	rp, err := pr.device.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: pr.src.Name,
		Vertex: wgpu.VertexState{
			Module:     pr.module,
			EntryPoint: pr.src.VertexEntry,
			Buffers:    VertexLayout(),
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth32Float,
			DepthWriteEnabled: true,
			DepthCompare:      CompareFunction(depth),
			StencilFront:      stencil,
			StencilBack:       stencil,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
		Fragment: &wgpu.FragmentState{
			Module:     pr.module,
			EntryPoint: pr.src.FragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    pr.device.format,
				Blend:     &wgpu.BlendState{Color: bc, Alpha: bc},
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}
	pl := &pipeline{rp: rp, layout: rp.GetBindGroupLayout(0)}
	pr.pipelines[key] = pl
	return pl, nil
}

// bindGroup returns the bind group of the uniforms, sampler and
// the given textures, remaking it when the textures change.
func (pl *pipeline) bindGroup(d *Device, textures [2]render.Resource) (*wgpu.BindGroup, error) {
	if pl.group != nil && pl.textures == textures {
		return pl.group, nil
	}
	cm, ok := textures[render.ColormapUnit].(*Texture)
	if !ok || cm.view == nil {
		return nil, fmt.Errorf("gpu: no colormap texture bound")
	}
	data, ok := textures[render.DataUnit].(*Texture)
	if !ok || data.view == nil {
		return nil, fmt.Errorf("gpu: no data texture bound")
	}
	bg, err := d.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: pl.layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: d.uniforms, Size: wgpu.WholeSize},
			{Binding: 1, TextureView: cm.view},
			{Binding: 2, Sampler: d.sampler},
			{Binding: 3, TextureView: data.view},
			{Binding: 4, Sampler: d.sampler},
		},
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	if pl.group != nil {
		pl.group.Release()
	}
	pl.group = bg
	pl.textures = textures
	return bg, nil
}

func (pl *pipeline) release() {
	if pl.group != nil {
		pl.group.Release()
		pl.group = nil
	}
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.rp != nil {
		pl.rp.Release()
		pl.rp = nil
	}
}

// BlendFactor returns the wgpu blend factor for bf.
func BlendFactor(bf render.BlendFactors) wgpu.BlendFactor {
	switch bf {
	case render.BlendOne:
		return wgpu.BlendFactorOne
	case render.BlendSrcAlpha:
		return wgpu.BlendFactorSrcAlpha
	case render.BlendOneMinusSrcAlpha:
		return wgpu.BlendFactorOneMinusSrcAlpha
	}
	return wgpu.BlendFactorZero
}

// CompareFunction returns the wgpu depth compare function for cf.
func CompareFunction(cf render.CompareFuncs) wgpu.CompareFunction {
	switch cf {
	case render.CompareLess:
		return wgpu.CompareFunctionLess
	case render.CompareLessEqual:
		return wgpu.CompareFunctionLessEqual
	}
	return wgpu.CompareFunctionAlways
}

// VertexLayout returns the vertex buffer layouts of a [render.Mesh]:
// positions at location 0 in slot 0 and texture coordinates at
// location 1 in slot 1.
func VertexLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: 12,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			},
		},
		{
			ArrayStride: 8,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 1},
			},
		},
	}
}

// Geometry is a [render.Mesh] uploaded to vertex and index buffers.
type Geometry struct {
	mesh      *render.Mesh
	positions *wgpu.Buffer
	texCoords *wgpu.Buffer
	indices   *wgpu.Buffer
}

func (d *Device) NewGeometry(m *render.Mesh) (render.Resource, error) {
	if len(m.Positions) != len(m.TexCoords) || len(m.Indices)%3 != 0 {
		return nil, fmt.Errorf("gpu: malformed mesh: %d positions, %d texcoords, %d indices", len(m.Positions), len(m.TexCoords), len(m.Indices))
	}
	g := &Geometry{mesh: m}
	var err error
	g.positions, err = d.bufferInit("positions", wgpu.ToBytes(m.Positions), wgpu.BufferUsageVertex)
	if err != nil {
		return nil, err
	}
	g.texCoords, err = d.bufferInit("texcoords", wgpu.ToBytes(m.TexCoords), wgpu.BufferUsageVertex)
	if err != nil {
		g.Release()
		return nil, err
	}
	// buffer sizes must be a multiple of 4
	idx := m.Indices
	if len(idx)%2 != 0 {
		idx = append(append([]uint16{}, idx...), 0)
	}
	g.indices, err = d.bufferInit("indices", wgpu.ToBytes(idx), wgpu.BufferUsageIndex)
	if err != nil {
		g.Release()
		return nil, err
	}
	return g, nil
}

func (d *Device) bufferInit(label string, contents []byte, usage wgpu.BufferUsage) (*wgpu.Buffer, error) {
	buf, err := d.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    usage | wgpu.BufferUsageCopyDst,
	})
	return buf, errors.Log(err)
}

func (g *Geometry) bind(rp *wgpu.RenderPassEncoder) {
	rp.SetVertexBuffer(0, g.positions, 0, wgpu.WholeSize)
	rp.SetVertexBuffer(1, g.texCoords, 0, wgpu.WholeSize)
	rp.SetIndexBuffer(g.indices, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
}

// Release releases the buffers.
func (g *Geometry) Release() {
	for _, b := range []*wgpu.Buffer{g.positions, g.texCoords, g.indices} {
		if b != nil {
			b.Release()
		}
	}
	g.positions, g.texCoords, g.indices = nil, nil, nil
}

