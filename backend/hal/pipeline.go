package hal

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/xd2d"
)

//go:embed shaders/fill.wgsl
var fillShaderSource string

// fillUniformSize is the byte size of one fill color (vec4<f32>).
const fillUniformSize = 16

// primitiveCount is the number of xd2d.PrimitiveType values.
const primitiveCount = int(xd2d.LineStrip) + 1

// compileSPIRV compiles WGSL source to SPIR-V words.
func compileSPIRV(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("compile shader: SPIR-V size %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return words, nil
}

// pipelines holds the shader, layouts and one render pipeline per primitive
// type, plus an unblended triangle pipeline for scissored clears.
type pipelines struct {
	device hal.Device
	format gputypes.TextureFormat

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout

	draw    [primitiveCount]hal.RenderPipeline
	replace hal.RenderPipeline

	// state the draw pipelines were built for
	state xd2d.RenderState
}

// createLayouts compiles the fill shader and creates the bind group and
// pipeline layouts shared by every pipeline.
func (p *pipelines) createLayouts() error {
	if fillShaderSource == "" {
		return fmt.Errorf("fill shader source is empty")
	}

	words, err := compileSPIRV(fillShaderSource)
	if err != nil {
		return err
	}
	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "xd2d_fill_shader",
		Source: hal.ShaderSource{SPIRV: words},
	})
	if err != nil {
		return fmt.Errorf("create fill shader module: %w", err)
	}
	p.shader = shader

	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "xd2d_fill_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create fill uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "xd2d_fill_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create fill pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout
	return nil
}

// build creates the draw pipelines for rs and the replace pipeline. Draw
// pipelines built for a different state are destroyed first.
func (p *pipelines) build(rs xd2d.RenderState) error {
	if p.draw[0] != nil && p.state == rs {
		return nil
	}
	p.destroyDraw()

	for i := range p.draw {
		prim := xd2d.PrimitiveType(i)
		blend := rs.Blend
		pipeline, err := p.create("xd2d_"+prim.String()+"_pipeline", rs.PrimitiveState(prim), &blend)
		if err != nil {
			p.destroyDraw()
			return fmt.Errorf("create %s pipeline: %w", prim, err)
		}
		p.draw[i] = pipeline
	}
	p.state = rs

	if p.replace == nil {
		pipeline, err := p.create("xd2d_clear_pipeline",
			xd2d.DefaultRenderState().PrimitiveState(xd2d.Triangles), nil)
		if err != nil {
			return fmt.Errorf("create clear pipeline: %w", err)
		}
		p.replace = pipeline
	}
	return nil
}

// create makes one render pipeline. A nil blend writes the fill color
// unblended.
func (p *pipelines) create(label string, prim gputypes.PrimitiveState, blend *gputypes.BlendState) (hal.RenderPipeline, error) {
	return p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    []gputypes.VertexBufferLayout{xd2d.VertexBufferLayout()},
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.format,
					Blend:     blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: prim,
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
}

// get returns the draw pipeline for prim.
func (p *pipelines) get(prim xd2d.PrimitiveType) hal.RenderPipeline {
	return p.draw[prim]
}

func (p *pipelines) destroyDraw() {
	for i, pipeline := range p.draw {
		if pipeline != nil {
			p.device.DestroyRenderPipeline(pipeline)
			p.draw[i] = nil
		}
	}
}

// destroy releases all pipeline resources in reverse creation order.
func (p *pipelines) destroy() {
	if p.device == nil {
		return
	}
	if p.replace != nil {
		p.device.DestroyRenderPipeline(p.replace)
		p.replace = nil
	}
	p.destroyDraw()
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
