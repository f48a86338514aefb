// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package native

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/crt"
)

//go:embed shaders/post.wgsl
var postShaderWGSL string

// postParamsSize is the byte size of the PostParams uniform: eight
// u32 fields plus one vec4<f32>.
const postParamsSize = 48

// postPipeline holds the compute pipeline of the composite pass.
type postPipeline struct {
	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline
}

func newPostPipeline(device hal.Device) (*postPipeline, error) {
	// WGSL goes through naga to SPIR-V ahead of module creation, so a
	// shader bug fails here with a compile error instead of inside
	// the driver.
	spirvBytes, err := naga.Compile(postShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("compile post shader: %w", err)
	}
	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	p := &postPipeline{}
	p.shader, err = device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "crt_post",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return nil, fmt.Errorf("create post shader module: %w", err)
	}

	p.bindLayout, err = device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "crt_post_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		p.destroy(device)
		return nil, fmt.Errorf("create post bind group layout: %w", err)
	}

	p.pipeLayout, err = device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "crt_post_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		p.destroy(device)
		return nil, fmt.Errorf("create post pipeline layout: %w", err)
	}

	p.pipeline, err = device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: "crt_post_pipeline", Layout: p.pipeLayout,
		Compute: hal.ComputeState{Module: p.shader, EntryPoint: "main"},
	})
	if err != nil {
		p.destroy(device)
		return nil, fmt.Errorf("create post compute pipeline: %w", err)
	}
	return p, nil
}

func (p *postPipeline) destroy(device hal.Device) {
	if device == nil {
		return
	}
	if p.pipeline != nil {
		device.DestroyComputePipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.bindLayout != nil {
		device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.shader != nil {
		device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// DrawComposite runs the composite compute pass from src into the
// bound target and blocks until the GPU finishes.
func (d *Device) DrawComposite(src crt.Target, params crt.PostParams) error {
	st, ok := src.(*target)
	if !ok || st.buf == nil || st.dev != d {
		return fmt.Errorf("native: composite: %w", crt.ErrInvalidDimensions)
	}
	dst := d.bound

	ub, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "crt_post_params",
		Size:  postParamsSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("native: create params buffer: %w", err)
	}
	defer d.device.DestroyBuffer(ub)
	d.queue.WriteBuffer(ub, 0, packPostParams(dst.w, dst.h, st.w, st.h, params))

	bg, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "crt_post_bind",
		Layout: d.post.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: ub.NativeHandle(), Offset: 0, Size: postParamsSize}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: st.buf.NativeHandle(), Offset: 0, Size: uint64(st.w) * uint64(st.h) * 4}},
			{Binding: 2, Resource: gputypes.BufferBinding{Buffer: dst.buf.NativeHandle(), Offset: 0, Size: uint64(dst.w) * uint64(dst.h) * 4}},
		},
	})
	if err != nil {
		return fmt.Errorf("native: create post bind group: %w", err)
	}
	defer d.device.DestroyBindGroup(bg)

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "crt_post_encoder"})
	if err != nil {
		return fmt.Errorf("native: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("crt_post"); err != nil {
		return fmt.Errorf("native: begin encoding: %w", err)
	}
	pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "crt_post_pass"})
	pass.SetPipeline(d.post.pipeline)
	pass.SetBindGroup(0, bg, nil)
	pass.Dispatch((uint32(dst.w)+7)/8, (uint32(dst.h)+7)/8, 1)
	pass.End()
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("native: end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmdBuf)

	return d.submitAndWait(cmdBuf)
}

// packPostParams lays out the PostParams uniform to match the WGSL
// struct: eight u32 fields then vec4<f32> burn_color.
func packPostParams(dstW, dstH, srcW, srcH int, p crt.PostParams) []byte {
	buf := make([]byte, postParamsSize)
	binary.LittleEndian.PutUint32(buf[0:], uint32(dstW))
	binary.LittleEndian.PutUint32(buf[4:], uint32(dstH))
	binary.LittleEndian.PutUint32(buf[8:], uint32(srcW))
	binary.LittleEndian.PutUint32(buf[12:], uint32(srcH))
	if p.ScreenBurn {
		binary.LittleEndian.PutUint32(buf[16:], 1)
	}
	binary.LittleEndian.PutUint32(buf[32:], math.Float32bits(p.BurnColor.R))
	binary.LittleEndian.PutUint32(buf[36:], math.Float32bits(p.BurnColor.G))
	binary.LittleEndian.PutUint32(buf[40:], math.Float32bits(p.BurnColor.B))
	binary.LittleEndian.PutUint32(buf[44:], math.Float32bits(1))
	return buf
}
