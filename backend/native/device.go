// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

// Package native is the GPU crt backend, built on the gogpu wgpu hal.
// Render targets are storage buffers holding packed RGBA pixels; the
// composite pass runs as a compute shader. The device either opens a
// standalone Vulkan device or adopts one shared by the host through
// crt.DeviceProvider.
package native

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/crt"
	"github.com/gogpu/crt/backend"
)

func init() {
	backend.Register(backend.BackendNative, func() backend.DeviceBackend {
		return &nativeBackend{}
	})
}

type nativeBackend struct{}

func (*nativeBackend) Name() string { return backend.BackendNative }

func (*nativeBackend) NewDevice(width, height int) (crt.Device, error) {
	return NewDevice(width, height)
}

// fenceTimeout bounds GPU waits so a hung driver surfaces as an error
// instead of a deadlock.
const fenceTimeout = 5 * time.Second

// Device is the GPU drawing backend. Not safe for concurrent use; the
// loop drives it from a single goroutine.
type Device struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	owns     bool

	post *postPipeline

	def     *target
	bound   *target
	scratch []byte
}

// NewDevice opens a standalone Vulkan device and allocates a default
// target of the given size.
func NewDevice(width, height int) (*Device, error) {
	be, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("native: vulkan backend not available: %w", backend.ErrBackendNotAvailable)
	}
	instance, err := be.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("native: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("native: no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("native: open device: %w", err)
	}

	d := &Device{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		owns:     true,
	}
	if err := d.setup(width, height, selected.Info.Name); err != nil {
		d.Destroy()
		return nil, err
	}
	return d, nil
}

// NewDeviceWithProvider adopts a GPU device shared by the host. The
// provider must expose HalDevice() and HalQueue() returning hal.Device
// and hal.Queue; the device is not destroyed on Close.
func NewDeviceWithProvider(provider crt.DeviceProvider, width, height int) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("native: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("native: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("native: provider HalQueue is not hal.Queue")
	}

	d := &Device{device: device, queue: queue}
	if err := d.setup(width, height, "shared"); err != nil {
		d.Destroy()
		return nil, err
	}
	return d, nil
}

func (d *Device) setup(width, height int, adapterName string) error {
	post, err := newPostPipeline(d.device)
	if err != nil {
		return fmt.Errorf("native: post pipeline: %w", err)
	}
	d.post = post

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	def, err := d.createTarget(width, height, "crt_backbuffer")
	if err != nil {
		return err
	}
	d.def = def
	d.bound = def
	crt.Logger().Info("native: device ready", "adapter", adapterName, "owned", d.owns)
	return nil
}

// Destroy releases all device-side resources. A device opened through
// NewDeviceWithProvider leaves the underlying hal device alive.
func (d *Device) Destroy() {
	if d.def != nil {
		d.def.Destroy()
		d.def = nil
	}
	if d.post != nil {
		d.post.destroy(d.device)
		d.post = nil
	}
	if d.owns {
		if d.device != nil {
			d.device.Destroy()
		}
		if d.instance != nil {
			d.instance.Destroy()
		}
	}
	d.device = nil
	d.queue = nil
	d.bound = nil
}

// Viewport resizes the default target. Content is discarded on a size
// change.
func (d *Device) Viewport(x, y, width, height int) {
	if width == d.def.w && height == d.def.h {
		return
	}
	if width < 1 || height < 1 {
		return
	}
	nt, err := d.createTarget(width, height, "crt_backbuffer")
	if err != nil {
		crt.Logger().Warn("native: backbuffer resize", "error", err)
		return
	}
	wasDefault := d.bound == d.def
	d.def.Destroy()
	d.def = nt
	if wasDefault {
		d.bound = d.def
	}
}

// Clear fills the bound target with c at full alpha.
func (d *Device) Clear(c crt.RGB) {
	t := d.bound
	size := t.w * t.h * 4
	if cap(d.scratch) < size {
		d.scratch = make([]byte, size)
	}
	fill := d.scratch[:size]
	r, g, b := toByte(c.R), toByte(c.G), toByte(c.B)
	for i := 0; i < size; i += 4 {
		fill[i+0] = r
		fill[i+1] = g
		fill[i+2] = b
		fill[i+3] = 0xFF
	}
	d.queue.WriteBuffer(t.buf, 0, fill)
}

// CreateTarget allocates an offscreen pixel buffer target.
func (d *Device) CreateTarget(width, height int) (crt.Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("native: target %dx%d: %w", width, height, crt.ErrInvalidDimensions)
	}
	return d.createTarget(width, height, "crt_offscreen")
}

func (d *Device) createTarget(width, height int, label string) (*target, error) {
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(width) * uint64(height) * 4,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("native: create %s buffer: %w", label, err)
	}
	return &target{buf: buf, w: width, h: height, dev: d}, nil
}

// BindTarget directs drawing into t. Binding a foreign or destroyed
// target falls back to the default.
func (d *Device) BindTarget(t crt.Target) {
	if nt, ok := t.(*target); ok && nt.buf != nil && nt.dev == d {
		d.bound = nt
		return
	}
	d.bound = d.def
}

// BindDefault directs drawing into the default target.
func (d *Device) BindDefault() {
	d.bound = d.def
}

// ReadPixels copies the top-left width by height block of the default
// target to a staging buffer and maps it back, bottom row first.
func (d *Device) ReadPixels(width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("native: read %dx%d: %w", width, height, crt.ErrInvalidDimensions)
	}
	if width > d.def.w || height > d.def.h {
		return nil, fmt.Errorf("native: read %dx%d from %dx%d target: %w",
			width, height, d.def.w, d.def.h, crt.ErrInvalidDimensions)
	}

	size := uint64(width) * uint64(height) * 4
	staging, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "crt_staging",
		Size:  size,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("native: create staging buffer: %w", err)
	}
	defer d.device.DestroyBuffer(staging)

	// Per-row copies flip the buffer bottom-up during the transfer.
	rowBytes := uint64(width) * 4
	copies := make([]hal.BufferCopy, height)
	for y := 0; y < height; y++ {
		copies[y] = hal.BufferCopy{
			SrcOffset: uint64(y) * uint64(d.def.w) * 4,
			DstOffset: uint64(height-1-y) * rowBytes,
			Size:      rowBytes,
		}
	}

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "crt_readback"})
	if err != nil {
		return nil, fmt.Errorf("native: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("crt_readback"); err != nil {
		return nil, fmt.Errorf("native: begin encoding: %w", err)
	}
	encoder.CopyBufferToBuffer(d.def.buf, staging, copies)
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("native: end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmdBuf)

	if err := d.submitAndWait(cmdBuf); err != nil {
		return nil, err
	}

	out := make([]byte, size)
	if err := d.queue.ReadBuffer(staging, 0, out); err != nil {
		return nil, fmt.Errorf("native: readback: %w", err)
	}
	return out, nil
}

// submitAndWait submits one command buffer and blocks on its fence.
func (d *Device) submitAndWait(cmdBuf hal.CommandBuffer) error {
	fence, err := d.device.CreateFence()
	if err != nil {
		return fmt.Errorf("native: create fence: %w", err)
	}
	defer d.device.DestroyFence(fence)

	if err := d.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("native: submit: %w", err)
	}
	ok, err := d.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !ok {
		return fmt.Errorf("native: wait for GPU: ok=%v err=%w", ok, err)
	}
	return nil
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}

type target struct {
	buf  hal.Buffer
	w, h int
	dev  *Device
}

func (t *target) Size() (int, int) { return t.w, t.h }

func (t *target) Destroy() {
	if t.buf != nil && t.dev != nil && t.dev.device != nil {
		t.dev.device.DestroyBuffer(t.buf)
	}
	t.buf = nil
}
