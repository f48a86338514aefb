// Package software is the pure-CPU crt backend. The device draws into
// RGBA pixel buffers and implements the composite pass with plain
// loops, which makes it the reference implementation for effect
// semantics and the backend of choice for tests and headless use.
//
// The package also provides Window, an in-memory crt.Surface with
// event injection helpers for driving the loop without a display.
package software

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/crt"
	"github.com/gogpu/crt/backend"
)

func init() {
	backend.Register(backend.BackendSoftware, func() backend.DeviceBackend {
		return &softwareBackend{}
	})
}

type softwareBackend struct{}

func (*softwareBackend) Name() string { return backend.BackendSoftware }

func (*softwareBackend) NewDevice(width, height int) (crt.Device, error) {
	return NewDevice(width, height)
}

// pixmap is a tightly packed RGBA buffer, rows top-down.
type pixmap struct {
	w, h int
	pix  []uint8
}

func newPixmap(w, h int) *pixmap {
	return &pixmap{w: w, h: h, pix: make([]uint8, w*h*4)}
}

func (p *pixmap) fill(c crt.RGB) {
	r, g, b := toByte(c.R), toByte(c.G), toByte(c.B)
	for i := 0; i < len(p.pix); i += 4 {
		p.pix[i+0] = r
		p.pix[i+1] = g
		p.pix[i+2] = b
		p.pix[i+3] = 0xFF
	}
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

// Device is the CPU drawing backend. It keeps one default pixmap
// standing in for the window backbuffer plus any offscreen targets
// the loop creates.
type Device struct {
	def   *pixmap
	bound *pixmap
}

// NewDevice creates a CPU device with a default target of the given
// size. Zero dimensions are allowed; drawing is a no-op until the
// first Viewport call.
func NewDevice(width, height int) (*Device, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("software: device %dx%d: %w", width, height, crt.ErrInvalidDimensions)
	}
	d := &Device{def: newPixmap(width, height)}
	d.bound = d.def
	return d, nil
}

// Viewport resizes the default target. Content is discarded on a size
// change, matching a swap chain rebuild.
func (d *Device) Viewport(x, y, width, height int) {
	if width == d.def.w && height == d.def.h {
		return
	}
	wasDefault := d.bound == d.def
	d.def = newPixmap(width, height)
	if wasDefault {
		d.bound = d.def
	}
}

// Clear fills the bound target with c at full alpha.
func (d *Device) Clear(c crt.RGB) {
	d.bound.fill(c)
}

// CreateTarget allocates an offscreen pixel buffer.
func (d *Device) CreateTarget(width, height int) (crt.Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("software: target %dx%d: %w", width, height, crt.ErrInvalidDimensions)
	}
	return &target{px: newPixmap(width, height)}, nil
}

// BindTarget directs drawing into t. Binding a foreign or destroyed
// target falls back to the default.
func (d *Device) BindTarget(t crt.Target) {
	if st, ok := t.(*target); ok && st.px != nil {
		d.bound = st.px
		return
	}
	d.bound = d.def
}

// BindDefault directs drawing into the default target.
func (d *Device) BindDefault() {
	d.bound = d.def
}

// FillRect fills an axis-aligned rectangle in the bound target,
// clipped to the target bounds.
func (d *Device) FillRect(x, y, width, height int, c crt.RGB) {
	p := d.bound
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, p.w), min(y+height, p.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	r, g, b := toByte(c.R), toByte(c.G), toByte(c.B)
	for yy := y0; yy < y1; yy++ {
		row := yy * p.w * 4
		for xx := x0; xx < x1; xx++ {
			i := row + xx*4
			p.pix[i+0] = r
			p.pix[i+1] = g
			p.pix[i+2] = b
			p.pix[i+3] = 0xFF
		}
	}
}

// ReadPixels returns the top-left width by height block of the
// default target as RGBA bytes, bottom row first.
func (d *Device) ReadPixels(width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("software: read %dx%d: %w", width, height, crt.ErrInvalidDimensions)
	}
	if width > d.def.w || height > d.def.h {
		return nil, fmt.Errorf("software: read %dx%d from %dx%d target: %w",
			width, height, d.def.w, d.def.h, crt.ErrInvalidDimensions)
	}
	out := make([]byte, width*height*4)
	stride := width * 4
	for y := 0; y < height; y++ {
		srcRow := (height - 1 - y) * d.def.w * 4
		copy(out[y*stride:(y+1)*stride], d.def.pix[srcRow:srcRow+stride])
	}
	return out, nil
}

// Snapshot returns a copy of the default target as an image, rows
// top-down.
func (d *Device) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.def.w, d.def.h))
	copy(img.Pix, d.def.pix)
	return img
}

// SnapshotScaled returns the default target resampled to the given
// size with nearest-neighbor filtering, preserving hard tile edges.
func (d *Device) SnapshotScaled(width, height int) *image.RGBA {
	src := d.Snapshot()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

type target struct {
	px *pixmap
}

func (t *target) Size() (int, int) {
	if t.px == nil {
		return 0, 0
	}
	return t.px.w, t.px.h
}

func (t *target) Destroy() {
	t.px = nil
}
