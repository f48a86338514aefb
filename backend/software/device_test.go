package software

import (
	"errors"
	"testing"

	"github.com/gogpu/crt"
	"github.com/gogpu/crt/backend"
)

func TestBackendRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendSoftware) {
		t.Fatal("software backend not registered")
	}
	b := backend.Get(backend.BackendSoftware)
	if b == nil {
		t.Fatal("Get returned nil")
	}
	if b.Name() != backend.BackendSoftware {
		t.Errorf("Name() = %q, want %q", b.Name(), backend.BackendSoftware)
	}
	dev, err := b.NewDevice(8, 8)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	if _, ok := dev.(*Device); !ok {
		t.Errorf("NewDevice returned %T, want *Device", dev)
	}
}

func TestDeviceClearAndRead(t *testing.T) {
	d, err := NewDevice(4, 2)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	d.Clear(crt.RGB{R: 1})

	pix, err := d.ReadPixels(4, 2)
	if err != nil {
		t.Fatalf("ReadPixels: %v", err)
	}
	if len(pix) != 4*2*4 {
		t.Fatalf("len = %d, want %d", len(pix), 4*2*4)
	}
	if pix[0] != 255 || pix[1] != 0 || pix[2] != 0 || pix[3] != 255 {
		t.Errorf("first pixel = %v, want opaque red", pix[:4])
	}
}

func TestDeviceReadPixelsBottomUp(t *testing.T) {
	d, err := NewDevice(4, 4)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	d.Clear(crt.RGB{})
	// Paint only the top row.
	d.FillRect(0, 0, 4, 1, crt.RGB{R: 1})

	pix, err := d.ReadPixels(4, 4)
	if err != nil {
		t.Fatalf("ReadPixels: %v", err)
	}
	// Bottom row first: the painted top row must be the last row of
	// the readback.
	last := pix[3*4*4:]
	if last[0] != 255 {
		t.Error("top row not in last readback row")
	}
	if pix[0] != 0 {
		t.Error("bottom row not in first readback row")
	}
}

func TestDeviceReadPixelsBounds(t *testing.T) {
	d, err := NewDevice(4, 4)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	if _, err := d.ReadPixels(8, 4); !errors.Is(err, crt.ErrInvalidDimensions) {
		t.Errorf("oversized read: %v, want ErrInvalidDimensions", err)
	}
	if _, err := d.ReadPixels(0, 4); !errors.Is(err, crt.ErrInvalidDimensions) {
		t.Errorf("zero read: %v, want ErrInvalidDimensions", err)
	}
}

func TestDeviceTargets(t *testing.T) {
	d, err := NewDevice(4, 4)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}

	if _, err := d.CreateTarget(0, 4); !errors.Is(err, crt.ErrInvalidDimensions) {
		t.Errorf("zero target: %v, want ErrInvalidDimensions", err)
	}

	tgt, err := d.CreateTarget(4, 4)
	if err != nil {
		t.Fatalf("CreateTarget: %v", err)
	}
	if w, h := tgt.Size(); w != 4 || h != 4 {
		t.Errorf("Size() = %dx%d, want 4x4", w, h)
	}

	// Drawing into the target must not touch the default buffer.
	d.Clear(crt.RGB{})
	d.BindTarget(tgt)
	d.Clear(crt.RGB{G: 1})
	d.BindDefault()
	pix, err := d.ReadPixels(4, 4)
	if err != nil {
		t.Fatalf("ReadPixels: %v", err)
	}
	if pix[1] != 0 {
		t.Error("offscreen clear leaked into the default target")
	}

	// A destroyed target falls back to the default binding.
	tgt.Destroy()
	d.BindTarget(tgt)
	d.Clear(crt.RGB{B: 1})
	pix, err = d.ReadPixels(4, 4)
	if err != nil {
		t.Fatalf("ReadPixels: %v", err)
	}
	if pix[2] != 255 {
		t.Error("binding a destroyed target did not fall back to default")
	}
}

func TestDeviceViewportResize(t *testing.T) {
	d, err := NewDevice(4, 4)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	d.Viewport(0, 0, 8, 8)
	if _, err := d.ReadPixels(8, 8); err != nil {
		t.Errorf("ReadPixels after viewport grow: %v", err)
	}

	snap := d.SnapshotScaled(16, 16)
	if b := snap.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("SnapshotScaled = %dx%d, want 16x16", b.Dx(), b.Dy())
	}
}
