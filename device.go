package crt

import "github.com/gogpu/gpucontext"

// DeviceProvider supplies GPU device handles shared with the host.
// Backends that run on the gogpu hal accept one so the loop renders
// on the same device the rest of the application uses.
type DeviceProvider = gpucontext.DeviceProvider

// RGB is a color with float32 components in [0, 1].
type RGB struct {
	R, G, B float32
}

// Target is an offscreen render target owned by a Device. The loop
// keeps at most one, sized to the window framebuffer, and rebuilds it
// on every resize.
type Target interface {
	// Size returns the target dimensions in physical pixels.
	Size() (width, height int)

	// Destroy releases the target resources. The target must not be
	// used afterwards.
	Destroy()
}

// PostParams carries the uniforms of the composite pass that copies
// the offscreen target to the window backbuffer.
type PostParams struct {
	// ScreenWidth and ScreenHeight are the presented surface size in
	// scaled pixels (scale factor times the logical frame size).
	ScreenWidth, ScreenHeight float32

	// ScreenBurn enables the phosphor burn effect; black pixels take
	// on BurnColor attenuated toward the screen edges.
	ScreenBurn bool
	BurnColor  RGB
}

// Device is the drawing backend the host hands to New. The loop
// drives it but does not own it; implementations live under backend/.
//
// Coordinate convention: ReadPixels returns tightly packed RGBA with
// the bottom row first, matching framebuffer readback order.
type Device interface {
	// Viewport sets the drawable region in physical pixels. Called on
	// every applied resize with the full framebuffer extent.
	Viewport(x, y, width, height int)

	// Clear fills the bound target with the given color, alpha 1.
	Clear(c RGB)

	// CreateTarget allocates an offscreen target. Implementations
	// return ErrInvalidDimensions for non-positive sizes.
	CreateTarget(width, height int) (Target, error)

	// BindTarget directs subsequent drawing into t.
	BindTarget(t Target)

	// BindDefault directs subsequent drawing into the window
	// backbuffer.
	BindDefault()

	// DrawComposite runs the post-processing pass: src is sampled,
	// scanline and burn effects from p are applied, and the result is
	// written to the bound output.
	DrawComposite(src Target, p PostParams) error

	// ReadPixels reads back a width by height block of the presented
	// frame as RGBA bytes, bottom row first.
	ReadPixels(width, height int) ([]byte, error)
}

// FillDrawer is an optional Device extension for backends that can
// fill axis-aligned rectangles directly. Console implementations and
// raw drawers may use it for solid cells.
type FillDrawer interface {
	FillRect(x, y, width, height int, c RGB)
}
