package software

import (
	"github.com/gogpu/crt"
)

// Window is an in-memory crt.Surface. It has no display; geometry and
// events are injected by the host, which makes it the surface of
// choice for tests and headless rendering.
//
// Window is not safe for concurrent use; inject events from the
// goroutine running the loop (typically from Scene.Tick).
type Window struct {
	id     crt.WindowID
	width  int
	height int
	scale  float32

	queue []crt.SurfaceEvent

	// Swaps counts SwapBuffers calls; Acked records every
	// AcknowledgeResize size in order.
	Swaps int
	Acked [][2]int

	// SwapErr, when set, is returned by the next SwapBuffers call.
	SwapErr error
}

// NewWindow creates a headless window with the given physical size
// and a scale factor of 1.
func NewWindow(id crt.WindowID, width, height int) *Window {
	return &Window{id: id, width: width, height: height, scale: 1}
}

// ID implements crt.Surface.
func (w *Window) ID() crt.WindowID { return w.id }

// PhysicalSize implements crt.Surface.
func (w *Window) PhysicalSize() (int, int) { return w.width, w.height }

// ScaleFactor implements crt.Surface.
func (w *Window) ScaleFactor() float32 { return w.scale }

// PollEvents implements crt.Surface; it drains the injected queue.
func (w *Window) PollEvents() []crt.SurfaceEvent {
	evs := w.queue
	w.queue = nil
	return evs
}

// AcknowledgeResize implements crt.Surface.
func (w *Window) AcknowledgeResize(width, height int) {
	w.Acked = append(w.Acked, [2]int{width, height})
}

// SwapBuffers implements crt.Surface.
func (w *Window) SwapBuffers() error {
	if err := w.SwapErr; err != nil {
		w.SwapErr = nil
		return err
	}
	w.Swaps++
	return nil
}

// Inject appends a raw event to the poll queue.
func (w *Window) Inject(ev crt.SurfaceEvent) {
	w.queue = append(w.queue, ev)
}

// Resize updates the physical size and injects the matching resize
// event.
func (w *Window) Resize(width, height int) {
	w.width, w.height = width, height
	w.Inject(crt.SurfaceResized{Window: w.id, Width: width, Height: height})
}

// SetScale updates the scale factor and injects a scale change event
// carrying the current physical size.
func (w *Window) SetScale(scale float32) {
	w.scale = scale
	w.Inject(crt.SurfaceScaleChanged{
		Window:      w.id,
		Width:       w.width,
		Height:      w.height,
		ScaleFactor: scale,
	})
}

// RequestClose injects a close request.
func (w *Window) RequestClose() {
	w.Inject(crt.SurfaceCloseRequested{Window: w.id})
}

// Type injects character events for each rune of s.
func (w *Window) Type(s string) {
	for _, r := range s {
		w.Inject(crt.SurfaceCharacter{Window: w.id, Char: r})
	}
}

// Press injects a key press and release.
func (w *Window) Press(k crt.Key, scancode uint32) {
	w.Inject(crt.SurfaceKey{Window: w.id, Key: k, Scancode: scancode, Pressed: true})
	w.Inject(crt.SurfaceKey{Window: w.id, Key: k, Scancode: scancode, Pressed: false})
}

// Click injects a button press and release.
func (w *Window) Click(b crt.MouseButton) {
	w.Inject(crt.SurfaceMouseButton{Window: w.id, Button: b, Pressed: true})
	w.Inject(crt.SurfaceMouseButton{Window: w.id, Button: b, Pressed: false})
}
