package crt

// WindowID identifies a native window. The loop drives exactly one
// window and discards events carrying any other ID.
type WindowID uint64

// Surface is the windowing adapter the host hands to New. crt never
// opens windows itself; it receives the surface from the host and
// drives it: polling raw events, reading physical geometry, and
// presenting frames.
//
// All methods are called from the goroutine running Loop.Run.
type Surface interface {
	// ID returns the identifier of the window this surface wraps.
	ID() WindowID

	// PhysicalSize returns the current framebuffer size in physical
	// pixels. A minimized window may report zero in either dimension.
	PhysicalSize() (width, height int)

	// ScaleFactor returns the current DPI scale factor of the monitor
	// the window occupies.
	ScaleFactor() float32

	// PollEvents drains and returns the raw events accumulated since
	// the previous poll, in arrival order.
	PollEvents() []SurfaceEvent

	// AcknowledgeResize informs the surface that the loop has adopted
	// the given physical size, letting it resize swap chains or other
	// size-dependent state before the next frame.
	AcknowledgeResize(width, height int)

	// SwapBuffers presents the completed frame.
	SwapBuffers() error
}

// SurfaceEvent is a raw event produced by a Surface. The set of
// implementations is closed; the translator in this package is the
// only consumer.
type SurfaceEvent interface {
	// Source returns the ID of the window the event originated from.
	Source() WindowID

	isSurfaceEvent()
}

// SurfaceResized reports a change of the window framebuffer size.
type SurfaceResized struct {
	Window        WindowID
	Width, Height int
}

// SurfaceMoved reports a change of the window position in screen
// coordinates.
type SurfaceMoved struct {
	Window WindowID
	X, Y   int
}

// SurfaceCloseRequested reports the user asking to close the window.
type SurfaceCloseRequested struct {
	Window WindowID
}

// SurfaceCharacter reports translated text input.
type SurfaceCharacter struct {
	Window WindowID
	Char   rune
}

// SurfaceFocus reports the window gaining or losing input focus.
type SurfaceFocus struct {
	Window WindowID
	Gained bool
}

// SurfaceCursorMoved reports the cursor position in physical pixels.
type SurfaceCursorMoved struct {
	Window WindowID
	X, Y   float64
}

// SurfaceCursorEntered reports the cursor entering the window area.
type SurfaceCursorEntered struct {
	Window WindowID
}

// SurfaceCursorLeft reports the cursor leaving the window area.
type SurfaceCursorLeft struct {
	Window WindowID
}

// SurfaceMouseButton reports a button press or release.
type SurfaceMouseButton struct {
	Window  WindowID
	Button  MouseButton
	Pressed bool
}

// SurfaceKey reports a key press or release. Key is KeyNone when the
// surface could not identify the key; Scancode is always the raw
// hardware code.
type SurfaceKey struct {
	Window   WindowID
	Key      Key
	Scancode uint32
	Pressed  bool
}

// SurfaceModifiers reports the current state of the keyboard
// modifiers as a consolidated snapshot.
type SurfaceModifiers struct {
	Window           WindowID
	Shift, Ctrl, Alt bool
}

// SurfaceScaleChanged reports the window moving to a monitor with a
// different DPI scale factor. Width and Height carry the new physical
// size suggested by the platform.
type SurfaceScaleChanged struct {
	Window        WindowID
	Width, Height int
	ScaleFactor   float32
}

func (e SurfaceResized) Source() WindowID        { return e.Window }
func (e SurfaceMoved) Source() WindowID          { return e.Window }
func (e SurfaceCloseRequested) Source() WindowID { return e.Window }
func (e SurfaceCharacter) Source() WindowID      { return e.Window }
func (e SurfaceFocus) Source() WindowID          { return e.Window }
func (e SurfaceCursorMoved) Source() WindowID    { return e.Window }
func (e SurfaceCursorEntered) Source() WindowID  { return e.Window }
func (e SurfaceCursorLeft) Source() WindowID     { return e.Window }
func (e SurfaceMouseButton) Source() WindowID    { return e.Window }
func (e SurfaceKey) Source() WindowID            { return e.Window }
func (e SurfaceModifiers) Source() WindowID      { return e.Window }
func (e SurfaceScaleChanged) Source() WindowID   { return e.Window }

func (SurfaceResized) isSurfaceEvent()        {}
func (SurfaceMoved) isSurfaceEvent()          {}
func (SurfaceCloseRequested) isSurfaceEvent() {}
func (SurfaceCharacter) isSurfaceEvent()      {}
func (SurfaceFocus) isSurfaceEvent()          {}
func (SurfaceCursorMoved) isSurfaceEvent()    {}
func (SurfaceCursorEntered) isSurfaceEvent()  {}
func (SurfaceCursorLeft) isSurfaceEvent()     {}
func (SurfaceMouseButton) isSurfaceEvent()    {}
func (SurfaceKey) isSurfaceEvent()            {}
func (SurfaceModifiers) isSurfaceEvent()      {}
func (SurfaceScaleChanged) isSurfaceEvent()   {}
