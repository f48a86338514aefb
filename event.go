package crt

// Event is an application-level event delivered through the Term
// event queue. Events are produced by the translator only when the
// host enables structured events (WithStructuredEvents); the set of
// implementations is closed.
type Event interface {
	isEvent()
}

// Resized reports that the logical frame size changed. Width and
// Height are the usable area in scaled pixels after tile alignment,
// not the raw framebuffer size.
type Resized struct {
	Width, Height int
	ScaleFactor   float32
}

// Moved reports the window position in screen coordinates.
type Moved struct {
	X, Y int
}

// CloseRequested reports the user asking to close the window. Only
// delivered with structured events enabled; otherwise a close request
// quits the loop directly.
type CloseRequested struct{}

// Character reports translated text input.
type Character struct {
	Char rune
}

// Focused reports the window gaining or losing input focus.
type Focused struct {
	Gained bool
}

// CursorEntered reports the cursor entering the window.
type CursorEntered struct{}

// CursorLeft reports the cursor leaving the window.
type CursorLeft struct{}

// ScaleFactorChanged reports a DPI change. The resize it implies has
// already been applied when the event is observed.
type ScaleFactorChanged struct {
	Width, Height int
	ScaleFactor   float32
}

func (Resized) isEvent()            {}
func (Moved) isEvent()              {}
func (CloseRequested) isEvent()     {}
func (Character) isEvent()          {}
func (Focused) isEvent()            {}
func (CursorEntered) isEvent()      {}
func (CursorLeft) isEvent()         {}
func (ScaleFactorChanged) isEvent() {}
