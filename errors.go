package crt

import "errors"

// Sentinel errors returned by loop construction and frame operations.
var (
	// ErrNoSurface indicates that New was called without a display surface.
	ErrNoSurface = errors.New("crt: no surface")

	// ErrNoDevice indicates that New was called without a drawing device.
	ErrNoDevice = errors.New("crt: no device")

	// ErrNoScene indicates that Run was called with a nil scene.
	ErrNoScene = errors.New("crt: no scene")

	// ErrInvalidDimensions indicates a target or readback request with
	// a non-positive width or height.
	ErrInvalidDimensions = errors.New("crt: invalid dimensions")

	// ErrFontIndex indicates a console referencing an unregistered font.
	ErrFontIndex = errors.New("crt: font index out of range")
)
