// Package backend selects and constructs drawing devices for the crt
// loop. Concrete backends live in subpackages and register themselves
// from init(); hosts either name one explicitly via Get or take the
// best available via Default.
package backend

import (
	"errors"

	"github.com/gogpu/crt"
)

// Registered backend names.
const (
	// BackendNative is the GPU device built on the gogpu wgpu hal.
	BackendNative = "native"

	// BackendSoftware is the pure-CPU device.
	BackendSoftware = "software"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when no requested backend is registered.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// DeviceBackend constructs crt devices.
type DeviceBackend interface {
	// Name returns the backend identifier (e.g. "software", "native").
	Name() string

	// NewDevice creates a device with an initial default-target size.
	NewDevice(width, height int) (crt.Device, error)
}
