package crt

// ScreenScaler derives the usable drawing area from the physical
// framebuffer size, the DPI scale factor, and the largest active tile
// size. The usable area is the physical size divided by the scale
// factor, floored to a whole multiple of the tile dimensions, and
// never exceeds the physical size.
//
// Update is idempotent: reapplying the same inputs yields the same
// usable area.
type ScreenScaler struct {
	physW, physH   int
	scale          float32
	availW, availH int
}

// Update recomputes the usable area from the given geometry. A
// non-positive scale factor is treated as 1; non-positive tile
// dimensions skip tile alignment on that axis.
func (s *ScreenScaler) Update(physW, physH int, scale float32, tileW, tileH int) {
	if scale <= 0 {
		scale = 1
	}
	s.physW, s.physH = physW, physH
	s.scale = scale
	s.availW = usableExtent(physW, scale, tileW)
	s.availH = usableExtent(physH, scale, tileH)
}

// Available returns the usable drawing area in scaled pixels.
func (s *ScreenScaler) Available() (width, height int) {
	return s.availW, s.availH
}

// PhysicalSize returns the framebuffer size last passed to Update.
func (s *ScreenScaler) PhysicalSize() (width, height int) {
	return s.physW, s.physH
}

// ScaleFactor returns the scale factor last passed to Update.
func (s *ScreenScaler) ScaleFactor() float32 {
	return s.scale
}

// usableExtent computes one axis of the usable area: physical extent
// descaled, clamped to the physical extent, floored to a whole tile.
func usableExtent(phys int, scale float32, tile int) int {
	if phys <= 0 {
		return 0
	}
	d := int(float64(phys) / float64(scale))
	if d > phys {
		// Scale factors below 1 would report more usable pixels than
		// the framebuffer holds.
		d = phys
	}
	if d < 0 {
		d = 0
	}
	if tile > 0 {
		d -= d % tile
	}
	return d
}
