package crt

import "fmt"

// pendingResize is the single coalescing slot for resize work. Every
// geometry-changing surface event overwrites it; the loop applies and
// clears it at most once per frame, so a burst of live-resize events
// costs one reconfiguration.
type pendingResize struct {
	width, height int
	scale         float32

	// notify distinguishes user-driven resizes, which emit a Resized
	// event and may re-flow console grids, from DPI acknowledgements,
	// which must not.
	notify bool
}

// queueResize overwrites the pending slot with the surface's current
// geometry.
func (l *Loop) queueResize() {
	w, h := l.surface.PhysicalSize()
	l.pending = &pendingResize{
		width:  w,
		height: h,
		scale:  l.surface.ScaleFactor(),
		notify: true,
	}
}

// applyResize reconfigures everything that depends on window
// geometry. The order is load-bearing: the scaler needs the largest
// tile, the Resized event and grid re-flow need the scaler's output,
// and the composite target needs the final physical size.
func (l *Loop) applyResize(physW, physH int, scale float32, notify bool) error {
	tileW, tileH := largestTile(l.consoles, l.fonts)

	l.input.setScaleFactor(scale)
	l.scaler.Update(physW, physH, scale, tileW, tileH)
	availW, availH := l.scaler.Available()

	if notify {
		if l.cfg.resizeScaling {
			l.term.setSizePixels(availW, availH)
		} else {
			l.term.setSizePixels(physW, physH)
		}
		l.term.pushEvent(Resized{Width: availW, Height: availH, ScaleFactor: scale})
	}

	if physW > 0 && physH > 0 {
		l.device.Viewport(0, 0, physW, physH)
	}

	// The composite target tracks the framebuffer but is never
	// allocated with a zero extent.
	tw, th := physW, physH
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	nt, err := l.device.CreateTarget(tw, th)
	if err != nil {
		return fmt.Errorf("crt: composite target %dx%d: %w", tw, th, err)
	}
	if l.target != nil {
		l.target.Destroy()
	}
	l.target = nt

	if notify && l.cfg.resizeScaling {
		for _, c := range l.consoles {
			i := c.FontIndex()
			if i < 0 || i >= len(l.fonts) {
				Logger().Warn("crt: console skipped in re-flow", "font", i, "error", ErrFontIndex)
				continue
			}
			fw, fh := l.fonts[i].TileSize()
			if fw > 0 && fh > 0 {
				c.SetGridSize(availW/fw, availH/fh)
			}
		}
	}

	Logger().Debug("crt: resize applied",
		"physical_w", physW, "physical_h", physH,
		"scale", scale,
		"usable_w", availW, "usable_h", availH,
		"notify", notify)
	return nil
}
