package crt

// Font describes a registered tile atlas. The loop only needs the
// tile dimensions; glyph storage and lookup stay with the host (see
// the tileset package for a concrete implementation).
type Font interface {
	// TileSize returns the tile dimensions in pixels.
	TileSize() (width, height int)
}

// Console is one virtual terminal layer. Implementations own their
// cell storage and drawing; the loop sizes them, rebuilds them once
// per frame, and draws them back to front in registration order.
type Console interface {
	// FontIndex returns the index of the font this console renders
	// with, as returned by Loop.AddFont.
	FontIndex() int

	// GridSize returns the console dimensions in tiles.
	GridSize() (width, height int)

	// SetGridSize resizes the console grid. Called by the loop when
	// resize scaling is enabled and the usable area changed.
	SetGridSize(width, height int)

	// Rebuild refreshes internal vertex or cell state ahead of
	// drawing. Called once per rendered frame.
	Rebuild()

	// Draw renders the console through the device.
	Draw(dev Device) error
}

// BackingPreparer is an optional Console extension for consoles that
// keep device-side backing storage. EnsureBacking runs at the start
// of every rendered frame, before Rebuild.
type BackingPreparer interface {
	EnsureBacking(dev Device) error
}

// RawDrawer hooks custom drawing into the frame, after all consoles
// and before the composite pass.
type RawDrawer interface {
	RawDraw(dev Device)
}

// largestTile returns the maximum tile width and height across the
// fonts used by the given consoles. Returns zeros when no console is
// registered, which disables tile alignment.
func largestTile(consoles []Console, fonts []Font) (width, height int) {
	for _, c := range consoles {
		i := c.FontIndex()
		if i < 0 || i >= len(fonts) {
			continue
		}
		w, h := fonts[i].TileSize()
		if w > width {
			width = w
		}
		if h > height {
			height = h
		}
	}
	return width, height
}
