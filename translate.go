package crt

// translate folds one raw surface event into loop state: input
// mutations, queued application events, the pending resize slot, or
// the quit flag. Events from other windows are discarded.
func (l *Loop) translate(ev SurfaceEvent) {
	if ev.Source() != l.surface.ID() {
		return
	}
	switch e := ev.(type) {
	case SurfaceResized:
		l.queueResize()

	case SurfaceMoved:
		// Moving between monitors can change the DPI scale, so a move
		// queues the same reconfiguration a resize does.
		l.term.pushEvent(Moved{X: e.X, Y: e.Y})
		l.queueResize()

	case SurfaceCloseRequested:
		if l.input.structuredEvents {
			l.term.pushEvent(CloseRequested{})
		} else {
			l.term.Quit()
		}

	case SurfaceCharacter:
		l.term.pushEvent(Character{Char: e.Char})

	case SurfaceFocus:
		l.term.pushEvent(Focused{Gained: e.Gained})

	case SurfaceCursorMoved:
		l.input.setMousePosition(e.X, e.Y)

	case SurfaceCursorEntered:
		l.term.pushEvent(CursorEntered{})

	case SurfaceCursorLeft:
		l.term.pushEvent(CursorLeft{})

	case SurfaceMouseButton:
		l.input.setMouseButton(e.Button.stableIndex(), e.Pressed)

	case SurfaceKey:
		l.input.setKey(e.Key, e.Scancode, e.Pressed)

	case SurfaceModifiers:
		l.term.Shift, l.term.Ctrl, l.term.Alt = e.Shift, e.Ctrl, e.Alt

	case SurfaceScaleChanged:
		// DPI changes are applied synchronously rather than queued:
		// the platform expects the new scale to be adopted before the
		// next frame, and the surface swap chain must match it.
		w, h := l.surface.PhysicalSize()
		scale := l.surface.ScaleFactor()
		l.surface.AcknowledgeResize(w, h)
		if err := l.applyResize(w, h, scale, false); err != nil {
			Logger().Warn("crt: scale change resize", "error", err)
		}
		l.term.pushEvent(ScaleFactorChanged{
			Width:       e.Width,
			Height:      e.Height,
			ScaleFactor: scale,
		})
	}
}
