// Package crt is the real-time presentation core for terminal-style
// grid rendering. It owns the main loop of an application that draws
// virtual consoles onto a native window: frame pacing against a
// millisecond budget, translation of raw window events into
// application-level input state, DPI-aware resize handling, and an
// optional offscreen composite pass for retro post-processing
// (scanlines and phosphor screen burn).
//
// The package does not open windows and does not rasterize glyphs.
// The host hands it a Surface (the windowing adapter) and a Device
// (the drawing backend), registers one or more Console layers, and
// calls Run with a Scene:
//
//	loop, err := crt.New(surface, device,
//		crt.WithFont(font),
//		crt.WithConsole(con),
//		crt.WithResizeScaling(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := loop.Run(scene); err != nil {
//		log.Fatal(err)
//	}
//
// Scene.Tick runs once per rendered frame and receives the Term,
// which exposes timing statistics, the event queue, and per-frame
// input state.
//
// Backends live under backend/: a pure-CPU software device suitable
// for tests and headless use, and a GPU device built on the gogpu
// wgpu hal.
package crt

// Version information.
const (
	// Version is the current crt version.
	Version = "0.1.0"

	// MinGoVersion is the minimum required Go version.
	MinGoVersion = "1.25"
)
