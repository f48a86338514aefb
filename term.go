package crt

// Scene is the application callback driven by the loop. Tick runs
// once per rendered frame, between clearing and console drawing, and
// may mutate console contents, drain events, and inspect input.
type Scene interface {
	Tick(t *Term)
}

// SceneFunc adapts a function to the Scene interface.
type SceneFunc func(t *Term)

// Tick calls f(t).
func (f SceneFunc) Tick(t *Term) { f(t) }

// Term is the per-frame view of the terminal handed to Scene.Tick:
// timing statistics, the logical frame size, post-processing toggles,
// modifier state, the event queue, and input state.
type Term struct {
	// PostScanlines routes the frame through the offscreen composite
	// pass with the scanline effect. Toggled freely at runtime.
	PostScanlines bool

	// PostScreenBurn adds the phosphor burn effect to the composite
	// pass. Only visible while PostScanlines is on.
	PostScreenBurn bool

	// ScreenBurnColor is the phosphor color used by the burn effect.
	ScreenBurnColor RGB

	// Shift, Ctrl and Alt mirror the most recent modifier snapshot
	// reported by the surface.
	Shift, Ctrl, Alt bool

	fps         float32
	frameTimeMS float32

	widthPixels, heightPixels int

	quitting       bool
	screenshotPath string

	events []Event
	input  *Input
}

func newTerm(in *Input) *Term {
	return &Term{input: in}
}

// FPS returns the frame rate measured over the last whole second.
func (t *Term) FPS() float32 { return t.fps }

// FrameTimeMS returns the duration of the previous frame in whole
// milliseconds.
func (t *Term) FrameTimeMS() float32 { return t.frameTimeMS }

// SizePixels returns the logical frame size: the usable scaled area
// when resize scaling is on, the raw framebuffer size otherwise.
func (t *Term) SizePixels() (width, height int) {
	return t.widthPixels, t.heightPixels
}

// Quit asks the loop to stop. The loop exits before rendering another
// frame.
func (t *Term) Quit() { t.quitting = true }

// Quitting reports whether Quit has been called.
func (t *Term) Quitting() bool { return t.quitting }

// RequestScreenshot asks the loop to capture the presented frame at
// the end of the current frame and write it to path as PNG. Only one
// request is held at a time; a second request before capture replaces
// the first.
func (t *Term) RequestScreenshot(path string) { t.screenshotPath = path }

// Input returns the per-frame input state.
func (t *Term) Input() *Input { return t.input }

// DrainEvents returns the queued application events in arrival order
// and empties the queue. The queue only fills when structured events
// are enabled.
func (t *Term) DrainEvents() []Event {
	evs := t.events
	t.events = nil
	return evs
}

// pushEvent appends to the queue when structured events are enabled,
// and drops the event otherwise.
func (t *Term) pushEvent(ev Event) {
	if !t.input.structuredEvents {
		return
	}
	t.events = append(t.events, ev)
}

func (t *Term) setSizePixels(w, h int) {
	t.widthPixels, t.heightPixels = w, h
}

// takeScreenshot returns and clears the pending screenshot path.
func (t *Term) takeScreenshot() string {
	p := t.screenshotPath
	t.screenshotPath = ""
	return p
}
