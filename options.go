package crt

import "time"

// DefaultFrameBudget is the frame pacing budget used unless the host
// overrides it: roughly 30 frames per second.
const DefaultFrameBudget = 33 * time.Millisecond

// Option configures a Loop at construction time.
type Option func(*config)

type config struct {
	frameBudget      time.Duration
	uncapped         bool
	resizeScaling    bool
	structuredEvents bool

	postScanlines  bool
	postScreenBurn bool
	burnColor      RGB

	fonts    []Font
	consoles []Console
	raw      RawDrawer
}

func defaultConfig() config {
	return config{
		frameBudget: DefaultFrameBudget,
		burnColor:   RGB{R: 0, G: 1, B: 1},
	}
}

// WithFrameBudget sets the frame pacing budget. Frames render no more
// often than once per budget; the remainder of the budget is slept
// off. A non-positive budget uncaps the frame rate.
func WithFrameBudget(d time.Duration) Option {
	return func(c *config) {
		if d <= 0 {
			c.uncapped = true
			return
		}
		c.frameBudget = d
	}
}

// WithUncappedFrameRate disables frame pacing; the loop renders as
// fast as the host allows.
func WithUncappedFrameRate() Option {
	return func(c *config) { c.uncapped = true }
}

// WithResizeScaling makes window resizes re-flow console grids to
// fill the usable area, instead of keeping grids fixed.
func WithResizeScaling(enabled bool) Option {
	return func(c *config) { c.resizeScaling = enabled }
}

// WithStructuredEvents enables the application event queue. It also
// changes close handling: close requests are delivered as
// CloseRequested events instead of quitting the loop directly, so the
// host can intercept them.
func WithStructuredEvents(enabled bool) Option {
	return func(c *config) { c.structuredEvents = enabled }
}

// WithPostScanlines starts the loop with the scanline composite pass
// enabled. The host can toggle Term.PostScanlines at runtime.
func WithPostScanlines() Option {
	return func(c *config) { c.postScanlines = true }
}

// WithScreenBurn enables the phosphor burn effect with the given
// color. Implies scanline compositing.
func WithScreenBurn(c RGB) Option {
	return func(cfg *config) {
		cfg.postScanlines = true
		cfg.postScreenBurn = true
		cfg.burnColor = c
	}
}

// WithFont registers a tile atlas. Fonts are indexed in registration
// order; consoles reference them by index.
func WithFont(f Font) Option {
	return func(c *config) { c.fonts = append(c.fonts, f) }
}

// WithConsole registers a console layer. Consoles draw back to front
// in registration order.
func WithConsole(con Console) Option {
	return func(c *config) { c.consoles = append(c.consoles, con) }
}

// WithRawDrawer hooks custom drawing after all consoles, before the
// composite pass.
func WithRawDrawer(d RawDrawer) Option {
	return func(c *config) { c.raw = d }
}
