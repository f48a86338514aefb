package crt

import (
	"fmt"
	"runtime"
	"time"
)

// maxFrameSleep caps a single pacing sleep so a pathological budget
// or clock jump never parks the loop for long.
const maxFrameSleep = 33 * time.Millisecond

// Loop drives one window: it polls the surface, translates events,
// coalesces and applies resizes, paces frames against the budget, and
// renders registered consoles through the device.
type Loop struct {
	surface Surface
	device  Device

	cfg    config
	term   *Term
	input  *Input
	scaler ScreenScaler

	fonts    []Font
	consoles []Console
	raw      RawDrawer

	pending *pendingResize
	target  Target

	start       time.Time
	prevMS      uint64
	prevSeconds uint64
	frames      int
}

// New builds a loop around the given surface and device. Both are
// supplied by the host; the loop drives them but does not own them.
func New(surface Surface, device Device, opts ...Option) (*Loop, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if device == nil {
		return nil, ErrNoDevice
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	in := newInput(cfg.structuredEvents)
	term := newTerm(in)
	term.PostScanlines = cfg.postScanlines
	term.PostScreenBurn = cfg.postScreenBurn
	term.ScreenBurnColor = cfg.burnColor
	return &Loop{
		surface:  surface,
		device:   device,
		cfg:      cfg,
		term:     term,
		input:    in,
		fonts:    cfg.fonts,
		consoles: cfg.consoles,
		raw:      cfg.raw,
	}, nil
}

// Term returns the terminal state handed to Scene.Tick.
func (l *Loop) Term() *Term { return l.term }

// Scaler returns the screen scaler with the current usable area.
func (l *Loop) Scaler() *ScreenScaler { return &l.scaler }

// AddFont registers a tile atlas after construction and returns its
// index.
func (l *Loop) AddFont(f Font) int {
	l.fonts = append(l.fonts, f)
	return len(l.fonts) - 1
}

// AddConsole registers a console layer after construction.
func (l *Loop) AddConsole(c Console) {
	l.consoles = append(l.consoles, c)
}

// Close releases the offscreen composite target. The surface and
// device stay with the host.
func (l *Loop) Close() {
	if l.target != nil {
		l.target.Destroy()
		l.target = nil
	}
}

// Run drives the loop until the scene quits or the surface fails to
// present. The initial resize runs before the first frame so consoles
// are sized before the first Tick.
func (l *Loop) Run(scene Scene) error {
	if scene == nil {
		return ErrNoScene
	}
	w, h := l.surface.PhysicalSize()
	if err := l.applyResize(w, h, l.surface.ScaleFactor(), true); err != nil {
		return fmt.Errorf("crt: initial resize: %w", err)
	}
	l.start = time.Now()
	Logger().Info("crt: loop started",
		"budget", l.cfg.frameBudget,
		"uncapped", l.cfg.uncapped,
		"consoles", len(l.consoles))
	defer Logger().Info("crt: loop stopped")

	for !l.term.quitting {
		frameStart := time.Now()

		for _, ev := range l.surface.PollEvents() {
			l.translate(ev)
		}
		if l.term.quitting {
			break
		}

		// A minimized window reports zero extent; idle until the next
		// poll instead of rendering into nothing.
		if pw, ph := l.surface.PhysicalSize(); pw == 0 || ph == 0 {
			time.Sleep(time.Millisecond)
			continue
		}

		// The budget is read once per iteration so a mid-frame change
		// by the scene applies from the next frame on.
		budget := uint64(l.cfg.frameBudget / time.Millisecond)

		if l.cfg.uncapped || l.nowMS()-l.prevMS >= budget {
			render := true
			if p := l.pending; p != nil {
				l.pending = nil
				l.surface.AcknowledgeResize(p.width, p.height)
				if err := l.applyResize(p.width, p.height, p.scale, p.notify); err != nil {
					Logger().Warn("crt: resize failed, skipping frame", "error", err)
					render = false
				}
			}
			if render {
				l.tock(scene)
				if err := l.surface.SwapBuffers(); err != nil {
					return fmt.Errorf("crt: present: %w", err)
				}
				l.input.clearTransient()
			}
		}

		if !l.cfg.uncapped {
			if cost := time.Since(frameStart); cost < l.cfg.frameBudget {
				d := l.cfg.frameBudget - cost
				if d > maxFrameSleep {
					d = maxFrameSleep
				}
				preciseSleep(d)
			}
		}
	}
	return nil
}

// tock renders one frame: backing upkeep, timing stats, console
// rebuild, scene tick, console draw, raw draw, composite, screenshot.
func (l *Loop) tock(scene Scene) {
	for _, c := range l.consoles {
		if bp, ok := c.(BackingPreparer); ok {
			if err := bp.EnsureBacking(l.device); err != nil {
				Logger().Warn("crt: console backing", "error", err)
			}
		}
	}

	l.frames++
	if nowS := uint64(time.Since(l.start) / time.Second); nowS > l.prevSeconds {
		l.term.fps = float32(l.frames) / float32(nowS-l.prevSeconds)
		l.frames = 0
		l.prevSeconds = nowS
	}
	if nowMS := l.nowMS(); nowMS > l.prevMS {
		l.term.frameTimeMS = float32(nowMS - l.prevMS)
		l.prevMS = nowMS
	}

	for _, c := range l.consoles {
		c.Rebuild()
	}

	post := l.term.PostScanlines && l.target != nil
	if post {
		l.device.BindTarget(l.target)
	} else {
		l.device.BindDefault()
	}
	l.device.Clear(RGB{})

	scene.Tick(l.term)

	for _, c := range l.consoles {
		if err := c.Draw(l.device); err != nil {
			Logger().Warn("crt: console draw", "error", err)
		}
	}
	if l.raw != nil {
		l.raw.RawDraw(l.device)
	}

	if post {
		l.device.BindDefault()
		w, h := l.term.SizePixels()
		p := PostParams{
			ScreenWidth:  l.scaler.ScaleFactor() * float32(w),
			ScreenHeight: l.scaler.ScaleFactor() * float32(h),
			ScreenBurn:   l.term.PostScreenBurn,
			BurnColor:    l.term.ScreenBurnColor,
		}
		if err := l.device.DrawComposite(l.target, p); err != nil {
			Logger().Warn("crt: composite pass", "error", err)
		}
	}

	if path := l.term.takeScreenshot(); path != "" {
		w, h := l.term.SizePixels()
		if err := saveScreenshot(l.device, w, h, path); err != nil {
			Logger().Warn("crt: screenshot", "path", path, "error", err)
		} else {
			Logger().Debug("crt: screenshot written", "path", path)
		}
	}
}

// nowMS returns whole milliseconds elapsed since Run started.
func (l *Loop) nowMS() uint64 {
	return uint64(time.Since(l.start) / time.Millisecond)
}

// preciseSleep sleeps for d with sub-millisecond accuracy: a coarse
// sleep up to a safety margin, then a yield spin for the remainder.
// Plain time.Sleep routinely overshoots by a scheduler quantum, which
// would drag the frame rate below the budget.
func preciseSleep(d time.Duration) {
	const margin = 2 * time.Millisecond
	deadline := time.Now().Add(d)
	if d > margin {
		time.Sleep(d - margin)
	}
	for time.Now().Before(deadline) {
		runtime.Gosched()
	}
}
