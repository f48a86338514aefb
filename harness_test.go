package crt

// Test doubles for the loop: an injectable surface, a recording
// device, and trivial fonts and consoles. The shared opLog captures
// cross-object call order.

type fakeSurface struct {
	id    WindowID
	w, h  int
	scale float32

	queue   []SurfaceEvent
	acked   [][2]int
	swaps   int
	swapErr error
	polls   int

	// onPoll, when set, can mutate the surface and append events
	// before each drain. Used to drive the loop from outside a scene.
	onPoll func(s *fakeSurface)
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{id: 1, w: w, h: h, scale: 1}
}

func (s *fakeSurface) ID() WindowID             { return s.id }
func (s *fakeSurface) PhysicalSize() (int, int) { return s.w, s.h }
func (s *fakeSurface) ScaleFactor() float32     { return s.scale }

func (s *fakeSurface) PollEvents() []SurfaceEvent {
	s.polls++
	if s.onPoll != nil {
		s.onPoll(s)
	}
	evs := s.queue
	s.queue = nil
	return evs
}

func (s *fakeSurface) AcknowledgeResize(w, h int) {
	s.acked = append(s.acked, [2]int{w, h})
}

func (s *fakeSurface) SwapBuffers() error {
	if err := s.swapErr; err != nil {
		s.swapErr = nil
		return err
	}
	s.swaps++
	return nil
}

func (s *fakeSurface) inject(ev SurfaceEvent) {
	s.queue = append(s.queue, ev)
}

func (s *fakeSurface) resize(w, h int) {
	s.w, s.h = w, h
	s.inject(SurfaceResized{Window: s.id, Width: w, Height: h})
}

func (s *fakeSurface) RequestClose() {
	s.inject(SurfaceCloseRequested{Window: s.id})
}

type fakeTarget struct {
	w, h      int
	destroyed bool
}

func (t *fakeTarget) Size() (int, int) { return t.w, t.h }
func (t *fakeTarget) Destroy()         { t.destroyed = true }

type fakeDevice struct {
	log *[]string

	viewports  [][4]int
	clears     []RGB
	targets    []*fakeTarget
	bound      Target
	composites []PostParams
	createErr  error

	// pixels, when set, is returned verbatim by ReadPixels.
	pixels  []byte
	readErr error
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{log: new([]string)}
}

func (d *fakeDevice) record(op string) {
	*d.log = append(*d.log, op)
}

func (d *fakeDevice) Viewport(x, y, w, h int) {
	d.record("viewport")
	d.viewports = append(d.viewports, [4]int{x, y, w, h})
}

func (d *fakeDevice) Clear(c RGB) {
	d.clears = append(d.clears, c)
}

func (d *fakeDevice) CreateTarget(w, h int) (Target, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	d.record("target")
	t := &fakeTarget{w: w, h: h}
	d.targets = append(d.targets, t)
	return t, nil
}

func (d *fakeDevice) BindTarget(t Target) { d.bound = t }
func (d *fakeDevice) BindDefault()        { d.bound = nil }

func (d *fakeDevice) DrawComposite(src Target, p PostParams) error {
	d.record("composite")
	d.composites = append(d.composites, p)
	return nil
}

func (d *fakeDevice) ReadPixels(w, h int) ([]byte, error) {
	if d.readErr != nil {
		return nil, d.readErr
	}
	if d.pixels != nil {
		return d.pixels, nil
	}
	return make([]byte, w*h*4), nil
}

type fakeFont struct {
	w, h int
}

func (f fakeFont) TileSize() (int, int) { return f.w, f.h }

type fakeConsole struct {
	log *[]string

	font     int
	gw, gh   int
	rebuilds int
	draws    int
}

func (c *fakeConsole) FontIndex() int       { return c.font }
func (c *fakeConsole) GridSize() (int, int) { return c.gw, c.gh }
func (c *fakeConsole) Rebuild()             { c.rebuilds++ }
func (c *fakeConsole) Draw(Device) error    { c.draws++; return nil }

func (c *fakeConsole) SetGridSize(w, h int) {
	if c.log != nil {
		*c.log = append(*c.log, "grid")
	}
	c.gw, c.gh = w, h
}

// newTestLoop builds a loop over fresh fakes with the given options.
func newTestLoop(t interface{ Fatalf(string, ...any) }, w, h int, opts ...Option) (*Loop, *fakeSurface, *fakeDevice) {
	s := newFakeSurface(w, h)
	d := newFakeDevice()
	l, err := New(s, d, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l, s, d
}
