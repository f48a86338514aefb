package crt

// Input is the per-frame input state maintained by the translator.
// Held state (keys and buttons currently down) persists across
// frames; pressed state (went down this frame) is cleared after each
// presented frame.
type Input struct {
	structuredEvents bool
	scaleFactor      float32

	mouseX, mouseY float64

	buttons        map[int]bool
	buttonsPressed map[int]struct{}
	keys           map[Key]bool
	keysPressed    map[Key]struct{}
	lastScancode   uint32
}

func newInput(structuredEvents bool) *Input {
	return &Input{
		structuredEvents: structuredEvents,
		scaleFactor:      1,
		buttons:          make(map[int]bool),
		buttonsPressed:   make(map[int]struct{}),
		keys:             make(map[Key]bool),
		keysPressed:      make(map[Key]struct{}),
	}
}

// MousePosition returns the cursor position in physical pixels.
func (in *Input) MousePosition() (x, y float64) {
	return in.mouseX, in.mouseY
}

// ScaledMousePosition returns the cursor position divided by the
// current scale factor, in the same coordinate space as the usable
// frame area.
func (in *Input) ScaledMousePosition() (x, y float64) {
	s := float64(in.scaleFactor)
	if s <= 0 {
		s = 1
	}
	return in.mouseX / s, in.mouseY / s
}

// ScaleFactor returns the DPI scale factor last applied by a resize.
func (in *Input) ScaleFactor() float32 {
	return in.scaleFactor
}

// MouseButtonDown reports whether the button with the given stable
// index (0 left, 1 right, 2 middle, 3+n other) is currently held.
func (in *Input) MouseButtonDown(index int) bool {
	return in.buttons[index]
}

// MouseButtonPressed reports whether the button went down during the
// current frame.
func (in *Input) MouseButtonPressed(index int) bool {
	_, ok := in.buttonsPressed[index]
	return ok
}

// KeyDown reports whether the key is currently held.
func (in *Input) KeyDown(k Key) bool {
	return in.keys[k]
}

// KeyPressed reports whether the key went down during the current
// frame.
func (in *Input) KeyPressed(k Key) bool {
	_, ok := in.keysPressed[k]
	return ok
}

// LastScancode returns the raw hardware code of the most recent key
// event, including events whose key the surface could not identify.
func (in *Input) LastScancode() uint32 {
	return in.lastScancode
}

func (in *Input) setScaleFactor(s float32) {
	if s <= 0 {
		s = 1
	}
	in.scaleFactor = s
}

func (in *Input) setMousePosition(x, y float64) {
	in.mouseX, in.mouseY = x, y
}

func (in *Input) setMouseButton(index int, pressed bool) {
	if pressed {
		if !in.buttons[index] {
			in.buttonsPressed[index] = struct{}{}
		}
		in.buttons[index] = true
		return
	}
	delete(in.buttons, index)
}

func (in *Input) setKey(k Key, scancode uint32, pressed bool) {
	in.lastScancode = scancode
	if k == KeyNone {
		return
	}
	if pressed {
		if !in.keys[k] {
			in.keysPressed[k] = struct{}{}
		}
		in.keys[k] = true
		return
	}
	delete(in.keys, k)
}

// clearTransient drops the went-down-this-frame sets. Called after
// each presented frame.
func (in *Input) clearTransient() {
	clear(in.buttonsPressed)
	clear(in.keysPressed)
}
