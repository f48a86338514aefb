package crt

// Key identifies a physical key, independent of the windowing library
// the host surface is built on. Surfaces translate their native
// keycodes into Key values before handing events to the loop.
type Key int

// KeyNone marks a key the surface could not identify. Key events
// carrying it are dropped by the translator; the raw scancode is
// still recorded on the input state.
const KeyNone Key = 0

// Keyboard keys.
const (
	KeyEscape Key = iota + 1
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyShift
	KeyControl
	KeyAlt
	KeyMinus
	KeyEquals
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyApostrophe
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
)

// MouseButton names a physical mouse button as reported by the
// surface. Buttons beyond the standard three carry a device index.
type MouseButton struct {
	Name MouseButtonName

	// Index is the device button number for ButtonOther.
	Index int
}

// MouseButtonName enumerates the surface-level button names.
type MouseButtonName uint8

const (
	ButtonLeft MouseButtonName = iota
	ButtonRight
	ButtonMiddle
	ButtonOther
)

// stableIndex maps a surface button to the index the input state is
// keyed by: left 0, right 1, middle 2, others 3 plus the device index.
func (b MouseButton) stableIndex() int {
	switch b.Name {
	case ButtonLeft:
		return 0
	case ButtonRight:
		return 1
	case ButtonMiddle:
		return 2
	default:
		return 3 + b.Index
	}
}
