package binding

import (
	"strconv"
	"strings"

	"keycast/keycode"
)

// Kind classifies what a binding value refers to.
type Kind int

const (
	KindUnknown Kind = iota
	KindKey
	KindMouse

	KindTotal = int(iota)
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindKey:
		return "key"
	case KindMouse:
		return "mouse"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Legacy mouse buttons are stored as button-100, so -100 is the left button.
const (
	legacyMouseOffset = 100
	legacyMouseFirst  = -legacyMouseOffset
	legacyMouseLast   = legacyMouseFirst + int(keycode.MouseButtonLast)
)

// Binding is a resolved binding value.
type Binding struct {
	// Value is the stored value with surrounding space removed.
	Value string
	Kind  Kind

	// Legacy is set when Value is an LWJGL 2 era integer.
	Legacy bool

	// Glfw is the key for KindKey and GlfwKeyUnknown otherwise.
	Glfw keycode.Glfw

	// Mouse is the button for KindMouse.
	Mouse keycode.MouseButton
}

// Resolve interprets a stored binding value. It never fails: values it
// cannot interpret resolve to KindUnknown.
func Resolve(value string) Binding {
	value = strings.TrimSpace(value)
	b := Binding{Value: value, Glfw: keycode.GlfwKeyUnknown}

	switch {
	case strings.HasPrefix(value, keyboardPrefix):
		if k, ok := keyboardKeys[strings.TrimPrefix(value, keyboardPrefix)]; ok {
			b.Kind, b.Glfw = KindKey, k
		}
	case strings.HasPrefix(value, mousePrefix):
		if m, ok := mouseButtons[strings.TrimPrefix(value, mousePrefix)]; ok {
			b.Kind, b.Mouse = KindMouse, m
		}
	default:
		code, err := strconv.Atoi(value)
		if err != nil {
			return b
		}
		b.Legacy = true

		switch {
		case code >= legacyMouseFirst && code <= legacyMouseLast:
			b.Kind, b.Mouse = KindMouse, keycode.MouseButton(code+legacyMouseOffset)
		case code >= 0:
			if k := keycode.ToGlfw(code); k != keycode.GlfwKeyUnknown {
				b.Kind, b.Glfw = KindKey, k
			}
		}
	}

	return b
}

// ControlEvent returns the control event identifier for b, or
// ControlKeyUnknown when b has none. Mouse buttons past the middle button
// have no identifier.
func (b Binding) ControlEvent() keycode.ControlEvent {
	switch b.Kind {
	case KindKey:
		return b.Glfw.ControlEvent()
	case KindMouse:
		return b.Mouse.ControlEvent()
	default:
		return keycode.ControlKeyUnknown
	}
}

// Keycode returns the numeric GLFW code for b: a keycode for keys and a
// button index for mouse buttons. The second result is false for
// KindUnknown.
func (b Binding) Keycode() (int, bool) {
	switch b.Kind {
	case KindKey:
		return int(b.Glfw), true
	case KindMouse:
		return int(b.Mouse), true
	default:
		return int(keycode.GlfwKeyUnknown), false
	}
}

func (b Binding) String() string {
	switch b.Kind {
	case KindKey:
		return b.Glfw.String()
	case KindMouse:
		if id := b.Mouse.ControlEvent(); id != keycode.ControlKeyUnknown {
			return string(id)
		}
		return "GLFW_MOUSE_BUTTON_" + strconv.Itoa(int(b.Mouse)+1)
	default:
		return "unknown"
	}
}
