package keycode

import "strings"

// ControlEvent is a key or mouse identifier as stored in control layouts.
//
// Identifiers are persisted by users' layout files, so every value below
// is frozen.
type ControlEvent string

const (
	// ControlKeyUnknown is the identifier for keys without a mapping.
	ControlKeyUnknown ControlEvent = "GLFW_KEY_UNKNOWN"

	controlKeyPrefix   = "GLFW_KEY_"
	controlMousePrefix = "GLFW_MOUSE_"
)

// Mouse button identifiers.
const (
	ControlMouseButtonLeft   ControlEvent = "GLFW_MOUSE_BUTTON_LEFT"
	ControlMouseButtonRight  ControlEvent = "GLFW_MOUSE_BUTTON_RIGHT"
	ControlMouseButtonMiddle ControlEvent = "GLFW_MOUSE_BUTTON_MIDDLE"
)

// Key identifiers, one per named GLFW keycode.
const (
	ControlKeySpace        ControlEvent = "GLFW_KEY_SPACE"
	ControlKeyApostrophe   ControlEvent = "GLFW_KEY_APOSTROPHE"
	ControlKeyComma        ControlEvent = "GLFW_KEY_COMMA"
	ControlKeyMinus        ControlEvent = "GLFW_KEY_MINUS"
	ControlKeyPeriod       ControlEvent = "GLFW_KEY_PERIOD"
	ControlKeySlash        ControlEvent = "GLFW_KEY_SLASH"
	ControlKey0            ControlEvent = "GLFW_KEY_0"
	ControlKey1            ControlEvent = "GLFW_KEY_1"
	ControlKey2            ControlEvent = "GLFW_KEY_2"
	ControlKey3            ControlEvent = "GLFW_KEY_3"
	ControlKey4            ControlEvent = "GLFW_KEY_4"
	ControlKey5            ControlEvent = "GLFW_KEY_5"
	ControlKey6            ControlEvent = "GLFW_KEY_6"
	ControlKey7            ControlEvent = "GLFW_KEY_7"
	ControlKey8            ControlEvent = "GLFW_KEY_8"
	ControlKey9            ControlEvent = "GLFW_KEY_9"
	ControlKeySemicolon    ControlEvent = "GLFW_KEY_SEMICOLON"
	ControlKeyEqual        ControlEvent = "GLFW_KEY_EQUAL"
	ControlKeyA            ControlEvent = "GLFW_KEY_A"
	ControlKeyB            ControlEvent = "GLFW_KEY_B"
	ControlKeyC            ControlEvent = "GLFW_KEY_C"
	ControlKeyD            ControlEvent = "GLFW_KEY_D"
	ControlKeyE            ControlEvent = "GLFW_KEY_E"
	ControlKeyF            ControlEvent = "GLFW_KEY_F"
	ControlKeyG            ControlEvent = "GLFW_KEY_G"
	ControlKeyH            ControlEvent = "GLFW_KEY_H"
	ControlKeyI            ControlEvent = "GLFW_KEY_I"
	ControlKeyJ            ControlEvent = "GLFW_KEY_J"
	ControlKeyK            ControlEvent = "GLFW_KEY_K"
	ControlKeyL            ControlEvent = "GLFW_KEY_L"
	ControlKeyM            ControlEvent = "GLFW_KEY_M"
	ControlKeyN            ControlEvent = "GLFW_KEY_N"
	ControlKeyO            ControlEvent = "GLFW_KEY_O"
	ControlKeyP            ControlEvent = "GLFW_KEY_P"
	ControlKeyQ            ControlEvent = "GLFW_KEY_Q"
	ControlKeyR            ControlEvent = "GLFW_KEY_R"
	ControlKeyS            ControlEvent = "GLFW_KEY_S"
	ControlKeyT            ControlEvent = "GLFW_KEY_T"
	ControlKeyU            ControlEvent = "GLFW_KEY_U"
	ControlKeyV            ControlEvent = "GLFW_KEY_V"
	ControlKeyW            ControlEvent = "GLFW_KEY_W"
	ControlKeyX            ControlEvent = "GLFW_KEY_X"
	ControlKeyY            ControlEvent = "GLFW_KEY_Y"
	ControlKeyZ            ControlEvent = "GLFW_KEY_Z"
	ControlKeyLeftBracket  ControlEvent = "GLFW_KEY_LEFT_BRACKET"
	ControlKeyBackslash    ControlEvent = "GLFW_KEY_BACKSLASH"
	ControlKeyRightBracket ControlEvent = "GLFW_KEY_RIGHT_BRACKET"
	ControlKeyGraveAccent  ControlEvent = "GLFW_KEY_GRAVE_ACCENT"
	ControlKeyWorld1       ControlEvent = "GLFW_KEY_WORLD_1"
	ControlKeyWorld2       ControlEvent = "GLFW_KEY_WORLD_2"

	ControlKeyEscape      ControlEvent = "GLFW_KEY_ESCAPE"
	ControlKeyEnter       ControlEvent = "GLFW_KEY_ENTER"
	ControlKeyTab         ControlEvent = "GLFW_KEY_TAB"
	ControlKeyBackspace   ControlEvent = "GLFW_KEY_BACKSPACE"
	ControlKeyInsert      ControlEvent = "GLFW_KEY_INSERT"
	ControlKeyDelete      ControlEvent = "GLFW_KEY_DELETE"
	ControlKeyRight       ControlEvent = "GLFW_KEY_RIGHT"
	ControlKeyLeft        ControlEvent = "GLFW_KEY_LEFT"
	ControlKeyDown        ControlEvent = "GLFW_KEY_DOWN"
	ControlKeyUp          ControlEvent = "GLFW_KEY_UP"
	ControlKeyPageUp      ControlEvent = "GLFW_KEY_PAGE_UP"
	ControlKeyPageDown    ControlEvent = "GLFW_KEY_PAGE_DOWN"
	ControlKeyHome        ControlEvent = "GLFW_KEY_HOME"
	ControlKeyEnd         ControlEvent = "GLFW_KEY_END"
	ControlKeyCapsLock    ControlEvent = "GLFW_KEY_CAPS_LOCK"
	ControlKeyScrollLock  ControlEvent = "GLFW_KEY_SCROLL_LOCK"
	ControlKeyNumLock     ControlEvent = "GLFW_KEY_NUM_LOCK"
	ControlKeyPrintScreen ControlEvent = "GLFW_KEY_PRINT_SCREEN"
	ControlKeyPause       ControlEvent = "GLFW_KEY_PAUSE"

	ControlKeyF1  ControlEvent = "GLFW_KEY_F1"
	ControlKeyF2  ControlEvent = "GLFW_KEY_F2"
	ControlKeyF3  ControlEvent = "GLFW_KEY_F3"
	ControlKeyF4  ControlEvent = "GLFW_KEY_F4"
	ControlKeyF5  ControlEvent = "GLFW_KEY_F5"
	ControlKeyF6  ControlEvent = "GLFW_KEY_F6"
	ControlKeyF7  ControlEvent = "GLFW_KEY_F7"
	ControlKeyF8  ControlEvent = "GLFW_KEY_F8"
	ControlKeyF9  ControlEvent = "GLFW_KEY_F9"
	ControlKeyF10 ControlEvent = "GLFW_KEY_F10"
	ControlKeyF11 ControlEvent = "GLFW_KEY_F11"
	ControlKeyF12 ControlEvent = "GLFW_KEY_F12"
	ControlKeyF13 ControlEvent = "GLFW_KEY_F13"
	ControlKeyF14 ControlEvent = "GLFW_KEY_F14"
	ControlKeyF15 ControlEvent = "GLFW_KEY_F15"
	ControlKeyF16 ControlEvent = "GLFW_KEY_F16"
	ControlKeyF17 ControlEvent = "GLFW_KEY_F17"
	ControlKeyF18 ControlEvent = "GLFW_KEY_F18"
	ControlKeyF19 ControlEvent = "GLFW_KEY_F19"
	ControlKeyF20 ControlEvent = "GLFW_KEY_F20"
	ControlKeyF21 ControlEvent = "GLFW_KEY_F21"
	ControlKeyF22 ControlEvent = "GLFW_KEY_F22"
	ControlKeyF23 ControlEvent = "GLFW_KEY_F23"
	ControlKeyF24 ControlEvent = "GLFW_KEY_F24"
	ControlKeyF25 ControlEvent = "GLFW_KEY_F25"

	ControlKeyKP0        ControlEvent = "GLFW_KEY_KP_0"
	ControlKeyKP1        ControlEvent = "GLFW_KEY_KP_1"
	ControlKeyKP2        ControlEvent = "GLFW_KEY_KP_2"
	ControlKeyKP3        ControlEvent = "GLFW_KEY_KP_3"
	ControlKeyKP4        ControlEvent = "GLFW_KEY_KP_4"
	ControlKeyKP5        ControlEvent = "GLFW_KEY_KP_5"
	ControlKeyKP6        ControlEvent = "GLFW_KEY_KP_6"
	ControlKeyKP7        ControlEvent = "GLFW_KEY_KP_7"
	ControlKeyKP8        ControlEvent = "GLFW_KEY_KP_8"
	ControlKeyKP9        ControlEvent = "GLFW_KEY_KP_9"
	ControlKeyKPDecimal  ControlEvent = "GLFW_KEY_KP_DECIMAL"
	ControlKeyKPDivide   ControlEvent = "GLFW_KEY_KP_DIVIDE"
	ControlKeyKPMultiply ControlEvent = "GLFW_KEY_KP_MULTIPLY"
	ControlKeyKPSubtract ControlEvent = "GLFW_KEY_KP_SUBTRACT"
	ControlKeyKPAdd      ControlEvent = "GLFW_KEY_KP_ADD"
	ControlKeyKPEnter    ControlEvent = "GLFW_KEY_KP_ENTER"
	ControlKeyKPEqual    ControlEvent = "GLFW_KEY_KP_EQUAL"

	ControlKeyLeftShift    ControlEvent = "GLFW_KEY_LEFT_SHIFT"
	ControlKeyLeftControl  ControlEvent = "GLFW_KEY_LEFT_CONTROL"
	ControlKeyLeftAlt      ControlEvent = "GLFW_KEY_LEFT_ALT"
	ControlKeyLeftSuper    ControlEvent = "GLFW_KEY_LEFT_SUPER"
	ControlKeyRightShift   ControlEvent = "GLFW_KEY_RIGHT_SHIFT"
	ControlKeyRightControl ControlEvent = "GLFW_KEY_RIGHT_CONTROL"
	ControlKeyRightAlt     ControlEvent = "GLFW_KEY_RIGHT_ALT"
	ControlKeyRightSuper   ControlEvent = "GLFW_KEY_RIGHT_SUPER"
	ControlKeyMenu         ControlEvent = "GLFW_KEY_MENU"
)

// glfwControl pairs every named GLFW keycode with its identifier.
var glfwControl = map[Glfw]ControlEvent{
	GlfwKeySpace:        ControlKeySpace,
	GlfwKeyApostrophe:   ControlKeyApostrophe,
	GlfwKeyComma:        ControlKeyComma,
	GlfwKeyMinus:        ControlKeyMinus,
	GlfwKeyPeriod:       ControlKeyPeriod,
	GlfwKeySlash:        ControlKeySlash,
	GlfwKey0:            ControlKey0,
	GlfwKey1:            ControlKey1,
	GlfwKey2:            ControlKey2,
	GlfwKey3:            ControlKey3,
	GlfwKey4:            ControlKey4,
	GlfwKey5:            ControlKey5,
	GlfwKey6:            ControlKey6,
	GlfwKey7:            ControlKey7,
	GlfwKey8:            ControlKey8,
	GlfwKey9:            ControlKey9,
	GlfwKeySemicolon:    ControlKeySemicolon,
	GlfwKeyEqual:        ControlKeyEqual,
	GlfwKeyA:            ControlKeyA,
	GlfwKeyB:            ControlKeyB,
	GlfwKeyC:            ControlKeyC,
	GlfwKeyD:            ControlKeyD,
	GlfwKeyE:            ControlKeyE,
	GlfwKeyF:            ControlKeyF,
	GlfwKeyG:            ControlKeyG,
	GlfwKeyH:            ControlKeyH,
	GlfwKeyI:            ControlKeyI,
	GlfwKeyJ:            ControlKeyJ,
	GlfwKeyK:            ControlKeyK,
	GlfwKeyL:            ControlKeyL,
	GlfwKeyM:            ControlKeyM,
	GlfwKeyN:            ControlKeyN,
	GlfwKeyO:            ControlKeyO,
	GlfwKeyP:            ControlKeyP,
	GlfwKeyQ:            ControlKeyQ,
	GlfwKeyR:            ControlKeyR,
	GlfwKeyS:            ControlKeyS,
	GlfwKeyT:            ControlKeyT,
	GlfwKeyU:            ControlKeyU,
	GlfwKeyV:            ControlKeyV,
	GlfwKeyW:            ControlKeyW,
	GlfwKeyX:            ControlKeyX,
	GlfwKeyY:            ControlKeyY,
	GlfwKeyZ:            ControlKeyZ,
	GlfwKeyLeftBracket:  ControlKeyLeftBracket,
	GlfwKeyBackslash:    ControlKeyBackslash,
	GlfwKeyRightBracket: ControlKeyRightBracket,
	GlfwKeyGraveAccent:  ControlKeyGraveAccent,
	GlfwKeyWorld1:       ControlKeyWorld1,
	GlfwKeyWorld2:       ControlKeyWorld2,

	GlfwKeyEscape:      ControlKeyEscape,
	GlfwKeyEnter:       ControlKeyEnter,
	GlfwKeyTab:         ControlKeyTab,
	GlfwKeyBackspace:   ControlKeyBackspace,
	GlfwKeyInsert:      ControlKeyInsert,
	GlfwKeyDelete:      ControlKeyDelete,
	GlfwKeyRight:       ControlKeyRight,
	GlfwKeyLeft:        ControlKeyLeft,
	GlfwKeyDown:        ControlKeyDown,
	GlfwKeyUp:          ControlKeyUp,
	GlfwKeyPageUp:      ControlKeyPageUp,
	GlfwKeyPageDown:    ControlKeyPageDown,
	GlfwKeyHome:        ControlKeyHome,
	GlfwKeyEnd:         ControlKeyEnd,
	GlfwKeyCapsLock:    ControlKeyCapsLock,
	GlfwKeyScrollLock:  ControlKeyScrollLock,
	GlfwKeyNumLock:     ControlKeyNumLock,
	GlfwKeyPrintScreen: ControlKeyPrintScreen,
	GlfwKeyPause:       ControlKeyPause,

	GlfwKeyF1:  ControlKeyF1,
	GlfwKeyF2:  ControlKeyF2,
	GlfwKeyF3:  ControlKeyF3,
	GlfwKeyF4:  ControlKeyF4,
	GlfwKeyF5:  ControlKeyF5,
	GlfwKeyF6:  ControlKeyF6,
	GlfwKeyF7:  ControlKeyF7,
	GlfwKeyF8:  ControlKeyF8,
	GlfwKeyF9:  ControlKeyF9,
	GlfwKeyF10: ControlKeyF10,
	GlfwKeyF11: ControlKeyF11,
	GlfwKeyF12: ControlKeyF12,
	GlfwKeyF13: ControlKeyF13,
	GlfwKeyF14: ControlKeyF14,
	GlfwKeyF15: ControlKeyF15,
	GlfwKeyF16: ControlKeyF16,
	GlfwKeyF17: ControlKeyF17,
	GlfwKeyF18: ControlKeyF18,
	GlfwKeyF19: ControlKeyF19,
	GlfwKeyF20: ControlKeyF20,
	GlfwKeyF21: ControlKeyF21,
	GlfwKeyF22: ControlKeyF22,
	GlfwKeyF23: ControlKeyF23,
	GlfwKeyF24: ControlKeyF24,
	GlfwKeyF25: ControlKeyF25,

	GlfwKeyKP0:        ControlKeyKP0,
	GlfwKeyKP1:        ControlKeyKP1,
	GlfwKeyKP2:        ControlKeyKP2,
	GlfwKeyKP3:        ControlKeyKP3,
	GlfwKeyKP4:        ControlKeyKP4,
	GlfwKeyKP5:        ControlKeyKP5,
	GlfwKeyKP6:        ControlKeyKP6,
	GlfwKeyKP7:        ControlKeyKP7,
	GlfwKeyKP8:        ControlKeyKP8,
	GlfwKeyKP9:        ControlKeyKP9,
	GlfwKeyKPDecimal:  ControlKeyKPDecimal,
	GlfwKeyKPDivide:   ControlKeyKPDivide,
	GlfwKeyKPMultiply: ControlKeyKPMultiply,
	GlfwKeyKPSubtract: ControlKeyKPSubtract,
	GlfwKeyKPAdd:      ControlKeyKPAdd,
	GlfwKeyKPEnter:    ControlKeyKPEnter,
	GlfwKeyKPEqual:    ControlKeyKPEqual,

	GlfwKeyLeftShift:    ControlKeyLeftShift,
	GlfwKeyLeftControl:  ControlKeyLeftControl,
	GlfwKeyLeftAlt:      ControlKeyLeftAlt,
	GlfwKeyLeftSuper:    ControlKeyLeftSuper,
	GlfwKeyRightShift:   ControlKeyRightShift,
	GlfwKeyRightControl: ControlKeyRightControl,
	GlfwKeyRightAlt:     ControlKeyRightAlt,
	GlfwKeyRightSuper:   ControlKeyRightSuper,
	GlfwKeyMenu:         ControlKeyMenu,
}

var (
	controlGlfw = func() map[ControlEvent]Glfw {
		m := make(map[ControlEvent]Glfw, len(glfwControl))
		for k, id := range glfwControl {
			m[id] = k
		}
		return m
	}()

	controlMouse = map[ControlEvent]MouseButton{
		ControlMouseButtonLeft:   MouseButtonLeft,
		ControlMouseButtonRight:  MouseButtonRight,
		ControlMouseButtonMiddle: MouseButtonMiddle,
	}
)

// IsMouse reports whether id names a mouse button rather than a key.
func (id ControlEvent) IsMouse() bool {
	return strings.HasPrefix(string(id), controlMousePrefix)
}

// Known reports whether id is a key or mouse identifier this package
// defines. ControlKeyUnknown is not known.
func (id ControlEvent) Known() bool {
	if _, ok := controlGlfw[id]; ok {
		return true
	}
	_, ok := controlMouse[id]
	return ok
}

// Glfw returns the GLFW keycode named by id, or GlfwKeyUnknown when id
// does not name a key.
func (id ControlEvent) Glfw() Glfw {
	if k, ok := controlGlfw[id]; ok {
		return k
	}
	return GlfwKeyUnknown
}

// MouseButton returns the mouse button named by id.
func (id ControlEvent) MouseButton() (MouseButton, bool) {
	b, ok := controlMouse[id]
	return b, ok
}

// Keycode returns the numeric GLFW code an input bridge should send for
// id: a mouse button index for mouse identifiers, a keycode otherwise.
// The second result is false when id names neither.
func (id ControlEvent) Keycode() (int, bool) {
	if id.IsMouse() {
		b, ok := id.MouseButton()
		return int(b), ok
	}
	k := id.Glfw()
	return int(k), k != GlfwKeyUnknown
}

// KeyName returns id without its "GLFW_KEY_" prefix, e.g. "A" or
// "PAGE_UP". Mouse identifiers are returned unchanged.
func (id ControlEvent) KeyName() string {
	return strings.TrimPrefix(string(id), controlKeyPrefix)
}

// ParseControlEvent converts s to a ControlEvent. It accepts the exact
// identifier or, case-insensitively, a key name without prefix ("a",
// "page_up").
func ParseControlEvent(s string) (ControlEvent, bool) {
	id := ControlEvent(strings.TrimSpace(s))
	if id.Known() {
		return id, true
	}
	id = ControlEvent(strings.ToUpper(string(id)))
	if !strings.HasPrefix(string(id), controlKeyPrefix) && !id.IsMouse() {
		id = controlKeyPrefix + id
	}
	if id.Known() {
		return id, true
	}
	return ControlKeyUnknown, false
}
