package keycode

// lwjgl2Glfw is indexed by LWJGL 2 code. Cataloged codes without a GLFW
// equivalent are left zero, which is not a GLFW keycode.
var lwjgl2Glfw = [...]Glfw{
	// escape
	Lwjgl2Escape: GlfwKeyEscape,

	// digit
	Lwjgl2Key0: GlfwKey0,
	Lwjgl2Key1: GlfwKey1,
	Lwjgl2Key2: GlfwKey2,
	Lwjgl2Key3: GlfwKey3,
	Lwjgl2Key4: GlfwKey4,
	Lwjgl2Key5: GlfwKey5,
	Lwjgl2Key6: GlfwKey6,
	Lwjgl2Key7: GlfwKey7,
	Lwjgl2Key8: GlfwKey8,
	Lwjgl2Key9: GlfwKey9,

	// letter
	Lwjgl2A: GlfwKeyA,
	Lwjgl2B: GlfwKeyB,
	Lwjgl2C: GlfwKeyC,
	Lwjgl2D: GlfwKeyD,
	Lwjgl2E: GlfwKeyE,
	Lwjgl2F: GlfwKeyF,
	Lwjgl2G: GlfwKeyG,
	Lwjgl2H: GlfwKeyH,
	Lwjgl2I: GlfwKeyI,
	Lwjgl2J: GlfwKeyJ,
	Lwjgl2K: GlfwKeyK,
	Lwjgl2L: GlfwKeyL,
	Lwjgl2M: GlfwKeyM,
	Lwjgl2N: GlfwKeyN,
	Lwjgl2O: GlfwKeyO,
	Lwjgl2P: GlfwKeyP,
	Lwjgl2Q: GlfwKeyQ,
	Lwjgl2R: GlfwKeyR,
	Lwjgl2S: GlfwKeyS,
	Lwjgl2T: GlfwKeyT,
	Lwjgl2U: GlfwKeyU,
	Lwjgl2V: GlfwKeyV,
	Lwjgl2W: GlfwKeyW,
	Lwjgl2X: GlfwKeyX,
	Lwjgl2Y: GlfwKeyY,
	Lwjgl2Z: GlfwKeyZ,

	// punctuation
	Lwjgl2Minus:      GlfwKeyMinus,
	Lwjgl2Equals:     GlfwKeyEqual,
	Lwjgl2LBracket:   GlfwKeyLeftBracket,
	Lwjgl2RBracket:   GlfwKeyRightBracket,
	Lwjgl2Semicolon:  GlfwKeySemicolon,
	Lwjgl2Apostrophe: GlfwKeyApostrophe,
	Lwjgl2Grave:      GlfwKeyGraveAccent,
	Lwjgl2Backslash:  GlfwKeyBackslash,
	Lwjgl2Comma:      GlfwKeyComma,
	Lwjgl2Period:     GlfwKeyPeriod,
	Lwjgl2Slash:      GlfwKeySlash,

	// editing
	Lwjgl2Back:   GlfwKeyBackspace,
	Lwjgl2Tab:    GlfwKeyTab,
	Lwjgl2Return: GlfwKeyEnter,
	Lwjgl2Space:  GlfwKeySpace,
	Lwjgl2Insert: GlfwKeyInsert,
	Lwjgl2Delete: GlfwKeyDelete,

	// navigation
	Lwjgl2Home:  GlfwKeyHome,
	Lwjgl2Up:    GlfwKeyUp,
	Lwjgl2Prior: GlfwKeyPageUp,
	Lwjgl2Left:  GlfwKeyLeft,
	Lwjgl2Right: GlfwKeyRight,
	Lwjgl2End:   GlfwKeyEnd,
	Lwjgl2Down:  GlfwKeyDown,
	Lwjgl2Next:  GlfwKeyPageDown,

	// function
	Lwjgl2F1:  GlfwKeyF1,
	Lwjgl2F2:  GlfwKeyF2,
	Lwjgl2F3:  GlfwKeyF3,
	Lwjgl2F4:  GlfwKeyF4,
	Lwjgl2F5:  GlfwKeyF5,
	Lwjgl2F6:  GlfwKeyF6,
	Lwjgl2F7:  GlfwKeyF7,
	Lwjgl2F8:  GlfwKeyF8,
	Lwjgl2F9:  GlfwKeyF9,
	Lwjgl2F10: GlfwKeyF10,
	Lwjgl2F11: GlfwKeyF11,
	Lwjgl2F12: GlfwKeyF12,
	Lwjgl2F13: GlfwKeyF13,
	Lwjgl2F14: GlfwKeyF14,
	Lwjgl2F15: GlfwKeyF15,
	Lwjgl2F16: GlfwKeyF16,
	Lwjgl2F17: GlfwKeyF17,
	Lwjgl2F18: GlfwKeyF18,
	Lwjgl2F19: GlfwKeyF19,

	// modifier
	Lwjgl2LControl: GlfwKeyLeftControl,
	Lwjgl2LShift:   GlfwKeyLeftShift,
	Lwjgl2RShift:   GlfwKeyRightShift,
	Lwjgl2LMenu:    GlfwKeyLeftAlt,
	Lwjgl2RControl: GlfwKeyRightControl,
	Lwjgl2RMenu:    GlfwKeyRightAlt,
	Lwjgl2LMeta:    GlfwKeyLeftSuper,
	Lwjgl2RMeta:    GlfwKeyRightSuper,

	// lock
	Lwjgl2Capital: GlfwKeyCapsLock,
	Lwjgl2NumLock: GlfwKeyNumLock,
	Lwjgl2Scroll:  GlfwKeyScrollLock,
	Lwjgl2SysRq:   GlfwKeyPrintScreen,
	Lwjgl2Pause:   GlfwKeyPause,

	// keypad
	Lwjgl2Multiply:     GlfwKeyKPMultiply,
	Lwjgl2Numpad7:      GlfwKeyKP7,
	Lwjgl2Numpad8:      GlfwKeyKP8,
	Lwjgl2Numpad9:      GlfwKeyKP9,
	Lwjgl2Subtract:     GlfwKeyKPSubtract,
	Lwjgl2Numpad4:      GlfwKeyKP4,
	Lwjgl2Numpad5:      GlfwKeyKP5,
	Lwjgl2Numpad6:      GlfwKeyKP6,
	Lwjgl2Add:          GlfwKeyKPAdd,
	Lwjgl2Numpad1:      GlfwKeyKP1,
	Lwjgl2Numpad2:      GlfwKeyKP2,
	Lwjgl2Numpad3:      GlfwKeyKP3,
	Lwjgl2Numpad0:      GlfwKeyKP0,
	Lwjgl2Decimal:      GlfwKeyKPDecimal,
	Lwjgl2NumpadEquals: GlfwKeyKPEqual,
	Lwjgl2NumpadEnter:  GlfwKeyKPEnter,
	Lwjgl2Divide:       GlfwKeyKPDivide,

	// menu
	Lwjgl2Apps: GlfwKeyMenu,
}

// ToGlfw translates an LWJGL 2 keycode to its GLFW keycode.
//
// Any int is accepted. Codes that are not cataloged, and cataloged codes
// with no GLFW equivalent (Japanese and PC98 keys, KEY_SECTION,
// KEY_FUNCTION, KEY_CLEAR, KEY_POWER, KEY_SLEEP ...), translate to
// GlfwKeyUnknown. The digit row maps by face value: KEY_0 (0x0B) yields
// GLFW_KEY_0.
func ToGlfw(code int) Glfw {
	if code < 0 || code >= len(lwjgl2Glfw) {
		return GlfwKeyUnknown
	}
	if k := lwjgl2Glfw[code]; k != 0 {
		return k
	}
	return GlfwKeyUnknown
}

// ToControlEvent translates an LWJGL 2 keycode to its control event
// identifier, e.g. KEY_PRIOR to "GLFW_KEY_PAGE_UP".
//
// It resolves to ControlKeyUnknown exactly when ToGlfw resolves to
// GlfwKeyUnknown.
func ToControlEvent(code int) ControlEvent {
	return ToGlfw(code).ControlEvent()
}
