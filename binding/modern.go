package binding

import "keycast/keycode"

const (
	keyboardPrefix = "key.keyboard."
	mousePrefix    = "key.mouse."
)

// keyboardKeys maps modern key names, without the "key.keyboard." prefix,
// to GLFW keycodes.
var keyboardKeys = map[string]keycode.Glfw{
	"space":           keycode.GlfwKeySpace,
	"apostrophe":      keycode.GlfwKeyApostrophe,
	"comma":           keycode.GlfwKeyComma,
	"minus":           keycode.GlfwKeyMinus,
	"period":          keycode.GlfwKeyPeriod,
	"slash":           keycode.GlfwKeySlash,
	"0":               keycode.GlfwKey0,
	"1":               keycode.GlfwKey1,
	"2":               keycode.GlfwKey2,
	"3":               keycode.GlfwKey3,
	"4":               keycode.GlfwKey4,
	"5":               keycode.GlfwKey5,
	"6":               keycode.GlfwKey6,
	"7":               keycode.GlfwKey7,
	"8":               keycode.GlfwKey8,
	"9":               keycode.GlfwKey9,
	"semicolon":       keycode.GlfwKeySemicolon,
	"equal":           keycode.GlfwKeyEqual,
	"a":               keycode.GlfwKeyA,
	"b":               keycode.GlfwKeyB,
	"c":               keycode.GlfwKeyC,
	"d":               keycode.GlfwKeyD,
	"e":               keycode.GlfwKeyE,
	"f":               keycode.GlfwKeyF,
	"g":               keycode.GlfwKeyG,
	"h":               keycode.GlfwKeyH,
	"i":               keycode.GlfwKeyI,
	"j":               keycode.GlfwKeyJ,
	"k":               keycode.GlfwKeyK,
	"l":               keycode.GlfwKeyL,
	"m":               keycode.GlfwKeyM,
	"n":               keycode.GlfwKeyN,
	"o":               keycode.GlfwKeyO,
	"p":               keycode.GlfwKeyP,
	"q":               keycode.GlfwKeyQ,
	"r":               keycode.GlfwKeyR,
	"s":               keycode.GlfwKeyS,
	"t":               keycode.GlfwKeyT,
	"u":               keycode.GlfwKeyU,
	"v":               keycode.GlfwKeyV,
	"w":               keycode.GlfwKeyW,
	"x":               keycode.GlfwKeyX,
	"y":               keycode.GlfwKeyY,
	"z":               keycode.GlfwKeyZ,
	"left.bracket":    keycode.GlfwKeyLeftBracket,
	"backslash":       keycode.GlfwKeyBackslash,
	"right.bracket":   keycode.GlfwKeyRightBracket,
	"grave.accent":    keycode.GlfwKeyGraveAccent,
	"world.1":         keycode.GlfwKeyWorld1,
	"world.2":         keycode.GlfwKeyWorld2,
	"escape":          keycode.GlfwKeyEscape,
	"enter":           keycode.GlfwKeyEnter,
	"tab":             keycode.GlfwKeyTab,
	"backspace":       keycode.GlfwKeyBackspace,
	"insert":          keycode.GlfwKeyInsert,
	"delete":          keycode.GlfwKeyDelete,
	"right":           keycode.GlfwKeyRight,
	"left":            keycode.GlfwKeyLeft,
	"down":            keycode.GlfwKeyDown,
	"up":              keycode.GlfwKeyUp,
	"page.up":         keycode.GlfwKeyPageUp,
	"page.down":       keycode.GlfwKeyPageDown,
	"home":            keycode.GlfwKeyHome,
	"end":             keycode.GlfwKeyEnd,
	"caps.lock":       keycode.GlfwKeyCapsLock,
	"scroll.lock":     keycode.GlfwKeyScrollLock,
	"num.lock":        keycode.GlfwKeyNumLock,
	"print.screen":    keycode.GlfwKeyPrintScreen,
	"pause":           keycode.GlfwKeyPause,
	"f1":              keycode.GlfwKeyF1,
	"f2":              keycode.GlfwKeyF2,
	"f3":              keycode.GlfwKeyF3,
	"f4":              keycode.GlfwKeyF4,
	"f5":              keycode.GlfwKeyF5,
	"f6":              keycode.GlfwKeyF6,
	"f7":              keycode.GlfwKeyF7,
	"f8":              keycode.GlfwKeyF8,
	"f9":              keycode.GlfwKeyF9,
	"f10":             keycode.GlfwKeyF10,
	"f11":             keycode.GlfwKeyF11,
	"f12":             keycode.GlfwKeyF12,
	"f13":             keycode.GlfwKeyF13,
	"f14":             keycode.GlfwKeyF14,
	"f15":             keycode.GlfwKeyF15,
	"f16":             keycode.GlfwKeyF16,
	"f17":             keycode.GlfwKeyF17,
	"f18":             keycode.GlfwKeyF18,
	"f19":             keycode.GlfwKeyF19,
	"f20":             keycode.GlfwKeyF20,
	"f21":             keycode.GlfwKeyF21,
	"f22":             keycode.GlfwKeyF22,
	"f23":             keycode.GlfwKeyF23,
	"f24":             keycode.GlfwKeyF24,
	"f25":             keycode.GlfwKeyF25,
	"keypad.0":        keycode.GlfwKeyKP0,
	"keypad.1":        keycode.GlfwKeyKP1,
	"keypad.2":        keycode.GlfwKeyKP2,
	"keypad.3":        keycode.GlfwKeyKP3,
	"keypad.4":        keycode.GlfwKeyKP4,
	"keypad.5":        keycode.GlfwKeyKP5,
	"keypad.6":        keycode.GlfwKeyKP6,
	"keypad.7":        keycode.GlfwKeyKP7,
	"keypad.8":        keycode.GlfwKeyKP8,
	"keypad.9":        keycode.GlfwKeyKP9,
	"keypad.decimal":  keycode.GlfwKeyKPDecimal,
	"keypad.divide":   keycode.GlfwKeyKPDivide,
	"keypad.multiply": keycode.GlfwKeyKPMultiply,
	"keypad.subtract": keycode.GlfwKeyKPSubtract,
	"keypad.add":      keycode.GlfwKeyKPAdd,
	"keypad.enter":    keycode.GlfwKeyKPEnter,
	"keypad.equal":    keycode.GlfwKeyKPEqual,
	"left.shift":      keycode.GlfwKeyLeftShift,
	"left.control":    keycode.GlfwKeyLeftControl,
	"left.alt":        keycode.GlfwKeyLeftAlt,
	"left.win":        keycode.GlfwKeyLeftSuper,
	"right.shift":     keycode.GlfwKeyRightShift,
	"right.control":   keycode.GlfwKeyRightControl,
	"right.alt":       keycode.GlfwKeyRightAlt,
	"right.win":       keycode.GlfwKeyRightSuper,
	"menu":            keycode.GlfwKeyMenu,
}

// mouseButtons maps modern mouse names, without the "key.mouse." prefix,
// to GLFW mouse buttons.
var mouseButtons = map[string]keycode.MouseButton{
	"left":   keycode.MouseButtonLeft,
	"right":  keycode.MouseButtonRight,
	"middle": keycode.MouseButtonMiddle,
	"4":      keycode.MouseButton4,
	"5":      keycode.MouseButton5,
	"6":      keycode.MouseButton6,
	"7":      keycode.MouseButton7,
	"8":      keycode.MouseButton8,
}
