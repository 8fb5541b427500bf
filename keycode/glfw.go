package keycode

import "strconv"

// Glfw is a keycode in the GLFW 3 keyboard namespace.
type Glfw int

// GlfwKeyUnknown is returned for any key without a GLFW equivalent.
// It is distinct from every valid GLFW keycode.
const GlfwKeyUnknown Glfw = -1

// GLFW 3 keycodes, named after the GLFW_KEY_* macros.
const (
	GlfwKeySpace        Glfw = 32
	GlfwKeyApostrophe   Glfw = 39
	GlfwKeyComma        Glfw = 44
	GlfwKeyMinus        Glfw = 45
	GlfwKeyPeriod       Glfw = 46
	GlfwKeySlash        Glfw = 47
	GlfwKey0            Glfw = 48
	GlfwKey1            Glfw = 49
	GlfwKey2            Glfw = 50
	GlfwKey3            Glfw = 51
	GlfwKey4            Glfw = 52
	GlfwKey5            Glfw = 53
	GlfwKey6            Glfw = 54
	GlfwKey7            Glfw = 55
	GlfwKey8            Glfw = 56
	GlfwKey9            Glfw = 57
	GlfwKeySemicolon    Glfw = 59
	GlfwKeyEqual        Glfw = 61
	GlfwKeyA            Glfw = 65
	GlfwKeyB            Glfw = 66
	GlfwKeyC            Glfw = 67
	GlfwKeyD            Glfw = 68
	GlfwKeyE            Glfw = 69
	GlfwKeyF            Glfw = 70
	GlfwKeyG            Glfw = 71
	GlfwKeyH            Glfw = 72
	GlfwKeyI            Glfw = 73
	GlfwKeyJ            Glfw = 74
	GlfwKeyK            Glfw = 75
	GlfwKeyL            Glfw = 76
	GlfwKeyM            Glfw = 77
	GlfwKeyN            Glfw = 78
	GlfwKeyO            Glfw = 79
	GlfwKeyP            Glfw = 80
	GlfwKeyQ            Glfw = 81
	GlfwKeyR            Glfw = 82
	GlfwKeyS            Glfw = 83
	GlfwKeyT            Glfw = 84
	GlfwKeyU            Glfw = 85
	GlfwKeyV            Glfw = 86
	GlfwKeyW            Glfw = 87
	GlfwKeyX            Glfw = 88
	GlfwKeyY            Glfw = 89
	GlfwKeyZ            Glfw = 90
	GlfwKeyLeftBracket  Glfw = 91
	GlfwKeyBackslash    Glfw = 92
	GlfwKeyRightBracket Glfw = 93
	GlfwKeyGraveAccent  Glfw = 96
	GlfwKeyWorld1       Glfw = 161
	GlfwKeyWorld2       Glfw = 162

	GlfwKeyEscape      Glfw = 256
	GlfwKeyEnter       Glfw = 257
	GlfwKeyTab         Glfw = 258
	GlfwKeyBackspace   Glfw = 259
	GlfwKeyInsert      Glfw = 260
	GlfwKeyDelete      Glfw = 261
	GlfwKeyRight       Glfw = 262
	GlfwKeyLeft        Glfw = 263
	GlfwKeyDown        Glfw = 264
	GlfwKeyUp          Glfw = 265
	GlfwKeyPageUp      Glfw = 266
	GlfwKeyPageDown    Glfw = 267
	GlfwKeyHome        Glfw = 268
	GlfwKeyEnd         Glfw = 269
	GlfwKeyCapsLock    Glfw = 280
	GlfwKeyScrollLock  Glfw = 281
	GlfwKeyNumLock     Glfw = 282
	GlfwKeyPrintScreen Glfw = 283
	GlfwKeyPause       Glfw = 284

	GlfwKeyF1  Glfw = 290
	GlfwKeyF2  Glfw = 291
	GlfwKeyF3  Glfw = 292
	GlfwKeyF4  Glfw = 293
	GlfwKeyF5  Glfw = 294
	GlfwKeyF6  Glfw = 295
	GlfwKeyF7  Glfw = 296
	GlfwKeyF8  Glfw = 297
	GlfwKeyF9  Glfw = 298
	GlfwKeyF10 Glfw = 299
	GlfwKeyF11 Glfw = 300
	GlfwKeyF12 Glfw = 301
	GlfwKeyF13 Glfw = 302
	GlfwKeyF14 Glfw = 303
	GlfwKeyF15 Glfw = 304
	GlfwKeyF16 Glfw = 305
	GlfwKeyF17 Glfw = 306
	GlfwKeyF18 Glfw = 307
	GlfwKeyF19 Glfw = 308
	GlfwKeyF20 Glfw = 309
	GlfwKeyF21 Glfw = 310
	GlfwKeyF22 Glfw = 311
	GlfwKeyF23 Glfw = 312
	GlfwKeyF24 Glfw = 313
	GlfwKeyF25 Glfw = 314

	GlfwKeyKP0        Glfw = 320
	GlfwKeyKP1        Glfw = 321
	GlfwKeyKP2        Glfw = 322
	GlfwKeyKP3        Glfw = 323
	GlfwKeyKP4        Glfw = 324
	GlfwKeyKP5        Glfw = 325
	GlfwKeyKP6        Glfw = 326
	GlfwKeyKP7        Glfw = 327
	GlfwKeyKP8        Glfw = 328
	GlfwKeyKP9        Glfw = 329
	GlfwKeyKPDecimal  Glfw = 330
	GlfwKeyKPDivide   Glfw = 331
	GlfwKeyKPMultiply Glfw = 332
	GlfwKeyKPSubtract Glfw = 333
	GlfwKeyKPAdd      Glfw = 334
	GlfwKeyKPEnter    Glfw = 335
	GlfwKeyKPEqual    Glfw = 336

	GlfwKeyLeftShift    Glfw = 340
	GlfwKeyLeftControl  Glfw = 341
	GlfwKeyLeftAlt      Glfw = 342
	GlfwKeyLeftSuper    Glfw = 343
	GlfwKeyRightShift   Glfw = 344
	GlfwKeyRightControl Glfw = 345
	GlfwKeyRightAlt     Glfw = 346
	GlfwKeyRightSuper   Glfw = 347
	GlfwKeyMenu         Glfw = 348
)

// MouseButton is a GLFW mouse button index.
type MouseButton int

// GLFW mouse buttons.
const (
	MouseButton1 MouseButton = 0
	MouseButton2 MouseButton = 1
	MouseButton3 MouseButton = 2
	MouseButton4 MouseButton = 3
	MouseButton5 MouseButton = 4
	MouseButton6 MouseButton = 5
	MouseButton7 MouseButton = 6
	MouseButton8 MouseButton = 7

	MouseButtonLeft   = MouseButton1
	MouseButtonRight  = MouseButton2
	MouseButtonMiddle = MouseButton3
	MouseButtonLast   = MouseButton8
)

// Valid reports whether b is one of the eight GLFW mouse buttons.
func (b MouseButton) Valid() bool {
	return b >= MouseButton1 && b <= MouseButtonLast
}

// ControlEvent returns the control event identifier for b. Only the
// left, right and middle buttons have one; other buttons report
// ControlKeyUnknown.
func (b MouseButton) ControlEvent() ControlEvent {
	switch b {
	case MouseButtonLeft:
		return ControlMouseButtonLeft
	case MouseButtonRight:
		return ControlMouseButtonRight
	case MouseButtonMiddle:
		return ControlMouseButtonMiddle
	default:
		return ControlKeyUnknown
	}
}

// Known reports whether k is a named GLFW keycode.
func (k Glfw) Known() bool {
	_, ok := glfwControl[k]
	return ok
}

// ControlEvent returns the control event identifier naming k.
// GlfwKeyUnknown and unnamed values yield ControlKeyUnknown.
func (k Glfw) ControlEvent() ControlEvent {
	if id, ok := glfwControl[k]; ok {
		return id
	}
	return ControlKeyUnknown
}

// String returns the GLFW macro name of k, e.g. "GLFW_KEY_PAGE_UP".
func (k Glfw) String() string {
	if id, ok := glfwControl[k]; ok {
		return string(id)
	}
	if k == GlfwKeyUnknown {
		return string(ControlKeyUnknown)
	}
	return "Glfw(" + strconv.Itoa(int(k)) + ")"
}
