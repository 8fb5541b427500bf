package keycode

import "strconv"

// Lwjgl2 is a keycode in the LWJGL 2 keyboard namespace.
//
// Values mirror org.lwjgl.input.Keyboard and must never change: game
// option files written by LWJGL 2 era clients store them verbatim.
type Lwjgl2 int

const (
	Lwjgl2None Lwjgl2 = 0x00

	Lwjgl2Escape Lwjgl2 = 0x01

	// The digit row follows the scan code layout, so 1..9 come before 0.
	Lwjgl2Key1 Lwjgl2 = 0x02
	Lwjgl2Key2 Lwjgl2 = 0x03
	Lwjgl2Key3 Lwjgl2 = 0x04
	Lwjgl2Key4 Lwjgl2 = 0x05
	Lwjgl2Key5 Lwjgl2 = 0x06
	Lwjgl2Key6 Lwjgl2 = 0x07
	Lwjgl2Key7 Lwjgl2 = 0x08
	Lwjgl2Key8 Lwjgl2 = 0x09
	Lwjgl2Key9 Lwjgl2 = 0x0A
	Lwjgl2Key0 Lwjgl2 = 0x0B

	Lwjgl2Minus        Lwjgl2 = 0x0C // - on main keyboard
	Lwjgl2Equals       Lwjgl2 = 0x0D
	Lwjgl2Back         Lwjgl2 = 0x0E // backspace
	Lwjgl2Tab          Lwjgl2 = 0x0F
	Lwjgl2Q            Lwjgl2 = 0x10
	Lwjgl2W            Lwjgl2 = 0x11
	Lwjgl2E            Lwjgl2 = 0x12
	Lwjgl2R            Lwjgl2 = 0x13
	Lwjgl2T            Lwjgl2 = 0x14
	Lwjgl2Y            Lwjgl2 = 0x15
	Lwjgl2U            Lwjgl2 = 0x16
	Lwjgl2I            Lwjgl2 = 0x17
	Lwjgl2O            Lwjgl2 = 0x18
	Lwjgl2P            Lwjgl2 = 0x19
	Lwjgl2LBracket     Lwjgl2 = 0x1A
	Lwjgl2RBracket     Lwjgl2 = 0x1B
	Lwjgl2Return       Lwjgl2 = 0x1C // Enter on main keyboard
	Lwjgl2LControl     Lwjgl2 = 0x1D
	Lwjgl2A            Lwjgl2 = 0x1E
	Lwjgl2S            Lwjgl2 = 0x1F
	Lwjgl2D            Lwjgl2 = 0x20
	Lwjgl2F            Lwjgl2 = 0x21
	Lwjgl2G            Lwjgl2 = 0x22
	Lwjgl2H            Lwjgl2 = 0x23
	Lwjgl2J            Lwjgl2 = 0x24
	Lwjgl2K            Lwjgl2 = 0x25
	Lwjgl2L            Lwjgl2 = 0x26
	Lwjgl2Semicolon    Lwjgl2 = 0x27
	Lwjgl2Apostrophe   Lwjgl2 = 0x28
	Lwjgl2Grave        Lwjgl2 = 0x29 // accent grave
	Lwjgl2LShift       Lwjgl2 = 0x2A
	Lwjgl2Backslash    Lwjgl2 = 0x2B
	Lwjgl2Z            Lwjgl2 = 0x2C
	Lwjgl2X            Lwjgl2 = 0x2D
	Lwjgl2C            Lwjgl2 = 0x2E
	Lwjgl2V            Lwjgl2 = 0x2F
	Lwjgl2B            Lwjgl2 = 0x30
	Lwjgl2N            Lwjgl2 = 0x31
	Lwjgl2M            Lwjgl2 = 0x32
	Lwjgl2Comma        Lwjgl2 = 0x33
	Lwjgl2Period       Lwjgl2 = 0x34 // . on main keyboard
	Lwjgl2Slash        Lwjgl2 = 0x35 // / on main keyboard
	Lwjgl2RShift       Lwjgl2 = 0x36
	Lwjgl2Multiply     Lwjgl2 = 0x37 // * on numeric keypad
	Lwjgl2LMenu        Lwjgl2 = 0x38 // left Alt
	Lwjgl2Space        Lwjgl2 = 0x39
	Lwjgl2Capital      Lwjgl2 = 0x3A
	Lwjgl2F1           Lwjgl2 = 0x3B
	Lwjgl2F2           Lwjgl2 = 0x3C
	Lwjgl2F3           Lwjgl2 = 0x3D
	Lwjgl2F4           Lwjgl2 = 0x3E
	Lwjgl2F5           Lwjgl2 = 0x3F
	Lwjgl2F6           Lwjgl2 = 0x40
	Lwjgl2F7           Lwjgl2 = 0x41
	Lwjgl2F8           Lwjgl2 = 0x42
	Lwjgl2F9           Lwjgl2 = 0x43
	Lwjgl2F10          Lwjgl2 = 0x44
	Lwjgl2NumLock      Lwjgl2 = 0x45
	Lwjgl2Scroll       Lwjgl2 = 0x46 // Scroll Lock
	Lwjgl2Numpad7      Lwjgl2 = 0x47
	Lwjgl2Numpad8      Lwjgl2 = 0x48
	Lwjgl2Numpad9      Lwjgl2 = 0x49
	Lwjgl2Subtract     Lwjgl2 = 0x4A // - on numeric keypad
	Lwjgl2Numpad4      Lwjgl2 = 0x4B
	Lwjgl2Numpad5      Lwjgl2 = 0x4C
	Lwjgl2Numpad6      Lwjgl2 = 0x4D
	Lwjgl2Add          Lwjgl2 = 0x4E // + on numeric keypad
	Lwjgl2Numpad1      Lwjgl2 = 0x4F
	Lwjgl2Numpad2      Lwjgl2 = 0x50
	Lwjgl2Numpad3      Lwjgl2 = 0x51
	Lwjgl2Numpad0      Lwjgl2 = 0x52
	Lwjgl2Decimal      Lwjgl2 = 0x53 // . on numeric keypad
	Lwjgl2F11          Lwjgl2 = 0x57
	Lwjgl2F12          Lwjgl2 = 0x58
	Lwjgl2F13          Lwjgl2 = 0x64 // NEC PC98
	Lwjgl2F14          Lwjgl2 = 0x65 // NEC PC98
	Lwjgl2F15          Lwjgl2 = 0x66 // NEC PC98
	Lwjgl2F16          Lwjgl2 = 0x67 // extended function keys (Mac)
	Lwjgl2F17          Lwjgl2 = 0x68
	Lwjgl2F18          Lwjgl2 = 0x69
	Lwjgl2Kana         Lwjgl2 = 0x70 // Japanese keyboard
	Lwjgl2F19          Lwjgl2 = 0x71 // extended function keys (Mac)
	Lwjgl2Convert      Lwjgl2 = 0x79 // Japanese keyboard
	Lwjgl2NoConvert    Lwjgl2 = 0x7B // Japanese keyboard
	Lwjgl2Yen          Lwjgl2 = 0x7D // Japanese keyboard
	Lwjgl2NumpadEquals Lwjgl2 = 0x8D // = on numeric keypad (NEC PC98)
	Lwjgl2Circumflex   Lwjgl2 = 0x90 // Japanese keyboard
	Lwjgl2At           Lwjgl2 = 0x91 // NEC PC98
	Lwjgl2Colon        Lwjgl2 = 0x92 // NEC PC98
	Lwjgl2Underline    Lwjgl2 = 0x93 // NEC PC98
	Lwjgl2Kanji        Lwjgl2 = 0x94 // Japanese keyboard
	Lwjgl2Stop         Lwjgl2 = 0x95 // NEC PC98
	Lwjgl2Ax           Lwjgl2 = 0x96 // Japan AX
	Lwjgl2Unlabeled    Lwjgl2 = 0x97 // J3100
	Lwjgl2NumpadEnter  Lwjgl2 = 0x9C // Enter on numeric keypad
	Lwjgl2RControl     Lwjgl2 = 0x9D
	Lwjgl2Section      Lwjgl2 = 0xA7 // section symbol (Mac)
	Lwjgl2NumpadComma  Lwjgl2 = 0xB3 // , on numeric keypad (NEC PC98)
	Lwjgl2Divide       Lwjgl2 = 0xB5 // / on numeric keypad
	Lwjgl2SysRq        Lwjgl2 = 0xB7
	Lwjgl2RMenu        Lwjgl2 = 0xB8 // right Alt
	Lwjgl2Function     Lwjgl2 = 0xC4 // Function (Mac)
	Lwjgl2Pause        Lwjgl2 = 0xC5
	Lwjgl2Home         Lwjgl2 = 0xC7 // Home on arrow keypad
	Lwjgl2Up           Lwjgl2 = 0xC8 // UpArrow on arrow keypad
	Lwjgl2Prior        Lwjgl2 = 0xC9 // PgUp on arrow keypad
	Lwjgl2Left         Lwjgl2 = 0xCB // LeftArrow on arrow keypad
	Lwjgl2Right        Lwjgl2 = 0xCD // RightArrow on arrow keypad
	Lwjgl2End          Lwjgl2 = 0xCF // End on arrow keypad
	Lwjgl2Down         Lwjgl2 = 0xD0 // DownArrow on arrow keypad
	Lwjgl2Next         Lwjgl2 = 0xD1 // PgDn on arrow keypad
	Lwjgl2Insert       Lwjgl2 = 0xD2 // Insert on arrow keypad
	Lwjgl2Delete       Lwjgl2 = 0xD3 // Delete on arrow keypad
	Lwjgl2Clear        Lwjgl2 = 0xDA // Clear key (Mac)
	Lwjgl2LMeta        Lwjgl2 = 0xDB // left Windows/Option key
	Lwjgl2RMeta        Lwjgl2 = 0xDC // right Windows/Option key
	Lwjgl2Apps         Lwjgl2 = 0xDD // AppMenu key
	Lwjgl2Power        Lwjgl2 = 0xDE
	Lwjgl2Sleep        Lwjgl2 = 0xDF
)

const (
	// Lwjgl2LWin is the left Windows key.
	//
	// Deprecated: use Lwjgl2LMeta.
	Lwjgl2LWin = Lwjgl2LMeta

	// Lwjgl2RWin is the right Windows key.
	//
	// Deprecated: use Lwjgl2RMeta.
	Lwjgl2RWin = Lwjgl2RMeta
)

// Glfw returns the GLFW keycode for k.
// It is equivalent to ToGlfw(int(k)).
func (k Lwjgl2) Glfw() Glfw { return ToGlfw(int(k)) }

// ControlEvent returns the control event identifier for k.
// It is equivalent to ToControlEvent(int(k)).
func (k Lwjgl2) ControlEvent() ControlEvent { return ToControlEvent(int(k)) }

// Cataloged reports whether k is one of the named LWJGL 2 constants.
func (k Lwjgl2) Cataloged() bool {
	_, ok := lwjgl2Index[k]
	return ok
}

// Group returns the key group k belongs to.
// Values outside the catalog report GroupUnmapped.
func (k Lwjgl2) Group() Group {
	if i, ok := lwjgl2Index[k]; ok {
		return catalog[i].Group
	}
	return GroupUnmapped
}

// String returns the canonical LWJGL 2 name of k, e.g. "KEY_LMETA".
// Deprecated aliases print as their canonical name.
func (k Lwjgl2) String() string {
	if i, ok := lwjgl2Index[k]; ok {
		return catalog[i].Name
	}
	return "Lwjgl2(" + strconv.Itoa(int(k)) + ")"
}
