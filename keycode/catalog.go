package keycode

import "slices"

// CatalogEntry describes one named LWJGL 2 constant.
type CatalogEntry struct {
	Code       Lwjgl2
	Name       string
	Group      Group
	Deprecated bool
}

// catalog lists every named LWJGL 2 constant in declaration order.
// Deprecated aliases follow the constant they alias.
var catalog = []CatalogEntry{
	{Code: Lwjgl2None, Name: "KEY_NONE", Group: GroupUnmapped},
	{Code: Lwjgl2Escape, Name: "KEY_ESCAPE", Group: GroupEscape},
	{Code: Lwjgl2Key1, Name: "KEY_1", Group: GroupDigit},
	{Code: Lwjgl2Key2, Name: "KEY_2", Group: GroupDigit},
	{Code: Lwjgl2Key3, Name: "KEY_3", Group: GroupDigit},
	{Code: Lwjgl2Key4, Name: "KEY_4", Group: GroupDigit},
	{Code: Lwjgl2Key5, Name: "KEY_5", Group: GroupDigit},
	{Code: Lwjgl2Key6, Name: "KEY_6", Group: GroupDigit},
	{Code: Lwjgl2Key7, Name: "KEY_7", Group: GroupDigit},
	{Code: Lwjgl2Key8, Name: "KEY_8", Group: GroupDigit},
	{Code: Lwjgl2Key9, Name: "KEY_9", Group: GroupDigit},
	{Code: Lwjgl2Key0, Name: "KEY_0", Group: GroupDigit},
	{Code: Lwjgl2Minus, Name: "KEY_MINUS", Group: GroupPunctuation},
	{Code: Lwjgl2Equals, Name: "KEY_EQUALS", Group: GroupPunctuation},
	{Code: Lwjgl2Back, Name: "KEY_BACK", Group: GroupEditing},
	{Code: Lwjgl2Tab, Name: "KEY_TAB", Group: GroupEditing},
	{Code: Lwjgl2Q, Name: "KEY_Q", Group: GroupLetter},
	{Code: Lwjgl2W, Name: "KEY_W", Group: GroupLetter},
	{Code: Lwjgl2E, Name: "KEY_E", Group: GroupLetter},
	{Code: Lwjgl2R, Name: "KEY_R", Group: GroupLetter},
	{Code: Lwjgl2T, Name: "KEY_T", Group: GroupLetter},
	{Code: Lwjgl2Y, Name: "KEY_Y", Group: GroupLetter},
	{Code: Lwjgl2U, Name: "KEY_U", Group: GroupLetter},
	{Code: Lwjgl2I, Name: "KEY_I", Group: GroupLetter},
	{Code: Lwjgl2O, Name: "KEY_O", Group: GroupLetter},
	{Code: Lwjgl2P, Name: "KEY_P", Group: GroupLetter},
	{Code: Lwjgl2LBracket, Name: "KEY_LBRACKET", Group: GroupPunctuation},
	{Code: Lwjgl2RBracket, Name: "KEY_RBRACKET", Group: GroupPunctuation},
	{Code: Lwjgl2Return, Name: "KEY_RETURN", Group: GroupEditing},
	{Code: Lwjgl2LControl, Name: "KEY_LCONTROL", Group: GroupModifier},
	{Code: Lwjgl2A, Name: "KEY_A", Group: GroupLetter},
	{Code: Lwjgl2S, Name: "KEY_S", Group: GroupLetter},
	{Code: Lwjgl2D, Name: "KEY_D", Group: GroupLetter},
	{Code: Lwjgl2F, Name: "KEY_F", Group: GroupLetter},
	{Code: Lwjgl2G, Name: "KEY_G", Group: GroupLetter},
	{Code: Lwjgl2H, Name: "KEY_H", Group: GroupLetter},
	{Code: Lwjgl2J, Name: "KEY_J", Group: GroupLetter},
	{Code: Lwjgl2K, Name: "KEY_K", Group: GroupLetter},
	{Code: Lwjgl2L, Name: "KEY_L", Group: GroupLetter},
	{Code: Lwjgl2Semicolon, Name: "KEY_SEMICOLON", Group: GroupPunctuation},
	{Code: Lwjgl2Apostrophe, Name: "KEY_APOSTROPHE", Group: GroupPunctuation},
	{Code: Lwjgl2Grave, Name: "KEY_GRAVE", Group: GroupPunctuation},
	{Code: Lwjgl2LShift, Name: "KEY_LSHIFT", Group: GroupModifier},
	{Code: Lwjgl2Backslash, Name: "KEY_BACKSLASH", Group: GroupPunctuation},
	{Code: Lwjgl2Z, Name: "KEY_Z", Group: GroupLetter},
	{Code: Lwjgl2X, Name: "KEY_X", Group: GroupLetter},
	{Code: Lwjgl2C, Name: "KEY_C", Group: GroupLetter},
	{Code: Lwjgl2V, Name: "KEY_V", Group: GroupLetter},
	{Code: Lwjgl2B, Name: "KEY_B", Group: GroupLetter},
	{Code: Lwjgl2N, Name: "KEY_N", Group: GroupLetter},
	{Code: Lwjgl2M, Name: "KEY_M", Group: GroupLetter},
	{Code: Lwjgl2Comma, Name: "KEY_COMMA", Group: GroupPunctuation},
	{Code: Lwjgl2Period, Name: "KEY_PERIOD", Group: GroupPunctuation},
	{Code: Lwjgl2Slash, Name: "KEY_SLASH", Group: GroupPunctuation},
	{Code: Lwjgl2RShift, Name: "KEY_RSHIFT", Group: GroupModifier},
	{Code: Lwjgl2Multiply, Name: "KEY_MULTIPLY", Group: GroupKeypad},
	{Code: Lwjgl2LMenu, Name: "KEY_LMENU", Group: GroupModifier},
	{Code: Lwjgl2Space, Name: "KEY_SPACE", Group: GroupEditing},
	{Code: Lwjgl2Capital, Name: "KEY_CAPITAL", Group: GroupLock},
	{Code: Lwjgl2F1, Name: "KEY_F1", Group: GroupFunction},
	{Code: Lwjgl2F2, Name: "KEY_F2", Group: GroupFunction},
	{Code: Lwjgl2F3, Name: "KEY_F3", Group: GroupFunction},
	{Code: Lwjgl2F4, Name: "KEY_F4", Group: GroupFunction},
	{Code: Lwjgl2F5, Name: "KEY_F5", Group: GroupFunction},
	{Code: Lwjgl2F6, Name: "KEY_F6", Group: GroupFunction},
	{Code: Lwjgl2F7, Name: "KEY_F7", Group: GroupFunction},
	{Code: Lwjgl2F8, Name: "KEY_F8", Group: GroupFunction},
	{Code: Lwjgl2F9, Name: "KEY_F9", Group: GroupFunction},
	{Code: Lwjgl2F10, Name: "KEY_F10", Group: GroupFunction},
	{Code: Lwjgl2NumLock, Name: "KEY_NUMLOCK", Group: GroupLock},
	{Code: Lwjgl2Scroll, Name: "KEY_SCROLL", Group: GroupLock},
	{Code: Lwjgl2Numpad7, Name: "KEY_NUMPAD7", Group: GroupKeypad},
	{Code: Lwjgl2Numpad8, Name: "KEY_NUMPAD8", Group: GroupKeypad},
	{Code: Lwjgl2Numpad9, Name: "KEY_NUMPAD9", Group: GroupKeypad},
	{Code: Lwjgl2Subtract, Name: "KEY_SUBTRACT", Group: GroupKeypad},
	{Code: Lwjgl2Numpad4, Name: "KEY_NUMPAD4", Group: GroupKeypad},
	{Code: Lwjgl2Numpad5, Name: "KEY_NUMPAD5", Group: GroupKeypad},
	{Code: Lwjgl2Numpad6, Name: "KEY_NUMPAD6", Group: GroupKeypad},
	{Code: Lwjgl2Add, Name: "KEY_ADD", Group: GroupKeypad},
	{Code: Lwjgl2Numpad1, Name: "KEY_NUMPAD1", Group: GroupKeypad},
	{Code: Lwjgl2Numpad2, Name: "KEY_NUMPAD2", Group: GroupKeypad},
	{Code: Lwjgl2Numpad3, Name: "KEY_NUMPAD3", Group: GroupKeypad},
	{Code: Lwjgl2Numpad0, Name: "KEY_NUMPAD0", Group: GroupKeypad},
	{Code: Lwjgl2Decimal, Name: "KEY_DECIMAL", Group: GroupKeypad},
	{Code: Lwjgl2F11, Name: "KEY_F11", Group: GroupFunction},
	{Code: Lwjgl2F12, Name: "KEY_F12", Group: GroupFunction},
	{Code: Lwjgl2F13, Name: "KEY_F13", Group: GroupFunction},
	{Code: Lwjgl2F14, Name: "KEY_F14", Group: GroupFunction},
	{Code: Lwjgl2F15, Name: "KEY_F15", Group: GroupFunction},
	{Code: Lwjgl2F16, Name: "KEY_F16", Group: GroupFunction},
	{Code: Lwjgl2F17, Name: "KEY_F17", Group: GroupFunction},
	{Code: Lwjgl2F18, Name: "KEY_F18", Group: GroupFunction},
	{Code: Lwjgl2Kana, Name: "KEY_KANA", Group: GroupUnmapped},
	{Code: Lwjgl2F19, Name: "KEY_F19", Group: GroupFunction},
	{Code: Lwjgl2Convert, Name: "KEY_CONVERT", Group: GroupUnmapped},
	{Code: Lwjgl2NoConvert, Name: "KEY_NOCONVERT", Group: GroupUnmapped},
	{Code: Lwjgl2Yen, Name: "KEY_YEN", Group: GroupUnmapped},
	{Code: Lwjgl2NumpadEquals, Name: "KEY_NUMPADEQUALS", Group: GroupKeypad},
	{Code: Lwjgl2Circumflex, Name: "KEY_CIRCUMFLEX", Group: GroupUnmapped},
	{Code: Lwjgl2At, Name: "KEY_AT", Group: GroupUnmapped},
	{Code: Lwjgl2Colon, Name: "KEY_COLON", Group: GroupUnmapped},
	{Code: Lwjgl2Underline, Name: "KEY_UNDERLINE", Group: GroupUnmapped},
	{Code: Lwjgl2Kanji, Name: "KEY_KANJI", Group: GroupUnmapped},
	{Code: Lwjgl2Stop, Name: "KEY_STOP", Group: GroupUnmapped},
	{Code: Lwjgl2Ax, Name: "KEY_AX", Group: GroupUnmapped},
	{Code: Lwjgl2Unlabeled, Name: "KEY_UNLABELED", Group: GroupUnmapped},
	{Code: Lwjgl2NumpadEnter, Name: "KEY_NUMPADENTER", Group: GroupKeypad},
	{Code: Lwjgl2RControl, Name: "KEY_RCONTROL", Group: GroupModifier},
	{Code: Lwjgl2Section, Name: "KEY_SECTION", Group: GroupUnmapped},
	{Code: Lwjgl2NumpadComma, Name: "KEY_NUMPADCOMMA", Group: GroupUnmapped},
	{Code: Lwjgl2Divide, Name: "KEY_DIVIDE", Group: GroupKeypad},
	{Code: Lwjgl2SysRq, Name: "KEY_SYSRQ", Group: GroupLock},
	{Code: Lwjgl2RMenu, Name: "KEY_RMENU", Group: GroupModifier},
	{Code: Lwjgl2Function, Name: "KEY_FUNCTION", Group: GroupUnmapped},
	{Code: Lwjgl2Pause, Name: "KEY_PAUSE", Group: GroupLock},
	{Code: Lwjgl2Home, Name: "KEY_HOME", Group: GroupNavigation},
	{Code: Lwjgl2Up, Name: "KEY_UP", Group: GroupNavigation},
	{Code: Lwjgl2Prior, Name: "KEY_PRIOR", Group: GroupNavigation},
	{Code: Lwjgl2Left, Name: "KEY_LEFT", Group: GroupNavigation},
	{Code: Lwjgl2Right, Name: "KEY_RIGHT", Group: GroupNavigation},
	{Code: Lwjgl2End, Name: "KEY_END", Group: GroupNavigation},
	{Code: Lwjgl2Down, Name: "KEY_DOWN", Group: GroupNavigation},
	{Code: Lwjgl2Next, Name: "KEY_NEXT", Group: GroupNavigation},
	{Code: Lwjgl2Insert, Name: "KEY_INSERT", Group: GroupEditing},
	{Code: Lwjgl2Delete, Name: "KEY_DELETE", Group: GroupEditing},
	{Code: Lwjgl2Clear, Name: "KEY_CLEAR", Group: GroupUnmapped},
	{Code: Lwjgl2LMeta, Name: "KEY_LMETA", Group: GroupModifier},
	{Code: Lwjgl2LWin, Name: "KEY_LWIN", Group: GroupModifier, Deprecated: true},
	{Code: Lwjgl2RMeta, Name: "KEY_RMETA", Group: GroupModifier},
	{Code: Lwjgl2RWin, Name: "KEY_RWIN", Group: GroupModifier, Deprecated: true},
	{Code: Lwjgl2Apps, Name: "KEY_APPS", Group: GroupMenu},
	{Code: Lwjgl2Power, Name: "KEY_POWER", Group: GroupUnmapped},
	{Code: Lwjgl2Sleep, Name: "KEY_SLEEP", Group: GroupUnmapped},
}

var (
	// lwjgl2Index maps a code to its canonical catalog entry.
	lwjgl2Index = make(map[Lwjgl2]int, len(catalog))
	// nameIndex maps every catalog name, aliases included, to its entry.
	nameIndex = make(map[string]int, len(catalog))
)

func init() {
	for i, e := range catalog {
		nameIndex[e.Name] = i
		if !e.Deprecated {
			lwjgl2Index[e.Code] = i
		}
	}
}

// Catalog returns all named LWJGL 2 constants in declaration order,
// deprecated aliases included. The returned slice is a copy.
func Catalog() []CatalogEntry {
	return slices.Clone(catalog)
}

// LookupLwjgl2 returns the code for an LWJGL 2 constant name such as
// "KEY_PRIOR". Deprecated names ("KEY_LWIN") are accepted.
func LookupLwjgl2(name string) (Lwjgl2, bool) {
	if i, ok := nameIndex[name]; ok {
		return catalog[i].Code, true
	}
	return 0, false
}
