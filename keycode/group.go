package keycode

//go:generate go tool stringer -type=Group -trimprefix=Group -output=group_string.go

// Group classifies cataloged LWJGL 2 keys by the part of the keyboard
// they belong to.
type Group int

const (
	// GroupUnmapped holds keys with no GLFW equivalent. It is also the
	// group reported for values outside the catalog.
	GroupUnmapped Group = iota

	GroupEscape
	GroupDigit
	GroupLetter
	GroupPunctuation
	GroupEditing
	GroupNavigation
	GroupFunction
	GroupModifier
	GroupLock
	GroupKeypad
	GroupMenu

	// GroupTotal is the number of groups.
	GroupTotal = int(iota)
)

// Mapped reports whether keys of group g translate to a GLFW keycode.
func (g Group) Mapped() bool {
	switch g {
	default:
		return false
	case GroupEscape, GroupDigit, GroupLetter, GroupPunctuation,
		GroupEditing, GroupNavigation, GroupFunction, GroupModifier,
		GroupLock, GroupKeypad, GroupMenu:
		return true
	}
}
