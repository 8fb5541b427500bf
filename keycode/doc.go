// Package keycode translates LWJGL 2 keycodes into GLFW 3 keycodes and
// into the control event identifiers stored by control layouts.
//
// Old game clients report and persist keys in the LWJGL 2 namespace
// (Lwjgl2). Native input backends expect GLFW keycodes (Glfw), while
// control layouts name keys with string identifiers (ControlEvent) such
// as "GLFW_KEY_PAGE_UP".
//
// # Translation
//
// ToGlfw and ToControlEvent accept any int and never fail. A code maps to
// a key only if it is a cataloged LWJGL 2 constant with a GLFW
// equivalent; everything else, including the cataloged Japanese, PC98 and
// Mac-only keys, yields GlfwKeyUnknown and ControlKeyUnknown. The two
// functions always agree on which codes are unknown.
//
//	keycode.ToGlfw(int(keycode.Lwjgl2Prior))         // GlfwKeyPageUp
//	keycode.ToControlEvent(int(keycode.Lwjgl2Prior)) // "GLFW_KEY_PAGE_UP"
//	keycode.ToGlfw(0x70)                             // GlfwKeyUnknown (KEY_KANA)
//
// ControlEvent.KeyName gives the short form without the "GLFW_KEY_"
// prefix, such as "A" or "PAGE_UP".
//
// The deprecated Lwjgl2LWin and Lwjgl2RWin constants share their values
// with Lwjgl2LMeta and Lwjgl2RMeta and translate identically.
//
// # Catalog
//
// Catalog lists every LWJGL 2 constant with its name and Group, so
// callers can enumerate supported keys or explain why a key is unmapped.
//
// All tables are read-only after package initialization and safe for
// concurrent use.
package keycode
