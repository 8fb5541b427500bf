// Package binding resolves the key bindings stored in a game's
// options.txt into GLFW keys and mouse buttons.
//
// Two storage formats exist. Clients from the LWJGL 2 era store a
// decimal integer: an LWJGL 2 keycode, or a negative value for a mouse
// button (-100 is the left button). Later clients store translation keys
// such as "key.keyboard.w" or "key.mouse.left".
//
// Resolve handles a single value, ParseOptions and LoadOptions read a
// whole options file, and Options.Resolve resolves every binding in it.
package binding
