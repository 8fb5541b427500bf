// Package keymap exports the LWJGL 2 translation table as YAML and checks
// a stored copy of it for drift.
//
// Control layouts and option files persist the identifiers this table
// produces, so a published entry must never change meaning. A reviewed
// table is exported once with Build and WriteFile, committed, and later
// compared against the current translation with Check.
//
// Example table:
//
//	version: "1"
//	keys:
//	  - name: KEY_PRIOR
//	    code: 0xC9
//	    group: Navigation
//	    glfw: 266
//	    control: GLFW_KEY_PAGE_UP
package keymap
