package keymap

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the table schema version Build writes.
const CurrentVersion = "1"

// Table represents the root of a YAML translation table.
type Table struct {
	// Version of the table schema (for future compatibility).
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Keys lists every LWJGL 2 constant in catalog order.
	Keys []Key `yaml:"keys" json:"keys"`
}

// Key is one row of the translation table.
type Key struct {
	// Name is the LWJGL 2 constant name, e.g. "KEY_PRIOR".
	Name string `yaml:"name" json:"name"`

	// Code is the LWJGL 2 keycode.
	Code Hex `yaml:"code" json:"code"`

	// Group is the key group name, e.g. "Navigation".
	Group string `yaml:"group" json:"group"`

	// Glfw is the translated GLFW keycode, -1 when unmapped.
	Glfw int `yaml:"glfw" json:"glfw"`

	// Control is the translated control event identifier.
	Control string `yaml:"control" json:"control"`

	// Deprecated marks alias names kept for old inputs.
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

// Hex is an integer written in hexadecimal in YAML, the way LWJGL
// documents its keycodes.
type Hex int

// MarshalYAML implements yaml.Marshaler.
func (h Hex) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
		Value: h.String(),
	}, nil
}

func (h Hex) String() string {
	if h < 0 {
		return fmt.Sprintf("-0x%02X", int(-h))
	}
	return fmt.Sprintf("0x%02X", int(h))
}

// Find returns the row named name.
func (t *Table) Find(name string) (Key, bool) {
	for _, k := range t.Keys {
		if k.Name == name {
			return k, true
		}
	}
	return Key{}, false
}
