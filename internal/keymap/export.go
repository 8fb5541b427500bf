package keymap

import (
	"keycast/keycode"
)

// Build exports the current translation table.
func Build() *Table {
	catalog := keycode.Catalog()
	t := &Table{
		Version: CurrentVersion,
		Keys:    make([]Key, 0, len(catalog)),
	}

	for _, e := range catalog {
		t.Keys = append(t.Keys, exportKey(e))
	}

	return t
}

// exportKey exports a single catalog entry.
func exportKey(e keycode.CatalogEntry) Key {
	return Key{
		Name:       e.Name,
		Code:       Hex(e.Code),
		Group:      e.Group.String(),
		Glfw:       int(e.Code.Glfw()),
		Control:    string(e.Code.ControlEvent()),
		Deprecated: e.Deprecated,
	}
}
