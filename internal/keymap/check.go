package keymap

import (
	"fmt"

	"keycast/internal/diagnostic"
	"keycast/internal/match"
)

// Diagnostic codes reported by Check.
const (
	CodeVersion   = "version"
	CodeDuplicate = "duplicate"
	CodeRemoved   = "removed"
	CodeChanged   = "changed"
	CodeAdded     = "added"
	CodeRegrouped = "regrouped"
)

// Check compares a stored table against the current translation.
//
// Anything that would change what a persisted binding means is an error:
// a removed key, a changed LWJGL 2 code, GLFW code or control identifier,
// a duplicated row, or an unknown schema version. Removed keys carry
// the closest current names as suggestions. Keys present only in
// the current table are warnings. Group and deprecation changes are
// informational.
func Check(want *Table) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if want.Version != CurrentVersion {
		diags.AddError(CodeVersion,
			fmt.Sprintf("unsupported table version %q, want %q", want.Version, CurrentVersion), "", "version")
		return diags
	}

	current := Build()
	resolver := match.NewResolver()
	seen := make(map[string]bool, len(want.Keys))

	for _, w := range want.Keys {
		if seen[w.Name] {
			diags.AddError(CodeDuplicate, "key listed more than once", w.Name, "")
			continue
		}
		seen[w.Name] = true

		got, ok := current.Find(w.Name)
		if !ok {
			diags.AddErrorWithSuggestions(CodeRemoved, "key no longer exists", w.Name, "", successors(resolver, w.Name))
			continue
		}

		diags.Merge(compareKey(w, got))
	}

	for _, k := range current.Keys {
		if !seen[k.Name] {
			diags.AddWarning(CodeAdded,
				fmt.Sprintf("key added as %s -> %s", k.Code, k.Control), k.Name, "")
		}
	}

	return diags
}

// successors lists current key names close to a removed one.
func successors(r *match.Resolver, name string) []string {
	var names []string
	for _, s := range r.Suggest(name) {
		names = append(names, s.Name)
	}

	return names
}

// compareKey compares a single stored row with its current version.
func compareKey(want, got Key) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if want.Code != got.Code {
		diags.AddError(CodeChanged, fmt.Sprintf("code %s -> %s", want.Code, got.Code), want.Name, "code")
	}

	if want.Glfw != got.Glfw {
		diags.AddError(CodeChanged, fmt.Sprintf("glfw %d -> %d", want.Glfw, got.Glfw), want.Name, "glfw")
	}

	if want.Control != got.Control {
		diags.AddError(CodeChanged, fmt.Sprintf("control %s -> %s", want.Control, got.Control), want.Name, "control")
	}

	if want.Group != got.Group {
		diags.AddInfo(CodeRegrouped, fmt.Sprintf("group %s -> %s", want.Group, got.Group), want.Name, "group")
	}

	if want.Deprecated != got.Deprecated {
		diags.AddInfo(CodeChanged, fmt.Sprintf("deprecated %t -> %t", want.Deprecated, got.Deprecated), want.Name, "deprecated")
	}

	return diags
}
