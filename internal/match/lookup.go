package match

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"keycast/keycode"
)

// Suggestion defaults.
const (
	DefaultMaxSuggestions = 3
	DefaultMinScore       = 0.5
)

// ErrUnknownKey is returned by Lookup for a name that matches no catalog entry.
var ErrUnknownKey = errors.New("unknown key name")

// Suggestion is a catalog name close to a query.
type Suggestion struct {
	Name  string
	Code  keycode.Lwjgl2
	Score float64 // Normalized Levenshtein similarity (0-1)
}

// Resolver resolves user-typed key names against the LWJGL 2 catalog.
// It is safe for concurrent use once built.
type Resolver struct {
	// MaxSuggestions caps the suggestions returned on a miss.
	MaxSuggestions int
	// MinScore is the lowest similarity worth suggesting.
	MinScore float64

	entries []keycode.CatalogEntry
	byNorm  map[string]keycode.Lwjgl2
}

// NewResolver builds a Resolver over keycode.Catalog.
func NewResolver() *Resolver {
	entries := keycode.Catalog()
	byNorm := make(map[string]keycode.Lwjgl2, len(entries))

	for _, e := range entries {
		byNorm[NormalizeIdent(e.Name)] = e.Code
	}

	return &Resolver{
		MaxSuggestions: DefaultMaxSuggestions,
		MinScore:       DefaultMinScore,
		entries:        entries,
		byNorm:         byNorm,
	}
}

// Lookup resolves name to a keycode. It accepts catalog names in any
// case and separator style, with or without the "KEY_" prefix ("lmeta",
// "KEY_LWIN", "key-prior"), and decimal or 0x-prefixed hex integers.
// Integers are returned as is, cataloged or not.
//
// On a miss the error wraps ErrUnknownKey and carries the closest names
// as a hint.
func (r *Resolver) Lookup(name string) (keycode.Lwjgl2, error) {
	name = strings.TrimSpace(name)

	if n, err := strconv.ParseInt(name, 0, 0); err == nil {
		return keycode.Lwjgl2(n), nil
	}

	if code, ok := keycode.LookupLwjgl2(name); ok {
		return code, nil
	}

	if code, ok := r.byNorm[NormalizeIdent(name)]; ok {
		return code, nil
	}

	err := errors.Wrapf(ErrUnknownKey, "%q", name)
	if s := r.Suggest(name); len(s) > 0 {
		names := make([]string, len(s))
		for i := range s {
			names[i] = s[i].Name
		}
		err = errors.WithHintf(err, "did you mean %s?", strings.Join(names, ", "))
	}

	return 0, err
}

// Suggest returns the catalog names closest to name, best first.
// Deprecated aliases are never suggested.
func (r *Resolver) Suggest(name string) []Suggestion {
	norm := NormalizeIdent(name)
	if norm == "" {
		return nil
	}

	var out []Suggestion

	for _, e := range r.entries {
		if e.Deprecated {
			continue
		}

		score := NormalizedLevenshteinScore(name, e.Name)
		if score < r.MinScore {
			continue
		}

		out = append(out, Suggestion{Name: e.Name, Code: e.Code, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if r.MaxSuggestions > 0 && len(out) > r.MaxSuggestions {
		out = out[:r.MaxSuggestions]
	}

	return out
}
