// Package match provides key name normalization, Levenshtein distance
// calculation, and a catalog resolver with "did you mean" suggestions.
//
// Key functions:
//   - NormalizeIdent: folds key names such as "KEY_LMETA", "lMeta" and "l-meta" together
//   - Levenshtein: computes edit distance between strings
//   - Resolver.Lookup: resolves a user-typed name or number to an LWJGL 2 keycode
package match
