package match

import (
	"strings"
	"unicode"
)

// keyToken is the prefix shared by LWJGL 2 constant names ("KEY_A").
const keyToken = "key"

// NormalizeIdent normalizes a key name for matching.
// The normalization pipeline:
// 1. Tokenize CamelCase and split on separators (_, -, ., spaces).
// 2. Drop a leading "key" token, so "KEY_PRIOR" and "prior" agree.
// 3. Case-fold to lower and join.
func NormalizeIdent(s string) string {
	tokens := TokenizeIdent(s)
	if len(tokens) > 1 && tokens[0] == keyToken {
		tokens = tokens[1:]
	}

	return strings.Join(tokens, "")
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "LMeta" -> ["L", "Meta"]
//   - "NumpadEquals" -> ["Numpad", "Equals"]
//   - "KEY_NUMPAD0" -> ["KEY", "NUMPAD", "0"]
//   - "keyPrior" -> ["key", "Prior"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Handle separators - start a new token
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i == 0 {
			current.WriteRune(r)

			continue
		}

		if shouldStartNewToken(runes, i) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)
	isPrevSep := isSeparator(prevRune)

	// Transition from lowercase to uppercase: start new token
	// e.g., "keyPrior" -> split before 'P'
	if isUpper && !isPrevUpper && !isPrevSep {
		return true
	}

	// End of acronym: check if next character is lowercase
	// e.g., "SYSRq" -> "SYS" + "Rq", split before 'R'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if isUpper && isPrevUpper && hasNextLower {
		return true
	}

	// Start of a number: "Key1" -> "Key" + "1"
	if unicode.IsDigit(r) && !unicode.IsDigit(prevRune) && !isPrevSep {
		return true
	}

	return false
}

// TokenizeIdent splits a key name into lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}
