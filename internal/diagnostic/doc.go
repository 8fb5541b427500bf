// Package diagnostic provides structured errors, warnings and notes for
// the keymap drift check.
//
// Key capabilities:
//   - Changed or removed translations reported as errors
//   - Keys added since a table was exported reported as warnings
//   - Grouping by severity and a combined error for callers that fail fast
package diagnostic
