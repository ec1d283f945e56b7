// Package utils contains small helpers shared across layers.
package utils

import "unicode/utf8"

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// RuneLenBetween reports whether s holds between lo and hi characters,
// counting runes rather than bytes so Hangul counts one per syllable.
func RuneLenBetween(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}
