// Package names normalises free-text station names into the canonical keys
// the timetable indices are built on.
package names

import "strings"

// Sanitize reduces a station name to its lookup key: every rune that is not
// an ASCII letter or digit is dropped, the remainder is lower-cased and the
// noise word "station" removed. Sanitizing is idempotent.
func Sanitize(raw string) string {
	var builder strings.Builder

	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			builder.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			builder.WriteRune(r + ('a' - 'A'))
		}
	}

	return strings.ReplaceAll(builder.String(), "station", "")
}
