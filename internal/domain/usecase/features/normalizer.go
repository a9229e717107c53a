package features

import (
	"strings"
)

// Normalize canonicalizes a free-text transaction description for keyword
// matching: lower-case, every character that is not a lowercase letter or
// whitespace becomes a space, consecutive whitespace collapses to a single
// space, and the result is trimmed. Total and pure: any input, including
// an empty or absent description, yields a deterministic result.
func Normalize(raw string) string {
	lower := strings.ToLower(raw)

	var b strings.Builder
	b.Grow(len(lower))
	pendingSpace := false
	for _, r := range lower {
		if r >= 'a' && r <= 'z' {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r)
			pendingSpace = false
		} else {
			pendingSpace = true
		}
	}
	return b.String()
}
