// Package lyrics normalises raw lyrics text returned by the provider.
package lyrics

import (
	"strings"
	"unicode"
)

// Format puts every section marker such as "[Chorus]" on its own line,
// trims each line and drops blank ones.
func Format(raw string) string {
	lines := strings.Split(strings.ReplaceAll(raw, "[", "\n["), "\n")

	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimFunc(line, isTrimmable)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// isTrimmable also covers the byte order mark, which unicode.IsSpace does not.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
