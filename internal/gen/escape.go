// Package gen renders the two artifacts produced for each journey: a
// contract document (YAML) and a test stub (JS). Both generators are pure
// functions over a completed journey and never reorder, deduplicate, or
// re-validate steps.
package gen

import "strings"

// yamlSpecials force a contract scalar into quoted form wherever they
// appear in the value.
const yamlSpecials = `:[]{}"',@#`

// yamlMarkers force quoting only when they open the value.
const yamlMarkers = "-?&*!|>%`"

// scalar renders a contract value: bare when plain, double-quoted with
// backslash escaping otherwise. Empty values are always quoted.
func scalar(s string) string {
	if needsQuoting(s) {
		return quote(s)
	}
	return s
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if strings.ContainsAny(s, yamlSpecials) {
		return true
	}
	return strings.IndexByte(yamlMarkers, s[0]) >= 0
}

// jsString renders a value as a JS double-quoted string literal.
func jsString(s string) string {
	return quote(s)
}

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}
