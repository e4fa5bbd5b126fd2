package parser

import "strings"

// splitFields splits one raw line into its field values.
//
// Fields are separated by commas. A double quote toggles quoted mode; inside
// a quoted field a doubled quote ("") is a literal quote and commas are
// ordinary content. Every field is trimmed of surrounding whitespace.
// Malformed quoting (an unterminated quote) is not an error: the scanner
// keeps whatever it accumulated and lets row validation reject the fallout.
func splitFields(line string) []string {
	var fields []string
	var buf strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				buf.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			buf.WriteByte(c)
		}
	}

	return append(fields, strings.TrimSpace(buf.String()))
}
