// Package pathenc encodes filesystem paths as shell-safe literals.
// The encoded form is used both for the audit stream and as ledger
// keys/values, so it must survive paths that are not valid UTF-8.
package pathenc

import "strings"

// Encode wraps path in single quotes, switching to an ANSI-C quoted
// segment ($'...') with three-digit octal escapes for any byte that is
// a control character or outside printable ASCII. A literal single
// quote is closed, escaped and reopened. The input is treated as raw
// bytes; no text encoding is assumed.
func Encode(path string) string {
	var b strings.Builder
	b.Grow(len(path) + 2)
	b.WriteByte('\'')

	escaping := false
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c < 0x20 || c >= 0x7f:
			if !escaping {
				b.WriteString("'$'")
				escaping = true
			}
			b.WriteByte('\\')
			b.WriteByte('0' + (c>>6)&7)
			b.WriteByte('0' + (c>>3)&7)
			b.WriteByte('0' + c&7)
		case c == '\'':
			if escaping {
				b.WriteString("''")
				escaping = false
			}
			b.WriteString(`'\''`)
		default:
			if escaping {
				b.WriteString("''")
				escaping = false
			}
			b.WriteByte(c)
		}
	}

	b.WriteByte('\'')
	return b.String()
}
