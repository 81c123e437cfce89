package termtext

import (
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789ABCDEF"

// Sanitize prepares untrusted input s for display inside a frame.
//   - If tabWidth > 0, \t becomes tabWidth spaces; otherwise \t is kept.
//   - \r and \n are kept.
//   - All other non-printable ASCII (<= 0x1F and 0x7F) is escaped as "\xXX".
//   - Invalid UTF-8 is replaced by U+FFFD.
func Sanitize(s string, tabWidth int) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune('�')
			i++
			continue
		}
		i += size

		switch r {
		case '\t':
			if tabWidth > 0 {
				for j := 0; j < tabWidth; j++ {
					b.WriteByte(' ')
				}
			} else {
				b.WriteRune('\t')
			}
		case '\n', '\r':
			b.WriteRune(r)
		default:
			if r <= 0x7F && (r < 0x20 || r == 0x7F) {
				code := byte(r)
				b.WriteByte('\\')
				b.WriteByte('x')
				b.WriteByte(hexDigits[code>>4])
				b.WriteByte(hexDigits[code&0x0F])
				continue
			}
			b.WriteRune(r)
		}
	}

	return b.String()
}
