package webcall

import (
	"fmt"
	"strings"
)

// safe marks, per byte value, the bytes that pass through percent-encoding
// unchanged: ASCII letters, digits, and $-.!*'(), per RFC 2396 section 2.4.
var safe [256]bool

func init() {
	for c := 'a'; c <= 'z'; c++ {
		safe[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		safe[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		safe[c] = true
	}
	for _, c := range []byte("$-.!*'(),") {
		safe[c] = true
	}
}

const hexDigits = "0123456789ABCDEF"

// Escape percent-encodes s for form transmission. Safe bytes are copied
// verbatim, space becomes '+', and every other byte becomes a three-byte
// %HH escape. The input is treated as raw bytes; multi-byte characters are
// escaped byte by byte.
func Escape(s string) string {
	i := 0
	for i < len(s) && safe[s[i]] {
		i++
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)
	b.WriteString(s[:i])
	for i < len(s) {
		switch c := s[i]; {
		case safe[c]:
			// Copy the whole safe run in one append.
			j := i + 1
			for j < len(s) && safe[s[j]] {
				j++
			}
			b.WriteString(s[i:j])
			i = j
			continue
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0x0f])
		}
		i++
	}
	return b.String()
}

// Unescape inverts Escape: '+' becomes space and %HH escapes become their
// byte value. Truncated or non-hex escapes are rejected.
func Unescape(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 >= len(s) {
				return "", fmt.Errorf("webcall: truncated escape at offset %d", i)
			}
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if !ok1 || !ok2 {
				return "", fmt.Errorf("webcall: invalid escape %q at offset %d", s[i:i+3], i)
			}
			b.WriteByte(hi<<4 | lo)
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// EncodeFields renders form fields as an application/x-www-form-urlencoded
// body. Field order is preserved and duplicate names are kept.
func EncodeFields(fields []Field) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Escape(f.Name))
		b.WriteByte('=')
		b.WriteString(Escape(f.Value))
	}
	return b.String()
}
