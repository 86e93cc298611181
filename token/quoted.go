package token

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unquote decodes a double quoted Emacs Lisp string literal, v including
// its quotes.
func Unquote(v string) (string, error) {
	s, n, err := readQuoted([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnexpectedChar
	}
	return s, nil
}

// QuotedToString decodes a quoted string known to be well formed, such as
// the bytes of a TString token.
func QuotedToString(d []byte) string {
	s, _, err := readQuoted(d)
	if err != nil {
		return string(d)
	}
	return s
}

// readQuoted decodes the quoted string at the start of d.  It returns the
// decoded text and the number of bytes consumed.  On error, the returned
// count is the offset in d of the problem.
func readQuoted(d []byte) (string, int, error) {
	if len(d) == 0 || d[0] != '"' {
		return "", 0, ErrUnexpectedChar
	}
	var sb strings.Builder
	i := 1
	for i < len(d) {
		c := d[i]
		switch c {
		case '"':
			return sb.String(), i + 1, nil
		case '\\':
			if i+1 >= len(d) {
				return "", 0, ErrUnterminated
			}
			esc := i
			e := d[i+1]
			i += 2
			switch e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case 'f':
				sb.WriteByte('\f')
			case 'b':
				sb.WriteByte('\b')
			case 'a':
				sb.WriteByte('\a')
			case 'v':
				sb.WriteByte('\v')
			case 'e':
				sb.WriteByte(0x1b)
			case 's':
				sb.WriteByte(' ')
			case 'd':
				sb.WriteByte(0x7f)
			case ' ', '\n':
				// escaped whitespace is dropped
			case 'x':
				j := i
				for j < len(d) && isHex(d[j]) {
					j++
				}
				r, ok := codePoint(d[i:j], 16)
				if !ok {
					return "", esc, ErrBadEscape
				}
				sb.WriteRune(r)
				i = j
			case 'u', 'U':
				w := 4
				if e == 'U' {
					w = 8
				}
				if i+w > len(d) || !allHex(d[i:i+w]) {
					return "", esc, ErrBadUnicode
				}
				r, ok := codePoint(d[i:i+w], 16)
				if !ok {
					return "", esc, ErrBadUnicode
				}
				sb.WriteRune(r)
				i += w
			case '0', '1', '2', '3', '4', '5', '6', '7':
				j := i - 1
				for j < len(d) && j < i+2 && isOctal(d[j]) {
					j++
				}
				r, ok := codePoint(d[i-1:j], 8)
				if !ok {
					return "", esc, ErrBadEscape
				}
				sb.WriteRune(r)
				i = j
			default:
				// any other escaped character stands for itself
				sb.WriteByte(e)
			}
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return "", 0, ErrUnterminated
}

func codePoint(digits []byte, base int) (rune, bool) {
	if len(digits) == 0 {
		return 0, false
	}
	v, err := strconv.ParseUint(string(digits), base, 32)
	if err != nil || v > unicode.MaxRune || !utf8.ValidRune(rune(v)) {
		return 0, false
	}
	return rune(v), true
}

func isHex(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

func allHex(d []byte) bool {
	for _, c := range d {
		if !isHex(c) {
			return false
		}
	}
	return true
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
