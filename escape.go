package runeclass

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// LengthEscaped is like [Length] but treats every occurrence of marker as the
// start of an escaped code point. The escape is written in escEnc and, if end
// is not empty, may be closed by end:
//
//	marker + code point digits [+ end]
//
// For example, with marker "\u" and EscapeHex, "caf\u00e9!" has a length of
// 5. Each escape counts as one character unless its code point is a combining
// diacritical mark, which attaches to the preceding character and counts
// zero. The marker and end strings are matched in the base encoding. An empty
// marker disables escape handling.
//
// A marker not followed by a well-formed code point yields ErrMalformedEscape.
// A missing end string is tolerated.
func LengthEscaped(str string, enc Encoding, marker string, escEnc EscapeEncoding, end string) (int, error) {
	var count int
	err := scanEscaped(str, enc, marker, escEnc, end, func(seg escapeSegment) error {
		if !seg.escaped || !isDiacriticalMark(seg.r) {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Unescape returns str decoded to UTF-8 with every escape (see
// [LengthEscaped]) replaced by its code point. Malformed characters outside
// escapes yield ErrMalformed.
func Unescape(str string, enc Encoding, marker string, escEnc EscapeEncoding, end string) (string, error) {
	var b strings.Builder
	b.Grow(len(str))
	err := scanEscaped(str, enc, marker, escEnc, end, func(seg escapeSegment) error {
		switch {
		case seg.escaped:
			b.WriteRune(seg.r)
		case seg.props&prValid == 0:
			return fmt.Errorf("%w: byte %#02x at %d in %s", ErrMalformed, seg.char[0], seg.offset, enc)
		case enc == ISO8859_1:
			b.WriteRune(charmap.ISO8859_1.DecodeByte(seg.char[0]))
		default:
			b.WriteString(seg.char)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// escapeSegment is either one literal character or one escape.
type escapeSegment struct {
	offset  int    // Byte offset in the subject.
	char    string // The literal character, empty for escapes.
	props   int    // Classes of the literal character.
	escaped bool
	r       rune // The escaped code point.
}

// scanEscaped splits str into literal characters and escapes and passes them
// to yield in order. It stops at the first error.
func scanEscaped(str string, enc Encoding, marker string, escEnc EscapeEncoding, end string, yield func(escapeSegment) error) error {
	if !enc.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(enc))
	}
	if marker != "" && !escEnc.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownEscapeEncoding, uint8(escEnc))
	}

	var offset int
	for len(str) > 0 {
		if marker != "" && strings.HasPrefix(str, marker) {
			r, n, err := parseEscape(str[len(marker):], escEnc)
			if err != nil {
				return fmt.Errorf("%w at byte %d: %v", ErrMalformedEscape, offset, err)
			}
			consumed := len(marker) + n
			if end != "" && strings.HasPrefix(str[consumed:], end) {
				consumed += len(end)
			}
			if err := yield(escapeSegment{offset: offset, escaped: true, r: r}); err != nil {
				return err
			}
			str = str[consumed:]
			offset += consumed
			continue
		}

		char, rest, props := StepString(str, enc, English)
		if err := yield(escapeSegment{offset: offset, char: char, props: props}); err != nil {
			return err
		}
		str = rest
		offset += len(char)
	}
	return nil
}

// hexEscapeDigits is the number of digits of an EscapeHex code point.
const hexEscapeDigits = 4

// parseEscape parses the code point at the start of str and returns it with
// the number of bytes it occupies.
func parseEscape(str string, escEnc EscapeEncoding) (r rune, n int, err error) {
	switch escEnc {
	case EscapeHex:
		if len(str) < hexEscapeDigits {
			return 0, 0, fmt.Errorf("want %d hex digits, have %q", hexEscapeDigits, str)
		}
		for i := 0; i < hexEscapeDigits; i++ {
			d, ok := hexValue(str[i])
			if !ok {
				return 0, 0, fmt.Errorf("invalid hex digit %q", str[i])
			}
			r = r<<4 | d
		}
		n = hexEscapeDigits
	case EscapeDecimal:
		for n < len(str) && str[n] >= '0' && str[n] <= '9' {
			r = r*10 + rune(str[n]-'0')
			if r > unicode.MaxRune {
				return 0, 0, fmt.Errorf("code point %s... exceeds %U", str[:n+1], unicode.MaxRune)
			}
			n++
		}
		if n == 0 {
			return 0, 0, fmt.Errorf("want decimal digits, have %q", str)
		}
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownEscapeEncoding, uint8(escEnc))
	}
	if !utf8.ValidRune(r) {
		return 0, 0, fmt.Errorf("%U is not a valid code point", r)
	}
	return r, n, nil
}

// hexValue returns the value of an ASCII hex digit.
func hexValue(c byte) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return rune(c - '0'), true
	case c >= 'a' && c <= 'f':
		return rune(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return rune(c-'A') + 10, true
	}
	return 0, false
}
