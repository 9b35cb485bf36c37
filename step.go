package runeclass

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Bit masks for evaluating the "props" return value of [Step] and
// [StepString].
//
// MaskValid is set for every well-formed character. The alphabet related
// masks (MaskLetter, MaskUpper, MaskLower, MaskPunct) refer to the language
// passed to the step function.
const (
	MaskValid   = prValid
	MaskNatural = prNatural
	MaskHex     = prHex
	MaskRomance = prRomance
	MaskLetter  = prLetter
	MaskUpper   = prUpper
	MaskLower   = prLower
	MaskPunct   = prPunct
)

// Step returns the first logical character found in the given byte slice,
// interpreted in the given encoding, together with its character classes in
// the alphabet of the given language.
//
// A logical character is:
//
//   - ASCII and ISO8859_1: one byte.
//   - UTF8Binary: one normalization segment, that is a code point followed by
//     any combining marks. The segment is classified by its NFC composition,
//     so "é" is treated like "é". A segment that does not compose to a
//     single code point is valid but belongs to no other class.
//
// Malformed input (a non-ASCII byte in ASCII, a C1 byte in ISO8859_1, an
// invalid UTF-8 sequence) is returned one byte at a time with props == 0. So
// is every byte when the encoding is unknown.
//
// The "props" return value can be evaluated with the Mask constants, e.g.
// props&MaskUpper != 0 if the character is an upper case letter.
//
// This function can be called continuously to extract all characters from a
// byte slice. The "rest" slice is the sub-slice of "b" starting after the
// last byte of the returned character. Given an empty byte slice "b", the
// function returns nil values.
func Step(b []byte, enc Encoding, lang Language) (char, rest []byte, props int) {
	// An empty byte slice returns nothing.
	if len(b) == 0 {
		return
	}

	switch enc {
	case ASCII:
		return b[:1], b[1:], propertyASCII(lang, b[0])
	case ISO8859_1:
		return b[:1], b[1:], propertyLatin1(lang, b[0])
	case UTF8Binary:
		// Fast track ASCII followed by a starter.
		if b[0] < utf8.RuneSelf && (len(b) == 1 || b[1] < utf8.RuneSelf) {
			return b[:1], b[1:], propertyRune(lang, rune(b[0]))
		}
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			return b[:1], b[1:], 0
		}
		length := segmentLength(b, norm.NFC.NextBoundary(b, true), size)
		if length == size {
			return b[:length], b[length:], propertyRune(lang, r)
		}
		return b[:length], b[length:], propertySegment(lang, r, size, string(b[:length]))
	}
	return b[:1], b[1:], 0
}

// StepString is like [Step] but its input and outputs are strings.
func StepString(str string, enc Encoding, lang Language) (char, rest string, props int) {
	// An empty string returns nothing.
	if len(str) == 0 {
		return
	}

	switch enc {
	case ASCII:
		return str[:1], str[1:], propertyASCII(lang, str[0])
	case ISO8859_1:
		return str[:1], str[1:], propertyLatin1(lang, str[0])
	case UTF8Binary:
		// Fast track ASCII followed by a starter.
		if str[0] < utf8.RuneSelf && (len(str) == 1 || str[1] < utf8.RuneSelf) {
			return str[:1], str[1:], propertyRune(lang, rune(str[0]))
		}
		r, size := utf8.DecodeRuneInString(str)
		if r == utf8.RuneError && size <= 1 {
			return str[:1], str[1:], 0
		}
		length := segmentLengthInString(str, norm.NFC.NextBoundaryInString(str, true), size)
		return str[:length], str[length:], propertySegment(lang, r, size, str[:length])
	}
	return str[:1], str[1:], 0
}

// segmentLength clamps the boundary reported by the normalizer so that the
// segment contains at least the first code point and no malformed bytes.
func segmentLength(b []byte, boundary, first int) int {
	if boundary < first || boundary > len(b) {
		return first
	}
	for i := first; i < boundary; {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return boundary
}

// segmentLengthInString is like segmentLength but for strings.
func segmentLengthInString(str string, boundary, first int) int {
	if boundary < first || boundary > len(str) {
		return first
	}
	for i := first; i < boundary; {
		r, size := utf8.DecodeRuneInString(str[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return boundary
}

// propertySegment classifies a well-formed UTF-8 segment whose first code
// point r occupies the first size bytes.
func propertySegment(lang Language, r rune, size int, segment string) int {
	if len(segment) == size {
		return propertyRune(lang, r)
	}
	composed := norm.NFC.String(segment)
	if c, n := utf8.DecodeRuneInString(composed); n == len(composed) {
		return propertyRune(lang, c)
	}
	return prValid
}

// propertyASCII returns the classes of a single ASCII byte.
func propertyASCII(lang Language, c byte) int {
	if c >= utf8.RuneSelf {
		return 0
	}
	return propertyRune(lang, rune(c))
}

// propertyLatin1 returns the classes of a single ISO-8859-1 byte. The C1
// range 0x80-0x9F has no graphic assignment in ISO/IEC 8859-1 and is treated
// as malformed.
func propertyLatin1(lang Language, c byte) int {
	if c >= 0x80 && c <= 0x9f {
		return 0
	}
	return propertyRune(lang, charmap.ISO8859_1.DecodeByte(c))
}
