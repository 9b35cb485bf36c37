package runeclass

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encode converts UTF-8 text to its byte form in the given encoding.
// Characters the encoding cannot represent yield ErrUnrepresentable, as do
// the C1 controls U+0080-U+009F in ISO8859_1, which Decode rejects.
func Encode(text string, enc Encoding) (string, error) {
	switch enc {
	case UTF8Binary:
		if !utf8.ValidString(text) {
			return "", fmt.Errorf("%w: invalid UTF-8", ErrMalformed)
		}
		return text, nil
	case ASCII:
		for i, r := range text {
			if r >= utf8.RuneSelf {
				return "", fmt.Errorf("%w: %U at byte %d in %s", ErrUnrepresentable, r, i, enc)
			}
		}
		return text, nil
	case ISO8859_1:
		for i, r := range text {
			if r >= 0x80 && r <= 0x9f {
				return "", fmt.Errorf("%w: C1 control %U at byte %d in %s", ErrUnrepresentable, r, i, enc)
			}
		}
		out, err := charmap.ISO8859_1.NewEncoder().String(text)
		if err != nil {
			return "", fmt.Errorf("%w in %s: %v", ErrUnrepresentable, enc, err)
		}
		return out, nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(enc))
}

// Decode converts str from the given encoding to UTF-8 text. Input that is
// not well-formed in the encoding yields ErrMalformed.
func Decode(str string, enc Encoding) (string, error) {
	if !enc.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(enc))
	}
	for i, rest := 0, str; len(rest) > 0; {
		char, next, props := StepString(rest, enc, English)
		if props&prValid == 0 {
			return "", fmt.Errorf("%w: byte %#02x at %d in %s", ErrMalformed, char[0], i, enc)
		}
		i += len(char)
		rest = next
	}
	if enc != ISO8859_1 {
		return str, nil
	}
	return charmap.ISO8859_1.NewDecoder().String(str)
}
