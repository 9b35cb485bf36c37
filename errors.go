package runeclass

import "errors"

// Errors returned by the classification functions. They are wrapped with
// context, so compare with errors.Is.
var (
	ErrUnknownEncoding       = errors.New("runeclass: unknown encoding")
	ErrUnknownLanguage       = errors.New("runeclass: unknown language")
	ErrUnknownEscapeEncoding = errors.New("runeclass: unknown escape encoding")
	ErrIndexOutOfRange       = errors.New("runeclass: index out of range")
	ErrMalformed             = errors.New("runeclass: malformed input")
	ErrMalformedEscape       = errors.New("runeclass: malformed escape sequence")
	ErrUnrepresentable       = errors.New("runeclass: character not representable in encoding")
)
