package runeclass

import (
	"fmt"
	"strconv"
	"strings"
)

// Encoding identifies how the bytes of a subject map to characters.
//
// The numeric values are stable and match the tags used by fixture files and
// older callers.
type Encoding uint8

// The supported encodings.
const (
	UTF8Binary Encoding = iota // UTF-8, decoded by inspecting the byte structure.
	ASCII                      // 7-bit US-ASCII.
	ISO8859_1                  // ISO/IEC 8859-1 (Latin-1).
)

// Language identifies which alphabet, case and punctuation rules apply.
type Language uint8

// The supported languages. English is the default wherever a language is
// optional.
const (
	English Language = iota
	Spanish
	French
)

// EscapeEncoding describes how the code point following an escape marker is
// written. See [LengthEscaped].
type EscapeEncoding uint8

const (
	EscapeHex     EscapeEncoding = iota // Exactly four hex digits, e.g. `\u00e9`.
	EscapeDecimal                       // A run of decimal digits, e.g. `&#233`.
)

var encodingNames = [...]string{
	UTF8Binary: "utf8",
	ASCII:      "ascii",
	ISO8859_1:  "iso-8859-1",
}

var languageNames = [...]string{
	English: "english",
	Spanish: "spanish",
	French:  "french",
}

var escapeNames = [...]string{
	EscapeHex:     "hex",
	EscapeDecimal: "decimal",
}

// Encodings returns every supported encoding in tag order.
func Encodings() []Encoding {
	return []Encoding{UTF8Binary, ASCII, ISO8859_1}
}

// Languages returns every supported language in tag order.
func Languages() []Language {
	return []Language{English, Spanish, French}
}

// Valid reports whether e is one of the supported encodings.
func (e Encoding) Valid() bool {
	return int(e) < len(encodingNames)
}

func (e Encoding) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
	return encodingNames[e]
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return int(l) < len(languageNames)
}

func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", uint8(l))
	}
	return languageNames[l]
}

// Valid reports whether e is one of the supported escape encodings.
func (e EscapeEncoding) Valid() bool {
	return int(e) < len(escapeNames)
}

func (e EscapeEncoding) String() string {
	if !e.Valid() {
		return fmt.Sprintf("EscapeEncoding(%d)", uint8(e))
	}
	return escapeNames[e]
}

// ParseEncoding returns the encoding with the given name. Names are matched
// case-insensitively and common aliases ("utf-8", "latin1", ...) are accepted,
// as are the numeric tags.
func ParseEncoding(name string) (Encoding, error) {
	if n, ok := parseTag(name); ok && Encoding(n).Valid() {
		return Encoding(n), nil
	}
	switch normalizeName(name) {
	case "utf8", "utf8binary", "utf8_binary":
		return UTF8Binary, nil
	case "ascii", "usascii":
		return ASCII, nil
	case "iso88591", "iso_8859_1", "latin1":
		return ISO8859_1, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// ParseLanguage returns the language with the given name or ISO 639-1 code.
func ParseLanguage(name string) (Language, error) {
	if n, ok := parseTag(name); ok && Language(n).Valid() {
		return Language(n), nil
	}
	switch normalizeName(name) {
	case "english", "en":
		return English, nil
	case "spanish", "es":
		return Spanish, nil
	case "french", "fr":
		return French, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
}

// ParseEscapeEncoding returns the escape encoding with the given name.
func ParseEscapeEncoding(name string) (EscapeEncoding, error) {
	if n, ok := parseTag(name); ok && EscapeEncoding(n).Valid() {
		return EscapeEncoding(n), nil
	}
	switch normalizeName(name) {
	case "hex", "asciihex", "ascii_hex_utf_escape":
		return EscapeHex, nil
	case "decimal", "dec", "asciidecimal", "ascii_decimal_utf_escape":
		return EscapeDecimal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEscapeEncoding, name)
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(text []byte) error {
	v, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLanguage, uint8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Language) UnmarshalText(text []byte) error {
	v, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (e EscapeEncoding) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEscapeEncoding, uint8(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EscapeEncoding) UnmarshalText(text []byte) error {
	v, err := ParseEscapeEncoding(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// normalizeName lower-cases name and drops dashes and spaces so that
// "ISO-8859-1", "iso 8859 1" and "iso88591" compare equal. Underscores are
// kept for the legacy enum spellings.
func normalizeName(name string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(name)))
}

func parseTag(name string) (uint8, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(name), 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}
