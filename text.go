package runeclass

// Text bundles a subject with its encoding and language so that every
// classification can be asked without repeating them.
//
// Text performs no validation of its own. Tags that are not supported are
// passed on to the classification functions, which report them.
type Text struct {
	value string
	enc   Encoding
	lang  Language
}

// Option configures a Text.
type Option func(*Text)

// WithLanguage sets the language of a Text. The default is English.
func WithLanguage(lang Language) Option {
	return func(t *Text) {
		t.lang = lang
	}
}

// NewText returns a Text for value, which is interpreted in the given
// encoding.
func NewText(value string, enc Encoding, opts ...Option) *Text {
	t := &Text{value: value, enc: enc, lang: English}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// String returns the subject as given to NewText.
func (t *Text) String() string { return t.value }

// Encoding returns the encoding of the subject.
func (t *Text) Encoding() Encoding { return t.enc }

// Language returns the language of the subject.
func (t *Text) Language() Language { return t.lang }

// Len returns the number of logical characters, see [Length].
func (t *Text) Len() (int, error) {
	return Length(t.value, t.enc)
}

// LenEscaped returns the escape-aware length, see [LengthEscaped].
func (t *Text) LenEscaped(marker string, escEnc EscapeEncoding, end string) (int, error) {
	return LengthEscaped(t.value, t.enc, marker, escEnc, end)
}

// Unescape returns the subject as UTF-8 with escapes resolved, see
// [Unescape].
func (t *Text) Unescape(marker string, escEnc EscapeEncoding, end string) (string, error) {
	return Unescape(t.value, t.enc, marker, escEnc, end)
}

// Decode returns the subject as UTF-8, see [Decode].
func (t *Text) Decode() (string, error) {
	return Decode(t.value, t.enc)
}

// IsValid is [IsValid] for the subject.
func (t *Text) IsValid() bool {
	return IsValid(t.value, t.enc)
}

// IsHexNumber is [IsHexNumber] for the subject.
func (t *Text) IsHexNumber() bool {
	return IsHexNumber(t.value, t.enc)
}

// IsNaturalNumber is [IsNaturalNumber] for the subject.
func (t *Text) IsNaturalNumber() bool {
	return IsNaturalNumber(t.value, t.enc)
}

// IsInRomanceAlphabet is [IsInRomanceAlphabet] for the subject.
func (t *Text) IsInRomanceAlphabet() bool {
	return IsInRomanceAlphabet(t.value, t.enc)
}

// IsInAlphabet is [IsInAlphabet] for the subject.
func (t *Text) IsInAlphabet() bool {
	return IsInAlphabet(t.value, t.enc, t.lang)
}

// IsUpperCaseInAlphabet is [IsUpperCaseInAlphabet] for the subject.
func (t *Text) IsUpperCaseInAlphabet() bool {
	return IsUpperCaseInAlphabet(t.value, t.enc, t.lang)
}

// IsLowerCaseInAlphabet is [IsLowerCaseInAlphabet] for the subject.
func (t *Text) IsLowerCaseInAlphabet() bool {
	return IsLowerCaseInAlphabet(t.value, t.enc, t.lang)
}

// IsPunctuationMarkInAlphabet is [IsPunctuationMarkInAlphabet] for the subject.
func (t *Text) IsPunctuationMarkInAlphabet() bool {
	return IsPunctuationMarkInAlphabet(t.value, t.enc, t.lang)
}

// IsValidAt is [IsValidAt] for the subject.
func (t *Text) IsValidAt(index int) (bool, error) {
	return IsValidAt(t.value, t.enc, index)
}

// IsHexNumberAt is [IsHexNumberAt] for the subject.
func (t *Text) IsHexNumberAt(index int) (bool, error) {
	return IsHexNumberAt(t.value, t.enc, index)
}

// IsNaturalNumberAt is [IsNaturalNumberAt] for the subject.
func (t *Text) IsNaturalNumberAt(index int) (bool, error) {
	return IsNaturalNumberAt(t.value, t.enc, index)
}

// IsInRomanceAlphabetAt is [IsInRomanceAlphabetAt] for the subject.
func (t *Text) IsInRomanceAlphabetAt(index int) (bool, error) {
	return IsInRomanceAlphabetAt(t.value, t.enc, index)
}

// IsInAlphabetAt is [IsInAlphabetAt] for the subject.
func (t *Text) IsInAlphabetAt(index int) (bool, error) {
	return IsInAlphabetAt(t.value, t.enc, t.lang, index)
}

// IsUpperCaseInAlphabetAt is [IsUpperCaseInAlphabetAt] for the subject.
func (t *Text) IsUpperCaseInAlphabetAt(index int) (bool, error) {
	return IsUpperCaseInAlphabetAt(t.value, t.enc, t.lang, index)
}

// IsLowerCaseInAlphabetAt is [IsLowerCaseInAlphabetAt] for the subject.
func (t *Text) IsLowerCaseInAlphabetAt(index int) (bool, error) {
	return IsLowerCaseInAlphabetAt(t.value, t.enc, t.lang, index)
}

// IsPunctuationMarkInAlphabetAt is [IsPunctuationMarkInAlphabetAt] for the subject.
func (t *Text) IsPunctuationMarkInAlphabetAt(index int) (bool, error) {
	return IsPunctuationMarkInAlphabetAt(t.value, t.enc, t.lang, index)
}

// CharClass describes one logical character of a Text.
type CharClass struct {
	Index int    // Zero-based character index.
	Char  string // The character's bytes in the subject's encoding.
	Props int    // Classes, evaluate with the Mask constants.
}

// Has reports whether the character has all classes in mask.
func (c CharClass) Has(mask int) bool {
	return c.Props&mask == mask
}

// Classes returns the classes of every character of the subject.
func (t *Text) Classes() ([]CharClass, error) {
	if err := checkTags(t.enc, t.lang); err != nil {
		return nil, err
	}
	var classes []CharClass
	str := t.value
	for i := 0; len(str) > 0; i++ {
		var (
			char  string
			props int
		)
		char, str, props = StepString(str, t.enc, t.lang)
		classes = append(classes, CharClass{Index: i, Char: char, Props: props})
	}
	return classes, nil
}
