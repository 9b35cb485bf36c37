package runeclass

import "fmt"

// IsValid reports whether every character of str is well-formed in the given
// encoding. The empty string is valid. An unknown encoding validates nothing.
func IsValid(str string, enc Encoding) bool {
	if !enc.Valid() {
		return false
	}
	return len(str) == 0 || allOf(str, enc, English, prValid)
}

// IsHexNumber reports whether str is non-empty and consists only of the hex
// digits 0-9, a-f and A-F.
func IsHexNumber(str string, enc Encoding) bool {
	return allOf(str, enc, English, prHex)
}

// IsNaturalNumber reports whether str is non-empty and consists only of the
// decimal digits 0-9.
func IsNaturalNumber(str string, enc Encoding) bool {
	return allOf(str, enc, English, prNatural)
}

// IsInRomanceAlphabet reports whether str is non-empty and consists only of
// letters of the Latin script, regardless of any language's orthography.
func IsInRomanceAlphabet(str string, enc Encoding) bool {
	return allOf(str, enc, English, prRomance)
}

// IsInAlphabet reports whether str is non-empty and consists only of letters
// of the alphabet of lang.
func IsInAlphabet(str string, enc Encoding, lang Language) bool {
	return allOf(str, enc, lang, prLetter)
}

// IsUpperCaseInAlphabet reports whether str is non-empty and consists only
// of upper case letters of the alphabet of lang.
func IsUpperCaseInAlphabet(str string, enc Encoding, lang Language) bool {
	return allOf(str, enc, lang, prUpper)
}

// IsLowerCaseInAlphabet reports whether str is non-empty and consists only
// of lower case letters of the alphabet of lang.
func IsLowerCaseInAlphabet(str string, enc Encoding, lang Language) bool {
	return allOf(str, enc, lang, prLower)
}

// IsPunctuationMarkInAlphabet reports whether str is non-empty and consists
// only of punctuation marks of lang.
func IsPunctuationMarkInAlphabet(str string, enc Encoding, lang Language) bool {
	return allOf(str, enc, lang, prPunct)
}

// IsValidAt reports whether the character at the given zero-based character
// index of str is well-formed. Indices count logical characters as returned
// by [StepString], not bytes.
func IsValidAt(str string, enc Encoding, index int) (bool, error) {
	return isAt(str, enc, English, index, prValid)
}

// IsHexNumberAt reports whether the character at index is a hex digit.
func IsHexNumberAt(str string, enc Encoding, index int) (bool, error) {
	return isAt(str, enc, English, index, prHex)
}

// IsNaturalNumberAt reports whether the character at index is a decimal digit.
func IsNaturalNumberAt(str string, enc Encoding, index int) (bool, error) {
	return isAt(str, enc, English, index, prNatural)
}

// IsInRomanceAlphabetAt reports whether the character at index is a Latin
// letter.
func IsInRomanceAlphabetAt(str string, enc Encoding, index int) (bool, error) {
	return isAt(str, enc, English, index, prRomance)
}

// IsInAlphabetAt reports whether the character at index is a letter of the
// alphabet of lang.
func IsInAlphabetAt(str string, enc Encoding, lang Language, index int) (bool, error) {
	return isAt(str, enc, lang, index, prLetter)
}

// IsUpperCaseInAlphabetAt reports whether the character at index is an upper
// case letter of the alphabet of lang.
func IsUpperCaseInAlphabetAt(str string, enc Encoding, lang Language, index int) (bool, error) {
	return isAt(str, enc, lang, index, prUpper)
}

// IsLowerCaseInAlphabetAt reports whether the character at index is a lower
// case letter of the alphabet of lang.
func IsLowerCaseInAlphabetAt(str string, enc Encoding, lang Language, index int) (bool, error) {
	return isAt(str, enc, lang, index, prLower)
}

// IsPunctuationMarkInAlphabetAt reports whether the character at index is a
// punctuation mark of lang.
func IsPunctuationMarkInAlphabetAt(str string, enc Encoding, lang Language, index int) (bool, error) {
	return isAt(str, enc, lang, index, prPunct)
}

// Length returns the number of logical characters in str. Multi-byte UTF-8
// sequences and combining marks attached to a base character count once.
// Malformed bytes count one each.
func Length(str string, enc Encoding) (int, error) {
	if !enc.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(enc))
	}
	var count int
	for len(str) > 0 {
		_, str, _ = StepString(str, enc, English)
		count++
	}
	return count, nil
}

// allOf reports whether str is non-empty and every one of its characters has
// all classes in mask.
func allOf(str string, enc Encoding, lang Language, mask int) bool {
	if len(str) == 0 || !enc.Valid() {
		return false
	}
	var props int
	for len(str) > 0 {
		_, str, props = StepString(str, enc, lang)
		if props&mask != mask {
			return false
		}
	}
	return true
}

// isAt reports whether the character at index has all classes in mask.
func isAt(str string, enc Encoding, lang Language, index int, mask int) (bool, error) {
	props, err := propsAt(str, enc, lang, index)
	if err != nil {
		return false, err
	}
	return props&mask == mask, nil
}

// propsAt returns the classes of the character at the given index.
func propsAt(str string, enc Encoding, lang Language, index int) (int, error) {
	if err := checkTags(enc, lang); err != nil {
		return 0, err
	}
	if index < 0 {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	var props int
	for i := 0; len(str) > 0; i++ {
		_, str, props = StepString(str, enc, lang)
		if i == index {
			return props, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
}

// checkTags returns an error if enc or lang is not supported.
func checkTags(enc Encoding, lang Language) error {
	if !enc.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(enc))
	}
	if !lang.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLanguage, uint8(lang))
	}
	return nil
}
