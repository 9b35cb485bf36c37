package runeclass

import "unicode"

// Character classes used by the classifiers. The property value of a
// character is a bit set of these, see also the exported masks in step.go.
const (
	prValid   = 1 << iota // Well-formed in its encoding
	prNatural             // Decimal digit 0-9
	prHex                 // Hexadecimal digit 0-9, a-f, A-F
	prRomance             // Letter of the Latin script
	prLetter              // Letter of the language's alphabet
	prUpper               // Upper case letter of the language's alphabet
	prLower               // Lower case letter of the language's alphabet
	prPunct               // Punctuation mark of the language
)

// prLanguage covers the bits that depend on the language.
const prLanguage = prLetter | prUpper | prLower | prPunct

// alphabetCodePoints maps a language to its alphabet and punctuation table.
// The tables live in alphabetproperties.go.
var alphabetCodePoints = [...][][3]int{
	English: englishCodePoints,
	Spanish: spanishCodePoints,
	French:  frenchCodePoints,
}

// Combining diacritical mark blocks. Marks do not count as characters on
// their own.
var diacriticalMarks = [][3]int{
	{0x0300, 0x036F, 1}, // Combining Diacritical Marks
	{0x1AB0, 0x1AFF, 1}, // Combining Diacritical Marks Extended
	{0x20D0, 0x20FF, 1}, // Combining Diacritical Marks for Symbols
	{0xFE20, 0xFE2F, 1}, // Combining Half Marks
}

// propertySearch performs a binary search on a sorted property table.
// Each entry is [startCodePoint, endCodePoint, property].
// Returns the matching entry, or zero-initialized entry if not found.
func propertySearch(dictionary [][3]int, r rune) (result [3]int) {
	// Run a binary search.
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}

// property returns the property value (see constants above) of the given
// code point.
func property(dictionary [][3]int, r rune) int {
	return propertySearch(dictionary, r)[2]
}

// propertyBase returns the language independent classes of the given code
// point while fast tracking ASCII digits and letters. prValid is left to the
// decoder.
func propertyBase(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return prNatural | prHex
	case r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		return prHex | prRomance
	case r >= 'g' && r <= 'z', r >= 'G' && r <= 'Z':
		return prRomance
	case r < 0x80:
		return 0
	}
	if unicode.Is(unicode.Latin, r) && unicode.IsLetter(r) {
		return prRomance
	}
	return 0
}

// propertyAlphabet returns the letter, case and punctuation classes of the
// given code point in the alphabet of lang. Unknown languages have no
// members.
func propertyAlphabet(lang Language, r rune) int {
	if !lang.Valid() {
		return 0
	}
	if r >= 'a' && r <= 'z' {
		return prLetter | prLower
	}
	if r >= 'A' && r <= 'Z' {
		return prLetter | prUpper
	}
	return property(alphabetCodePoints[lang], r)
}

// propertyRune returns all classes of a decoded, well-formed code point.
func propertyRune(lang Language, r rune) int {
	return prValid | propertyBase(r) | propertyAlphabet(lang, r)
}

// isDiacriticalMark reports whether r is a combining diacritical mark.
func isDiacriticalMark(r rune) bool {
	return property(diacriticalMarks, r) != 0
}
