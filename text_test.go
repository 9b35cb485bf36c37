package runeclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextDefaults(t *testing.T) {
	txt := NewText("abc", ASCII)
	assert.Equal(t, "abc", txt.String())
	assert.Equal(t, ASCII, txt.Encoding())
	assert.Equal(t, English, txt.Language())

	txt = NewText("abc", ASCII, WithLanguage(French))
	assert.Equal(t, French, txt.Language())
}

// TestTextForwards checks that every Text method agrees with the function it
// wraps.
func TestTextForwards(t *testing.T) {
	subjects := []string{"", "567", "Añejo", "¿Qué?", "ÇA", "\xff", "e\xcc\x81"}
	for _, s := range subjects {
		for _, enc := range Encodings() {
			for _, lang := range Languages() {
				txt := NewText(s, enc, WithLanguage(lang))
				assert.Equal(t, IsValid(s, enc), txt.IsValid())
				assert.Equal(t, IsHexNumber(s, enc), txt.IsHexNumber())
				assert.Equal(t, IsNaturalNumber(s, enc), txt.IsNaturalNumber())
				assert.Equal(t, IsInRomanceAlphabet(s, enc), txt.IsInRomanceAlphabet())
				assert.Equal(t, IsInAlphabet(s, enc, lang), txt.IsInAlphabet())
				assert.Equal(t, IsUpperCaseInAlphabet(s, enc, lang), txt.IsUpperCaseInAlphabet())
				assert.Equal(t, IsLowerCaseInAlphabet(s, enc, lang), txt.IsLowerCaseInAlphabet())
				assert.Equal(t, IsPunctuationMarkInAlphabet(s, enc, lang), txt.IsPunctuationMarkInAlphabet())

				n, err := Length(s, enc)
				m, terr := txt.Len()
				assert.Equal(t, n, m)
				assert.Equal(t, err, terr)

				for i := -1; i <= n; i++ {
					want, err := IsInAlphabetAt(s, enc, lang, i)
					got, terr := txt.IsInAlphabetAt(i)
					assert.Equal(t, want, got)
					assert.Equal(t, err != nil, terr != nil)

					want, _ = IsPunctuationMarkInAlphabetAt(s, enc, lang, i)
					got, _ = txt.IsPunctuationMarkInAlphabetAt(i)
					assert.Equal(t, want, got)

					want, _ = IsUpperCaseInAlphabetAt(s, enc, lang, i)
					got, _ = txt.IsUpperCaseInAlphabetAt(i)
					assert.Equal(t, want, got)

					want, _ = IsLowerCaseInAlphabetAt(s, enc, lang, i)
					got, _ = txt.IsLowerCaseInAlphabetAt(i)
					assert.Equal(t, want, got)

					want, _ = IsValidAt(s, enc, i)
					got, _ = txt.IsValidAt(i)
					assert.Equal(t, want, got)

					want, _ = IsHexNumberAt(s, enc, i)
					got, _ = txt.IsHexNumberAt(i)
					assert.Equal(t, want, got)

					want, _ = IsNaturalNumberAt(s, enc, i)
					got, _ = txt.IsNaturalNumberAt(i)
					assert.Equal(t, want, got)

					want, _ = IsInRomanceAlphabetAt(s, enc, i)
					got, _ = txt.IsInRomanceAlphabetAt(i)
					assert.Equal(t, want, got)
				}
			}
		}
	}
}

func TestTextUnknownTags(t *testing.T) {
	txt := NewText("a", Encoding(9))
	assert.False(t, txt.IsInRomanceAlphabet())
	_, err := txt.Len()
	assert.ErrorIs(t, err, ErrUnknownEncoding)

	txt = NewText("a", ASCII, WithLanguage(Language(5)))
	assert.False(t, txt.IsInAlphabet())
	_, err = txt.IsInAlphabetAt(0)
	assert.ErrorIs(t, err, ErrUnknownLanguage)
	_, err = txt.Classes()
	assert.ErrorIs(t, err, ErrUnknownLanguage)

	// Language independent queries do not look at the language.
	ok, err := txt.IsHexNumberAt(0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTextEscapes(t *testing.T) {
	txt := NewText("HealthyYUM2345NR", ASCII)
	n, err := txt.LenEscaped("YUM", EscapeHex, "N")
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	s, err := NewText("caf&#233;", ASCII).Unescape("&#", EscapeDecimal, ";")
	require.NoError(t, err)
	assert.Equal(t, "café", s)

	s, err = NewText("caf\xe9", ISO8859_1).Decode()
	require.NoError(t, err)
	assert.Equal(t, "café", s)
}

func TestTextClasses(t *testing.T) {
	classes, err := NewText("Sí, 1", UTF8Binary, WithLanguage(Spanish)).Classes()
	require.NoError(t, err)
	require.Len(t, classes, 5)

	assert.Equal(t, CharClass{Index: 1, Char: "í", Props: prValid | prRomance | prLetter | prLower}, classes[1])
	assert.True(t, classes[0].Has(MaskLetter|MaskUpper))
	assert.True(t, classes[2].Has(MaskPunct))
	assert.False(t, classes[3].Has(MaskPunct))
	assert.True(t, classes[3].Has(MaskValid))
	assert.True(t, classes[4].Has(MaskNatural|MaskHex))

	classes, err = NewText("", ASCII).Classes()
	require.NoError(t, err)
	assert.Empty(t, classes)
}
