/*
Package runeclass classifies characters and strings across text encodings and
languages: hex digits, natural numbers, alphabet membership, letter case,
punctuation marks, encoding validity and encoding-aware length.

# Overview

Every query takes a subject (a string of bytes), an [Encoding] that tells how
the bytes map to characters and, for alphabet related queries, a [Language]:

	runeclass.IsNaturalNumber("567", runeclass.ASCII)                 // true
	runeclass.IsInAlphabet("señor", runeclass.UTF8Binary, runeclass.Spanish) // true
	runeclass.IsInAlphabet("señor", runeclass.UTF8Binary, runeclass.English) // false

The supported encodings are [UTF8Binary], [ASCII] and [ISO8859_1]. The
supported languages are [English], [Spanish] and [French]. All functions are
pure and safe for concurrent use.

# Getting Started

Whole-subject predicates:
  - [IsValid] - Every character is well-formed in the encoding
  - [IsHexNumber], [IsNaturalNumber] - Digits only
  - [IsInRomanceAlphabet] - Latin letters only
  - [IsInAlphabet], [IsUpperCaseInAlphabet], [IsLowerCaseInAlphabet] - Letters of a language
  - [IsPunctuationMarkInAlphabet] - Punctuation marks of a language

Each predicate has an "At" variant (e.g. [IsHexNumberAt]) that looks at one
character, addressed by its zero-based character index.

Counting:
  - [Length] - Number of characters
  - [LengthEscaped] - Number of characters where escapes such as "\u00e9" count once

For repeated queries on the same subject, use [Text]. For iteration, use
[Step] or [StepString], which return one character and its classes at a time.

# Characters

A character is one byte in ASCII and ISO-8859-1. In UTF-8 it is a code point
together with any combining marks that follow it, so "e" + U+0301 is a single
character that classifies like "é". Malformed bytes are characters of their
own that belong to no class.

# Edge Cases

The empty string is valid and has length 0. All other predicates are false
for it. Whole-subject predicates return false for unsupported encodings and
languages, while the functions that return an error report
[ErrUnknownEncoding] or [ErrUnknownLanguage]. Indices outside the subject
yield [ErrIndexOutOfRange].
*/
package runeclass
