package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/runeclass"
)

// predicates holds the answer of every classifier.
type predicates struct {
	Valid       bool `json:"valid"`
	Natural     bool `json:"natural"`
	Hex         bool `json:"hex"`
	Romance     bool `json:"romance"`
	Alphabet    bool `json:"alphabet"`
	Upper       bool `json:"upper"`
	Lower       bool `json:"lower"`
	Punctuation bool `json:"punctuation"`
}

func (p predicates) rows() []struct {
	name  string
	value bool
} {
	return []struct {
		name  string
		value bool
	}{
		{"valid", p.Valid},
		{"natural", p.Natural},
		{"hex", p.Hex},
		{"romance", p.Romance},
		{"alphabet", p.Alphabet},
		{"upper", p.Upper},
		{"lower", p.Lower},
		{"punctuation", p.Punctuation},
	}
}

// charClasses describes one character for --chars.
type charClasses struct {
	Index   int      `json:"index"`
	Char    string   `json:"char"`
	Classes []string `json:"classes"`
}

type classification struct {
	Subject    string             `json:"subject"`
	Encoding   runeclass.Encoding `json:"encoding"`
	Language   runeclass.Language `json:"language"`
	Length     int                `json:"length"`
	Index      *int               `json:"index,omitempty"`
	Predicates predicates         `json:"predicates"`
	Chars      []charClasses      `json:"chars,omitempty"`
}

var maskNames = []struct {
	mask int
	name string
}{
	{runeclass.MaskValid, "valid"},
	{runeclass.MaskNatural, "natural"},
	{runeclass.MaskHex, "hex"},
	{runeclass.MaskRomance, "romance"},
	{runeclass.MaskLetter, "alphabet"},
	{runeclass.MaskUpper, "upper"},
	{runeclass.MaskLower, "lower"},
	{runeclass.MaskPunct, "punctuation"},
}

func (a *app) classifyCmd() *cobra.Command {
	var (
		index  int
		asJSON bool
		chars  bool
	)

	cmd := &cobra.Command{
		Use:   "classify TEXT",
		Short: "Show which classes a subject or one of its characters belongs to",
		Example: `  runeclass classify 567 -e ascii
  runeclass classify "¿Qué?" -l spanish --index 0
  runeclass classify "Ça va" -e iso-8859-1 -l french --chars --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.subject(args[0])
			if err != nil {
				return err
			}
			txt := runeclass.NewText(s, a.enc, runeclass.WithLanguage(a.lang))

			result := classification{Subject: args[0], Encoding: a.enc, Language: a.lang}
			if result.Length, err = txt.Len(); err != nil {
				return err
			}
			if cmd.Flags().Changed("index") {
				result.Index = &index
				if result.Predicates, err = classifyAt(txt, index); err != nil {
					return err
				}
			} else {
				result.Predicates = classifyWhole(txt)
			}
			if chars {
				if result.Chars, err = describeChars(txt); err != nil {
					return err
				}
			}

			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return a.printClassification(result)
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "Classify only the character at this zero-based index")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&chars, "chars", false, "Also list the classes of every character")

	return cmd
}

func classifyWhole(txt *runeclass.Text) predicates {
	return predicates{
		Valid:       txt.IsValid(),
		Natural:     txt.IsNaturalNumber(),
		Hex:         txt.IsHexNumber(),
		Romance:     txt.IsInRomanceAlphabet(),
		Alphabet:    txt.IsInAlphabet(),
		Upper:       txt.IsUpperCaseInAlphabet(),
		Lower:       txt.IsLowerCaseInAlphabet(),
		Punctuation: txt.IsPunctuationMarkInAlphabet(),
	}
}

func classifyAt(txt *runeclass.Text, index int) (predicates, error) {
	var p predicates
	for _, at := range []struct {
		dst *bool
		fn  func(int) (bool, error)
	}{
		{&p.Valid, txt.IsValidAt},
		{&p.Natural, txt.IsNaturalNumberAt},
		{&p.Hex, txt.IsHexNumberAt},
		{&p.Romance, txt.IsInRomanceAlphabetAt},
		{&p.Alphabet, txt.IsInAlphabetAt},
		{&p.Upper, txt.IsUpperCaseInAlphabetAt},
		{&p.Lower, txt.IsLowerCaseInAlphabetAt},
		{&p.Punctuation, txt.IsPunctuationMarkInAlphabetAt},
	} {
		v, err := at.fn(index)
		if err != nil {
			return predicates{}, err
		}
		*at.dst = v
	}
	return p, nil
}

func describeChars(txt *runeclass.Text) ([]charClasses, error) {
	classes, err := txt.Classes()
	if err != nil {
		return nil, err
	}

	chars := make([]charClasses, 0, len(classes))
	for _, c := range classes {
		char, err := runeclass.Decode(c.Char, txt.Encoding())
		if err != nil {
			char = strconv.Quote(c.Char)
		}
		names := []string{}
		for _, m := range maskNames {
			if c.Has(m.mask) {
				names = append(names, m.name)
			}
		}
		chars = append(chars, charClasses{Index: c.Index, Char: char, Classes: names})
	}
	return chars, nil
}

func (a *app) printClassification(r classification) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\n", a.header("Subject"), strconv.Quote(r.Subject))
	fmt.Fprintf(w, "Encoding\t%s\n", r.Encoding)
	fmt.Fprintf(w, "Language\t%s\n", r.Language)
	fmt.Fprintf(w, "Length\t%d\n", r.Length)
	if r.Index != nil {
		fmt.Fprintf(w, "Index\t%d\n", *r.Index)
	}
	fmt.Fprintln(w)

	for _, row := range r.Predicates.rows() {
		fmt.Fprintf(w, "%s\t%t\n", row.name, row.value)
	}

	if len(r.Chars) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.header("#"), a.header("Char"), a.header("Classes"))
		for _, c := range r.Chars {
			fmt.Fprintf(w, "%d\t%s\t%s\n", c.Index, c.Char, strings.Join(c.Classes, ","))
		}
	}

	return w.Flush()
}
