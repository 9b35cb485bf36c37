//go:build generate

// This program generates the alphabet and punctuation property tables from
// alphabets.yaml.
//
//go:generate go run gen_alphabets.go

package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	alphabetsFile = "alphabets.yaml"
	outputFile    = "alphabetproperties.go"
)

// The languages in table order.
var languages = []string{"english", "spanish", "french"}

// repertoire is one language's entry in alphabets.yaml.
type repertoire struct {
	Upper       []string `yaml:"upper"`
	Lower       []string `yaml:"lower"`
	Punctuation []string `yaml:"punctuation"`
}

func main() {
	log.SetPrefix("gen_alphabets: ")
	log.SetFlags(0)

	src, err := parse()
	if err != nil {
		log.Fatal(err)
	}

	// Format the Go code.
	formatted, err := format.Source([]byte(src))
	if err != nil {
		log.Fatal("gofmt:", err)
	}

	// Save it to the target file.
	log.Print("Writing to " + outputFile)
	if err := os.WriteFile(outputFile, formatted, 0644); err != nil {
		log.Fatal(err)
	}
}

func parse() (string, error) {
	log.Printf("Parsing %s", alphabetsFile)
	data, err := os.ReadFile(alphabetsFile)
	if err != nil {
		return "", err
	}
	var repertoires map[string]repertoire
	if err := yaml.Unmarshal(data, &repertoires); err != nil {
		return "", err
	}

	// Header.
	var buf bytes.Buffer
	buf.WriteString(`// Code generated via go generate from gen_alphabets.go. DO NOT EDIT.

package runeclass
`)

	for _, language := range languages {
		rep, ok := repertoires[language]
		if !ok {
			return "", fmt.Errorf("missing language %q", language)
		}
		classes := make(map[rune]string)
		for _, set := range []struct {
			entries []string
			value   string
		}{
			{rep.Upper, "prLetter | prUpper"},
			{rep.Lower, "prLetter | prLower"},
			{rep.Punctuation, "prPunct"},
		} {
			for _, entry := range set.entries {
				from, to, err := parseEntry(entry)
				if err != nil {
					return "", fmt.Errorf("%s: %v", language, err)
				}
				for r := from; r <= to; r++ {
					if previous, ok := classes[r]; ok && previous != set.value {
						return "", fmt.Errorf("%s: %U listed twice", language, r)
					}
					classes[r] = set.value
				}
			}
		}

		fmt.Fprintf(&buf, "\n// %sCodePoints lists the letters and punctuation marks of %s.\n", language, language)
		fmt.Fprintf(&buf, "var %sCodePoints = [][3]int{\n", language)
		for _, rng := range coalesce(classes) {
			comment := string(rng.from)
			if rng.to != rng.from {
				comment += ".." + string(rng.to)
			}
			fmt.Fprintf(&buf, "\t{0x%04X, 0x%04X, %s}, // %s\n", rng.from, rng.to, rng.value, comment)
		}
		buf.WriteString("}\n")
	}

	return buf.String(), nil
}

// parseEntry parses a single character or a "X-Y" range.
func parseEntry(entry string) (from, to rune, err error) {
	switch utf8.RuneCountInString(entry) {
	case 1:
		r, _ := utf8.DecodeRuneInString(entry)
		return r, r, nil
	case 3:
		runes := []rune(entry)
		if runes[1] != '-' || runes[0] > runes[2] {
			break
		}
		return runes[0], runes[2], nil
	}
	return 0, 0, errors.New("invalid entry " + entry)
}

type codePointRange struct {
	from, to rune
	value    string
}

// coalesce sorts the code points and merges neighbours with equal classes.
func coalesce(classes map[rune]string) []codePointRange {
	runes := make([]rune, 0, len(classes))
	for r := range classes {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	var ranges []codePointRange
	for _, r := range runes {
		if n := len(ranges); n > 0 && ranges[n-1].to == r-1 && ranges[n-1].value == classes[r] {
			ranges[n-1].to = r
			continue
		}
		ranges = append(ranges, codePointRange{from: r, to: r, value: classes[r]})
	}
	return ranges
}
