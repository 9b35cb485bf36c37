// Package fixture runs classification fixtures: YAML files that pair subjects
// with the expected answers of the runeclass predicates.
package fixture

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/scalecode-solutions/runeclass"
)

// DefaultPattern matches fixture files below a root directory.
const DefaultPattern = "**/*.fixture.yaml"

// Suite is one fixture file.
type Suite struct {
	// Name describes the suite, defaults to the file name
	Name string `yaml:"name"`
	// Encoding of every subject, by name or numeric tag (default: utf8)
	Encoding string `yaml:"encoding"`
	// Language of every subject, by name or numeric tag (default: english)
	Language string `yaml:"language"`
	Cases    []Case `yaml:"cases"`

	// Path is the file the suite was loaded from
	Path string `yaml:"-"`
}

// Case is one subject and its expectations. Only the expectations that are
// set are checked.
type Case struct {
	// Subject is UTF-8 text, converted to the suite encoding before use
	Subject string `yaml:"subject"`
	// Bytes is the subject as hex digits, used as-is. It takes precedence
	// over Subject and allows malformed input.
	Bytes string `yaml:"bytes"`
	// Index selects a single character; without it checks cover the
	// whole subject
	Index *int `yaml:"index"`

	Checks        Checks  `yaml:"checks"`
	Length        *int    `yaml:"length"`
	Escape        *Escape `yaml:"escape"`
	LengthEscaped *int    `yaml:"length_escaped"`
	// Unescaped is the expected result of resolving the escapes
	Unescaped *string `yaml:"unescaped"`

	// Error is the expected error kind, see ErrorKinds
	Error string `yaml:"error"`
}

// Checks holds the expected predicate results.
type Checks struct {
	Valid       *bool `yaml:"valid"`
	Natural     *bool `yaml:"natural"`
	Hex         *bool `yaml:"hex"`
	Romance     *bool `yaml:"romance"`
	Alphabet    *bool `yaml:"alphabet"`
	Upper       *bool `yaml:"upper"`
	Lower       *bool `yaml:"lower"`
	Punctuation *bool `yaml:"punctuation"`
}

// Escape configures escape-aware length for a case.
type Escape struct {
	Marker   string                   `yaml:"marker"`
	Encoding runeclass.EscapeEncoding `yaml:"encoding"`
	End      string                   `yaml:"end"`
}

// ErrorKinds maps the values of Case.Error to the errors they stand for.
var ErrorKinds = map[string]error{
	"index_out_of_range": runeclass.ErrIndexOutOfRange,
	"malformed_escape":   runeclass.ErrMalformedEscape,
	"malformed":          runeclass.ErrMalformed,
	"unknown_encoding":   runeclass.ErrUnknownEncoding,
	"unknown_language":   runeclass.ErrUnknownLanguage,
	"unrepresentable":    runeclass.ErrUnrepresentable,
}

// Load reads and validates the fixture file at path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	suite := &Suite{}
	if err := yaml.Unmarshal(data, suite); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	suite.Path = path
	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	for i, c := range suite.Cases {
		if c.Error != "" {
			if _, ok := ErrorKinds[c.Error]; !ok {
				return nil, fmt.Errorf("%s: case %d: unknown error kind %q", path, i, c.Error)
			}
		}
		if c.Bytes != "" {
			if _, err := hex.DecodeString(strings.ReplaceAll(c.Bytes, " ", "")); err != nil {
				return nil, fmt.Errorf("%s: case %d: bytes: %w", path, i, err)
			}
		}
		if c.LengthEscaped != nil && c.Escape == nil {
			return nil, fmt.Errorf("%s: case %d: length_escaped needs escape", path, i)
		}
		if c.Unescaped != nil && c.Escape == nil {
			return nil, fmt.Errorf("%s: case %d: unescaped needs escape", path, i)
		}
	}

	return suite, nil
}

// Tags returns the encoding and language of the suite. Numeric tags are
// taken verbatim, even if the library does not support them, so that
// fixtures can cover unknown tags.
func (s *Suite) Tags() (runeclass.Encoding, runeclass.Language, error) {
	var (
		enc  runeclass.Encoding
		lang runeclass.Language
	)
	if s.Encoding == "" {
		enc = runeclass.UTF8Binary
	} else if n, err := strconv.ParseUint(s.Encoding, 10, 8); err == nil {
		enc = runeclass.Encoding(n)
	} else if enc, err = runeclass.ParseEncoding(s.Encoding); err != nil {
		return 0, 0, err
	}
	if s.Language == "" {
		return enc, runeclass.English, nil
	}
	if n, err := strconv.ParseUint(s.Language, 10, 8); err == nil {
		lang = runeclass.Language(n)
	} else if lang, err = runeclass.ParseLanguage(s.Language); err != nil {
		return 0, 0, err
	}
	return enc, lang, nil
}

// subject returns the bytes of the case in the given encoding.
func (c *Case) subject(enc runeclass.Encoding) (string, error) {
	if c.Bytes != "" {
		b, err := hex.DecodeString(strings.ReplaceAll(c.Bytes, " ", ""))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if !enc.Valid() {
		return c.Subject, nil
	}
	return runeclass.Encode(c.Subject, enc)
}

// Discover returns the fixture files below root that match pattern, sorted.
// An empty pattern means DefaultPattern.
func Discover(root, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	// Use doublestar for ** support
	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s: %w", root, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(m)))
	}
	sort.Strings(paths)
	return paths, nil
}
