package fixture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/scalecode-solutions/runeclass"
)

// Report is the outcome of running one suite.
type Report struct {
	Suite    string
	Path     string
	Cases    int
	Failures []Failure
	// Err is set when the suite could not be loaded or has invalid tags
	Err error
}

// Failure describes one failed expectation.
type Failure struct {
	Case    int
	Subject string
	Message string
}

func (f Failure) String() string {
	return fmt.Sprintf("case %d (%q): %s", f.Case, f.Subject, f.Message)
}

// Passed reports whether the suite loaded and every expectation held.
func (r *Report) Passed() bool {
	return r.Err == nil && len(r.Failures) == 0
}

// Run evaluates every case of suite.
func Run(suite *Suite) *Report {
	report := &Report{Suite: suite.Name, Path: suite.Path, Cases: len(suite.Cases)}

	enc, lang, err := suite.Tags()
	if err != nil {
		report.Err = err
		return report
	}

	for i := range suite.Cases {
		c := &suite.Cases[i]
		for _, msg := range evaluate(c, enc, lang) {
			report.Failures = append(report.Failures, Failure{Case: i, Subject: c.Subject, Message: msg})
		}
	}
	return report
}

// evaluation collects the failures of one case.
type evaluation struct {
	wantErr  error
	sawErr   bool
	failures []string
}

func (e *evaluation) failf(format string, args ...any) {
	e.failures = append(e.failures, fmt.Sprintf(format, args...))
}

// result records the error of an operation and reports whether its value
// should be compared.
func (e *evaluation) result(op string, err error) bool {
	if err == nil {
		return true
	}
	switch {
	case e.wantErr == nil:
		e.failf("%s: unexpected error: %v", op, err)
	case errors.Is(err, e.wantErr):
		e.sawErr = true
	default:
		e.failf("%s: want error %v, got %v", op, e.wantErr, err)
	}
	return false
}

func (e *evaluation) compare(op string, want *bool, got bool) {
	if want != nil && *want != got {
		e.failf("%s: got %t, want %t", op, got, *want)
	}
}

func evaluate(c *Case, enc runeclass.Encoding, lang runeclass.Language) []string {
	e := &evaluation{wantErr: ErrorKinds[c.Error]}

	subject, err := c.subject(enc)
	if err != nil {
		e.result("subject", err)
		return e.finish()
	}
	txt := runeclass.NewText(subject, enc, runeclass.WithLanguage(lang))

	if c.Index != nil {
		checkAt(e, txt, c.Checks, *c.Index)
	} else {
		checkWhole(e, txt, c.Checks)
	}

	if c.Length != nil {
		if n, err := txt.Len(); e.result("length", err) && n != *c.Length {
			e.failf("length: got %d, want %d", n, *c.Length)
		}
	}

	if c.Escape != nil {
		esc := c.Escape
		if c.LengthEscaped != nil {
			n, err := txt.LenEscaped(esc.Marker, esc.Encoding, esc.End)
			if e.result("length_escaped", err) && n != *c.LengthEscaped {
				e.failf("length_escaped: got %d, want %d", n, *c.LengthEscaped)
			}
		}
		if c.Unescaped != nil {
			s, err := txt.Unescape(esc.Marker, esc.Encoding, esc.End)
			if e.result("unescaped", err) && s != *c.Unescaped {
				e.failf("unescaped: got %q, want %q", s, *c.Unescaped)
			}
		}
	}

	return e.finish()
}

func (e *evaluation) finish() []string {
	if e.wantErr != nil && !e.sawErr {
		e.failf("want error %v, got none", e.wantErr)
	}
	return e.failures
}

func checkWhole(e *evaluation, txt *runeclass.Text, checks Checks) {
	// Whole-subject predicates are false for unknown tags, Classes reports
	// them.
	if e.wantErr != nil {
		_, err := txt.Classes()
		e.result("classes", err)
	}

	e.compare("valid", checks.Valid, txt.IsValid())
	e.compare("natural", checks.Natural, txt.IsNaturalNumber())
	e.compare("hex", checks.Hex, txt.IsHexNumber())
	e.compare("romance", checks.Romance, txt.IsInRomanceAlphabet())
	e.compare("alphabet", checks.Alphabet, txt.IsInAlphabet())
	e.compare("upper", checks.Upper, txt.IsUpperCaseInAlphabet())
	e.compare("lower", checks.Lower, txt.IsLowerCaseInAlphabet())
	e.compare("punctuation", checks.Punctuation, txt.IsPunctuationMarkInAlphabet())
}

func checkAt(e *evaluation, txt *runeclass.Text, checks Checks, index int) {
	at := []struct {
		op   string
		want *bool
		fn   func(int) (bool, error)
	}{
		{"valid", checks.Valid, txt.IsValidAt},
		{"natural", checks.Natural, txt.IsNaturalNumberAt},
		{"hex", checks.Hex, txt.IsHexNumberAt},
		{"romance", checks.Romance, txt.IsInRomanceAlphabetAt},
		{"alphabet", checks.Alphabet, txt.IsInAlphabetAt},
		{"upper", checks.Upper, txt.IsUpperCaseInAlphabetAt},
		{"lower", checks.Lower, txt.IsLowerCaseInAlphabetAt},
		{"punctuation", checks.Punctuation, txt.IsPunctuationMarkInAlphabetAt},
	}
	for _, a := range at {
		if a.want == nil && e.wantErr == nil {
			continue
		}
		got, err := a.fn(index)
		if e.result(fmt.Sprintf("%s[%d]", a.op, index), err) {
			e.compare(fmt.Sprintf("%s[%d]", a.op, index), a.want, got)
		}
	}
}

// Runner runs fixture files and logs their outcome.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a new fixture runner
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run loads and runs every file in paths, in order. A file that fails to
// load yields a report with Err set; the remaining files still run.
func (r *Runner) Run(ctx context.Context, paths []string) ([]*Report, error) {
	reports := make([]*Report, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		suite, err := Load(path)
		if err != nil {
			r.logger.Warn("Failed to load fixture", slog.String("path", path), slog.String("error", err.Error()))
			reports = append(reports, &Report{Suite: path, Path: path, Err: err})
			continue
		}

		report := Run(suite)
		r.logger.Debug("Ran fixture",
			slog.String("suite", report.Suite),
			slog.String("path", path),
			slog.Int("cases", report.Cases),
			slog.Int("failures", len(report.Failures)))
		reports = append(reports, report)
	}
	return reports, nil
}

// Summary totals a set of reports.
type Summary struct {
	Suites       int
	FailedSuites int
	Cases        int
	Failures     int
}

// Summarize totals reports.
func Summarize(reports []*Report) Summary {
	var s Summary
	for _, r := range reports {
		s.Suites++
		s.Cases += r.Cases
		s.Failures += len(r.Failures)
		if !r.Passed() {
			s.FailedSuites++
		}
	}
	return s
}

// Passed reports whether every suite passed.
func (s Summary) Passed() bool {
	return s.FailedSuites == 0
}
