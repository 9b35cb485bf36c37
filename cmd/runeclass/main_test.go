package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/scalecode-solutions/runeclass"
	"github.com/scalecode-solutions/runeclass/internal/config"
)

// isolate keeps user and project configs of the machine out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := rootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "runeclass version "+Version+"\n", out)
}

func TestClassifyJSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "classify", "567", "--encoding", "ascii", "--json")
	require.NoError(t, err)

	var got classification
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "567", got.Subject)
	assert.Equal(t, runeclass.ASCII, got.Encoding)
	assert.Equal(t, runeclass.English, got.Language)
	assert.Equal(t, 3, got.Length)
	assert.Nil(t, got.Index)
	assert.Equal(t, predicates{Valid: true, Natural: true, Hex: true}, got.Predicates)
	assert.Empty(t, got.Chars)
}

func TestClassifyIndex(t *testing.T) {
	isolate(t)

	out, err := execute(t, "classify", "¿Qué?", "-l", "spanish", "--index", "0")
	require.NoError(t, err)
	assert.Contains(t, out, `"¿Qué?"`)
	assert.Regexp(t, `Index\s+0`, out)
	assert.Regexp(t, `punctuation\s+true`, out)
	assert.Regexp(t, `alphabet\s+false`, out)

	_, err = execute(t, "classify", "abc", "--index", "3")
	assert.ErrorIs(t, err, runeclass.ErrIndexOutOfRange)
}

func TestClassifyChars(t *testing.T) {
	isolate(t)

	out, err := execute(t, "classify", "Ça", "-e", "iso-8859-1", "-l", "french", "--chars", "--json")
	require.NoError(t, err)

	var got classification
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Chars, 2)
	assert.Equal(t, "Ç", got.Chars[0].Char)
	assert.Equal(t, []string{"valid", "romance", "alphabet", "upper"}, got.Chars[0].Classes)
	assert.Equal(t, []string{"valid", "hex", "romance", "alphabet", "lower"}, got.Chars[1].Classes)
	assert.True(t, got.Predicates.Alphabet)

	out, err = execute(t, "classify", "a,", "--chars")
	require.NoError(t, err)
	assert.Regexp(t, `1\s+,\s+valid,punctuation`, out)
}

func TestClassifyErrors(t *testing.T) {
	isolate(t)

	_, err := execute(t, "classify", "é", "-e", "ascii")
	assert.ErrorIs(t, err, runeclass.ErrUnrepresentable)

	_, err = execute(t, "classify", "abc", "-e", "ebcdic")
	assert.ErrorIs(t, err, runeclass.ErrUnknownEncoding)

	_, err = execute(t, "classify")
	assert.Error(t, err)
}

func TestLength(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"plain", []string{"length", "SixValue", "-e", "ascii"}, "8\n"},
		{"utf8", []string{"length", "señor"}, "5\n"},
		{"escaped", []string{"length", "HealthyYUM2345N", "-e", "ascii", "--escape", "--marker", "YUM"}, "9\n"},
		{"escaped with end", []string{"length", "HealthyYUM2345NR", "-e", "ascii", "--escape", "--marker", "YUM", "--end", "N"}, "9\n"},
		{"unescape", []string{"length", "caf&#233;", "--marker", "&#", "--escape-encoding", "decimal", "--end", ";", "--unescape"}, "café\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	_, err := execute(t, "length", "YUM12", "--escape", "--marker", "YUM")
	assert.ErrorIs(t, err, runeclass.ErrMalformedEscape)
}

func TestConfigFile(t *testing.T) {
	dir := isolate(t)

	// The project config is found from a subdirectory.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "runeclass.yaml"), []byte(`
text:
  encoding: ascii
escape:
  marker: YUM
`), 0644))
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	chdir(t, sub)

	out, err := execute(t, "length", "HealthyYUM2345N", "--escape")
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)

	// Flags override the config.
	_, err = execute(t, "classify", "é")
	assert.ErrorIs(t, err, runeclass.ErrUnrepresentable)
	_, err = execute(t, "classify", "é", "-e", "utf8")
	assert.NoError(t, err)

	// An explicit file replaces the project config.
	explicit := filepath.Join(t.TempDir(), "other.yaml")
	require.NoError(t, os.WriteFile(explicit, []byte("text:\n  language: spanish\n"), 0644))
	out, err = execute(t, "--config", explicit, "classify", "ñ", "--json")
	require.NoError(t, err)
	var got classification
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, runeclass.UTF8Binary, got.Encoding)
	assert.True(t, got.Predicates.Alphabet)

	_, err = execute(t, "--config", filepath.Join(dir, "missing.yaml"), "classify", "a")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	dir := isolate(t)

	fixtures := filepath.Join(dir, "fixtures")
	require.NoError(t, os.MkdirAll(filepath.Join(fixtures, "deep"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(fixtures, "deep", "digits.fixture.yaml"), []byte(`
name: digits
encoding: ascii
cases:
  - subject: "567"
    checks: {natural: true}
  - subject: "SixValue"
    length: 8
`), 0644))

	out, err := execute(t, "check", fixtures)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   digits")
	assert.Contains(t, out, "1 suites, 2 cases, 0 failures, 0 failed suites")

	require.NoError(t, os.WriteFile(filepath.Join(fixtures, "wrong.fixture.yaml"), []byte(`
name: wrong
encoding: ascii
cases:
  - subject: "5gd3"
    checks: {natural: true}
`), 0644))

	out, err = execute(t, "check", fixtures)
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "FAIL wrong")
	assert.Contains(t, out, `case 0 ("5gd3"): natural: got false, want true`)

	// The pattern narrows the run.
	out, err = execute(t, "check", fixtures, "--pattern", "deep/*.fixture.yaml")
	require.NoError(t, err)
	assert.NotContains(t, out, "wrong")

	// Without arguments the configured directories are used.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "runeclass.yaml"), []byte("fixtures:\n  dirs: [fixtures/deep]\n"), 0644))
	out, err = execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "ok   digits")
}

func TestConfigCommands(t *testing.T) {
	isolate(t)

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.FileExists(t, path)
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), config.UserConfigDir, config.UserConfigFile), path)

	// The created file is picked up and kept on a second run.
	require.NoError(t, os.WriteFile(path, []byte("text:\n  language: spanish\n"), 0644))
	again, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	out, err = execute(t, "config", "show", "-e", "ascii")
	require.NoError(t, err)
	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "ascii", shown.Text.Encoding)
	assert.Equal(t, "spanish", shown.Text.Language)
	assert.Equal(t, `\u`, shown.Escape.MarkerValue())
}
