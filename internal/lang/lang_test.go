package lang

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExtensionRoundTrip(t *testing.T) {
	for _, l := range Languages() {
		t.Run(l, func(t *testing.T) {
			ext := ExtensionFor(l)
			assert.Equal(t, ext, ExtensionFor(LanguageFor(ext)))
		})
	}
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		language string
		want     string
	}{
		{"python", ".py"},
		{"Python", ".py"},
		{"go", ".go"},
		{"text", ".txt"},
		{"plaintext", ".txt"},
		{"", ".txt"},
		{"cobol", ".txt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtensionFor(tt.language), "language %q", tt.language)
	}
}

func TestLanguageFor(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".py", "python"},
		{".PY", "python"},
		{".txt", "plaintext"},
		{".rs", "rust"},
		{"", "plaintext"},
		{".xyz", "plaintext"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LanguageFor(tt.ext), "ext %q", tt.ext)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "snippet"},
		{"spaces", "my snippet", "my_snippet"},
		{"unsafe", `a/b\c?d%e*f:g|h"i<j>k`, "a_b_c_d_e_f_g_h_i_j_k"},
		{"tabs and newlines", "a\tb\nc", "a_b_c"},
		{"plain", "hello", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestSanitizeFilenameNeverUnsafe(t *testing.T) {
	inputs := []string{
		strings.Repeat("x y/", 60),
		`<<>>??**||::""`,
		"  \t\r\n  ",
		strings.Repeat("é", 150),
	}
	for _, in := range inputs {
		got := SanitizeFilename(in)
		assert.False(t, strings.ContainsAny(got, " \t\r\n/\\?%*:|\"<>"), "unsafe char in %q", got)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), MaxFilenameLength)
		assert.True(t, utf8.ValidString(got))
	}
}
