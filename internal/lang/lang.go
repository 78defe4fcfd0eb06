// Package lang maps snippet languages to file extensions and back.
package lang

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// DefaultLanguage is used for unknown extensions.
	DefaultLanguage = "plaintext"

	// DefaultExtension is used for unknown languages.
	DefaultExtension = ".txt"

	// FallbackFilename replaces an empty snippet title.
	FallbackFilename = "snippet"

	// MaxFilenameLength is the rune limit of a sanitized filename.
	MaxFilenameLength = 100
)

var languageToExt = map[string]string{
	"javascript": ".js",
	"typescript": ".ts",
	"python":     ".py",
	"html":       ".html",
	"css":        ".css",
	"json":       ".json",
	"markdown":   ".md",
	"text":       ".txt",
	"plaintext":  ".txt",
	"shell":      ".sh",
	"java":       ".java",
	"csharp":     ".cs",
	"cpp":        ".cpp",
	"go":         ".go",
	"rust":       ".rs",
	"ruby":       ".rb",
}

// extToLanguage is not a plain inversion: ".txt" must map to plaintext, not text.
var extToLanguage = map[string]string{
	".js":   "javascript",
	".ts":   "typescript",
	".py":   "python",
	".html": "html",
	".css":  "css",
	".json": "json",
	".md":   "markdown",
	".txt":  "plaintext",
	".sh":   "shell",
	".java": "java",
	".cs":   "csharp",
	".cpp":  "cpp",
	".go":   "go",
	".rs":   "rust",
	".rb":   "ruby",
}

var unsafeChars = regexp.MustCompile(`[\s/\\?%*:|"<>]`)

// ExtensionFor returns the file extension (with dot) for a language.
func ExtensionFor(language string) string {
	if ext, ok := languageToExt[strings.ToLower(strings.TrimSpace(language))]; ok {
		return ext
	}
	return DefaultExtension
}

// LanguageFor returns the language for a file extension (with dot).
func LanguageFor(ext string) string {
	if language, ok := extToLanguage[strings.ToLower(ext)]; ok {
		return language
	}
	return DefaultLanguage
}

// Languages returns the known language identifiers, sorted.
func Languages() []string {
	names := make([]string, 0, len(languageToExt))
	for name := range languageToExt {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SanitizeFilename makes a snippet title usable as a file name.
// Unsafe characters become underscores and the result is at most
// MaxFilenameLength runes.
func SanitizeFilename(name string) string {
	if name == "" {
		return FallbackFilename
	}
	safe := unsafeChars.ReplaceAllString(name, "_")
	runes := []rune(safe)
	if len(runes) > MaxFilenameLength {
		runes = runes[:MaxFilenameLength]
	}
	return string(runes)
}
