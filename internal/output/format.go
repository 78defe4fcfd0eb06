// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"tpaste/internal/service"
)

const (
	// HeavyRule frames block headers.
	HeavyRule = "====================================="

	// LightRule frames block bodies.
	LightRule = "-------------------------------------"
)

// FormatSnippet writes the full human-readable snippet block.
func FormatSnippet(w io.Writer, s service.Snippet) {
	fmt.Fprintln(w, HeavyRule)
	fmt.Fprintf(w, "TEASERPASTE SNIPPET: %s\n", s.ID)
	fmt.Fprintln(w, HeavyRule)
	fmt.Fprintf(w, "Title: %s\n", normalizeTitle(s.Title))
	if s.IsVerified {
		fmt.Fprintln(w, "⭐ VERIFIED SNIPPET")
	}
	if s.PasswordBypassed {
		fmt.Fprintln(w, "🔑 Password bypassed (you own this snippet)")
	}
	fmt.Fprintf(w, "Creator: %s\n", s.CreatorName)
	fmt.Fprintf(w, "Language: %s\n", s.Language)
	fmt.Fprintf(w, "Tags: %s\n", strings.Join(s.Tags, ", "))
	fmt.Fprintf(w, "Visibility: %s\n", s.Visibility)
	fmt.Fprintln(w, LightRule)
	fmt.Fprintln(w, strings.TrimRight(s.Content, "\n"))
	fmt.Fprintln(w, LightRule)
}

// FormatUser writes a user profile block.
func FormatUser(w io.Writer, u service.UserProfile) {
	photo := u.PhotoURL
	if photo == "" {
		photo = "N/A"
	}
	fmt.Fprintln(w, HeavyRule)
	fmt.Fprintf(w, "USER PROFILE: %s\n", u.UserID)
	fmt.Fprintln(w, HeavyRule)
	fmt.Fprintf(w, "Display Name: %s\n", u.DisplayName)
	fmt.Fprintf(w, "Photo URL: %s\n", photo)
	fmt.Fprintln(w, LightRule)
}

// Column selects one snippet field for a table.
type Column struct {
	Header string
	Value  func(service.Snippet) string
}

// Table columns.
var (
	ColID         = Column{"ID", func(s service.Snippet) string { return s.ID }}
	ColTitle      = Column{"TITLE", func(s service.Snippet) string { return normalizeTitle(s.Title) }}
	ColVisibility = Column{"VISIBILITY", func(s service.Snippet) string { return s.Visibility }}
	ColCreator    = Column{"CREATOR", func(s service.Snippet) string { return s.CreatorName }}
	ColLanguage   = Column{"LANGUAGE", func(s service.Snippet) string { return s.Language }}
)

// FormatTable writes snippets as aligned columns with a header row.
func FormatTable(w io.Writer, snippets []service.Snippet, cols ...Column) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, s := range snippets {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = c.Value(s)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

// normalizeTitle normalizes a snippet title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	title = strings.ReplaceAll(title, "\t", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
