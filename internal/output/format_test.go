package output_test

import (
	"bytes"
	"testing"

	"tpaste/internal/output"
	"tpaste/internal/service"
	"tpaste/internal/testutil"
)

func TestFormatSnippet(t *testing.T) {
	var buf bytes.Buffer
	output.FormatSnippet(&buf, service.Snippet{
		ID:               "abc123",
		Title:            "Hello",
		Content:          "fmt.Println(\"hi\")\n",
		Language:         "go",
		Visibility:       "unlisted",
		Tags:             []string{"go", "demo"},
		CreatorName:      "alice",
		IsVerified:       true,
		PasswordBypassed: true,
	})

	testutil.Golden(t, "snippet", buf.Bytes())
}

func TestFormatSnippet_PlainMarkersOmitted(t *testing.T) {
	var buf bytes.Buffer
	output.FormatSnippet(&buf, service.Snippet{ID: "x", Title: "", Content: "c"})

	got := buf.String()
	if bytes.Contains(buf.Bytes(), []byte("VERIFIED")) {
		t.Errorf("unexpected verified marker in %q", got)
	}
	if bytes.Contains(buf.Bytes(), []byte("bypassed")) {
		t.Errorf("unexpected bypass marker in %q", got)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Title: (untitled)\n")) {
		t.Errorf("expected untitled placeholder in %q", got)
	}
}

func TestFormatUser(t *testing.T) {
	var buf bytes.Buffer
	output.FormatUser(&buf, service.UserProfile{UserID: "u1", DisplayName: "Alice"})

	testutil.Golden(t, "user", buf.Bytes())
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTable(&buf, []service.Snippet{
		{ID: "a1", Title: "First", Visibility: "public", Language: "go"},
		{ID: "b22", Title: "Two\nlines", Visibility: "private", Language: "python"},
	}, output.ColID, output.ColTitle, output.ColVisibility, output.ColLanguage)

	expected := "ID   TITLE      VISIBILITY  LANGUAGE\n" +
		"a1   First      public      go\n" +
		"b22  Two lines  private     python\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}
