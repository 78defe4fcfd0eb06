// Package service defines the backend-agnostic interface for snippet operations.
package service

const (
	DefaultTitle      = "Untitled"
	DefaultLanguage   = "plaintext"
	DefaultVisibility = VisibilityUnlisted
	DefaultListLimit  = 20
)

// Visibility values accepted by the service.
const (
	VisibilityPublic   = "public"
	VisibilityUnlisted = "unlisted"
	VisibilityPrivate  = "private"
)

// Visibilities lists the valid visibility values, default first.
var Visibilities = []string{VisibilityUnlisted, VisibilityPublic, VisibilityPrivate}

// ValidVisibility reports whether v is a known visibility.
func ValidVisibility(v string) bool {
	for _, known := range Visibilities {
		if v == known {
			return true
		}
	}
	return false
}

// Snippet is a snippet as returned by the service.
// The password is never echoed back; PasswordBypassed is set instead
// when the owner reads a protected snippet.
type Snippet struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Language         string   `json:"language"`
	Visibility       string   `json:"visibility"`
	Tags             []string `json:"tags"`
	CreatorName      string   `json:"creatorName"`
	IsVerified       bool     `json:"isVerified"`
	PasswordBypassed bool     `json:"passwordBypassed"`
}

// NewSnippet is the payload of a create request.
type NewSnippet struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Language   string   `json:"language"`
	Visibility string   `json:"visibility"`
	Password   string   `json:"password,omitempty"`
	Tags       []string `json:"tags"`
	Expires    string   `json:"expires,omitempty"`
}

// Updates holds only the fields an update changes.
type Updates map[string]any

// UserProfile is the authenticated user's profile.
type UserProfile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

// ListOptions filters the caller's own snippets.
type ListOptions struct {
	Limit      int    `json:"limit"`
	Visibility string `json:"visibility,omitempty"`
}
