// Package service defines the backend-agnostic interface for snippet operations.
package service

import "context"

// Service defines the interface for snippet backend operations.
// All TeaserPaste API calls go through this interface.
// Commands never build HTTP requests directly.
type Service interface {
	// GetSnippet fetches one snippet. password may be empty.
	GetSnippet(ctx context.Context, id, password string) (Snippet, error)

	// CreateSnippet stores a new snippet and returns it with its ID.
	CreateSnippet(ctx context.Context, s NewSnippet) (Snippet, error)

	// ListSnippets returns the caller's snippets.
	ListSnippets(ctx context.Context, opts ListOptions) ([]Snippet, error)

	// UpdateSnippet applies a sparse update and returns the result.
	UpdateSnippet(ctx context.Context, id string, updates Updates) (Snippet, error)

	// DeleteSnippet deletes a snippet and returns the server's message.
	DeleteSnippet(ctx context.Context, id string) (string, error)

	// SearchSnippets searches public snippets.
	SearchSnippets(ctx context.Context, term string) ([]Snippet, error)

	// UserInfo returns the profile of the token's owner.
	UserInfo(ctx context.Context) (UserProfile, error)

	// UserPublicSnippets returns a user's public snippets.
	UserPublicSnippets(ctx context.Context, userID string) ([]Snippet, error)
}
