// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"tpaste/internal/apperror"
	"tpaste/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu        sync.RWMutex
	snippets  []service.Snippet
	passwords map[string]string // snippet ID -> password
	user      service.UserProfile
	public    map[string][]service.Snippet // user ID -> public snippets
	nextID    int

	// Recorded calls
	Calls      []string
	LastCreate service.NewSnippet
	LastList   service.ListOptions
	LastUpdate service.Updates

	// Error injection for testing
	GetSnippetErr    error
	CreateSnippetErr error
	ListSnippetsErr  error
	UpdateSnippetErr error
	DeleteSnippetErr error
	SearchErr        error
	UserInfoErr      error
	PublicErr        error
}

// NewFakeService creates an empty FakeService with a default user.
func NewFakeService() *FakeService {
	return &FakeService{
		passwords: make(map[string]string),
		public:    make(map[string][]service.Snippet),
		user:      service.UserProfile{UserID: "user-1", DisplayName: "Test User"},
	}
}

// AddSnippet stores a snippet.
func (f *FakeService) AddSnippet(s service.Snippet) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snippets = append(f.snippets, s)
}

// Protect requires password to read the snippet with the given ID.
func (f *FakeService) Protect(id, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.passwords[id] = password
}

// SetUser sets the profile returned by UserInfo.
func (f *FakeService) SetUser(u service.UserProfile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = u
}

// AddPublicSnippet adds a snippet to a user's public list.
func (f *FakeService) AddPublicSnippet(userID string, s service.Snippet) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.public[userID] = append(f.public[userID], s)
}

// Snippets returns a copy of the stored snippets.
func (f *FakeService) Snippets() []service.Snippet {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Snippet, len(f.snippets))
	copy(result, f.snippets)
	return result
}

func (f *FakeService) record(call string) {
	f.Calls = append(f.Calls, call)
}

func (f *FakeService) find(id string) (int, bool) {
	for i, s := range f.snippets {
		if s.ID == id {
			return i, true
		}
	}
	return -1, false
}

// GetSnippet implements service.Service.
func (f *FakeService) GetSnippet(ctx context.Context, id, password string) (service.Snippet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetSnippet")
	if f.GetSnippetErr != nil {
		return service.Snippet{}, f.GetSnippetErr
	}
	i, ok := f.find(id)
	if !ok {
		return service.Snippet{}, apperror.Server(404, "snippet not found")
	}
	if want, locked := f.passwords[id]; locked && want != password {
		return service.Snippet{}, apperror.PasswordRequired(403)
	}
	return f.snippets[i], nil
}

// CreateSnippet implements service.Service.
func (f *FakeService) CreateSnippet(ctx context.Context, s service.NewSnippet) (service.Snippet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateSnippet")
	f.LastCreate = s
	if f.CreateSnippetErr != nil {
		return service.Snippet{}, f.CreateSnippetErr
	}
	f.nextID++
	created := service.Snippet{
		ID:          fmt.Sprintf("snip%d", f.nextID),
		Title:       s.Title,
		Content:     s.Content,
		Language:    s.Language,
		Visibility:  s.Visibility,
		Tags:        s.Tags,
		CreatorName: f.user.DisplayName,
	}
	f.snippets = append(f.snippets, created)
	if s.Password != "" {
		f.passwords[created.ID] = s.Password
	}
	return created, nil
}

// ListSnippets implements service.Service.
func (f *FakeService) ListSnippets(ctx context.Context, opts service.ListOptions) ([]service.Snippet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListSnippets")
	f.LastList = opts
	if f.ListSnippetsErr != nil {
		return nil, f.ListSnippetsErr
	}
	var result []service.Snippet
	for _, s := range f.snippets {
		if opts.Visibility != "" && s.Visibility != opts.Visibility {
			continue
		}
		if opts.Limit > 0 && len(result) >= opts.Limit {
			break
		}
		result = append(result, s)
	}
	return result, nil
}

// UpdateSnippet implements service.Service.
func (f *FakeService) UpdateSnippet(ctx context.Context, id string, updates service.Updates) (service.Snippet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateSnippet")
	f.LastUpdate = updates
	if f.UpdateSnippetErr != nil {
		return service.Snippet{}, f.UpdateSnippetErr
	}
	i, ok := f.find(id)
	if !ok {
		return service.Snippet{}, apperror.Server(404, "snippet not found")
	}
	s := &f.snippets[i]
	for field, value := range updates {
		switch field {
		case "title":
			s.Title, _ = value.(string)
		case "content":
			s.Content, _ = value.(string)
		case "language":
			s.Language, _ = value.(string)
		case "visibility":
			s.Visibility, _ = value.(string)
		case "tags":
			s.Tags, _ = value.([]string)
		case "password":
			f.passwords[id], _ = value.(string)
		}
	}
	return *s, nil
}

// DeleteSnippet implements service.Service.
func (f *FakeService) DeleteSnippet(ctx context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteSnippet")
	if f.DeleteSnippetErr != nil {
		return "", f.DeleteSnippetErr
	}
	i, ok := f.find(id)
	if !ok {
		return "", apperror.Server(404, "snippet not found")
	}
	f.snippets = append(f.snippets[:i], f.snippets[i+1:]...)
	return "Snippet deleted successfully.", nil
}

// SearchSnippets implements service.Service.
// Matches public snippets whose title or content contains term.
func (f *FakeService) SearchSnippets(ctx context.Context, term string) ([]service.Snippet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SearchSnippets")
	if f.SearchErr != nil {
		return nil, f.SearchErr
	}
	term = strings.ToLower(term)
	var result []service.Snippet
	for _, s := range f.snippets {
		if s.Visibility != service.VisibilityPublic {
			continue
		}
		if strings.Contains(strings.ToLower(s.Title), term) || strings.Contains(strings.ToLower(s.Content), term) {
			result = append(result, s)
		}
	}
	return result, nil
}

// UserInfo implements service.Service.
func (f *FakeService) UserInfo(ctx context.Context) (service.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UserInfo")
	if f.UserInfoErr != nil {
		return service.UserProfile{}, f.UserInfoErr
	}
	return f.user, nil
}

// UserPublicSnippets implements service.Service.
func (f *FakeService) UserPublicSnippets(ctx context.Context, userID string) ([]service.Snippet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UserPublicSnippets")
	if f.PublicErr != nil {
		return nil, f.PublicErr
	}
	return append([]service.Snippet(nil), f.public[userID]...), nil
}
