package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"tpaste/internal/apperror"
)

// PrivateTokenPrefix marks a private API credential.
const PrivateTokenPrefix = "priv_"

const tokenKey = "token"

// Store persists the API token in the settings file.
//
// Writes are read-modify-write without locking: two tp processes writing
// the same file at once can lose an update.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Get returns the stored token. A missing, unreadable or malformed file
// reads as no token.
func (s *Store) Get() (string, bool) {
	settings, err := s.load()
	if err != nil {
		return "", false
	}
	raw, ok := settings[tokenKey]
	if !ok {
		return "", false
	}
	var token string
	if err := json.Unmarshal(raw, &token); err != nil || token == "" {
		return "", false
	}
	return token, true
}

// Set validates and stores token, replacing any previous one.
func (s *Store) Set(token string) error {
	if !strings.HasPrefix(token, PrivateTokenPrefix) {
		return apperror.InvalidToken()
	}
	settings, err := s.load()
	if err != nil {
		// Start over rather than refuse to save a valid token.
		settings = map[string]json.RawMessage{}
	}
	raw, err := json.Marshal(token)
	if err != nil {
		return err
	}
	settings[tokenKey] = raw
	return s.save(settings)
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (s *Store) Clear() error {
	settings, err := s.load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		settings = map[string]json.RawMessage{}
	}
	if _, ok := settings[tokenKey]; !ok {
		return nil
	}
	delete(settings, tokenKey)
	return s.save(settings)
}

func (s *Store) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	settings := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// save writes settings with mode 0600, creating the directory with 0700.
func (s *Store) save(settings map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}
