// Package config handles the configuration directory, service URLs and the
// persisted API token.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "teaserpaste-cli"

	// ConfigFile is the JSON file holding persisted settings.
	ConfigFile = "config.json"

	// EnvFile is an optional dotenv file with URL overrides.
	EnvFile = ".env"

	// DefaultAPIBaseURL is the TeaserPaste API root.
	DefaultAPIBaseURL = "https://paste-api.teaserverse.online"

	// DefaultWebBaseURL is the TeaserPaste web UI root.
	DefaultWebBaseURL = "https://paste.teaserverse.online"

	// APIURLEnv overrides DefaultAPIBaseURL.
	APIURLEnv = "TP_API_URL"

	// WebURLEnv overrides DefaultWebBaseURL.
	WebURLEnv = "TP_WEB_URL"
)

// Config holds configuration paths and settings for one invocation.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIBaseURL is the root of the paste API.
	APIBaseURL string

	// WebBaseURL is the root used to build snippet links.
	WebBaseURL string

	// Token overrides the stored token for this run (--token).
	Token string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/teaserpaste-cli or
// $HOME/.config/teaserpaste-cli. URL overrides come from the process
// environment first, then from the .env file in the config directory.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	fileEnv, err := godotenv.Read(filepath.Join(dir, EnvFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Config{
		Dir:        dir,
		APIBaseURL: lookup(APIURLEnv, fileEnv, DefaultAPIBaseURL),
		WebBaseURL: lookup(WebURLEnv, fileEnv, DefaultWebBaseURL),
	}, nil
}

func lookup(key string, fileEnv map[string]string, def string) string {
	if v := os.Getenv(key); v != "" {
		return strings.TrimRight(v, "/")
	}
	if v := fileEnv[key]; v != "" {
		return strings.TrimRight(v, "/")
	}
	return def
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the settings file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// SnippetURL returns the web link for a snippet.
func (c *Config) SnippetURL(id string) string {
	return c.WebBaseURL + "/snippet/" + id
}
