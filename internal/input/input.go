// Package input resolves where snippet data comes from: prompts, files,
// piped standard input or flags.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"tpaste/internal/apperror"
	"tpaste/internal/lang"
	"tpaste/internal/prompt"
	"tpaste/internal/service"
)

// Content source choices offered in interactive mode.
const (
	SourceEditor = "Write in editor"
	SourceFile   = "Load from file"
)

// Editor returns text edited by the user.
type Editor interface {
	Edit(ctx context.Context, seed string) (string, error)
}

// CreateFlags are the create command's flag values.
type CreateFlags struct {
	Interactive bool
	File        string
	Title       string
	Content     string
	Language    string
	Visibility  string
	Password    string
	Tags        string
	Expires     string

	// ContentSet and LanguageSet report whether the flag was given at all.
	ContentSet  bool
	LanguageSet bool
}

// Resolver builds create and update payloads.
type Resolver struct {
	Prompter        prompt.Prompter
	Editor          Editor
	Stdin           io.Reader
	StdinIsTerminal bool
	Out             io.Writer
	Log             zerolog.Logger
}

// IsTerminal reports whether r is an interactive terminal.
// Readers without a file descriptor count as piped input.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SplitTags turns "a, b,,c" into [a b c]. The result is never nil.
func SplitTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ResolveCreate produces the create payload. Sources are tried in order:
// interactive prompts, --file, piped stdin (only without --content), flags.
func (r *Resolver) ResolveCreate(ctx context.Context, f CreateFlags) (service.NewSnippet, error) {
	var (
		s    service.NewSnippet
		tags string
		err  error
	)

	switch {
	case f.Interactive:
		r.Log.Debug().Msg("create: interactive mode")
		s, tags, err = r.interactive(ctx)
		if err != nil {
			return service.NewSnippet{}, err
		}

	case f.File != "":
		r.Log.Debug().Str("file", f.File).Msg("create: content from file")
		content, err := readFile(f.File)
		if err != nil {
			return service.NewSnippet{}, err
		}
		s = fromFlags(f)
		s.Content = content
		if !f.LanguageSet {
			s.Language = lang.LanguageFor(filepath.Ext(f.File))
		}
		tags = f.Tags

	case !r.StdinIsTerminal && !f.ContentSet:
		r.Log.Debug().Msg("create: content from stdin")
		content, err := r.readStdin()
		if err != nil {
			return service.NewSnippet{}, err
		}
		s = fromFlags(f)
		s.Content = content
		tags = f.Tags

	default:
		if f.Title == "" || f.Content == "" {
			return service.NewSnippet{}, apperror.Validation("title",
				"--title and --content are required. Use -i (interactive) or --file <path>.")
		}
		s = fromFlags(f)
		tags = f.Tags
	}

	s.Tags = SplitTags(tags)
	return finalize(s)
}

func fromFlags(f CreateFlags) service.NewSnippet {
	return service.NewSnippet{
		Title:      f.Title,
		Content:    f.Content,
		Language:   f.Language,
		Visibility: f.Visibility,
		Password:   f.Password,
		Expires:    f.Expires,
	}
}

// finalize applies defaults and checks the payload.
func finalize(s service.NewSnippet) (service.NewSnippet, error) {
	if strings.TrimSpace(s.Title) == "" {
		s.Title = service.DefaultTitle
	}
	if s.Language == "" {
		s.Language = service.DefaultLanguage
	}
	if s.Visibility == "" {
		s.Visibility = service.DefaultVisibility
	}
	if !service.ValidVisibility(s.Visibility) {
		return service.NewSnippet{}, invalidVisibility(s.Visibility)
	}
	// A password only protects unlisted snippets.
	if s.Visibility != service.VisibilityUnlisted {
		s.Password = ""
	}
	if s.Content == "" {
		return service.NewSnippet{}, apperror.Validation("content", "snippet content is empty")
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	return s, nil
}

func invalidVisibility(v string) error {
	return apperror.Validation("visibility",
		fmt.Sprintf("invalid visibility %q (want one of: %s)", v, strings.Join(service.Visibilities, ", ")))
}

func (r *Resolver) interactive(ctx context.Context) (service.NewSnippet, string, error) {
	var s service.NewSnippet
	var err error

	if s.Title, err = r.Prompter.Input("Snippet title:", service.DefaultTitle); err != nil {
		return s, "", err
	}
	if s.Language, err = r.Prompter.Input("Language:", service.DefaultLanguage); err != nil {
		return s, "", err
	}
	if s.Visibility, err = r.Prompter.Select("Visibility:", service.Visibilities, 0); err != nil {
		return s, "", err
	}
	if s.Visibility == service.VisibilityUnlisted {
		if s.Password, err = r.Prompter.Input("Password (optional):", ""); err != nil {
			return s, "", err
		}
	}
	tags, err := r.Prompter.Input("Tags (comma separated):", "")
	if err != nil {
		return s, "", err
	}
	if s.Expires, err = r.Prompter.Input("Expires in (e.g. 1h, 7d, 2w; empty for never):", ""); err != nil {
		return s, "", err
	}
	source, err := r.Prompter.Select("Content source:", []string{SourceEditor, SourceFile}, 0)
	if err != nil {
		return s, "", err
	}

	if source == SourceFile {
		path, err := r.Prompter.Input("Path to file:", "")
		if err != nil {
			return s, "", err
		}
		if path == "" {
			return s, "", apperror.Validation("file", "file path required")
		}
		if s.Content, err = readFile(path); err != nil {
			return s, "", err
		}
		fileLang := lang.LanguageFor(filepath.Ext(path))
		if fileLang != lang.DefaultLanguage && fileLang != s.Language {
			q := fmt.Sprintf("Language is '%s' but the file looks like '%s'. Switch to '%s'?", s.Language, fileLang, fileLang)
			switchLang, err := r.Prompter.Confirm(q, true)
			if err != nil {
				return s, "", err
			}
			if switchLang {
				s.Language = fileLang
			}
		}
		return s, tags, nil
	}

	if r.Editor == nil {
		return s, "", errors.New("no editor available")
	}
	fmt.Fprintln(r.Out, "Opening your editor...")
	if s.Content, err = r.Editor.Edit(ctx, ""); err != nil {
		return s, "", err
	}
	return s, tags, nil
}

func (r *Resolver) readStdin() (string, error) {
	data, err := io.ReadAll(r.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRightFunc(string(data), unicode.IsSpace), nil
}

// Update flag names accepted by ResolveUpdate.
var UpdateFields = []string{"title", "content", "language", "visibility", "password", "tags", "file"}

// ResolveUpdate builds a sparse update from the flags that were set.
// A --file value replaces --content.
func (r *Resolver) ResolveUpdate(set map[string]string) (service.Updates, error) {
	updates := service.Updates{}
	for name, value := range set {
		switch name {
		case "file":
			content, err := readFile(value)
			if err != nil {
				return nil, err
			}
			updates["content"] = content
		case "content":
			if _, fromFile := set["file"]; !fromFile {
				updates["content"] = value
			}
		case "tags":
			updates["tags"] = SplitTags(value)
		case "visibility":
			if !service.ValidVisibility(value) {
				return nil, invalidVisibility(value)
			}
			updates["visibility"] = value
		case "title", "language", "password":
			updates[name] = value
		default:
			r.Log.Debug().Str("flag", name).Msg("update: ignoring flag")
		}
	}
	if len(updates) == 0 {
		return nil, apperror.Validation("", `at least one field to update is required (e.g. --title "New title")`)
	}
	return updates, nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperror.FileNotFound(path)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
