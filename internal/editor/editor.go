// Package editor runs an external text editor on a temporary file.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"tpaste/internal/apperror"
	"tpaste/internal/prompt"
)

// Launcher starts the editor process without waiting for it.
type Launcher func(name string, args ...string) error

// Session edits text through an external editor. The user signals the end
// of editing through the prompter, not by the editor process exiting.
type Session struct {
	// TempDir holds the temporary file. Defaults to os.TempDir().
	TempDir string

	// Command is the editor command line; the file path is appended.
	Command []string

	prompter prompt.Prompter
	out      io.Writer
	log      zerolog.Logger
	launch   Launcher
}

// New creates a session using the editor named by the environment.
func New(p prompt.Prompter, out io.Writer, log zerolog.Logger) *Session {
	return &Session{
		TempDir:  os.TempDir(),
		Command:  Command(),
		prompter: p,
		out:      out,
		log:      log,
		launch:   startDetached,
	}
}

// Command returns the editor command line from $VISUAL or $EDITOR,
// falling back to notepad on Windows and vim elsewhere.
func Command() []string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(key)); len(fields) > 0 {
			return fields
		}
	}
	if runtime.GOOS == "windows" {
		return []string{"notepad"}
	}
	return []string{"vim"}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Edit writes seed to a new temporary file, opens the editor on it and
// returns the file content once the user confirms. The temporary file is
// removed on every return path.
func (s *Session) Edit(ctx context.Context, seed string) (string, error) {
	if len(s.Command) == 0 {
		return "", errors.New("no editor configured (set $EDITOR)")
	}

	path := filepath.Join(s.TempDir, "tp-editor-"+xid.New().String()+".tmp")
	if err := os.WriteFile(path, []byte(seed), 0600); err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer s.remove(path)

	args := make([]string, 0, len(s.Command))
	args = append(args, s.Command[1:]...)
	args = append(args, path)

	s.log.Debug().Str("editor", s.Command[0]).Str("file", path).Msg("launching editor")
	if err := s.launch(s.Command[0], args...); err != nil {
		return "", fmt.Errorf("launch editor %s: %w", s.Command[0], err)
	}

	fmt.Fprintln(s.out, "The editor has been opened. Save and close it when you are done.")
	done, err := s.prompter.Confirm("Press Enter when you have finished editing", true)
	if err != nil {
		return "", err
	}
	if !done {
		return "", apperror.Cancelled("editing was cancelled")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read temp file: %w", err)
	}
	return string(data), nil
}

func (s *Session) remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Err(err).Str("file", path).Msg("failed to remove temp file")
	}
}
