// Package clipboard writes text to the system clipboard through the
// platform's copy command.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Writer copies text to a clipboard.
type Writer interface {
	Copy(text string) error
}

// Kind names the detected clipboard mechanism.
type Kind string

const (
	KindDarwin  Kind = "darwin-pbcopy"
	KindWayland Kind = "wayland-wl-copy"
	KindX11     Kind = "x11"
	KindWindows Kind = "windows-clip"
	KindUnknown Kind = "unknown"
)

// ErrNoBackend is returned when no copy command is available.
var ErrNoBackend = errors.New("no clipboard backend available")

// Backend is a command-backed clipboard.
type Backend struct {
	Kind    Kind
	CopyCmd []string
}

// Detect picks the copy command for the current platform.
func Detect() *Backend {
	switch runtime.GOOS {
	case "darwin":
		return &Backend{Kind: KindDarwin, CopyCmd: []string{"pbcopy"}}
	case "windows":
		return &Backend{Kind: KindWindows, CopyCmd: []string{"clip"}}
	}

	if os.Getenv("WAYLAND_DISPLAY") != "" && hasCmd("wl-copy") {
		return &Backend{Kind: KindWayland, CopyCmd: []string{"wl-copy"}}
	}
	if os.Getenv("DISPLAY") != "" {
		if hasCmd("xclip") {
			return &Backend{Kind: KindX11, CopyCmd: []string{"xclip", "-selection", "clipboard"}}
		}
		if hasCmd("xsel") {
			return &Backend{Kind: KindX11, CopyCmd: []string{"xsel", "--clipboard", "--input"}}
		}
	}
	// WSL exposes the Windows clipboard through clip.exe.
	if hasCmd("clip.exe") {
		return &Backend{Kind: KindWindows, CopyCmd: []string{"clip.exe"}}
	}
	return &Backend{Kind: KindUnknown}
}

// Copy pipes text into the copy command.
func (b *Backend) Copy(text string) error {
	if len(b.CopyCmd) == 0 {
		return fmt.Errorf("%w: install wl-clipboard, xclip or xsel", ErrNoBackend)
	}
	cmd := exec.Command(b.CopyCmd[0], b.CopyCmd[1:]...)
	cmd.Stdin = bytes.NewReader([]byte(text))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("%s: %w: %s", b.CopyCmd[0], err, bytes.TrimSpace(stderr.Bytes()))
		}
		return fmt.Errorf("%s: %w", b.CopyCmd[0], err)
	}
	return nil
}

func hasCmd(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
