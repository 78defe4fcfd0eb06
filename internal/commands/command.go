// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"tpaste/internal/clipboard"
	"tpaste/internal/config"
	"tpaste/internal/input"
	"tpaste/internal/prompt"
	"tpaste/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsService returns true if the command talks to the API.
	// Commands like help, version and config return false.
	NeedsService() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// env.Service is nil if NeedsService() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string) int
}

// Env is everything a command may use during one invocation.
type Env struct {
	Config  *config.Config
	Service service.Service
	Tokens  *config.Store

	In           io.Reader
	InIsTerminal bool
	Out          io.Writer
	ErrOut       io.Writer

	Prompter  prompt.Prompter
	Editor    input.Editor
	Clipboard clipboard.Writer

	Log zerolog.Logger
}

// Resolver returns an input resolver bound to this environment.
func (e *Env) Resolver() *input.Resolver {
	return &input.Resolver{
		Prompter:        e.Prompter,
		Editor:          e.Editor,
		Stdin:           e.In,
		StdinIsTerminal: e.InIsTerminal,
		Out:             e.Out,
		Log:             e.Log,
	}
}

// flagsSet returns the flags that were given on the command line, by name.
func flagsSet(fs *flag.FlagSet) map[string]string {
	set := map[string]string{}
	if fs == nil {
		return set
	}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = f.Value.String()
	})
	return set
}
