package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"

	"tpaste/internal/clipboard"
	"tpaste/internal/commands"
	"tpaste/internal/config"
	"tpaste/internal/editor"
	"tpaste/internal/exitcode"
	"tpaste/internal/input"
	"tpaste/internal/logging"
	"tpaste/internal/prompt"
	"tpaste/internal/service"
)

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, tokens *config.Store, log zerolog.Logger) (service.Service, error)

// EditorFactory creates the editor used by interactive create.
type EditorFactory func(p prompt.Prompter, out io.Writer, log zerolog.Logger) input.Editor

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithEditor replaces the external editor.
func WithEditor(f EditorFactory) Option {
	return func(d *Dispatcher) { d.newEditor = f }
}

// WithClipboard replaces clipboard detection.
func WithClipboard(w clipboard.Writer) Option {
	return func(d *Dispatcher) { d.clipboard = w }
}

// WithTerminalCheck replaces the check for an interactive stdin.
func WithTerminalCheck(f func(io.Reader) bool) Option {
	return func(d *Dispatcher) { d.isTerminal = f }
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry   *commands.Registry
	factory    ServiceFactory
	newEditor  EditorFactory
	clipboard  clipboard.Writer
	isTerminal func(io.Reader) bool
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry:   registry,
		factory:    factory,
		newEditor:  defaultEditor,
		isTerminal: input.IsTerminal,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func defaultEditor(p prompt.Prompter, out io.Writer, log zerolog.Logger) input.Editor {
	return editor.New(p, out, log)
}

// commonFlags are accepted before the verb and by every verb.
type commonFlags struct {
	token     string
	configDir string
	quiet     bool
	debug     bool // set from --debug, never registered
}

// register binds the flags to fs, keeping values already parsed.
func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.token, "token", c.token, "")
	fs.StringVar(&c.configDir, "config", c.configDir, "")
	fs.BoolVar(&c.quiet, "quiet", c.quiet, "")
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) (code int) {
	args, debugMode := extractDebug(args)
	log := logging.New(errOut, debugMode)

	defer func() {
		if r := recover(); r != nil {
			log.Debug().Interface("panic", r).Str("stack", string(debug.Stack())).Msg("recovered")
			fmt.Fprintf(errOut, "❌ Fatal error: %v\n", r)
			code = exitcode.UserError
		}
	}()

	if len(args) == 0 || hasFlag(args, "-h", "-help", "--help") {
		commands.WriteHelp(out, d.registry)
		return exitcode.Success
	}
	if hasFlag(args, "-v", "--version") {
		fmt.Fprintf(out, "tp %s\n", commands.Version)
		return exitcode.Success
	}

	common := commonFlags{debug: debugMode}
	global := flag.NewFlagSet("tp", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	common.register(global)
	if err := global.Parse(args); err != nil {
		return flagError(errOut, err)
	}

	rest := global.Args()
	if len(rest) == 0 {
		commands.WriteHelp(out, d.registry)
		return exitcode.Success
	}

	cmdName := rest[0]
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "❌ Error: unknown command: %s\n\n", cmdName)
		commands.WriteHelp(errOut, d.registry)
		return exitcode.UserError
	}

	log.Debug().Str("command", cmd.Name()).Strs("args", rest[1:]).Msg("dispatching")
	return d.dispatchCommand(ctx, cmd, rest[1:], common, log, in, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, common commonFlags, log zerolog.Logger, in io.Reader, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	common.register(fs)
	cmd.RegisterFlags(fs)

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			commands.WriteHelp(out, d.registry)
			return exitcode.Success
		}
		return flagError(errOut, err)
	}

	cfg, err := config.New(common.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "❌ Error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Token = common.token
	cfg.Quiet = common.quiet
	cfg.Debug = common.debug
	tokens := config.NewStore(cfg.ConfigPath())

	log.Debug().Str("config", cfg.Dir).Str("api", cfg.APIBaseURL).Bool("token_override", cfg.Token != "").Msg("config loaded")

	var svc service.Service
	if cmd.NeedsService() {
		if d.factory == nil {
			fmt.Fprintln(errOut, "❌ Error: no service configured")
			return exitcode.BackendError
		}
		svc, err = d.factory(ctx, cfg, tokens, log)
		if err != nil {
			fmt.Fprintf(errOut, "❌ Error: %s\n", err)
			return exitcode.BackendError
		}
	}

	p := prompt.NewLine(in, out)
	env := &commands.Env{
		Config:       cfg,
		Service:      svc,
		Tokens:       tokens,
		In:           in,
		InIsTerminal: d.isTerminal(in),
		Out:          out,
		ErrOut:       errOut,
		Prompter:     p,
		Editor:       d.newEditor(p, out, log),
		Clipboard:    d.clipboardWriter(),
		Log:          log,
	}

	return cmd.Run(ctx, env, positional)
}

func (d *Dispatcher) clipboardWriter() clipboard.Writer {
	if d.clipboard != nil {
		return d.clipboard
	}
	return clipboard.Detect()
}

// parseInterspersed parses flags that may appear between positionals.
// Everything after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var tail []string
	for i, arg := range args {
		if arg == "--" {
			args, tail = args[:i], args[i+1:]
			break
		}
	}

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
	return append(positional, tail...), nil
}

// flagError reports a flag parse failure.
func flagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	// Check for missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "❌ Error: flag needs an argument: %s\n", flagName)
		return exitcode.UserError
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		fmt.Fprintf(errOut, "❌ Error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "❌ Error: %s\n", errStr)
	return exitcode.UserError
}

// extractDebug removes every --debug token before "--".
func extractDebug(args []string) ([]string, bool) {
	found := false
	kept := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			kept = append(kept, args[i:]...)
			break
		}
		if arg == "--debug" || arg == "-debug" {
			found = true
			continue
		}
		kept = append(kept, arg)
	}
	return kept, found
}

// hasFlag reports whether any of names appears before "--".
func hasFlag(args []string, names ...string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		for _, name := range names {
			if arg == name {
				return true
			}
		}
	}
	return false
}
