package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tpaste/internal/clipboard"
	"tpaste/internal/exitcode"
	"tpaste/internal/output"
)

func init() {
	Register(&ViewCmd{})
}

// ViewCmd implements the view command.
type ViewCmd struct {
	raw      bool
	copy     bool
	url      bool
	password string
}

func (c *ViewCmd) Name() string      { return "view" }
func (c *ViewCmd) Aliases() []string { return nil }
func (c *ViewCmd) Synopsis() string  { return "Show a snippet" }
func (c *ViewCmd) Usage() string {
	return "tp view [--raw | --copy | --url] [--password <p>] <id>"
}
func (c *ViewCmd) NeedsService() bool { return true }

func (c *ViewCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.raw, "raw", false, "")
	fs.BoolVar(&c.copy, "copy", false, "")
	fs.BoolVar(&c.url, "url", false, "")
	fs.StringVar(&c.password, "password", "", "")
}

// Run prints the snippet. --url wins over --raw, which wins over --copy.
func (c *ViewCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) == 0 {
		return usageError(env, "snippet id required for 'view'")
	}
	id := args[0]

	if c.url {
		fmt.Fprintln(env.Out, env.Config.SnippetURL(id))
		return exitcode.Success
	}

	s, err := env.Service.GetSnippet(ctx, id, c.password)
	if err != nil {
		return report(env, err)
	}

	switch {
	case c.raw:
		io.WriteString(env.Out, s.Content)
	case c.copy:
		if env.Clipboard == nil {
			return report(env, clipboard.ErrNoBackend)
		}
		if err := env.Clipboard.Copy(s.Content); err != nil {
			return report(env, fmt.Errorf("copy to clipboard: %w", err))
		}
		if !env.Config.Quiet {
			fmt.Fprintln(env.Out, "✅ Snippet content copied to clipboard!")
		}
	default:
		output.FormatSnippet(env.Out, s)
	}
	return exitcode.Success
}
