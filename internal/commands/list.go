package commands

import (
	"context"
	"flag"
	"fmt"

	"tpaste/internal/exitcode"
	"tpaste/internal/output"
	"tpaste/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	limit      int
	visibility string
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return nil }
func (c *ListCmd) Synopsis() string  { return "List your snippets" }
func (c *ListCmd) Usage() string {
	return "tp list [--limit <n>] [--visibility <public|unlisted|private>]"
}
func (c *ListCmd) NeedsService() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.limit, "limit", service.DefaultListLimit, "")
	fs.StringVar(&c.visibility, "visibility", "", "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		return usageError(env, "unexpected argument: %s", args[0])
	}
	if c.limit < 1 {
		return usageError(env, "invalid limit: %d (must be at least 1)", c.limit)
	}
	if c.visibility != "" && !service.ValidVisibility(c.visibility) {
		return usageError(env, "invalid visibility: %s (use public, unlisted or private)", c.visibility)
	}

	snippets, err := env.Service.ListSnippets(ctx, service.ListOptions{
		Limit:      c.limit,
		Visibility: c.visibility,
	})
	if err != nil {
		return report(env, err)
	}

	if len(snippets) == 0 {
		if !env.Config.Quiet {
			fmt.Fprintln(env.Out, "no snippets found")
		}
		return exitcode.Success
	}

	output.FormatTable(env.Out, snippets, output.ColID, output.ColTitle, output.ColVisibility, output.ColLanguage)
	return exitcode.Success
}
