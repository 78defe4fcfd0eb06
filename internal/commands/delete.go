package commands

import (
	"context"
	"flag"
	"fmt"

	"tpaste/internal/exitcode"
)

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct {
	yes bool
}

func (c *DeleteCmd) Name() string       { return "delete" }
func (c *DeleteCmd) Aliases() []string  { return nil }
func (c *DeleteCmd) Synopsis() string   { return "Delete a snippet" }
func (c *DeleteCmd) Usage() string      { return "tp delete [-y] <id>" }
func (c *DeleteCmd) NeedsService() bool { return true }

func (c *DeleteCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *DeleteCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) == 0 {
		return usageError(env, "snippet id required for 'delete'")
	}
	id := args[0]

	if !c.yes {
		ok, err := env.Prompter.Confirm(fmt.Sprintf("Delete snippet '%s'?", id), false)
		if err != nil {
			return report(env, err)
		}
		if !ok {
			fmt.Fprintln(env.Out, "deletion cancelled")
			return exitcode.Success
		}
	}

	msg, err := env.Service.DeleteSnippet(ctx, id)
	if err != nil {
		return report(env, err)
	}
	if msg == "" {
		msg = "Snippet deleted."
	}

	if !env.Config.Quiet {
		fmt.Fprintf(env.Out, "✅ %s\n", msg)
	}
	return exitcode.Success
}
