package commands

import (
	"context"
	"flag"
	"fmt"

	"tpaste/internal/exitcode"
	"tpaste/internal/output"
)

func init() {
	Register(&UserCmd{})
}

// UserCmd implements the user command.
type UserCmd struct {
	snippets bool
}

func (c *UserCmd) Name() string       { return "user" }
func (c *UserCmd) Aliases() []string  { return nil }
func (c *UserCmd) Synopsis() string   { return "Show your profile" }
func (c *UserCmd) Usage() string      { return "tp user view [-s]" }
func (c *UserCmd) NeedsService() bool { return true }

func (c *UserCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.snippets, "snippets", false, "")
	fs.BoolVar(&c.snippets, "s", false, "")
}

func (c *UserCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) == 0 {
		return usageError(env, "subcommand required for 'user' (try: tp user view)")
	}
	if args[0] != "view" {
		return usageError(env, "unknown subcommand for 'user': %s", args[0])
	}

	u, err := env.Service.UserInfo(ctx)
	if err != nil {
		return report(env, err)
	}
	output.FormatUser(env.Out, u)

	if !c.snippets {
		return exitcode.Success
	}

	if !env.Config.Quiet {
		fmt.Fprintf(env.Out, "\nLoading public snippets of %s...\n", u.DisplayName)
	}
	snippets, err := env.Service.UserPublicSnippets(ctx, u.UserID)
	if err != nil {
		return report(env, err)
	}
	if len(snippets) == 0 {
		fmt.Fprintln(env.Out, "this user has no public snippets")
		return exitcode.Success
	}
	output.FormatTable(env.Out, snippets, output.ColID, output.ColTitle, output.ColLanguage)
	return exitcode.Success
}
