package commands

import (
	"context"
	"flag"
	"fmt"

	"tpaste/internal/exitcode"
	"tpaste/internal/input"
)

func init() {
	Register(&CreateCmd{})
}

// CreateCmd implements the create command.
type CreateCmd struct {
	fs    *flag.FlagSet
	flags input.CreateFlags
}

func (c *CreateCmd) Name() string      { return "create" }
func (c *CreateCmd) Aliases() []string { return nil }
func (c *CreateCmd) Synopsis() string  { return "Create a snippet" }
func (c *CreateCmd) Usage() string {
	return "tp create [-i | -f <path> | --title <t> --content <c>] [snippet flags]"
}
func (c *CreateCmd) NeedsService() bool { return true }

func (c *CreateCmd) RegisterFlags(fs *flag.FlagSet) {
	c.fs = fs
	c.flags = input.CreateFlags{}
	fs.BoolVar(&c.flags.Interactive, "interactive", false, "")
	fs.BoolVar(&c.flags.Interactive, "i", false, "")
	fs.StringVar(&c.flags.File, "file", "", "")
	fs.StringVar(&c.flags.File, "f", "", "")
	fs.StringVar(&c.flags.Title, "title", "", "")
	fs.StringVar(&c.flags.Content, "content", "", "")
	fs.StringVar(&c.flags.Language, "language", "", "")
	fs.StringVar(&c.flags.Visibility, "visibility", "", "")
	fs.StringVar(&c.flags.Password, "password", "", "")
	fs.StringVar(&c.flags.Tags, "tags", "", "")
	fs.StringVar(&c.flags.Expires, "expires", "", "")
}

func (c *CreateCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		return usageError(env, "unexpected argument: %s", args[0])
	}

	set := flagsSet(c.fs)
	f := c.flags
	_, f.ContentSet = set["content"]
	_, f.LanguageSet = set["language"]

	snippet, err := env.Resolver().ResolveCreate(ctx, f)
	if err != nil {
		return report(env, err)
	}

	created, err := env.Service.CreateSnippet(ctx, snippet)
	if err != nil {
		return report(env, err)
	}

	if env.Config.Quiet {
		fmt.Fprintln(env.Out, created.ID)
		return exitcode.Success
	}
	fmt.Fprintf(env.Out, "✅ Snippet created! ID: %s\n", created.ID)
	return exitcode.Success
}
