package commands

import (
	"context"
	"flag"
	"fmt"

	"tpaste/internal/exitcode"
	"tpaste/internal/input"
	"tpaste/internal/output"
)

func init() {
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update command.
type UpdateCmd struct {
	fs     *flag.FlagSet
	fields map[string]*string
}

func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return nil }
func (c *UpdateCmd) Synopsis() string  { return "Change fields of a snippet" }
func (c *UpdateCmd) Usage() string {
	return "tp update <id> [--title <t>] [--content <c> | -f <path>] [--language <l>] [--visibility <v>] [--password <p>] [--tags <a,b>]"
}
func (c *UpdateCmd) NeedsService() bool { return true }

func (c *UpdateCmd) RegisterFlags(fs *flag.FlagSet) {
	c.fs = fs
	c.fields = make(map[string]*string, len(input.UpdateFields))
	for _, name := range input.UpdateFields {
		c.fields[name] = fs.String(name, "", "")
	}
	fs.StringVar(c.fields["file"], "f", "", "")
}

func (c *UpdateCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) == 0 {
		return usageError(env, "snippet id required for 'update'")
	}
	id := args[0]

	set := updateFlags(flagsSet(c.fs))
	updates, err := env.Resolver().ResolveUpdate(set)
	if err != nil {
		return report(env, err)
	}

	s, err := env.Service.UpdateSnippet(ctx, id, updates)
	if err != nil {
		return report(env, err)
	}

	if !env.Config.Quiet {
		fmt.Fprintln(env.Out, "✅ Snippet updated!")
		output.FormatSnippet(env.Out, s)
	}
	return exitcode.Success
}

// updateFlags keeps only snippet fields and folds -f into --file.
func updateFlags(set map[string]string) map[string]string {
	fields := make(map[string]string)
	for _, name := range input.UpdateFields {
		if v, ok := set[name]; ok {
			fields[name] = v
		}
	}
	if v, ok := set["f"]; ok {
		fields["file"] = v
	}
	return fields
}
