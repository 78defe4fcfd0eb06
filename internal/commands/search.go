package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"tpaste/internal/exitcode"
	"tpaste/internal/output"
)

func init() {
	Register(&SearchCmd{})
}

// SearchCmd implements the search command.
type SearchCmd struct{}

func (c *SearchCmd) Name() string       { return "search" }
func (c *SearchCmd) Aliases() []string  { return nil }
func (c *SearchCmd) Synopsis() string   { return "Search public snippets" }
func (c *SearchCmd) Usage() string      { return "tp search <term...>" }
func (c *SearchCmd) NeedsService() bool { return true }

func (c *SearchCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SearchCmd) Run(ctx context.Context, env *Env, args []string) int {
	term := strings.TrimSpace(strings.Join(args, " "))
	if term == "" {
		return usageError(env, "search term required for 'search'")
	}

	if !env.Config.Quiet {
		fmt.Fprintf(env.Out, "Searching for %q...\n", term)
	}

	results, err := env.Service.SearchSnippets(ctx, term)
	if err != nil {
		return report(env, err)
	}

	if len(results) == 0 {
		fmt.Fprintln(env.Out, "no matching snippets found")
		return exitcode.Success
	}

	output.FormatTable(env.Out, results, output.ColID, output.ColTitle, output.ColCreator, output.ColLanguage)
	return exitcode.Success
}
