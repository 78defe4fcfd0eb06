package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"tpaste/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "tp help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string) int {
	WriteHelp(env.Out, DefaultRegistry)
	return exitcode.Success
}

// WriteHelp prints the usage text followed by one line per registered verb.
func WriteHelp(w io.Writer, r *Registry) {
	fmt.Fprint(w, HelpText)
	fmt.Fprintln(w, "\nCommands:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cmd := range r.All() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Name(), cmd.Synopsis())
	}
	tw.Flush()
}

// HelpText is the top-level usage message.
const HelpText = `Usage:
  tp view [common flags] [--raw | --copy | --url] [--password <p>] <id>
  tp clone [common flags] [--password <p>] [--dir <dir>] <id> [filename]
  tp list [common flags] [--limit <n>] [--visibility <v>]
  tp create [common flags] -i
  tp create [common flags] -f <path> [snippet flags]
  tp create [common flags] --title <t> --content <c> [snippet flags]
  tp update [common flags] <id> [snippet flags] [-f <path>]
  tp delete [common flags] [-y] <id>
  tp search [common flags] <term...>
  tp user view [common flags] [-s]
  tp config set token <your_private_token>
  tp config get token
  tp config clear token
  tp help
  tp version

Snippet flags:
  --title <t>         Snippet title (default "Untitled")
  --content <c>       Snippet content (or pipe it on stdin)
  --language <l>      Language (default "plaintext")
  --visibility <v>    public, unlisted or private (default "unlisted")
  --password <p>      Password, unlisted snippets only
  --tags <a,b>        Comma-separated tags
  --expires <time>    Expiry timestamp (create only)

Common flags:
  --token <t>      Private token for this call only
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
