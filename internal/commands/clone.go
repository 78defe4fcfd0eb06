package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tpaste/internal/exitcode"
	"tpaste/internal/lang"
)

func init() {
	Register(&CloneCmd{})
}

// CloneCmd implements the clone command.
type CloneCmd struct {
	password string
	dir      string
}

func (c *CloneCmd) Name() string      { return "clone" }
func (c *CloneCmd) Aliases() []string { return nil }
func (c *CloneCmd) Synopsis() string  { return "Save a snippet to a local file" }
func (c *CloneCmd) Usage() string {
	return "tp clone [--password <p>] [--dir <dir>] <id> [filename]"
}
func (c *CloneCmd) NeedsService() bool { return true }

func (c *CloneCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.dir, "dir", ".", "")
}

func (c *CloneCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) == 0 {
		return usageError(env, "snippet id required for 'clone'")
	}
	id := args[0]

	s, err := env.Service.GetSnippet(ctx, id, c.password)
	if err != nil {
		return report(env, err)
	}

	ext := lang.ExtensionFor(s.Language)
	var base string
	if len(args) > 1 {
		base = args[1]
		if userExt := filepath.Ext(base); userExt != "" {
			if !strings.EqualFold(userExt, ext) {
				fmt.Fprintf(env.ErrOut, "⚠️ Warning: extension %q does not match language %q, saving with %q\n",
					userExt, s.Language, ext)
			}
			base = strings.TrimSuffix(base, userExt)
		}
	} else {
		base = lang.SanitizeFilename(s.Title)
	}

	dir := c.dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, base+ext)
	env.Log.Debug().Str("id", id).Str("path", path).Msg("clone: writing file")

	if err := os.WriteFile(path, []byte(s.Content), 0o644); err != nil {
		return report(env, fmt.Errorf("write %s: %w", path, err))
	}

	if !env.Config.Quiet {
		fmt.Fprintf(env.Out, "✅ Snippet saved to file: %s\n", path)
	}
	return exitcode.Success
}
