package commands

import (
	"context"
	"flag"
	"fmt"

	"tpaste/internal/exitcode"
)

func init() {
	Register(&ConfigCmd{})
}

const configUsage = "usage: tp config <set|get|clear> token [value]"

// ConfigCmd implements the config command.
type ConfigCmd struct{}

func (c *ConfigCmd) Name() string       { return "config" }
func (c *ConfigCmd) Aliases() []string  { return nil }
func (c *ConfigCmd) Synopsis() string   { return "Manage the stored private token" }
func (c *ConfigCmd) Usage() string      { return "tp config <set|get|clear> token [value]" }
func (c *ConfigCmd) NeedsService() bool { return false }

func (c *ConfigCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ConfigCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(env.ErrOut, configUsage)
		return exitcode.UserError
	}
	action := args[0]
	if len(args) < 2 {
		return usageError(env, "config key required (only 'token' is supported)")
	}
	if key := args[1]; key != "token" {
		return usageError(env, "unknown config key: %s (only 'token' is supported)", key)
	}

	switch action {
	case "set":
		if len(args) < 3 || args[2] == "" {
			return usageError(env, "token value required: tp config set token <your_private_token>")
		}
		if err := env.Tokens.Set(args[2]); err != nil {
			return report(env, err)
		}
		if !env.Config.Quiet {
			fmt.Fprintln(env.Out, "✅ Token saved.")
		}
	case "get":
		token, ok := env.Tokens.Get()
		if !ok {
			fmt.Fprintln(env.Out, "no token set")
			return exitcode.Success
		}
		fmt.Fprintf(env.Out, "🔑 Current token: %s\n", token)
	case "clear":
		if err := env.Tokens.Clear(); err != nil {
			return report(env, err)
		}
		if !env.Config.Quiet {
			fmt.Fprintln(env.Out, "✅ Token cleared.")
		}
	default:
		return usageError(env, "invalid config action: %s (use set, get or clear)", action)
	}
	return exitcode.Success
}
