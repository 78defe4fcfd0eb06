// Package main is the entry point for the tp CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"tpaste/internal/backend/teaserpaste"
	"tpaste/internal/cli"
	"tpaste/internal/commands"
	"tpaste/internal/config"
	"tpaste/internal/exitcode"
	"tpaste/internal/service"
)

func main() {
	// An interrupt ends the run at once, whatever the command is doing.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stdout, "\nOperation cancelled. Goodbye!")
		os.Exit(exitcode.Success)
	}()

	factory := func(ctx context.Context, cfg *config.Config, tokens *config.Store, log zerolog.Logger) (service.Service, error) {
		return teaserpaste.New(cfg, tokens, log), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
