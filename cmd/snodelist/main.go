// Package main is the entry point for snodelist.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/snodelist/cmd/snodelist/commands"
	"go.trai.ch/snodelist/internal/app"
	_ "go.trai.ch/snodelist/internal/wiring"
)

// exitInvalid is the exit status for every failure, matching EINVAL.
const exitInvalid = int(syscall.EINVAL)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// outputSetter is implemented by loggers with a configurable destination.
type outputSetter interface {
	SetOutput(w io.Writer)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr,
		func(ctx context.Context) (*app.Components, func(), error) {
			c, _, err := graft.ExecuteFor[*app.Components](ctx)
			return c, func() {}, err
		}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitInvalid
	}
	defer cleanup()

	if s, ok := components.Logger.(outputSetter); ok {
		s.SetOutput(stderr)
	}

	components.App.WithOutput(stdout)
	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)
	if s, ok := components.Logger.(jsonSwitcher); ok {
		cli.SetJSONLogHook(s.SetJSON)
	}

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return exitInvalid
	}
	return 0
}
