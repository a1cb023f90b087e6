package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/footprint-tools/cmdtree/internal/app"
	"github.com/footprint-tools/cmdtree/internal/cli"
	"github.com/footprint-tools/cmdtree/internal/completions"
	"github.com/footprint-tools/cmdtree/internal/ui/picker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout *os.File, stderr io.Writer) int {
	flags, rest, err := cli.ParseHostFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			flags.Help = true
		} else {
			_, _ = fmt.Fprintf(stderr, "cmdtree: %v\n\n%s", err, cli.FlagUsages())
			return 2
		}
	}

	// Enable styling if stdout is a terminal and --no-color is not set
	interactive := term.IsTerminal(int(stdout.Fd()))

	application, err := app.New(ctx, app.Options{
		ConfigFile:      flags.ConfigFile,
		Overrides:       flags.Overrides(),
		Stdout:          stdout,
		Stderr:          stderr,
		PagerDisabled:   flags.NoPager,
		Pager:           flags.Pager,
		StyleEnabled:    interactive && !flags.NoColor,
		HistoryDisabled: flags.NoHistory,
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "cmdtree: %v\n", err)
		return 1
	}
	defer func() { _ = app.Close(application) }()

	completions.RegisterRootFlags(cli.CompletionFlags())
	host := cli.NewHost(application, cli.BuildTree())
	host.Stderr = stderr
	if picker.Interactive(stdout) {
		host.Choose = func(ctx context.Context, options []picker.Option) (int, error) {
			return picker.Run(ctx, "Several commands match; choose one", options, application.Styler, stdout)
		}
	}

	return host.Run(ctx, flags, rest)
}
