package completions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/completions"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

var ErrNoTree = errors.New("command tree not available")

// Show prints instructions for loading completions into a shell. Without a
// shell argument the running shell is detected from $SHELL.
func Show(ctx context.Context, args []any) (any, error) {
	return show(args, DefaultDeps(ctx))
}

func show(args []any, deps Deps) (any, error) {
	shell, err := shellArg(args, deps)
	if err != nil {
		return nil, err
	}
	if deps.Tree == nil {
		return nil, ErrNoTree
	}
	program := deps.Tree.Name()

	var b strings.Builder
	b.WriteString("To enable completions, choose one of the following:\n\n")

	option := 1
	if autoPath := completions.AutoInstallPath(shell, deps.Home, program); autoPath != "" {
		fmt.Fprintf(&b, "%d. Write to auto-load directory:\n", option)
		fmt.Fprintf(&b, "   %s completions install %s\n\n", program, shell)
		option++
	}

	fmt.Fprintf(&b, "%d. Add to %s:\n", option, completions.RcFile(shell))
	fmt.Fprintf(&b, "   %s\n\n", completions.SourceInstructions(shell, deps.Binary))
	b.WriteString("Then restart your shell or run: exec $SHELL")
	return b.String(), nil
}

// Script returns the completion script for the given shell.
func Script(ctx context.Context, args []any) (any, error) {
	return script(args, DefaultDeps(ctx))
}

func script(args []any, deps Deps) (any, error) {
	shell, err := shellArg(args, deps)
	if err != nil {
		return nil, err
	}
	out, err := render(shell, deps)
	if err != nil {
		return nil, err
	}
	return strings.TrimRight(out, "\n"), nil
}

// Install writes the completion script to the shell's auto-load directory.
func Install(ctx context.Context, args []any) (any, error) {
	return install(args, DefaultDeps(ctx))
}

func install(args []any, deps Deps) (any, error) {
	shell, err := shellArg(args, deps)
	if err != nil {
		return nil, err
	}
	out, err := render(shell, deps)
	if err != nil {
		return nil, err
	}
	path := completions.AutoInstallPath(shell, deps.Home, deps.Tree.Name())
	if path == "" {
		return nil, fmt.Errorf("%s has no auto-load directory, add this to %s instead:\n   %s",
			shell, completions.RcFile(shell), completions.SourceInstructions(shell, deps.Binary))
	}
	if err := deps.WriteFile(path, []byte(out)); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return fmt.Sprintf("wrote %s completions to %s", shell, path), nil
}

func render(shell completions.Shell, deps Deps) (string, error) {
	if deps.Tree == nil {
		return "", ErrNoTree
	}
	return completions.Generate(shell, completions.ExtractCommands(deps.Tree, deps.RootFlags...))
}

func shellArg(args []any, deps Deps) (completions.Shell, error) {
	name, _ := dispatchers.Arg[string](args, 0)
	if name == "" {
		if shell := deps.Detect(); shell != "" {
			return shell, nil
		}
		return "", errors.New("could not detect shell, specify one: bash, zsh or fish")
	}
	return completions.ParseShell(name)
}
