package help

import (
	"context"
	"os"

	"github.com/footprint-tools/cmdtree/internal/actions"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/params"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

type Deps struct {
	Tree    *dispatchers.Tree
	Options params.Options
	Styler  domain.Styler
	Colors  style.ColorConfig
	Pager   func(string)

	// Browse runs the interactive browser; nil when stdout is not a terminal.
	Browse func(ctx context.Context, m Model) error
}

func DefaultDeps(ctx context.Context) Deps {
	deps := Deps{
		Styler: style.NopStyler{},
		Colors: style.Themes["default-dark"],
		Pager:  func(string) {},
	}
	if tree, ok := actions.TreeFrom(ctx); ok {
		deps.Tree = tree
	}
	if app, ok := actions.ApplicationFrom(ctx); ok {
		if app.Config != nil {
			deps.Options.CaseInsensitive = app.Config.GetBool("case_insensitive")
		}
		if app.Styler != nil {
			deps.Styler = app.Styler
		}
		if s, ok := app.Styler.(*style.Styler); ok {
			deps.Colors = s.Colors()
		}
		if app.Output != nil {
			deps.Pager = app.Output.Pager
		}
	}
	if Interactive(os.Stdin, os.Stdout) {
		deps.Browse = func(ctx context.Context, m Model) error {
			return runBrowser(ctx, m, os.Stdin, os.Stdout)
		}
	}
	return deps
}
