package history

import (
	"context"

	"github.com/footprint-tools/cmdtree/internal/actions"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/format"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

type Deps struct {
	Store  domain.HistoryStore
	Layout format.Layout
	Styler domain.Styler
	Pager  func(string)
}

// DefaultDeps returns nil Store when no history store is open; the history
// group carries a condition that keeps its commands from running then.
func DefaultDeps(ctx context.Context) Deps {
	deps := Deps{
		Styler: style.NopStyler{},
		Pager:  func(string) {},
	}
	if store, ok := actions.HistoryFrom(ctx); ok {
		deps.Store = store
	}
	if app, ok := actions.ApplicationFrom(ctx); ok {
		deps.Layout = format.NewLayout(app.Config)
		if app.Styler != nil {
			deps.Styler = app.Styler
		}
		if app.Output != nil {
			deps.Pager = app.Output.Pager
		}
	}
	return deps
}
