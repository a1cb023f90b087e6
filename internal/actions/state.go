package actions

import (
	"context"

	"github.com/footprint-tools/cmdtree/internal/conditions"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Request state keys. Conditions such as conditions.RequireState(StateHistory)
// refer to them.
const (
	StateApp     = "app"
	StateTree    = "tree"
	StateHistory = "history"
)

// WithApplication attaches the application and tree to ctx as request
// state. The history entry is only set when a store is open.
func WithApplication(ctx context.Context, app *domain.Application, tree *dispatchers.Tree) context.Context {
	state := map[string]any{
		StateApp:  app,
		StateTree: tree,
	}
	if app != nil && app.History != nil {
		state[StateHistory] = app.History
	}
	return conditions.WithState(ctx, state)
}

// ApplicationFrom returns the application attached by WithApplication.
func ApplicationFrom(ctx context.Context) (*domain.Application, bool) {
	app, ok := conditions.StateFrom(ctx)[StateApp].(*domain.Application)
	return app, ok && app != nil
}

// TreeFrom returns the command tree attached by WithApplication.
func TreeFrom(ctx context.Context) (*dispatchers.Tree, bool) {
	tree, ok := conditions.StateFrom(ctx)[StateTree].(*dispatchers.Tree)
	return tree, ok && tree != nil
}

// HistoryFrom returns the open history store, if any.
func HistoryFrom(ctx context.Context) (domain.HistoryStore, bool) {
	store, ok := conditions.StateFrom(ctx)[StateHistory].(domain.HistoryStore)
	return store, ok
}
