package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/format"
)

// ErrNoStore is returned when history is disabled or failed to open.
var ErrNoStore = errors.New("history is not available")

// List shows recorded invocations, newest first, through the pager.
func List(ctx context.Context, args []any) (any, error) {
	return list(ctx, args, DefaultDeps(ctx))
}

func list(ctx context.Context, args []any, deps Deps) (any, error) {
	if deps.Store == nil {
		return nil, ErrNoStore
	}

	limit, _ := dispatchers.Arg[int](args, 0)
	outcome, _ := dispatchers.Arg[string](args, 1)

	invocations, err := deps.Store.List(ctx, domain.HistoryFilter{Outcome: outcome, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if len(invocations) == 0 {
		return "no invocations recorded", nil
	}

	var b strings.Builder
	for _, inv := range invocations {
		b.WriteString(formatInvocation(inv, deps))
		b.WriteString("\n")
	}
	deps.Pager(b.String())
	return nil, nil
}

// formatInvocation renders one line: id, time, outcome, duration, input.
func formatInvocation(inv domain.Invocation, deps Deps) string {
	outcome := deps.Styler.Success(inv.Outcome)
	if inv.Outcome != "ok" {
		outcome = deps.Styler.Error(inv.Outcome)
	}

	input := inv.Input
	if input == "" {
		input = strings.Join(inv.Path, " ")
	}

	return fmt.Sprintf("%s %s %s %s %s",
		deps.Styler.Header(fmt.Sprintf("%4d", inv.ID)),
		deps.Styler.Muted(deps.Layout.DateTimeShort(inv.CreatedAt.Local())),
		outcome,
		deps.Styler.Muted(format.Duration(inv.Duration)),
		input,
	)
}
