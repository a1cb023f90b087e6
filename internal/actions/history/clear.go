package history

import (
	"context"
	"fmt"
)

// Clear deletes every recorded invocation.
func Clear(ctx context.Context, args []any) (any, error) {
	return clearAll(ctx, args, DefaultDeps(ctx))
}

func clearAll(ctx context.Context, _ []any, deps Deps) (any, error) {
	if deps.Store == nil {
		return nil, ErrNoStore
	}

	n, err := deps.Store.Clear(ctx)
	if err != nil {
		return nil, fmt.Errorf("clear history: %w", err)
	}
	return fmt.Sprintf("removed %d invocation(s)", n), nil
}
