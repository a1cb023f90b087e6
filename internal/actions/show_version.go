package actions

import (
	"context"
	"fmt"
)

func ShowVersion(ctx context.Context, args []any) (any, error) {
	return showVersion(ctx, args, defaultDeps())
}

func showVersion(_ context.Context, _ []any, deps actionDependencies) (any, error) {
	return fmt.Sprintf("cmdtree version %s", deps.Version()), nil
}
