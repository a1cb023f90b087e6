package config

import (
	"context"
	"fmt"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

func Set(ctx context.Context, args []any) (any, error) {
	return set(args, DefaultDeps(ctx))
}

func set(args []any, deps Deps) (any, error) {
	key, _ := dispatchers.Arg[string](args, 0)
	value, _ := dispatchers.Arg[string](args, 1)

	if err := deps.Set(key, value); err != nil {
		return nil, err
	}
	return fmt.Sprintf("set %s=%s in %s", key, value, deps.Path()), nil
}
