package config

import (
	"context"
	"fmt"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

func Unset(ctx context.Context, args []any) (any, error) {
	return unset(args, DefaultDeps(ctx))
}

func unset(args []any, deps Deps) (any, error) {
	key, _ := dispatchers.Arg[string](args, 0)

	removed, err := deps.Unset(key)
	if err != nil {
		return nil, err
	}
	if !removed {
		return fmt.Sprintf("%s is not set in %s", key, deps.Path()), nil
	}
	return fmt.Sprintf("unset %s", key), nil
}
