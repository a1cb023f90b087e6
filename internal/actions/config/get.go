package config

import (
	"context"
	"fmt"

	"github.com/footprint-tools/cmdtree/internal/config"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

func Get(ctx context.Context, args []any) (any, error) {
	return get(args, DefaultDeps(ctx))
}

func get(args []any, deps Deps) (any, error) {
	key, _ := dispatchers.Arg[string](args, 0)

	value, found := deps.Get(key)
	if !found {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownKey, key)
	}
	return value, nil
}
