package help

import (
	"context"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

// Commands lists the path of every command, one per line, for scripts.
func Commands(ctx context.Context, args []any) (any, error) {
	return commands(args, DefaultDeps(ctx))
}

func commands(_ []any, deps Deps) (any, error) {
	if deps.Tree == nil {
		return nil, ErrNoTree
	}
	return strings.Join(dispatchers.CollectAllCommands(deps.Tree), "\n"), nil
}
