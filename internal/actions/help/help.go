package help

import (
	"context"
	"errors"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

// ErrNoTree is returned when no command tree is attached to the request.
var ErrNoTree = errors.New("help: no command tree")

// Show prints help for the root, a group or a command. When a path leads to
// several nodes, help for each of them is shown.
func Show(ctx context.Context, args []any) (any, error) {
	return show(args, DefaultDeps(ctx))
}

func show(args []any, deps Deps) (any, error) {
	if deps.Tree == nil {
		return nil, ErrNoTree
	}

	path, _ := dispatchers.Values[string](args, 0)
	nodes := deps.Tree.Find(path, deps.Options)
	if len(nodes) == 0 {
		return nil, notFound(deps.Tree, path, deps)
	}

	pages := make([]string, 0, len(nodes))
	for _, id := range nodes {
		pages = append(pages, strings.TrimRight(dispatchers.Help(deps.Tree, id, deps.Styler), "\n"))
	}
	deps.Pager(strings.Join(pages, "\n\n") + "\n")
	return nil, nil
}

// notFound reports the first word of path that leads nowhere, with
// suggestions from the level it was looked up in.
func notFound(t *dispatchers.Tree, path []string, deps Deps) error {
	level := []dispatchers.NodeID{t.Root()}
	for i, word := range path {
		next := t.Find(path[:i+1], deps.Options)
		if len(next) == 0 {
			var suggestions []string
			for _, id := range level {
				suggestions = append(suggestions, dispatchers.FindSimilarCommands(word, t, id, 3)...)
			}
			return usage.CommandNotFound(path[:i+1], suggestions)
		}
		level = next
	}
	return usage.CommandNotFound(path, nil)
}
