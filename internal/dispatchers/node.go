package dispatchers

import (
	"context"

	"github.com/footprint-tools/cmdtree/internal/conditions"
	"github.com/footprint-tools/cmdtree/internal/params"
)

// NodeID addresses a node inside its Tree.
type NodeID int

// NoNode is the parent of the root.
const NoNode NodeID = -1

// NodeKind distinguishes the three node variants.
type NodeKind uint8

const (
	KindRoot NodeKind = iota
	KindGroup
	KindCommand
)

func (k NodeKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindGroup:
		return "group"
	case KindCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Handler runs a command with its typed arguments, one per signature
// entry and in signature order. Collections arrive as []any.
type Handler func(ctx context.Context, args []any) (any, error)

// Node is one element of the command tree. Nodes are created through the
// Tree builders and must not be modified after assembly.
type Node struct {
	ID       NodeID
	Kind     NodeKind
	Key      string
	Aliases  []string
	Parent   NodeID
	Children []NodeID

	Summary     string
	Description string
	Usage       string
	Category    CommandCategory

	Attributes map[string]string
	Conditions []conditions.Condition

	// DeclaredBy lists the declarations merged into a group.
	DeclaredBy []string

	Signature []params.Shape
	Handler   Handler
}

// IsTransparent reports whether a group exposes its children at its
// parent's level.
func (n *Node) IsTransparent() bool {
	return n.Kind == KindGroup && n.Key == ""
}

// IsDefault reports whether a command runs without a path word of its own.
func (n *Node) IsDefault() bool {
	return n.Kind == KindCommand && n.Key == ""
}

// Answers reports whether word selects this node by key or alias.
func (n *Node) Answers(word string, opts params.Options) bool {
	if n.Key != "" && opts.Equal(word, n.Key) {
		return true
	}
	for _, a := range n.Aliases {
		if opts.Equal(word, a) {
			return true
		}
	}
	return false
}
