package dispatchers

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/params"
)

// ErrInvalidTree is wrapped by every tree construction error.
var ErrInvalidTree = errors.New("invalid command tree")

// Tree is an arena of nodes. Parent links are ids, so ownership runs
// strictly from parent to children.
type Tree struct {
	name  string
	nodes []Node
}

// NewTree creates a tree holding only its root.
func NewTree(spec RootSpec) *Tree {
	return &Tree{
		name: spec.Name,
		nodes: []Node{{
			ID:         0,
			Kind:       KindRoot,
			Parent:     NoNode,
			Summary:    spec.Summary,
			Usage:      spec.Usage,
			Attributes: maps.Clone(spec.Attributes),
			Conditions: slices.Clone(spec.Conditions),
		}},
	}
}

// Name returns the program name given to the root.
func (t *Tree) Name() string { return t.name }

// Root returns the root id.
func (t *Tree) Root() NodeID { return 0 }

// Len returns the number of nodes, root included.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node with the given id, or nil.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Group declares a group under spec.Parent. A group whose key matches an
// existing group under the same parent merges into it.
func (t *Tree) Group(spec GroupSpec) (NodeID, error) {
	if err := t.checkParent(spec.Parent); err != nil {
		return NoNode, err
	}
	if err := checkWords(spec.Key, spec.Aliases); err != nil {
		return NoNode, err
	}

	for _, cid := range t.nodes[spec.Parent].Children {
		existing := &t.nodes[cid]
		if existing.Kind != KindGroup || existing.Key != spec.Key {
			continue
		}
		existing.Aliases = appendNew(existing.Aliases, spec.Aliases...)
		existing.Conditions = append(existing.Conditions, spec.Conditions...)
		if spec.DeclaredBy != "" {
			existing.DeclaredBy = appendNew(existing.DeclaredBy, spec.DeclaredBy)
		}
		if existing.Summary == "" {
			existing.Summary = spec.Summary
		}
		if existing.Description == "" {
			existing.Description = spec.Description
		}
		if len(spec.Attributes) > 0 && existing.Attributes == nil {
			existing.Attributes = make(map[string]string, len(spec.Attributes))
		}
		for k, v := range spec.Attributes {
			existing.Attributes[k] = v
		}
		return cid, nil
	}

	node := Node{
		Kind:        KindGroup,
		Key:         spec.Key,
		Aliases:     slices.Clone(spec.Aliases),
		Parent:      spec.Parent,
		Summary:     spec.Summary,
		Description: spec.Description,
		Attributes:  maps.Clone(spec.Attributes),
		Conditions:  slices.Clone(spec.Conditions),
	}
	if spec.DeclaredBy != "" {
		node.DeclaredBy = []string{spec.DeclaredBy}
	}
	return t.add(node), nil
}

// Command declares a command under spec.Parent.
func (t *Tree) Command(spec CommandSpec) (NodeID, error) {
	if err := t.checkParent(spec.Parent); err != nil {
		return NoNode, err
	}
	if err := checkWords(spec.Key, spec.Aliases); err != nil {
		return NoNode, err
	}
	if spec.Handler == nil {
		return NoNode, fmt.Errorf("%w: command %q has no handler", ErrInvalidTree, spec.Key)
	}
	if err := params.ValidateSignature(spec.Params); err != nil {
		return NoNode, fmt.Errorf("%w: command %q: %w", ErrInvalidTree, spec.Key, err)
	}

	return t.add(Node{
		Kind:        KindCommand,
		Key:         spec.Key,
		Aliases:     slices.Clone(spec.Aliases),
		Parent:      spec.Parent,
		Summary:     spec.Summary,
		Description: spec.Description,
		Usage:       spec.Usage,
		Category:    spec.Category,
		Attributes:  maps.Clone(spec.Attributes),
		Conditions:  slices.Clone(spec.Conditions),
		Signature:   slices.Clone(spec.Params),
		Handler:     spec.Handler,
	}), nil
}

// MustGroup is Group for statically declared trees; it panics on error.
func (t *Tree) MustGroup(spec GroupSpec) NodeID {
	id, err := t.Group(spec)
	if err != nil {
		panic(err)
	}
	return id
}

// MustCommand is Command for statically declared trees; it panics on error.
func (t *Tree) MustCommand(spec CommandSpec) NodeID {
	id, err := t.Command(spec)
	if err != nil {
		panic(err)
	}
	return id
}

func (t *Tree) add(n Node) NodeID {
	n.ID = NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.nodes[n.Parent].Children = append(t.nodes[n.Parent].Children, n.ID)
	return n.ID
}

func (t *Tree) checkParent(id NodeID) error {
	parent := t.Node(id)
	if parent == nil {
		return fmt.Errorf("%w: unknown parent %d", ErrInvalidTree, id)
	}
	if parent.Kind == KindCommand {
		return fmt.Errorf("%w: command %q cannot have children", ErrInvalidTree, parent.Key)
	}
	return nil
}

func checkWords(key string, aliases []string) error {
	for _, w := range append([]string{key}, aliases...) {
		if strings.HasPrefix(w, "-") || strings.ContainsAny(w, " \t\n\"'") {
			return fmt.Errorf("%w: %q is not a valid key", ErrInvalidTree, w)
		}
	}
	for _, a := range aliases {
		if a == "" {
			return fmt.Errorf("%w: empty alias for %q", ErrInvalidTree, key)
		}
	}
	return nil
}

func appendNew(list []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, existing := range list {
			if existing == item {
				found = true
				break
			}
		}
		if !found {
			list = append(list, item)
		}
	}
	return list
}

// Path returns the path words that select id: every non-empty key from
// the root down, the root itself excluded.
func (t *Tree) Path(id NodeID) []string {
	var path []string
	for cur := id; cur > 0; cur = t.nodes[cur].Parent {
		if k := t.nodes[cur].Key; k != "" {
			path = append(path, k)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Ancestors returns id's ancestors ordered from the root down.
func (t *Tree) Ancestors(id NodeID) []NodeID {
	var chain []NodeID
	for cur := t.nodes[id].Parent; cur != NoNode; cur = t.nodes[cur].Parent {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Attributes merges the attributes of id and its ancestors. Nearer
// nodes override farther ones.
func (t *Tree) Attributes(id NodeID) map[string]string {
	merged := make(map[string]string)
	for _, aid := range append(t.Ancestors(id), id) {
		for k, v := range t.nodes[aid].Attributes {
			merged[k] = v
		}
	}
	return merged
}

// Visible returns the children reachable from id with one path word.
// Transparent groups are flattened into their parent's level.
func (t *Tree) Visible(id NodeID) []NodeID {
	var out []NodeID
	for _, cid := range t.nodes[id].Children {
		if t.nodes[cid].IsTransparent() {
			out = append(out, t.Visible(cid)...)
			continue
		}
		if t.nodes[cid].IsDefault() {
			continue
		}
		out = append(out, cid)
	}
	return out
}

// Find follows path from the root through visible children, returning
// every node it leads to.
func (t *Tree) Find(path []string, opts params.Options) []NodeID {
	current := []NodeID{t.Root()}
	for _, word := range path {
		var next []NodeID
		for _, id := range current {
			for _, cid := range t.Visible(id) {
				if t.nodes[cid].Answers(word, opts) {
					next = append(next, cid)
				}
			}
		}
		current = next
	}
	return current
}
