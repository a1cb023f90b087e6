package dispatchers

import (
	"errors"

	"github.com/footprint-tools/cmdtree/internal/params"
	"github.com/footprint-tools/cmdtree/internal/tokens"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

const defaultSuggestionsCount = 3

// Candidate is a command whose path and signature both matched the input.
type Candidate struct {
	Node  NodeID
	Path  []string
	Bound []params.Bound
}

// Rejection is a command whose path matched but whose signature did not
// accept the remaining input.
type Rejection struct {
	Node NodeID
	Path []string
	Err  error
}

// Outcome collects everything a search found. It is resolved by Resolve.
type Outcome struct {
	Candidates []Candidate
	Rejected   []Rejection

	// Matched is the path of the deepest dead end; Unmatched is the word
	// that could not be followed from there, if any.
	Matched   []string
	Unmatched string

	scope   NodeID
	depth   int
	reached bool
}

func newOutcome(root NodeID) Outcome {
	return Outcome{scope: root}
}

// deadEnd records that the search stopped at id, depth words down, unable
// to follow next. The first dead end at the greatest depth wins.
// Suggestions are drawn from the nearest enclosing named group.
func (o *Outcome) deadEnd(t *Tree, id NodeID, depth int, next string) {
	if o.reached && depth <= o.depth {
		return
	}
	o.reached = true
	o.depth = depth
	o.Matched = t.Path(id)
	o.Unmatched = next

	scope := id
	for scope != t.Root() && (t.nodes[scope].Kind == KindCommand || t.nodes[scope].IsTransparent()) {
		scope = t.nodes[scope].Parent
	}
	o.scope = scope
}

// SearchTokens matches a token stream against the tree. Leading Value
// tokens select children by key or alias; every matching child is followed
// independently, and each command reached binds the tokens left at its depth.
func (t *Tree) SearchTokens(toks []tokens.Token, opts params.Options) Outcome {
	out := newOutcome(t.Root())
	t.searchTokens(t.Root(), tokens.NewStream(toks), 0, opts, &out)
	return out
}

func (t *Tree) searchTokens(id NodeID, st tokens.Stream, depth int, opts params.Options, out *Outcome) {
	next := ""
	if tok, ok := st.Peek(); ok && tok.Kind == tokens.KindValue {
		next = tok.Text
	}
	answered := false
	for _, cid := range t.nodes[id].Children {
		child := &t.nodes[cid]
		if child.Key == "" {
			t.visitTokens(cid, st, depth, opts, out)
			continue
		}
		if next == "" || !child.Answers(next, opts) {
			continue
		}
		answered = true
		fork := st
		fork.Skip(1)
		t.visitTokens(cid, fork, depth+1, opts, out)
	}
	if !answered {
		out.deadEnd(t, id, depth, next)
	}
}

func (t *Tree) visitTokens(id NodeID, st tokens.Stream, depth int, opts params.Options, out *Outcome) {
	n := &t.nodes[id]
	if n.Kind != KindCommand {
		t.searchTokens(id, st, depth, opts, out)
		return
	}

	bound, err := params.BindTokens(n.Signature, st, opts)
	if err != nil {
		out.Rejected = append(out.Rejected, Rejection{Node: id, Path: t.Path(id), Err: err})
		return
	}
	out.Candidates = append(out.Candidates, Candidate{Node: id, Path: t.Path(id), Bound: bound})
}

// SearchNamed matches an explicit path and pre-parsed entries. A command
// binds the entries only when the path ends on it; a group whose path is
// exhausted continues through transparent groups and default commands.
func (t *Tree) SearchNamed(path []string, entries map[string][]string, opts params.Options) Outcome {
	out := newOutcome(t.Root())
	t.searchNamed(t.Root(), path, 0, entries, opts, &out)
	return out
}

func (t *Tree) searchNamed(id NodeID, path []string, depth int, entries map[string][]string, opts params.Options, out *Outcome) {
	next := ""
	if len(path) > 0 {
		next = path[0]
	}
	answered := false
	for _, cid := range t.nodes[id].Children {
		child := &t.nodes[cid]
		if child.Key == "" {
			t.visitNamed(cid, path, depth, entries, opts, out)
			continue
		}
		if next == "" || !child.Answers(next, opts) {
			continue
		}
		answered = true
		t.visitNamed(cid, path[1:], depth+1, entries, opts, out)
	}
	if !answered {
		out.deadEnd(t, id, depth, next)
	}
}

func (t *Tree) visitNamed(id NodeID, path []string, depth int, entries map[string][]string, opts params.Options, out *Outcome) {
	n := &t.nodes[id]
	if n.Kind != KindCommand {
		t.searchNamed(id, path, depth, entries, opts, out)
		return
	}
	if len(path) > 0 {
		out.deadEnd(t, id, depth, path[0])
		return
	}

	bound, err := params.BindNamed(n.Signature, entries, opts)
	if err != nil {
		out.Rejected = append(out.Rejected, Rejection{Node: id, Path: t.Path(id), Err: err})
		return
	}
	out.Candidates = append(out.Candidates, Candidate{Node: id, Path: t.Path(id), Bound: bound})
}

// Resolve classifies a search outcome. One candidate is returned as is;
// several are reported as ambiguous, never picked from.
func (t *Tree) Resolve(out Outcome) (Candidate, error) {
	switch len(out.Candidates) {
	case 1:
		return out.Candidates[0], nil
	case 0:
		if len(out.Rejected) > 0 {
			// A rejection explains the failure unless some group got as
			// far and could not follow the next word.
			if r := deepestRejection(out.Rejected); len(r.Path) > len(out.Matched) || out.Unmatched == "" {
				return Candidate{}, usage.ParameterBinding(r.Path, shapeOf(r.Err), r.Err)
			}
		}
		path := out.Matched
		if out.Unmatched != "" {
			path = append(append([]string{}, out.Matched...), out.Unmatched)
		}
		return Candidate{}, usage.CommandNotFound(path, t.suggestFor(out, defaultSuggestionsCount))
	default:
		paths := make([][]string, len(out.Candidates))
		for i, c := range out.Candidates {
			paths[i] = c.Path
		}
		return Candidate{}, usage.AmbiguousInvocation(paths)
	}
}

func (t *Tree) suggestFor(out Outcome, n int) []string {
	if out.Unmatched == "" {
		return VisibleKeys(t, out.scope, n)
	}
	return FindSimilarCommands(out.Unmatched, t, out.scope, n)
}

func deepestRejection(rejected []Rejection) Rejection {
	best := rejected[0]
	for _, r := range rejected[1:] {
		if len(r.Path) > len(best.Path) {
			best = r
		}
	}
	return best
}

func shapeOf(err error) string {
	var be *params.BindError
	if errors.As(err, &be) {
		return be.Shape
	}
	return ""
}
