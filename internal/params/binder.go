package params

import (
	"errors"
	"fmt"
	"sort"

	"github.com/footprint-tools/cmdtree/internal/tokens"
)

// ErrDuplicateName is returned when two shapes in one signature share a name.
var ErrDuplicateName = errors.New("duplicate parameter name")

// Bound is a shape paired with the raw values it matched.
type Bound struct {
	// Index is the shape's position in the signature.
	Index  int
	Shape  Shape
	Values []string
}

// BindError reports why input could not be bound to a signature.
type BindError struct {
	// Shape is the offending shape's identity, empty when not determinable.
	Shape  string
	Reason string
	Err    error
}

func (e *BindError) Error() string {
	if e.Shape == "" {
		return e.Reason
	}
	return e.Shape + ": " + e.Reason
}

func (e *BindError) Unwrap() error {
	return e.Err
}

type pending struct {
	index int
	shape Shape
}

func pendingOf(sig []Shape) []pending {
	remaining := make([]pending, len(sig))
	for i, s := range sig {
		remaining[i] = pending{index: i, shape: s}
	}
	return remaining
}

// BindTokens binds a token stream to a signature. Declaration order does
// not fix input order: each pass offers the current position to every
// unbound shape in turn, and passes repeat until one binds nothing. The
// stream must be fully consumed and every unbound shape omissible.
func BindTokens(sig []Shape, st tokens.Stream, opts Options) ([]Bound, error) {
	remaining := pendingOf(sig)
	var bound []Bound

	for progressed := true; progressed && len(remaining) > 0; {
		progressed = false
		for i := 0; i < len(remaining); {
			m, ok := remaining[i].shape.MatchTokens(st, opts)
			if !ok {
				i++
				continue
			}
			st.Skip(m.Consumed)
			bound = append(bound, Bound{Index: remaining[i].index, Shape: remaining[i].shape, Values: m.Values})
			remaining = append(remaining[:i], remaining[i+1:]...)
			progressed = true
		}
	}

	if err := checkOmissible(remaining); err != nil {
		return nil, err
	}
	if tok, ok := st.Peek(); ok {
		return nil, &BindError{Reason: fmt.Sprintf("unexpected argument %q", tok.String())}
	}
	return sortBound(bound), nil
}

// BindNamed binds pre-parsed entries to a signature. Entries are visited
// in sorted key order; a key no shape answers to fails the bind, and an
// arity violation aborts it.
func BindNamed(sig []Shape, entries map[string][]string, opts Options) ([]Bound, error) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	remaining := pendingOf(sig)
	var bound []Bound

	for _, key := range keys {
		values := entries[key]
		matched := -1
		for i, p := range remaining {
			ok, err := p.shape.MatchNamed(key, values, opts)
			if err != nil {
				return nil, &BindError{Shape: p.shape.Identity(), Reason: err.Error(), Err: err}
			}
			if ok {
				matched = i
				break
			}
		}
		if matched < 0 {
			return nil, &BindError{Reason: fmt.Sprintf("unknown parameter %q", key)}
		}

		p := remaining[matched]
		bound = append(bound, Bound{Index: p.index, Shape: p.shape, Values: values})
		remaining = append(remaining[:matched], remaining[matched+1:]...)
	}

	if err := checkOmissible(remaining); err != nil {
		return nil, err
	}
	return sortBound(bound), nil
}

func checkOmissible(remaining []pending) error {
	for _, p := range remaining {
		if !p.shape.Omissible() {
			return &BindError{Shape: p.shape.Identity(), Reason: "missing required parameter"}
		}
	}
	return nil
}

func sortBound(bound []Bound) []Bound {
	sort.Slice(bound, func(i, j int) bool { return bound[i].Index < bound[j].Index })
	return bound
}

// ValidateSignature rejects signatures in which two shapes could claim the
// same name token or pre-parsed key.
func ValidateSignature(sig []Shape) error {
	seen := make(map[string]string)
	claim := func(name, owner string) error {
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q is used by %s and %s", ErrDuplicateName, name, prev, owner)
		}
		seen[name] = owner
		return nil
	}

	for _, s := range sig {
		names := []string{s.Key()}
		if s.IsNamed() && s.short != "" && s.long != "" {
			names = append(names, s.short)
		}
		for _, n := range names {
			if err := claim(n, s.Identity()); err != nil {
				return err
			}
		}
	}
	return nil
}
