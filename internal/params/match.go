package params

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/tokens"
)

// Options control name and key comparison during search and binding.
type Options struct {
	CaseInsensitive bool
}

// Equal compares two names under the configured case policy.
func (o Options) Equal(a, b string) bool {
	if o.CaseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Match is a successful raw-token match.
type Match struct {
	Values   []string
	Consumed int
}

// ArityError reports a named entry whose value count is outside the
// shape's bounds. It aborts binding of the whole signature.
type ArityError struct {
	Shape string
	Got   int
	Min   int
	Max   int // 0 is unbounded
}

func (e *ArityError) Error() string {
	switch {
	case e.Min == e.Max:
		return fmt.Sprintf("%s takes exactly %d value(s), got %d", e.Shape, e.Min, e.Got)
	case e.Max == 0:
		return fmt.Sprintf("%s takes at least %d value(s), got %d", e.Shape, e.Min, e.Got)
	default:
		return fmt.Sprintf("%s takes %d to %d values, got %d", e.Shape, e.Min, e.Max, e.Got)
	}
}

// MatchTokens tries the shape at the stream's current position. The stream
// is a copy; the caller advances its own cursor by Match.Consumed.
func (s Shape) MatchTokens(st tokens.Stream, opts Options) (Match, bool) {
	switch s.kind {
	case KindPositional:
		tok, ok := st.Peek()
		if !ok || tok.Kind != tokens.KindValue {
			return Match{}, false
		}
		return Match{Values: []string{tok.Text}, Consumed: 1}, true

	case KindPositionalCollection:
		values := takeValues(st, s.max)
		if len(values) == 0 || len(values) < s.min {
			return Match{}, false
		}
		return Match{Values: values, Consumed: len(values)}, true

	case KindNamed:
		if !s.matchName(&st, opts) {
			return Match{}, false
		}
		values := takeValues(st, 1)
		if len(values) != 1 {
			return Match{}, false
		}
		return Match{Values: values, Consumed: 2}, true

	case KindNamedCollection:
		if !s.matchName(&st, opts) {
			return Match{}, false
		}
		values := takeValues(st, s.max)
		if len(values) < s.min {
			return Match{}, false
		}
		return Match{Values: values, Consumed: 1 + len(values)}, true

	case KindNamedGreedy:
		if !s.matchName(&st, opts) {
			return Match{}, false
		}
		values := takeValues(st, 0)
		if len(values) == 0 {
			return Match{}, false
		}
		return Match{Values: values, Consumed: 1 + len(values)}, true
	}
	return Match{}, false
}

// matchName consumes the current token if it names this shape.
func (s Shape) matchName(st *tokens.Stream, opts Options) bool {
	tok, ok := st.Peek()
	if !ok {
		return false
	}
	switch tok.Kind {
	case tokens.KindLongName:
		if s.long == "" || !opts.Equal(tok.Text, s.long) {
			return false
		}
	case tokens.KindShortName:
		if s.short == "" || !opts.Equal(tok.Text, s.short) {
			return false
		}
	default:
		return false
	}
	st.Skip(1)
	return true
}

// takeValues reads consecutive Value tokens, at most limit (0 is unbounded).
func takeValues(st tokens.Stream, limit int) []string {
	var values []string
	for limit == 0 || len(values) < limit {
		tok, ok := st.Peek()
		if !ok || tok.Kind != tokens.KindValue {
			break
		}
		values = append(values, tok.Text)
		st.Skip(1)
	}
	return values
}

// MatchNamed tries the shape against one pre-parsed entry. A key that does
// not name the shape is a silent non-match; a key that does, carrying the
// wrong number of values, returns an *ArityError.
func (s Shape) MatchNamed(key string, values []string, opts Options) (bool, error) {
	if !s.hasKey(key, opts) {
		return false, nil
	}

	lo, hi := s.arity()
	if len(values) < lo || (hi > 0 && len(values) > hi) {
		return false, &ArityError{Shape: s.Identity(), Got: len(values), Min: lo, Max: hi}
	}
	return true, nil
}

func (s Shape) hasKey(key string, opts Options) bool {
	if opts.Equal(key, s.Key()) {
		return true
	}
	// Named shapes with both names also answer to the short one.
	return s.IsNamed() && s.short != "" && opts.Equal(key, s.short)
}

// arity returns the accepted value-count bounds for the pre-parsed protocol.
func (s Shape) arity() (lo, hi int) {
	switch s.kind {
	case KindPositional, KindNamed:
		return 1, 1
	case KindNamedGreedy:
		return 1, 0
	default:
		return s.min, s.max
	}
}
