// Package params declares command parameter shapes and binds input to them.
//
// A Shape is one parameter's matching and cardinality rule. The set of
// shape kinds is closed; every switch over Kind in this package handles all
// of them. Shapes are immutable once constructed and safe to share.
//
// Binding comes in two protocols: BindTokens consumes a lexed token stream
// and BindNamed consumes a pre-split map of parameter keys to values.
package params

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/footprint-tools/cmdtree/internal/conditions"
)

// Kind selects a shape's matching rules.
type Kind uint8

const (
	KindPositional Kind = iota
	KindPositionalCollection
	KindNamed
	KindNamedCollection
	KindNamedGreedy
)

func (k Kind) String() string {
	switch k {
	case KindPositional:
		return "positional"
	case KindPositionalCollection:
		return "positional collection"
	case KindNamed:
		return "named"
	case KindNamedCollection:
		return "named collection"
	case KindNamedGreedy:
		return "named greedy"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// DefaultType is the element type used when a spec leaves Type empty.
const DefaultType = "string"

// ErrInvalidShape is wrapped by every shape construction error.
var ErrInvalidShape = errors.New("invalid parameter shape")

// Spec declares a parameter. Which fields matter depends on the constructor.
type Spec struct {
	// Name is the declared identifier. Required for positional shapes,
	// where it also serves as the pre-parsed key.
	Name string
	// Short is a single-rune name matched by -x tokens.
	Short string
	// Long is matched by --long tokens.
	Long string
	// Type is the element type key used to look up a value parser.
	Type string
	// Optional marks the parameter as omissible.
	Optional bool
	// Default is used when an omissible parameter is not supplied.
	Default any
	// Min is the minimum number of values for collections.
	Min int
	// Max is the maximum number of values for collections; 0 is unbounded.
	Max int

	Description string
	Attributes  map[string]string
	Conditions  []conditions.Condition
}

// Shape is a constructed, validated parameter.
type Shape struct {
	kind        Kind
	name        string
	short       string
	long        string
	typ         string
	optional    bool
	def         any
	min         int
	max         int
	description string
	attributes  map[string]string
	conditions  []conditions.Condition
}

// Positional declares a single positional value.
func Positional(spec Spec) (Shape, error) {
	return newShape(KindPositional, spec)
}

// PositionalCollection declares between Min and Max consecutive positional values.
func PositionalCollection(spec Spec) (Shape, error) {
	return newShape(KindPositionalCollection, spec)
}

// Named declares --long/-s followed by exactly one value.
func Named(spec Spec) (Shape, error) {
	return newShape(KindNamed, spec)
}

// NamedCollection declares --long/-s followed by between Min and Max values.
func NamedCollection(spec Spec) (Shape, error) {
	return newShape(KindNamedCollection, spec)
}

// NamedGreedy declares --long/-s followed by every value up to the next name.
func NamedGreedy(spec Spec) (Shape, error) {
	return newShape(KindNamedGreedy, spec)
}

// Must panics if err is non-nil. It is meant for statically declared trees.
func Must(s Shape, err error) Shape {
	if err != nil {
		panic(err)
	}
	return s
}

func newShape(kind Kind, spec Spec) (Shape, error) {
	s := Shape{
		kind:        kind,
		name:        spec.Name,
		short:       spec.Short,
		long:        spec.Long,
		typ:         spec.Type,
		optional:    spec.Optional,
		def:         spec.Default,
		min:         spec.Min,
		max:         spec.Max,
		description: spec.Description,
		attributes:  spec.Attributes,
		conditions:  spec.Conditions,
	}
	if s.typ == "" {
		s.typ = DefaultType
	}

	if err := s.validate(); err != nil {
		return Shape{}, err
	}

	// An omitted optional collection could never meet a positive Min, so
	// without a default the declaration is rejected outright.
	if s.IsCollection() && s.def == nil {
		if s.min > 0 && s.optional {
			return Shape{}, s.invalid("optional collection with min %d needs a default", s.min)
		}
		if s.min == 0 {
			s.def = []any{}
		}
	}

	return s, nil
}

func (s Shape) validate() error {
	switch s.kind {
	case KindPositional, KindPositionalCollection:
		if s.name == "" {
			return s.invalid("positional parameter needs a name")
		}
	case KindNamed, KindNamedCollection, KindNamedGreedy:
		if s.short == "" && s.long == "" {
			return s.invalid("named parameter needs a short or long name")
		}
		if s.short != "" && utf8.RuneCountInString(s.short) != 1 {
			return s.invalid("short name %q must be a single character", s.short)
		}
		if strings.HasPrefix(s.short, "-") || strings.HasPrefix(s.long, "-") {
			return s.invalid("names are declared without dashes")
		}
		if strings.ContainsAny(s.long, " \t=") {
			return s.invalid("long name %q contains whitespace or '='", s.long)
		}
	default:
		return s.invalid("unknown kind %d", s.kind)
	}

	if !s.bounded() && (s.min != 0 || s.max != 0) {
		return s.invalid("min/max only apply to bounded collections")
	}
	if s.min < 0 || s.max < 0 {
		return s.invalid("min and max must not be negative")
	}
	if s.max > 0 && s.min > s.max {
		return s.invalid("min %d exceeds max %d", s.min, s.max)
	}
	return nil
}

func (s Shape) invalid(format string, args ...any) error {
	return fmt.Errorf("%w %s: %s", ErrInvalidShape, s.Identity(), fmt.Sprintf(format, args...))
}

// Kind returns the shape's kind.
func (s Shape) Kind() Kind { return s.kind }

// Name returns the declared identifier.
func (s Shape) Name() string { return s.name }

// Short returns the short name, if any.
func (s Shape) Short() string { return s.short }

// Long returns the long name, if any.
func (s Shape) Long() string { return s.long }

// Type returns the element type key.
func (s Shape) Type() string { return s.typ }

// Optional reports whether the parameter was declared optional.
func (s Shape) Optional() bool { return s.optional }

// Default returns the value used when the parameter is omitted.
func (s Shape) Default() any { return s.def }

// Min returns the collection lower bound.
func (s Shape) Min() int { return s.min }

// Max returns the collection upper bound; 0 means unbounded.
func (s Shape) Max() int { return s.max }

func (s Shape) Description() string { return s.description }

func (s Shape) Attributes() map[string]string { return s.attributes }

func (s Shape) Conditions() []conditions.Condition { return s.conditions }

// IsNamed reports whether the shape is matched by name tokens.
func (s Shape) IsNamed() bool {
	return s.kind == KindNamed || s.kind == KindNamedCollection || s.kind == KindNamedGreedy
}

// IsCollection reports whether the shape binds a list of values.
func (s Shape) IsCollection() bool {
	return s.kind == KindPositionalCollection || s.kind == KindNamedCollection || s.kind == KindNamedGreedy
}

func (s Shape) bounded() bool {
	return s.kind == KindPositionalCollection || s.kind == KindNamedCollection
}

// Omissible reports whether the shape may be left unbound.
func (s Shape) Omissible() bool {
	return s.optional || (s.bounded() && s.min == 0)
}

// Key is the pre-parsed protocol key: the long name, else the short
// name, else the declared identifier.
func (s Shape) Key() string {
	switch {
	case s.long != "":
		return s.long
	case s.short != "":
		return s.short
	default:
		return s.name
	}
}

// Identity names the shape for error messages, e.g. "--limit" or "<path>".
func (s Shape) Identity() string {
	switch {
	case s.long != "":
		return "--" + s.long
	case s.short != "":
		return "-" + s.short
	case s.name != "":
		return "<" + s.name + ">"
	default:
		return "<" + s.kind.String() + ">"
	}
}

// Usage renders the shape for a usage line.
func (s Shape) Usage() string {
	var u string
	switch s.kind {
	case KindPositional:
		u = "<" + s.name + ">"
	case KindPositionalCollection:
		u = "<" + s.name + "...>"
	case KindNamed:
		u = s.Identity() + " <" + s.typ + ">"
	case KindNamedCollection, KindNamedGreedy:
		u = s.Identity() + " <" + s.typ + "...>"
	}
	if s.Omissible() {
		return "[" + u + "]"
	}
	return u
}
