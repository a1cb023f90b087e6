// Package parsers converts raw string values into typed arguments.
//
// A Registry maps declared element type keys ("int", "duration", ...) to
// parsers. Registries are filled during setup and only read afterwards, so
// the dispatcher can share one across concurrent invocations.
package parsers

import (
	"context"
	"fmt"
	"sort"
)

// Parser converts one raw value.
type Parser interface {
	Parse(ctx context.Context, raw string) (any, error)
}

// Func adapts a plain function to Parser.
type Func func(ctx context.Context, raw string) (any, error)

func (f Func) Parse(ctx context.Context, raw string) (any, error) {
	return f(ctx, raw)
}

// Registry holds parsers keyed by element type.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds or replaces the parser for typ and returns the registry
// for chaining.
func (r *Registry) Register(typ string, p Parser) *Registry {
	if typ == "" {
		panic("parsers: empty type key")
	}
	if p == nil {
		panic(fmt.Sprintf("parsers: nil parser for %q", typ))
	}
	r.parsers[typ] = p
	return r
}

// Lookup returns the parser registered for typ.
func (r *Registry) Lookup(typ string) (Parser, bool) {
	if r == nil {
		return nil, false
	}
	p, ok := r.parsers[typ]
	return p, ok
}

// Types lists the registered type keys in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.parsers))
	for typ := range r.parsers {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Clone copies the registry so callers can extend a shared default.
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	for typ, p := range r.parsers {
		c.parsers[typ] = p
	}
	return c
}
