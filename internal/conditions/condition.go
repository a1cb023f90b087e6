// Package conditions defines preconditions attached to command tree nodes
// and parameters. They are evaluated by the dispatcher before a command
// runs and may block on external state, so they receive the invocation
// context.
package conditions

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotSatisfied is a generic failure conditions may return.
var ErrNotSatisfied = errors.New("condition not satisfied")

// Context describes what a condition is being evaluated for.
type Context struct {
	// RequestID identifies the invocation.
	RequestID string
	// Path is the full key path of the command being dispatched.
	Path []string
	// Attributes are the merged attributes of the command and its ancestors.
	Attributes map[string]string
	// State is caller supplied request state (see WithState).
	State map[string]any
	// Parameter is set when a parameter condition is evaluated.
	Parameter string
	// Value is the parsed parameter value for parameter conditions.
	Value any
}

// Condition is a named precondition.
type Condition interface {
	Name() string
	Check(ctx context.Context, c Context) error
}

type funcCondition struct {
	name string
	fn   func(context.Context, Context) error
}

func (f funcCondition) Name() string { return f.name }

func (f funcCondition) Check(ctx context.Context, c Context) error {
	return f.fn(ctx, c)
}

// New wraps fn as a named condition.
func New(name string, fn func(context.Context, Context) error) Condition {
	return funcCondition{name: name, fn: fn}
}

// RequireState fails unless the request state holds a non-nil value for key.
func RequireState(key string) Condition {
	return New("require "+key, func(_ context.Context, c Context) error {
		if v, ok := c.State[key]; ok && v != nil {
			return nil
		}
		return fmt.Errorf("%w: %q is not set", ErrNotSatisfied, key)
	})
}

// RequireAttribute fails unless the merged attributes carry key=value.
func RequireAttribute(key, value string) Condition {
	return New(fmt.Sprintf("attribute %s=%s", key, value), func(_ context.Context, c Context) error {
		if c.Attributes[key] == value {
			return nil
		}
		return fmt.Errorf("%w: attribute %s is %q", ErrNotSatisfied, key, c.Attributes[key])
	})
}

type stateKey struct{}

// WithState attaches request state that conditions can inspect.
func WithState(ctx context.Context, state map[string]any) context.Context {
	return context.WithValue(ctx, stateKey{}, state)
}

// StateFrom returns the request state attached by WithState, or nil.
func StateFrom(ctx context.Context) map[string]any {
	state, _ := ctx.Value(stateKey{}).(map[string]any)
	return state
}
