package dispatchers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/footprint-tools/cmdtree/internal/conditions"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/params"
	"github.com/footprint-tools/cmdtree/internal/parsers"
	"github.com/footprint-tools/cmdtree/internal/tokens"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

// Result is the outcome of a successful dispatch. A nil Payload is an
// empty success.
type Result struct {
	RequestID string
	Path      []string
	Payload   any
}

// Engine resolves invocations against a tree and runs the chosen command.
// It holds no per-invocation state and is safe for concurrent use.
type Engine struct {
	tree    *Tree
	parsers *parsers.Registry
	opts    params.Options
	logger  domain.Logger
	newID   func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithParsers replaces the default value parser registry.
func WithParsers(reg *parsers.Registry) Option {
	return func(e *Engine) { e.parsers = reg }
}

// WithOptions sets the search options used by the Execute helpers.
func WithOptions(opts params.Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// WithLogger sets the logger.
func WithLogger(l domain.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRequestIDs overrides request id generation.
func WithRequestIDs(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// NewEngine creates an engine over tree.
func NewEngine(tree *Tree, opts ...Option) *Engine {
	e := &Engine{
		tree:    tree,
		parsers: parsers.Default(),
		logger:  log.NopLogger{},
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tree returns the engine's tree.
func (e *Engine) Tree() *Tree { return e.tree }

// Options returns the engine's search options.
func (e *Engine) Options() params.Options { return e.opts }

// Execute lexes raw input, resolves it and dispatches the single match.
func (e *Engine) Execute(ctx context.Context, input string) (Result, error) {
	toks, err := tokens.Lex(input)
	if err != nil {
		return Result{}, usage.Tokenization(err)
	}
	return e.executeTokens(ctx, toks)
}

// ExecuteArgs resolves shell-split arguments and dispatches the single match.
func (e *Engine) ExecuteArgs(ctx context.Context, args []string) (Result, error) {
	return e.executeTokens(ctx, tokens.FromArgs(args))
}

// ExecuteNamed resolves an explicit path with pre-parsed entries and
// dispatches the single match.
func (e *Engine) ExecuteNamed(ctx context.Context, path []string, entries map[string][]string) (Result, error) {
	cand, err := e.Resolve(e.tree.SearchNamed(path, entries, e.opts))
	if err != nil {
		return Result{}, err
	}
	return e.Dispatch(ctx, cand)
}

func (e *Engine) executeTokens(ctx context.Context, toks []tokens.Token) (Result, error) {
	cand, err := e.Resolve(e.tree.SearchTokens(toks, e.opts))
	if err != nil {
		return Result{}, err
	}
	return e.Dispatch(ctx, cand)
}

// Resolve classifies a search outcome, logging what was found.
func (e *Engine) Resolve(out Outcome) (Candidate, error) {
	e.logger.Debug("search: %d candidate(s), %d rejected, matched %q", len(out.Candidates), len(out.Rejected), out.Matched)
	cand, err := e.tree.Resolve(out)
	if err != nil {
		e.logger.Info("resolve failed: %v", err)
	}
	return cand, err
}

// Dispatch checks conditions, converts bound values and runs the
// candidate's handler. A handler error is returned unchanged.
func (e *Engine) Dispatch(ctx context.Context, cand Candidate) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	node := e.tree.Node(cand.Node)
	if node == nil || node.Kind != KindCommand {
		return Result{}, fmt.Errorf("dispatch: node %d is not a command", cand.Node)
	}

	requestID := e.newID()
	cc := conditions.Context{
		RequestID:  requestID,
		Path:       cand.Path,
		Attributes: e.tree.Attributes(cand.Node),
		State:      conditions.StateFrom(ctx),
	}

	if err := e.checkNodeConditions(ctx, cand, cc); err != nil {
		e.logger.Warn("[%s] %s: %v", requestID, joinPath(cand.Path), err)
		return Result{}, err
	}

	args, err := e.convert(ctx, cand, cc)
	if err != nil {
		e.logger.Warn("[%s] %s: %v", requestID, joinPath(cand.Path), err)
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	e.logger.Debug("[%s] invoking %s with %d argument(s)", requestID, joinPath(cand.Path), len(args))
	payload, err := node.Handler(ctx, args)
	if err != nil {
		e.logger.Warn("[%s] %s failed: %v", requestID, joinPath(cand.Path), err)
		return Result{}, err
	}

	return Result{RequestID: requestID, Path: cand.Path, Payload: payload}, nil
}

// checkNodeConditions evaluates root, ancestor and command conditions in
// that order and stops at the first failure.
func (e *Engine) checkNodeConditions(ctx context.Context, cand Candidate, cc conditions.Context) error {
	chain := append(e.tree.Ancestors(cand.Node), cand.Node)
	for _, id := range chain {
		for _, c := range e.tree.Node(id).Conditions {
			if err := c.Check(ctx, cc); err != nil {
				return usage.ConditionNotSatisfied(cand.Path, c.Name(), "", err)
			}
		}
	}
	return nil
}

// convert builds the handler's argument list in signature order.
func (e *Engine) convert(ctx context.Context, cand Candidate, cc conditions.Context) ([]any, error) {
	sig := e.tree.Node(cand.Node).Signature
	args := make([]any, len(sig))
	bound := make([]*params.Bound, len(sig))
	for i := range cand.Bound {
		bound[cand.Bound[i].Index] = &cand.Bound[i]
	}

	for i, shape := range sig {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if bound[i] == nil {
			args[i] = shape.Default()
			continue
		}

		value, err := e.parseValues(ctx, cand.Path, shape, bound[i].Values)
		if err != nil {
			return nil, err
		}

		pc := cc
		pc.Parameter = shape.Identity()
		pc.Value = value
		if len(shape.Attributes()) > 0 {
			pc.Attributes = make(map[string]string, len(cc.Attributes)+len(shape.Attributes()))
			for k, v := range cc.Attributes {
				pc.Attributes[k] = v
			}
			for k, v := range shape.Attributes() {
				pc.Attributes[k] = v
			}
		}
		for _, c := range shape.Conditions() {
			if err := c.Check(ctx, pc); err != nil {
				return nil, usage.ConditionNotSatisfied(cand.Path, c.Name(), shape.Identity(), err)
			}
		}

		args[i] = value
	}
	return args, nil
}

func (e *Engine) parseValues(ctx context.Context, path []string, shape params.Shape, raw []string) (any, error) {
	p, ok := e.parsers.Lookup(shape.Type())
	if !ok {
		return nil, usage.ParameterParse(path, shape.Identity(), fmt.Errorf("no parser for type %q", shape.Type()))
	}

	if !shape.IsCollection() {
		v, err := p.Parse(ctx, raw[0])
		if err != nil {
			return nil, usage.ParameterParse(path, shape.Identity(), err)
		}
		return v, nil
	}

	values := make([]any, len(raw))
	for i, r := range raw {
		v, err := p.Parse(ctx, r)
		if err != nil {
			return nil, usage.ParameterParse(path, shape.Identity(), err)
		}
		values[i] = v
	}
	return values, nil
}

// Arg returns args[i] as T. Missing or mistyped arguments yield the zero
// value and false.
func Arg[T any](args []any, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(args) {
		return zero, false
	}
	v, ok := args[i].(T)
	return v, ok
}

// Values returns the collection at args[i] as []T. It fails if any
// element is not a T.
func Values[T any](args []any, i int) ([]T, bool) {
	raw, ok := Arg[[]any](args, i)
	if !ok {
		return nil, false
	}
	out := make([]T, len(raw))
	for j, v := range raw {
		t, ok := v.(T)
		if !ok {
			return nil, false
		}
		out[j] = t
	}
	return out, true
}
