package dispatchers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/conditions"
	"github.com/footprint-tools/cmdtree/internal/params"
	"github.com/footprint-tools/cmdtree/internal/parsers"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

var errBoom = errors.New("boom")

// echoArgs returns the handler arguments as its payload.
func echoArgs(_ context.Context, args []any) (any, error) {
	return args, nil
}

// Helper to create a tree exercising every node and shape kind
func createTestTree() *Tree {
	tree := NewTree(RootSpec{Name: "cmdtree", Summary: "Test CLI"})

	tree.MustCommand(CommandSpec{
		Key:      "echo",
		Summary:  "Print words",
		Category: CategoryBasics,
		Params: []params.Shape{
			params.Must(params.PositionalCollection(params.Spec{Name: "words", Min: 1})),
		},
		Handler: echoArgs,
	})

	math := tree.MustGroup(GroupSpec{Key: "math", Summary: "Arithmetic", Aliases: []string{"m"}})
	tree.MustCommand(CommandSpec{
		Key:    "sum",
		Parent: math,
		Params: []params.Shape{
			params.Must(params.PositionalCollection(params.Spec{Name: "numbers", Type: parsers.TypeInt, Min: 1})),
		},
		Handler: func(_ context.Context, args []any) (any, error) {
			nums, _ := Values[int](args, 0)
			total := 0
			for _, n := range nums {
				total += n
			}
			return total, nil
		},
	})
	tree.MustCommand(CommandSpec{
		Key:    "sum",
		Parent: math,
		Params: []params.Shape{
			params.Must(params.NamedGreedy(params.Spec{Long: "values", Type: parsers.TypeInt})),
		},
		Handler: func(_ context.Context, args []any) (any, error) {
			nums, _ := Values[int](args, 0)
			return len(nums), nil
		},
	})
	tree.MustCommand(CommandSpec{
		Key:    "div",
		Parent: math,
		Params: []params.Shape{
			params.Must(params.Positional(params.Spec{Name: "a", Type: parsers.TypeFloat})),
			params.Must(params.Positional(params.Spec{Name: "b", Type: parsers.TypeFloat})),
			params.Must(params.Named(params.Spec{Long: "precision", Short: "p", Type: parsers.TypeInt, Optional: true, Default: 2})),
		},
		Handler: func(_ context.Context, args []any) (any, error) {
			a, _ := Arg[float64](args, 0)
			b, _ := Arg[float64](args, 1)
			p, _ := Arg[int](args, 2)
			if b == 0 {
				return nil, errBoom
			}
			return fmt.Sprintf("%.*f", p, a/b), nil
		},
	})

	util := tree.MustGroup(GroupSpec{})
	tree.MustCommand(CommandSpec{Key: "ping", Parent: util, Handler: func(context.Context, []any) (any, error) {
		return "pong", nil
	}})

	tree.MustCommand(CommandSpec{
		Key: "sibling",
		Params: []params.Shape{
			params.Must(params.Named(params.Spec{Long: "force", Type: parsers.TypeBool, Optional: true, Default: false})),
		},
		Handler: func(context.Context, []any) (any, error) { return "command", nil },
	})
	sibling := tree.MustGroup(GroupSpec{Key: "sibling"})
	tree.MustCommand(CommandSpec{Key: "child", Parent: sibling, Handler: func(context.Context, []any) (any, error) {
		return "child", nil
	}})

	tree.MustCommand(CommandSpec{
		Key:     "command",
		Params:  []params.Shape{params.Must(params.Positional(params.Spec{Name: "a"}))},
		Handler: echoArgs,
	})
	tree.MustCommand(CommandSpec{
		Key:     "command",
		Params:  []params.Shape{params.Must(params.PositionalCollection(params.Spec{Name: "xs", Min: 1}))},
		Handler: echoArgs,
	})

	admin := tree.MustGroup(GroupSpec{Key: "admin", Conditions: []conditions.Condition{conditions.RequireState("user")}})
	tree.MustCommand(CommandSpec{Key: "reset", Parent: admin, Handler: echoArgs})

	tree.MustCommand(CommandSpec{
		Key: "limit",
		Params: []params.Shape{
			params.Must(params.Positional(params.Spec{
				Name: "n",
				Type: parsers.TypeInt,
				Conditions: []conditions.Condition{conditions.New("positive", func(_ context.Context, c conditions.Context) error {
					if c.Value.(int) <= 0 {
						return conditions.ErrNotSatisfied
					}
					return nil
				})},
			})),
		},
		Handler: echoArgs,
	})

	tree.MustCommand(CommandSpec{Key: "fail", Handler: func(context.Context, []any) (any, error) {
		return nil, errBoom
	}})

	tree.MustCommand(CommandSpec{Key: "nothing", Handler: func(context.Context, []any) (any, error) {
		return nil, nil
	}})

	return tree
}

func newTestEngine(opts ...Option) *Engine {
	n := 0
	ids := WithRequestIDs(func() string {
		n++
		return fmt.Sprintf("req-%d", n)
	})
	return NewEngine(createTestTree(), append([]Option{ids}, opts...)...)
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		path    []string
		payload any
	}{
		{name: "collection", input: "echo hello world", path: []string{"echo"}, payload: []any{[]any{"hello", "world"}}},
		{name: "quoted value", input: `echo "hello world"`, path: []string{"echo"}, payload: []any{[]any{"hello world"}}},
		{name: "sibling by signature", input: "math sum 1 2 3", path: []string{"math", "sum"}, payload: 6},
		{name: "greedy sibling", input: "math sum --values 1 2 3", path: []string{"math", "sum"}, payload: 3},
		{name: "alias", input: "m div 1 4", path: []string{"math", "div"}, payload: "0.25"},
		{name: "default used", input: "math div 10 4", path: []string{"math", "div"}, payload: "2.50"},
		{name: "named first", input: "math div -p 1 10 4", path: []string{"math", "div"}, payload: "2.5"},
		{name: "equals form", input: "math div 10 4 --precision=0", path: []string{"math", "div"}, payload: "2"},
		{name: "transparent group", input: "ping", path: []string{"ping"}, payload: "pong"},
		{name: "nil payload", input: "nothing", path: []string{"nothing"}, payload: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			res, err := e.Execute(context.Background(), tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.path, res.Path)
			require.Equal(t, tt.payload, res.Payload)
			require.Equal(t, "req-1", res.RequestID)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  usage.ErrorKind
		check func(t *testing.T, ue *usage.Error)
	}{
		{
			name:  "unterminated quote",
			input: `echo "oops`,
			kind:  usage.ErrTokenization,
		},
		{
			name:  "unknown command with suggestion",
			input: "eco hi",
			kind:  usage.ErrCommandNotFound,
			check: func(t *testing.T, ue *usage.Error) {
				require.Equal(t, "eco", ue.Command)
				require.Contains(t, ue.Suggestions, "echo")
			},
		},
		{
			name:  "unknown subcommand",
			input: "math mul 1 2",
			kind:  usage.ErrCommandNotFound,
			check: func(t *testing.T, ue *usage.Error) {
				require.Equal(t, "math mul", ue.Command)
			},
		},
		{
			name:  "group without command",
			input: "math",
			kind:  usage.ErrCommandNotFound,
			check: func(t *testing.T, ue *usage.Error) {
				require.Equal(t, []string{"div", "sum"}, ue.Suggestions)
			},
		},
		{
			name:  "missing argument",
			input: "math div 1",
			kind:  usage.ErrParameterBinding,
			check: func(t *testing.T, ue *usage.Error) {
				require.Equal(t, "<b>", ue.Parameter)
				require.Equal(t, "math div", ue.Command)
			},
		},
		{
			name:  "bad value",
			input: "math div one 2",
			kind:  usage.ErrParameterParse,
			check: func(t *testing.T, ue *usage.Error) {
				require.Equal(t, "<a>", ue.Parameter)
			},
		},
		{
			name:  "ambiguous",
			input: "command x",
			kind:  usage.ErrAmbiguousInvocation,
		},
		{
			name:  "group condition",
			input: "admin reset",
			kind:  usage.ErrConditionNotSatisfied,
			check: func(t *testing.T, ue *usage.Error) {
				require.Equal(t, "require user", ue.Condition)
				require.ErrorIs(t, ue, conditions.ErrNotSatisfied)
			},
		},
		{
			name:  "parameter condition",
			input: "limit 0",
			kind:  usage.ErrConditionNotSatisfied,
			check: func(t *testing.T, ue *usage.Error) {
				require.Equal(t, "positive", ue.Condition)
				require.Equal(t, "<n>", ue.Parameter)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestEngine().Execute(context.Background(), tt.input)
			require.True(t, usage.Is(err, tt.kind), "got %v", err)

			var ue *usage.Error
			require.True(t, errors.As(err, &ue))
			if tt.check != nil {
				tt.check(t, ue)
			}
		})
	}
}

func TestExecute_ConditionSatisfiedByState(t *testing.T) {
	ctx := conditions.WithState(context.Background(), map[string]any{"user": "ada"})
	res, err := newTestEngine().Execute(ctx, "admin reset")
	require.NoError(t, err)
	require.Equal(t, []string{"admin", "reset"}, res.Path)
}

func TestExecute_HandlerErrorUnchanged(t *testing.T) {
	e := newTestEngine()

	_, err := e.Execute(context.Background(), "fail")
	require.Equal(t, errBoom, err)
	require.Equal(t, usage.ErrUnknown, usage.KindOf(err))

	_, err = e.Execute(context.Background(), "math div 1 0")
	require.Equal(t, errBoom, err)
	require.False(t, usage.Is(err, usage.ErrParameterParse))
	require.False(t, usage.Is(err, usage.ErrConditionNotSatisfied))
}

func TestExecute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestEngine().Execute(ctx, "ping")
	require.ErrorIs(t, err, context.Canceled)
}

func TestExecute_CaseInsensitive(t *testing.T) {
	_, err := newTestEngine().Execute(context.Background(), "MATH DIV 1 2 --PRECISION 1")
	require.True(t, usage.Is(err, usage.ErrCommandNotFound))

	res, err := newTestEngine(WithOptions(params.Options{CaseInsensitive: true})).
		Execute(context.Background(), "MATH DIV 1 2 --PRECISION 1")
	require.NoError(t, err)
	require.Equal(t, "0.5", res.Payload)
}

func TestExecuteArgs(t *testing.T) {
	res, err := newTestEngine().ExecuteArgs(context.Background(), []string{"echo", "--literal?", "x"})
	require.Error(t, err, "name tokens are not positional values")
	require.True(t, usage.Is(err, usage.ErrParameterBinding))

	res, err = newTestEngine().ExecuteArgs(context.Background(), []string{"echo", "a b", "c"})
	require.NoError(t, err)
	require.Equal(t, []any{[]any{"a b", "c"}}, res.Payload)
}

func TestExecuteNamed(t *testing.T) {
	e := newTestEngine()

	res, err := e.ExecuteNamed(context.Background(), []string{"math", "div"}, map[string][]string{
		"a":         {"9"},
		"b":         {"2"},
		"precision": {"1"},
	})
	require.NoError(t, err)
	require.Equal(t, "4.5", res.Payload)

	res, err = e.ExecuteNamed(context.Background(), []string{"math", "sum"}, map[string][]string{"values": {"4", "5"}})
	require.NoError(t, err)
	require.Equal(t, 2, res.Payload)

	_, err = e.ExecuteNamed(context.Background(), []string{"math", "div"}, map[string][]string{"a": {"1", "2"}, "b": {"1"}})
	require.True(t, usage.Is(err, usage.ErrParameterBinding))

	_, err = e.ExecuteNamed(context.Background(), []string{"ping", "extra"}, nil)
	require.True(t, usage.Is(err, usage.ErrCommandNotFound))
}

func TestDispatch_NotACommand(t *testing.T) {
	e := newTestEngine()
	_, err := e.Dispatch(context.Background(), Candidate{Node: e.Tree().Root()})
	require.Error(t, err)
}

func TestCustomParsers(t *testing.T) {
	reg := parsers.Default().Register(parsers.TypeFloat, parsers.Func(func(context.Context, string) (any, error) {
		return 1.0, nil
	}))

	res, err := newTestEngine(WithParsers(reg)).Execute(context.Background(), "math div x y --precision 0")
	require.NoError(t, err)
	require.Equal(t, "1", res.Payload)
}

func TestArgAndValues(t *testing.T) {
	args := []any{1, []any{"a", "b"}, []any{"a", 2}}

	n, ok := Arg[int](args, 0)
	require.True(t, ok)
	require.Equal(t, 1, n)

	_, ok = Arg[string](args, 0)
	require.False(t, ok)
	_, ok = Arg[int](args, 9)
	require.False(t, ok)

	words, ok := Values[string](args, 1)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, words)

	_, ok = Values[string](args, 2)
	require.False(t, ok)
}

func TestDispatch_ConditionsRunRootFirstAndBeforeParsing(t *testing.T) {
	parsed := 0
	reg := parsers.Default().Register("counted", parsers.Func(func(_ context.Context, raw string) (any, error) {
		parsed++
		return raw, nil
	}))

	tree := NewTree(RootSpec{Name: "cmdtree", Conditions: []conditions.Condition{conditions.RequireState("root")}})
	g := tree.MustGroup(GroupSpec{Key: "vault", Conditions: []conditions.Condition{conditions.RequireState("group")}})
	tree.MustCommand(CommandSpec{
		Key:        "open",
		Parent:     g,
		Conditions: []conditions.Condition{conditions.RequireState("command")},
		Params: []params.Shape{
			params.Must(params.Positional(params.Spec{Name: "id", Type: "counted"})),
		},
		Handler: echoArgs,
	})
	e := NewEngine(tree, WithParsers(reg))

	tests := []struct {
		name  string
		state map[string]any
		want  string
	}{
		{name: "all fail", state: nil, want: "require root"},
		{name: "root passes", state: map[string]any{"root": true}, want: "require group"},
		{name: "group passes", state: map[string]any{"root": true, "group": true}, want: "require command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := conditions.WithState(context.Background(), tt.state)
			_, err := e.Execute(ctx, "vault open x")
			require.True(t, usage.Is(err, usage.ErrConditionNotSatisfied), "got %v", err)

			var ue *usage.Error
			require.True(t, errors.As(err, &ue))
			require.Equal(t, tt.want, ue.Condition)
			require.Zero(t, parsed)
		})
	}

	ctx := conditions.WithState(context.Background(), map[string]any{"root": true, "group": true, "command": true})
	res, err := e.Execute(ctx, "vault open x")
	require.NoError(t, err)
	require.Equal(t, []any{"x"}, res.Payload)
	require.Equal(t, 1, parsed)
}
