package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/conditions"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

func TestShowVersion(t *testing.T) {
	deps := actionDependencies{Version: func() string { return "1.2.3" }}

	out, err := showVersion(context.Background(), nil, deps)
	require.NoError(t, err)
	require.Equal(t, "cmdtree version 1.2.3", out)
}

func TestEcho(t *testing.T) {
	out, err := Echo(context.Background(), []any{[]any{"hello", "big", "world"}})
	require.NoError(t, err)
	require.Equal(t, "hello big world", out)
}

func TestGreet(t *testing.T) {
	out, err := Greet(context.Background(), []any{"ada", []any{}})
	require.NoError(t, err)
	require.Equal(t, "hello, ada", out)

	out, err = Greet(context.Background(), []any{"ada", []any{"good", "morning"}})
	require.NoError(t, err)
	require.Equal(t, "good morning, ada", out)
}

func TestPing(t *testing.T) {
	out, err := Ping(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, "pong", out)
}

func TestSum(t *testing.T) {
	out, err := Sum(context.Background(), []any{[]any{1, 2, 39}})
	require.NoError(t, err)
	require.Equal(t, 42, out)

	_, err = Sum(context.Background(), []any{[]any{"x"}})
	require.Error(t, err)
}

func TestDiv(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"default precision", []any{10.0, 4.0, 2}, "2.50"},
		{"no decimals", []any{10.0, 3.0, 0}, "3"},
		{"negative", []any{-1.0, 8.0, 3}, "-0.125"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Div(context.Background(), tt.args)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}

	_, err := Div(context.Background(), []any{1.0, 0.0, 2})
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestApplicationState(t *testing.T) {
	ctx := context.Background()
	_, ok := ApplicationFrom(ctx)
	require.False(t, ok)

	app := &domain.Application{}
	tree := dispatchers.NewTree(dispatchers.RootSpec{Name: "cmdtree"})
	ctx = WithApplication(ctx, app, tree)

	got, ok := ApplicationFrom(ctx)
	require.True(t, ok)
	require.Same(t, app, got)

	gotTree, ok := TreeFrom(ctx)
	require.True(t, ok)
	require.Same(t, tree, gotTree)

	// No store was open, so history-only commands stay unavailable.
	_, ok = HistoryFrom(ctx)
	require.False(t, ok)
	require.NotContains(t, conditions.StateFrom(ctx), StateHistory)
}

func TestGreetAll(t *testing.T) {
	tests := []struct {
		names []any
		want  string
	}{
		{[]any{}, "hello"},
		{[]any{"ada"}, "hello, ada"},
		{[]any{"ada", "bob"}, "hello, ada and bob"},
		{[]any{"ada", "bob", "eve"}, "hello, ada, bob and eve"},
	}

	for _, tt := range tests {
		out, err := GreetAll(context.Background(), []any{tt.names})
		require.NoError(t, err)
		require.Equal(t, tt.want, out)
	}
}
