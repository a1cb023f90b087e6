package conditions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	called := false
	c := New("always", func(_ context.Context, cc Context) error {
		called = true
		require.Equal(t, []string{"math", "sum"}, cc.Path)
		return nil
	})

	require.Equal(t, "always", c.Name())
	require.NoError(t, c.Check(context.Background(), Context{Path: []string{"math", "sum"}}))
	require.True(t, called)
}

func TestRequireState(t *testing.T) {
	c := RequireState("user")

	err := c.Check(context.Background(), Context{})
	require.ErrorIs(t, err, ErrNotSatisfied)

	err = c.Check(context.Background(), Context{State: map[string]any{"user": nil}})
	require.ErrorIs(t, err, ErrNotSatisfied)

	err = c.Check(context.Background(), Context{State: map[string]any{"user": "ada"}})
	require.NoError(t, err)
}

func TestRequireAttribute(t *testing.T) {
	c := RequireAttribute("stage", "beta")

	err := c.Check(context.Background(), Context{Attributes: map[string]string{"stage": "ga"}})
	require.True(t, errors.Is(err, ErrNotSatisfied))
	require.Contains(t, err.Error(), `"ga"`)

	require.NoError(t, c.Check(context.Background(), Context{Attributes: map[string]string{"stage": "beta"}}))
}

func TestState(t *testing.T) {
	require.Nil(t, StateFrom(context.Background()))

	ctx := WithState(context.Background(), map[string]any{"k": 1})
	require.Equal(t, map[string]any{"k": 1}, StateFrom(ctx))
}
