package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShape_Validation(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (Shape, error)
		wantErr bool
	}{
		{
			name:  "positional with name",
			build: func() (Shape, error) { return Positional(Spec{Name: "path"}) },
		},
		{
			name:    "positional without name",
			build:   func() (Shape, error) { return Positional(Spec{}) },
			wantErr: true,
		},
		{
			name:    "named without names",
			build:   func() (Shape, error) { return Named(Spec{Name: "x"}) },
			wantErr: true,
		},
		{
			name:    "short name too long",
			build:   func() (Shape, error) { return Named(Spec{Short: "ab"}) },
			wantErr: true,
		},
		{
			name:    "dashed long name",
			build:   func() (Shape, error) { return Named(Spec{Long: "--limit"}) },
			wantErr: true,
		},
		{
			name:    "long name with equals",
			build:   func() (Shape, error) { return Named(Spec{Long: "a=b"}) },
			wantErr: true,
		},
		{
			name:    "min above max",
			build:   func() (Shape, error) { return PositionalCollection(Spec{Name: "xs", Min: 3, Max: 2}) },
			wantErr: true,
		},
		{
			name:    "negative min",
			build:   func() (Shape, error) { return NamedCollection(Spec{Long: "xs", Min: -1}) },
			wantErr: true,
		},
		{
			name:    "bounds on a single shape",
			build:   func() (Shape, error) { return Named(Spec{Long: "x", Max: 2}) },
			wantErr: true,
		},
		{
			name:    "bounds on a greedy shape",
			build:   func() (Shape, error) { return NamedGreedy(Spec{Long: "x", Min: 1}) },
			wantErr: true,
		},
		{
			name:    "optional collection with min and no default",
			build:   func() (Shape, error) { return NamedCollection(Spec{Long: "xs", Min: 1, Optional: true}) },
			wantErr: true,
		},
		{
			name: "optional collection with min and a default",
			build: func() (Shape, error) {
				return NamedCollection(Spec{Long: "xs", Min: 1, Optional: true, Default: []any{"a"}})
			},
		},
		{
			name:  "unbounded collection",
			build: func() (Shape, error) { return PositionalCollection(Spec{Name: "xs", Min: 1}) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidShape)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestShape_Defaults(t *testing.T) {
	s := Must(Positional(Spec{Name: "path"}))
	require.Equal(t, DefaultType, s.Type())
	require.Nil(t, s.Default())

	c := Must(NamedCollection(Spec{Long: "tag"}))
	require.Equal(t, []any{}, c.Default())
	require.True(t, c.Omissible())

	g := Must(NamedGreedy(Spec{Long: "words"}))
	require.False(t, g.Omissible())
}

func TestShape_Omissible(t *testing.T) {
	require.True(t, Must(Named(Spec{Long: "x", Optional: true})).Omissible())
	require.False(t, Must(Named(Spec{Long: "x"})).Omissible())
	require.True(t, Must(PositionalCollection(Spec{Name: "xs"})).Omissible())
	require.False(t, Must(PositionalCollection(Spec{Name: "xs", Min: 1})).Omissible())
}

func TestShape_KeyAndIdentity(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		key      string
		identity string
		usage    string
	}{
		{
			name:     "long and short",
			shape:    Must(Named(Spec{Name: "limit", Long: "limit", Short: "n", Type: "int"})),
			key:      "limit",
			identity: "--limit",
			usage:    "--limit <int>",
		},
		{
			name:     "short only",
			shape:    Must(Named(Spec{Short: "v", Optional: true})),
			key:      "v",
			identity: "-v",
			usage:    "[-v <string>]",
		},
		{
			name:     "positional",
			shape:    Must(Positional(Spec{Name: "path"})),
			key:      "path",
			identity: "<path>",
			usage:    "<path>",
		},
		{
			name:     "positional collection",
			shape:    Must(PositionalCollection(Spec{Name: "words"})),
			key:      "words",
			identity: "<words>",
			usage:    "[<words...>]",
		},
		{
			name:     "greedy",
			shape:    Must(NamedGreedy(Spec{Long: "values", Type: "int"})),
			key:      "values",
			identity: "--values",
			usage:    "--values <int...>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.shape.Key())
			require.Equal(t, tt.identity, tt.shape.Identity())
			require.Equal(t, tt.usage, tt.shape.Usage())
		})
	}
}

func TestMust_Panics(t *testing.T) {
	require.Panics(t, func() { Must(Positional(Spec{})) })
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "named greedy", KindNamedGreedy.String())
	require.Equal(t, "Kind(9)", Kind(9).String())
}
