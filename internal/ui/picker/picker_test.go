package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

func options() []Option {
	return []Option{
		{Label: "math sum", Detail: "<numbers...>"},
		{Label: "math sum", Detail: "--values <int...>"},
		{Label: "math div"},
	}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Navigation(t *testing.T) {
	m := New("pick one", options(), style.NopStyler{})

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"down", []tea.KeyMsg{{Type: tea.KeyDown}}, 1},
		{"vim down twice", []tea.KeyMsg{runes("j"), runes("j")}, 2},
		{"down wraps", []tea.KeyMsg{runes("j"), runes("j"), runes("j")}, 0},
		{"up wraps", []tea.KeyMsg{{Type: tea.KeyUp}}, 2},
		{"end", []tea.KeyMsg{runes("G")}, 2},
		{"home", []tea.KeyMsg{runes("G"), runes("g")}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := press(t, m, tt.keys...)
			require.Equal(t, tt.want, got.cursor)
			_, chosen := got.Chosen()
			require.False(t, chosen)
		})
	}
}

func TestModel_Choose(t *testing.T) {
	m := New("pick one", options(), style.NopStyler{})

	m, cmd := press(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	idx, ok := m.Chosen()
	require.True(t, ok)
	require.Equal(t, 1, idx)
	require.False(t, m.Cancelled())
}

func TestModel_Cancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, cmd := press(t, New("pick", options(), style.NopStyler{}), k)
		require.NotNil(t, cmd)
		require.True(t, m.Cancelled())
		_, ok := m.Chosen()
		require.False(t, ok)
	}

	// Quitting works with nothing to choose.
	m, _ := press(t, New("pick", nil, style.NopStyler{}), tea.KeyMsg{Type: tea.KeyEnter}, runes("q"))
	require.True(t, m.Cancelled())
}

func TestModel_View(t *testing.T) {
	m, _ := press(t, New("2 commands match", options(), style.NopStyler{}), runes("j"))
	view := m.View()

	require.Contains(t, view, "2 commands match\n\n")
	require.Contains(t, view, "   math sum  <numbers...>\n")
	require.Contains(t, view, " → math sum  --values <int...>\n")
	require.Contains(t, view, "   math div\n")
	require.Contains(t, view, "cancel")
}
