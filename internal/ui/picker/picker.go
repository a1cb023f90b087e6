// Package picker lets an interactive user choose one of several matching
// commands when an invocation is ambiguous.
package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

var (
	// ErrNotInteractive is returned when stdin or the output is not a terminal.
	ErrNotInteractive = errors.New("picker requires an interactive terminal")

	// ErrCancelled is returned when the user quits without choosing.
	ErrCancelled = errors.New("selection cancelled")
)

// Option is one selectable entry.
type Option struct {
	Label  string
	Detail string
}

// Model is the bubbletea model of the picker.
type Model struct {
	title   string
	options []Option
	styler  domain.Styler
	keys    KeyMap
	help    help.Model

	cursor    int
	chosen    int
	cancelled bool
}

// New creates a picker model with the cursor on the first option.
func New(title string, options []Option, s domain.Styler) Model {
	return Model{
		title:   title,
		options: options,
		styler:  s,
		keys:    DefaultKeyMap,
		help:    help.New(),
		chosen:  -1,
	}
}

// Chosen returns the selected index, or false if nothing was chosen.
func (m Model) Chosen() (int, bool) {
	return m.chosen, m.chosen >= 0
}

// Cancelled reports whether the user quit without choosing.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.options) == 0 {
		if ok && key.Matches(keyMsg, m.keys.Quit) {
			m.cancelled = true
			return m, tea.Quit
		}
		return m, nil
	}

	last := len(m.options) - 1
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = last
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < last {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case key.Matches(keyMsg, m.keys.Home):
		m.cursor = 0
	case key.Matches(keyMsg, m.keys.End):
		m.cursor = last
	case key.Matches(keyMsg, m.keys.Choose):
		m.chosen = m.cursor
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styler.Header(m.title))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		label := opt.Label
		if i == m.cursor {
			b.WriteString(" → ")
			label = m.styler.Highlight(label)
		} else {
			b.WriteString("   ")
		}
		b.WriteString(label)
		if opt.Detail != "" {
			b.WriteString("  ")
			b.WriteString(m.styler.Muted(opt.Detail))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	b.WriteString("\n")
	return b.String()
}

// Interactive reports whether stdin and out are both terminals.
func Interactive(out *os.File) bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(out.Fd()))
}

// Run shows the picker on out and returns the chosen index.
func Run(ctx context.Context, title string, options []Option, s domain.Styler, out *os.File) (int, error) {
	// Bubble Tea requires a real terminal
	if !Interactive(out) {
		return -1, ErrNotInteractive
	}
	return run(ctx, New(title, options, s), os.Stdin, out)
}

func run(ctx context.Context, m Model, in io.Reader, out io.Writer) (int, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		return -1, fmt.Errorf("picker: %w", err)
	}

	fm := final.(Model)
	if idx, ok := fm.Chosen(); ok {
		return idx, nil
	}
	return -1, ErrCancelled
}
