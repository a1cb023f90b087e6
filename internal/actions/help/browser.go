package help

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	bubblehelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/ui/splitpanel"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

// ErrNotInteractive is returned by Browse outside a terminal.
var ErrNotInteractive = errors.New("browse requires an interactive terminal")

// Browse opens a two-pane help browser: the command tree on the left and
// the help of the selected entry on the right.
func Browse(ctx context.Context, args []any) (any, error) {
	return browse(ctx, args, DefaultDeps(ctx))
}

func browse(ctx context.Context, _ []any, deps Deps) (any, error) {
	if deps.Tree == nil {
		return nil, ErrNoTree
	}
	if deps.Browse == nil {
		return nil, ErrNotInteractive
	}
	return nil, deps.Browse(ctx, NewModel(deps.Tree, deps.Styler, deps.Colors))
}

type entry struct {
	id    dispatchers.NodeID
	label string
}

// Model is the bubbletea model of the help browser.
type Model struct {
	tree    *dispatchers.Tree
	styler  domain.Styler
	colors  style.ColorConfig
	entries []entry
	help    bubblehelp.Model

	cursor        int
	offset        int
	contentOffset int
	focusSidebar  bool
	width         int
	height        int
}

// NewModel lists the root and every visible group and command, depth first.
func NewModel(tree *dispatchers.Tree, s domain.Styler, colors style.ColorConfig) Model {
	m := Model{
		tree:         tree,
		styler:       s,
		colors:       colors,
		help:         bubblehelp.New(),
		focusSidebar: true,
	}
	m.entries = append(m.entries, entry{id: tree.Root(), label: tree.Name()})
	m.collect(tree.Root(), 1)
	return m
}

func (m *Model) collect(id dispatchers.NodeID, depth int) {
	children := m.tree.Visible(id)
	sort.SliceStable(children, func(i, j int) bool {
		return m.tree.Node(children[i]).Key < m.tree.Node(children[j]).Key
	})
	for _, cid := range children {
		n := m.tree.Node(cid)
		label := strings.Repeat("  ", depth) + n.Key
		if n.Kind == dispatchers.KindGroup {
			label += "/"
		}
		m.entries = append(m.entries, entry{id: cid, label: label})
		if n.Kind == dispatchers.KindGroup {
			m.collect(cid, depth+1)
		}
	}
}

// Selected returns the node under the cursor.
func (m Model) Selected() dispatchers.NodeID {
	return m.entries[m.cursor].id
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.follow()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, browserKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, browserKeys.Switch):
			m.focusSidebar = !m.focusSidebar
		case key.Matches(msg, browserKeys.Up):
			m.move(-1)
		case key.Matches(msg, browserKeys.Down):
			m.move(1)
		}
	}
	return m, nil
}

func (m *Model) move(delta int) {
	if !m.focusSidebar {
		last := max(len(m.content())-m.rows(), 0)
		m.contentOffset = min(max(m.contentOffset+delta, 0), last)
		return
	}

	next := m.cursor + delta
	if next < 0 || next >= len(m.entries) {
		return
	}
	m.cursor = next
	m.contentOffset = 0
	m.follow()
}

// follow scrolls the sidebar so the cursor stays visible.
func (m *Model) follow() {
	rows := m.rows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// rows is the visible line count of a pane; one line is kept for key help.
func (m Model) rows() int {
	return splitpanel.Rows(m.height - 1)
}

func (m Model) content() []string {
	text := strings.TrimRight(dispatchers.Help(m.tree, m.Selected(), m.styler), "\n")
	return strings.Split(text, "\n")
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	layout := splitpanel.NewLayout(m.width, splitpanel.DefaultConfig, m.colors)
	layout.FocusSidebar = m.focusSidebar
	rows := m.rows()

	var sidebar []string
	for i := m.offset; i < len(m.entries) && i < m.offset+rows; i++ {
		if i == m.cursor {
			sidebar = append(sidebar, m.styler.Highlight("→ "+strings.TrimLeft(m.entries[i].label, " ")))
			continue
		}
		sidebar = append(sidebar, "  "+m.entries[i].label)
	}

	content := m.content()
	visible := content[min(m.contentOffset, len(content)):]

	body := layout.Render(
		splitpanel.Panel{Lines: sidebar, Offset: m.offset, TotalLines: len(m.entries)},
		splitpanel.Panel{Lines: visible, Offset: m.contentOffset, TotalLines: len(content)},
		m.height-1,
	)
	return body + "\n" + m.help.ShortHelpView(browserKeys.ShortHelp())
}

// Interactive reports whether in and out are both terminals.
func Interactive(in, out *os.File) bool {
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

func runBrowser(ctx context.Context, m Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("help browser: %w", err)
	}
	return nil
}
