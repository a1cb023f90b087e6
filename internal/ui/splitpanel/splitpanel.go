// Package splitpanel renders a bordered sidebar and content pane side by
// side, each with its own scrollbar.
package splitpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

// chrome is the width a panel spends on its border, padding and scrollbar.
const chrome = 6

// Panel is the visible slice of one pane.
type Panel struct {
	Lines      []string // already scrolled to Offset
	Offset     int
	TotalLines int // zero means len(Lines)
}

// Config bounds the sidebar width.
type Config struct {
	SidebarPercent float64
	SidebarMin     int
	SidebarMax     int
}

// DefaultConfig gives the sidebar a quarter of the width.
var DefaultConfig = Config{SidebarPercent: 0.25, SidebarMin: 18, SidebarMax: 40}

// Layout holds the computed widths and which pane has focus.
type Layout struct {
	SidebarWidth int
	ContentWidth int
	FocusSidebar bool

	active lipgloss.Color
	dim    lipgloss.Color
}

// NewLayout splits width between the panes. Focus starts on the sidebar.
func NewLayout(width int, cfg Config, colors style.ColorConfig) *Layout {
	sidebar := int(float64(width) * cfg.SidebarPercent)
	sidebar = max(sidebar, cfg.SidebarMin)
	if cfg.SidebarMax > 0 {
		sidebar = min(sidebar, cfg.SidebarMax)
	}

	return &Layout{
		SidebarWidth: sidebar,
		ContentWidth: max(width-sidebar, chrome+1),
		FocusSidebar: true,
		active:       colorOf(colors.Highlight),
		dim:          colorOf(colors.Muted),
	}
}

// colorOf maps a theme value to a color; "bold" has none.
func colorOf(value string) lipgloss.Color {
	if value == "bold" {
		return lipgloss.Color("")
	}
	return lipgloss.Color(value)
}

// Render joins both panes at the given total height.
func (l *Layout) Render(sidebar, content Panel, height int) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		l.pane(sidebar, l.SidebarWidth, height, l.FocusSidebar),
		l.pane(content, l.ContentWidth, height, !l.FocusSidebar),
	)
}

func (l *Layout) pane(p Panel, width, height int, focused bool) string {
	inner := max(width-chrome, 1)
	rows := max(height-2, 1)

	total := p.TotalLines
	if total == 0 {
		total = len(p.Lines)
	}
	thumb := l.scrollbar(rows, total, p.Offset, focused)

	out := make([]string, rows)
	for i := range rows {
		line := ""
		if i < len(p.Lines) {
			line = p.Lines[i]
		}
		out[i] = fit(line, inner) + " " + thumb[i]
	}

	border := l.dim
	if focused {
		border = l.active
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(strings.Join(out, "\n"))
}

// fit pads or truncates line to exactly width cells.
func fit(line string, width int) string {
	w := lipgloss.Width(line)
	if w == width {
		return line
	}
	if w < width {
		return line + strings.Repeat(" ", width-w)
	}

	runes := []rune(line)
	for i := len(runes); i > 0; i-- {
		if cut := string(runes[:i]) + "…"; lipgloss.Width(cut) <= width {
			return cut + strings.Repeat(" ", width-lipgloss.Width(cut))
		}
	}
	return strings.Repeat(" ", width)
}

// SidebarInnerWidth is the text width available in the sidebar.
func (l *Layout) SidebarInnerWidth() int { return max(l.SidebarWidth-chrome, 1) }

// ContentInnerWidth is the text width available in the content pane.
func (l *Layout) ContentInnerWidth() int { return max(l.ContentWidth-chrome, 1) }

// Rows is the number of text lines a pane shows at the given height.
func Rows(height int) int { return max(height-2, 1) }
