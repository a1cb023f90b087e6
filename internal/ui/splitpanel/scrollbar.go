package splitpanel

import "github.com/charmbracelet/lipgloss"

const (
	thumbChar = "█"
	trackChar = "│"
)

// Thumb returns the first row and length of the scrollbar thumb for a
// track of rows cells showing total lines from offset. A zero length
// means everything fits.
func Thumb(rows, total, offset int) (start, length int) {
	if total <= rows || rows <= 0 {
		return 0, 0
	}

	length = max(rows*rows/total, 1)
	length = min(length, max(rows-2, 1))

	travel := rows - length
	scrollable := total - rows
	start = offset * travel / scrollable
	return min(max(start, 0), travel), length
}

func (l *Layout) scrollbar(rows, total, offset int, focused bool) []string {
	bar := make([]string, rows)
	start, length := Thumb(rows, total, offset)
	if length == 0 {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}

	track := lipgloss.NewStyle().Foreground(l.dim)
	thumb := track
	if focused {
		thumb = lipgloss.NewStyle().Foreground(l.active)
	}

	for i := range bar {
		if i >= start && i < start+length {
			bar[i] = thumb.Render(thumbChar)
		} else {
			bar[i] = track.Render(trackChar)
		}
	}
	return bar
}
