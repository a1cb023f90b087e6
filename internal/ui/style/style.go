// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Styler implements domain.Styler with a resolved color theme.
type Styler struct {
	enabled bool
	colors  ColorConfig

	success   lipgloss.Style
	warning   lipgloss.Style
	errorS    lipgloss.Style
	info      lipgloss.Style
	muted     lipgloss.Style
	header    lipgloss.Style
	highlight lipgloss.Style
}

// New creates a Styler writing to w. Styling is off when enable is false or
// when NO_COLOR or CMDTREE_NO_COLOR is set. The theme comes from cfg, which
// may be nil.
func New(w io.Writer, enable bool, cfg domain.ConfigProvider) *Styler {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CMDTREE_NO_COLOR") != "" {
		enable = false
	}

	s := &Styler{enabled: enable}
	if !enable {
		return s
	}

	theme := "default"
	if cfg != nil {
		if name, ok := cfg.Get("theme"); ok && name != "" {
			theme = name
		}
	}
	s.colors = LoadColorConfig(theme)

	// ANSI256 regardless of TTY detection, so basic and extended colors both render.
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	s.success = makeStyle(r, s.colors.Success)
	s.warning = makeStyle(r, s.colors.Warning)
	s.errorS = makeStyle(r, s.colors.Error)
	s.info = makeStyle(r, s.colors.Info)
	s.muted = makeStyle(r, s.colors.Muted)
	s.header = makeStyle(r, s.colors.Header)
	s.highlight = makeStyle(r, s.colors.Highlight).Bold(true)
	return s
}

// makeStyle creates a style from "bold" or an ANSI color number (0-255).
func makeStyle(r *lipgloss.Renderer, value string) lipgloss.Style {
	if value == "bold" {
		return r.NewStyle().Bold(true)
	}
	return r.NewStyle().Foreground(lipgloss.Color(value))
}

func (s *Styler) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

// Enabled returns whether styling is on.
func (s *Styler) Enabled() bool {
	return s.enabled
}

// Colors returns the resolved theme, empty when styling is off.
func (s *Styler) Colors() ColorConfig {
	return s.colors
}

// Success styles text for successful operations.
func (s *Styler) Success(text string) string { return s.render(s.success, text) }

// Warning styles text for warning messages.
func (s *Styler) Warning(text string) string { return s.render(s.warning, text) }

// Error styles text for error messages.
func (s *Styler) Error(text string) string { return s.render(s.errorS, text) }

// Info styles text for informational messages and command names.
func (s *Styler) Info(text string) string { return s.render(s.info, text) }

// Muted styles text for less important or secondary information.
func (s *Styler) Muted(text string) string { return s.render(s.muted, text) }

// Header styles text for section headers or titles.
func (s *Styler) Header(text string) string { return s.render(s.header, text) }

// Highlight styles the selected row of a picker.
func (s *Styler) Highlight(text string) string { return s.render(s.highlight, text) }
