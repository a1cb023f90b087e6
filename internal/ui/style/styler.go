package style

import "github.com/footprint-tools/cmdtree/internal/domain"

// NopStyler is a no-op styler that returns text unchanged.
// Useful for testing or when styling is disabled.
type NopStyler struct{}

func (NopStyler) Enabled() bool                { return false }
func (NopStyler) Success(text string) string   { return text }
func (NopStyler) Warning(text string) string   { return text }
func (NopStyler) Error(text string) string     { return text }
func (NopStyler) Info(text string) string      { return text }
func (NopStyler) Muted(text string) string     { return text }
func (NopStyler) Header(text string) string    { return text }
func (NopStyler) Highlight(text string) string { return text }

// Verify Styler and NopStyler implement domain.Styler
var _ domain.Styler = (*Styler)(nil)
var _ domain.Styler = NopStyler{}
