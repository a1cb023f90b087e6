package style

import (
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds the colors of a theme.
// Values are ANSI color numbers (0-255) or "bold".
type ColorConfig struct {
	Success   string
	Warning   string
	Error     string
	Info      string
	Muted     string
	Header    string
	Highlight string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{"default", "neon", "mono", "ocean"}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success:   "10",  // bright green
		Warning:   "11",  // bright yellow
		Error:     "9",   // bright red
		Info:      "14",  // bright cyan
		Muted:     "245", // medium gray
		Header:    "bold",
		Highlight: "13", // bright magenta
	},
	"default-light": {
		Success:   "28",  // dark green
		Warning:   "130", // dark orange
		Error:     "124", // dark red
		Info:      "27",  // dark blue
		Muted:     "243", // medium-dark gray
		Header:    "bold",
		Highlight: "90", // dark magenta
	},
	"neon-dark": {
		Success:   "48",  // bright teal
		Warning:   "220", // gold
		Error:     "197", // hot pink
		Info:      "51",  // electric cyan
		Muted:     "244",
		Header:    "bold",
		Highlight: "201", // hot magenta
	},
	"neon-light": {
		Success:   "29",  // deep teal
		Warning:   "166", // dark orange
		Error:     "161", // dark pink
		Info:      "32",  // deep blue
		Muted:     "245",
		Header:    "bold",
		Highlight: "127",
	},
	// Mono relies on weight and gray levels only.
	"mono-dark": {
		Success:   "255",
		Warning:   "252",
		Error:     "bold",
		Info:      "250",
		Muted:     "242",
		Header:    "bold",
		Highlight: "231",
	},
	"mono-light": {
		Success:   "232",
		Warning:   "236",
		Error:     "bold",
		Info:      "238",
		Muted:     "246",
		Header:    "bold",
		Highlight: "16",
	},
	"ocean-dark": {
		Success:   "79",  // aquamarine
		Warning:   "180", // sand
		Error:     "210", // coral
		Info:      "117", // sky blue
		Muted:     "243",
		Header:    "bold",
		Highlight: "87",
	},
	"ocean-light": {
		Success:   "29",
		Warning:   "136",
		Error:     "160",
		Info:      "25", // deep sea blue
		Muted:     "244",
		Header:    "bold",
		Highlight: "31",
	},
}

// IsDarkBackground reports whether the terminal background is dark.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name, from
// terminal background detection, unless the name already carries one.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig returns the colors of the named theme, falling back to
// default-dark for unknown names.
func LoadColorConfig(theme string) ColorConfig {
	colors, ok := Themes[ResolveThemeName(theme)]
	if !ok {
		return Themes["default-dark"]
	}
	return colors
}
