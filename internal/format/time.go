// Package format renders timestamps and durations for history output.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Layout holds the configured date and time display preferences.
type Layout struct {
	// Date is a preset (mm/dd/yyyy, yyyy-mm-dd, dd/mm/yyyy) or a Go layout.
	Date string
	// Time is "12h" or "24h".
	Time string
}

// NewLayout reads display_date and display_time from cfg.
func NewLayout(cfg domain.ConfigProvider) Layout {
	var l Layout
	if cfg != nil {
		l.Date, _ = cfg.Get("display_date")
		l.Time, _ = cfg.Get("display_time")
	}
	return l
}

// DateTime formats a time with both date and time.
// Example output: "Jan 23 15:04" or "01/23/2024 3:04 PM"
func (l Layout) DateTime(t time.Time) string {
	return l.FormatDate(t) + " " + l.FormatTime(t)
}

// DateTimeShort formats a time with short date and time (no year).
func (l Layout) DateTimeShort(t time.Time) string {
	return l.FormatDateShort(t) + " " + l.FormatTime(t)
}

// FormatDate formats only the date portion.
func (l Layout) FormatDate(t time.Time) string {
	return t.Format(l.dateLayout())
}

// FormatDateShort formats the date without year.
func (l Layout) FormatDateShort(t time.Time) string {
	return t.Format(l.dateLayoutShort())
}

// FormatTime formats only the time portion.
func (l Layout) FormatTime(t time.Time) string {
	return t.Format(l.timeLayout(false))
}

// FormatTimeFull formats the time with seconds.
func (l Layout) FormatTimeFull(t time.Time) string {
	return t.Format(l.timeLayout(true))
}

// Full formats the date and the time with seconds.
func (l Layout) Full(t time.Time) string {
	return l.FormatDate(t) + " " + l.FormatTimeFull(t)
}

func (l Layout) dateLayout() string {
	switch l.Date {
	case "":
		return "Jan 02"
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// custom Go layout
		return l.Date
	}
}

func (l Layout) dateLayoutShort() string {
	switch l.Date {
	case "":
		return "Jan 02"
	case "mm/dd/yyyy":
		return "01/02"
	case "yyyy-mm-dd":
		return "01-02"
	case "dd/mm/yyyy":
		return "02/01"
	default:
		short := l.Date
		short = strings.ReplaceAll(short, "2006", "")
		short = strings.ReplaceAll(short, "/06", "")
		short = strings.ReplaceAll(short, "-06", "")
		short = strings.ReplaceAll(short, " 06", "")
		short = strings.TrimSpace(short)
		short = strings.Trim(short, "/-")
		if short == "" {
			return "Jan 02"
		}
		return short
	}
}

func (l Layout) timeLayout(seconds bool) string {
	if l.Time == "12h" {
		if seconds {
			return "3:04:05 PM"
		}
		return "3:04 PM"
	}
	if seconds {
		return "15:04:05"
	}
	return "15:04"
}

// Duration renders an invocation duration compactly: "850µs", "12ms", "1.5s".
func Duration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return d.Round(time.Second).String()
	}
}
