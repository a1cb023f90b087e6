package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testTime is a fixed time for consistent test results
var testTime = time.Date(2024, 1, 23, 15, 4, 5, 0, time.UTC)

type stubConfig map[string]string

func (c stubConfig) Get(key string) (string, bool) {
	v, ok := c[key]
	return v, ok
}

func (c stubConfig) GetBool(key string) bool { return c[key] == "true" }

func (c stubConfig) GetAll() map[string]string { return c }

func TestNewLayout(t *testing.T) {
	l := NewLayout(stubConfig{"display_date": "yyyy-mm-dd", "display_time": "12h"})
	require.Equal(t, Layout{Date: "yyyy-mm-dd", Time: "12h"}, l)
	require.Equal(t, Layout{}, NewLayout(nil))
}

func TestLayout_Date(t *testing.T) {
	tests := []struct {
		date      string
		want      string
		wantShort string
	}{
		{"", "Jan 23", "Jan 23"},
		{"mm/dd/yyyy", "01/23/2024", "01/23"},
		{"yyyy-mm-dd", "2024-01-23", "01-23"},
		{"dd/mm/yyyy", "23/01/2024", "23/01"},
		{"01/02/06", "01/23/24", "01/23"},
		{"01-02-06", "01-23-24", "01-23"},
		{"01/02 2006", "01/23 2024", "01/23"},
		{"2006", "2024", "Jan 23"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			l := Layout{Date: tt.date}
			require.Equal(t, tt.want, l.FormatDate(testTime))
			require.Equal(t, tt.wantShort, l.FormatDateShort(testTime))
		})
	}
}

func TestLayout_Time(t *testing.T) {
	morning := time.Date(2024, 1, 23, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		layout   Layout
		at       time.Time
		want     string
		wantFull string
	}{
		{"default is 24h", Layout{}, testTime, "15:04", "15:04:05"},
		{"24h", Layout{Time: "24h"}, testTime, "15:04", "15:04:05"},
		{"12h", Layout{Time: "12h"}, testTime, "3:04 PM", "3:04:05 PM"},
		{"12h morning", Layout{Time: "12h"}, morning, "9:30 AM", "9:30:00 AM"},
		{"unknown falls to 24h", Layout{Time: "48h"}, testTime, "15:04", "15:04:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.layout.FormatTime(tt.at))
			require.Equal(t, tt.wantFull, tt.layout.FormatTimeFull(tt.at))
		})
	}
}

func TestLayout_Combined(t *testing.T) {
	l := Layout{Date: "mm/dd/yyyy", Time: "12h"}
	require.Equal(t, "01/23/2024 3:04 PM", l.DateTime(testTime))
	require.Equal(t, "01/23 3:04 PM", l.DateTimeShort(testTime))
	require.Equal(t, "01/23/2024 3:04:05 PM", l.Full(testTime))
	require.Equal(t, "Jan 23 15:04", Layout{}.DateTime(testTime))
}

func TestDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{850 * time.Microsecond, "850µs"},
		{12 * time.Millisecond, "12ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Duration(tt.in))
	}
}
