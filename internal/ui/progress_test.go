package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/relaxapp/relax/internal/backend"
)

func TestRenderProgressToleratesMalformedHours(t *testing.T) {
	now := time.Date(2024, 5, 3, 9, 0, 0, 0, time.Local)
	cases := []struct {
		name string
		data backend.Progress
	}{
		{"negative day", backend.Progress{
			"2024-05-01": {Hours: 1, Activity: "Ujjayi"},
			"2024-05-02": {Hours: -0.5, Activity: "Bhramari"},
		}},
		{"only negative", backend.Progress{"2024-05-02": {Hours: -2}}},
		{"bad date", backend.Progress{"yesterday": {Hours: 0.5}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ps := newProgressState()
			ps.loaded = true
			ps.data = tc.data

			view := ansi.Strip(renderProgress(GetTheme(""), ps, true, now, 100, 20))
			if lines := strings.Split(view, "\n"); len(lines) != 20 {
				t.Fatalf("rendered %d lines, want 20", len(lines))
			}
			for date := range tc.data {
				if !strings.Contains(view, date) {
					t.Fatalf("view missing %s:\n%s", date, view)
				}
			}
		})
	}
}

func TestProgressRowBarStaysInBounds(t *testing.T) {
	now := time.Date(2024, 5, 3, 9, 0, 0, 0, time.Local)
	theme := GetTheme("")
	for _, hours := range []float64{-3, 0, 0.5, 1, 4} {
		row := ansi.Strip(progressRow(theme, "2024-05-01", backend.ProgressEntry{Hours: hours}, 1, 10, now))
		bar := strings.Count(row, "█") + strings.Count(row, "·")
		if bar != 10 {
			t.Fatalf("hours=%v: bar has %d cells, want 10: %q", hours, bar, row)
		}
	}
}
