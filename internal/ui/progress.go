package ui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/relaxapp/relax/internal/backend"
)

// progressState is the practice history shown on the progress tab.
type progressState struct {
	loading bool
	loaded  bool
	data    backend.Progress
	err     error
	spinner spinner.Model
}

func newProgressState() progressState {
	return progressState{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

type progressLoadedMsg struct {
	data backend.Progress
	err  error
}

type practiceRecordedMsg struct {
	data backend.Progress
	err  error
}

func fetchProgressCmd(ctx context.Context, store backend.ProgressStore, uid string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
		defer cancel()
		data, err := store.FetchProgress(ctx, uid)
		return progressLoadedMsg{data: data, err: err}
	}
}

// recordPracticeCmd adds a session to the day's total. The backend
// replaces a whole day on update, so the current total is read first.
func recordPracticeCmd(ctx context.Context, store backend.ProgressStore, uid, date string, hours float64, activity string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
		defer cancel()
		current, err := store.FetchProgress(ctx, uid)
		if err != nil {
			return practiceRecordedMsg{err: fmt.Errorf("fetch progress: %w", err)}
		}
		updated := current.Record(date, hours, activity)
		if err := store.UpdateProgress(ctx, uid, backend.Progress{date: updated[date]}); err != nil {
			return practiceRecordedMsg{err: fmt.Errorf("update progress: %w", err)}
		}
		return practiceRecordedMsg{data: updated}
	}
}

// renderProgress draws the practice history, newest day first.
func renderProgress(theme Theme, ps progressState, signedIn bool, now time.Time, width, height int) string {
	styles := theme.Styles().WithBackground(theme.Background)
	lines := []string{"", "  " + styles.Title.Render("Your Practice"), ""}

	switch {
	case !signedIn:
		lines = append(lines, "  "+styles.MutedText.Render("Sign in with `relax login` to keep track of your practice."))
	case ps.loading:
		lines = append(lines, "  "+ps.spinner.View()+" "+styles.MutedText.Render("Gathering your sessions…"))
	case ps.err != nil:
		lines = append(lines, "  "+styles.MutedText.Render("Your history is resting for now. Try again later."))
	case len(ps.data) == 0:
		lines = append(lines, "  "+styles.MutedText.Render("No sessions yet. Open an exercise and breathe for a while."))
	default:
		dates := ps.data.Dates()
		summary := fmt.Sprintf("%s hours across %d days", humanize.FtoaWithDigits(ps.data.TotalHours(), 1), len(dates))
		lines = append(lines, "  "+styles.AccentText.Render(summary), "")

		peak := 0.0
		for _, entry := range ps.data {
			peak = math.Max(peak, entry.Hours)
		}
		barWidth := maxInt(minInt(width-60, 30), 8)
		room := maxInt(height-len(lines), 0)
		for i := len(dates) - 1; i >= 0 && room > 0; i, room = i-1, room-1 {
			lines = append(lines, "  "+progressRow(theme, dates[i], ps.data[dates[i]], peak, barWidth, now))
		}
	}

	base := newPaint(theme.Background)
	out := padLines(lines, height)
	for i, line := range out {
		out[i] = base.Line(line, width)
	}
	return strings.Join(out, "\n")
}

func progressRow(theme Theme, date string, entry backend.ProgressEntry, peak float64, barWidth int, now time.Time) string {
	styles := theme.Styles().WithBackground(theme.Background)
	filled := 0
	if peak > 0 {
		filled = int(math.Round(entry.Hours / peak * float64(barWidth)))
	}
	filled = maxInt(minInt(filled, barWidth), 0)
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint)).Render(strings.Repeat("·", barWidth-filled))

	when := ""
	if day, err := time.ParseInLocation(backend.DateLayout, date, now.Location()); err == nil {
		when = humanize.RelTime(day, now, "ago", "from now")
	}
	return fmt.Sprintf("%s  %s  %s  %s  %s",
		styles.Text.Render(date),
		bar,
		styles.AccentText.Render(fmt.Sprintf("%5.2fh", entry.Hours)),
		styles.MutedText.Render(truncate(entry.Activity, 22)),
		styles.FaintText.Render(when),
	)
}
