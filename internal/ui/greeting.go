package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Greeting returns the salutation for the local hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

type greetingTickMsg time.Time

// greetingTickCmd wakes the UI so a mounted header re-derives its greeting.
func greetingTickCmd() tea.Cmd {
	return tea.Tick(GreetingRefresh, func(t time.Time) tea.Msg {
		return greetingTickMsg(t)
	})
}
