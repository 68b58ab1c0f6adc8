package ui

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/relaxapp/relax/internal/state"
)

// appTitle is shown in the hero block and in the collapsed toolbar.
const appTitle = "Meditation & Pranayama"

// placeholderAvatar stands in for a missing photo.
const placeholderAvatar = "👤"

// catalogParams are the inputs of the catalog header.
type catalogParams struct {
	Greeting string
	Name     string
	Avatar   state.Avatar
}

// avatarBadge renders the avatar source as text.
func avatarBadge(a state.Avatar) string {
	switch a.Kind {
	case state.AvatarLocal:
		return "▣ " + truncateMiddle(filepath.Base(a.Source), 24)
	case state.AvatarRemote:
		return "◍ " + truncateMiddle(a.Source, 32)
	default:
		return placeholderAvatar
	}
}

// renderHeader draws the collapsing header scrolled by scrollRows.
func renderHeader(theme Theme, geom headerGeometry, scrollRows int, vis HeaderVisibility, params catalogParams, width int) []string {
	rows := geom.Rows
	rowColors := make([]string, rows)
	for i := range rowColors {
		t := 0.0
		if rows > 1 {
			t = float64(i) / float64(rows-1)
		}
		rowColors[i] = blendHex(theme.HeroTop, theme.HeroBottom, t)
	}

	text := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HeroText))
	content := make([]string, rows)
	if vis.Hero && rows >= 4 {
		content[rows-4] = avatarBadge(params.Avatar) + "  " + params.Greeting + ", " + params.Name
		content[rows-2] = appTitle
	}

	expanded := make([]string, rows)
	for i := range expanded {
		bg := newPaint(rowColors[i])
		style := text
		if i == rows-2 {
			style = style.Bold(true)
		}
		line := bg.Blank(2)
		if content[i] != "" {
			line += style.Background(bg.Color()).Render(content[i])
		}
		expanded[i] = bg.Line(line, width)
	}

	// The header collapses from the top, so the hero rows near its bottom
	// stay on screen while the hero is visible.
	visible := geom.VisibleRows(scrollRows)
	cut := rows - visible
	lines := append([]string(nil), expanded[cut:]...)

	if vis.Title {
		at := (visible - 1) / 2
		if vis.Hero {
			at = visible - 2
		}
		bg := newPaint(rowColors[cut+at])
		title := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.HeroText)).
			Background(bg.Color()).
			Bold(true).
			Render(appTitle)
		lines[at] = bg.Centered(title, width)
	}
	return lines
}
