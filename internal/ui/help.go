package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// helpGroupTitles names the groups of keyMap.FullHelp, in order.
var helpGroupTitles = []string{"Tabs", "Move", "Scroll", "Actions", "General"}

// renderHelp renders the shortcut overlay from the full key map.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(10)

	var left, right []string
	for i, group := range m.keys.FullHelp() {
		title := ""
		if i < len(helpGroupTitles) {
			title = helpGroupTitles[i]
		}
		block := renderHelpGroup(title, group, styles, keyStyle)
		if i%2 == 0 {
			left = append(left, block)
		} else {
			right = append(right, block)
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, left...),
		"    ",
		lipgloss.JoinVertical(lipgloss.Left, right...),
	)
	header := styles.Text.Bold(true).Render("Keyboard Shortcuts") + "\n" +
		styles.FaintText.Render(strings.Repeat("─", lipgloss.Width(body)))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		box.Render(header+"\n\n"+body+"\n"+styles.FaintText.Render("any key to close")),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}

func renderHelpGroup(title string, bindings []key.Binding, styles Styles, keyStyle lipgloss.Style) string {
	lines := []string{styles.AccentText.Bold(true).Render(title)}
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		lines = append(lines, keyStyle.Render(h.Key)+styles.Text.Render(h.Desc))
	}
	return strings.Join(lines, "\n") + "\n"
}
