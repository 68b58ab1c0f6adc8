package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Tab is the navigation selection of the home shell.
type Tab int

const (
	TabCatalog Tab = iota
	TabCourses
	TabProgress
	TabProfile
)

var tabOrder = []Tab{TabCatalog, TabCourses, TabProgress, TabProfile}

func (t Tab) String() string {
	switch t {
	case TabCatalog:
		return "Breathe"
	case TabCourses:
		return "Courses"
	case TabProgress:
		return "Progress"
	case TabProfile:
		return "Profile"
	default:
		return "Unknown"
	}
}

// next returns the tab delta steps away, wrapping around.
func (t Tab) next(delta int) Tab {
	n := len(tabOrder)
	return tabOrder[((int(t)+delta)%n+n)%n]
}

// renderTabBar renders the bottom navigation bar.
func (m Model) renderTabBar() string {
	styles := m.theme.Styles()
	bg := newPaint(m.theme.Surface)

	parts := make([]string, 0, len(tabOrder))
	for i, tab := range tabOrder {
		label := string(rune('1'+i)) + " " + tab.String()
		if tab == m.tab {
			parts = append(parts, styles.TabActive.Render(label))
		} else {
			parts = append(parts, styles.TabInactive.Render(label))
		}
	}
	bar := strings.Join(parts, bg.Blank(1))
	return bg.Centered(bar, m.width)
}

// renderFooter renders the short key help under the tab bar.
func (m Model) renderFooter() string {
	bg := newPaint(m.theme.Background)
	h := m.help
	h.Width = m.width
	return bg.Line(ansi.Truncate(h.ShortHelpView(m.keys.ShortHelp()), m.width, ""), m.width)
}
