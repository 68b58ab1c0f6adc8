package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// paint lays text onto a solid background color. Styled segments drop the
// background at their reset codes, so every gap is painted explicitly.
type paint struct {
	bg    lipgloss.Color
	plain lipgloss.Style
}

func newPaint(bgColor string) paint {
	bg := lipgloss.Color(bgColor)
	return paint{bg: bg, plain: lipgloss.NewStyle().Background(bg)}
}

// Text renders text in style over the background, spaces included.
func (p paint) Text(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	return style.Inherit(p.plain).Inline(true).Render(text)
}

// Blank returns n painted spaces.
func (p paint) Blank(n int) string {
	if n <= 0 {
		return ""
	}
	return p.plain.Render(strings.Repeat(" ", n))
}

// Line cuts rendered content to width and paints the rest of the row.
func (p paint) Line(content string, width int) string {
	content = fitLine(content, width)
	return content + p.Blank(width-ansi.StringWidth(content))
}

// Centered places rendered content in the middle of a painted row.
func (p paint) Centered(content string, width int) string {
	content = fitLine(content, width)
	return p.Line(p.Blank((width-ansi.StringWidth(content))/2)+content, width)
}

// Color returns the background color.
func (p paint) Color() lipgloss.Color {
	return p.bg
}
