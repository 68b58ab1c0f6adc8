package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/relaxapp/relax/internal/catalog"
)

// cardSlot is where an entry sits in the catalog body.
type cardSlot struct {
	gridRow int // global row across all sections
	col     int
	top     int // first body line of the card
}

// catalogLayout positions sections and cards in body lines.
type catalogLayout struct {
	slots    []cardSlot
	titleTop []int
	lines    int
}

func layoutCatalog(sections []catalog.Section) catalogLayout {
	var layout catalogLayout
	y := 1
	gridRow := 0
	for _, section := range sections {
		layout.titleTop = append(layout.titleTop, y)
		y += 2
		for i := range section.Entries {
			row := i / gridColumns
			layout.slots = append(layout.slots, cardSlot{
				gridRow: gridRow + row,
				col:     i % gridColumns,
				top:     y + row*(cardRows+1),
			})
		}
		rows := (len(section.Entries) + gridColumns - 1) / gridColumns
		gridRow += rows
		y += rows*(cardRows+1) + 1
	}
	layout.lines = y
	return layout
}

// cardWidth is the width of one grid column.
func cardWidth(width int) int {
	return maxInt((width-2*gridMargin-cardGap*(gridColumns-1))/gridColumns, 10)
}

// renderCatalogBody draws every section of the catalog into body lines.
func renderCatalogBody(theme Theme, sections []catalog.Section, layout catalogLayout, width, cursor int) []string {
	base := newPaint(theme.Background)
	styles := theme.Styles().WithBackground(theme.Background)
	lines := make([]string, layout.lines)
	for i := range lines {
		lines[i] = base.Blank(width)
	}

	cw := cardWidth(width)
	index := 0
	for si, section := range sections {
		title := base.Blank(gridMargin+1) + styles.SectionTitle.Render(strings.ToUpper(section.Name))
		lines[layout.titleTop[si]] = base.Line(title, width)

		for i := 0; i < len(section.Entries); i += gridColumns {
			top := layout.slots[index+i].top
			row := make([][]string, 0, gridColumns)
			for j := i; j < minInt(i+gridColumns, len(section.Entries)); j++ {
				row = append(row, renderCard(theme, section.Entries[j], cw, index+j == cursor))
			}
			for r := 0; r < cardRows; r++ {
				line := base.Blank(gridMargin)
				for c, card := range row {
					if c > 0 {
						line += base.Blank(cardGap)
					}
					line += card[r]
				}
				lines[top+r] = base.Line(line, width)
			}
		}
		index += len(section.Entries)
	}
	return lines
}

// renderCard draws one exercise card: the image caption on top, a wash
// toward the entry's end color, then the title and an accent bar.
func renderCard(theme Theme, entry catalog.Entry, width int, selected bool) []string {
	titleLines := strings.Split(entry.Title, "\n")
	titleTop := maxInt(1, cardRows-2-len(titleLines))
	accentRow := titleTop + len(titleLines)

	lines := make([]string, cardRows)
	for r := 0; r < cardRows; r++ {
		bgColor := cardRowColor(theme, entry, r)
		bg := newPaint(bgColor)

		marker := bg.Blank(1)
		if selected {
			marker = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.BorderFocus)).
				Background(bg.Color()).
				Render("▌")
		}

		var content string
		switch {
		case r == 0:
			caption := "▣ " + filepath.Base(entry.Image)
			content = bg.Text(caption, lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint)))
		case r >= titleTop && r < accentRow:
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HeroText)).Bold(true)
			if selected {
				style = style.Underline(true)
			}
			content = bg.Text(titleLines[r-titleTop], style)
		case r == accentRow:
			accent := blendHex(entry.Gradient[0], "#FFFFFF", 0.3)
			content = bg.Text(strings.Repeat("━", 5), lipgloss.NewStyle().Foreground(lipgloss.Color(accent)))
		}
		lines[r] = bg.Line(marker+bg.Blank(1)+content, width)
	}
	return lines
}

// cardRowColor is the card background for row r: the surface color down to
// 40% of the card, then blending toward the entry's end color.
func cardRowColor(theme Theme, entry catalog.Entry, r int) string {
	frac := float64(r) / float64(cardRows-1)
	if frac < 0.4 {
		return theme.SurfaceAlt
	}
	return blendHex(theme.SurfaceAlt, entry.Gradient[1], (frac-0.4)/0.6*0.8)
}
