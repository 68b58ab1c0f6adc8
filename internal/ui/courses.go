package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/relaxapp/relax/internal/catalog"
)

// renderCourses lists the guided programs.
func renderCourses(theme Theme, courses []catalog.Course, cursor, width, height int) string {
	styles := theme.Styles().WithBackground(theme.Background)
	lines := []string{"", "  " + styles.Title.Render("Courses"), ""}

	wrap := maxInt(minInt(width-8, 72), 20)
	for i, course := range courses {
		marker := "  "
		title := styles.Text.Bold(true).Render(course.Title)
		if i == cursor {
			marker = styles.AccentText.Render("▌ ")
			title = styles.AccentText.Bold(true).Render(course.Title)
		}
		lines = append(lines, "  "+marker+title)
		for _, line := range strings.Split(wordwrap.String(course.Summary, wrap), "\n") {
			lines = append(lines, "    "+styles.MutedText.Render(line))
		}
		meta := fmt.Sprintf("%d lessons · %d min", course.Lessons, course.Minutes)
		lines = append(lines, "    "+styles.FaintText.Render(meta), "")
	}

	base := newPaint(theme.Background)
	out := padLines(lines, height)
	for i, line := range out {
		out[i] = base.Line(line, width)
	}
	return strings.Join(out, "\n")
}
