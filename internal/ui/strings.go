package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens a string by removing characters from the middle,
// preserving both the beginning and end. For paths, it preserves file extensions.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}

	ellipsis := []rune("…")
	if limit <= len(ellipsis)+2 {
		return string(runes[:limit])
	}

	// Keep the extension of file names and URLs intact.
	lastDot := strings.LastIndex(value, ".")
	lastSlash := strings.LastIndex(value, "/")
	if lastDot > lastSlash && lastDot > 0 {
		ext := []rune(value[lastDot:])
		if len(ext) < 10 && len(ext) < limit/2 {
			base := []rune(value[:lastDot])
			keep := limit - len(ext) - len(ellipsis)
			prefix := keep / 2
			suffix := keep - prefix
			return string(base[:prefix]) + string(ellipsis) + string(base[len(base)-suffix:]) + string(ext)
		}
	}

	keep := limit - len(ellipsis)
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + string(ellipsis) + string(runes[len(runes)-suffix:])
}

// fitLine truncates rendered (possibly styled) text to width cells.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// padLines pads or cuts a block of lines to exactly height lines.
func padLines(lines []string, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minInt returns the smaller of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// clampFloat limits v to [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
