package ui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// transition is a frame-driven fade, optionally combined with a slide-in
// from below. Restarting bumps the generation so frames scheduled by an
// earlier run are dropped.
type transition struct {
	owner  string
	slide  bool
	gen    int
	frame  int
	active bool
}

// transitionFrameMsg advances the transition named owner.
type transitionFrameMsg struct {
	owner string
	gen   int
}

func newTransition(owner string, slide bool) transition {
	return transition{owner: owner, slide: slide}
}

// Start restarts the transition from the beginning.
func (t *transition) Start() tea.Cmd {
	t.gen++
	t.frame = 0
	t.active = true
	return t.nextFrame()
}

// Stop ends the transition; pending frames become stale.
func (t *transition) Stop() {
	t.gen++
	t.active = false
}

// Step advances one frame. Stale or foreign frames are ignored.
func (t *transition) Step(msg transitionFrameMsg) tea.Cmd {
	if msg.owner != t.owner || msg.gen != t.gen || !t.active {
		return nil
	}
	t.frame++
	if t.Progress() >= 1 {
		t.active = false
		return nil
	}
	return t.nextFrame()
}

// Active reports whether frames are still being produced.
func (t transition) Active() bool {
	return t.active
}

// Progress returns linear progress in [0, 1].
func (t transition) Progress() float64 {
	if !t.active {
		return 1
	}
	elapsed := time.Duration(t.frame) * FrameInterval
	return clampFloat(float64(elapsed)/float64(TransitionDuration), 0, 1)
}

func (t transition) nextFrame() tea.Cmd {
	owner, gen := t.owner, t.gen
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return transitionFrameMsg{owner: owner, gen: gen}
	})
}

// Render applies the current frame to a rendered block of height lines.
func (t transition) Render(content string, theme Theme, height int) string {
	if !t.active {
		return content
	}
	eased := easeInOut(t.Progress())

	lines := strings.Split(content, "\n")
	if eased < 1 {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(blendHex(theme.Background, theme.Text, eased))).
			Background(lipgloss.Color(theme.Background))
		for i, line := range lines {
			lines[i] = style.Render(ansi.Strip(line))
		}
	}

	if t.slide && height > 0 {
		shift := slideRows(height, eased)
		if shift > 0 {
			blank := make([]string, shift)
			lines = padLines(append(blank, lines...), height)
		}
	}
	return strings.Join(lines, "\n")
}

// slideRows is how many rows below its resting place content sits.
func slideRows(height int, eased float64) int {
	return int(math.Round(SlideFraction * float64(height) * (1 - eased)))
}

// easeInOut is a cubic ease-in-out curve on [0, 1].
func easeInOut(p float64) float64 {
	p = clampFloat(p, 0, 1)
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}
