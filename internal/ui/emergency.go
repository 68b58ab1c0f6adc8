package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/relaxapp/relax/internal/catalog"
)

const pacerFPS = 30

// breathPhase is one segment of the pacing cycle.
type breathPhase struct {
	label   string
	seconds int
	from    float64
	to      float64
}

// pacerPhases is a 4-4-6 cycle: in, hold, out.
var pacerPhases = []breathPhase{
	{label: "Breathe in", seconds: 4, from: 0, to: 1},
	{label: "Hold", seconds: 4, from: 1, to: 1},
	{label: "Breathe out", seconds: 6, from: 1, to: 0},
}

// pacerTickMsg advances the pacer of page seq.
type pacerTickMsg struct {
	seq int
}

// emergencyPage is the calming breathing pacer.
type emergencyPage struct {
	seq    int
	instr  catalog.Instruction
	opened time.Time
	spring harmonica.Spring
	frame  int
	fill   float64
	vel    float64
}

func newEmergencyPage(seq int, instr catalog.Instruction, opened time.Time) emergencyPage {
	return emergencyPage{
		seq:    seq,
		instr:  instr,
		opened: opened,
		spring: harmonica.NewSpring(harmonica.FPS(pacerFPS), 6.0, 1.0),
	}
}

func (p emergencyPage) ID() catalog.ViewID { return catalog.ViewEmergency }

func (p emergencyPage) Init() tea.Cmd { return p.tick() }

func (p emergencyPage) tick() tea.Cmd {
	seq := p.seq
	return tea.Tick(time.Second/pacerFPS, func(time.Time) tea.Msg {
		return pacerTickMsg{seq: seq}
	})
}

// Practice reports the session name and when the page opened.
func (p emergencyPage) Practice() (string, time.Time) {
	return p.instr.Name, p.opened
}

// phaseAt returns the phase for frame, its progress in [0, 1), and the
// whole seconds left in it.
func phaseAt(frame int) (breathPhase, float64, int) {
	cycle := 0
	for _, phase := range pacerPhases {
		cycle += phase.seconds * pacerFPS
	}
	pos := frame % cycle
	for _, phase := range pacerPhases {
		length := phase.seconds * pacerFPS
		if pos < length {
			left := int(math.Ceil(float64(length-pos) / pacerFPS))
			return phase, float64(pos) / float64(length), left
		}
		pos -= length
	}
	return pacerPhases[0], 0, pacerPhases[0].seconds
}

// pacerTarget is where the bar should be at frame.
func pacerTarget(frame int) float64 {
	phase, progress, _ := phaseAt(frame)
	return phase.from + (phase.to-phase.from)*progress
}

// Update drives the pacer; esc closes the page.
func (p emergencyPage) Update(msg tea.Msg, keys keyMap) (Page, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Escape) {
			return p, nil, true
		}
	case pacerTickMsg:
		if msg.seq != p.seq {
			return p, nil, false
		}
		p.frame++
		p.fill, p.vel = p.spring.Update(p.fill, p.vel, pacerTarget(p.frame))
		return p, p.tick(), false
	}
	return p, nil, false
}

// View renders the pacer bar centered on screen.
func (p emergencyPage) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	phase, _, left := phaseAt(p.frame)

	barWidth := maxInt(minInt(width-10, 48), 10)
	filled := int(math.Round(clampFloat(p.fill, 0, 1) * float64(barWidth)))
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint)).Render(strings.Repeat("░", barWidth-filled))

	var steps []string
	for _, step := range p.instr.Steps {
		steps = append(steps, styles.MutedText.Render(wordwrap.String(step, barWidth)))
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render(p.instr.Name),
		"",
		strings.Join(steps, "\n"),
		"",
		bar,
		"",
		styles.Text.Bold(true).Render(fmt.Sprintf("%s · %d", phase.label, left)),
		"",
		styles.FaintText.Render("esc when you feel ready"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(theme.Background)),
	)
}
