package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/relaxapp/relax/internal/catalog"
)

// instructionPage shows the steps of one exercise.
type instructionPage struct {
	id     catalog.ViewID
	instr  catalog.Instruction
	opened time.Time
	vp     viewport.Model
	width  int
}

func newInstructionPage(id catalog.ViewID, instr catalog.Instruction, opened time.Time, width, height int) instructionPage {
	p := instructionPage{
		id:     id,
		instr:  instr,
		opened: opened,
		vp:     viewport.New(width, pageBodyHeight(height)),
	}
	p.resize(width, height)
	return p
}

// pageBodyHeight is the space left under the page title and above the hint.
func pageBodyHeight(height int) int {
	return maxInt(height-4, 1)
}

func (p *instructionPage) resize(width, height int) {
	p.width = width
	p.vp.Width = width
	p.vp.Height = pageBodyHeight(height)
	p.vp.SetContent(p.body())
}

func (p instructionPage) body() string {
	wrap := maxInt(minInt(p.width-6, 72), 20)
	var b strings.Builder
	for i, step := range p.instr.Steps {
		lines := strings.Split(wordwrap.String(step, wrap-4), "\n")
		for j, line := range lines {
			prefix := "    "
			if j == 0 {
				prefix = fmt.Sprintf("%2d. ", i+1)
			}
			b.WriteString("  " + prefix + line + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p instructionPage) ID() catalog.ViewID { return p.id }

func (p instructionPage) Init() tea.Cmd { return nil }

// Practice reports the exercise name and when the page opened.
func (p instructionPage) Practice() (string, time.Time) {
	return p.instr.Name, p.opened
}

// Update scrolls the steps; esc closes the page.
func (p instructionPage) Update(msg tea.Msg, keys keyMap) (Page, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Escape) {
			return p, nil, true
		}
	case tea.WindowSizeMsg:
		p.resize(msg.Width, msg.Height)
		return p, nil, false
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd, false
}

// View renders the title, the steps, and a key hint.
func (p instructionPage) View(theme Theme, width, height int) string {
	styles := theme.Styles().WithBackground(theme.Background)
	base := newPaint(theme.Background)

	lines := []string{
		base.Blank(width),
		base.Line(base.Blank(2)+styles.Title.Background(base.Color()).Render(p.instr.Name), width),
		base.Blank(width),
	}
	for _, line := range strings.Split(p.vp.View(), "\n") {
		lines = append(lines, base.Line(styles.Text.Background(base.Color()).Render(line), width))
	}
	lines = padLines(lines, maxInt(height-1, 0))
	for i, line := range lines {
		if line == "" {
			lines[i] = base.Blank(width)
		}
	}
	hint := fmt.Sprintf("↑/↓ scroll · esc back · %d%%", int(p.vp.ScrollPercent()*100))
	lines = append(lines, base.Line(base.Blank(2)+styles.FaintText.Background(base.Color()).Render(hint), width))
	return strings.Join(lines, "\n")
}
