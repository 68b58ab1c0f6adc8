package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-homedir"
)

// imageExtensions are the gallery file types offered by the picker.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".heic"}

// imagePickedMsg reports the picker result. An empty path is a cancel.
type imagePickedMsg struct {
	path string
}

// imagePicker is the "pick an image from gallery" modal.
type imagePicker struct {
	fp filepicker.Model
}

func newImagePicker(dir string, theme Theme, width, height int) (imagePicker, tea.Cmd) {
	fp := filepicker.New()
	fp.CurrentDirectory = galleryRoot(dir)
	fp.AllowedTypes = allowedImageTypes()
	fp.AutoHeight = true
	fp.ShowPermissions = false
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))

	styles := filepicker.DefaultStyles()
	styles.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	styles.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true)
	styles.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Info))
	styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	styles.DisabledFile = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))
	styles.FileSize = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted)).Width(7).Align(lipgloss.Right)
	fp.Styles = styles

	fp, _ = fp.Update(tea.WindowSizeMsg{Width: width, Height: pickerListHeight(height)})
	return imagePicker{fp: fp}, fp.Init()
}

// galleryRoot falls back to the home directory when dir is unusable.
func galleryRoot(dir string) string {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	if home, err := homedir.Dir(); err == nil {
		return home
	}
	return "."
}

func allowedImageTypes() []string {
	types := make([]string, 0, 2*len(imageExtensions))
	for _, ext := range imageExtensions {
		types = append(types, ext, strings.ToUpper(ext))
	}
	return types
}

// pickerListHeight leaves room for the modal frame around the list.
func pickerListHeight(height int) int {
	return maxInt(height-4, 3)
}

// Update forwards messages to the file picker. Esc cancels.
func (p imagePicker) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Escape) {
			return p, pickedCmd(""), true
		}
	case tea.WindowSizeMsg:
		msg.Height = pickerListHeight(msg.Height)
		var cmd tea.Cmd
		p.fp, cmd = p.fp.Update(msg)
		return p, cmd, false
	}

	var cmd tea.Cmd
	p.fp, cmd = p.fp.Update(msg)
	if ok, path := p.fp.DidSelectFile(msg); ok {
		return p, pickedCmd(path), true
	}
	return p, cmd, false
}

// View renders the picker framed with its current directory.
func (p imagePicker) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	title := styles.Title.Render("Pick an image") + "  " +
		styles.MutedText.Render(truncateMiddle(p.fp.CurrentDirectory, maxInt(width-20, 10)))
	hint := styles.FaintText.Render("enter select · h back · esc cancel")

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", p.fp.View(), hint)
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		lipgloss.NewStyle().Padding(0, 1).Render(body),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(theme.Background)),
	)
}

func pickedCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return imagePickedMsg{path: path}
	}
}
