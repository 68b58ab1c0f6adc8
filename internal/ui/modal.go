package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/relaxapp/relax/internal/catalog"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// Page is a full-screen view pushed over the home shell.
// Update follows the Modal contract; the bool pops the page.
type Page interface {
	ID() catalog.ViewID
	Init() tea.Cmd
	Update(msg tea.Msg, keys keyMap) (Page, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// practiceSession is implemented by pages whose visits count as practice.
type practiceSession interface {
	Practice() (activity string, opened time.Time)
}
