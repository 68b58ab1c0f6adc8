package ui

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/relaxapp/relax/internal/backend"
	"github.com/relaxapp/relax/internal/catalog"
	"github.com/relaxapp/relax/internal/prefs"
	"github.com/relaxapp/relax/internal/state"
)

// ProfileLoader fetches the signed-in user's account.
type ProfileLoader func(ctx context.Context) (state.Account, error)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Catalog     catalog.Catalog
	LoadProfile ProfileLoader
	Progress    backend.ProgressStore
	Clock       func() time.Time
	GalleryDir  string
	ThemeName   string
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx           context.Context
	clock         func() time.Time
	catalog       catalog.Catalog
	loadProfile   ProfileLoader
	progressStore backend.ProgressStore
	galleryDir    string
	prefs         prefs.Store
	keys          keyMap
	help          help.Model

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Home shell
	tab      Tab
	profile  state.Profile
	tabAnim  transition
	pageAnim transition

	// Tab state
	catalogScreen catalogScreen
	courseCursor  int
	progress      progressState

	// Navigation stack over the shell
	pages   []Page
	pageSeq int

	modal    Modal
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	cat := opts.Catalog
	if len(cat.Sections) == 0 {
		cat = catalog.Default()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Lagoon"
	}

	theme := GetTheme(themeName)
	return Model{
		ctx:           ctx,
		clock:         clock,
		catalog:       cat,
		loadProfile:   opts.LoadProfile,
		progressStore: opts.Progress,
		galleryDir:    opts.GalleryDir,
		prefs:         prefs.Store{Path: opts.PrefsPath},
		keys:          DefaultKeyMap(),
		help:          newHelp(theme),
		theme:         theme,
		tab:           TabCatalog,
		profile:       state.NewProfile(),
		tabAnim:       newTransition("tab", true),
		pageAnim:      newTransition("page", false),
		catalogScreen: newCatalogScreen(cat),
		progress:      newProgressState(),
	}
}

func newHelp(theme Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))
	return h
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{greetingTickCmd()}
	if m.loadProfile != nil {
		cmds = append(cmds, loadProfileCmd(m.ctx, m.loadProfile))
	}
	return tea.Batch(cmds...)
}

// Tab returns the active tab.
func (m Model) Tab() Tab {
	return m.tab
}

// Profile returns the profile the shell currently holds.
func (m Model) Profile() state.Profile {
	return m.profile
}

// TopPage returns the page on top of the navigation stack.
func (m Model) TopPage() (catalog.ViewID, bool) {
	if len(m.pages) == 0 {
		return "", false
	}
	return m.pages[len(m.pages)-1].ID(), true
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.catalogScreen.SetSize(m.width, m.contentHeight())

		var cmds []tea.Cmd
		if m.modal != nil {
			modal, cmd, _ := m.modal.Update(msg, m.keys)
			m.modal = modal
			cmds = append(cmds, cmd)
		}
		for i, page := range m.pages {
			updated, cmd, _ := page.Update(msg, m.keys)
			m.pages[i] = updated
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if m.modal == nil && len(m.pages) == 0 && !m.showHelp && m.tab == TabCatalog {
			m.catalogScreen, _ = m.catalogScreen.Update(msg, m.keys)
		}
		return m, nil

	case transitionFrameMsg:
		var cmd tea.Cmd
		switch msg.owner {
		case m.tabAnim.owner:
			cmd = m.tabAnim.Step(msg)
		case m.pageAnim.owner:
			cmd = m.pageAnim.Step(msg)
		}
		return m, cmd

	case greetingTickMsg:
		return m, greetingTickCmd()

	case profileLoadedMsg:
		if msg.err != nil {
			log.Printf("profile load failed: %v", msg.err)
			return m, nil
		}
		m.profile = m.profile.Apply(msg.account)
		var cmd tea.Cmd
		if m.tab == TabProgress {
			cmd = m.ensureProgress()
		}
		return m, cmd

	case imagePickedMsg:
		if strings.TrimSpace(msg.path) == "" {
			return m, nil
		}
		m.profile = m.profile.Picked(msg.path)
		m.galleryDir = filepath.Dir(msg.path)
		dir := m.galleryDir
		if err := m.prefs.Update(func(p *prefs.Prefs) { p.GalleryDir = dir }); err != nil {
			log.Printf("save prefs failed: %v", err)
		}
		return m, nil

	case openPageMsg:
		return m.pushPage(msg.id, msg.fade)

	case progressLoadedMsg:
		m.progress.loading = false
		m.progress.err = msg.err
		if msg.err != nil {
			log.Printf("progress load failed: %v", msg.err)
			return m, nil
		}
		m.progress.loaded = true
		m.progress.data = msg.data
		return m, nil

	case practiceRecordedMsg:
		if msg.err != nil {
			log.Printf("record practice failed: %v", msg.err)
			return m, nil
		}
		if m.progress.loaded {
			m.progress.data = msg.data
		}
		return m, nil

	case spinner.TickMsg:
		if !m.progress.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.progress.spinner, cmd = m.progress.spinner.Update(msg)
		return m, cmd
	}

	// Remaining messages belong to the modal or the top page.
	if m.modal != nil {
		return m.updateModal(msg)
	}
	if len(m.pages) > 0 {
		return m.updateTopPage(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	if len(m.pages) > 0 {
		page := m.pages[len(m.pages)-1].View(m.theme, m.width, m.height)
		return m.pageAnim.Render(page, m.theme, m.height)
	}

	content := m.tabAnim.Render(m.renderTab(), m.theme, m.contentHeight())
	return strings.Join([]string{content, m.renderTabBar(), m.renderFooter()}, "\n")
}

// renderTab is a pure switch on the active tab.
func (m Model) renderTab() string {
	height := m.contentHeight()
	switch m.tab {
	case TabCourses:
		return renderCourses(m.theme, m.catalog.Courses, m.courseCursor, m.width, height)
	case TabProgress:
		return renderProgress(m.theme, m.progress, m.profile.SignedIn(), m.clock(), m.width, height)
	case TabProfile:
		return renderProfile(m.theme, m.profile, m.clock(), m.width, height)
	default:
		return m.catalogScreen.View(m.theme, m.catalogParams(), m.width, height)
	}
}

// catalogParams derives the header inputs; the greeting reads the clock
// on every render.
func (m Model) catalogParams() catalogParams {
	return catalogParams{
		Greeting: Greeting(m.clock()),
		Name:     m.profile.DisplayName(),
		Avatar:   m.profile.Avatar(),
	}
}

func (m Model) contentHeight() int {
	return maxInt(m.height-chromeRows, 0)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.modal != nil {
		return m.updateModal(msg)
	}

	if len(m.pages) > 0 {
		return m.updateTopPage(msg)
	}

	if tab, ok := m.tabForKey(msg); ok {
		cmd := m.selectTab(tab)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.help = newHelp(m.theme)
		m.help.Width = m.width
		name := m.theme.Name
		if err := m.prefs.Update(func(p *prefs.Prefs) { p.Theme = name }); err != nil {
			log.Printf("save prefs failed: %v", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Emergency):
		return m.openEmergencyView()

	case key.Matches(msg, m.keys.PickImage) && (m.tab == TabCatalog || m.tab == TabProfile):
		return m.pickImage()
	}

	switch m.tab {
	case TabCatalog:
		var cmd tea.Cmd
		m.catalogScreen, cmd = m.catalogScreen.Update(msg, m.keys)
		return m, cmd
	case TabCourses:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.courseCursor = maxInt(m.courseCursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.courseCursor = minInt(m.courseCursor+1, maxInt(len(m.catalog.Courses)-1, 0))
		}
	}
	return m, nil
}

// tabForKey maps tab selection keys to the tab they select.
func (m Model) tabForKey(msg tea.KeyMsg) (Tab, bool) {
	switch {
	case key.Matches(msg, m.keys.SelectCatalog):
		return TabCatalog, true
	case key.Matches(msg, m.keys.SelectCourses):
		return TabCourses, true
	case key.Matches(msg, m.keys.SelectProgress):
		return TabProgress, true
	case key.Matches(msg, m.keys.SelectProfile):
		return TabProfile, true
	case key.Matches(msg, m.keys.Tab):
		return m.tab.next(1), true
	case key.Matches(msg, m.keys.ShiftTab):
		return m.tab.next(-1), true
	}
	return m.tab, false
}

// selectTab switches tabs and restarts the transition, also when tab is
// already active.
func (m *Model) selectTab(tab Tab) tea.Cmd {
	m.tab = tab
	cmds := []tea.Cmd{m.tabAnim.Start()}
	if tab == TabProgress {
		cmds = append(cmds, m.ensureProgress())
	}
	return tea.Batch(cmds...)
}

// ensureProgress starts the first progress fetch for a signed-in user.
func (m *Model) ensureProgress() tea.Cmd {
	if m.progress.loaded || m.progress.loading || !m.profile.SignedIn() || m.progressStore == nil {
		return nil
	}
	m.progress.loading = true
	m.progress.err = nil
	return tea.Batch(fetchProgressCmd(m.ctx, m.progressStore, m.profile.UID), m.progress.spinner.Tick)
}

// pickImage opens the gallery picker.
func (m Model) pickImage() (tea.Model, tea.Cmd) {
	picker, cmd := newImagePicker(m.galleryDir, m.theme, m.width, m.height)
	m.modal = picker
	return m, cmd
}

// openEmergencyView pushes the breathing pacer with a fade.
func (m Model) openEmergencyView() (tea.Model, tea.Cmd) {
	return m.pushPage(catalog.ViewEmergency, true)
}

// pushPage pushes the page for id, fading it in when asked.
func (m Model) pushPage(id catalog.ViewID, fade bool) (tea.Model, tea.Cmd) {
	instr, ok := m.catalog.Instruction(id)
	if !ok {
		log.Printf("no page for %q", id)
		return m, nil
	}

	var page Page
	if id == catalog.ViewEmergency {
		m.pageSeq++
		page = newEmergencyPage(m.pageSeq, instr, m.clock())
	} else {
		page = newInstructionPage(id, instr, m.clock(), m.width, m.height)
	}
	m.pages = append(m.pages, page)

	cmds := []tea.Cmd{page.Init()}
	if fade {
		cmds = append(cmds, m.pageAnim.Start())
	} else {
		m.pageAnim.Stop()
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd, closed := m.modal.Update(msg, m.keys)
	if closed {
		m.modal = nil
	} else {
		m.modal = modal
	}
	return m, cmd
}

// updateTopPage forwards msg to the top page and pops it when it closes.
func (m Model) updateTopPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := len(m.pages) - 1
	page, cmd, closed := m.pages[top].Update(msg, m.keys)
	if !closed {
		m.pages[top] = page
		return m, cmd
	}
	m.pages = m.pages[:top]
	m.pageAnim.Stop()
	return m, tea.Batch(cmd, m.recordPractice(page))
}

// recordPractice posts a long enough visit of page as a practice session.
func (m Model) recordPractice(page Page) tea.Cmd {
	session, ok := page.(practiceSession)
	if !ok || m.progressStore == nil || !m.profile.SignedIn() {
		return nil
	}
	activity, opened := session.Practice()
	elapsed := m.clock().Sub(opened)
	if elapsed < MinPracticeSession {
		return nil
	}
	return recordPracticeCmd(m.ctx, m.progressStore, m.profile.UID,
		opened.Format(backend.DateLayout), elapsed.Hours(), activity)
}

// Messages

type profileLoadedMsg struct {
	account state.Account
	err     error
}

// Commands

func loadProfileCmd(ctx context.Context, load ProfileLoader) tea.Cmd {
	return func() tea.Msg {
		account, err := load(ctx)
		return profileLoadedMsg{account: account, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
