package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/relaxapp/relax/internal/catalog"
)

// catalogScreen is the scrollable exercise catalog below the collapsing
// header.
type catalogScreen struct {
	sections []catalog.Section
	entries  []catalog.Entry
	layout   catalogLayout
	cursor   int
	scroll   scrollPosition
	geom     headerGeometry
	width    int
}

func newCatalogScreen(c catalog.Catalog) catalogScreen {
	return catalogScreen{
		sections: c.Sections,
		entries:  c.Entries(),
		layout:   layoutCatalog(c.Sections),
	}
}

// SetSize updates the viewport and re-clamps the scroll.
func (c *catalogScreen) SetSize(width, height int) {
	c.width = width
	c.geom = newHeaderGeometry(height)
	c.scroll.SetMaxRows(c.geom.MaxScrollRows(c.layout.lines))
}

// Selected returns the entry under the cursor.
func (c catalogScreen) Selected() (catalog.Entry, bool) {
	if c.cursor < 0 || c.cursor >= len(c.entries) {
		return catalog.Entry{}, false
	}
	return c.entries[c.cursor], true
}

// Offset returns the scroll offset in logical pixels.
func (c catalogScreen) Offset() float64 {
	return c.scroll.offset
}

// Visibility returns the header state at the current offset.
func (c catalogScreen) Visibility() HeaderVisibility {
	return c.geom.Visibility(c.scroll.offset)
}

// Update handles navigation keys and the mouse wheel.
func (c catalogScreen) Update(msg tea.Msg, keys keyMap) (catalogScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return c, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			c.scroll.By(-wheelRows)
		case tea.MouseButtonWheelDown:
			c.scroll.By(wheelRows)
		}
		return c, nil

	case tea.KeyMsg:
		page := maxInt(c.geom.Viewport-c.geom.ToolbarRows, 1)
		switch {
		case key.Matches(msg, keys.Confirm):
			if entry, ok := c.Selected(); ok {
				return c, openPageCmd(entry.Destination, false)
			}
		case key.Matches(msg, keys.Up):
			c.moveRow(-1)
		case key.Matches(msg, keys.Down):
			c.moveRow(1)
		case key.Matches(msg, keys.Left):
			c.moveCol(-1)
		case key.Matches(msg, keys.Right):
			c.moveCol(1)
		case key.Matches(msg, keys.Top):
			c.cursor = 0
			c.scroll.ToRows(0)
		case key.Matches(msg, keys.Bottom):
			c.cursor = maxInt(len(c.entries)-1, 0)
			c.scroll.ToRows(c.geom.MaxScrollRows(c.layout.lines))
		case key.Matches(msg, keys.PageDown):
			c.scroll.By(page)
		case key.Matches(msg, keys.PageUp):
			c.scroll.By(-page)
		case key.Matches(msg, keys.HalfPageDown):
			c.scroll.By(page / 2)
		case key.Matches(msg, keys.HalfPageUp):
			c.scroll.By(-page / 2)
		}
	}
	return c, nil
}

func (c *catalogScreen) moveCol(delta int) {
	next := c.cursor + delta
	if next < 0 || next >= len(c.layout.slots) {
		return
	}
	if c.layout.slots[next].gridRow != c.layout.slots[c.cursor].gridRow {
		return
	}
	c.cursor = next
	c.reveal()
}

func (c *catalogScreen) moveRow(delta int) {
	if len(c.layout.slots) == 0 {
		return
	}
	cur := c.layout.slots[c.cursor]
	target := -1
	for i, slot := range c.layout.slots {
		if slot.gridRow != cur.gridRow+delta {
			continue
		}
		target = i
		if slot.col >= cur.col {
			break
		}
	}
	if target < 0 {
		return
	}
	c.cursor = target
	c.reveal()
}

// reveal scrolls so the selected card is fully on screen.
func (c *catalogScreen) reveal() {
	slot := c.layout.slots[c.cursor]
	rows := c.geom.RevealRows(c.scroll.Rows(), slot.top, slot.top+cardRows-1)
	c.scroll.ToRows(rows)
}

// View renders the header and the visible part of the body.
func (c catalogScreen) View(theme Theme, params catalogParams, width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	geom := newHeaderGeometry(height)
	scrollRows := c.scroll.Rows()
	vis := geom.Visibility(c.scroll.offset)

	lines := renderHeader(theme, geom, scrollRows, vis, params, width)

	body := renderCatalogBody(theme, c.sections, c.layout, width, c.cursor)
	start := minInt(geom.BodyOffset(scrollRows), len(body))
	end := minInt(start+maxInt(height-len(lines), 0), len(body))
	lines = append(lines, body[start:end]...)

	base := newPaint(theme.Background)
	for len(lines) < height {
		lines = append(lines, base.Blank(width))
	}
	return strings.Join(lines[:height], "\n")
}

// openPageMsg asks the shell to push an instruction page.
type openPageMsg struct {
	id   catalog.ViewID
	fade bool
}

func openPageCmd(id catalog.ViewID, fade bool) tea.Cmd {
	return func() tea.Msg {
		return openPageMsg{id: id, fade: fade}
	}
}
