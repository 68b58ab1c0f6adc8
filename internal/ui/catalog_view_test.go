package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/relaxapp/relax/internal/catalog"
)

func newTestCatalogScreen(height int) catalogScreen {
	c := newCatalogScreen(catalog.Default())
	c.SetSize(100, height)
	return c
}

func TestLayoutCatalog(t *testing.T) {
	layout := layoutCatalog(catalog.Default().Sections)

	if len(layout.slots) != 11 {
		t.Fatalf("slots = %d, want 11", len(layout.slots))
	}
	wantTitles := []int{1, 18, 49}
	for i, want := range wantTitles {
		if layout.titleTop[i] != want {
			t.Fatalf("titleTop[%d] = %d, want %d", i, layout.titleTop[i], want)
		}
	}
	if layout.lines != 59 {
		t.Fatalf("lines = %d, want 59", layout.lines)
	}

	cases := []struct {
		index int
		want  cardSlot
	}{
		{0, cardSlot{gridRow: 0, col: 0, top: 3}},
		{1, cardSlot{gridRow: 0, col: 1, top: 3}},
		{2, cardSlot{gridRow: 1, col: 0, top: 10}},
		{3, cardSlot{gridRow: 2, col: 0, top: 20}},
		{9, cardSlot{gridRow: 5, col: 0, top: 41}},
		{10, cardSlot{gridRow: 6, col: 0, top: 51}},
	}
	for _, tc := range cases {
		if got := layout.slots[tc.index]; got != tc.want {
			t.Fatalf("slot %d = %+v, want %+v", tc.index, got, tc.want)
		}
	}
}

func TestCatalogScreen_CursorMovement(t *testing.T) {
	keys := DefaultKeyMap()
	c := newTestCatalogScreen(38)

	c, _ = c.Update(keyMsg("l"), keys)
	if c.cursor != 1 {
		t.Fatalf("right: cursor = %d, want 1", c.cursor)
	}
	// The row below holds a single card in the first column.
	c, _ = c.Update(keyMsg("j"), keys)
	if c.cursor != 2 {
		t.Fatalf("down into short row: cursor = %d, want 2", c.cursor)
	}
	// Right does not wrap into the next section.
	c, _ = c.Update(keyMsg("l"), keys)
	if c.cursor != 2 {
		t.Fatalf("right at row end: cursor = %d, want 2", c.cursor)
	}
	c, _ = c.Update(keyMsg("k"), keys)
	if c.cursor != 0 {
		t.Fatalf("up: cursor = %d, want 0", c.cursor)
	}
	c, _ = c.Update(keyMsg("k"), keys)
	if c.cursor != 0 {
		t.Fatalf("up at top: cursor = %d, want 0", c.cursor)
	}
}

func TestCatalogScreen_ScrollFollowsCursor(t *testing.T) {
	keys := DefaultKeyMap()
	c := newTestCatalogScreen(38)

	for i := 0; i < 6; i++ {
		c, _ = c.Update(keyMsg("j"), keys)
	}
	entry, ok := c.Selected()
	if !ok || entry.Destination != catalog.ViewBox {
		t.Fatalf("selected = %+v, want Box Breathing", entry)
	}
	if got := c.scroll.Rows(); got != 30 {
		t.Fatalf("scroll rows = %d, want 30", got)
	}

	_, cmd := c.Update(keyMsg("enter"), keys)
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("enter produced %d messages", len(msgs))
	}
	open, ok := msgs[0].(openPageMsg)
	if !ok || open.id != catalog.ViewBox || open.fade {
		t.Fatalf("enter produced %#v, want plain open of box", msgs[0])
	}
}

func TestCatalogScreen_WheelScrollsHeader(t *testing.T) {
	keys := DefaultKeyMap()
	c := newTestCatalogScreen(38)
	wheel := func(button tea.MouseButton) tea.MouseMsg {
		return tea.MouseMsg{Button: button, Action: tea.MouseActionPress}
	}

	if vis := c.Visibility(); vis.Title || !vis.Hero {
		t.Fatalf("initial visibility = %+v", vis)
	}

	c, _ = c.Update(wheel(tea.MouseButtonWheelDown), keys)
	if c.Offset() != 48 {
		t.Fatalf("offset = %v, want 48", c.Offset())
	}

	c, _ = c.Update(wheel(tea.MouseButtonWheelDown), keys)
	c, _ = c.Update(wheel(tea.MouseButtonWheelDown), keys)
	if vis := c.Visibility(); !vis.Title || vis.Hero {
		t.Fatalf("visibility at %v = %+v, want collapsed", c.Offset(), vis)
	}

	for i := 0; i < 5; i++ {
		c, _ = c.Update(wheel(tea.MouseButtonWheelUp), keys)
	}
	if c.Offset() != 0 {
		t.Fatalf("offset = %v, want 0", c.Offset())
	}
}

func TestCatalogScreen_ResizeClampsScroll(t *testing.T) {
	keys := DefaultKeyMap()
	c := newTestCatalogScreen(38)
	c, _ = c.Update(keyMsg("G"), keys)
	if got := c.scroll.Rows(); got != 32 {
		t.Fatalf("bottom scroll = %d, want 32", got)
	}

	c.SetSize(100, 90)
	if got := c.scroll.Rows(); got != 0 {
		t.Fatalf("scroll after growing = %d, want 0", got)
	}
}

func TestCatalogScreen_HeaderNeverBlank(t *testing.T) {
	theme := GetTheme("")
	params := catalogParams{Greeting: "Good Morning", Name: "Asha"}
	greeting := "Good Morning, Asha"

	for height := 16; height <= 80; height++ {
		for scrollRows := 0; scrollRows <= 20; scrollRows++ {
			c := newTestCatalogScreen(height)
			c.scroll.ToRows(scrollRows)
			vis := c.Visibility()
			header := c.geom.VisibleRows(c.scroll.Rows())
			lines := strings.Split(ansi.Strip(c.View(theme, params, 100, height)), "\n")
			top := strings.Join(lines[:header], "\n")

			if vis.Hero && !strings.Contains(top, greeting) {
				t.Fatalf("height=%d offset=%v vis=%+v: greeting missing from header:\n%s", height, c.Offset(), vis, top)
			}
			if vis.Title && !strings.Contains(top, appTitle) {
				t.Fatalf("height=%d offset=%v vis=%+v: title missing from header:\n%s", height, c.Offset(), vis, top)
			}
			if !vis.Hero && !vis.Title {
				t.Fatalf("height=%d offset=%v: header shows nothing", height, c.Offset())
			}
		}
	}
}
