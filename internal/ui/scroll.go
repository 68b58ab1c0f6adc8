package ui

import "math"

// HeaderVisibility is what the collapsing header shows at a scroll offset.
// Inside the band between the two thresholds both are visible.
type HeaderVisibility struct {
	Title bool // collapsed title in the toolbar
	Hero  bool // greeting, avatar, and large title
}

// headerVisibility evaluates the header thresholds. All values are logical
// pixels.
func headerVisibility(offset, headerHeight, toolbarHeight float64) HeaderVisibility {
	return HeaderVisibility{
		Title: offset > headerHeight-toolbarHeight-titleSlack,
		Hero:  offset <= headerHeight-toolbarHeight-heroSlack,
	}
}

// headerGeometry maps the collapsing header onto terminal rows for a
// viewport of the given height.
type headerGeometry struct {
	Height      float64 // expanded header, logical px
	Toolbar     float64 // pinned toolbar, logical px
	Rows        int     // expanded header rows
	ToolbarRows int     // pinned toolbar rows
	Viewport    int     // rows available to header plus body
}

func newHeaderGeometry(viewportRows int) headerGeometry {
	viewportRows = maxInt(viewportRows, 0)
	height := HeaderFraction * float64(viewportRows) * CellHeight
	toolbarRows := int(math.Round(ToolbarHeight / CellHeight))
	rows := maxInt(int(math.Round(height/CellHeight)), toolbarRows)
	return headerGeometry{
		Height:      height,
		Toolbar:     ToolbarHeight,
		Rows:        rows,
		ToolbarRows: toolbarRows,
		Viewport:    viewportRows,
	}
}

// Visibility evaluates the thresholds for offset.
func (g headerGeometry) Visibility(offset float64) HeaderVisibility {
	return headerVisibility(offset, g.Height, g.Toolbar)
}

// VisibleRows is the number of header rows left on screen after scrolling
// scrollRows; the toolbar stays pinned.
func (g headerGeometry) VisibleRows(scrollRows int) int {
	return maxInt(g.ToolbarRows, g.Rows-scrollRows)
}

// BodyOffset is the first body line shown below the header.
func (g headerGeometry) BodyOffset(scrollRows int) int {
	return maxInt(0, scrollRows-(g.Rows-g.ToolbarRows))
}

// MaxScrollRows is the furthest the outer scroll can go for a body of
// bodyLines lines.
func (g headerGeometry) MaxScrollRows(bodyLines int) int {
	return maxInt(0, g.Rows+bodyLines-g.Viewport)
}

// RevealRows returns the scroll position, in rows, closest to scrollRows
// that shows body lines top through bottom below the pinned toolbar.
func (g headerGeometry) RevealRows(scrollRows, top, bottom int) int {
	// A body line b sits on screen row b + Rows - scroll.
	if bottom+g.Rows-scrollRows > g.Viewport-1 {
		scrollRows = bottom + g.Rows - g.Viewport + 1
	}
	if top+g.Rows-scrollRows < g.ToolbarRows {
		scrollRows = top + g.Rows - g.ToolbarRows
	}
	return maxInt(scrollRows, 0)
}

// scrollPosition is the outer scroll offset in logical pixels.
type scrollPosition struct {
	offset float64
	max    float64
}

// Rows returns the offset in whole terminal rows.
func (s scrollPosition) Rows() int {
	return int(s.offset / CellHeight)
}

// By scrolls by rows, clamped to [0, max].
func (s *scrollPosition) By(rows int) {
	s.offset = clampFloat(s.offset+float64(rows)*CellHeight, 0, s.max)
}

// ToRows scrolls to an absolute row.
func (s *scrollPosition) ToRows(rows int) {
	s.offset = clampFloat(float64(rows)*CellHeight, 0, s.max)
}

// SetMaxRows updates the scroll range and re-clamps the offset.
func (s *scrollPosition) SetMaxRows(rows int) {
	s.max = float64(maxInt(rows, 0)) * CellHeight
	s.offset = clampFloat(s.offset, 0, s.max)
}
