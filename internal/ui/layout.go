package ui

import "time"

// Logical pixel geometry. Scroll offsets and header sizes are measured in
// logical pixels and mapped onto terminal rows.
const (
	// CellHeight is the number of logical pixels per terminal row.
	CellHeight = 16.0

	// ToolbarHeight is the pinned toolbar height of the collapsing header.
	ToolbarHeight = 56.0

	// HeaderFraction is the expanded header height as a share of the viewport.
	HeaderFraction = 0.30

	// titleSlack and heroSlack set the two header thresholds; the gap
	// between them keeps the header from flickering.
	titleSlack = 15.0
	heroSlack  = 10.0
)

// Grid layout.
const (
	gridColumns = 2
	cardRows    = 6
	cardGap     = 2
	gridMargin  = 1

	// chromeRows is the tab bar plus the footer.
	chromeRows = 2

	// wheelRows is how far one mouse wheel notch scrolls.
	wheelRows = 3
)

// Timing constants.
const (
	// TransitionDuration is the length of tab and page transitions.
	TransitionDuration = 300 * time.Millisecond

	// FrameInterval is the transition frame cadence.
	FrameInterval = 16 * time.Millisecond

	// SlideFraction is how far below its resting place a tab starts, as a
	// share of the content height.
	SlideFraction = 0.10

	// GreetingRefresh forces a re-render so the greeting follows the clock.
	GreetingRefresh = time.Minute

	// MinPracticeSession is the shortest instruction visit recorded as practice.
	MinPracticeSession = 30 * time.Second

	// RequestTimeout bounds background backend calls started by the UI.
	RequestTimeout = 5 * time.Second
)
