// Package ui is the Bubble Tea interface of relax.
//
// # Home shell
//
// Model holds the active Tab (Breathe, Courses, Progress, Profile) and a
// separate state.Profile. The screen is a pure switch on the tab; nothing
// else is cached between renders. Selecting a tab, the active one
// included, restarts a 300ms fade with a slide in from 10% below.
//
// On Init the shell asks the ProfileLoader for the signed-in account. A
// failure is logged and the header keeps greeting "User" with a
// placeholder avatar. Picking a gallery image ("a") sets the local avatar,
// which always wins over the account photo. The picked folder and the theme
// ("T") are remembered in prefs.
//
// # Catalog screen
//
// The Breathe tab renders a collapsing header above a two-column grid of
// exercise cards. Scroll offsets are logical pixels (CellHeight per row).
// The header is 30% of the viewport; the collapsed title appears once the
// offset passes H-T-15 and the hero block hides once it passes H-T-10, so
// both show inside the band between. Enter on a card pushes its
// instruction page.
//
// # Pages and modals
//
// Pages (instruction steps, the emergency breathing pacer) stack over the
// shell and pop on esc. Visits of at least MinPracticeSession are posted
// to the progress store for signed-in users. Modals (the image picker)
// follow the same Update contract and take all input while open.
//
// # Animation
//
// Transitions and the pacer are driven by tea.Tick messages tagged with a
// generation or page sequence. Restarting or closing bumps the tag so
// frames from an earlier run are dropped.
package ui
