package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Main content panels
	SurfaceAlt string // Secondary surfaces

	SelectionBg   string
	SelectionText string

	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Info    string

	// Hero header wash, top to bottom
	HeroTop    string
	HeroBottom string
	HeroText   string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		SectionTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true).
			Padding(0, 1),

		TabInactive: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style

	// Components
	Title        lipgloss.Style
	SectionTitle lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
}

// WithBackground returns a copy of Styles with all text styles having the specified background.
// This ensures styled text has explicit backgrounds instead of transparent/inherit.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	return Styles{
		Text:       s.Text.Background(bg),
		MutedText:  s.MutedText.Background(bg),
		FaintText:  s.FaintText.Background(bg),
		AccentText: s.AccentText.Background(bg),

		Title:        s.Title.Background(bg),
		SectionTitle: s.SectionTitle.Background(bg),
		TabActive:    s.TabActive,
		TabInactive:  s.TabInactive.Background(bg),
	}
}

// blendHex mixes two #RRGGBB colors in Lab space; t=0 is a, t=1 is b.
// Unparseable input falls back to a.
func blendHex(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	switch {
	case t <= 0:
		return ca.Hex()
	case t >= 1:
		return cb.Hex()
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

// Theme definitions

var themes = map[string]Theme{
	"Lagoon": lagoonTheme(),
	"Dusk":   duskTheme(),
}

var themeOrder = []string{"Lagoon", "Dusk"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return lagoonTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func lagoonTheme() Theme {
	// Material teal ramp on a deep green-black base
	return Theme{
		Name: "Lagoon",

		Background: "#0B1F1E",
		Surface:    "#102A28",
		SurfaceAlt: "#143532",

		SelectionBg:   "#00796B", // teal-700
		SelectionText: "#E0F2F1", // teal-50

		BorderFocus: "#4DB6AC", // teal-300

		Text:    "#E0F2F1", // teal-50
		Muted:   "#80CBC4", // teal-200
		Faint:   "#4F7A75",
		Accent:  "#4DB6AC", // teal-300
		Warning: "#FFCC80",
		Info:    "#80DEEA",

		HeroTop:    "#1E4D48",
		HeroBottom: "#00695C", // teal-800
		HeroText:   "#FFFFFF",
	}
}

func duskTheme() Theme {
	// Muted violet evening palette
	return Theme{
		Name: "Dusk",

		Background: "#16131F",
		Surface:    "#1F1A2B",
		SurfaceAlt: "#282238",

		SelectionBg:   "#6D5BA8",
		SelectionText: "#F3EFFA",

		BorderFocus: "#B39DDB", // deep-purple-200

		Text:    "#EDE7F6", // deep-purple-50
		Muted:   "#B0A4C8",
		Faint:   "#6E6387",
		Accent:  "#B39DDB",
		Warning: "#FFCC80",
		Info:    "#90CAF9",

		HeroTop:    "#2C2440",
		HeroBottom: "#5E4B8B",
		HeroText:   "#FFFFFF",
	}
}
