package ui

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/relaxapp/relax/internal/backend"
	"github.com/relaxapp/relax/internal/state"
)

// renderProfile shows the account and avatar details.
func renderProfile(theme Theme, p state.Profile, now time.Time, width, height int) string {
	styles := theme.Styles().WithBackground(theme.Background)
	avatar := p.Avatar()

	lines := []string{
		"",
		"  " + styles.Title.Render("Profile"),
		"",
		"  " + styles.Text.Render(avatarBadge(avatar)) + "  " + styles.Text.Bold(true).Render(p.DisplayName()),
		"",
	}

	field := func(label, value string) {
		lines = append(lines, "  "+styles.MutedText.Width(14).Render(label)+styles.Text.Render(value))
	}

	if p.SignedIn() {
		if p.Email != "" {
			field("Email", p.Email)
		}
		if created := backend.ParseTimestamp(p.CreatedAt); !created.IsZero() {
			field("Member since", created.Format("Jan 2, 2006")+" ("+humanize.RelTime(created, now, "ago", "from now")+")")
		}
	} else {
		lines = append(lines, "  "+styles.MutedText.Render("Not signed in. Run `relax login` to sync your profile."))
	}

	switch avatar.Kind {
	case state.AvatarLocal:
		field("Photo", "picked from gallery")
	case state.AvatarRemote:
		field("Photo", "from your account")
	default:
		field("Photo", "none")
	}
	lines = append(lines, "", "  "+styles.FaintText.Render("a  change photo"))

	base := newPaint(theme.Background)
	out := padLines(lines, height)
	for i, line := range out {
		out[i] = base.Line(line, width)
	}
	return strings.Join(out, "\n")
}
