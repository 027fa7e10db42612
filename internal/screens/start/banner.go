package start

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/certquiz/internal/ui/theme"
)

const bannerArt = `  ___  ___  ___  _____    ___  _   _  ___  ____
 / __|| __|| _ \|_   _|  / _ \| | | ||_ _||_  /
| (__ | _| |   /  | |   | (_) | |_| | | |  / /
 \___||___||_|_\  |_|    \__\_\\___/ |___|/___|`

const bannerCompact = "C E R T Q U I Z"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 52 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
