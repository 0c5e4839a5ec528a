// Package theme defines the light and dark color palettes for the
// habit TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/habit/internal/model"
)

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name           string
	Background     lipgloss.Color // Main app background
	Surface        lipgloss.Color // Card backgrounds
	Border         lipgloss.Color // Card borders
	TextDim        lipgloss.Color // Hints, disabled controls
	TextMuted      lipgloss.Color // Labels, subtitles
	TextPrimary    lipgloss.Color // Primary content text
	Accent         lipgloss.Color // Selected day, filled checkboxes
	AccentText     lipgloss.Color // Text on top of Accent
	Score          lipgloss.Color // Score card background
	CompletionMark lipgloss.Color // Logged-day dot in the date strip
}

// Active is the currently selected theme.
var Active = Light

// Light is the default warm paper theme.
var Light = Theme{
	Name:           "light",
	Background:     lipgloss.Color("#FFFFFF"),
	Surface:        lipgloss.Color("#F5F2EB"),
	Border:         lipgloss.Color("#E5E2DD"),
	TextDim:        lipgloss.Color("#9A9890"),
	TextMuted:      lipgloss.Color("#606057"),
	TextPrimary:    lipgloss.Color("#302F2B"),
	Accent:         lipgloss.Color("#FFBC2D"),
	AccentText:     lipgloss.Color("#302F2B"),
	Score:          lipgloss.Color("#EBEBAA"),
	CompletionMark: lipgloss.Color("#302F2B"),
}

// Dark mirrors the light palette in warm browns.
var Dark = Theme{
	Name:           "dark",
	Background:     lipgloss.Color("#2F2C28"),
	Surface:        lipgloss.Color("#3E3B36"),
	Border:         lipgloss.Color("#4A4741"),
	TextDim:        lipgloss.Color("#8A8578"),
	TextMuted:      lipgloss.Color("#BEBAA5"),
	TextPrimary:    lipgloss.Color("#F5F2EB"),
	Accent:         lipgloss.Color("#4A3729"),
	AccentText:     lipgloss.Color("#F5F2EB"),
	Score:          lipgloss.Color("#4A4741"),
	CompletionMark: lipgloss.Color("#F5F2EB"),
}

// All available themes.
var All = []Theme{Light, Dark}

// ByName returns a theme by its name, defaulting to Light.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Light
}

// For maps the persisted preference onto its palette.
func For(pref model.Theme) Theme {
	if pref == model.ThemeDark {
		return Dark
	}
	return Light
}

// SetActive sets the active theme from the persisted preference.
func SetActive(pref model.Theme) {
	Active = For(pref)
}
