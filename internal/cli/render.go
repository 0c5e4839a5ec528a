package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette colors (the app's warm paper look).
var (
	ColorBorder    = lipgloss.Color("#4A4741")
	ColorTextDim   = lipgloss.Color("#8A8578")
	ColorTextMuted = lipgloss.Color("#BEBAA5")
	ColorText      = lipgloss.Color("#F5F2EB")
	ColorAccent    = lipgloss.Color("#FFBC2D")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorRed       = lipgloss.Color("#D14D41")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	accentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	goodStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)
)

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(46).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderHeader renders an accented section header.
func RenderHeader(s string) string {
	return headerStyle.Render(s)
}

// RenderMuted renders secondary text.
func RenderMuted(s string) string {
	return mutedStyle.Render(s)
}

// RenderValue renders primary content text.
func RenderValue(s string) string {
	return valueStyle.Render(s)
}

// RenderAccent renders accent-colored text.
func RenderAccent(s string) string {
	return accentStyle.Render(s)
}

// RenderGood renders positive/affirmative text.
func RenderGood(s string) string {
	return goodStyle.Render(s)
}

// RenderDim renders lowest-contrast text.
func RenderDim(s string) string {
	return dimStyle.Render(s)
}

// MetricRow renders one aligned metric line for status output.
// e.g., "  Hydration  ███░░░░░░░  3 | 10 glasses"
func MetricRow(label, bar, count, unit string) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(padRight(label, 12)))
	b.WriteString(accentStyle.Render(bar))
	b.WriteString("  ")
	b.WriteString(valueStyle.Render(count))
	if unit != "" {
		b.WriteString(" ")
		b.WriteString(dimStyle.Render(unit))
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
