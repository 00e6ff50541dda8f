// Package styles contains Lip Gloss style definitions for beanthere output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Title renders section headings like the daily report banner.
	Title = lipgloss.NewStyle().Bold(true).Underline(true)

	// Header renders table header rows.
	Header = lipgloss.NewStyle().Bold(true)

	// Muted renders de-emphasized text such as empty-state messages.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	// Good marks healthy stock levels and revenue figures.
	Good = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// Bad marks low stock and cost figures.
	Bad = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	// Profit marks the bottom line.
	Profit = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	// BeanName highlights a bean name in running text.
	BeanName = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Vibe label styles, keyed by the label text.
var (
	vibeTranscendent = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	vibeExcellent    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	vibeGood         = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	vibeNeedsWork    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// VibeStyle returns the style for a vibe label. Unknown labels render
// unstyled.
func VibeStyle(label string) lipgloss.Style {
	switch label {
	case "Transcendent":
		return vibeTranscendent
	case "Excellent":
		return vibeExcellent
	case "Good":
		return vibeGood
	case "Needs work":
		return vibeNeedsWork
	default:
		return lipgloss.NewStyle()
	}
}
