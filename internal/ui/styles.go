// Package ui provides Charm-based UI components for loupe.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Shared styles. Rebuilt whenever the palette changes so theme toggles take
// effect live.
var (
	Bold lipgloss.Style

	Tagline      lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HintStyle    lipgloss.Style

	InfoBox    lipgloss.Style
	SuccessBox lipgloss.Style
	ErrorBox   lipgloss.Style

	headerStyle lipgloss.Style
)

func rebuildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)

	Tagline = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	HintStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	InfoBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	SuccessBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Success).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	ErrorBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Error).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Primary).
		Padding(0, 1).
		Bold(true)
}

// Header renders a screen title bar.
func Header(title string) string {
	return headerStyle.Render(title)
}

// PrimaryStyle returns a style in the primary color; a function because the
// palette can change mid-run.
func PrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Primary).Bold(true)
}

// Banner returns the loupe ASCII banner
func Banner() string {
	banner := `
  ██╗      ██████╗ ██╗   ██╗██████╗ ███████╗
  ██║     ██╔═══██╗██║   ██║██╔══██╗██╔════╝
  ██║     ██║   ██║██║   ██║██████╔╝█████╗
  ██║     ██║   ██║██║   ██║██╔═══╝ ██╔══╝
  ███████╗╚██████╔╝╚██████╔╝██║     ███████╗
  ╚══════╝ ╚═════╝  ╚═════╝ ╚═╝     ╚══════╝`
	return lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render(banner)
}
