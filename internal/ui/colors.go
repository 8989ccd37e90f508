package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the TUI color palette.
type Palette struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Disabled   bool
}

// Active palette colors. Set via ApplyPalette; styles rebuild on change.
var (
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
)

func init() {
	ApplyPalette(PaletteByName("dark"))
}

// PaletteByName returns the palette for a resolved theme ("light" or "dark").
// Unknown names fall back to dark.
func PaletteByName(name string) Palette {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return Palette{
			Name:       "light",
			Primary:    lipgloss.Color("#7C3AED"),
			Secondary:  lipgloss.Color("#0E7490"),
			Accent:     lipgloss.Color("#2563EB"),
			Info:       lipgloss.Color("#1D4ED8"),
			Success:    lipgloss.Color("#15803D"),
			Warning:    lipgloss.Color("#B45309"),
			Error:      lipgloss.Color("#B91C1C"),
			Muted:      lipgloss.Color("#64748B"),
			Background: lipgloss.Color("#F8FAFC"),
			Foreground: lipgloss.Color("#0F172A"),
			Border:     lipgloss.Color("#CBD5E1"),
			Highlight:  lipgloss.Color("#4338CA"),
		}
	default:
		return Palette{
			Name:       "dark",
			Primary:    lipgloss.Color("#A78BFA"),
			Secondary:  lipgloss.Color("#22D3EE"),
			Accent:     lipgloss.Color("#60A5FA"),
			Info:       lipgloss.Color("#38BDF8"),
			Success:    lipgloss.Color("#34D399"),
			Warning:    lipgloss.Color("#FBBF24"),
			Error:      lipgloss.Color("#F87171"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0B1120"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#334155"),
			Highlight:  lipgloss.Color("#7DD3FC"),
		}
	}
}

// ApplyPalette installs a palette as the active colors and rebuilds the
// shared styles. With Disabled set, all colors collapse to the terminal
// defaults (monochrome output).
func ApplyPalette(p Palette) {
	if p.Disabled {
		none := lipgloss.Color("")
		Primary, Secondary, Accent, Info = none, none, none, none
		Success, Warning, Error, Muted = none, none, none, none
		Background, Foreground, Border, Highlight = none, none, none, none
	} else {
		Primary, Secondary, Accent, Info = p.Primary, p.Secondary, p.Accent, p.Info
		Success, Warning, Error, Muted = p.Success, p.Warning, p.Error, p.Muted
		Background, Foreground = p.Background, p.Foreground
		Border, Highlight = p.Border, p.Highlight
	}
	rebuildStyles()
}

// ApplyTheme switches the color palette for a resolved theme name.
func ApplyTheme(theme string, noColor bool) {
	palette := PaletteByName(theme)
	palette.Disabled = noColor
	ApplyPalette(palette)
}
