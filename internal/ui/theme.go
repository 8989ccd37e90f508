package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/loupedev/loupe/internal/prefs"
)

// ThemeModes returns the modes accepted by the provider.
func ThemeModes() []string {
	return []string{prefs.ThemeLight, prefs.ThemeDark, prefs.ThemeSystem}
}

// ThemeProvider owns the light/dark/system choice for the terminal. It
// implements prefs.ThemeProvider: setting a mode swaps the active palette and
// persists the choice through the supplied callback.
type ThemeProvider struct {
	mode    string
	noColor bool
	persist func(mode string) error
}

// NewThemeProvider builds a provider starting at mode. The persist callback
// may be nil (nothing is written, used by tests and one-shot commands).
func NewThemeProvider(mode string, noColor bool, persist func(mode string) error) *ThemeProvider {
	if !validThemeMode(mode) {
		mode = prefs.ThemeSystem
	}
	p := &ThemeProvider{mode: mode, noColor: noColor, persist: persist}
	ApplyTheme(p.Resolved(), noColor)
	return p
}

// Theme returns the stored mode: "light", "dark", or "system".
func (p *ThemeProvider) Theme() string {
	return p.mode
}

// Resolved maps "system" to the terminal's effective light or dark.
func (p *ThemeProvider) Resolved() string {
	if p.mode != prefs.ThemeSystem {
		return p.mode
	}
	if lipgloss.HasDarkBackground() {
		return prefs.ThemeDark
	}
	return prefs.ThemeLight
}

// SetTheme stores a new mode, re-applies the palette, and persists.
func (p *ThemeProvider) SetTheme(mode string) error {
	if !validThemeMode(mode) {
		return fmt.Errorf("unknown theme %q (want light, dark, or system)", mode)
	}
	p.mode = mode
	ApplyTheme(p.Resolved(), p.noColor)
	if p.persist == nil {
		return nil
	}
	if err := p.persist(mode); err != nil {
		return fmt.Errorf("persisting theme: %w", err)
	}
	return nil
}

func validThemeMode(mode string) bool {
	switch mode {
	case prefs.ThemeLight, prefs.ThemeDark, prefs.ThemeSystem:
		return true
	}
	return false
}
