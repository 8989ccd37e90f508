package ui

import (
	"errors"
	"testing"

	"github.com/loupedev/loupe/internal/prefs"
)

func TestThemeProviderSetAndPersist(t *testing.T) {
	var persisted string
	p := NewThemeProvider(prefs.ThemeDark, true, func(mode string) error {
		persisted = mode
		return nil
	})

	if err := p.SetTheme(prefs.ThemeLight); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if p.Theme() != prefs.ThemeLight {
		t.Errorf("Theme() = %q, want light", p.Theme())
	}
	if persisted != prefs.ThemeLight {
		t.Errorf("persisted = %q, want light", persisted)
	}
}

func TestThemeProviderRejectsUnknownMode(t *testing.T) {
	p := NewThemeProvider(prefs.ThemeDark, true, nil)
	if err := p.SetTheme("sepia"); err == nil {
		t.Fatal("expected error for unknown theme mode")
	}
	if p.Theme() != prefs.ThemeDark {
		t.Errorf("mode changed despite error: %q", p.Theme())
	}
}

func TestThemeProviderResolvedExplicitModes(t *testing.T) {
	for _, mode := range []string{prefs.ThemeLight, prefs.ThemeDark} {
		p := NewThemeProvider(mode, true, nil)
		if got := p.Resolved(); got != mode {
			t.Errorf("Resolved() for %q = %q, want identity", mode, got)
		}
	}
}

func TestThemeProviderResolvedSystem(t *testing.T) {
	p := NewThemeProvider(prefs.ThemeSystem, true, nil)
	got := p.Resolved()
	if got != prefs.ThemeLight && got != prefs.ThemeDark {
		t.Errorf("Resolved() for system = %q, want light or dark", got)
	}
}

func TestThemeProviderInvalidStartMode(t *testing.T) {
	p := NewThemeProvider("mauve", true, nil)
	if p.Theme() != prefs.ThemeSystem {
		t.Errorf("invalid start mode should fall back to system, got %q", p.Theme())
	}
}

func TestThemeProviderPersistErrorSurfaces(t *testing.T) {
	p := NewThemeProvider(prefs.ThemeSystem, true, func(string) error {
		return errors.New("disk full")
	})
	if err := p.SetTheme(prefs.ThemeDark); err == nil {
		t.Fatal("expected persist error to surface")
	}
}
