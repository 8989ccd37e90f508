package prefs

import (
	"errors"
	"testing"
)

type fakeStore struct {
	rec     Record
	ok      bool
	loadErr error
	saveErr error
	saves   int
}

func (s *fakeStore) Load() (Record, bool, error) { return s.rec, s.ok, s.loadErr }

func (s *fakeStore) Save(rec Record) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.rec = rec
	s.ok = true
	s.saves++
	return nil
}

type fakeEnv struct {
	textSize  int
	links     bool
	readable  bool
	imagesOff bool
	calls     int
}

func (e *fakeEnv) SetTextSize(size int)     { e.textSize = size; e.calls++ }
func (e *fakeEnv) SetLinkHighlight(on bool) { e.links = on }
func (e *fakeEnv) SetReadableFont(on bool)  { e.readable = on }
func (e *fakeEnv) SetImagesHidden(on bool)  { e.imagesOff = on }

type fakeThemes struct {
	mode     string
	resolved string
	setErr   error
}

func (p *fakeThemes) Theme() string { return p.mode }

func (p *fakeThemes) Resolved() string {
	if p.mode == ThemeSystem {
		return p.resolved
	}
	return p.mode
}

func (p *fakeThemes) SetTheme(mode string) error {
	if p.setErr != nil {
		return p.setErr
	}
	p.mode = mode
	return nil
}

func newTestController(t *testing.T, store *fakeStore) (*Controller, *fakeEnv, *fakeThemes) {
	t.Helper()
	env := &fakeEnv{}
	themes := &fakeThemes{mode: ThemeSystem, resolved: ThemeDark}
	c, err := NewController(store, env, themes, nil)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c, env, themes
}

func TestMountUsesDefaultsWhenNothingStored(t *testing.T) {
	c, env, _ := newTestController(t, &fakeStore{})

	if c.Record() != Defaults() {
		t.Errorf("record = %+v, want defaults", c.Record())
	}
	if env.textSize != FontSizeDefault {
		t.Errorf("environment not reflected at mount: textSize = %d", env.textSize)
	}
}

func TestMountNormalizesStoredRecord(t *testing.T) {
	c, _, _ := newTestController(t, &fakeStore{
		rec: Record{FontSize: 99, HighlightLinks: true},
		ok:  true,
	})

	got := c.Record()
	if got.FontSize != FontSizeMax {
		t.Errorf("font size = %d, want clamped %d", got.FontSize, FontSizeMax)
	}
	if !got.HighlightLinks {
		t.Error("stored toggle lost during normalization")
	}
}

func TestMountSurfacesStoreError(t *testing.T) {
	_, err := NewController(&fakeStore{loadErr: errors.New("disk gone")}, &fakeEnv{}, &fakeThemes{}, nil)
	if err == nil {
		t.Fatal("expected error from failing store")
	}
}

func TestApplyReflectsAndPersists(t *testing.T) {
	store := &fakeStore{}
	c, env, _ := newTestController(t, store)

	if err := c.Apply(ActionToggleLinks); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if !env.links {
		t.Error("environment does not reflect the toggle")
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
	if !store.rec.HighlightLinks {
		t.Error("persisted record missing the toggle")
	}
}

func TestApplyUnknownAction(t *testing.T) {
	c, _, _ := newTestController(t, &fakeStore{})
	if err := c.Apply(Action("make-coffee")); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestApplySaveErrorSurfaces(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("read-only")}
	c, _, _ := newTestController(t, store)
	if err := c.Apply(ActionIncreaseText); err == nil {
		t.Fatal("expected persistence error to surface")
	}
}

func TestToggleThemeFlipsResolved(t *testing.T) {
	c, _, themes := newTestController(t, &fakeStore{})

	// Stored mode "system" resolving dark flips to light.
	if err := c.Apply(ActionToggleTheme); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if themes.mode != ThemeLight {
		t.Errorf("theme = %q, want %q", themes.mode, ThemeLight)
	}

	if err := c.Apply(ActionToggleTheme); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if themes.mode != ThemeDark {
		t.Errorf("theme = %q, want %q", themes.mode, ThemeDark)
	}
}

func TestResetRestoresDefaultsAndSystemTheme(t *testing.T) {
	store := &fakeStore{}
	c, _, themes := newTestController(t, store)

	for _, a := range []Action{ActionIncreaseText, ActionToggleLinks, ActionToggleTheme} {
		if err := c.Apply(a); err != nil {
			t.Fatalf("Apply(%s): %v", a, err)
		}
	}

	if err := c.Apply(ActionReset); err != nil {
		t.Fatalf("Apply(reset): %v", err)
	}

	if c.Record() != Defaults() {
		t.Errorf("record after reset = %+v, want defaults", c.Record())
	}
	if themes.mode != ThemeSystem {
		t.Errorf("theme after reset = %q, want %q", themes.mode, ThemeSystem)
	}
	if store.rec != Defaults() {
		t.Errorf("persisted record after reset = %+v, want defaults", store.rec)
	}
}
