package prefs

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Theme modes understood by the theme provider collaborator.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Store persists the preferences record under a single key-value slot.
// Load reports ok=false when nothing usable is stored; the caller falls back
// to defaults.
type Store interface {
	Load() (rec Record, ok bool, err error)
	Save(rec Record) error
}

// Environment receives preference state and reflects it onto the rendered
// page. Implementations must be idempotent: applying the same record twice
// yields the same presentation.
type Environment interface {
	SetTextSize(size int)
	SetLinkHighlight(on bool)
	SetReadableFont(on bool)
	SetImagesHidden(on bool)
}

// ThemeProvider is the external collaborator owning the light/dark/system
// choice.
type ThemeProvider interface {
	Theme() string
	// Resolved maps "system" to the effective "light" or "dark".
	Resolved() string
	SetTheme(mode string) error
}

// Controller owns the in-memory record and keeps store, environment, and
// theme provider in sync. One instance per process; not safe for concurrent
// use (the UI event loop is single-threaded).
type Controller struct {
	store  Store
	env    Environment
	themes ThemeProvider
	logger *log.Logger
	rec    Record
}

// NewController loads the persisted record (defaults when absent or
// malformed) and reflects it onto the environment once.
func NewController(store Store, env Environment, themes ThemeProvider, logger *log.Logger) (*Controller, error) {
	if logger == nil {
		logger = log.Default()
	}

	rec, ok, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}
	if !ok {
		rec = Defaults()
	} else {
		rec = Normalize(rec)
	}

	c := &Controller{
		store:  store,
		env:    env,
		themes: themes,
		logger: logger,
		rec:    rec,
	}
	c.reflect()
	return c, nil
}

// Record returns a copy of the current preferences.
func (c *Controller) Record() Record {
	return c.rec
}

// Apply runs one action: reduce the record, delegate theme changes to the
// provider, reflect every field onto the environment, and persist.
func (c *Controller) Apply(action Action) error {
	if !action.Valid() {
		return fmt.Errorf("unknown preferences action %q", action)
	}

	switch action {
	case ActionToggleTheme:
		if err := c.toggleTheme(); err != nil {
			return err
		}
	case ActionReset:
		c.rec = Defaults()
		if err := c.themes.SetTheme(ThemeSystem); err != nil {
			return fmt.Errorf("resetting theme: %w", err)
		}
	default:
		c.rec = Reduce(c.rec, action)
	}

	c.reflect()

	if err := c.store.Save(c.rec); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	c.logger.Debug("preferences applied", "action", action, "fontSize", c.rec.FontSize)
	return nil
}

// toggleTheme flips the resolved theme: a stored "system" resolves to the
// terminal's light or dark first, then flips.
func (c *Controller) toggleTheme() error {
	next := ThemeDark
	if c.themes.Resolved() == ThemeDark {
		next = ThemeLight
	}
	if err := c.themes.SetTheme(next); err != nil {
		return fmt.Errorf("switching theme: %w", err)
	}
	return nil
}

func (c *Controller) reflect() {
	c.env.SetTextSize(c.rec.FontSize)
	c.env.SetLinkHighlight(c.rec.HighlightLinks)
	c.env.SetReadableFont(c.rec.ReadableFont)
	c.env.SetImagesHidden(c.rec.HideImages)
}
