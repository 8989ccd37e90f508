// Package prefs holds the display preferences record and the fixed set of
// actions that mutate it.
package prefs

// Font size bounds. Sizes move in steps of two so the rendered zoom levels
// stay distinguishable.
const (
	FontSizeMin     = 12
	FontSizeMax     = 24
	FontSizeStep    = 2
	FontSizeDefault = 16
)

// Record is the persisted display-preference values. Theme is owned by the
// theme provider, not the record.
type Record struct {
	FontSize       int  `json:"fontSize"`
	HighlightLinks bool `json:"highlightLinks"`
	ReadableFont   bool `json:"readableFont"`
	HideImages     bool `json:"hideImages"`
}

// Defaults returns the record used when nothing is persisted yet.
func Defaults() Record {
	return Record{
		FontSize:       FontSizeDefault,
		HighlightLinks: false,
		ReadableFont:   false,
		HideImages:     false,
	}
}

// Action names one of the fixed preference mutations.
type Action string

const (
	ActionIncreaseText       Action = "increase-text"
	ActionDecreaseText       Action = "decrease-text"
	ActionToggleTheme        Action = "toggle-theme"
	ActionToggleLinks        Action = "toggle-links"
	ActionToggleReadableFont Action = "toggle-readable-font"
	ActionToggleImagesHidden Action = "toggle-images-hidden"
	ActionReset              Action = "reset"
)

// Actions returns the full action set in panel order.
func Actions() []Action {
	return []Action{
		ActionIncreaseText,
		ActionDecreaseText,
		ActionToggleTheme,
		ActionToggleLinks,
		ActionToggleReadableFont,
		ActionToggleImagesHidden,
		ActionReset,
	}
}

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionIncreaseText, ActionDecreaseText, ActionToggleTheme,
		ActionToggleLinks, ActionToggleReadableFont, ActionToggleImagesHidden,
		ActionReset:
		return true
	}
	return false
}

// Reduce returns the record after applying a single action. Theme toggling is
// handled by the controller and leaves the record unchanged here.
func Reduce(r Record, a Action) Record {
	switch a {
	case ActionIncreaseText:
		r.FontSize = clampFontSize(r.FontSize + FontSizeStep)
	case ActionDecreaseText:
		r.FontSize = clampFontSize(r.FontSize - FontSizeStep)
	case ActionToggleLinks:
		r.HighlightLinks = !r.HighlightLinks
	case ActionToggleReadableFont:
		r.ReadableFont = !r.ReadableFont
	case ActionToggleImagesHidden:
		r.HideImages = !r.HideImages
	case ActionReset:
		return Defaults()
	}
	return r
}

// Normalize repairs a record loaded from storage: sizes are clamped to the
// supported range and snapped onto the step grid.
func Normalize(r Record) Record {
	r.FontSize = clampFontSize(r.FontSize)
	if (r.FontSize-FontSizeMin)%FontSizeStep != 0 {
		r.FontSize--
	}
	return r
}

func clampFontSize(size int) int {
	if size < FontSizeMin {
		return FontSizeMin
	}
	if size > FontSizeMax {
		return FontSizeMax
	}
	return size
}
