package page

import (
	"strings"
	"testing"

	"github.com/loupedev/loupe/internal/prefs"
)

func applyRecord(r *Renderer, rec prefs.Record) {
	r.SetTextSize(rec.FontSize)
	r.SetLinkHighlight(rec.HighlightLinks)
	r.SetReadableFont(rec.ReadableFont)
	r.SetImagesHidden(rec.HideImages)
}

func TestRenderLinkHighlight(t *testing.T) {
	doc := parseString(t, "See the [manual](https://example.org/m) for details.")
	r := NewRenderer()

	plain := r.Render(doc)
	if strings.Contains(plain, "https://example.org/m") {
		t.Error("link target shown while highlighting is off")
	}
	if !strings.Contains(plain, "manual") {
		t.Error("anchor text missing")
	}

	r.SetLinkHighlight(true)
	highlighted := r.Render(doc)
	if !strings.Contains(highlighted, "(https://example.org/m)") {
		t.Error("link target missing while highlighting is on")
	}
}

func TestRenderImagesHidden(t *testing.T) {
	doc := parseString(t, "Before.\n\n![a map](https://example.org/map.png)\n\nAfter.")
	r := NewRenderer()

	shown := r.Render(doc)
	if !strings.Contains(shown, "[image: a map]") {
		t.Errorf("visible image placeholder missing:\n%s", shown)
	}

	r.SetImagesHidden(true)
	hidden := r.Render(doc)
	if strings.Contains(hidden, "image") {
		t.Errorf("hidden image left a trace:\n%s", hidden)
	}
	if !strings.Contains(hidden, "Before.") || !strings.Contains(hidden, "After.") {
		t.Error("hiding images dropped surrounding text")
	}
}

func TestRenderTextSizeIndent(t *testing.T) {
	doc := parseString(t, "A single short paragraph.")

	indentFor := func(size int) int {
		r := NewRenderer()
		r.SetTextSize(size)
		out := r.Render(doc)
		line := strings.Split(out, "\n")[0]
		return len(line) - len(strings.TrimLeft(line, " "))
	}

	if got := indentFor(prefs.FontSizeMin); got != 0 {
		t.Errorf("indent at min size = %d, want 0", got)
	}

	last := -1
	for size := prefs.FontSizeMin; size <= prefs.FontSizeMax; size += prefs.FontSizeStep {
		got := indentFor(size)
		if got <= last {
			t.Errorf("indent did not grow at size %d: %d (previous %d)", size, got, last)
		}
		last = got
	}
}

func TestRenderReadableFontSpacing(t *testing.T) {
	// Long enough to wrap at 80 columns.
	doc := parseString(t, strings.Repeat("steady words flowing onward ", 8))

	r := NewRenderer()
	normal := strings.Count(r.Render(doc), "\n")

	r.SetReadableFont(true)
	readable := strings.Count(r.Render(doc), "\n")

	if readable <= normal {
		t.Errorf("readable layout should add line spacing: %d vs %d newlines", readable, normal)
	}
}

func TestRenderIdempotent(t *testing.T) {
	doc := Sample()
	r := NewRenderer()
	applyRecord(r, prefs.Record{
		FontSize:       20,
		HighlightLinks: true,
		ReadableFont:   true,
		HideImages:     false,
	})

	first := r.Render(doc)
	second := r.Render(doc)
	if first != second {
		t.Error("rendering the same state twice produced different output")
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	r := NewRenderer()
	if out := r.Render(&Document{}); out != "" {
		t.Errorf("empty document rendered %q", out)
	}
}
