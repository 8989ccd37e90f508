package prefs

import "testing"

func TestDefaults(t *testing.T) {
	def := Defaults()
	if def.FontSize != FontSizeDefault {
		t.Errorf("default font size = %d, want %d", def.FontSize, FontSizeDefault)
	}
	if def.HighlightLinks || def.ReadableFont || def.HideImages {
		t.Errorf("default toggles should all be off: %+v", def)
	}
}

func TestReduceFontSizeBounds(t *testing.T) {
	rec := Defaults()

	// Walk up well past the maximum.
	for i := 0; i < 20; i++ {
		rec = Reduce(rec, ActionIncreaseText)
		if rec.FontSize > FontSizeMax {
			t.Fatalf("font size %d exceeded max %d", rec.FontSize, FontSizeMax)
		}
	}
	if rec.FontSize != FontSizeMax {
		t.Errorf("after many increases, font size = %d, want %d", rec.FontSize, FontSizeMax)
	}

	for i := 0; i < 20; i++ {
		rec = Reduce(rec, ActionDecreaseText)
		if rec.FontSize < FontSizeMin {
			t.Fatalf("font size %d fell below min %d", rec.FontSize, FontSizeMin)
		}
	}
	if rec.FontSize != FontSizeMin {
		t.Errorf("after many decreases, font size = %d, want %d", rec.FontSize, FontSizeMin)
	}
}

func TestReduceFontSizeStep(t *testing.T) {
	rec := Defaults()
	rec = Reduce(rec, ActionIncreaseText)
	if rec.FontSize != FontSizeDefault+FontSizeStep {
		t.Errorf("one increase = %d, want %d", rec.FontSize, FontSizeDefault+FontSizeStep)
	}
	rec = Reduce(rec, ActionDecreaseText)
	if rec.FontSize != FontSizeDefault {
		t.Errorf("increase then decrease = %d, want %d", rec.FontSize, FontSizeDefault)
	}
}

func TestTogglesAreInvolutions(t *testing.T) {
	toggles := []Action{ActionToggleLinks, ActionToggleReadableFont, ActionToggleImagesHidden}

	for _, action := range toggles {
		t.Run(string(action), func(t *testing.T) {
			start := Defaults()
			once := Reduce(start, action)
			if once == start {
				t.Fatalf("%s did not change the record", action)
			}
			twice := Reduce(once, action)
			if twice != start {
				t.Errorf("%s applied twice = %+v, want %+v", action, twice, start)
			}
		})
	}
}

func TestReduceReset(t *testing.T) {
	rec := Defaults()
	for _, a := range []Action{
		ActionIncreaseText, ActionIncreaseText,
		ActionToggleLinks, ActionToggleReadableFont, ActionToggleImagesHidden,
	} {
		rec = Reduce(rec, a)
	}

	rec = Reduce(rec, ActionReset)
	if rec != Defaults() {
		t.Errorf("reset = %+v, want defaults %+v", rec, Defaults())
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"below min", 4, FontSizeMin},
		{"above max", 99, FontSizeMax},
		{"off grid", 15, 14},
		{"on grid", 18, 18},
		{"zero", 0, FontSizeMin},
		{"negative", -8, FontSizeMin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(Record{FontSize: tt.in})
			if got.FontSize != tt.want {
				t.Errorf("Normalize(%d) = %d, want %d", tt.in, got.FontSize, tt.want)
			}
		})
	}
}

func TestActionValid(t *testing.T) {
	for _, a := range Actions() {
		if !a.Valid() {
			t.Errorf("action %q should be valid", a)
		}
	}
	if Action("make-coffee").Valid() {
		t.Error("unknown action reported as valid")
	}
}
