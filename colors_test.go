package thermo

import (
	"testing"
)

func TestPalettes(t *testing.T) {
	for _, p := range []Palette{Category10, Tableau10, DefaultPalette} {
		if len(p) != 10 {
			t.Fatalf("palette should hold 10 colors, got %d", len(p))
		}
	}
	if Category10.Color(0) != "#1f77b4" {
		t.Errorf("want #1f77b4, got %s", Category10.Color(0))
	}
	if Category10.Color(10) != Category10.Color(0) {
		t.Errorf("colors should cycle through the palette")
	}
	if DefaultPalette.Color(0) == "" {
		t.Errorf("default palette should be usable before any chart is drawn")
	}
}
