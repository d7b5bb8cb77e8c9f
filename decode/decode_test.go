package decode

import (
	"os"
	"strings"
	"testing"
)

func TestDecoder_Decode(t *testing.T) {
	r, err := os.Open("testdata/sample.thermo")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	cfg, err := NewDecoder(r).Decode()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "revenue" {
		t.Errorf("title: want revenue, got %s", cfg.Title)
	}
	if cfg.Path != "revenue.svg" {
		t.Errorf("path: want revenue.svg, got %s", cfg.Path)
	}
	if cfg.Width != 400 || cfg.Height != 600 {
		t.Errorf("size: want 400x600, got %gx%g", cfg.Width, cfg.Height)
	}
	wantAreas := []float64{5, 4, 7}
	if len(cfg.Areas) != len(wantAreas) {
		t.Fatalf("areas: want %d values, got %d", len(wantAreas), len(cfg.Areas))
	}
	for i := range wantAreas {
		if cfg.Areas[i] != wantAreas[i] {
			t.Errorf("areas[%d]: want %g, got %g", i, wantAreas[i], cfg.Areas[i])
		}
	}
	if len(cfg.Labels) != 3 || cfg.Labels[0] != "licences" {
		t.Errorf("unexpected area labels: %q", cfg.Labels)
	}
	if len(cfg.Goals) != 2 || cfg.Goals[0] != 10 || cfg.Goals[1] != 18 {
		t.Errorf("unexpected goals: %v", cfg.Goals)
	}
	if len(cfg.GoalLabels) != 2 || cfg.GoalLabels[1] != "stretch" {
		t.Errorf("unexpected goal labels: %q", cfg.GoalLabels)
	}
	if cfg.Location != "right" {
		t.Errorf("location: want right, got %s", cfg.Location)
	}
	if len(cfg.Limits) != 2 || cfg.Limits[0] != 0 || cfg.Limits[1] != 20 {
		t.Errorf("unexpected limits: %v", cfg.Limits)
	}

	if _, _, err := cfg.Build(); err != nil {
		t.Errorf("config does not build: %s", err)
	}
}

func TestDecoder_Errors(t *testing.T) {
	data := []struct {
		Name  string
		Input string
	}{
		{
			Name:  "unknown option",
			Input: "set colour red",
		},
		{
			Name:  "missing value",
			Input: "set title",
		},
		{
			Name:  "bad number",
			Input: "set limits 0,twenty",
		},
		{
			Name:  "bad size",
			Input: "set size 400",
		},
		{
			Name:  "no keyword",
			Input: "limits 0,20",
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			_, err := NewDecoder(strings.NewReader(d.Input)).Decode()
			if err == nil {
				t.Errorf("decoding %q should have failed", d.Input)
			}
		})
	}
}
