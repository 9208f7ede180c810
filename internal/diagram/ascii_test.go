package diagram

import (
	"strings"
	"testing"

	"gojoint/internal/section"
)

func TestDrawASCIISection(t *testing.T) {
	d := section.Dimensions{D: 300, B1: 150, B2: 150, Tw: 7, Tf1: 10, Tf2: 10}

	out := DrawASCIISection(d)
	if out == "" {
		t.Fatal("empty sketch")
	}
	for _, want := range []string{"D  = 300", "tw = 7", "B1 = 150", "B2 = 150"} {
		if !strings.Contains(out, want) {
			t.Errorf("sketch missing %q", want)
		}
	}
}

func TestDrawASCIISectionUnsymmetric(t *testing.T) {
	d := section.Dimensions{D: 300, B1: 100, B2: 200, Tw: 8, Tf1: 12, Tf2: 12}

	lines := strings.Split(DrawASCIISection(d), "\n")
	var top, bot string
	for _, l := range lines {
		if strings.Contains(l, "B2") {
			top = l
		}
		if strings.Contains(l, "B1") {
			bot = l
		}
	}
	if top == "" || bot == "" {
		t.Fatal("flange rows missing")
	}
	if strings.Count(bot, "=") >= strings.Count(top, "=") {
		t.Error("narrower bottom flange should draw fewer characters")
	}
}

func TestDrawASCIISectionDegenerate(t *testing.T) {
	if out := DrawASCIISection(section.Dimensions{}); out != "" {
		t.Errorf("zero section should render nothing, got %q", out)
	}
}
