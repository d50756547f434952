package balloon

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestArtShape(t *testing.T) {
	lines := Art("a")
	if len(lines) != ArtHeight {
		t.Fatalf("expected %d lines, got %d", ArtHeight, len(lines))
	}
	for i, line := range lines {
		if runewidth.StringWidth(line) != ArtWidth {
			t.Fatalf("line %d has width %d, expected %d: %q", i, runewidth.StringWidth(line), ArtWidth, line)
		}
	}
}

func TestArtContainsChar(t *testing.T) {
	lines := Art("z")
	if lines[2] != "  |  z  |  " {
		t.Fatalf("unexpected basket row: %q", lines[2])
	}
}

func TestArtWideRune(t *testing.T) {
	lines := Art("日")
	if runewidth.StringWidth(lines[2]) != ArtWidth {
		t.Fatalf("wide rune broke alignment: %q has width %d", lines[2], runewidth.StringWidth(lines[2]))
	}
}

func TestColorForCycles(t *testing.T) {
	for idx := 0; idx < 10; idx++ {
		if ColorFor(idx).Render("x") != ColorFor(idx+5).Render("x") {
			t.Fatalf("expected color to cycle with period 5 at index %d", idx)
		}
	}
}
