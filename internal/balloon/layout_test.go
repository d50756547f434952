package balloon

import (
	"math/rand"
	"testing"
)

func TestLayoutSlots(t *testing.T) {
	chars := []string{"a", "n", "x"}
	width := 90
	rnd := rand.New(rand.NewSource(1))
	positions := Layout(width, chars, rnd)
	if len(positions) != len(chars) {
		t.Fatalf("expected %d positions, got %d", len(chars), len(positions))
	}
	slotWidth := width / len(chars)
	for i, pos := range positions {
		if pos.Char != chars[i] || pos.Index != i {
			t.Fatalf("position %d lost its character: %+v", i, pos)
		}
		minX := i * slotWidth
		if pos.X < minX || pos.X+ArtWidth > minX+slotWidth {
			t.Fatalf("position %d out of slot: x=%d slot=[%d,%d)", i, pos.X, minX, minX+slotWidth)
		}
	}
}

func TestLayoutDeterministicWithSeed(t *testing.T) {
	chars := []string{"a", "b"}
	first := Layout(100, chars, rand.New(rand.NewSource(7)))
	second := Layout(100, chars, rand.New(rand.NewSource(7)))
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected deterministic layout, got %+v and %+v", first, second)
		}
	}
}

func TestLayoutNarrowSlot(t *testing.T) {
	positions := Layout(ArtWidth*2, []string{"a", "b"}, rand.New(rand.NewSource(1)))
	if positions[0].X != 0 || positions[1].X != ArtWidth {
		t.Fatalf("expected packed layout in narrow slots, got %+v", positions)
	}
}

func TestLayoutEmpty(t *testing.T) {
	if got := Layout(80, nil, rand.New(rand.NewSource(1))); got != nil {
		t.Fatalf("expected nil for no characters, got %+v", got)
	}
}

func TestFits(t *testing.T) {
	cases := []struct {
		name     string
		width    int
		height   int
		balloons int
		summary  int
		want     bool
	}{
		{name: "roomy", width: 80, height: 24, balloons: 2, summary: 4, want: true},
		{name: "too narrow", width: 20, height: 24, balloons: 2, summary: 4, want: false},
		{name: "too short", width: 80, height: 10, balloons: 2, summary: 4, want: false},
		{name: "no balloons", width: 80, height: 24, balloons: 0, summary: 4, want: false},
		{name: "exact height", width: 80, height: ArtHeight + 4 + 3, balloons: 1, summary: 4, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Fits(tc.width, tc.height, tc.balloons, tc.summary); got != tc.want {
				t.Fatalf("Fits(%d,%d,%d,%d) = %v, expected %v", tc.width, tc.height, tc.balloons, tc.summary, got, tc.want)
			}
		})
	}
}
