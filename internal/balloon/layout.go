// Package balloon renders duplicate characters as terminal balloons.
package balloon

import "math/rand"

// Position places one balloon in the terminal.
type Position struct {
	X     int
	Char  string
	Index int
}

// Layout divides the screen width into equal slots, one per
// character, and picks a random x inside each slot so the balloons
// spread out without overlapping.
func Layout(width int, chars []string, rnd *rand.Rand) []Position {
	if len(chars) == 0 {
		return nil
	}
	slotWidth := width / len(chars)
	positions := make([]Position, 0, len(chars))
	for idx, ch := range chars {
		minX := idx * slotWidth
		span := slotWidth - ArtWidth
		x := minX
		if span > 0 {
			x = minX + rnd.Intn(span)
		}
		positions = append(positions, Position{X: x, Char: ch, Index: idx})
	}
	return positions
}

// Fits reports whether a terminal of the given size can hold the
// animation: every balloon in its own slot plus the summary and a
// key hint below.
func Fits(width, height, balloons, summaryLines int) bool {
	if balloons <= 0 {
		return false
	}
	if width/balloons < ArtWidth {
		return false
	}
	return height >= ArtHeight+summaryLines+3
}
