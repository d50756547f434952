// Package balloon renders duplicate characters as terminal balloons.
package balloon

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ArtWidth and ArtHeight are the cell dimensions of one balloon.
const (
	ArtWidth  = 11
	ArtHeight = 7
)

var artTop = []string{
	"   .---.   ",
	"  /     \\  ",
}

var artBottom = []string{
	"  \\     /  ",
	"   `---'   ",
	"     |     ",
	"     |     ",
}

var colorStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
	lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
}

// Art returns the balloon template with ch in the basket row. A
// double-width rune eats one trailing pad cell so the art stays an
// ArtWidth-wide block.
func Art(ch string) []string {
	pad := 3 - runewidth.StringWidth(ch)
	if pad < 0 {
		pad = 0
	}
	basket := "  |  " + ch + strings.Repeat(" ", pad) + "|  "

	lines := make([]string, 0, ArtHeight)
	lines = append(lines, artTop...)
	lines = append(lines, basket)
	lines = append(lines, artBottom...)
	return lines
}

// ColorFor returns the style for the balloon at the given index,
// cycling through the five balloon colors.
func ColorFor(index int) lipgloss.Style {
	return colorStyles[index%len(colorStyles)]
}
