// Package balloon renders duplicate characters as terminal balloons.
package balloon

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mfenerich/duplicate-letter-fest/internal/result"
)

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

type tickMsg time.Time

// Model implements the Bubble Tea balloon animation. The balloons
// rise from the bottom edge to a resting row over a fixed number of
// steps, then the final frame holds with the summary until a key is
// pressed.
type Model struct {
	res   result.Result
	steps int
	delay time.Duration
	rnd   *rand.Rand

	width  int
	height int

	step      int
	holding   bool
	positions []Position
}

// NewModel constructs an animation model. Steps is the number of rise
// steps, delay the time between them.
func NewModel(res result.Result, steps int, delay time.Duration, rnd *rand.Rand) *Model {
	if steps < 1 {
		steps = 1
	}
	return &Model{res: res, steps: steps, delay: delay, rnd: rnd}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.positions = Layout(m.width, m.res.Duplicates(), m.rnd)
		return m, nil
	case tickMsg:
		if m.holding {
			return m, nil
		}
		m.step++
		if m.step >= m.steps {
			m.holding = true
			return m, nil
		}
		return m, m.tick()
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		default:
			if m.holding {
				return m, tea.Quit
			}
			return m, nil
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 || len(m.positions) == 0 {
		return ""
	}
	summary := m.res.SummaryLines()
	restY := m.restingRow(len(summary))
	y := m.balloonRow(restY)

	var b strings.Builder
	for row := 0; row < m.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		artRow := row - y
		if artRow >= 0 && artRow < ArtHeight {
			b.WriteString(m.renderArtRow(artRow))
			continue
		}
		if m.holding {
			summaryRow := row - (restY + ArtHeight + 1)
			if summaryRow >= 0 && summaryRow < len(summary) {
				b.WriteString("  " + summary[summaryRow])
				continue
			}
			if summaryRow == len(summary)+1 {
				b.WriteString(hintStyle.Render("  Press any key to exit"))
			}
		}
	}
	return b.String()
}

func (m *Model) restingRow(summaryLines int) int {
	rest := m.height - ArtHeight - summaryLines - 3
	if rest < 0 {
		rest = 0
	}
	return rest
}

func (m *Model) balloonRow(restY int) int {
	if m.holding || m.steps == 0 {
		return restY
	}
	start := m.height - ArtHeight
	if start < restY {
		start = restY
	}
	remaining := m.steps - m.step
	return restY + (start-restY)*remaining/m.steps
}

func (m *Model) renderArtRow(artRow int) string {
	var b strings.Builder
	col := 0
	for _, pos := range m.positions {
		if pos.X < col || pos.X+ArtWidth > m.width {
			continue
		}
		b.WriteString(strings.Repeat(" ", pos.X-col))
		line := Art(pos.Char)[artRow]
		b.WriteString(ColorFor(pos.Index).Render(line))
		col = pos.X + ArtWidth
	}
	return b.String()
}

// Animate runs the balloon animation for the result in the alt screen
// and blocks until it finishes.
func Animate(res result.Result, steps int, delay time.Duration) error {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	program := tea.NewProgram(NewModel(res, steps, delay, rnd), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run animation: %w", err)
	}
	return nil
}
