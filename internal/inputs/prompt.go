// Package inputs collects text lines from files or the interactive prompt.
package inputs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const (
	welcomeBanner = "Welcome to the Duplicate Letter Fest!"
	welcomeHint   = "Type any word or name, and watch repeated letters pop up as balloons if enabled."
)

type promptModel struct {
	input   textinput.Model
	done    bool
	aborted bool
}

func newPromptModel() promptModel {
	ti := textinput.New()
	ti.Prompt = "Enter text: "
	ti.CharLimit = 0
	ti.Width = 60
	ti.Focus()
	return promptModel{input: ti}
}

// Init implements tea.Model.
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m promptModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n\n%s\n",
		bannerStyle.Render(welcomeBanner),
		hintStyle.Render(welcomeHint),
		m.input.View(),
	)
}

// Prompt runs the interactive single-line prompt and returns the
// trimmed input. The second return value is false when the user
// aborted instead of submitting.
func Prompt() (string, bool, error) {
	program := tea.NewProgram(newPromptModel())
	final, err := program.Run()
	if err != nil {
		return "", false, fmt.Errorf("failed to run prompt: %w", err)
	}
	m, ok := final.(promptModel)
	if !ok || m.aborted {
		return "", false, nil
	}
	return strings.TrimSpace(m.input.Value()), true, nil
}
