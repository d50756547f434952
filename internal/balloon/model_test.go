package balloon

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfenerich/duplicate-letter-fest/internal/result"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	res := result.New("banana", []string{"a", "n"}, time.Millisecond, nil)
	return NewModel(res, 3, time.Millisecond, rand.New(rand.NewSource(1)))
}

func sized(t *testing.T, m *Model) *Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(*Model)
}

func TestModelEmptyViewBeforeSize(t *testing.T) {
	m := newTestModel(t)
	if view := m.View(); view != "" {
		t.Fatalf("expected empty view before window size, got %q", view)
	}
}

func TestModelRisesThenHolds(t *testing.T) {
	m := sized(t, newTestModel(t))
	for i := 0; i < 3; i++ {
		if m.holding {
			t.Fatalf("holding too early at step %d", i)
		}
		updated, _ := m.Update(tickMsg(time.Now()))
		m = updated.(*Model)
	}
	if !m.holding {
		t.Fatalf("expected model to hold after all steps")
	}
	view := m.View()
	if !strings.Contains(view, ".---.") {
		t.Fatalf("expected balloon art in final frame")
	}
	if !strings.Contains(view, "'banana'") {
		t.Fatalf("expected summary in final frame")
	}
	if !strings.Contains(view, "Press any key") {
		t.Fatalf("expected key hint in final frame")
	}
}

func TestModelNoSummaryWhileRising(t *testing.T) {
	m := sized(t, newTestModel(t))
	updated, _ := m.Update(tickMsg(time.Now()))
	m = updated.(*Model)
	if strings.Contains(m.View(), "'banana'") {
		t.Fatalf("summary must only appear in the final frame")
	}
}

func TestModelKeyQuitsWhenHolding(t *testing.T) {
	m := sized(t, newTestModel(t))
	for i := 0; i < 3; i++ {
		updated, _ := m.Update(tickMsg(time.Now()))
		m = updated.(*Model)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd == nil {
		t.Fatalf("expected quit command on key press in final frame")
	}
}

func TestModelCtrlCQuitsWhileRising(t *testing.T) {
	m := sized(t, newTestModel(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command on ctrl+c")
	}
}

func TestModelIgnoresKeysWhileRising(t *testing.T) {
	m := sized(t, newTestModel(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Fatalf("expected keys to be ignored while rising")
	}
}
