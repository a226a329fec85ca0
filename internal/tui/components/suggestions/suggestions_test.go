package suggestions

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/nightslot/internal/scheduler"
)

func newScheduler() *scheduler.Scheduler {
	now := time.Date(2024, time.March, 14, 21, 30, 0, 0, time.Local)
	return scheduler.New(scheduler.WithClock(func() time.Time { return now }))
}

func TestIdleList(t *testing.T) {
	m := New(40, 20)
	m.SetSuggestions(newScheduler().Suggestions())

	if _, ok := m.Selected(); ok {
		t.Error("idle list should have no selection")
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("idle list should ignore keys")
	}
	if out := m.View(); !strings.Contains(out, "Choose a day in the agenda to get started.") {
		t.Errorf("placeholder missing:\n%s", out)
	}
}

func TestToggleEmitsMsg(t *testing.T) {
	s := newScheduler()
	s.SelectDate(time.Date(2024, time.March, 14, 0, 0, 0, 0, time.Local), false)

	m := New(40, 30)
	m.SetSuggestions(s.Suggestions())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	sel, ok := m.Selected()
	if !ok || sel.Activity.ID != "activity-2" {
		t.Fatalf("selected = %+v", sel)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(ToggleMsg)
	if !ok || msg.ID != "activity-2" {
		t.Errorf("msg = %#v", msg)
	}
}

func TestSetSuggestionsKeepsCursor(t *testing.T) {
	s := newScheduler()
	s.SelectDate(time.Date(2024, time.March, 14, 0, 0, 0, 0, time.Local), false)

	m := New(40, 30)
	m.SetSuggestions(s.Suggestions())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	s.ToggleActivity("activity-3")
	m.SetSuggestions(s.Suggestions())

	sel, ok := m.Selected()
	if !ok || sel.Activity.ID != "activity-3" {
		t.Fatalf("cursor moved to %+v", sel)
	}
	if !sel.Armed {
		t.Error("suggestion should be armed")
	}
	if got := (Item{Suggestion: sel}).Title(); !strings.HasPrefix(got, "● ") {
		t.Errorf("armed title = %q", got)
	}
}
