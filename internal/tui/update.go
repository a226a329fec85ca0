package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	nserrors "github.com/julianstephens/nightslot/internal/errors"
	"github.com/julianstephens/nightslot/internal/logger"
	"github.com/julianstephens/nightslot/internal/models"
	"github.com/julianstephens/nightslot/internal/scheduler"
	"github.com/julianstephens/nightslot/internal/tui/components/agenda"
	"github.com/julianstephens/nightslot/internal/tui/components/suggestions"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(size.Width, size.Height)
	}

	switch m.state {
	case StateAddActivity:
		return m, m.updateActivityForm(msg)
	case StateGoToDate:
		return m, m.updateDateForm(msg)
	}

	switch msg := msg.(type) {
	case agenda.ClickSlotMsg:
		m.apply(m.scheduler.ClickSlot(msg.Date, msg.Hour))
		return m, nil
	case agenda.ClickWeekSlotMsg:
		m.apply(m.scheduler.ClickWeekSlot(msg.Date, msg.Hour))
		return m, nil
	case agenda.SelectDateMsg:
		m.apply(m.scheduler.SelectDate(msg.Date, false))
		return m, nil
	case suggestions.ToggleMsg:
		m.apply(m.scheduler.ToggleActivity(msg.ID))
		return m, nil

	case tea.KeyMsg:
		if m.focus == PaneSuggestions && m.suggestions.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.apply(m.scheduler.SetView(m.cycleView(1)))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.apply(m.scheduler.SetView(m.cycleView(-1)))
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			if m.focus == PaneAgenda {
				m.focus = PaneSuggestions
			} else {
				m.focus = PaneAgenda
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.apply(m.scheduler.Navigate(scheduler.Prev))
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.apply(m.scheduler.Navigate(scheduler.Next))
			return m, nil
		case key.Matches(msg, m.keys.Today):
			m.apply(m.scheduler.Navigate(scheduler.Today))
			return m, nil
		case key.Matches(msg, m.keys.Cancel):
			m.apply(m.scheduler.Cancel())
			return m, nil
		case key.Matches(msg, m.keys.Add):
			m.activityForm = &ActivityFormModel{}
			m.form = NewActivityForm(m.activityForm)
			m.formError = ""
			m.state = StateAddActivity
			return m, m.form.Init()
		case key.Matches(msg, m.keys.GoTo):
			m.dateForm = &DateFormModel{}
			m.form = NewDateForm(m.dateForm)
			m.formError = ""
			m.state = StateGoToDate
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case PaneSuggestions:
		m.suggestions, cmd = m.suggestions.Update(msg)
	default:
		m.agenda, cmd = m.agenda.Update(msg)
	}
	return m, cmd
}

func (m *Model) cycleView(step int) models.View {
	current := 0
	for i, v := range viewTabs {
		if v == m.scheduler.View() {
			current = i
		}
	}
	return viewTabs[(current+step+len(viewTabs))%len(viewTabs)]
}

func (m *Model) updateActivityForm(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateBrowse
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if next := m.submitActivity(); next != nil {
			return next
		}
	case huh.StateAborted:
		m.state = StateBrowse
	}
	return cmd
}

func (m *Model) updateDateForm(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateBrowse
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.goToDate()
	case huh.StateAborted:
		m.state = StateBrowse
	}
	return cmd
}

// submitActivity hands the form values to the planner. Rejected input
// reopens the form with the values kept.
func (m *Model) submitActivity() tea.Cmd {
	change, err := m.scheduler.SubmitActivity(m.activityForm.Name, m.activityForm.Duration)
	m.apply(change)
	if nserrors.IsValidation(err) {
		logger.Debug("Rejected activity input", "error", err)
		m.formError = change.Hint.Text
		m.form = NewActivityForm(m.activityForm)
		return m.form.Init()
	}
	if err != nil {
		logger.Error("Failed to add activity", "error", err)
		m.formError = ""
		m.state = StateBrowse
		return nil
	}
	m.formError = ""
	m.focus = PaneSuggestions
	m.state = StateBrowse
	return nil
}

func (m *Model) goToDate() {
	m.apply(m.scheduler.SelectDateKey(strings.TrimSpace(m.dateForm.Date)))
	m.state = StateBrowse
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	// tabs, indicator, hint, help and pane borders
	bodyHeight := max(height-8, 0)
	agendaWidth := width * 2 / 3
	m.agenda.SetSize(max(agendaWidth-4, 0), bodyHeight)
	m.suggestions.SetSize(max(width-agendaWidth-4, 0), bodyHeight)
}
