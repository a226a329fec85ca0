package tui

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateAddActivity, StateGoToDate:
		content = m.viewForm()
	default:
		content = m.viewBrowse()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		indicatorStyle.Render(m.indicator),
		content,
		m.viewHint(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, v := range viewTabs {
		title := titleCaser.String(string(v))
		if m.scheduler.View() == v {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewBrowse() string {
	agendaPane, suggestionsPane := paneStyle, paneStyle
	if m.focus == PaneAgenda {
		agendaPane = focusedPaneStyle
	} else {
		suggestionsPane = focusedPaneStyle
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		agendaPane.Render(m.agenda.View()),
		suggestionsPane.Render(m.suggestions.View()),
	)
}

func (m Model) viewForm() string {
	parts := []string{m.form.View()}
	if m.formError != "" {
		parts = append(parts, warningStyle.Render(m.formError))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewHint() string {
	if m.hint.IsError {
		return dangerStyle.Render(m.hint.Text)
	}
	return hintStyle.Render(m.hint.Text)
}
