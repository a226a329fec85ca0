package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nightslot/internal/models"
	"github.com/julianstephens/nightslot/internal/scheduler"
	"github.com/julianstephens/nightslot/internal/tui/components/agenda"
	"github.com/julianstephens/nightslot/internal/tui/components/suggestions"
)

type SessionState int

const (
	StateBrowse SessionState = iota
	StateAddActivity
	StateGoToDate
)

// Pane is the part of the screen receiving navigation keys
type Pane int

const (
	PaneAgenda Pane = iota
	PaneSuggestions
)

var viewTabs = []models.View{models.ViewDay, models.ViewWeek, models.ViewMonth}

type ActivityFormModel struct {
	Name     string
	Duration string
}

type DateFormModel struct {
	Date string
}

type Model struct {
	scheduler    *scheduler.Scheduler
	state        SessionState
	focus        Pane
	keys         KeyMap
	help         help.Model
	agenda       agenda.Model
	suggestions  suggestions.Model
	form         *huh.Form
	activityForm *ActivityFormModel
	dateForm     *DateFormModel
	formError    string
	hint         scheduler.Hint
	indicator    string
	quitting     bool
	width        int
	height       int
}

func NewModel(sched *scheduler.Scheduler) Model {
	m := Model{
		scheduler:   sched,
		state:       StateBrowse,
		focus:       PaneAgenda,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		agenda:      agenda.New(0, 0),
		suggestions: suggestions.New(0, 0),
	}
	m.apply(scheduler.Change{
		Dirty:     scheduler.RegionAll,
		Hint:      sched.Hint(),
		Indicator: sched.Indicator(),
	})
	return m
}

// apply re-renders the regions an intent reported as dirty
func (m *Model) apply(change scheduler.Change) {
	m.hint = change.Hint
	m.indicator = change.Indicator
	if change.Has(scheduler.RegionAgenda) {
		m.agenda.Refresh(m.scheduler)
	}
	if change.Has(scheduler.RegionSuggestions) {
		m.suggestions.SetSuggestions(m.scheduler.Suggestions())
	}
}

func (m Model) State() SessionState { return m.state }
func (m Model) Focus() Pane         { return m.focus }

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Focus, m.keys.Quit, m.keys.Help}
	ak := m.agenda.Keys()
	if m.focus == PaneAgenda {
		keys = append(keys, ak.Click)
	}
	return append(keys, m.keys.Add, m.keys.Cancel)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Focus, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Prev, m.keys.Next, m.keys.Today, m.keys.GoTo}

	ak := m.agenda.Keys()
	var actions []key.Binding
	switch m.focus {
	case PaneAgenda:
		actions = []key.Binding{ak.Up, ak.Down, ak.Left, ak.Right, ak.Click, ak.Select}
	case PaneSuggestions:
		actions = []key.Binding{ak.Up, ak.Down, suggestions.DefaultKeyMap().Toggle}
	}
	actions = append(actions, m.keys.Add, m.keys.Cancel)

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
