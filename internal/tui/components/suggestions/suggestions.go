package suggestions

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nightslot/internal/scheduler"
)

var (
	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(1, 2)
)

// ToggleMsg asks the parent to arm or disarm an activity
type ToggleMsg struct {
	ID string
}

type Item struct {
	Suggestion scheduler.Suggestion
}

func (i Item) Title() string {
	if i.Suggestion.Armed {
		return "● " + i.Suggestion.Activity.Name
	}
	return i.Suggestion.Activity.Name
}
func (i Item) Description() string {
	if i.Suggestion.Armed {
		return i.Suggestion.DurationLabel + " | armed"
	}
	return i.Suggestion.DurationLabel
}
func (i Item) FilterValue() string { return i.Suggestion.Activity.Name }

type KeyMap struct {
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "arm/disarm"),
		),
	}
}

type Model struct {
	list        list.Model
	keys        KeyMap
	idle        bool
	caption     string
	placeholder string
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Ideas"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}

	return Model{list: l, keys: keys, idle: true}
}

// SetSuggestions replaces the list contents, keeping the cursor on the
// same activity when it is still present.
func (m *Model) SetSuggestions(s scheduler.SuggestionList) {
	m.idle = s.Idle
	m.caption = s.Caption
	m.placeholder = s.Placeholder

	current := ""
	if i, ok := m.list.SelectedItem().(Item); ok {
		current = i.Suggestion.Activity.ID
	}

	items := make([]list.Item, len(s.Items))
	cursor := 0
	for i, sg := range s.Items {
		items[i] = Item{Suggestion: sg}
		if sg.Activity.ID == current {
			cursor = i
		}
	}
	m.list.SetItems(items)
	if len(items) > 0 {
		m.list.Select(cursor)
	}
}

// Selected returns the suggestion under the cursor
func (m Model) Selected() (scheduler.Suggestion, bool) {
	if m.idle {
		return scheduler.Suggestion{}, false
	}
	i, ok := m.list.SelectedItem().(Item)
	if !ok {
		return scheduler.Suggestion{}, false
	}
	return i.Suggestion, true
}

// Filtering reports whether the list is capturing keystrokes for its filter
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.idle {
		return m, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		if key.Matches(msg, m.keys.Toggle) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				id := i.Suggestion.Activity.ID
				return m, func() tea.Msg { return ToggleMsg{ID: id} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	caption := captionStyle.Render(m.caption)
	if m.idle {
		return lipgloss.JoinVertical(lipgloss.Left, caption, placeholderStyle.Render(m.placeholder))
	}
	if len(m.list.Items()) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, caption, placeholderStyle.Render("No activities yet.\nPress 'a' to add one."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, caption, m.list.View())
}

func (m *Model) SetSize(width, height int) {
	// one line for the caption
	m.list.SetSize(width, max(height-1, 0))
}
