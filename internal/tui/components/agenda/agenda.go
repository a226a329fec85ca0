package agenda

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nightslot/internal/constants"
	"github.com/julianstephens/nightslot/internal/models"
	"github.com/julianstephens/nightslot/internal/scheduler"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(7)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238")).
				Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Underline(true)

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)

	dotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))
)

// ClickSlotMsg is a click on a slot of the day view
type ClickSlotMsg struct {
	Date time.Time
	Hour int
}

// ClickWeekSlotMsg is a click on a slot of the week view
type ClickWeekSlotMsg struct {
	Date time.Time
	Hour int
}

// SelectDateMsg selects a day from a week header or a month cell
type SelectDateMsg struct {
	Date time.Time
}

// Source provides the projections the agenda renders
type Source interface {
	View() models.View
	DayView() scheduler.DaySchedule
	WeekView() scheduler.WeekSchedule
	MonthView() scheduler.MonthGrid
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Click  key.Binding
	Select key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "click slot"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select day"),
		),
	}
}

type Model struct {
	keys   KeyMap
	view   models.View
	day    scheduler.DaySchedule
	week   scheduler.WeekSchedule
	month  scheduler.MonthGrid
	slot   int
	column int
	cell   int
	width  int
	height int
}

func New(width, height int) Model {
	return Model{
		keys:   DefaultKeyMap(),
		view:   models.ViewDay,
		width:  width,
		height: height,
	}
}

func (m Model) Keys() KeyMap { return m.keys }

// Slot is the index of the hour under the cursor in the day and week views
func (m Model) Slot() int { return m.slot }

// Column is the week column under the cursor
func (m Model) Column() int { return m.column }

// Cell is the month cell under the cursor
func (m Model) Cell() int { return m.cell }

// Refresh pulls fresh projections. The week and month cursors follow the
// selected date; the hour cursor stays where it was.
func (m *Model) Refresh(src Source) {
	m.view = src.View()
	switch m.view {
	case models.ViewWeek:
		m.week = src.WeekView()
		for i, col := range m.week.Columns {
			if col.IsSelected {
				m.column = i
			}
		}
		m.column = clamp(m.column, len(m.week.Columns))
	case models.ViewMonth:
		m.month = src.MonthView()
		for i, c := range m.month.Cells {
			if c.IsSelected {
				m.cell = i
			}
		}
		m.cell = clamp(m.cell, len(m.month.Cells))
	default:
		m.day = src.DayView()
	}
	m.slot = clamp(m.slot, constants.SlotsPerNight)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.view == models.ViewMonth {
			if m.cell-7 >= 0 {
				m.cell -= 7
			}
		} else {
			m.slot = clamp(m.slot-1, constants.SlotsPerNight)
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.view == models.ViewMonth {
			if m.cell+7 < len(m.month.Cells) {
				m.cell += 7
			}
		} else {
			m.slot = clamp(m.slot+1, constants.SlotsPerNight)
		}
	case key.Matches(keyMsg, m.keys.Left):
		switch m.view {
		case models.ViewWeek:
			m.column = clamp(m.column-1, len(m.week.Columns))
		case models.ViewMonth:
			m.cell = clamp(m.cell-1, len(m.month.Cells))
		}
	case key.Matches(keyMsg, m.keys.Right):
		switch m.view {
		case models.ViewWeek:
			m.column = clamp(m.column+1, len(m.week.Columns))
		case models.ViewMonth:
			m.cell = clamp(m.cell+1, len(m.month.Cells))
		}
	case key.Matches(keyMsg, m.keys.Click):
		return m, m.click()
	case key.Matches(keyMsg, m.keys.Select):
		return m, m.selectDate()
	}
	return m, nil
}

func (m Model) click() tea.Cmd {
	switch m.view {
	case models.ViewWeek:
		if m.column >= len(m.week.Columns) {
			return nil
		}
		col := m.week.Columns[m.column]
		msg := ClickWeekSlotMsg{Date: col.Date, Hour: col.Slots[m.slot].Hour}
		return func() tea.Msg { return msg }
	case models.ViewMonth:
		return m.selectDate()
	default:
		if m.slot >= len(m.day.Slots) {
			return nil
		}
		msg := ClickSlotMsg{Date: m.day.Date, Hour: m.day.Slots[m.slot].Hour}
		return func() tea.Msg { return msg }
	}
}

func (m Model) selectDate() tea.Cmd {
	var date time.Time
	switch m.view {
	case models.ViewWeek:
		if m.column >= len(m.week.Columns) {
			return nil
		}
		date = m.week.Columns[m.column].Date
	case models.ViewMonth:
		if m.cell >= len(m.month.Cells) {
			return nil
		}
		date = m.month.Cells[m.cell].Date
	default:
		return nil
	}
	return func() tea.Msg { return SelectDateMsg{Date: date} }
}

func (m Model) View() string {
	switch m.view {
	case models.ViewWeek:
		return m.viewWeek()
	case models.ViewMonth:
		return m.viewMonth()
	default:
		return m.viewDay()
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) viewDay() string {
	var b strings.Builder

	weekday := headerStyle.Render(m.day.Weekday)
	if m.day.IsToday {
		weekday = todayStyle.Render(m.day.Weekday)
	}
	fmt.Fprintf(&b, "%s  %s  %s\n\n", weekday, m.day.DateLabel, placeholderStyle.Render("["+m.day.PickerValue+"]"))

	for i, slot := range m.day.Slots {
		var content string
		if slot.Filled() {
			content = nameStyle.Render(slot.Allocation.Name) + " " + durationStyle.Render(slot.DurationLabel)
		} else {
			content = placeholderStyle.Render(constants.SlotAvailable)
		}
		line := timeStyle.Render(slot.Label) + content
		if i == m.slot {
			line = cursorStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewWeek() string {
	colWidth := max((m.width-2)/7, 12)
	cellStyle := lipgloss.NewStyle().Width(colWidth).MaxWidth(colWidth)

	columns := make([]string, 0, len(m.week.Columns))
	for ci, col := range m.week.Columns {
		header := col.Weekday + " " + col.DayMonth
		switch {
		case col.IsToday:
			header = todayStyle.Render(header)
		default:
			header = headerStyle.Render(header)
		}
		if col.IsSelected {
			header = selectedStyle.Render(header)
		}

		rows := []string{cellStyle.Render(header)}
		for si, slot := range col.Slots {
			text := slot.Label + " ·"
			if slot.Filled() {
				text = slot.Label + " " + slot.Allocation.Name
			}
			style := cellStyle
			if !slot.Filled() {
				style = style.Inherit(placeholderStyle)
			}
			if ci == m.column && si == m.slot {
				style = style.Inherit(cursorStyle)
			}
			rows = append(rows, style.Render(text))
		}
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Left, rows...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m Model) viewMonth() string {
	const cellWidth = 8
	cellStyle := lipgloss.NewStyle().Width(cellWidth)

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.month.Title) + "\n\n")

	names := make([]string, len(m.month.WeekdayNames))
	for i, name := range m.month.WeekdayNames {
		names[i] = cellStyle.Inherit(headerStyle).Render(name)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, names...) + "\n")

	row := make([]string, 0, 7)
	for i := 0; i < m.month.LeadingBlanks; i++ {
		row = append(row, cellStyle.Render(""))
	}
	for i, c := range m.month.Cells {
		text := fmt.Sprintf("%2d %s", c.Day, dotStyle.Render(strings.Repeat("•", c.Dots)))
		style := cellStyle
		if c.IsToday {
			style = style.Inherit(todayStyle)
		}
		if c.IsSelected {
			style = style.Inherit(selectedStyle)
		}
		if i == m.cell {
			style = style.Inherit(cursorStyle)
		}
		row = append(row, style.Render(text))
		if len(row) == 7 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
			row = row[:0]
		}
	}
	if len(row) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
	}
	return b.String()
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
