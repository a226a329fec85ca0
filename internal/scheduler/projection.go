package scheduler

import (
	"fmt"
	"time"

	"github.com/julianstephens/nightslot/internal/constants"
	"github.com/julianstephens/nightslot/internal/models"
	"github.com/julianstephens/nightslot/internal/utils"
)

// WeekdayNames heads the month grid, Monday first
var WeekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Slot is one schedulable hour as seen by a renderer
type Slot struct {
	Hour          int
	Label         string
	Allocation    *models.Allocation
	DurationLabel string
	Title         string
}

func (s Slot) Filled() bool {
	return s.Allocation != nil
}

type DaySchedule struct {
	Date        time.Time
	DateKey     string
	Weekday     string
	DateLabel   string
	PickerValue string
	IsToday     bool
	Slots       []Slot
}

type WeekColumn struct {
	Date       time.Time
	DateKey    string
	Weekday    string
	DayMonth   string
	IsToday    bool
	IsSelected bool
	Slots      []Slot
}

type WeekSchedule struct {
	Start   time.Time
	Columns []WeekColumn
}

type MonthCell struct {
	Date       time.Time
	DateKey    string
	Day        int
	Count      int
	Dots       int
	IsToday    bool
	IsSelected bool
}

type MonthGrid struct {
	Anchor        time.Time
	Title         string
	WeekdayNames  []string
	LeadingBlanks int
	Cells         []MonthCell
}

type Suggestion struct {
	Activity      models.Activity
	DurationLabel string
	Armed         bool
}

type SuggestionList struct {
	Idle        bool
	Caption     string
	Placeholder string
	Items       []Suggestion
	ArmedID     string
}

// DayView projects the selected date into its 13 night slots.
func (s *Scheduler) DayView() DaySchedule {
	date := s.selectedDate
	return DaySchedule{
		Date:        date,
		DateKey:     utils.FormatDateKey(date),
		Weekday:     utils.FormatWeekdayLong(date),
		DateLabel:   utils.FormatDateWithoutWeekday(date),
		PickerValue: utils.FormatDateKey(date),
		IsToday:     utils.IsToday(date, s.now()),
		Slots:       s.slotsFor(date, true),
	}
}

// WeekView projects the seven days of the anchored week.
func (s *Scheduler) WeekView() WeekSchedule {
	start := utils.StartOfWeek(s.viewAnchor)
	now := s.now()
	week := WeekSchedule{Start: start, Columns: make([]WeekColumn, 0, 7)}
	for offset := 0; offset < 7; offset++ {
		date := utils.AddDays(start, offset)
		week.Columns = append(week.Columns, WeekColumn{
			Date:       date,
			DateKey:    utils.FormatDateKey(date),
			Weekday:    utils.FormatWeekdayShort(date),
			DayMonth:   utils.FormatDayAndMonth(date),
			IsToday:    utils.IsToday(date, now),
			IsSelected: utils.IsSameDay(date, s.selectedDate),
			Slots:      s.slotsFor(date, false),
		})
	}
	return week
}

// MonthView projects every day of the anchored month with its allocation count.
func (s *Scheduler) MonthView() MonthGrid {
	first := utils.StartOfMonth(s.viewAnchor)
	now := s.now()
	days := utils.DaysInMonth(first.Year(), first.Month())

	grid := MonthGrid{
		Anchor:        first,
		Title:         utils.FormatMonthYear(first),
		WeekdayNames:  WeekdayNames,
		LeadingBlanks: (int(first.Weekday()) + 6) % 7,
		Cells:         make([]MonthCell, 0, days),
	}
	for day := 1; day <= days; day++ {
		date := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, first.Location())
		key := utils.FormatDateKey(date)
		count := s.allocations.CountForDate(key)
		grid.Cells = append(grid.Cells, MonthCell{
			Date:       date,
			DateKey:    key,
			Day:        day,
			Count:      count,
			Dots:       min(count, constants.MaxDayDots),
			IsToday:    utils.IsToday(date, now),
			IsSelected: utils.IsSameDay(date, s.selectedDate),
		})
	}
	return grid
}

// Suggestions lists the catalog for the selected day. Until the user picks
// a day the list is idle and carries only placeholder text.
func (s *Scheduler) Suggestions() SuggestionList {
	if !s.hasManualSelection {
		return SuggestionList{
			Idle:        true,
			Caption:     constants.CaptionIdle,
			Placeholder: constants.PlaceholderIdle,
		}
	}

	activities := s.catalog.All()
	list := SuggestionList{
		Caption: fmt.Sprintf(constants.CaptionIdeas, utils.FormatFullDate(s.selectedDate)),
		Items:   make([]Suggestion, 0, len(activities)),
		ArmedID: s.selectedActivityID,
	}
	for _, a := range activities {
		list.Items = append(list.Items, Suggestion{
			Activity:      a,
			DurationLabel: utils.FormatDuration(a.Duration),
			Armed:         a.ID == s.selectedActivityID,
		})
	}
	return list
}

func (s *Scheduler) slotsFor(date time.Time, withDate bool) []Slot {
	allocs := s.allocations.ForDate(utils.FormatDateKey(date))
	hours := utils.NightHours()
	slots := make([]Slot, 0, len(hours))
	for _, hour := range hours {
		label := utils.FormatHour(hour)
		slot := Slot{
			Hour:  hour,
			Label: label,
			Title: fmt.Sprintf(constants.SlotAvailableTitle, label),
		}
		if a, ok := allocs[hour]; ok {
			slot.Allocation = &a
			slot.DurationLabel = utils.FormatDuration(a.Duration)
			if withDate {
				slot.Title = fmt.Sprintf(constants.SlotFilledTitleOnDay, a.Name, label, utils.FormatFullDate(date))
			} else {
				slot.Title = fmt.Sprintf(constants.SlotFilledTitle, a.Name, label)
			}
		}
		slots = append(slots, slot)
	}
	return slots
}
