package scheduler

import (
	"time"

	"github.com/julianstephens/nightslot/internal/models"
	"github.com/julianstephens/nightslot/internal/utils"
)

// Direction is a navigation step
type Direction int

const (
	Prev Direction = iota
	Next
	Today
)

// SetView switches the calendar granularity. The selected date is kept.
func (s *Scheduler) SetView(view models.View) Change {
	prev := s.hint
	if !view.Valid() || view == s.view {
		return s.finish(prev, 0, false)
	}
	s.view = view
	s.viewAnchor = utils.ViewAnchor(s.selectedDate, view)
	return s.finish(prev, RegionAgenda|RegionIndicator|RegionSuggestions, true)
}

// Navigate moves the selection by one unit of the current view, or to today.
func (s *Scheduler) Navigate(dir Direction) Change {
	if dir == Today {
		return s.SelectDate(s.now(), false)
	}

	delta := -1
	if dir == Next {
		delta = 1
	}

	var target time.Time
	switch s.view {
	case models.ViewWeek:
		target = utils.AddDays(s.selectedDate, 7*delta)
	case models.ViewMonth:
		target = utils.AddMonths(s.selectedDate, delta)
	default:
		target = utils.AddDays(s.selectedDate, delta)
	}
	return s.SelectDate(target, false)
}

// SelectDate is an explicit user date choice. It marks the selection as
// manual and clears the hint unless preserveHint is set.
func (s *Scheduler) SelectDate(date time.Time, preserveHint bool) Change {
	prev := s.hint
	s.selectedDate = utils.Normalize(date)
	s.viewAnchor = utils.ViewAnchor(s.selectedDate, s.view)
	s.hasManualSelection = true
	if !preserveHint {
		s.clearHint()
	}
	return s.finish(prev, RegionAll, false)
}

// SelectDateKey handles date-picker input. Unparsable input is ignored.
func (s *Scheduler) SelectDateKey(key string) Change {
	date, err := utils.ParseDateKey(key, s.now().Location())
	if err != nil {
		return s.finish(s.hint, 0, false)
	}
	return s.SelectDate(date, false)
}

// Indicator is the heading text for the current view
func (s *Scheduler) Indicator() string {
	switch s.view {
	case models.ViewWeek:
		return utils.FormatWeekRange(utils.StartOfWeek(s.viewAnchor))
	case models.ViewMonth:
		return utils.FormatMonthYear(utils.StartOfMonth(s.viewAnchor))
	default:
		return utils.FormatFullDate(s.selectedDate)
	}
}
