package utils

import (
	"time"

	"github.com/julianstephens/nightslot/internal/constants"
	"github.com/julianstephens/nightslot/internal/models"
)

// Normalize truncates t to midnight of its calendar day in t's location.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days and normalizes the result.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

// AddMonths moves t by n calendar months. The day is clamped to the last
// valid day of the target month, so Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := DaysInMonth(first.Year(), first.Month())
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfWeek returns the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	diff := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		diff = -6
	}
	return AddDays(t, diff)
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// ViewAnchor returns the reference date for a view: the day itself, the
// Monday of its week, or the first of its month.
func ViewAnchor(t time.Time, view models.View) time.Time {
	switch view {
	case models.ViewWeek:
		return StartOfWeek(t)
	case models.ViewMonth:
		return StartOfMonth(t)
	default:
		return Normalize(t)
	}
}

// IsSameDay reports whether a and b fall on the same calendar date.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t falls on the same calendar date as now.
func IsToday(t, now time.Time) bool {
	return IsSameDay(t, now)
}

// ParseDateKey parses a YYYY-MM-DD key as midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(constants.DateFormat, key, loc)
}

// NightHours returns the schedulable hours in display order.
func NightHours() []int {
	hours := make([]int, 0, constants.SlotsPerNight)
	for h := constants.EveningStartHour; h <= constants.EveningEndHour; h++ {
		hours = append(hours, h)
	}
	for h := 0; h <= constants.MorningEndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// InWindow reports whether hour is one of the schedulable night hours.
func InWindow(hour int) bool {
	return (hour >= constants.EveningStartHour && hour <= constants.EveningEndHour) ||
		(hour >= 0 && hour <= constants.MorningEndHour)
}
