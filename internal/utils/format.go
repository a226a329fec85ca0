package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/julianstephens/nightslot/internal/constants"
)

// FormatDateKey renders t as a zero-padded YYYY-MM-DD key.
func FormatDateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// FormatHour renders an hour as HH:00. Values outside 0-23 wrap around.
func FormatHour(hour int) string {
	h := hour % 24
	if h < 0 {
		h += 24
	}
	return fmt.Sprintf(constants.HourFormat, h)
}

// FormatDuration renders minutes as "N min", "H hr", "H hrs" or "H hr M min".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return strconv.Itoa(minutes) + " min"
	}
	hours := minutes / 60
	remaining := minutes % 60
	if remaining == 0 {
		if hours > 1 {
			return fmt.Sprintf("%d hrs", hours)
		}
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, remaining)
}

func FormatFullDate(t time.Time) string {
	return t.Format(constants.FullDateLayout)
}

func FormatDateWithoutWeekday(t time.Time) string {
	return t.Format(constants.DateNoWeekdayLayout)
}

func FormatDayAndMonth(t time.Time) string {
	return t.Format(constants.DayMonthLayout)
}

func FormatWeekdayLong(t time.Time) string {
	return t.Weekday().String()
}

func FormatWeekdayShort(t time.Time) string {
	return t.Weekday().String()[:3]
}

func FormatMonthYear(t time.Time) string {
	return t.Format(constants.MonthYearLayout)
}

// FormatWeekRange renders the span of a week starting at start, e.g.
// "Mar 11 – 17, 2024", "Apr 29 – May 5, 2024" or "Dec 30, 2024 – Jan 5, 2025".
func FormatWeekRange(start time.Time) string {
	end := AddDays(start, 6)
	if start.Year() != end.Year() {
		return fmt.Sprintf("%s, %d – %s, %d", FormatDayAndMonth(start), start.Year(), FormatDayAndMonth(end), end.Year())
	}
	if start.Month() != end.Month() {
		return fmt.Sprintf("%s – %s, %d", FormatDayAndMonth(start), FormatDayAndMonth(end), start.Year())
	}
	return fmt.Sprintf("%s – %d, %d", FormatDayAndMonth(start), end.Day(), start.Year())
}
