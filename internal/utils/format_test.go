package utils

import (
	"testing"
	"time"
)

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "00:00"},
		{7, "07:00"},
		{19, "19:00"},
		{23, "23:00"},
		{24, "00:00"},
		{25, "01:00"},
		{-1, "23:00"},
		{-24, "00:00"},
		{-25, "23:00"},
	}
	for _, tt := range tests {
		if got := FormatHour(tt.hour); got != tt.want {
			t.Errorf("FormatHour(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{2, "2 min"},
		{45, "45 min"},
		{59, "59 min"},
		{60, "1 hr"},
		{80, "1 hr 20 min"},
		{120, "2 hrs"},
		{135, "2 hr 15 min"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatDateKey(t *testing.T) {
	got := FormatDateKey(time.Date(987, time.January, 5, 22, 0, 0, 0, time.Local))
	if got != "0987-01-05" {
		t.Errorf("FormatDateKey = %q, want zero padded key", got)
	}
}

func TestDisplayFormats(t *testing.T) {
	d := date(2024, time.March, 15)
	if got := FormatFullDate(d); got != "Friday, March 15, 2024" {
		t.Errorf("FormatFullDate = %q", got)
	}
	if got := FormatDateWithoutWeekday(d); got != "March 15, 2024" {
		t.Errorf("FormatDateWithoutWeekday = %q", got)
	}
	if got := FormatDayAndMonth(d); got != "Mar 15" {
		t.Errorf("FormatDayAndMonth = %q", got)
	}
	if got := FormatWeekdayShort(d); got != "Fri" {
		t.Errorf("FormatWeekdayShort = %q", got)
	}
	if got := FormatWeekdayLong(d); got != "Friday" {
		t.Errorf("FormatWeekdayLong = %q", got)
	}
	if got := FormatMonthYear(d); got != "March 2024" {
		t.Errorf("FormatMonthYear = %q", got)
	}
}

func TestFormatWeekRange(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  string
	}{
		{"same month", date(2024, time.March, 11), "Mar 11 – 17, 2024"},
		{"crosses month", date(2024, time.April, 29), "Apr 29 – May 5, 2024"},
		{"crosses year", date(2024, time.December, 30), "Dec 30, 2024 – Jan 5, 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWeekRange(tt.start); got != tt.want {
				t.Errorf("FormatWeekRange(%v) = %q, want %q", tt.start, got, tt.want)
			}
		})
	}
}
