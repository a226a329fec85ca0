package models

// View is the calendar granularity shown to the user
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// Valid reports whether v is one of the known views
func (v View) Valid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth:
		return true
	}
	return false
}

// ParseView converts a string into a View
func ParseView(s string) (View, bool) {
	v := View(s)
	return v, v.Valid()
}
