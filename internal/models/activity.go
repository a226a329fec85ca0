package models

// Activity is a reusable schedulable template
type Activity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"` // minutes
}

// Allocation is an activity placed at a date and hour. It copies the
// activity fields at assignment time.
type Allocation struct {
	ActivityID string `json:"activityId"`
	Name       string `json:"name"`
	Duration   int    `json:"duration"` // minutes
}

// NewAllocation snapshots an activity into an allocation
func NewAllocation(a Activity) Allocation {
	return Allocation{
		ActivityID: a.ID,
		Name:       a.Name,
		Duration:   a.Duration,
	}
}
