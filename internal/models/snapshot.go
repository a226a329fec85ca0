package models

// Allocations maps dateKey (YYYY-MM-DD) -> hour -> allocation
type Allocations map[string]map[int]Allocation

// Snapshot is the persisted planner state
type Snapshot struct {
	Allocations       Allocations `json:"allocations"`
	Activities        []Activity  `json:"activities"`
	CurrentView       View        `json:"currentView"`
	ActivityIDCounter int         `json:"activityIdCounter"`
}

// PartialSnapshot is a decoded snapshot where every field is optional.
// A nil field was absent or failed validation and must not be applied.
type PartialSnapshot struct {
	Allocations       Allocations
	Activities        []Activity
	CurrentView       *View
	ActivityIDCounter *int
}

// Empty reports whether no field survived decoding
func (p PartialSnapshot) Empty() bool {
	return p.Allocations == nil && p.Activities == nil && p.CurrentView == nil && p.ActivityIDCounter == nil
}
