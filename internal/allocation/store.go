package allocation

import (
	"sort"

	"github.com/julianstephens/nightslot/internal/models"
)

// Store is a sparse dateKey -> hour -> allocation mapping.
//
// Invariants:
//   - an hour key exists only while it holds an allocation
//   - a date key exists only while it holds at least one hour
//
// Store does not restrict hours to the night window; that is a
// scheduling policy.
type Store struct {
	dates map[string]map[int]models.Allocation
}

func New() *Store {
	return &Store{dates: make(map[string]map[int]models.Allocation)}
}

// Assign places an activity at dateKey/hour, replacing whatever was there.
func (s *Store) Assign(dateKey string, hour int, activity models.Activity) models.Allocation {
	hours, ok := s.dates[dateKey]
	if !ok {
		hours = make(map[int]models.Allocation)
		s.dates[dateKey] = hours
	}
	alloc := models.NewAllocation(activity)
	hours[hour] = alloc
	return alloc
}

// Remove deletes the allocation at dateKey/hour and reports what was removed.
func (s *Store) Remove(dateKey string, hour int) (models.Allocation, bool) {
	hours, ok := s.dates[dateKey]
	if !ok {
		return models.Allocation{}, false
	}
	alloc, ok := hours[hour]
	if !ok {
		return models.Allocation{}, false
	}
	delete(hours, hour)
	if len(hours) == 0 {
		delete(s.dates, dateKey)
	}
	return alloc, true
}

func (s *Store) Get(dateKey string, hour int) (models.Allocation, bool) {
	alloc, ok := s.dates[dateKey][hour]
	return alloc, ok
}

// ForDate returns a copy of the allocations for a date, never nil.
func (s *Store) ForDate(dateKey string) map[int]models.Allocation {
	out := make(map[int]models.Allocation, len(s.dates[dateKey]))
	for h, a := range s.dates[dateKey] {
		out[h] = a
	}
	return out
}

// CountForDate returns the number of filled hours on a date.
func (s *Store) CountForDate(dateKey string) int {
	return len(s.dates[dateKey])
}

// Dates returns the date keys holding allocations in ascending order.
func (s *Store) Dates() []string {
	keys := make([]string, 0, len(s.dates))
	for k := range s.dates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of date keys.
func (s *Store) Len() int {
	return len(s.dates)
}

// Snapshot returns a deep copy suitable for persistence.
func (s *Store) Snapshot() models.Allocations {
	out := make(models.Allocations, len(s.dates))
	for k := range s.dates {
		out[k] = s.ForDate(k)
	}
	return out
}

// Restore replaces the store contents, dropping empty dates.
func (s *Store) Restore(allocs models.Allocations) {
	s.dates = make(map[string]map[int]models.Allocation, len(allocs))
	for k, hours := range allocs {
		if len(hours) == 0 {
			continue
		}
		inner := make(map[int]models.Allocation, len(hours))
		for h, a := range hours {
			inner[h] = a
		}
		s.dates[k] = inner
	}
}
