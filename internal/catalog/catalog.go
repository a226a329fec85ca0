package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/julianstephens/nightslot/internal/constants"
	nserrors "github.com/julianstephens/nightslot/internal/errors"
	"github.com/julianstephens/nightslot/internal/models"
)

// DefaultActivities returns the seed catalog in canonical order
func DefaultActivities() []models.Activity {
	return []models.Activity{
		{ID: "activity-1", Name: "Drink a glass of water", Duration: 2},
		{ID: "activity-2", Name: "Brush your teeth", Duration: 3},
		{ID: "activity-3", Name: "Plan your top priorities", Duration: 6},
		{ID: "activity-4", Name: "Stretch or mobility routine", Duration: 10},
		{ID: "activity-5", Name: "Tidy up your workspace", Duration: 12},
		{ID: "activity-6", Name: "Cook a light meal", Duration: 20},
		{ID: "activity-7", Name: "Wash your car", Duration: 30},
		{ID: "activity-8", Name: "Grocery run", Duration: 35},
		{ID: "activity-9", Name: "Workout session", Duration: 45},
		{ID: "activity-10", Name: "Deep clean a room", Duration: 50},
		{ID: "activity-11", Name: "Do homework or focused study", Duration: 60},
		{ID: "activity-12", Name: "Meal prep for the week", Duration: 80},
	}
}

// Catalog is the ordered, append-only set of activity templates.
// Order is always ascending duration, then collated name.
type Catalog struct {
	activities []models.Activity
	counter    int
	collator   *collate.Collator
}

// New creates a catalog from seed activities. The id counter starts at
// the given value or the highest numeric id suffix, whichever is larger.
func New(seed []models.Activity, counter int) *Catalog {
	c := &Catalog{
		collator: collate.New(language.English),
	}
	c.activities = append([]models.Activity(nil), seed...)
	c.counter = max(counter, highestSuffix(seed))
	c.sort()
	return c
}

// NewDefault creates a catalog holding the seed activities
func NewDefault() *Catalog {
	seed := DefaultActivities()
	return New(seed, len(seed))
}

// ParseDuration parses user supplied duration text in minutes
func ParseDuration(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &nserrors.ValidationError{Field: "duration", Reason: "must be a number of minutes"}
	}
	return v, nil
}

// Add validates and inserts a new activity, returning it with its new id.
// The catalog is unchanged when validation fails.
func (c *Catalog) Add(name string, duration float64) (models.Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Activity{}, &nserrors.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return models.Activity{}, &nserrors.ValidationError{Field: "duration", Reason: "must be greater than zero"}
	}
	minutes := int(math.Round(duration))
	if minutes < 1 {
		return models.Activity{}, &nserrors.ValidationError{Field: "duration", Reason: "must be at least one minute"}
	}

	c.counter++
	activity := models.Activity{
		ID:       constants.ActivityIDPrefix + strconv.Itoa(c.counter),
		Name:     name,
		Duration: minutes,
	}
	c.activities = append(c.activities, activity)
	c.sort()
	return activity, nil
}

// Find looks up an activity by id
func (c *Catalog) Find(id string) (models.Activity, bool) {
	for _, a := range c.activities {
		if a.ID == id {
			return a, true
		}
	}
	return models.Activity{}, false
}

// All returns a copy of the activities in canonical order
func (c *Catalog) All() []models.Activity {
	return append([]models.Activity(nil), c.activities...)
}

func (c *Catalog) Len() int {
	return len(c.activities)
}

// Counter returns the last id suffix handed out
func (c *Catalog) Counter() int {
	return c.counter
}

// Restore merges persisted state. A nil activities slice keeps the current
// contents. The counter never decreases.
func (c *Catalog) Restore(activities []models.Activity, counter *int) {
	if activities != nil {
		c.activities = dedupe(activities)
		c.sort()
	}
	if counter != nil {
		c.counter = max(c.counter, *counter)
	}
	c.counter = max(c.counter, highestSuffix(c.activities))
}

func (c *Catalog) sort() {
	sort.SliceStable(c.activities, func(i, j int) bool {
		a, b := c.activities[i], c.activities[j]
		if a.Duration != b.Duration {
			return a.Duration < b.Duration
		}
		return c.collator.CompareString(a.Name, b.Name) < 0
	})
}

// dedupe keeps the first activity for each id
func dedupe(activities []models.Activity) []models.Activity {
	seen := make(map[string]bool, len(activities))
	out := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out
}

func highestSuffix(activities []models.Activity) int {
	highest := 0
	for _, a := range activities {
		if !strings.HasPrefix(a.ID, constants.ActivityIDPrefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(a.ID, constants.ActivityIDPrefix))
		if err == nil && n > highest {
			highest = n
		}
	}
	return highest
}
