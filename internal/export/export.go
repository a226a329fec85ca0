package export

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/julianstephens/nightslot/internal/constants"
	"github.com/julianstephens/nightslot/internal/models"
	"github.com/julianstephens/nightslot/internal/utils"
)

// uidNamespace scopes event UIDs so re-exports update events in place
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/julianstephens/nightslot"))

// Event is one allocation placed on the calendar
type Event struct {
	UID        string
	Start      time.Time
	End        time.Time
	Summary    string
	ActivityID string
}

// Source is the allocation set being exported
type Source interface {
	Dates() []string
	ForDate(dateKey string) map[int]models.Allocation
}

// EventUID is stable for a date and hour
func EventUID(dateKey string, hour int) string {
	return uuid.NewSHA1(uidNamespace, []byte(dateKey+"/"+strconv.Itoa(hour))).String() + "@" + constants.AppName
}

// Events lists allocations whose date falls within [from, to], in start
// order. Hours 0-7 belong to the date in the key, not the evening before.
func Events(src Source, from, to time.Time, loc *time.Location) []Event {
	if loc == nil {
		loc = time.Local
	}
	from, to = utils.Normalize(from), utils.Normalize(to)

	var events []Event
	for _, dateKey := range src.Dates() {
		day, err := utils.ParseDateKey(dateKey, loc)
		if err != nil || day.Before(from) || day.After(to) {
			continue
		}
		for hour, a := range src.ForDate(dateKey) {
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc)
			events = append(events, Event{
				UID:        EventUID(dateKey, hour),
				Start:      start,
				End:        start.Add(time.Duration(a.Duration) * time.Minute),
				Summary:    a.Name,
				ActivityID: a.ActivityID,
			})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
	return events
}

// Calendar builds an iCalendar document from events. stamp fills DTSTAMP.
func Calendar(events []Event, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetProductId(constants.ExportProductID)
	cal.SetMethod(ical.MethodPublish)

	for _, e := range events {
		ev := cal.AddEvent(e.UID)
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(e.Start)
		ev.SetEndAt(e.End)
		ev.SetSummary(e.Summary)
		ev.SetDescription(fmt.Sprintf("%s (%s)", e.Summary, utils.FormatDuration(int(e.End.Sub(e.Start).Minutes()))))
	}
	return cal
}

// Write serializes allocations in [from, to] as iCalendar and returns the
// number of events written.
func Write(w io.Writer, src Source, from, to, stamp time.Time) (int, error) {
	events := Events(src, from, to, from.Location())
	if _, err := io.WriteString(w, Calendar(events, stamp).Serialize()); err != nil {
		return 0, fmt.Errorf("failed to write calendar: %w", err)
	}
	return len(events), nil
}
