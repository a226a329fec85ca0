package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/julianstephens/nightslot/internal/allocation"
	"github.com/julianstephens/nightslot/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func store(allocs models.Allocations) *allocation.Store {
	s := allocation.New()
	s.Restore(allocs)
	return s
}

var sample = store(models.Allocations{
	"2024-03-14": {
		19: {ActivityID: "activity-9", Name: "Workout session", Duration: 45},
		1:  {ActivityID: "activity-1", Name: "Drink a glass of water", Duration: 2},
	},
	"2024-03-20": {
		23: {ActivityID: "activity-12", Name: "Meal prep for the week", Duration: 80},
	},
	"2024-04-02": {
		20: {ActivityID: "activity-3", Name: "Plan your top priorities", Duration: 6},
	},
})

func TestEventUIDStable(t *testing.T) {
	a := EventUID("2024-03-14", 19)
	if a != EventUID("2024-03-14", 19) {
		t.Error("UID must be deterministic")
	}
	if a == EventUID("2024-03-14", 20) || a == EventUID("2024-03-15", 19) {
		t.Error("UIDs must differ per slot")
	}
	if !strings.HasSuffix(a, "@nightslot") {
		t.Errorf("uid = %q", a)
	}
}

func TestEventsRangeAndOrder(t *testing.T) {
	events := Events(sample, day(2024, time.March, 14), day(2024, time.March, 31), time.Local)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	// 01:00 belongs to March 14 itself and sorts before 19:00
	first := events[0]
	if !first.Start.Equal(time.Date(2024, time.March, 14, 1, 0, 0, 0, time.Local)) {
		t.Errorf("first start = %v", first.Start)
	}
	if events[1].Summary != "Workout session" {
		t.Errorf("second = %+v", events[1])
	}

	last := events[2]
	wantEnd := time.Date(2024, time.March, 21, 0, 20, 0, 0, time.Local)
	if !last.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", last.End, wantEnd)
	}
}

func TestEventsSkipsInvalidKeys(t *testing.T) {
	allocs := store(models.Allocations{
		"not-a-date": {19: {ActivityID: "activity-1", Name: "Water", Duration: 2}},
	})
	if events := Events(allocs, day(2000, time.January, 1), day(2100, time.January, 1), nil); len(events) != 0 {
		t.Errorf("expected no events, got %v", events)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	stamp := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	n, err := Write(&buf, sample, day(2024, time.March, 1), day(2024, time.March, 31), stamp)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != 3 {
		t.Errorf("wrote %d events, want 3", n)
	}

	cal, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	events := cal.Events()
	if len(events) != 3 {
		t.Fatalf("parsed %d events", len(events))
	}

	uids := map[string]bool{}
	for _, ev := range events {
		uids[ev.Id()] = true
	}
	if !uids[EventUID("2024-03-20", 23)] {
		t.Errorf("missing expected UID, got %v", uids)
	}

	for _, ev := range events {
		if ev.Id() != EventUID("2024-03-14", 19) {
			continue
		}
		start, err := ev.GetStartAt()
		if err != nil {
			t.Fatal(err)
		}
		if !start.Equal(time.Date(2024, time.March, 14, 19, 0, 0, 0, time.Local)) {
			t.Errorf("start = %v", start)
		}
		if p := ev.GetProperty(ical.ComponentPropertySummary); p == nil || p.Value != "Workout session" {
			t.Errorf("summary = %v", p)
		}
	}
}
