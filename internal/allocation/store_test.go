package allocation

import (
	"testing"

	"github.com/julianstephens/nightslot/internal/models"
)

var (
	workout  = models.Activity{ID: "activity-9", Name: "Workout session", Duration: 45}
	mealPrep = models.Activity{ID: "activity-12", Name: "Meal prep for the week", Duration: 80}
)

func TestAssignAndGet(t *testing.T) {
	s := New()
	s.Assign("2024-03-15", 21, workout)

	got, ok := s.Get("2024-03-15", 21)
	if !ok {
		t.Fatal("Get after Assign returned nothing")
	}
	want := models.Allocation{ActivityID: "activity-9", Name: "Workout session", Duration: 45}
	if got != want {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
	if _, ok := s.Get("2024-03-15", 22); ok {
		t.Error("Get of empty hour returned an allocation")
	}
	if _, ok := s.Get("2024-03-16", 21); ok {
		t.Error("Get of empty date returned an allocation")
	}
}

func TestAssign_Overwrites(t *testing.T) {
	s := New()
	s.Assign("2024-03-15", 21, workout)
	s.Assign("2024-03-15", 21, mealPrep)

	got, _ := s.Get("2024-03-15", 21)
	if got.ActivityID != mealPrep.ID {
		t.Errorf("Get = %+v, want the last assignment", got)
	}
	if s.CountForDate("2024-03-15") != 1 {
		t.Errorf("CountForDate = %d, want 1", s.CountForDate("2024-03-15"))
	}
}

func TestAssign_CopiesActivity(t *testing.T) {
	s := New()
	activity := workout
	s.Assign("2024-03-15", 21, activity)
	activity.Name = "Renamed"

	got, _ := s.Get("2024-03-15", 21)
	if got.Name != "Workout session" {
		t.Errorf("allocation followed template edit: %q", got.Name)
	}
}

func TestRemove_PrunesDate(t *testing.T) {
	s := New()
	before := s.CountForDate("2024-03-15")

	s.Assign("2024-03-15", 21, workout)
	removed, ok := s.Remove("2024-03-15", 21)
	if !ok || removed.ActivityID != workout.ID {
		t.Fatalf("Remove = %+v, %v", removed, ok)
	}
	if s.CountForDate("2024-03-15") != before {
		t.Errorf("CountForDate = %d, want %d", s.CountForDate("2024-03-15"), before)
	}
	if s.Len() != 0 {
		t.Errorf("date key not pruned, Len() = %d", s.Len())
	}
	if _, present := s.Snapshot()["2024-03-15"]; present {
		t.Error("snapshot still contains pruned date")
	}
}

func TestRemove_KeepsOtherHours(t *testing.T) {
	s := New()
	s.Assign("2024-03-15", 21, workout)
	s.Assign("2024-03-15", 2, mealPrep)

	s.Remove("2024-03-15", 21)
	if s.CountForDate("2024-03-15") != 1 {
		t.Errorf("CountForDate = %d, want 1", s.CountForDate("2024-03-15"))
	}
	if _, ok := s.Get("2024-03-15", 2); !ok {
		t.Error("unrelated hour removed")
	}
}

func TestRemove_Empty(t *testing.T) {
	s := New()
	if _, ok := s.Remove("2024-03-15", 21); ok {
		t.Error("Remove of empty date reported a removal")
	}
	s.Assign("2024-03-15", 20, workout)
	if _, ok := s.Remove("2024-03-15", 21); ok {
		t.Error("Remove of empty hour reported a removal")
	}
	if s.CountForDate("2024-03-15") != 1 {
		t.Error("Remove of empty hour changed the date")
	}
}

func TestForDate(t *testing.T) {
	s := New()
	if got := s.ForDate("2024-03-15"); got == nil || len(got) != 0 {
		t.Errorf("ForDate of empty date = %v, want empty map", got)
	}

	s.Assign("2024-03-15", 21, workout)
	got := s.ForDate("2024-03-15")
	delete(got, 21)
	if s.CountForDate("2024-03-15") != 1 {
		t.Error("ForDate exposed internal map")
	}
}

func TestHourAgnostic(t *testing.T) {
	s := New()
	s.Assign("2024-03-15", 12, workout)
	if _, ok := s.Get("2024-03-15", 12); !ok {
		t.Error("store rejected a daytime hour")
	}
}

func TestDatesSorted(t *testing.T) {
	s := New()
	s.Assign("2024-03-20", 21, workout)
	s.Assign("2023-12-31", 21, workout)
	s.Assign("2024-03-01", 21, workout)

	got := s.Dates()
	want := []string{"2023-12-31", "2024-03-01", "2024-03-20"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Dates() = %v, want %v", got, want)
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := New()
	s.Assign("2024-03-15", 21, workout)
	s.Assign("2024-03-16", 1, mealPrep)

	snap := s.Snapshot()
	snap["2024-03-17"] = map[int]models.Allocation{}

	restored := New()
	restored.Restore(snap)
	if restored.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (empty date dropped)", restored.Len())
	}
	if got, _ := restored.Get("2024-03-16", 1); got.ActivityID != mealPrep.ID {
		t.Errorf("restored allocation = %+v", got)
	}

	snap["2024-03-15"][22] = models.NewAllocation(workout)
	if restored.CountForDate("2024-03-15") != 1 {
		t.Error("Restore kept a reference to the input map")
	}
}
