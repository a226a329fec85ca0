package scheduler

import (
	"fmt"
	"time"

	"github.com/julianstephens/nightslot/internal/catalog"
	"github.com/julianstephens/nightslot/internal/constants"
	nserrors "github.com/julianstephens/nightslot/internal/errors"
	"github.com/julianstephens/nightslot/internal/logger"
	"github.com/julianstephens/nightslot/internal/models"
	"github.com/julianstephens/nightslot/internal/utils"
)

// ToggleActivity arms an activity for placement, or disarms it when it is
// already armed.
func (s *Scheduler) ToggleActivity(id string) Change {
	prev := s.hint
	if s.selectedActivityID == id {
		s.selectedActivityID = ""
		s.setHint(constants.HintToggleCleared, false)
		return s.finish(prev, RegionSuggestions, false)
	}

	s.selectedActivityID = id
	if activity, ok := s.catalog.Find(id); ok {
		s.setHint(fmt.Sprintf(constants.HintArmed, activity.Name), false)
	}
	return s.finish(prev, RegionSuggestions, false)
}

// Cancel disarms the current selection (Escape). It does nothing when idle.
func (s *Scheduler) Cancel() Change {
	prev := s.hint
	if s.selectedActivityID == "" {
		return s.finish(prev, 0, false)
	}
	s.selectedActivityID = ""
	s.setHint(constants.HintEscapeCleared, false)
	return s.finish(prev, RegionSuggestions, false)
}

// ClickSlot is a click on the slot at date/hour. When an activity is armed
// it is placed there (replacing any existing allocation); otherwise a
// filled slot is cleared.
func (s *Scheduler) ClickSlot(date time.Time, hour int) Change {
	prev := s.hint
	if !utils.InWindow(hour) {
		s.setHint(constants.HintOutsideWindow, true)
		return s.finish(prev, 0, false)
	}

	dateKey := utils.FormatDateKey(date)
	label := utils.FormatHour(hour)

	if s.selectedActivityID != "" {
		activity, ok := s.catalog.Find(s.selectedActivityID)
		if !ok {
			logger.Warn("Armed activity not found", "id", s.selectedActivityID, "error", nserrors.ErrStaleSelection)
			s.selectedActivityID = ""
			s.setHint(constants.HintStaleActivity, true)
			return s.finish(prev, RegionSuggestions, false)
		}
		s.allocations.Assign(dateKey, hour, activity)
		s.selectedActivityID = ""
		s.setHint(fmt.Sprintf(constants.HintScheduled, activity.Name, label), false)
		logger.Debug("Scheduled activity", "date", dateKey, "hour", hour, "activity", activity.ID)
		return s.finish(prev, RegionAll, true)
	}

	if removed, ok := s.allocations.Remove(dateKey, hour); ok {
		s.setHint(fmt.Sprintf(constants.HintRemoved, removed.Name, label), false)
		logger.Debug("Removed allocation", "date", dateKey, "hour", hour, "activity", removed.ActivityID)
		return s.finish(prev, RegionAll, true)
	}

	s.setHint(constants.HintSelectFirst, false)
	return s.finish(prev, 0, false)
}

// ClickWeekSlot selects the slot's day and clicks the slot in one step,
// keeping the slot click's hint.
func (s *Scheduler) ClickWeekSlot(date time.Time, hour int) Change {
	selected := s.SelectDate(date, true)
	clicked := s.ClickSlot(date, hour)
	clicked.Dirty |= selected.Dirty
	return clicked
}

// SubmitActivity validates form input, adds the activity to the catalog
// and arms it for placement. A ValidationError leaves the catalog unchanged
// and is reported through an error hint as well as the returned error.
func (s *Scheduler) SubmitActivity(name, durationText string) (Change, error) {
	prev := s.hint

	created, err := s.addActivity(name, durationText)
	if err != nil {
		s.setHint(constants.HintInvalidActivity, true)
		return s.finish(prev, 0, false), err
	}

	s.selectedActivityID = created.ID
	s.setHint(fmt.Sprintf(constants.HintActivityReady, created.Name), false)
	logger.Info("Added activity", "id", created.ID, "name", created.Name, "duration", created.Duration)
	return s.finish(prev, RegionSuggestions, true), nil
}

func (s *Scheduler) addActivity(name, durationText string) (models.Activity, error) {
	duration, err := catalog.ParseDuration(durationText)
	if err != nil {
		return models.Activity{}, err
	}
	return s.catalog.Add(name, duration)
}
