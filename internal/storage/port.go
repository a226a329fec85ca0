package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/nightslot/internal/constants"
	nserrors "github.com/julianstephens/nightslot/internal/errors"
	"github.com/julianstephens/nightslot/internal/logger"
	"github.com/julianstephens/nightslot/internal/models"
	"github.com/julianstephens/nightslot/internal/utils"
)

// LoadResult is the outcome of reading the persisted snapshot. Loading
// never fails outward: Err is informational and Snapshot holds whatever
// fields survived validation.
type LoadResult struct {
	Snapshot models.PartialSnapshot
	Found    bool
	Dropped  []string
	Err      error
}

// SaveResult is the outcome of writing a snapshot
type SaveResult struct {
	Err error
}

func (r SaveResult) OK() bool {
	return r.Err == nil
}

// Port serializes planner snapshots into a Provider under a single key.
type Port struct {
	provider Provider
	key      string
}

func NewPort(provider Provider) *Port {
	return &Port{
		provider: provider,
		key:      constants.SnapshotKey,
	}
}

func (p *Port) Provider() Provider {
	return p.provider
}

func (p *Port) Load() LoadResult {
	data, err := p.provider.Get(p.key)
	if errors.Is(err, ErrNotFound) {
		return LoadResult{}
	}
	if err != nil {
		res := LoadResult{Err: &nserrors.LoadError{Err: err}}
		logger.Debug("Snapshot read failed, using defaults", "error", err)
		return res
	}

	res := DecodeSnapshot(data)
	res.Found = true
	if res.Err != nil {
		logger.Debug("Snapshot is malformed, using defaults", "error", res.Err)
	} else if len(res.Dropped) > 0 {
		logger.Debug("Discarded invalid snapshot fields", "fields", res.Dropped)
	}
	return res
}

func (p *Port) Save(snapshot models.Snapshot) SaveResult {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return SaveResult{Err: &nserrors.SaveError{Err: err}}
	}
	if err := p.provider.Put(p.key, data); err != nil {
		return SaveResult{Err: &nserrors.SaveError{Err: err}}
	}
	return SaveResult{}
}

// DecodeSnapshot validates each top-level field on its own. A field that
// fails its shape check is left nil and named in Dropped, so a partial
// load never overrides defaults with garbage.
func DecodeSnapshot(data []byte) LoadResult {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		if err == nil {
			err = fmt.Errorf("snapshot is not an object")
		}
		return LoadResult{Err: &nserrors.LoadError{Err: err}}
	}

	var res LoadResult
	drop := func(path string) { res.Dropped = append(res.Dropped, path) }

	if raw, ok := fields["activities"]; ok {
		if activities, ok := decodeActivities(raw); ok {
			res.Snapshot.Activities = activities
		} else {
			drop("activities")
		}
	}

	if raw, ok := fields["allocations"]; ok {
		allocs, dropped, ok := decodeAllocations(raw)
		if ok {
			res.Snapshot.Allocations = allocs
		} else {
			drop("allocations")
		}
		res.Dropped = append(res.Dropped, dropped...)
	}

	if raw, ok := fields["currentView"]; ok {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			if v, ok := models.ParseView(s); ok {
				res.Snapshot.CurrentView = &v
			}
		}
		if res.Snapshot.CurrentView == nil {
			drop("currentView")
		}
	}

	if raw, ok := fields["activityIdCounter"]; ok {
		if n, ok := decodeWhole(raw); ok && n >= 0 {
			counter := n
			res.Snapshot.ActivityIDCounter = &counter
		} else {
			drop("activityIdCounter")
		}
	}

	return res
}

// decodeActivities accepts the list only when every entry is valid and
// the list is non-empty
func decodeActivities(raw json.RawMessage) ([]models.Activity, bool) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil || len(entries) == 0 {
		return nil, false
	}

	activities := make([]models.Activity, 0, len(entries))
	for _, entry := range entries {
		var a struct {
			ID       *string         `json:"id"`
			Name     *string         `json:"name"`
			Duration json.RawMessage `json:"duration"`
		}
		if err := json.Unmarshal(entry, &a); err != nil || a.ID == nil || a.Name == nil {
			return nil, false
		}
		id := strings.TrimSpace(*a.ID)
		name := strings.TrimSpace(*a.Name)
		duration, ok := decodeDuration(a.Duration)
		if id == "" || name == "" || !ok {
			return nil, false
		}
		activities = append(activities, models.Activity{ID: id, Name: name, Duration: duration})
	}
	return activities, true
}

// decodeAllocations drops bad entries one by one. The whole field is
// rejected only when it is not an object.
func decodeAllocations(raw json.RawMessage) (models.Allocations, []string, bool) {
	var dates map[string]json.RawMessage
	if err := json.Unmarshal(raw, &dates); err != nil || dates == nil {
		return nil, nil, false
	}

	keys := make([]string, 0, len(dates))
	for k := range dates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var dropped []string
	allocs := make(models.Allocations, len(dates))
	for _, dateKey := range keys {
		if _, err := utils.ParseDateKey(dateKey, time.Local); err != nil {
			dropped = append(dropped, "allocations."+dateKey)
			continue
		}
		var hours map[string]json.RawMessage
		if err := json.Unmarshal(dates[dateKey], &hours); err != nil {
			dropped = append(dropped, "allocations."+dateKey)
			continue
		}
		hourKeys := make([]string, 0, len(hours))
		for k := range hours {
			hourKeys = append(hourKeys, k)
		}
		sort.Strings(hourKeys)

		for _, hourKey := range hourKeys {
			path := "allocations." + dateKey + "." + hourKey
			// only the canonical form, so "019" and "+19" cannot shadow "19"
			hour, err := strconv.Atoi(hourKey)
			if err != nil || hour < 0 || hour > 23 || strconv.Itoa(hour) != hourKey {
				dropped = append(dropped, path)
				continue
			}
			alloc, ok := decodeAllocation(hours[hourKey])
			if !ok {
				dropped = append(dropped, path)
				continue
			}
			if allocs[dateKey] == nil {
				allocs[dateKey] = make(map[int]models.Allocation)
			}
			allocs[dateKey][hour] = alloc
		}
	}
	return allocs, dropped, true
}

func decodeAllocation(raw json.RawMessage) (models.Allocation, bool) {
	var a struct {
		ActivityID *string         `json:"activityId"`
		Name       *string         `json:"name"`
		Duration   json.RawMessage `json:"duration"`
	}
	if err := json.Unmarshal(raw, &a); err != nil || a.ActivityID == nil || a.Name == nil {
		return models.Allocation{}, false
	}
	duration, ok := decodeDuration(a.Duration)
	if *a.ActivityID == "" || strings.TrimSpace(*a.Name) == "" || !ok {
		return models.Allocation{}, false
	}
	return models.Allocation{ActivityID: *a.ActivityID, Name: *a.Name, Duration: duration}, true
}

// decodeDuration accepts a positive finite number of minutes, rounded
func decodeDuration(raw json.RawMessage) (int, bool) {
	var f float64
	if len(raw) == 0 || json.Unmarshal(raw, &f) != nil || string(raw) == "null" {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	minutes := math.Round(f)
	if minutes < 1 || minutes > math.MaxInt32 {
		return 0, false
	}
	return int(minutes), true
}

func decodeWhole(raw json.RawMessage) (int, bool) {
	var f float64
	if json.Unmarshal(raw, &f) != nil || string(raw) == "null" {
		return 0, false
	}
	if f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
