package scheduler

import (
	"time"

	"github.com/julianstephens/nightslot/internal/allocation"
	"github.com/julianstephens/nightslot/internal/catalog"
	"github.com/julianstephens/nightslot/internal/constants"
	"github.com/julianstephens/nightslot/internal/logger"
	"github.com/julianstephens/nightslot/internal/models"
	"github.com/julianstephens/nightslot/internal/storage"
	"github.com/julianstephens/nightslot/internal/utils"
)

// Saver persists snapshots on behalf of the scheduler
type Saver interface {
	Save(models.Snapshot) storage.SaveResult
}

// Region names a part of the UI that needs re-rendering after an intent
type Region uint8

const (
	RegionAgenda Region = 1 << iota
	RegionSuggestions
	RegionIndicator
	RegionHint

	RegionAll = RegionAgenda | RegionSuggestions | RegionIndicator | RegionHint
)

// Hint is the user-facing status line
type Hint struct {
	Text    string
	IsError bool
}

// Change describes the outcome of an intent
type Change struct {
	Dirty     Region
	Hint      Hint
	Indicator string
}

// Has reports whether region r must be re-rendered
func (c Change) Has(r Region) bool {
	return c.Dirty&r != 0
}

// Scheduler owns the planner state and translates user intents into
// catalog and allocation changes. It is not safe for concurrent use:
// every intent must finish before the next one starts.
type Scheduler struct {
	catalog     *catalog.Catalog
	allocations *allocation.Store
	saver       Saver
	now         func() time.Time

	view               models.View
	selectedDate       time.Time
	viewAnchor         time.Time
	hasManualSelection bool
	selectedActivityID string
	hint               Hint

	lastSave storage.SaveResult
}

type Option func(*Scheduler)

// WithClock overrides the source of "today"
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithSaver attaches a persistence port; saves happen after every
// intent that changes persisted state
func WithSaver(saver Saver) Option {
	return func(s *Scheduler) { s.saver = saver }
}

// WithView sets the initial view; a restored snapshot view overrides it
func WithView(view models.View) Option {
	return func(s *Scheduler) {
		if view.Valid() {
			s.view = view
		}
	}
}

func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Scheduler) { s.catalog = c }
}

func WithAllocations(a *allocation.Store) Option {
	return func(s *Scheduler) { s.allocations = a }
}

func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		now:  time.Now,
		view: models.ViewDay,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.catalog == nil {
		s.catalog = catalog.NewDefault()
	}
	if s.allocations == nil {
		s.allocations = allocation.New()
	}
	s.selectedDate = utils.Normalize(s.now())
	s.viewAnchor = utils.ViewAnchor(s.selectedDate, s.view)
	s.applyDefaultHint()
	return s
}

// Restore applies a decoded snapshot. Absent fields keep their defaults.
func (s *Scheduler) Restore(p models.PartialSnapshot) {
	s.catalog.Restore(p.Activities, p.ActivityIDCounter)
	if p.Allocations != nil {
		s.allocations.Restore(p.Allocations)
	}
	if p.CurrentView != nil && p.CurrentView.Valid() {
		s.view = *p.CurrentView
		s.viewAnchor = utils.ViewAnchor(s.selectedDate, s.view)
	}
}

// Snapshot captures the persisted part of the state
func (s *Scheduler) Snapshot() models.Snapshot {
	return models.Snapshot{
		Allocations:       s.allocations.Snapshot(),
		Activities:        s.catalog.All(),
		CurrentView:       s.view,
		ActivityIDCounter: s.catalog.Counter(),
	}
}

func (s *Scheduler) View() models.View          { return s.view }
func (s *Scheduler) SelectedDate() time.Time    { return s.selectedDate }
func (s *Scheduler) ViewAnchor() time.Time      { return s.viewAnchor }
func (s *Scheduler) SelectedActivityID() string { return s.selectedActivityID }
func (s *Scheduler) Armed() bool                { return s.selectedActivityID != "" }
func (s *Scheduler) Hint() Hint                 { return s.hint }
func (s *Scheduler) Catalog() *catalog.Catalog  { return s.catalog }

// Allocations exposes the allocation store for read access by renderers
func (s *Scheduler) Allocations() *allocation.Store { return s.allocations }

// LastSave reports the result of the most recent persistence attempt
func (s *Scheduler) LastSave() storage.SaveResult { return s.lastSave }

// Today returns the current calendar date
func (s *Scheduler) Today() time.Time {
	return utils.Normalize(s.now())
}

func (s *Scheduler) setHint(text string, isError bool) {
	s.hint = Hint{Text: text, IsError: isError}
}

func (s *Scheduler) clearHint() {
	s.hint = Hint{}
}

// applyDefaultHint fills an empty hint with guidance for the current stage
func (s *Scheduler) applyDefaultHint() {
	if s.hint.Text != "" {
		return
	}
	if s.hasManualSelection {
		s.setHint(constants.HintChooseActivity, false)
	} else {
		s.setHint(constants.HintPickDay, false)
	}
}

func (s *Scheduler) persist() {
	if s.saver == nil {
		return
	}
	s.lastSave = s.saver.Save(s.Snapshot())
	if !s.lastSave.OK() {
		logger.Warn("Failed to save planner state", "error", s.lastSave.Err)
	}
}

// finish completes an intent: default hint, optional save, change report
func (s *Scheduler) finish(prev Hint, dirty Region, persist bool) Change {
	s.applyDefaultHint()
	if persist {
		s.persist()
	}
	if s.hint != prev {
		dirty |= RegionHint
	}
	return Change{
		Dirty:     dirty,
		Hint:      s.hint,
		Indicator: s.Indicator(),
	}
}
