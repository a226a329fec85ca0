package constants

// Hint texts shown in the allocation status line.
const (
	HintPickDay          = "Pick any day to explore evening activities."
	HintChooseActivity   = "Select an activity, then click a time slot between 19:00 and 07:00 to schedule it."
	HintSelectFirst      = "Select an activity first, then choose a time slot between 19:00 and 07:00."
	HintArmed            = "Click a time slot between 19:00 and 07:00 to schedule %q."
	HintScheduled        = "%q scheduled at %s."
	HintRemoved          = "Removed %q from %s."
	HintToggleCleared    = "Selection cleared. Choose another activity or click a scheduled slot to remove it."
	HintEscapeCleared    = "Selection cleared. Choose an activity to schedule or click a slot to remove an entry."
	HintActivityReady    = "%q ready. Click a time slot between 19:00 and 07:00 to schedule it."
	HintInvalidActivity  = "Enter a name and a duration greater than zero minutes."
	HintStaleActivity    = "Activity unavailable. Please choose another option."
	HintOutsideWindow    = "Only time slots between 19:00 and 07:00 can be scheduled."
	CaptionIdle          = "Select a day to see ideas sorted from quickest to longest."
	CaptionIdeas         = "Ideas for %s (shortest to longest)."
	PlaceholderIdle      = "Choose a day in the agenda to get started."
	SlotAvailable        = "Available"
	SlotAvailableTitle   = "Available slot at %s"
	SlotFilledTitle      = "%s at %s"
	SlotFilledTitleOnDay = "%s at %s on %s"
)
