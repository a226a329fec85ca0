package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/nightslot/internal/utils"
)

type AssignCmd struct {
	Date       string `arg:"" help:"Date (YYYY-MM-DD, today, tomorrow, yesterday)."`
	Hour       int    `arg:"" help:"Hour of the slot (19-23 or 0-7)."`
	ActivityID string `arg:"" help:"Activity to schedule (see 'activity list --show-ids')."`
}

func (c *AssignCmd) Run(ctx *Context) error {
	date, err := parseDate(c.Date, ctx.Scheduler.Today())
	if err != nil {
		return err
	}
	if !utils.InWindow(c.Hour) {
		return fmt.Errorf("hour %d is outside the night window (19-23, 0-7)", c.Hour)
	}
	if _, ok := ctx.Scheduler.Catalog().Find(c.ActivityID); !ok {
		return fmt.Errorf("activity not found: %s", c.ActivityID)
	}

	if ctx.Scheduler.SelectedActivityID() != c.ActivityID {
		ctx.Scheduler.ToggleActivity(c.ActivityID)
	}
	change := ctx.Scheduler.ClickSlot(date, c.Hour)
	if change.Hint.IsError {
		return errors.New(change.Hint.Text)
	}
	if err := ctx.checkSaved(); err != nil {
		return fmt.Errorf("scheduled but not saved: %w", err)
	}
	ctx.printf("✓ %s\n", change.Hint.Text)
	return nil
}

type RemoveCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD, today, tomorrow, yesterday)."`
	Hour int    `arg:"" help:"Hour of the slot (19-23 or 0-7)."`
}

func (c *RemoveCmd) Run(ctx *Context) error {
	date, err := parseDate(c.Date, ctx.Scheduler.Today())
	if err != nil {
		return err
	}
	if !utils.InWindow(c.Hour) {
		return fmt.Errorf("hour %d is outside the night window (19-23, 0-7)", c.Hour)
	}
	dateKey := utils.FormatDateKey(date)
	if _, ok := ctx.Scheduler.Allocations().Get(dateKey, c.Hour); !ok {
		return fmt.Errorf("nothing scheduled on %s at %s", dateKey, utils.FormatHour(c.Hour))
	}

	// an armed selection would overwrite instead of remove
	ctx.Scheduler.Cancel()
	change := ctx.Scheduler.ClickSlot(date, c.Hour)
	if err := ctx.checkSaved(); err != nil {
		return fmt.Errorf("removed but not saved: %w", err)
	}
	ctx.printf("✓ %s\n", change.Hint.Text)
	return nil
}
