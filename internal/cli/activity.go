package cli

import (
	"fmt"

	nserrors "github.com/julianstephens/nightslot/internal/errors"
	"github.com/julianstephens/nightslot/internal/utils"
)

type ActivityAddCmd struct {
	Name    string `arg:"" help:"Activity name."`
	Minutes string `arg:"" help:"Duration in minutes."`
}

func (c *ActivityAddCmd) Run(ctx *Context) error {
	if _, err := ctx.Scheduler.SubmitActivity(c.Name, c.Minutes); err != nil {
		if nserrors.IsValidation(err) {
			return fmt.Errorf("activity not added: %w", err)
		}
		return err
	}
	if err := ctx.checkSaved(); err != nil {
		return fmt.Errorf("activity added but not saved: %w", err)
	}

	id := ctx.Scheduler.SelectedActivityID()
	activity, _ := ctx.Scheduler.Catalog().Find(id)
	ctx.printf("✓ Added %s: %s (%s)\n", activity.ID, activity.Name, utils.FormatDuration(activity.Duration))
	return nil
}

type ActivityListCmd struct {
	ShowIDs bool `help:"Show activity IDs." name:"show-ids"`
}

func (c *ActivityListCmd) Run(ctx *Context) error {
	catalog := ctx.Scheduler.Catalog()
	if catalog.Len() == 0 {
		ctx.println("No activities found")
		return nil
	}

	ctx.printf("%d activities (shortest to longest):\n", catalog.Len())
	for _, a := range catalog.All() {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", a.ID)
		}
		ctx.printf("  %s%s - %s\n", a.Name, idStr, utils.FormatDuration(a.Duration))
	}
	return nil
}
