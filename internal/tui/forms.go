package tui

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nightslot/internal/utils"
)

// NewActivityForm collects a name and a duration in minutes. Validation
// happens on submit so bad input reaches the planner's error hint.
func NewActivityForm(fm *ActivityFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity name").
				Placeholder("Stargazing").
				Value(&fm.Name),
			huh.NewInput().
				Title("Duration (min)").
				Placeholder("45").
				Value(&fm.Duration),
		),
	).WithShowHelp(true)
}

// NewDateForm asks for a YYYY-MM-DD date
func NewDateForm(fm *DateFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Go to date").
				Description("YYYY-MM-DD").
				Value(&fm.Date).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := utils.ParseDateKey(strings.TrimSpace(s), nil)
					return err
				}),
		),
	).WithShowHelp(true)
}
