package cli

import (
	"fmt"

	"github.com/julianstephens/nightslot/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	if err := tui.Run(ctx.Scheduler); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
