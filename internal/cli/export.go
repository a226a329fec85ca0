package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/nightslot/internal/constants"
	"github.com/julianstephens/nightslot/internal/export"
	"github.com/julianstephens/nightslot/internal/utils"
)

type ExportCmd struct {
	From string `help:"First date to export (default today)."`
	To   string `help:"Last date to export (default 31 days after --from)."`
	Out  string `help:"Output file (default stdout)." short:"o"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	today := ctx.Scheduler.Today()
	from, err := parseDate(c.From, today)
	if err != nil {
		return err
	}
	to := utils.AddDays(from, constants.ExportDefaultDays-1)
	if c.To != "" {
		if to, err = parseDate(c.To, today); err != nil {
			return err
		}
	}
	if to.Before(from) {
		return fmt.Errorf("--to (%s) is before --from (%s)", utils.FormatDateKey(to), utils.FormatDateKey(from))
	}

	var w io.Writer = ctx.Out
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", c.Out, err)
		}
		defer f.Close()
		w = f
	}

	n, err := export.Write(w, ctx.Scheduler.Allocations(), from, to, time.Now().UTC())
	if err != nil {
		return err
	}
	if c.Out != "" {
		ctx.printf("✓ Exported %d events (%s to %s) to %s\n", n, utils.FormatDateKey(from), utils.FormatDateKey(to), c.Out)
	}
	return nil
}
