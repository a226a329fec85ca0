package cli

import (
	"strings"

	"github.com/julianstephens/nightslot/internal/constants"
	"github.com/julianstephens/nightslot/internal/scheduler"
	"github.com/julianstephens/nightslot/internal/utils"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD, today, tomorrow, yesterday)."`
	All  bool   `help:"Show available slots too."`
}

func (c *DayCmd) Run(ctx *Context) error {
	date, err := parseDate(c.Date, ctx.Scheduler.Today())
	if err != nil {
		return err
	}
	ctx.Scheduler.SelectDate(date, false)
	day := ctx.Scheduler.DayView()

	ctx.println(ctx.Scheduler.Indicator())
	ctx.println()
	printed := printSlots(ctx, day.Slots, c.All)
	if printed == 0 {
		ctx.println("  Nothing scheduled.")
	}
	return nil
}

type WeekCmd struct {
	Date string `arg:"" optional:"" help:"Any date in the week to show."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	date, err := parseDate(c.Date, ctx.Scheduler.Today())
	if err != nil {
		return err
	}
	ctx.Scheduler.SelectDate(date, false)
	week := ctx.Scheduler.WeekView()

	ctx.println(utils.FormatWeekRange(week.Start))
	for _, col := range week.Columns {
		ctx.println()
		marker := ""
		if col.IsToday {
			marker = " (today)"
		}
		ctx.printf("%s %s%s\n", col.Weekday, col.DayMonth, marker)
		if printSlots(ctx, col.Slots, false) == 0 {
			ctx.println("  Nothing scheduled.")
		}
	}
	return nil
}

type MonthCmd struct {
	Date string `arg:"" optional:"" help:"Any date in the month to show."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	date, err := parseDate(c.Date, ctx.Scheduler.Today())
	if err != nil {
		return err
	}
	ctx.Scheduler.SelectDate(date, false)
	grid := ctx.Scheduler.MonthView()

	ctx.println(grid.Title)
	ctx.println()
	for _, name := range grid.WeekdayNames {
		ctx.printf("%-6s", name)
	}
	ctx.println()

	column := 0
	for ; column < grid.LeadingBlanks; column++ {
		ctx.printf("%-6s", "")
	}
	total := 0
	for _, cell := range grid.Cells {
		total += cell.Count
		dots := strings.Repeat("•", cell.Dots) + strings.Repeat(" ", constants.MaxDayDots-cell.Dots)
		ctx.printf("%2d%s ", cell.Day, dots)
		column++
		if column == 7 {
			ctx.println()
			column = 0
		}
	}
	if column != 0 {
		ctx.println()
	}
	ctx.println()
	ctx.printf("%d scheduled this month\n", total)
	return nil
}

// printSlots lists filled slots, or every slot when all is set, and
// returns how many lines were written
func printSlots(ctx *Context, slots []scheduler.Slot, all bool) int {
	n := 0
	for _, slot := range slots {
		switch {
		case slot.Filled():
			ctx.printf("  %s  %s (%s)\n", slot.Label, slot.Allocation.Name, slot.DurationLabel)
		case all:
			ctx.printf("  %s  %s\n", slot.Label, constants.SlotAvailable)
		default:
			continue
		}
		n++
	}
	return n
}
