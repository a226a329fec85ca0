package main

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/nightslot/internal/cli"
	"github.com/julianstephens/nightslot/internal/config"
	"github.com/julianstephens/nightslot/internal/constants"
	nserrors "github.com/julianstephens/nightslot/internal/errors"
	"github.com/julianstephens/nightslot/internal/logger"
	"github.com/julianstephens/nightslot/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." default:"~/.config/nightslot/config.yaml"`
	Debug   bool   `help:"Enable debug logging to stderr."`
	Backend string `help:"Storage backend override (sqlite, json, postgres)."`
	Path    string `help:"Storage path override for the sqlite and json backends."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize nightslot storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive planner." default:"1"`
	Day    cli.DayCmd    `cmd:"" help:"Show the night schedule for a day."`
	Week   cli.WeekCmd   `cmd:"" help:"Show the schedule for a week."`
	Month  cli.MonthCmd  `cmd:"" help:"Show a month overview."`
	Assign cli.AssignCmd `cmd:"" help:"Schedule an activity in a night slot."`
	Remove cli.RemoveCmd `cmd:"" help:"Clear a night slot."`
	Export cli.ExportCmd `cmd:"" help:"Export scheduled activities as iCalendar."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Diag   cli.DebugCmd  `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`

	Activity struct {
		Add  cli.ActivityAddCmd  `cmd:"" help:"Add an activity to the catalog."`
		List cli.ActivityListCmd `cmd:"" help:"List activities, shortest first."`
	} `cmd:"" help:"Manage activities."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage state backups."`
	Keyring struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Get    cli.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage PostgreSQL credentials in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Evening and overnight activity planner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)
	command := ctx.Command()

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		nserrors.Fatal(err)
	}
	if err := cli.ApplyOverrides(cfg, CLI.Backend, CLI.Path, CLI.Debug); err != nil {
		nserrors.Fatal(err)
	}

	cfgPath, err := utils.ExpandHome(CLI.Config)
	if err != nil {
		nserrors.Fatal(err)
	}
	logCfg := logger.Config{
		Dir:        filepath.Dir(cfgPath),
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Debug:      cfg.Debug,
	}
	if err := logger.Init(logCfg); err != nil {
		nserrors.Fatal(fmt.Errorf("failed to initialize logger: %w", err))
	}

	store, err := cli.NewProvider(cfg)
	if err != nil && !cli.SkipsStorage(command) {
		nserrors.Fatal(err)
	}

	appCtx := cli.NewContext(cfg, store)
	if store != nil && !cli.SkipsLoad(command) {
		if err := appCtx.Load(); err != nil {
			nserrors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	if store != nil {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("Failed to close storage", "error", cerr)
		}
	}
	if err != nil {
		nserrors.Fatal(err)
	}
}
