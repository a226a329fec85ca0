package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/nightslot/internal/config"
	"github.com/julianstephens/nightslot/internal/constants"
	"github.com/julianstephens/nightslot/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false

	report := func(name string, err error) bool {
		if err != nil {
			ctx.printf("❌ %s: FAIL\n", name)
			ctx.printf("   Error: %v\n", err)
			hasError = true
			return false
		}
		ctx.printf("✓ %s: OK\n", name)
		return true
	}

	reachable := report("Storage reachable", checkStorage(ctx))

	if reporter, ok := ctx.Store.(storage.SchemaReporter); ok && reachable {
		report("Schema version", checkSchemaVersion(reporter))
	}

	if reachable {
		report("Saved state", checkSnapshot(ctx))
	} else {
		ctx.println("⊘ Saved state: SKIPPED (storage not reachable)")
	}

	if mgr := ctx.backupManager(); mgr != nil {
		backups, err := mgr.List()
		switch {
		case err != nil:
			ctx.println("⚠ Backups present: WARNING")
			ctx.printf("   failed to list backups: %v\n", err)
		case len(backups) == 0:
			ctx.println("⚠ Backups present: WARNING")
			ctx.println("   no backups found - consider creating one with 'nightslot backup create'")
		default:
			ctx.println("✓ Backups present: OK")
		}
	}

	report("Clock/timezone", checkClockTimezone(ctx, time.Now()))

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	ctx.println("All diagnostics passed!")
	return nil
}

// checkStorage opens the store without the recovery Load does for a
// missing or unreadable local state file
func checkStorage(ctx *Context) error {
	backend := ctx.Config.Storage.Backend
	if backend != config.BackendPostgres {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("no state file at %s (run '%s init' or start the planner)", path, constants.AppName)
		}
		if backend == config.BackendJSON {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if !json.Valid(data) {
				return fmt.Errorf("%s is not valid JSON and will be moved aside on the next start", path)
			}
		}
	}
	return ctx.Store.Load()
}

func checkSchemaVersion(reporter storage.SchemaReporter) error {
	current, latest, err := reporter.SchemaVersion()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkSnapshot(ctx *Context) error {
	res := ctx.Port.Load()
	if res.Err != nil {
		return res.Err
	}
	if len(res.Dropped) > 0 {
		return fmt.Errorf("invalid fields ignored on load: %s", strings.Join(res.Dropped, ", "))
	}
	if !res.Found {
		ctx.println("   Note: nothing saved yet, defaults are in use")
	}
	return nil
}

func checkClockTimezone(ctx *Context, now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset == 0 && now.Location() == time.UTC {
		ctx.println("   Note: timezone is UTC")
	}
	return nil
}
