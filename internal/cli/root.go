package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/nightslot/internal/backup"
	"github.com/julianstephens/nightslot/internal/config"
	"github.com/julianstephens/nightslot/internal/logger"
	"github.com/julianstephens/nightslot/internal/scheduler"
	"github.com/julianstephens/nightslot/internal/storage"
	"github.com/julianstephens/nightslot/internal/utils"
)

// Context is handed to every command's Run method
type Context struct {
	Config    *config.Config
	Store     storage.Provider
	Port      *storage.Port
	Scheduler *scheduler.Scheduler
	Out       io.Writer
	In        io.Reader
}

// NewContext wires a scheduler that saves through store. Extra options
// are applied after the defaults.
func NewContext(cfg *config.Config, store storage.Provider, opts ...scheduler.Option) *Context {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	port := storage.NewPort(store)
	opts = append([]scheduler.Option{
		scheduler.WithSaver(port),
		scheduler.WithView(cfg.DefaultView),
	}, opts...)

	return &Context{
		Config:    cfg,
		Store:     store,
		Port:      port,
		Scheduler: scheduler.New(opts...),
		Out:       os.Stdout,
		In:        os.Stdin,
	}
}

// Load opens the store and restores the saved planner state into the
// scheduler. A malformed snapshot is not an error; defaults are kept.
func (c *Context) Load() error {
	if err := c.Store.Load(); err != nil {
		return err
	}
	c.restore()
	return nil
}

func (c *Context) restore() storage.LoadResult {
	res := c.Port.Load()
	c.Scheduler.Restore(res.Snapshot)
	return res
}

func (c *Context) out() io.Writer {
	if c == nil || c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// backupManager returns nil for backends without a local state file
func (c *Context) backupManager() *backup.Manager {
	if c.Config.Storage.Backend == config.BackendPostgres {
		return nil
	}
	return backup.NewManager(c.Store.GetConfigPath(), c.Config.Backup.Keep)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := c.backupManager()
	if mgr == nil {
		return
	}
	// nothing to back up before the first save
	if _, err := os.Stat(c.Store.GetConfigPath()); os.IsNotExist(err) {
		return
	}
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// checkSaved turns a failed save of the last intent into a command error
func (c *Context) checkSaved() error {
	if res := c.Scheduler.LastSave(); !res.OK() {
		return res.Err
	}
	return nil
}

// parseDate accepts YYYY-MM-DD, "today", "tomorrow" or "yesterday".
// An empty string means today.
func parseDate(s string, today time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return utils.AddDays(today, 1), nil
	case "yesterday":
		return utils.AddDays(today, -1), nil
	}
	date, err := utils.ParseDateKey(strings.TrimSpace(s), today.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD, today, tomorrow or yesterday)", s)
	}
	return date, nil
}
