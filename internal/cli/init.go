package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/nightslot/internal/config"
)

type InitCmd struct {
	Force bool `help:"Delete existing local state before initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force && ctx.Config.Storage.Backend != config.BackendPostgres {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			// close first so the file is not locked
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			ctx.printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.printf("Initialized nightslot storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
