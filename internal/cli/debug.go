package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/nightslot/internal/constants"
	"github.com/julianstephens/nightslot/internal/storage"
)

type DebugCmd struct {
	Path DebugPathCmd `cmd:"" help:"Show storage location."`
	Dump DebugDumpCmd `cmd:"" help:"Dump the saved planner state as JSON."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"backend": string(ctx.Config.Storage.Backend),
		"path":    ctx.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.println(string(jsonBytes))
	return nil
}

type DebugDumpCmd struct{}

func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	data, err := ctx.Store.Get(constants.SnapshotKey)
	if errors.Is(err, storage.ErrNotFound) {
		return errors.New("no saved state yet")
	}
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		// not JSON; show it raw so the corruption is visible
		ctx.println(string(data))
		return nil
	}
	ctx.println(out.String())
	return nil
}
