package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/termsql/internal/config"
	"github.com/leapstack-labs/termsql/pkg/adapter"
	"github.com/leapstack-labs/termsql/pkg/dialect"
)

// errNoTarget is returned by commands that need a database when none is configured.
var errNoTarget = errors.New("no target configured (add a target section to termsql.yaml)")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Dialect *dialect.Dialect
	Out     io.Writer
	ErrOut  io.Writer
}

// NewCommandContext resolves the configured dialect for cmd.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	d, err := dialect.Lookup(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		Cfg:     cfg,
		Logger:  config.GetLogger(cmd.Context()),
		Dialect: d,
		Out:     cmd.OutOrStdout(),
		ErrOut:  cmd.ErrOrStderr(),
	}, nil
}

// Render writes v as JSON/YAML, or calls fill to build a table.
func (c *CommandContext) Render(v any, fill func(t table.Writer)) error {
	if c.Cfg.Output != formatTable {
		return renderStructured(c.Out, c.Cfg.Output, v)
	}
	t := newTable(c.Out)
	fill(t)
	t.Render()
	return nil
}

// Connect opens the configured target. The caller must close the adapter.
func (c *CommandContext) Connect(ctx context.Context) (adapter.Adapter, error) {
	if c.Cfg.Target == nil {
		return nil, errNoTarget
	}
	acfg := c.Cfg.Target.AdapterConfig()
	a, err := adapter.NewAdapter(acfg, c.Logger)
	if err != nil {
		return nil, err
	}
	if err := a.Connect(ctx, acfg); err != nil {
		return nil, fmt.Errorf("failed to connect to %s target: %w", acfg.Type, err)
	}
	return a, nil
}
