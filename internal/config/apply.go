package config

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/leapstack-labs/termsql/pkg/adapter"
	"github.com/leapstack-labs/termsql/pkg/dialect"
)

// Apply pushes the configuration into the registered dialects: the paging
// mode, the logger and any per-dialect type overrides. It validates that the
// selected dialect exists and, when a target is configured, that its adapter
// type is registered.
func Apply(cfg *Config, logger *slog.Logger) error {
	if cfg == nil {
		return nil
	}

	if _, err := dialect.Lookup(cfg.Dialect); err != nil {
		return err
	}

	for _, d := range dialect.All() {
		d.SetPreparedPaging(cfg.Paging.Prepare)
		d.SetLogger(logger)
	}

	names := make([]string, 0, len(cfg.Types.Overrides))
	for name := range cfg.Types.Overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d, err := dialect.Lookup(name)
		if err != nil {
			return fmt.Errorf("invalid types.overrides: %w", err)
		}
		for token, st := range cfg.Types.Overrides[name] {
			d.RegisterTypeOverride(token, st)
		}
	}

	return ValidateTarget(cfg.Target)
}

// ValidateTarget checks the target's adapter type against the adapter
// registry. A nil target is valid; commands that need one check for it.
func ValidateTarget(t *TargetConfig) error {
	if t == nil {
		return nil
	}
	if t.Type == "" {
		return fmt.Errorf("target type is required")
	}
	if !adapter.IsRegistered(strings.ToLower(t.Type)) {
		return &adapter.UnknownAdapterError{
			Type:      t.Type,
			Available: adapter.ListAdapters(),
		}
	}
	return nil
}
