package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/termsql/pkg/adapter"
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	_ "github.com/leapstack-labs/termsql/pkg/dialects/ansi"
	"github.com/leapstack-labs/termsql/pkg/dialects/postgres"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("dialect", "d", "", "")
	fs.StringP("output", "o", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.Bool("prepared-paging", false, "")
	fs.Int("page", 0, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDialect, cfg.Dialect)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultPageSize, cfg.Paging.Size)
	assert.False(t, cfg.Paging.Prepare)
	assert.Nil(t, cfg.Target)
	assert.Empty(t, cfg.File)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("SHOP_DB_PATH", "/data/shop.db")
	dir := t.TempDir()
	path := writeConfig(t, dir, `
dialect: postgres
output: json
paging:
  prepare: true
  size: 50
log:
  level: info
target:
  type: sqlite
  path: ${SHOP_DB_PATH}
  options:
    mode: ro
types:
  overrides:
    postgres:
      citext: VARCHAR
      ltree: longvarchar
`)

	cfg, err := LoadFrom(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "postgres", cfg.Dialect)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.Paging.Prepare)
	assert.Equal(t, 50, cfg.Paging.Size)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())

	require.NotNil(t, cfg.Target)
	assert.Equal(t, "/data/shop.db", cfg.Target.Path)
	assert.Equal(t, "ro", cfg.Target.Options["mode"])

	ac := cfg.Target.AdapterConfig()
	assert.Equal(t, "sqlite", ac.Type)
	assert.Equal(t, "/data/shop.db", ac.Path)

	assert.Equal(t, map[string]core.StandardType{
		"citext": core.TypeVarchar,
		"ltree":  core.TypeLongVarchar,
	}, cfg.Types.Overrides["postgres"])
}

func TestLoadSearchesUpward(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "dialect: postgres\n")
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o750))

	cfg, err := LoadFrom(child, "", nil)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "postgres", cfg.Dialect)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "dialect: postgres\noutput: yaml\nlog:\n  level: error\n")

	t.Setenv("TERMSQL_DIALECT", "oracle")
	t.Setenv("TERMSQL_LOG_LEVEL", "debug")
	t.Setenv("TERMSQL_PAGING_PREPARE", "true")

	cfg, err := LoadFrom(dir, "", newFlags(t, "--dialect", "mysql", "--page", "3"))
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Dialect, "flag beats env")
	assert.Equal(t, "yaml", cfg.Output, "file beats default")
	assert.Equal(t, "debug", cfg.Log.Level, "env beats file")
	assert.True(t, cfg.Paging.Prepare, "env parsed as bool")
}

func TestLoadFlagsUnchangedIgnored(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "output: json\n")

	cfg, err := LoadFrom(dir, "", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.False(t, cfg.Verbose)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown standard type", "types:\n  overrides:\n    postgres:\n      x: NOPE\n", "unknown standard type"},
		{"invalid output", "output: xml\n", "invalid output format"},
		{"negative page size", "paging:\n  size: -1\n", "paging.size"},
		{"malformed yaml", "dialect: [", "error reading config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.body)
			_, err := LoadFrom(dir, "", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dialect: postgres\n"), 0o600))

	cfg, err := LoadFrom(t.TempDir(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "postgres", cfg.Dialect)

	_, err = LoadFrom(dir, filepath.Join(dir, "missing.yaml"), nil)
	require.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level   string
		verbose bool
		want    slog.Level
	}{
		{"debug", false, slog.LevelDebug},
		{"INFO", false, slog.LevelInfo},
		{"error", false, slog.LevelError},
		{"bogus", false, slog.LevelWarn},
		{"error", true, slog.LevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level}, Verbose: tt.verbose}
			assert.Equal(t, tt.want, cfg.LogLevel())
		})
	}
}

func TestApply(t *testing.T) {
	adapter.Register("cfgtest", func(_ *slog.Logger) adapter.Adapter { return nil })
	t.Cleanup(func() {
		for _, d := range dialect.All() {
			d.SetPreparedPaging(false)
		}
	})

	cfg := Default()
	cfg.Dialect = "postgres"
	cfg.Paging.Prepare = true
	cfg.Types.Overrides = map[string]map[string]core.StandardType{
		"postgres": {"Ltree": core.TypeLongVarchar},
	}
	cfg.Target = &TargetConfig{Type: "CfgTest"}
	require.NoError(t, Apply(cfg, nil))

	assert.True(t, postgres.Postgres.PreparedPaging())
	assert.Equal(t, core.TypeLongVarchar, postgres.Postgres.ParseStandardType("ltree"))
	assert.Equal(t, "SELECT 1 LIMIT #{_page.size} OFFSET #{_page.offset}", postgres.Postgres.Paginate("SELECT 1", 0, 10))
}

func TestApplyErrors(t *testing.T) {
	t.Run("unknown dialect", func(t *testing.T) {
		cfg := Default()
		cfg.Dialect = "nosuch"
		var unknown *dialect.UnknownDialectError
		require.ErrorAs(t, Apply(cfg, nil), &unknown)
	})

	t.Run("unknown override dialect", func(t *testing.T) {
		cfg := Default()
		cfg.Types.Overrides = map[string]map[string]core.StandardType{"nosuch": {"x": core.TypeInteger}}
		err := Apply(cfg, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "types.overrides")
	})

	t.Run("unknown adapter", func(t *testing.T) {
		cfg := Default()
		cfg.Target = &TargetConfig{Type: "fake_db"}
		var unknown *adapter.UnknownAdapterError
		require.ErrorAs(t, Apply(cfg, nil), &unknown)
		assert.Equal(t, "fake_db", unknown.Type)
	})

	t.Run("missing target type", func(t *testing.T) {
		assert.EqualError(t, ValidateTarget(&TargetConfig{}), "target type is required")
	})
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Default(), FromContext(ctx))
	assert.NotNil(t, GetLogger(ctx))

	cfg := &Config{Dialect: "mysql"}
	logger := slog.New(slog.DiscardHandler)
	ctx = WithLogger(WithConfig(ctx, cfg), logger)
	assert.Same(t, cfg, FromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))
}
