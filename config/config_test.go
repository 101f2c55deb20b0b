package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structviz/linkedlist"
	"github.com/katalvlaran/structviz/render"
	"github.com/katalvlaran/structviz/tree"
	"github.com/katalvlaran/structviz/value"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.StringP("output", "o", "", "")
	fs.String("list-kind", "", "")
	fs.String("tree-kind", "", "")
	fs.String("dataset", "", "")
	fs.Int("history-limit", 0, "")
	fs.Duration("step-interval", 0, "")
	fs.String("log-level", "", "")
	fs.Bool("no-color", false, "")
	fs.Bool("steps", false, "")
	return fs
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.File)
	assert.Equal(t, Default(), cfg.Config)

	s, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, render.Text, s.Format)
	assert.Equal(t, linkedlist.Singly, s.ListKind)
	assert.Equal(t, tree.BST, s.TreeKind)
	assert.Equal(t, value.Numbers, s.Dataset)
	assert.Equal(t, 600*time.Millisecond, s.StepInterval)
	assert.Equal(t, slog.LevelWarn, s.LogLevel)
	assert.True(t, s.Color)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "structviz.yaml", `
list_kind: doubly
tree_kind: avl
dataset: colors
history_limit: 10
step_interval: 1s
`)
	t.Setenv("STRUCTVIZ_TREE_KIND", "min_heap")
	t.Setenv("STRUCTVIZ_HISTORY_LIMIT", "20")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--history-limit", "30", "--no-color", "--steps"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "structviz.yaml", cfg.File)
	assert.Equal(t, "doubly", cfg.ListKind, "file beats defaults")
	assert.Equal(t, "min_heap", cfg.TreeKind, "env beats file")
	assert.Equal(t, 30, cfg.HistoryLimit, "flags beat env")
	assert.Equal(t, "colors", cfg.Dataset)
	assert.Equal(t, time.Second, cfg.StepInterval)
	assert.False(t, cfg.Color)
}

func TestLoadUnchangedFlagsKeepLowerLayers(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	p := writeFile(t, dir, "custom.yml", "output: json\n")

	fs := testFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(p, fs)
	require.NoError(t, err)
	assert.Equal(t, p, cfg.File)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := Load(filepath.Join(dir, "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")

	bad := writeFile(t, dir, "bad.yaml", "tree_kind: trie\n")
	_, err = Load(bad, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Contains(t, err.Error(), "tree_kind")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "markdown alias", mutate: func(c *Config) { c.Output = "md" }},
		{name: "bad output", mutate: func(c *Config) { c.Output = "html" }, wantErr: "output"},
		{name: "bad list kind", mutate: func(c *Config) { c.ListKind = "skip" }, wantErr: "list_kind"},
		{name: "bad dataset", mutate: func(c *Config) { c.Dataset = "planets" }, wantErr: "dataset"},
		{name: "bad id scheme", mutate: func(c *Config) { c.IDScheme = "ulid" }, wantErr: "id_scheme"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "log_level"},
		{name: "zero history", mutate: func(c *Config) { c.HistoryLimit = 0 }, wantErr: "history_limit"},
		{name: "zero interval", mutate: func(c *Config) { c.StepInterval = 0 }, wantErr: "step_interval"},
		{name: "no nodes", mutate: func(c *Config) { c.GraphNodes = 0 }, wantErr: "graph_nodes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.NotNil(t, GetLogger(ctx))
	assert.Equal(t, render.Text, GetSettings(ctx).Format)

	l := slog.New(slog.DiscardHandler)
	ctx = WithLogger(ctx, l)
	assert.Same(t, l, GetLogger(ctx))

	c := Default()
	c.Dataset = "emojis"
	s, err := c.Resolve()
	require.NoError(t, err)
	assert.Equal(t, value.Emojis, GetSettings(WithSettings(ctx, s)).Dataset)
}
