// Package config loads structviz settings from defaults, a YAML file,
// STRUCTVIZ_* environment variables and command-line flags, in that order
// of increasing precedence.
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/builder"
	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/linkedlist"
	"github.com/katalvlaran/structviz/render"
	"github.com/katalvlaran/structviz/tree"
	"github.com/katalvlaran/structviz/value"
)

// Default values.
const (
	DefaultOutput       = "text"
	DefaultListKind     = "singly"
	DefaultTreeKind     = "bst"
	DefaultDataset      = "numbers"
	DefaultHistoryLimit = 50
	DefaultIDScheme     = ident.SchemeUUID
	DefaultIDPrefix     = "n"
	DefaultStepInterval = 600 * time.Millisecond
	DefaultLogLevel     = "warn"
	DefaultGraphNodes   = 6
	DefaultGraphShape   = "initial"
	DefaultCanvasWidth  = 800
)

// ErrInvalid marks every validation failure.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the flat settings document. Keys are snake_case in files and
// environment variables; flags use the kebab-case spelling.
type Config struct {
	Output       string        `koanf:"output"`
	ListKind     string        `koanf:"list_kind"`
	TreeKind     string        `koanf:"tree_kind"`
	Dataset      string        `koanf:"dataset"`
	HistoryLimit int           `koanf:"history_limit"`
	IDScheme     string        `koanf:"id_scheme"`
	IDPrefix     string        `koanf:"id_prefix"`
	StepInterval time.Duration `koanf:"step_interval"`
	LogLevel     string        `koanf:"log_level"`
	Color        bool          `koanf:"color"`
	GraphNodes   int           `koanf:"graph_nodes"`
	GraphShape   string        `koanf:"graph_shape"`
	CanvasWidth  int           `koanf:"canvas_width"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Output:       DefaultOutput,
		ListKind:     DefaultListKind,
		TreeKind:     DefaultTreeKind,
		Dataset:      DefaultDataset,
		HistoryLimit: DefaultHistoryLimit,
		IDScheme:     DefaultIDScheme,
		IDPrefix:     DefaultIDPrefix,
		StepInterval: DefaultStepInterval,
		LogLevel:     DefaultLogLevel,
		Color:        true,
		GraphNodes:   DefaultGraphNodes,
		GraphShape:   DefaultGraphShape,
		CanvasWidth:  DefaultCanvasWidth,
	}
}

// Settings is a validated Config with every enum resolved.
type Settings struct {
	Format       render.Format
	ListKind     linkedlist.Kind
	TreeKind     tree.Kind
	Dataset      value.Dataset
	HistoryLimit int
	IDs          ident.Generator
	StepInterval time.Duration
	LogLevel     slog.Level
	Color        bool
	GraphNodes   int
	GraphShape   string
	CanvasWidth  float64
}

// Resolve validates c and converts it into Settings.
func (c *Config) Resolve() (Settings, error) {
	var (
		s   Settings
		err error
	)
	if s.Format, err = render.ParseFormat(c.Output); err != nil {
		return s, invalid("output", err)
	}
	if s.ListKind, err = linkedlist.ParseKind(c.ListKind); err != nil {
		return s, invalid("list_kind", err)
	}
	if s.TreeKind, err = tree.ParseKind(c.TreeKind); err != nil {
		return s, invalid("tree_kind", err)
	}
	if s.Dataset, err = value.ParseDataset(c.Dataset); err != nil {
		return s, invalid("dataset", err)
	}
	if s.IDs, err = ident.ByName(c.IDScheme, c.IDPrefix); err != nil {
		return s, invalid("id_scheme", err)
	}
	if s.LogLevel, err = ParseLevel(c.LogLevel); err != nil {
		return s, invalid("log_level", err)
	}
	if c.HistoryLimit < 1 {
		return s, errors.Wrapf(ErrInvalid, "history_limit must be positive, got %d", c.HistoryLimit)
	}
	if c.StepInterval <= 0 {
		return s, errors.Wrapf(ErrInvalid, "step_interval must be positive, got %s", c.StepInterval)
	}
	if c.GraphNodes < 1 {
		return s, errors.Wrapf(ErrInvalid, "graph_nodes must be at least 1, got %d", c.GraphNodes)
	}
	if _, err = builder.ShapeByName(c.GraphShape, c.GraphNodes); err != nil {
		return s, invalid("graph_shape", err)
	}
	if c.CanvasWidth < 1 {
		return s, errors.Wrapf(ErrInvalid, "canvas_width must be positive, got %d", c.CanvasWidth)
	}
	s.HistoryLimit = c.HistoryLimit
	s.StepInterval = c.StepInterval
	s.Color = c.Color
	s.GraphNodes = c.GraphNodes
	s.GraphShape = strings.ToLower(strings.TrimSpace(c.GraphShape))
	s.CanvasWidth = float64(c.CanvasWidth)
	return s, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	_, err := c.Resolve()
	return err
}

func invalid(key string, err error) error {
	return errors.Mark(errors.Wrapf(err, "%s", key), ErrInvalid)
}

// ParseLevel resolves debug, info, warn or error.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, errors.Wrapf(ErrInvalid, "unknown log level %q", name)
	}
	return l, nil
}

// NewLogger builds the text logger the CLI writes to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
