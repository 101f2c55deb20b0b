package session

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/command"
	"github.com/katalvlaran/structviz/core"
	"github.com/katalvlaran/structviz/history"
	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/value"
)

// ErrWrongStructure is returned when a command targets another structure.
var ErrWrongStructure = errors.New("session: command targets another structure")

// DefaultGraphNodes is the size of the sample graph a graph session starts
// from and resets to.
const DefaultGraphNodes = 6

// DefaultGraphShape is the builder shape of the starting graph.
const DefaultGraphShape = "initial"

// NewNodePosition is where add_node places a node on the canvas.
var NewNodePosition = struct{ X, Y float64 }{300, 300}

// Outcome is what Apply reports for one command.
type Outcome[R any] struct {
	Command     command.Command
	Description string
	Result      R
}

// Recoverable reports whether err is a user-facing rejection after which
// the session can keep going.
func Recoverable(err error) bool {
	if err == nil {
		return false
	}
	return trace.Recoverable(err) || errors.IsAny(err,
		history.ErrNothingToUndo, history.ErrNothingToRedo,
		value.ErrNotNumeric,
		command.ErrMissingOperand, command.ErrBadOperand,
		core.ErrLoopNotAllowed, core.ErrMultiEdgeNotAllowed, core.ErrEmptyNodeID)
}

// Option configures a session.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	historyLimit int
	gen          ident.Generator
	dataset      value.Dataset
	graphNodes   int
	graphShape   string
}

func buildOptions(opts []Option) options {
	o := options{
		historyLimit: history.DefaultLimit,
		dataset:      value.Numbers,
		graphNodes:   DefaultGraphNodes,
		graphShape:   DefaultGraphShape,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.gen == nil {
		o.gen = ident.UUID()
	}
	return o
}

// WithLogger sets the logger. nil discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithHistoryLimit bounds the undo stack. Non-positive values fall back to
// history.DefaultLimit.
func WithHistoryLimit(n int) Option {
	return func(o *options) { o.historyLimit = n }
}

// WithGenerator sets the node id generator. The default issues UUIDs.
func WithGenerator(g ident.Generator) Option {
	return func(o *options) { o.gen = g }
}

// WithDataset sets the initial dataset.
func WithDataset(d value.Dataset) Option {
	return func(o *options) { o.dataset = d }
}

// WithGraphNodes sets the size of the sample graph.
func WithGraphNodes(n int) Option {
	return func(o *options) { o.graphNodes = n }
}

// WithGraphShape sets the starting topology by builder shape name, for
// example "cycle" or "grid".
func WithGraphShape(name string) Option {
	return func(o *options) { o.graphShape = name }
}

// logResult writes one record per applied command: Debug on success, Info
// for a recoverable rejection, Error otherwise.
func logResult(log *slog.Logger, cmd command.Command, desc string, err error) {
	switch {
	case err == nil:
		log.Debug("applied", "structure", cmd.Structure.String(), "op", cmd.Op.String(), "result", desc)
	case Recoverable(err):
		log.Info("rejected", "structure", cmd.Structure.String(), "op", cmd.Op.String(), "reason", desc, "err", err)
	default:
		log.Error("failed", "structure", cmd.Structure.String(), "op", cmd.Op.String(), "err", err)
	}
}

func wrongStructure(want command.Structure, cmd command.Command) error {
	return errors.Wrapf(ErrWrongStructure, "%s session got a %s command", want, cmd.Structure)
}
