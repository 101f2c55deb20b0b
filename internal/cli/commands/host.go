// Package commands holds the structviz subcommands.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/command"
	"github.com/katalvlaran/structviz/config"
	"github.com/katalvlaran/structviz/render"
	"github.com/katalvlaran/structviz/session"
)

// frame is one step rendered for the terminal and as a document.
type frame struct {
	Description string
	Text        string
	Doc         interface{}
}

// report is what one applied command left behind.
type report struct {
	Op          command.Op
	Command     string
	Description string
	Rejected    bool
	Frames      []frame
}

// host adapts one session kind to the presentation code.
type host interface {
	Structure() command.Structure
	// Kind names the current list or tree kind; graphs have none.
	Kind() string
	Apply(ctx context.Context, cmd command.Command) (report, error)
	Summary(w io.Writer, f render.Format) error
}

func sessionOptions(s config.Settings, log *slog.Logger) []session.Option {
	return []session.Option{
		session.WithLogger(log),
		session.WithHistoryLimit(s.HistoryLimit),
		session.WithGenerator(s.IDs),
		session.WithDataset(s.Dataset),
		session.WithGraphNodes(s.GraphNodes),
		session.WithGraphShape(s.GraphShape),
	}
}

func newHost(st command.Structure, s config.Settings, log *slog.Logger) (host, error) {
	styles := render.NewStyles(s.Color)
	opts := sessionOptions(s, log)
	switch st {
	case command.List:
		return &listHost{s: session.NewList(s.ListKind, opts...), styles: styles}, nil
	case command.Tree:
		return &treeHost{s: session.NewTree(s.TreeKind, opts...), styles: styles, width: s.CanvasWidth}, nil
	case command.Graph:
		g, err := session.NewGraph(opts...)
		if err != nil {
			return nil, err
		}
		return &graphHost{s: g, styles: styles}, nil
	}
	return nil, errors.AssertionFailedf("no host for structure %s", st)
}

// settle turns a recoverable session error into a rejected report.
func settle(rep report, err error) (report, error) {
	if err == nil {
		return rep, nil
	}
	if session.Recoverable(err) {
		rep.Rejected = true
		return rep, nil
	}
	return rep, errors.Wrapf(err, "%s", rep.Command)
}

type listHost struct {
	s      *session.List
	styles render.Styles
}

func (h *listHost) Structure() command.Structure { return command.List }
func (h *listHost) Kind() string { return h.s.List().Kind().String() }

func (h *listHost) Apply(_ context.Context, cmd command.Command) (report, error) {
	out, err := h.s.Apply(cmd)
	rep := report{Op: cmd.Op, Command: cmd.String(), Description: out.Description}
	docs := render.ListDocs(out.Result.Steps)
	for i, st := range out.Result.Steps {
		rep.Frames = append(rep.Frames, frame{
			Description: st.Description,
			Text:        render.ListFrame(h.styles, st),
			Doc:         docs[i],
		})
	}
	return settle(rep, err)
}

func (h *listHost) Summary(w io.Writer, f render.Format) error {
	render.ListTable(w, h.s.List(), f)
	return nil
}

type treeHost struct {
	s      *session.Tree
	styles render.Styles
	width  float64
}

func (h *treeHost) Structure() command.Structure { return command.Tree }
func (h *treeHost) Kind() string { return h.s.Tree().Kind().String() }

func (h *treeHost) Apply(_ context.Context, cmd command.Command) (report, error) {
	out, err := h.s.Apply(cmd)
	rep := report{Op: cmd.Op, Command: cmd.String(), Description: out.Description}
	docs := render.TreeDocs(out.Result.Steps, h.width)
	for i, st := range out.Result.Steps {
		rep.Frames = append(rep.Frames, frame{
			Description: st.Description,
			Text:        render.TreeFrame(h.styles, st),
			Doc:         docs[i],
		})
	}
	return settle(rep, err)
}

func (h *treeHost) Summary(w io.Writer, f render.Format) error {
	render.TreeStatsTable(w, h.s.Stats(), f)
	return nil
}

type graphHost struct {
	s      *session.Graph
	styles render.Styles
}

func (h *graphHost) Structure() command.Structure { return command.Graph }
func (h *graphHost) Kind() string { return "" }

func (h *graphHost) Apply(ctx context.Context, cmd command.Command) (report, error) {
	out, err := h.s.ApplyContext(ctx, cmd)
	rep := report{Op: cmd.Op, Command: cmd.String(), Description: out.Description}
	for _, st := range out.Result.Steps {
		rep.Frames = append(rep.Frames, frame{
			Description: st.Description,
			Text:        render.GraphFrame(h.styles, st),
			Doc:         st,
		})
	}
	return settle(rep, err)
}

func (h *graphHost) Summary(w io.Writer, f render.Format) error {
	st, err := h.s.Stats()
	if err != nil {
		return err
	}
	render.GraphStatsTable(w, st.GraphStats, st.Cycles, f)
	return nil
}
