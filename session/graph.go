package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/bfs"
	"github.com/katalvlaran/structviz/builder"
	"github.com/katalvlaran/structviz/command"
	"github.com/katalvlaran/structviz/core"
	"github.com/katalvlaran/structviz/dfs"
	"github.com/katalvlaran/structviz/dijkstra"
	"github.com/katalvlaran/structviz/history"
	"github.com/katalvlaran/structviz/trace"
)

// GraphResult carries what a graph command produced. Graph is a copy of the
// session graph after the command. Traversals fill Steps, Order and, for
// Dijkstra, Distances. Edits fill EdgeID or Removed.
type GraphResult struct {
	Graph     *core.Graph
	Steps     []trace.TraversalStep
	Order     []string
	Distances map[string]trace.Distance
	EdgeID    string
	Removed   []core.Edge
}

// Description returns the final step description.
func (r GraphResult) Description() string {
	if len(r.Steps) == 0 {
		return ""
	}
	return r.Steps[len(r.Steps)-1].Description
}

// GraphOutcome is the Outcome of a graph command.
type GraphOutcome = Outcome[GraphResult]

// GraphStats extends core.GraphStats with the cycle basis.
type GraphStats struct {
	core.GraphStats `yaml:",inline"`
	HasCycle        bool       `json:"has_cycle" yaml:"has_cycle"`
	Cycles          [][]string `json:"cycles,omitempty" yaml:"cycles,omitempty"`
}

// Graph hosts an undirected graph.
type Graph struct {
	graph   *core.Graph
	nodes   int
	shape   string
	history *history.Stack[*core.Graph]
	log     *slog.Logger
}

// NewGraph returns a session holding the sample graph of WithGraphNodes
// nodes (six by default), or the WithGraphShape topology of that size.
func NewGraph(opts ...Option) (*Graph, error) {
	o := buildOptions(opts)
	g, err := sample(o.graphShape, o.graphNodes)
	if err != nil {
		return nil, errors.Wrap(err, "session: sample graph")
	}
	return &Graph{
		graph:   g,
		nodes:   o.graphNodes,
		shape:   o.graphShape,
		history: history.New[*core.Graph](o.historyLimit),
		log:     o.logger.With("session", "graph"),
	}, nil
}

// Graph returns a copy of the current graph.
func (s *Graph) Graph() *core.Graph { return s.graph.Clone() }

func (s *Graph) CanUndo() bool { return s.history.CanUndo() }
func (s *Graph) CanRedo() bool { return s.history.CanRedo() }

// Stats counts nodes, edges and components and lists a cycle basis.
func (s *Graph) Stats() (GraphStats, error) {
	has, cycles, err := dfs.DetectCycles(s.graph)
	if err != nil {
		return GraphStats{}, err
	}
	return GraphStats{GraphStats: s.graph.Stats(), HasCycle: has, Cycles: cycles}, nil
}

// Apply runs cmd with a background context.
func (s *Graph) Apply(cmd command.Command) (GraphOutcome, error) {
	return s.ApplyContext(context.Background(), cmd)
}

// ApplyContext runs cmd; ctx bounds traversals.
func (s *Graph) ApplyContext(ctx context.Context, cmd command.Command) (GraphOutcome, error) {
	out := GraphOutcome{Command: cmd}
	if cmd.Structure != command.Graph {
		return out, wrongStructure(command.Graph, cmd)
	}

	var (
		res GraphResult
		err error
	)
	switch cmd.Op {
	case command.OpStartTraversal:
		res, err = s.traverse(ctx, cmd)
	case command.OpUndo:
		res, err = s.restore(s.history.Undo, history.ErrNothingToUndo, "Nothing to undo", "Undid the last change")
	case command.OpRedo:
		res, err = s.restore(s.history.Redo, history.ErrNothingToRedo, "Nothing to redo", "Redid the last undone change")
	case command.OpAddNode, command.OpRemoveNode, command.OpAddEdge, command.OpRemoveEdge, command.OpReset:
		var next *core.Graph
		next, res, err = s.edit(cmd)
		if err == nil {
			s.history.Push(s.graph)
			s.graph = next
		}
	default:
		res = s.note(fmt.Sprintf("Unknown graph operation %s", cmd.Op))
		err = errors.Wrapf(command.ErrUnknownOperation, "graph: %s", cmd.Op)
	}

	res.Graph = s.graph.Clone()
	out.Result = res
	out.Description = res.Description()
	logResult(s.log, cmd, out.Description, err)
	return out, err
}

// traverse runs the selected algorithm on the current graph. An unknown
// start node yields the single explanatory step the engines record.
func (s *Graph) traverse(ctx context.Context, cmd command.Command) (GraphResult, error) {
	var res GraphResult
	switch cmd.Algorithm {
	case command.BFS:
		r, err := bfs.BFS(s.graph, cmd.Node, bfs.WithContext(ctx))
		if r != nil {
			res.Steps, res.Order = r.Steps, r.Order
		}
		return res, err
	case command.DFS:
		r, err := dfs.DFS(s.graph, cmd.Node, dfs.WithContext(ctx))
		if r != nil {
			res.Steps, res.Order = r.Steps, r.Order
		}
		return res, err
	case command.Dijkstra:
		r, err := dijkstra.Dijkstra(s.graph, cmd.Node, dijkstra.WithContext(ctx))
		if r != nil {
			res.Steps, res.Order, res.Distances = r.Steps, r.Order, r.Dist
		}
		return res, err
	}
	panic(errors.AssertionFailedf("session: unhandled algorithm %s", cmd.Algorithm))
}

// edit applies a structural change to a copy of the graph. The copy is
// returned only when the change succeeded.
func (s *Graph) edit(cmd command.Command) (*core.Graph, GraphResult, error) {
	if cmd.Op == command.OpReset {
		g, err := sample(s.shape, s.nodes)
		if err != nil {
			return nil, s.note("Could not rebuild the sample graph"), err
		}
		label := "sample"
		if s.shape != DefaultGraphShape {
			label = s.shape
		}
		return g, s.note(fmt.Sprintf("Graph reset to the %d-node %s", s.nodes, label)), nil
	}

	g := s.graph.Clone()
	switch cmd.Op {
	case command.OpAddNode:
		err := g.AddNode(core.Node{ID: cmd.Node, X: NewNodePosition.X, Y: NewNodePosition.Y})
		if err != nil {
			return nil, s.note(fmt.Sprintf("Node %s already exists", cmd.Node)), err
		}
		return g, s.note(fmt.Sprintf("Added node %s", cmd.Node)), nil

	case command.OpRemoveNode:
		removed, err := g.RemoveNode(cmd.Node)
		if err != nil {
			return nil, s.note(fmt.Sprintf("Node %s does not exist", cmd.Node)), err
		}
		res := s.note(fmt.Sprintf("Removed node %s and %s", cmd.Node, edges(len(removed))))
		res.Removed = removed
		return g, res, nil

	case command.OpAddEdge:
		id, err := g.AddEdge(cmd.Source, cmd.Target, 0)
		if err != nil {
			return nil, s.note(s.edgeRejection(cmd, err)), err
		}
		res := s.note(fmt.Sprintf("Added edge %s-%s", cmd.Source, cmd.Target))
		res.EdgeID = id
		return g, res, nil

	case command.OpRemoveEdge:
		e, err := g.RemoveEdgeBetween(cmd.Source, cmd.Target)
		if err != nil {
			return nil, s.note(fmt.Sprintf("No edge between %s and %s", cmd.Source, cmd.Target)), err
		}
		res := s.note(fmt.Sprintf("Removed edge %s-%s", cmd.Source, cmd.Target))
		res.Removed = []core.Edge{e}
		return g, res, nil
	}
	panic(errors.AssertionFailedf("session: %s is not a graph edit", cmd.Op))
}

// edgeRejection explains a failed add_edge. Edges to unknown nodes are
// logged at Warn.
func (s *Graph) edgeRejection(cmd command.Command, err error) string {
	switch {
	case errors.Is(err, core.ErrNodeNotFound):
		s.log.Warn("dangling edge rejected", "source", cmd.Source, "target", cmd.Target)
		return fmt.Sprintf("Cannot connect %s and %s: both nodes must exist", cmd.Source, cmd.Target)
	case errors.Is(err, core.ErrLoopNotAllowed):
		return fmt.Sprintf("Cannot connect %s to itself", cmd.Source)
	case errors.Is(err, core.ErrMultiEdgeNotAllowed):
		return fmt.Sprintf("Edge %s-%s already exists", cmd.Source, cmd.Target)
	}
	return fmt.Sprintf("Cannot add edge %s-%s", cmd.Source, cmd.Target)
}

func (s *Graph) restore(
	pop func(*core.Graph) (*core.Graph, bool), empty error, miss, hit string,
) (GraphResult, error) {
	prev, ok := pop(s.graph)
	if !ok {
		return s.note(miss), empty
	}
	s.graph = prev
	return s.note(hit), nil
}

// note is a one-step result on the current graph.
func (s *Graph) note(desc string) GraphResult {
	return GraphResult{
		Steps: []trace.TraversalStep{{
			Visited:     []string{},
			Frontier:    []trace.FrontierItem{},
			Description: desc,
		}},
	}
}

func sample(shape string, n int) (*core.Graph, error) {
	if shape == DefaultGraphShape {
		return builder.Initial(n)
	}
	cons, err := builder.ShapeByName(shape, n)
	if err != nil {
		return nil, err
	}
	return builder.BuildGraph(nil, nil, cons)
}

func edges(n int) string {
	if n == 1 {
		return "1 incident edge"
	}
	return fmt.Sprintf("%d incident edges", n)
}
