// File: dfs.go
// Role: Iterative, trace-recording depth-first search.
//
// A vertex is marked visited when it is popped, not when it is pushed, so one
// vertex may sit on the stack several times before its first pop. Later pops
// of an already visited vertex are discarded without a step.

package dfs

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/core"
	"github.com/katalvlaran/structviz/trace"
)

// stackEntry is one pushed vertex with the depth and parent it was pushed at.
type stackEntry struct {
	id     string
	depth  int
	parent string // empty for the start vertex
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj   map[string][]string // symmetric adjacency snapshot
	opts  DFSOptions          // traversal options
	stack []stackEntry        // explicit DFS stack, top at the end
	res   *DFSResult          // result collector
}

// DFS performs an iterative depth-first search on g from startID.
//
// Trace:
//   - an initial step with an empty visited set and startID on the stack;
//   - a step for every pop that visits a vertex;
//   - a step for every pushed neighbor, highlighting the edge;
//   - a terminal step carrying the final order.
//
// Neighbors are pushed in descending ID order so the smallest ID is popped
// first. A neighbor already on the stack is pushed again if it is still
// unvisited.
//
// An unknown startID yields a one-step result and an error matching
// ErrStartVertexNotFound. Context and hook errors abort with the partial result.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Verify startID
	if !g.HasNode(startID) {
		step := trace.InvalidStart(startID)
		if dopts.OnStep != nil {
			dopts.OnStep(step.Copy())
		}
		return &DFSResult{
			Order:   []string{},
			Depth:   map[string]int{},
			Parent:  map[string]string{},
			Visited: map[string]bool{},
			Steps:   []trace.TraversalStep{step},
		}, errors.Wrapf(ErrStartVertexNotFound, "%q", startID)
	}

	// 4. Initialize result with capacity hint
	adj := g.Adjacency()
	res := &DFSResult{
		Order:   make([]string, 0, len(adj)),
		Depth:   make(map[string]int, len(adj)),
		Parent:  make(map[string]string, len(adj)),
		Visited: make(map[string]bool, len(adj)),
	}
	w := &dfsWalker{adj: adj, opts: dopts, res: res}

	// 5. Seed and traverse
	w.stack = append(w.stack, stackEntry{id: startID})
	w.emit("", nil, fmt.Sprintf("Initialize DFS stack with start node %s", startID))
	if err := w.traverse(); err != nil {
		return res, err
	}
	w.record(trace.TraversalStep{
		Visited:     append([]string{}, res.Order...),
		Frontier:    []trace.FrontierItem{},
		Description: "DFS Traversal Complete",
		FinalOrder:  append([]string{}, res.Order...),
	})

	// 6. Expose diagnostics
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// traverse pops until the stack is empty.
func (w *dfsWalker) traverse() error {
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop; stale duplicates are dropped silently
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.res.Visited[top.id] {
			continue
		}

		// 3. Mark visited
		w.res.Visited[top.id] = true
		w.res.Depth[top.id] = top.depth
		if top.parent != "" {
			w.res.Parent[top.id] = top.parent
		}
		w.res.Order = append(w.res.Order, top.id)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.id); err != nil {
				return errors.Wrapf(err, "dfs: OnVisit hook for %q", top.id)
			}
		}
		w.emit(top.id, nil, fmt.Sprintf("Popped %s from stack and marked as visited", top.id))

		// 4. Push unvisited neighbors, largest ID first
		if w.opts.MaxDepth > 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}
		nbrs := w.adj[top.id]
		for i := len(nbrs) - 1; i >= 0; i-- {
			nid := nbrs[i]
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.opts.SkippedNeighbors++
				continue
			}
			w.stack = append(w.stack, stackEntry{id: nid, depth: top.depth + 1, parent: top.id})
			w.emit(top.id, []trace.EdgeRef{{Source: top.id, Target: nid}},
				fmt.Sprintf("Pushed neighbor %s to stack", nid))
		}
	}

	return nil
}

// emit snapshots the visited list and the stack, bottom first.
func (w *dfsWalker) emit(current string, edges []trace.EdgeRef, desc string) {
	ids := make([]string, len(w.stack))
	for i, e := range w.stack {
		ids[i] = e.id
	}
	w.record(trace.TraversalStep{
		Visited:     append([]string{}, w.res.Order...),
		Frontier:    trace.Plain(ids),
		Current:     current,
		Edges:       edges,
		Description: desc,
	})
}

func (w *dfsWalker) record(step trace.TraversalStep) {
	w.res.Steps = append(w.res.Steps, step)
	if w.opts.OnStep != nil {
		w.opts.OnStep(step.Copy())
	}
}
