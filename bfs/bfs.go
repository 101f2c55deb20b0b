package bfs

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/core"
	"github.com/katalvlaran/structviz/trace"
)

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     map[string][]string
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	seen    []string // visited IDs in marking order
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
//
// The trace follows the queue exactly:
//   - one initial step with the start marked visited and enqueued;
//   - one step per dequeue;
//   - one step per newly discovered neighbor, highlighting the edge used;
//   - a terminal step carrying the final order.
//
// Returns ErrGraphNil, ErrOptionViolation for bad options, or any
// user-supplied hook or context error. An unknown startID is not fatal: the
// result holds a single step describing it and the error matches
// ErrStartVertexNotFound.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasNode(startID) {
		step := trace.InvalidStart(startID)
		o.OnStep(step.Copy())
		return &BFSResult{
			Order:  []string{},
			Depth:  map[string]int{},
			Parent: map[string]string{},
			Steps:  []trace.TraversalStep{step},
		}, errors.Wrapf(ErrStartVertexNotFound, "%q", startID)
	}

	// Prepare walker
	adj := g.Adjacency()
	n := len(adj)
	w := &walker{
		adj:     adj,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		seen:    make([]string, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(startID, 0, "")
	w.emit("", nil, fmt.Sprintf("Initialize BFS queue with start node %s", startID))

	// Main loop
	if err := w.loop(); err != nil {
		return w.res, err
	}
	w.finish()

	return w.res, nil
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.seen = append(w.seen, id)
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		w.emit(item.id, nil, fmt.Sprintf("Dequeued %s. Processing neighbors...", item.id))
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return errors.Wrapf(err, "bfs: OnVisit error at %q", item.id)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor with its own step.
func (w *walker) enqueueNeighbors(item queueItem) error {
	for _, nbr := range w.adj[item.id] {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
			w.emit(item.id, []trace.EdgeRef{{Source: item.id, Target: nbr}},
				fmt.Sprintf("Visited neighbor %s and added to queue", nbr))
		}
	}
	return nil
}

// finish records the terminal step. Visited order equals dequeue order once
// the queue has drained.
func (w *walker) finish() {
	step := trace.TraversalStep{
		Visited:     append([]string{}, w.seen...),
		Frontier:    []trace.FrontierItem{},
		Description: "BFS Traversal Complete",
		FinalOrder:  append([]string{}, w.seen...),
	}
	w.record(step)
}

// emit snapshots the visited set and queue into a new step.
func (w *walker) emit(current string, edges []trace.EdgeRef, desc string) {
	ids := make([]string, len(w.queue))
	for i, it := range w.queue {
		ids[i] = it.id
	}
	w.record(trace.TraversalStep{
		Visited:     append([]string{}, w.seen...),
		Frontier:    trace.Plain(ids),
		Current:     current,
		Edges:       edges,
		Description: desc,
	})
}

func (w *walker) record(step trace.TraversalStep) {
	w.res.Steps = append(w.res.Steps, step)
	w.opts.OnStep(step.Copy())
}
