// File: dijkstra.go
// Role: The unit-cost Dijkstra runner.
//
// Notes on implementation choices:
//
//   - Every edge costs 1. Stored weights are display data only.
//   - The queue is a plain slice, stable-sorted by distance before each pop, so
//     the recorded queue shows entries in the order a reader expects: ties keep
//     their push order.
//   - We use a “lazy” decrease-key strategy: pushing duplicates and ignoring
//     entries for vertices already finalized. Such pops record no step.
//   - We stop exploring once the minimum queued distance exceeds MaxDistance.

package dijkstra

import (
	"context"
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/core"
	"github.com/katalvlaran/structviz/trace"
)

// unitCost is the cost of traversing any edge.
const unitCost trace.Distance = 1

// Dijkstra computes hop distances from source to all other vertices of g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. g must be non-nil (ErrNilGraph).
//  3. source must be non-empty (ErrEmptySource) and present (ErrVertexNotFound).
//     Both are recoverable: the result carries one step describing the
//     invalid start.
//
// Trace:
//
//   - initial step with the queue holding source(0);
//   - one "Processing" step per finalized vertex;
//   - one "Relaxing" step per strictly shorter distance found;
//   - a terminal step with the full distance table and the visit order.
//
// Complexity:
//
//   - Time:  O(E · Q log Q)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions(source)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate Source
	if source == "" || !g.HasNode(source) {
		step := trace.InvalidStart(source)
		cfg.OnStep(step.Copy())
		res := &Result{
			Dist:  map[string]trace.Distance{},
			Prev:  map[string]string{},
			Order: []string{},
			Steps: []trace.TraversalStep{step},
		}
		if source == "" {
			return res, ErrEmptySource
		}
		return res, errors.Wrapf(ErrVertexNotFound, "%q", source)
	}

	// 4) Prepare data structures for the algorithm.
	adj := g.Adjacency()
	V := len(adj)
	r := &runner{
		adj:     adj,
		ids:     g.NodeIDs(),
		options: cfg,
		ctx:     cfg.Ctx,
		visited: make(map[string]bool, V),
		res: &Result{
			Dist:  make(map[string]trace.Distance, V),
			Prev:  make(map[string]string, V),
			Order: make([]string, 0, V),
		},
	}

	// 5) Initialize algorithm state and run main loop.
	r.init()
	if err := r.process(); err != nil {
		return r.res, err
	}
	r.finish()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     map[string][]string // Symmetric, sorted adjacency snapshot.
	ids     []string            // All vertex IDs in CompareIDs order.
	options Options             // Configuration options.
	ctx     context.Context     // Cancellation.
	visited map[string]bool     // Tracks if a vertex's distance is finalized.
	pq      []queueItem         // Naive priority queue, sorted before each pop.
	res     *Result             // Output under construction.
}

// queueItem represents a vertex and its distance when it was pushed.
type queueItem struct {
	id   string
	dist trace.Distance
}

// init sets dist[v] = Infinity for every vertex, dist[source] = 0, and seeds
// the queue with the source.
func (r *runner) init() {
	for _, v := range r.ids {
		r.res.Dist[v] = trace.Infinity
	}
	src := r.options.Source
	r.res.Dist[src] = 0
	r.pq = append(r.pq, queueItem{id: src, dist: 0})
	r.emit("", nil, fmt.Sprintf("Initialize Dijkstra. Start node %s distance = 0, others = Infinity.", src))
}

// process repeatedly extracts the vertex with the minimum distance and relaxes
// its edges.
//
// Loop termination conditions:
//
//   - The queue becomes empty (all reachable vertices processed).
//   - The minimum queued distance exceeds MaxDistance.
//   - The context is done.
func (r *runner) process() error {
	for len(r.pq) > 0 {
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		// 1) Sort by distance, ties in push order, and pop the front.
		sort.SliceStable(r.pq, func(i, j int) bool { return r.pq[i].dist < r.pq[j].dist })
		item := r.pq[0]
		r.pq = r.pq[1:]

		// 2) Skip entries for vertices already finalized.
		if r.visited[item.id] {
			continue
		}

		// 3) Nothing closer than MaxDistance remains.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize.
		r.visited[item.id] = true
		r.res.Order = append(r.res.Order, item.id)
		r.emit(item.id, nil, fmt.Sprintf("Processing node %s with current shortest distance %s", item.id, item.dist))

		// 5) Relax every incident edge.
		r.relax(item)
	}

	return nil
}

// relax improves neighbor distances through u. Equal distances are not
// re-pushed.
func (r *runner) relax(u queueItem) {
	for _, v := range r.adj[u.id] {
		newDist := u.dist + unitCost
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = newDist
		r.res.Prev[v] = u.id
		r.pq = append(r.pq, queueItem{id: v, dist: newDist})
		r.emit(u.id, []trace.EdgeRef{{Source: u.id, Target: v}},
			fmt.Sprintf("Relaxing edge %s->%s. New distance: %s", u.id, v, newDist))
	}
}

// finish records the terminal step with every vertex's distance.
func (r *runner) finish() {
	dist := make(map[string]trace.Distance, len(r.res.Dist))
	for k, v := range r.res.Dist {
		dist[k] = v
	}
	r.record(trace.TraversalStep{
		Visited:     append([]string{}, r.res.Order...),
		Frontier:    []trace.FrontierItem{},
		Description: "Dijkstra's Algorithm Complete",
		Distances:   dist,
		FinalOrder:  append([]string{}, r.res.Order...),
	})
}

// emit snapshots the visited list and queue (as id(d)) into a new step.
func (r *runner) emit(current string, edges []trace.EdgeRef, desc string) {
	frontier := make([]trace.FrontierItem, len(r.pq))
	for i, it := range r.pq {
		frontier[i] = trace.FrontierItem{ID: it.id, Priority: it.dist}
	}
	r.record(trace.TraversalStep{
		Visited:     append([]string{}, r.res.Order...),
		Frontier:    frontier,
		Current:     current,
		Edges:       edges,
		Description: desc,
	})
}

func (r *runner) record(step trace.TraversalStep) {
	r.res.Steps = append(r.res.Steps, step)
	r.options.OnStep(step.Copy())
}
