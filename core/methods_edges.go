// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns edges in insertion order; IDs are "e1", "e2", ... per graph.
//
// Concurrency:
//   - Endpoint checks read muNode, then the edge catalog is mutated under muEdge.
package core

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
)

const edgeIDPrefix = "e"

// AddEdge connects source and target and returns the new Edge.ID.
//
// Implementation:
//   - Stage 1: Validate IDs, weight policy and loops.
//   - Stage 2: Under muNode read lock, require both endpoints (ErrNodeNotFound).
//   - Stage 3: Under muEdge write lock, reject a second edge between the same
//     pair in either direction (ErrMultiEdgeNotAllowed), then store it.
//
// Errors:
//   - ErrEmptyNodeID, ErrBadWeight, ErrLoopNotAllowed, ErrNodeNotFound,
//     ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(E) for the duplicate scan, Space O(1).
func (g *Graph) AddEdge(source, target string, weight int64) (string, error) {
	// 1) Input validation
	if source == "" || target == "" {
		return "", ErrEmptyNodeID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if source == target {
		return "", errors.Wrapf(ErrLoopNotAllowed, "%q", source)
	}

	// 2) Endpoints must exist
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	for _, id := range [2]string{source, target} {
		if _, ok := g.nodes[id]; !ok {
			return "", errors.Wrapf(ErrNodeNotFound, "edge endpoint %q", id)
		}
	}

	// 3) Store under the edge lock
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	for _, e := range g.edges {
		if e.Joins(source, target) {
			return "", errors.Wrapf(ErrMultiEdgeNotAllowed, "%s-%s already joined by %s", source, target, e.ID)
		}
	}

	return g.insertEdgeLocked(Edge{Source: source, Target: target, Weight: weight}), nil
}

// insertEdgeLocked assigns the next free ID when e.ID is empty and stores e.
// Caller holds muEdge.
func (g *Graph) insertEdgeLocked(e Edge) string {
	g.nextEdgeID++
	for e.ID == "" {
		id := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
		if _, taken := g.edges[id]; taken {
			g.nextEdgeID++
			continue
		}
		e.ID = id
	}
	g.edges[e.ID] = &e
	g.seq[e.ID] = g.nextEdgeID

	return e.ID
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) (Edge, error) {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, errors.Wrapf(ErrEdgeNotFound, "%q", eid)
	}
	delete(g.edges, eid)
	delete(g.seq, eid)

	return *e, nil
}

// RemoveEdgeBetween deletes the edge joining a and b in either direction.
// Complexity: O(E).
func (g *Graph) RemoveEdgeBetween(a, b string) (Edge, error) {
	e, ok := g.EdgeBetween(a, b)
	if !ok {
		return Edge{}, errors.Wrapf(ErrEdgeNotFound, "between %q and %q", a, b)
	}

	return g.RemoveEdge(e.ID)
}

// EdgeBetween returns the edge joining a and b in either direction.
// Complexity: O(E).
func (g *Graph) EdgeBetween(a, b string) (Edge, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	for _, e := range g.edges {
		if e.Joins(a, b) {
			return *e, true
		}
	}

	return Edge{}, false
}

// HasEdge reports whether a and b are joined.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.EdgeBetween(a, b)

	return ok
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return g.seq[out[i].ID] < g.seq[out[j].ID] })

	return out
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}
