// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodeIDs() return nodes in CompareIDs order.
//
// Concurrency:
//   - Node catalog protected by muNode; incident-edge cleanup under muEdge.
package core

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// AddNode inserts n. An empty Label defaults to the ID.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyNodeID).
//   - Stage 2: Under muNode write lock, reject an existing ID (ErrDuplicateNode).
//   - Stage 3: Store a private copy.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if n.Label == "" {
		n.Label = n.ID
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()
	if _, exists := g.nodes[n.ID]; exists {
		return errors.Wrapf(ErrDuplicateNode, "%q", n.ID)
	}
	g.nodes[n.ID] = &n

	return nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// MoveNode updates the canvas position of a node.
func (g *Graph) MoveNode(id string, x, y float64) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	n, ok := g.nodes[id]
	if !ok {
		return errors.Wrapf(ErrNodeNotFound, "%q", id)
	}
	n.X, n.Y = x, y

	return nil
}

// RemoveNode deletes the node and every incident edge, returning the removed
// edges in insertion order.
//
// Implementation:
//   - Stage 1: Validate ID; lock muNode then muEdge.
//   - Stage 2: Reject a missing node (ErrNodeNotFound).
//   - Stage 3: Drop incident edges, then the node.
//
// Complexity:
//   - Time O(E log E) for the ordered result, Space O(deg(v)).
func (g *Graph) RemoveNode(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return nil, errors.Wrapf(ErrNodeNotFound, "%q", id)
	}
	var removed []Edge
	for eid, e := range g.edges {
		if e.Source == id || e.Target == id {
			removed = append(removed, *e)
			delete(g.edges, eid)
		}
	}
	sort.Slice(removed, func(i, j int) bool { return g.seq[removed[i].ID] < g.seq[removed[j].ID] })
	for _, e := range removed {
		delete(g.seq, e.ID)
	}
	delete(g.nodes, id)

	return removed, nil
}

// Nodes returns copies of all nodes in CompareIDs order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return CompareIDs(out[i].ID, out[j].ID) < 0 })

	return out
}

// NodeIDs returns all node IDs in CompareIDs order.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	SortIDs(ids)

	return ids
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}
