// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID and edge sequence so future
//     AddEdge calls continue the same textual ID sequence on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and nodes, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	opts := []GraphOption{}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	clone := NewGraph(opts...)
	clone.nextEdgeID = g.nextEdgeID
	for id, n := range g.nodes {
		cp := *n
		clone.nodes[id] = &cp
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, nodes and edges.
// Graph snapshots in undo history are Clones.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	for eid, e := range g.edges {
		cp := *e
		clone.edges[eid] = &cp
		clone.seq[eid] = g.seq[eid]
	}

	return clone
}

// Clear resets the graph to the empty state but preserves flags.
func (g *Graph) Clear() {
	g.muNode.Lock()
	g.muEdge.Lock()
	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
	g.seq = make(map[string]uint64)
	g.nextEdgeID = 0
	g.muEdge.Unlock()
	g.muNode.Unlock()
}
