// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors from external input, read-only getters and codecs.
// Policy:
//   - No traversal logic here.
//   - External input is sanitized once, in FromParts; everything downstream
//     may assume every edge names two existing, distinct nodes.

package core

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// FromParts builds a Graph from externally supplied nodes and edges, such as a
// decoded script or JSON document.
//
// Implementation:
//   - Stage 1: Add every node; empty or repeated IDs are an error.
//   - Stage 2: Add every edge in order. Edges naming an unknown node, self-loops
//     and second edges between an already joined pair are not stored; they are
//     returned in dropped, in input order.
//
// Behavior highlights:
//   - Edge IDs from the input are kept; missing ones are generated.
//   - Weights are kept as given and the graph is weighted when any is non-zero.
//
// Complexity:
//   - Time O(V + E²) for the pairwise duplicate scan, Space O(V + E).
func FromParts(nodes []Node, edges []Edge) (g *Graph, dropped []Edge, err error) {
	g = NewGraph()
	for _, e := range edges {
		if e.Weight != 0 {
			g.weighted = true
			break
		}
	}
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, nil, errors.Wrap(err, "core: from parts")
		}
	}

	for _, e := range edges {
		_, okS := g.nodes[e.Source]
		_, okT := g.nodes[e.Target]
		if !okS || !okT || e.Source == e.Target {
			dropped = append(dropped, e)
			continue
		}
		dup := false
		for _, have := range g.edges {
			if have.Joins(e.Source, e.Target) || (e.ID != "" && have.ID == e.ID) {
				dup = true
				break
			}
		}
		if dup {
			dropped = append(dropped, e)
			continue
		}
		g.insertEdgeLocked(e)
	}

	return g, dropped, nil
}

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.weighted
}

// GraphStats is a read-only summary of a graph.
type GraphStats struct {
	NodeCount  int  `json:"node_count" yaml:"node_count"`
	EdgeCount  int  `json:"edge_count" yaml:"edge_count"`
	Components int  `json:"components" yaml:"components"`
	Weighted   bool `json:"weighted" yaml:"weighted"`
}

// Stats counts nodes, edges and connected components.
// Complexity: O(V + E log E).
func (g *Graph) Stats() GraphStats {
	adj := g.Adjacency()
	seen := make(map[string]bool, len(adj))
	components := 0
	for _, id := range g.NodeIDs() {
		if seen[id] {
			continue
		}
		components++
		stack := []string{id}
		seen[id] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nb := range adj[cur] {
				if !seen[nb] {
					seen[nb] = true
					stack = append(stack, nb)
				}
			}
		}
	}

	return GraphStats{
		NodeCount:  len(adj),
		EdgeCount:  g.EdgeCount(),
		Components: components,
		Weighted:   g.Weighted(),
	}
}

// graphDoc is the serialized form of a Graph.
type graphDoc struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// MarshalJSON writes nodes in ID order and edges in insertion order.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(graphDoc{Nodes: g.Nodes(), Edges: g.Edges()})
}

// UnmarshalJSON replaces g with the decoded graph. Dangling edges are
// dropped silently, as in FromParts.
func (g *Graph) UnmarshalJSON(b []byte) error {
	var doc graphDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	return g.replace(doc)
}

// MarshalYAML mirrors MarshalJSON.
func (g *Graph) MarshalYAML() (interface{}, error) {
	return graphDoc{Nodes: g.Nodes(), Edges: g.Edges()}, nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (g *Graph) UnmarshalYAML(n *yaml.Node) error {
	var doc graphDoc
	if err := n.Decode(&doc); err != nil {
		return err
	}
	return g.replace(doc)
}

func (g *Graph) replace(doc graphDoc) error {
	out, _, err := FromParts(doc.Nodes, doc.Edges)
	if err != nil {
		return err
	}
	g.muNode.Lock()
	g.muEdge.Lock()
	g.weighted = out.weighted
	g.nodes, g.edges, g.seq, g.nextEdgeID = out.nodes, out.edges, out.seq, out.nextEdgeID
	g.muEdge.Unlock()
	g.muNode.Unlock()

	return nil
}
