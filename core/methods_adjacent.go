// File: methods_adjacent.go
// Role: Neighborhood APIs (Adjacency, Neighbors) and the ID ordering they share.
// Determinism:
//   - Neighbor lists are sorted by CompareIDs: numeric IDs ascending by value,
//     then non-numeric IDs lexicographically.
// Concurrency:
//   - Read operations hold muNode then muEdge read locks.

package core

import (
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
)

// CompareIDs orders node IDs for traversal. IDs that parse as integers come
// first in numeric order ("2" < "10"); all others follow lexicographically.
// Equal numeric values fall back to string order so the result is total.
func CompareIDs(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			if na < nb {
				return -1
			}
			return 1
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// SortIDs sorts ids in place by CompareIDs.
func SortIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool { return CompareIDs(ids[i], ids[j]) < 0 })
}

// Adjacency derives a fresh symmetric adjacency map from the current nodes
// and edges.
//
// Implementation:
//   - Stage 1: Seed an empty neighbor list for every node.
//   - Stage 2: For each edge with both endpoints present, append each endpoint
//     to the other's list. Edges naming unknown nodes are skipped.
//   - Stage 3: Sort every list by CompareIDs.
//
// Behavior highlights:
//   - Every node appears as a key, isolated nodes with an empty list.
//   - The map and its slices are owned by the caller.
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func (g *Graph) Adjacency() map[string][]string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	adj := make(map[string][]string, len(g.nodes))
	for id := range g.nodes {
		adj[id] = []string{}
	}
	for _, e := range g.edges {
		_, okS := g.nodes[e.Source]
		_, okT := g.nodes[e.Target]
		if !okS || !okT || e.Source == e.Target {
			continue
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}
	for _, nbrs := range adj {
		SortIDs(nbrs)
	}

	return adj
}

// Neighbors returns the sorted neighbor IDs of id.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity:
//   - Time O(E + d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "%q", id)
	}
	out := []string{}
	for _, e := range g.edges {
		switch {
		case e.Source == id && e.Target != id:
			if _, ok := g.nodes[e.Target]; ok {
				out = append(out, e.Target)
			}
		case e.Target == id && e.Source != id:
			if _, ok := g.nodes[e.Source]; ok {
				out = append(out, e.Source)
			}
		}
	}
	SortIDs(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) (int, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(nbrs), nil
}
