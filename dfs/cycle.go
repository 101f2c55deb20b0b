// File: cycle.go
// Role: Cycle detection for the undirected, simple core.Graph.
//
// DetectCycles walks every component with three-color marking. Each back edge
// to a Gray vertex closes exactly one cycle, so the cycles returned form a
// fundamental cycle basis of the graph (E - V + components of them), not every
// simple cycle. Each cycle is canonicalized with Booth's minimal rotation,
// and the list is sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = #cycles, L = avg cycle length)
//   - Memory: O(V + L_max)

package dfs

import (
	"sort"

	"github.com/katalvlaran/structviz/core"
)

// DetectCycles inspects graph g for cycles.
// Returns (true, cycles, nil) if any cycles are found, each closed
// ([v0, v1, ..., v0]); if none, returns (false, nil, nil).
// A nil graph is treated as cycle-free.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}

	// 2) Prepare visitation state
	adj := g.Adjacency()
	verts := g.NodeIDs()
	c := &cycleFinder{
		adj:   adj,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}, len(verts)),
	}

	// 3) Launch DFS from each unvisited vertex
	for _, v := range verts {
		if c.state[v] == White {
			c.visit(v, "")
		}
	}

	// 4) Sort cycles lexicographically by signature
	sort.Slice(c.cycles, func(i, j int) bool {
		return JoinSig(c.cycles[i]) < JoinSig(c.cycles[j])
	})

	// 5) Return whether any cycles were found
	if len(c.cycles) == 0 {
		return false, nil, nil
	}

	return true, c.cycles, nil
}

// cycleFinder holds the state of one DetectCycles run.
type cycleFinder struct {
	adj    map[string][]string
	state  map[string]int      // White, Gray or Black per vertex
	path   []string            // current DFS path
	seen   map[string]struct{} // canonical signatures already recorded
	cycles [][]string
}

// visit explores id, skipping the edge back to parent. Recursion depth is
// bounded by the longest DFS path, which is fine for graphs sized for display.
func (c *cycleFinder) visit(id, parent string) {
	// 1) Mark Gray and push onto the path
	c.state[id] = Gray
	c.path = append(c.path, id)

	// 2) Explore each neighbor
	for _, nbr := range c.adj[id] {
		if nbr == parent {
			continue
		}
		switch c.state[nbr] {
		case White:
			c.visit(nbr, id)
		case Gray:
			// back edge: path[idx:] + nbr is a cycle of length ≥ 3
			c.record(nbr)
		}
	}

	// 3) Backtrack
	c.path = c.path[:len(c.path)-1]
	c.state[id] = Black
}

// record extracts the cycle that ends at start and keeps it if new.
func (c *cycleFinder) record(start string) {
	idx := IndexOf(c.path, start)
	seq := append([]string(nil), c.path[idx:]...)
	seq = append(seq, start)

	sig, canon := canonical(seq)
	if _, exists := c.seen[sig]; !exists {
		c.seen[sig] = struct{}{}
		c.cycles = append(c.cycles, canon)
	}
}

// canonical picks the smaller of the minimal forward rotation and the minimal
// rotation of the reversal, then closes it. It returns the comma-joined
// signature together with the closed cycle.
func canonical(cycle []string) (string, []string) {
	n := len(cycle) - 1
	base := cycle[:n]

	rotF := MinimalRotation(base)
	rotB := MinimalRotation(Reverse(base))
	picker := rotF
	if Compare(rotB, rotF) < 0 {
		picker = rotB
	}

	closed := append(append([]string(nil), picker...), picker[0])

	return JoinSig(closed), closed
}
