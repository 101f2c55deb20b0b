package tree

import "github.com/katalvlaran/structviz/value"

// Stats summarizes a tree.
type Stats struct {
	Count    int          `json:"count" yaml:"count"`
	Height   int          `json:"height" yaml:"height"`
	Balanced bool         `json:"balanced" yaml:"balanced"`
	Min      *value.Value `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *value.Value `json:"max,omitempty" yaml:"max,omitempty"`
}

// StatsOf computes node count, height, the balanced flag and min/max.
//
// The balanced check recomputes subtree heights at every node, O(n²) in the
// worst case. Min/max come from the leftmost/rightmost descent for ordered
// kinds and from a scan of the array for heaps.
func StatsOf(t Tree) Stats {
	s := Stats{
		Count:    count(t, t.root),
		Height:   height(t, t.root),
		Balanced: balanced(t, t.root),
	}
	if t.root == "" {
		return s
	}
	var lo, hi value.Value
	if t.kind.Heap() {
		vals := t.HeapValues()
		lo, hi = vals[0], vals[0]
		for _, v := range vals[1:] {
			if value.Less(v, lo) {
				lo = v
			}
			if value.Less(hi, v) {
				hi = v
			}
		}
	} else {
		id := t.root
		for t.nodes[id].Left != "" {
			id = t.nodes[id].Left
		}
		lo = t.nodes[id].Value
		id = t.root
		for t.nodes[id].Right != "" {
			id = t.nodes[id].Right
		}
		hi = t.nodes[id].Value
	}
	s.Min, s.Max = &lo, &hi
	return s
}

func count(t Tree, id string) int {
	if id == "" {
		return 0
	}
	n := t.nodes[id]
	return 1 + count(t, n.Left) + count(t, n.Right)
}

func height(t Tree, id string) int {
	if id == "" {
		return 0
	}
	n := t.nodes[id]
	return 1 + max(height(t, n.Left), height(t, n.Right))
}

func balanced(t Tree, id string) bool {
	if id == "" {
		return true
	}
	n := t.nodes[id]
	d := height(t, n.Left) - height(t, n.Right)
	return d <= 1 && d >= -1 && balanced(t, n.Left) && balanced(t, n.Right)
}
