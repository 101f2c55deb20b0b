package tree

import (
	"strings"

	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/value"
)

// Traverse visits every node in the given order. Each step marks one more
// node visited and extends the path of visited values.
func (t Tree) Traverse(order Order, opts ...Option) (Result, error) {
	r := newRun(t, opts)
	if t.Empty() {
		r.step(t, nil, nil, "Tree is empty")
		return r.keep(Result{})
	}

	ids := t.Order(order)
	visited := make(trace.Overlay, len(ids))
	path := make([]string, 0, len(ids))
	vals := make([]value.Value, 0, len(ids))
	for _, id := range ids {
		v := t.nodes[id].Value
		visited[id] = trace.Visited
		path = append(path, v.String())
		vals = append(vals, v)
		r.step(t, visited, path, "Visited %s", v)
	}
	r.step(t, visited, path, "%s traversal: %s", orderTitles[order], strings.Join(path, ", "))
	return r.keep(Result{Values: vals})
}

// Order returns node ids in the given traversal order.
func (t Tree) Order(order Order) []string {
	out := make([]string, 0, len(t.nodes))
	if t.root == "" {
		return out
	}
	if order == LevelOrder {
		queue := []string{t.root}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			out = append(out, id)
			n := t.nodes[id]
			if n.Left != "" {
				queue = append(queue, n.Left)
			}
			if n.Right != "" {
				queue = append(queue, n.Right)
			}
		}
		return out
	}

	var walk func(id string)
	walk = func(id string) {
		if id == "" {
			return
		}
		n := t.nodes[id]
		if order == PreOrder {
			out = append(out, id)
		}
		walk(n.Left)
		if order == InOrder {
			out = append(out, id)
		}
		walk(n.Right)
		if order == PostOrder {
			out = append(out, id)
		}
	}
	walk(t.root)
	return out
}

// FindMin reports the smallest value.
func (t Tree) FindMin(opts ...Option) (Result, error) { return t.extreme(false, opts) }

// FindMax reports the largest value.
func (t Tree) FindMax(opts ...Option) (Result, error) { return t.extreme(true, opts) }

// extreme walks to the leftmost or rightmost node of an ordered tree; a heap
// answers its own extreme from the root and scans the array for the other.
func (t Tree) extreme(wantMax bool, opts []Option) (Result, error) {
	r := newRun(t, opts)
	label := "Minimum"
	if wantMax {
		label = "Maximum"
	}
	if t.Empty() {
		r.step(t, nil, nil, "Tree is empty. No %s value", strings.ToLower(label))
		return r.keep(Result{})
	}

	var best string
	switch {
	case (t.kind == MaxHeap && wantMax) || (t.kind == MinHeap && !wantMax):
		best = t.root
		r.step(t, trace.Overlay{best: trace.Searching}, nil, "The root of a %s holds the %s", t.kind, strings.ToLower(label))

	case t.kind.Heap():
		best = t.slots[0]
		for i, id := range t.slots {
			r.step(t, trace.Overlay{id: trace.Searching, best: trace.Comparing}, nil,
				"Checking index %d (%s)", i, t.nodes[id].Value)
			c := value.Compare(t.nodes[id].Value, t.nodes[best].Value)
			if (wantMax && c > 0) || (!wantMax && c < 0) {
				best = id
			}
		}

	default:
		best = t.root
		for {
			r.step(t, trace.Overlay{best: trace.Searching}, nil, "Visiting %s", t.nodes[best].Value)
			next := t.nodes[best].Left
			if wantMax {
				next = t.nodes[best].Right
			}
			if next == "" {
				break
			}
			best = next
		}
	}

	v := t.nodes[best].Value
	r.step(t, trace.Overlay{best: trace.Found}, nil, "%s value is %s", label, v)
	return r.keep(Result{Found: best, Values: []value.Value{v}})
}

// Height reports the number of levels.
func (t Tree) Height(opts ...Option) (Result, error) {
	r := newRun(t, opts)
	h := height(t, t.root)
	if h == 0 {
		r.step(t, nil, nil, "Tree is empty. Height is 0")
	} else {
		r.step(t, nil, nil, "Tree height is %d", h)
	}
	return r.keep(Result{Height: h})
}

// Clear removes every node. The kind is kept.
func (t Tree) Clear(opts ...Option) (Result, error) {
	r := newRun(t, opts)
	if t.Empty() {
		r.step(t, nil, nil, "Tree is already empty")
		return r.keep(Result{})
	}
	all := make(trace.Overlay, len(t.nodes))
	for id := range t.nodes {
		all[id] = trace.Processing
	}
	r.step(t, all, nil, "Clearing %s", plural(len(t.nodes)))
	w := New(t.kind).work()
	w.emit(r, nil, "Tree cleared")
	return r.commit(w, Result{})
}
