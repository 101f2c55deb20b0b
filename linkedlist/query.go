package linkedlist

import (
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/value"
)

// Search scans from the head for the first node loosely equal to v.
// Result.Index and Result.NodeID identify the match; a miss returns
// ErrNotFound. Search never changes the list.
func (l List) Search(v value.Value, opts ...Option) (Result, error) {
	r := newRun(l, opts)
	r.step(l, nil, "Searching for %s", v)
	for i, node := range l.nodes {
		r.step(l, trace.Overlay{node.ID: trace.Searching}, "Checking position %d (value %s)", i, node.Value)
		if value.LooseEqual(node.Value, v) {
			r.step(l, trace.Overlay{node.ID: trace.Found}, "Found %s at position %d", v, i)
			return r.done(l, Result{Index: i, NodeID: node.ID})
		}
	}
	return r.fail(ErrNotFound, "%s not found in the list", v)
}

// Traverse visits every node once in order and ends with all nodes marked found.
func (l List) Traverse(opts ...Option) (Result, error) {
	r := newRun(l, opts)
	if l.Empty() {
		r.step(l, nil, "List is empty. Nothing to traverse")
		return r.done(l, Result{Index: -1})
	}
	for i, node := range l.nodes {
		r.step(l, trace.Overlay{node.ID: trace.Searching}, "Visiting position %d (value %s)", i, node.Value)
	}
	all := overlayRange(l, 0, l.Len(), trace.Found)
	if l.kind.Circular() {
		r.step(l, all, "Traversed %s; the tail links back to the head", plural(l.Len()))
	} else {
		r.step(l, all, "Traversed %s", plural(l.Len()))
	}
	return r.done(l, Result{Index: -1})
}

// FindMiddle locates the middle node with the slow/fast two-pointer walk.
// fast moves two positions per round and slow one, both starting at the
// head, until fast cannot advance; for an even length this lands on the
// second of the two middle nodes.
func (l List) FindMiddle(opts ...Option) (Result, error) {
	r := newRun(l, opts)
	n := l.Len()
	if n == 0 {
		r.step(l, nil, "List is empty")
		return r.done(l, Result{Index: -1})
	}

	slow, fast := 0, 0
	for fast < n-1 {
		ov := trace.Overlay{
			l.nodes[fast].ID:   trace.Runner,
			l.nodes[fast+1].ID: trace.Runner,
		}
		ov[l.nodes[slow].ID] = trace.Searching
		r.step(l, ov, "Slow pointer at position %d, fast pointer at position %d", slow, fast)
		fast += 2
		slow++
	}

	mid := l.nodes[slow]
	r.step(l, trace.Overlay{mid.ID: trace.Found}, "Middle element is %s", mid.Value)
	return r.done(l, Result{Index: slow, NodeID: mid.ID})
}
