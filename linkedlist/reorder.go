package linkedlist

import (
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/value"
)

// Reverse flips the order of the list. Every forward link is redirected to
// the former predecessor and, for doubly kinds, every back link to the former
// successor. An empty list is a no-op.
func (l List) Reverse(opts ...Option) (Result, error) {
	r := newRun(l, opts)
	n := l.Len()
	if n == 0 {
		r.step(l, nil, "List is empty. Nothing to reverse")
		return r.done(l, Result{Index: -1})
	}

	r.step(l, nil, "Reversing list with %s", plural(n))
	for i := 0; i < n; i++ {
		r.step(l, overlayRange(l, 0, i+1, trace.Processing), "Redirecting the links of %s", l.nodes[i].Value)
	}

	rev := make([]Node, n)
	for i, node := range l.nodes {
		rev[n-1-i] = node
	}
	out := commit(l.kind, rev)
	r.step(out, nil, "List reversed successfully")
	return r.done(out, Result{Index: -1})
}

// Sort orders the list ascending with a bubble sort. Only strictly greater
// neighbours are exchanged, so equal values keep their relative order.
// Result.Swaps reports the number of exchanges.
func (l List) Sort(opts ...Option) (Result, error) {
	r := newRun(l, opts)
	n := l.Len()
	switch n {
	case 0:
		r.step(l, nil, "List is empty. Nothing to sort")
		return r.done(l, Result{Index: -1})
	case 1:
		r.step(l, nil, "List has only one node. Already sorted")
		return r.done(l, Result{Index: -1})
	}

	r.step(l, nil, "Sorting %s using bubble sort", plural(n))
	cur := l
	sorted := make(trace.Overlay, n)
	swaps := 0
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			a, b := cur.nodes[j], cur.nodes[j+1]
			ov := sorted.Clone()
			ov[a.ID], ov[b.ID] = trace.Searching, trace.Runner
			r.step(cur, ov, "Comparing %s and %s", a.Value, b.Value)

			if value.Compare(a.Value, b.Value) > 0 {
				nodes := cur.Nodes()
				nodes[j], nodes[j+1] = nodes[j+1], nodes[j]
				cur = commit(cur.kind, nodes)
				swaps++
				ov = sorted.Clone()
				ov[a.ID], ov[b.ID] = trace.Processing, trace.Processing
				r.step(cur, ov, "Swapped %s and %s", a.Value, b.Value)
			}
		}
		placed := cur.nodes[n-i-1]
		sorted[placed.ID] = trace.Found
		r.step(cur, sorted, "%s is in its final position", placed.Value)
	}
	sorted[cur.nodes[0].ID] = trace.Found
	r.step(cur, sorted, "All nodes are in order")

	if swaps == 1 {
		r.step(cur, nil, "Sort complete. Made 1 swap")
	} else {
		r.step(cur, nil, "Sort complete. Made %d swaps", swaps)
	}
	return r.done(cur, Result{Index: -1, Swaps: swaps})
}

// Clear removes every node. Clearing an empty list succeeds.
func (l List) Clear(opts ...Option) (Result, error) {
	r := newRun(l, opts)
	if l.Empty() {
		r.step(l, nil, "List is already empty")
		return r.done(l, Result{Index: -1})
	}
	r.step(l, overlayRange(l, 0, l.Len(), trace.Processing), "Clearing %s", plural(l.Len()))
	out := New(l.kind)
	r.step(out, nil, "List cleared")
	return r.done(out, Result{Index: -1})
}
