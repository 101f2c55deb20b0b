package linkedlist

import (
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/value"
)

// DeleteHead removes the first node. An empty list yields ErrEmptyList.
func (l List) DeleteHead(opts ...Option) (Result, error) {
	r := newRun(l, opts)
	if l.Empty() {
		return r.fail(ErrEmptyList, "List is empty. Cannot delete head")
	}
	head := l.nodes[0]
	r.step(l, trace.Overlay{head.ID: trace.Processing}, "Deleting head node with value %s", head.Value)

	out := commit(l.kind, removeAt(l.nodes, 0))
	r.step(out, nil, "Deleted. %s remaining", plural(out.Len()))
	return r.done(out, Result{Index: 0, NodeID: head.ID, Removed: &head})
}

// DeleteTail removes the last node. Kinds without back links first walk to
// the tail's predecessor, since that node's next link must be rewritten.
func (l List) DeleteTail(opts ...Option) (Result, error) {
	r := newRun(l, opts)
	if l.Empty() {
		return r.fail(ErrEmptyList, "List is empty. Cannot delete tail")
	}
	last := l.Len() - 1
	tail := l.nodes[last]

	if !l.kind.Doubly() && last > 0 {
		for i := 0; i < last; i++ {
			r.step(l, trace.Overlay{l.nodes[i].ID: trace.Searching}, "Walking to the node before the tail: position %d", i)
		}
	}
	r.step(l, trace.Overlay{tail.ID: trace.Processing}, "Deleting tail node with value %s", tail.Value)

	out := commit(l.kind, removeAt(l.nodes, last))
	r.step(out, nil, "Deleted. %s remaining", plural(out.Len()))
	return r.done(out, Result{Index: last, NodeID: tail.ID, Removed: &tail})
}

// DeleteAt removes the node at idx, valid in 0..Len()-1.
func (l List) DeleteAt(idx int, opts ...Option) (Result, error) {
	r := newRun(l, opts)
	if l.Empty() {
		return r.fail(ErrEmptyList, "List is empty. Cannot delete")
	}
	if idx < 0 || idx >= l.Len() {
		return r.fail(ErrIndexOutOfRange, "Invalid index %d. Please choose between 0 and %d", idx, l.Len()-1)
	}

	r.step(l, nil, "Navigating to position %d", idx)
	for i := 0; i <= idx; i++ {
		r.step(l, trace.Overlay{l.nodes[i].ID: trace.Searching}, "At position %d (value %s)", i, l.nodes[i].Value)
	}
	victim := l.nodes[idx]
	r.step(l, trace.Overlay{victim.ID: trace.Processing}, "Unlinking %s", victim.Value)

	out := commit(l.kind, removeAt(l.nodes, idx))
	r.step(out, nil, "Deleted %s at position %d. %s remaining", victim.Value, idx, plural(out.Len()))
	return r.done(out, Result{Index: idx, NodeID: victim.ID, Removed: &victim})
}

// DeleteValue removes the first node loosely equal to v.
func (l List) DeleteValue(v value.Value, opts ...Option) (Result, error) {
	r := newRun(l, opts)
	if l.Empty() {
		return r.fail(ErrEmptyList, "List is empty. Cannot delete %s", v)
	}

	r.step(l, nil, "Searching for %s to delete", v)
	for i, node := range l.nodes {
		r.step(l, trace.Overlay{node.ID: trace.Searching}, "Checking position %d (value %s)", i, node.Value)
		if !value.LooseEqual(node.Value, v) {
			continue
		}
		victim := node
		r.step(l, trace.Overlay{node.ID: trace.Processing}, "Found %s at position %d. Deleting now", v, i)
		out := commit(l.kind, removeAt(l.nodes, i))
		r.step(out, nil, "Deleted %s. %s remaining", v, plural(out.Len()))
		return r.done(out, Result{Index: i, NodeID: victim.ID, Removed: &victim})
	}
	return r.fail(ErrNotFound, "Value %s not found in the list", v)
}
