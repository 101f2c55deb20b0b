package linkedlist

import (
	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/value"
)

// InsertHead places a new node holding v before the current head.
//
// Circular kinds relink the tail to the new head; doubly kinds set the old
// head's back link to the new node.
//
// Complexity: O(n) to copy the sequence, O(1) link updates.
func (l List) InsertHead(v value.Value, gen ident.Generator, opts ...Option) (Result, error) {
	r := newRun(l, opts)
	if gen == nil {
		return r.fail(ErrNilGenerator, "No id generator configured")
	}

	// 1) Highlight the current head, if any.
	var ov trace.Overlay
	if head, ok := l.Head(); ok {
		ov = trace.Overlay{head.ID: trace.Processing}
	}
	r.step(l, ov, "Inserting %s at head", v)

	// 2) Splice the new node in front and relink.
	node := Node{ID: gen.Next(), Value: v}
	out := commit(l.kind, insertAt(l.nodes, 0, node))
	r.step(out, trace.Overlay{node.ID: trace.New}, "Created node %s and linked it before the old head", v)

	r.step(out, nil, "%s is now the head node", v)
	return r.done(out, Result{Index: 0, NodeID: node.ID})
}

// InsertTail appends a new node holding v after the current tail.
func (l List) InsertTail(v value.Value, gen ident.Generator, opts ...Option) (Result, error) {
	r := newRun(l, opts)
	if gen == nil {
		return r.fail(ErrNilGenerator, "No id generator configured")
	}

	var ov trace.Overlay
	if tail, ok := l.Tail(); ok {
		ov = trace.Overlay{tail.ID: trace.Processing}
	}
	r.step(l, ov, "Inserting %s at tail", v)

	node := Node{ID: gen.Next(), Value: v}
	out := commit(l.kind, insertAt(l.nodes, len(l.nodes), node))
	r.step(out, trace.Overlay{node.ID: trace.New}, "Linked %s after the old tail", v)

	r.step(out, nil, "%s added. List now has %s", v, plural(out.Len()))
	return r.done(out, Result{Index: out.Len() - 1, NodeID: node.ID})
}

// InsertAt places a new node holding v so that it ends up at position idx.
// Valid positions are 0..Len() inclusive; anything else is rejected with
// ErrIndexOutOfRange and the list is returned unchanged.
func (l List) InsertAt(idx int, v value.Value, gen ident.Generator, opts ...Option) (Result, error) {
	r := newRun(l, opts)
	if gen == nil {
		return r.fail(ErrNilGenerator, "No id generator configured")
	}
	if idx < 0 || idx > l.Len() {
		return r.fail(ErrIndexOutOfRange, "Invalid index %d. Please choose between 0 and %d", idx, l.Len())
	}

	// 1) Walk to the insertion point.
	r.step(l, nil, "Navigating to position %d", idx)
	for i := 0; i < idx; i++ {
		r.step(l, trace.Overlay{l.nodes[i].ID: trace.Searching}, "At position %d (value %s)", i, l.nodes[i].Value)
	}

	// 2) Splice and relink.
	node := Node{ID: gen.Next(), Value: v}
	out := commit(l.kind, insertAt(l.nodes, idx, node))
	r.step(out, trace.Overlay{node.ID: trace.New}, "Inserted %s at position %d", v, idx)

	r.step(out, nil, "List now has %s", plural(out.Len()))
	return r.done(out, Result{Index: idx, NodeID: node.ID})
}
