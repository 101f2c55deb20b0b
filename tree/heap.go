package tree

import (
	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/value"
)

// insertHeap appends v at the next free slot and sifts it up.
func (t Tree) insertHeap(r *run, v value.Value, gen ident.Generator) (Result, error) {
	w := t.work()
	id := gen.Next()
	w.heapAppend(id, v)
	w.emit(r, trace.Overlay{id: trace.New}, "Added %s at index %d", v, len(w.slots)-1)

	w.siftUp(len(w.slots)-1, r)
	w.emit(r, nil, "Inserted %s. Heap has %s", v, plural(len(w.slots)))
	return r.commit(w, Result{Found: id})
}

// ExtractRoot removes the top of a heap: the last slot's value moves into the
// root, the last slot is dropped, and the root value sifts down. A single-node
// heap simply becomes empty. Ordered kinds return ErrUnsupported.
func (t Tree) ExtractRoot(opts ...Option) (Result, error) {
	r := newRun(t, opts)
	if !t.kind.Heap() {
		return r.fail(ErrUnsupported, nil, "Extract root is only supported on heaps, not on a %s", t.kind)
	}
	if t.Empty() {
		return r.fail(ErrEmptyTree, nil, "Heap is empty. Nothing to extract")
	}

	w := t.work()
	top := w.slotValue(0)
	r.step(t, trace.Overlay{w.slots[0]: trace.Processing}, nil, "Extracting root %s", top)

	if len(w.slots) == 1 {
		w.heapPop()
		w.emit(r, nil, "Extracted %s. Heap is now empty", top)
		return r.commit(w, Result{Extracted: &top})
	}

	last := len(w.slots) - 1
	lastVal := w.slotValue(last)
	w.emit(r, trace.Overlay{w.slots[0]: trace.Processing, w.slots[last]: trace.Comparing},
		"Moving last value %s to the root", lastVal)
	w.nodes[w.slots[0]].Value = lastVal
	w.heapPop()
	w.emit(r, trace.Overlay{w.slots[0]: trace.New}, "Removed the last slot; %s is at the root", lastVal)

	w.siftDown(0, r)
	w.emit(r, nil, "Extracted %s. Heap has %s", top, plural(len(w.slots)))
	return r.commit(w, Result{Extracted: &top, Values: []value.Value{top}})
}

// Heapify appends vals in array order and restores heap order bottom-up,
// sifting down every internal slot from the last parent to the root.
func (t Tree) Heapify(vals []value.Value, gen ident.Generator, opts ...Option) (Result, error) {
	r := newRun(t, opts)
	if !t.kind.Heap() {
		return r.fail(ErrUnsupported, nil, "Heapify is only supported on heaps, not on a %s", t.kind)
	}
	if gen == nil {
		return r.fail(ErrNilGenerator, nil, "No id generator configured")
	}
	if len(vals) == 0 {
		r.step(t, nil, nil, "No values to add")
		return r.keep(Result{})
	}

	w := t.work()
	added := make(trace.Overlay, len(vals))
	for _, v := range vals {
		id := gen.Next()
		w.heapAppend(id, v)
		added[id] = trace.New
	}
	w.emit(r, added, "Placed %d values in array order", len(vals))

	for i := len(w.slots)/2 - 1; i >= 0; i-- {
		w.emit(r, trace.Overlay{w.slots[i]: trace.Processing}, "Sifting down index %d (%s)", i, w.slotValue(i))
		w.siftDown(i, r)
	}
	w.emit(r, nil, "Heap built with %s", plural(len(w.slots)))
	return r.commit(w, Result{})
}
