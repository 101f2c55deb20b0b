package tree

import (
	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/value"
)

// Insert adds v to t. Ordered kinds descend by comparison and reject
// duplicates with ErrDuplicate; AVL then rebalances bottom-up. Heaps append
// at the next free slot and sift up.
func (t Tree) Insert(v value.Value, gen ident.Generator, opts ...Option) (Result, error) {
	r := newRun(t, opts)
	if gen == nil {
		return r.fail(ErrNilGenerator, nil, "No id generator configured")
	}
	if t.kind.Heap() {
		return t.insertHeap(r, v, gen)
	}
	return t.insertOrdered(r, v, gen)
}

func (t Tree) insertOrdered(r *run, v value.Value, gen ident.Generator) (Result, error) {
	w := t.work()
	if w.root == "" {
		id := gen.Next()
		w.attach(id, v, "", leftSide)
		w.emit(r, trace.Overlay{id: trace.New}, "Inserted %s as the root", v)
		return r.commit(w, Result{Found: id})
	}

	// 1) Descend to the insertion point.
	r.step(t, nil, nil, "Inserting %s", v)
	cur := w.root
	var dir side
	for {
		n := w.nodes[cur]
		c := value.Compare(v, n.Value)
		if c == 0 {
			return r.fail(ErrDuplicate, trace.Overlay{cur: trace.Found}, "%s already exists in the tree", v)
		}
		next := n.Right
		dir = rightSide
		if c < 0 {
			next, dir = n.Left, leftSide
			r.step(t, trace.Overlay{cur: trace.Comparing}, nil, "%s < %s, go left", v, n.Value)
		} else {
			r.step(t, trace.Overlay{cur: trace.Comparing}, nil, "%s > %s, go right", v, n.Value)
		}
		if next == "" {
			break
		}
		cur = next
	}

	// 2) Attach the leaf.
	id := gen.Next()
	w.attach(id, v, cur, dir)
	w.emit(r, trace.Overlay{id: trace.New}, "Inserted %s as the %s child of %s", v, dir, w.nodes[cur].Value)

	// 3) Refresh heights and rebalance toward the root.
	w.retrace(cur, r)
	w.emit(r, nil, "Inserted %s. Tree has %s", v, plural(len(w.nodes)))
	return r.commit(w, Result{Found: id})
}

// descend follows comparisons from the root, emitting a searching step per
// visited node, and returns the id holding v.
func (t Tree) descend(r *run, v value.Value) (string, bool) {
	for cur := t.root; cur != ""; {
		n := t.nodes[cur]
		c := value.Compare(v, n.Value)
		switch {
		case c == 0:
			r.step(t, trace.Overlay{cur: trace.Searching}, nil, "Visiting %s", n.Value)
			return cur, true
		case c < 0:
			r.step(t, trace.Overlay{cur: trace.Searching}, nil, "Visiting %s: %s is smaller, go left", n.Value, v)
			cur = n.Left
		default:
			r.step(t, trace.Overlay{cur: trace.Searching}, nil, "Visiting %s: %s is larger, go right", n.Value, v)
			cur = n.Right
		}
	}
	return "", false
}

// Search looks v up in a BST or AVL tree. Heaps return ErrUnsupported.
func (t Tree) Search(v value.Value, opts ...Option) (Result, error) {
	r := newRun(t, opts)
	if t.kind.Heap() {
		return r.fail(ErrUnsupported, nil, "Search is not supported on a %s", t.kind)
	}
	if t.Empty() {
		return r.fail(ErrNotFound, nil, "Tree is empty. %s not found", v)
	}
	r.step(t, nil, nil, "Searching for %s", v)
	id, ok := t.descend(r, v)
	if !ok {
		return r.fail(ErrNotFound, nil, "%s not found in the tree", v)
	}
	r.step(t, trace.Overlay{id: trace.Found}, nil, "Found %s", v)
	return r.keep(Result{Found: id, Values: []value.Value{v}})
}

// Delete removes v from a BST or AVL tree.
//
// A node with two children takes the value of its in-order successor (the
// minimum of its right subtree), and the successor's own node is removed
// instead. AVL trees are then rebalanced from the physically removed node's
// parent up to the root.
func (t Tree) Delete(v value.Value, opts ...Option) (Result, error) {
	r := newRun(t, opts)
	if t.kind.Heap() {
		return r.fail(ErrUnsupported, nil, "Delete by value is not supported on a %s; use extract_root", t.kind)
	}
	if t.Empty() {
		return r.fail(ErrEmptyTree, nil, "Tree is empty. Cannot delete %s", v)
	}

	// 1) Find the target.
	r.step(t, nil, nil, "Searching for %s to delete", v)
	id, ok := t.descend(r, v)
	if !ok {
		return r.fail(ErrNotFound, nil, "%s not found in the tree", v)
	}
	w := t.work()
	target := w.nodes[id]
	r.step(t, trace.Overlay{id: trace.Processing}, nil, "Found %s", v)

	// 2) Remove it, via the successor when both children exist.
	var from string
	if target.Left != "" && target.Right != "" {
		succ := target.Right
		r.step(t, trace.Overlay{id: trace.Processing, succ: trace.Searching}, nil,
			"Looking for the in-order successor in the right subtree of %s", v)
		for w.nodes[succ].Left != "" {
			succ = w.nodes[succ].Left
			r.step(t, trace.Overlay{id: trace.Processing, succ: trace.Searching}, nil,
				"Going left to %s", w.nodes[succ].Value)
		}
		s := w.nodes[succ]
		r.step(t, trace.Overlay{id: trace.Processing, succ: trace.Found}, nil, "In-order successor is %s", s.Value)

		target.Value = s.Value
		w.emit(r, trace.Overlay{id: trace.New, succ: trace.Processing},
			"Copied %s into the node that held %s", s.Value, v)
		from = s.Parent
		w.splice(succ)
		w.emit(r, trace.Overlay{id: trace.New}, "Removed the successor's old node")
	} else {
		from = target.Parent
		leaf := target.Left == "" && target.Right == ""
		w.splice(id)
		if leaf {
			w.emit(r, nil, "Removed leaf %s", v)
		} else {
			w.emit(r, nil, "Removed %s and lifted its only child into its place", v)
		}
	}

	// 3) Heights and balance.
	w.retrace(from, r)
	w.emit(r, nil, "Deleted %s. Tree has %s", v, plural(len(w.nodes)))
	return r.commit(w, Result{})
}
