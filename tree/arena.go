package tree

import (
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/value"
)

// side names the child slot a node hangs from.
type side uint8

const (
	leftSide side = iota
	rightSide
)

func (s side) String() string {
	if s == leftSide {
		return "left"
	}
	return "right"
}

// arena is the mutable working copy an operation edits before freezing the
// result into a new Tree.
type arena struct {
	kind  Kind
	root  string
	nodes map[string]*Node
	slots []string
}

// work copies t into a fresh arena.
func (t Tree) work() *arena {
	w := &arena{
		kind:  t.kind,
		root:  t.root,
		nodes: make(map[string]*Node, len(t.nodes)+1),
		slots: t.Slots(),
	}
	for id, n := range t.nodes {
		n := n
		w.nodes[id] = &n
	}
	return w
}

// freeze snapshots the arena into an immutable Tree.
func (w *arena) freeze() Tree {
	t := Tree{kind: w.kind, root: w.root}
	if len(w.nodes) > 0 {
		t.nodes = make(map[string]Node, len(w.nodes))
		for id, n := range w.nodes {
			t.nodes[id] = *n
		}
	}
	if w.kind.Heap() {
		t.slots = append([]string(nil), w.slots...)
	}
	return t
}

// emit records a snapshot of the arena when r is non-nil.
func (w *arena) emit(r *run, ov trace.Overlay, format string, args ...interface{}) {
	if r == nil {
		return
	}
	r.step(w.freeze(), ov, nil, format, args...)
}

func (w *arena) height(id string) int {
	if id == "" {
		return 0
	}
	return w.nodes[id].Height
}

func (w *arena) balance(id string) int {
	if id == "" {
		return 0
	}
	n := w.nodes[id]
	return w.height(n.Left) - w.height(n.Right)
}

func (w *arena) update(id string) {
	n := w.nodes[id]
	n.Height = 1 + max(w.height(n.Left), w.height(n.Right))
}

// locate descends by comparison. found reports an exact match at id; otherwise
// id is the parent under which v belongs, on side dir.
func (w *arena) locate(v value.Value) (id string, dir side, found bool) {
	for cur := w.root; cur != ""; {
		c := value.Compare(v, w.nodes[cur].Value)
		if c == 0 {
			return cur, dir, true
		}
		id = cur
		if c < 0 {
			dir, cur = leftSide, w.nodes[cur].Left
		} else {
			dir, cur = rightSide, w.nodes[cur].Right
		}
	}
	return id, dir, false
}

// attach creates a leaf under parent on side dir, or the root when parent is "".
func (w *arena) attach(id string, v value.Value, parent string, dir side) {
	w.nodes[id] = &Node{ID: id, Value: v, Parent: parent, Height: 1}
	switch {
	case parent == "":
		w.root = id
	case dir == leftSide:
		w.nodes[parent].Left = id
	default:
		w.nodes[parent].Right = id
	}
}

// replaceChild points parent's link from old to repl; an empty parent means
// the root changes.
func (w *arena) replaceChild(parent, old, repl string) {
	if parent == "" {
		w.root = repl
		return
	}
	p := w.nodes[parent]
	if p.Left == old {
		p.Left = repl
	} else if p.Right == old {
		p.Right = repl
	}
}

// splice removes a node with at most one child, lifting the child into its place.
func (w *arena) splice(id string) {
	n := w.nodes[id]
	child := n.Left
	if child == "" {
		child = n.Right
	}
	if child != "" {
		w.nodes[child].Parent = n.Parent
	}
	w.replaceChild(n.Parent, id, child)
	delete(w.nodes, id)
}

// rotateRight lifts y's left child x above y and returns x.
func (w *arena) rotateRight(yID string) string {
	y := w.nodes[yID]
	xID := y.Left
	x := w.nodes[xID]
	t2 := x.Right

	x.Right = yID
	y.Left = t2
	if t2 != "" {
		w.nodes[t2].Parent = yID
	}
	x.Parent = y.Parent
	y.Parent = xID
	w.replaceChild(x.Parent, yID, xID)

	w.update(yID)
	w.update(xID)
	return xID
}

// rotateLeft lifts x's right child y above x and returns y.
func (w *arena) rotateLeft(xID string) string {
	x := w.nodes[xID]
	yID := x.Right
	y := w.nodes[yID]
	t2 := y.Left

	y.Left = xID
	x.Right = t2
	if t2 != "" {
		w.nodes[t2].Parent = xID
	}
	y.Parent = x.Parent
	x.Parent = yID
	w.replaceChild(y.Parent, xID, yID)

	w.update(xID)
	w.update(yID)
	return yID
}

// retrace walks parent links from id to the root, refreshing heights and, for
// AVL, rebalancing each ancestor. One step is emitted per rotation.
func (w *arena) retrace(id string, r *run) {
	for id != "" {
		w.update(id)
		if w.kind == AVL {
			id = w.rebalance(id, r)
		}
		id = w.nodes[id].Parent
	}
}

// rebalance restores |balance| <= 1 at id and returns the subtree's new root.
// The rotation is chosen from the balance of the taller child, which covers
// both insertion and deletion: a child balance of 0 only arises after a
// delete and needs a single rotation.
func (w *arena) rebalance(id string, r *run) string {
	n := w.nodes[id]
	b := w.balance(id)
	switch {
	case b > 1 && w.balance(n.Left) >= 0:
		top := w.rotateRight(id)
		w.emit(r, trace.Overlay{id: trace.Processing, top: trace.Processing},
			"Left-Left case at %s: right rotation", n.Value)
		return top

	case b > 1:
		child := w.nodes[n.Left]
		mid := w.rotateLeft(n.Left)
		w.emit(r, trace.Overlay{child.ID: trace.Processing, mid: trace.Processing},
			"Left-Right case at %s: left rotation at %s", n.Value, child.Value)
		top := w.rotateRight(id)
		w.emit(r, trace.Overlay{id: trace.Processing, top: trace.Processing},
			"Left-Right case at %s: right rotation", n.Value)
		return top

	case b < -1 && w.balance(n.Right) <= 0:
		top := w.rotateLeft(id)
		w.emit(r, trace.Overlay{id: trace.Processing, top: trace.Processing},
			"Right-Right case at %s: left rotation", n.Value)
		return top

	case b < -1:
		child := w.nodes[n.Right]
		mid := w.rotateRight(n.Right)
		w.emit(r, trace.Overlay{child.ID: trace.Processing, mid: trace.Processing},
			"Right-Left case at %s: right rotation at %s", n.Value, child.Value)
		top := w.rotateLeft(id)
		w.emit(r, trace.Overlay{id: trace.Processing, top: trace.Processing},
			"Right-Left case at %s: left rotation", n.Value)
		return top
	}
	return id
}

// heapAppend adds a node in the next free slot and relinks.
func (w *arena) heapAppend(id string, v value.Value) {
	w.nodes[id] = &Node{ID: id, Value: v}
	w.slots = append(w.slots, id)
	w.relinkHeap()
}

// heapPop drops the last slot and relinks.
func (w *arena) heapPop() {
	last := w.slots[len(w.slots)-1]
	w.slots = w.slots[:len(w.slots)-1]
	delete(w.nodes, last)
	w.relinkHeap()
}

// relinkHeap derives every link and height from slot positions.
func (w *arena) relinkHeap() {
	w.root = slotID(w.slots, 0)
	for i, id := range w.slots {
		n := w.nodes[id]
		n.Parent = ""
		if i > 0 {
			n.Parent = w.slots[(i-1)/2]
		}
		n.Left = slotID(w.slots, 2*i+1)
		n.Right = slotID(w.slots, 2*i+2)
	}
	for i := len(w.slots) - 1; i >= 0; i-- {
		w.update(w.slots[i])
	}
}

func (w *arena) slotValue(i int) value.Value { return w.nodes[w.slots[i]].Value }

func (w *arena) swapSlots(i, j int) {
	a, b := w.nodes[w.slots[i]], w.nodes[w.slots[j]]
	a.Value, b.Value = b.Value, a.Value
}

// siftUp bubbles the value at slot i toward the root. Only values move; ids
// stay in their slots, so the overlay follows the moving value's slot.
func (w *arena) siftUp(i int, r *run) {
	for i > 0 {
		p := (i - 1) / 2
		cid, pid := w.slots[i], w.slots[p]
		cv, pv := w.slotValue(i), w.slotValue(p)
		w.emit(r, trace.Overlay{cid: trace.Comparing, pid: trace.Comparing},
			"Comparing %s with parent %s", cv, pv)
		if !outranks(w.kind, cv, pv) {
			w.emit(r, trace.Overlay{cid: trace.New}, "Heap property holds; %s stays at index %d", cv, i)
			return
		}
		w.swapSlots(i, p)
		w.emit(r, trace.Overlay{pid: trace.New}, "Swapped: %s moves up to index %d", cv, p)
		i = p
	}
}

// siftDown pushes the value at slot i down, each time swapping with the child
// that most violates heap order.
func (w *arena) siftDown(i int, r *run) {
	n := len(w.slots)
	pick := "larger"
	if w.kind == MinHeap {
		pick = "smaller"
	}
	for {
		target := i
		if l := 2*i + 1; l < n && outranks(w.kind, w.slotValue(l), w.slotValue(target)) {
			target = l
		}
		if rt := 2*i + 2; rt < n && outranks(w.kind, w.slotValue(rt), w.slotValue(target)) {
			target = rt
		}
		if target == i {
			w.emit(r, trace.Overlay{w.slots[i]: trace.New}, "Heap property holds; %s stays at index %d", w.slotValue(i), i)
			return
		}
		v := w.slotValue(i)
		w.emit(r, trace.Overlay{w.slots[i]: trace.Comparing, w.slots[target]: trace.Comparing},
			"%s is the %s child of %s", w.slotValue(target), pick, v)
		w.swapSlots(i, target)
		w.emit(r, trace.Overlay{w.slots[target]: trace.New}, "Swapped: %s moves down to index %d", v, target)
		i = target
	}
}
