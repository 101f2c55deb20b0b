package tree

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/value"
)

// Node is one tree node. Left, Right and Parent are node ids; the empty string
// is null. Parent is a navigation back-reference only.
type Node struct {
	ID     string      `json:"id" yaml:"id"`
	Value  value.Value `json:"value" yaml:"value"`
	Left   string      `json:"left,omitempty" yaml:"left,omitempty"`
	Right  string      `json:"right,omitempty" yaml:"right,omitempty"`
	Parent string      `json:"parent,omitempty" yaml:"parent,omitempty"`
	Height int         `json:"height" yaml:"height"`
}

// Tree is an immutable binary tree. Nodes live in an arena keyed by id; heap
// kinds additionally keep the implicit array order in slots, from which all
// links are derived. The zero Tree is an empty BST.
type Tree struct {
	kind  Kind
	root  string
	nodes map[string]Node
	slots []string
}

// New returns an empty tree of the given kind.
func New(kind Kind) Tree { return Tree{kind: kind} }

// Build inserts vals in order without recording a trace. Duplicates in
// ordered kinds are skipped.
func Build(kind Kind, gen ident.Generator, vals ...value.Value) (Tree, error) {
	if gen == nil {
		return Tree{}, ErrNilGenerator
	}
	w := New(kind).work()
	for _, v := range vals {
		if kind.Heap() {
			w.heapAppend(gen.Next(), v)
			w.siftUp(len(w.slots)-1, nil)
			continue
		}
		parent, dir, found := w.locate(v)
		if found {
			continue
		}
		w.attach(gen.Next(), v, parent, dir)
		w.retrace(parent, nil)
	}
	return w.freeze(), nil
}

// Kind returns the discipline of t.
func (t Tree) Kind() Kind { return t.kind }

// Len returns the number of nodes.
func (t Tree) Len() int { return len(t.nodes) }

// Empty reports whether t has no nodes.
func (t Tree) Empty() bool { return len(t.nodes) == 0 }

// Root returns the root node.
func (t Tree) Root() (Node, bool) {
	if t.root == "" {
		return Node{}, false
	}
	return t.nodes[t.root], true
}

// Node returns the node with id.
func (t Tree) Node(id string) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Slots returns the heap array order of node ids; nil for ordered kinds.
func (t Tree) Slots() []string { return append([]string(nil), t.slots...) }

// HeapValues returns the values in heap array order.
func (t Tree) HeapValues() []value.Value {
	out := make([]value.Value, len(t.slots))
	for i, id := range t.slots {
		out[i] = t.nodes[id].Value
	}
	return out
}

// Clone returns a deep copy of t.
func (t Tree) Clone() Tree {
	c := Tree{kind: t.kind, root: t.root, slots: t.Slots()}
	if t.nodes != nil {
		c.nodes = make(map[string]Node, len(t.nodes))
		for id, n := range t.nodes {
			c.nodes[id] = n
		}
	}
	return c
}

// Validate checks the structural invariants of t:
//
//   - links are symmetric (a child's Parent names its parent) and every id exists;
//   - every node is reachable from the root exactly once (no cycles);
//   - BST/AVL: in-order values are strictly increasing;
//   - AVL: heights are exact and every balance factor lies in [-1, 1];
//   - heaps: links follow the slot arithmetic and heap order holds.
func (t Tree) Validate() error {
	if t.root == "" {
		if len(t.nodes) != 0 {
			return errors.Newf("no root but %d nodes", len(t.nodes))
		}
		return nil
	}
	root, ok := t.nodes[t.root]
	if !ok {
		return errors.Newf("root %q missing from arena", t.root)
	}
	if root.Parent != "" {
		return errors.Newf("root %q has parent %q", root.ID, root.Parent)
	}

	seen := make(map[string]bool, len(t.nodes))
	var inorder []value.Value
	var walk func(id string, depth int) (int, error)
	walk = func(id string, depth int) (int, error) {
		if id == "" {
			return 0, nil
		}
		if seen[id] {
			return 0, errors.Newf("node %q reached twice", id)
		}
		if depth > len(t.nodes) {
			return 0, errors.Newf("depth exceeds node count at %q", id)
		}
		seen[id] = true
		n, ok := t.nodes[id]
		if !ok {
			return 0, errors.Newf("dangling child id %q", id)
		}
		for _, c := range [2]string{n.Left, n.Right} {
			if c == "" {
				continue
			}
			child, ok := t.nodes[c]
			if !ok {
				return 0, errors.Newf("node %q links to unknown %q", id, c)
			}
			if child.Parent != id {
				return 0, errors.Newf("child %q of %q names parent %q", c, id, child.Parent)
			}
		}
		lh, err := walk(n.Left, depth+1)
		if err != nil {
			return 0, err
		}
		inorder = append(inorder, n.Value)
		rh, err := walk(n.Right, depth+1)
		if err != nil {
			return 0, err
		}
		h := 1 + max(lh, rh)
		if t.kind == AVL {
			if n.Height != h {
				return 0, errors.Newf("node %q height %d, want %d", id, n.Height, h)
			}
			if b := lh - rh; b > 1 || b < -1 {
				return 0, errors.Newf("node %q balance factor %d", id, b)
			}
		}
		return h, nil
	}
	if _, err := walk(t.root, 0); err != nil {
		return err
	}
	if len(seen) != len(t.nodes) {
		return errors.Newf("%d of %d nodes unreachable from root", len(t.nodes)-len(seen), len(t.nodes))
	}

	if !t.kind.Heap() {
		for i := 1; i < len(inorder); i++ {
			if value.Compare(inorder[i-1], inorder[i]) >= 0 {
				return errors.Newf("ordering broken: %s before %s", inorder[i-1], inorder[i])
			}
		}
		return nil
	}
	return t.validateHeap()
}

func (t Tree) validateHeap() error {
	if len(t.slots) != len(t.nodes) {
		return errors.Newf("%d slots for %d nodes", len(t.slots), len(t.nodes))
	}
	if t.slots[0] != t.root {
		return errors.Newf("slot 0 is %q but root is %q", t.slots[0], t.root)
	}
	for i, id := range t.slots {
		n := t.nodes[id]
		if want := slotID(t.slots, 2*i+1); n.Left != want {
			return errors.Newf("slot %d left is %q, want %q", i, n.Left, want)
		}
		if want := slotID(t.slots, 2*i+2); n.Right != want {
			return errors.Newf("slot %d right is %q, want %q", i, n.Right, want)
		}
		if i == 0 {
			continue
		}
		p := t.nodes[t.slots[(i-1)/2]]
		if outranks(t.kind, n.Value, p.Value) {
			return errors.Newf("heap order broken: %s under %s", n.Value, p.Value)
		}
	}
	return nil
}

// slotID returns slots[i] or "" when i is past the end.
func slotID(slots []string, i int) string {
	if i < len(slots) {
		return slots[i]
	}
	return ""
}

// outranks reports whether a must sit above b in a heap of kind k.
func outranks(k Kind, a, b value.Value) bool {
	if k == MaxHeap {
		return value.Compare(a, b) > 0
	}
	return value.Compare(a, b) < 0
}
