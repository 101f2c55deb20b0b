package linkedlist

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/value"
)

// Node is one element of a List. Next and Prev hold node ids; the empty
// string is a null link. Prev is only set for doubly kinds.
type Node struct {
	ID    string      `json:"id" yaml:"id"`
	Value value.Value `json:"value" yaml:"value"`
	Next  string      `json:"next,omitempty" yaml:"next,omitempty"`
	Prev  string      `json:"prev,omitempty" yaml:"prev,omitempty"`
}

// List is an immutable sequence of nodes. Every operation returns a new List;
// accessors hand out copies. The zero List is an empty singly list.
type List struct {
	kind  Kind
	nodes []Node
}

// New returns an empty list of the given kind.
func New(kind Kind) List { return List{kind: kind} }

// FromValues builds a list holding vals in order, drawing ids from gen.
func FromValues(kind Kind, gen ident.Generator, vals ...value.Value) (List, error) {
	if gen == nil {
		return List{}, ErrNilGenerator
	}
	nodes := make([]Node, len(vals))
	for i, v := range vals {
		nodes[i] = Node{ID: gen.Next(), Value: v}
	}
	return commit(kind, nodes), nil
}

// FromNodes rebuilds a list from an external node sequence. Links are
// recomputed from order; ids must be non-empty and unique.
func FromNodes(kind Kind, nodes []Node) (List, error) {
	seen := make(map[string]struct{}, len(nodes))
	for i, n := range nodes {
		if n.ID == "" {
			return List{}, errors.Newf("linkedlist: node %d has an empty id", i)
		}
		if _, dup := seen[n.ID]; dup {
			return List{}, errors.Newf("linkedlist: duplicate node id %q", n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	return commit(kind, append([]Node(nil), nodes...)), nil
}

// Kind returns the topology of l.
func (l List) Kind() Kind { return l.kind }

// Len returns the number of nodes.
func (l List) Len() int { return len(l.nodes) }

// Empty reports whether l has no nodes.
func (l List) Empty() bool { return len(l.nodes) == 0 }

// Nodes returns a copy of the node sequence in order from head.
func (l List) Nodes() []Node { return append([]Node(nil), l.nodes...) }

// Values returns the node values in order.
func (l List) Values() []value.Value {
	out := make([]value.Value, len(l.nodes))
	for i, n := range l.nodes {
		out[i] = n.Value
	}
	return out
}

// IDs returns the node ids in order.
func (l List) IDs() []string {
	out := make([]string, len(l.nodes))
	for i, n := range l.nodes {
		out[i] = n.ID
	}
	return out
}

// At returns the node at index i.
func (l List) At(i int) (Node, bool) {
	if i < 0 || i >= len(l.nodes) {
		return Node{}, false
	}
	return l.nodes[i], true
}

// Head returns the first node.
func (l List) Head() (Node, bool) { return l.At(0) }

// Tail returns the last node.
func (l List) Tail() (Node, bool) { return l.At(len(l.nodes) - 1) }

// IndexOf returns the position of the node with id, or -1.
func (l List) IndexOf(id string) int {
	for i, n := range l.nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of l.
func (l List) Clone() List {
	return List{kind: l.kind, nodes: l.Nodes()}
}

// WithKind returns the same sequence relinked for another topology.
func (l List) WithKind(kind Kind) List {
	return commit(kind, l.Nodes())
}

// commit relinks nodes for kind and asserts the link invariants.
// It takes ownership of nodes.
func commit(kind Kind, nodes []Node) List {
	relink(kind, nodes)
	l := List{kind: kind, nodes: nodes}
	if err := l.Validate(); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "linkedlist: commit produced an inconsistent list"))
	}
	return l
}

// relink rewrites every Next and Prev from sequence order.
func relink(kind Kind, nodes []Node) {
	n := len(nodes)
	for i := range nodes {
		nodes[i].Next, nodes[i].Prev = "", ""
		switch {
		case i+1 < n:
			nodes[i].Next = nodes[i+1].ID
		case kind.Circular():
			nodes[i].Next = nodes[0].ID
		}
		if !kind.Doubly() {
			continue
		}
		switch {
		case i > 0:
			nodes[i].Prev = nodes[i-1].ID
		case kind.Circular():
			nodes[i].Prev = nodes[n-1].ID
		}
	}
}

// Validate checks the link invariants of l:
//
//   - ids are non-empty and unique, and every link names a node of l;
//   - following Next from the head reaches every node exactly once;
//   - non-circular: the tail's Next is null and exactly one node (the head)
//     has no incoming Next;
//   - circular: the walk returns to the head after Len steps (one cycle);
//   - doubly: every forward link is mirrored by a back link; singly kinds
//     carry no back links.
func (l List) Validate() error {
	n := len(l.nodes)
	if n == 0 {
		return nil
	}
	byID := make(map[string]int, n)
	for i, node := range l.nodes {
		if node.ID == "" {
			return errors.Newf("node %d has an empty id", i)
		}
		if _, dup := byID[node.ID]; dup {
			return errors.Newf("duplicate id %q", node.ID)
		}
		byID[node.ID] = i
	}

	incoming := make(map[string]int, n)
	for _, node := range l.nodes {
		if node.Next != "" {
			if _, ok := byID[node.Next]; !ok {
				return errors.Newf("node %q links to unknown %q", node.ID, node.Next)
			}
			incoming[node.Next]++
		}
		if !l.kind.Doubly() && node.Prev != "" {
			return errors.Newf("%s node %q carries a back link", l.kind, node.ID)
		}
	}

	// walk from the head
	seen := make(map[string]bool, n)
	cur := l.nodes[0].ID
	for steps := 0; steps < n; steps++ {
		if cur == "" {
			return errors.Newf("walk ended after %d of %d nodes", steps, n)
		}
		if seen[cur] {
			return errors.Newf("node %q reached twice", cur)
		}
		seen[cur] = true
		cur = l.nodes[byID[cur]].Next
	}
	if l.kind.Circular() {
		if cur != l.nodes[0].ID {
			return errors.Newf("circular walk does not return to head (at %q)", cur)
		}
	} else {
		if cur != "" {
			return errors.Newf("tail links to %q in a non-circular list", cur)
		}
		heads := 0
		for _, node := range l.nodes {
			if incoming[node.ID] == 0 {
				heads++
			}
		}
		if heads != 1 {
			return errors.Newf("expected one head, found %d", heads)
		}
	}

	if l.kind.Doubly() {
		for _, node := range l.nodes {
			if node.Next == "" {
				continue
			}
			if back := l.nodes[byID[node.Next]].Prev; back != node.ID {
				return errors.Newf("asymmetric link %q -> %q (back link %q)", node.ID, node.Next, back)
			}
		}
		if !l.kind.Circular() && l.nodes[0].Prev != "" {
			return errors.Newf("head %q has a back link", l.nodes[0].ID)
		}
	}
	return nil
}

// insertAt returns a copy of nodes with node spliced in at idx.
func insertAt(nodes []Node, idx int, node Node) []Node {
	out := make([]Node, 0, len(nodes)+1)
	out = append(out, nodes[:idx]...)
	out = append(out, node)
	return append(out, nodes[idx:]...)
}

// removeAt returns a copy of nodes without the element at idx.
func removeAt(nodes []Node, idx int) []Node {
	out := make([]Node, 0, len(nodes)-1)
	out = append(out, nodes[:idx]...)
	return append(out, nodes[idx+1:]...)
}

// listDoc is the serialized form of a List.
type listDoc struct {
	Kind  Kind   `json:"kind" yaml:"kind"`
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// MarshalJSON writes the kind and the linked node sequence.
func (l List) MarshalJSON() ([]byte, error) {
	return json.Marshal(listDoc{Kind: l.kind, Nodes: l.Nodes()})
}

// UnmarshalJSON rebuilds a list; links in the input are ignored and recomputed.
func (l *List) UnmarshalJSON(b []byte) error {
	var doc listDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	out, err := FromNodes(doc.Kind, doc.Nodes)
	if err != nil {
		return err
	}
	*l = out
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (l List) MarshalYAML() (interface{}, error) {
	return listDoc{Kind: l.kind, Nodes: l.Nodes()}, nil
}

// UnmarshalYAML reverses MarshalYAML through FromNodes.
func (l *List) UnmarshalYAML(n *yaml.Node) error {
	var doc listDoc
	if err := n.Decode(&doc); err != nil {
		return err
	}
	out, err := FromNodes(doc.Kind, doc.Nodes)
	if err != nil {
		return err
	}
	*l = out
	return nil
}
