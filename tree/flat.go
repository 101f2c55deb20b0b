package tree

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/structviz/value"
)

// FlatNode is the id-referencing serialized form of a node, with its depth.
type FlatNode struct {
	ID     string      `json:"id" yaml:"id"`
	Value  value.Value `json:"value" yaml:"value"`
	Left   string      `json:"left,omitempty" yaml:"left,omitempty"`
	Right  string      `json:"right,omitempty" yaml:"right,omitempty"`
	Parent string      `json:"parent,omitempty" yaml:"parent,omitempty"`
	Height int         `json:"height" yaml:"height"`
	Level  int         `json:"level" yaml:"level"`
}

// Flatten lists the nodes of t in level order with their depth. For heaps
// level order is exactly the array order.
func Flatten(t Tree) []FlatNode {
	out := make([]FlatNode, 0, len(t.nodes))
	if t.root == "" {
		return out
	}
	type item struct {
		id    string
		level int
	}
	queue := []item{{t.root, 0}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		n := t.nodes[it.id]
		out = append(out, FlatNode{
			ID: n.ID, Value: n.Value,
			Left: n.Left, Right: n.Right, Parent: n.Parent,
			Height: n.Height, Level: it.level,
		})
		if n.Left != "" {
			queue = append(queue, item{n.Left, it.level + 1})
		}
		if n.Right != "" {
			queue = append(queue, item{n.Right, it.level + 1})
		}
	}
	return out
}

// Unflatten rebuilds a Tree of the given kind from flat nodes. The root is
// the single node without a parent. Dangling ids, several or no roots,
// cycles, unreachable nodes and discipline violations all return
// ErrMalformedTree. Heights are taken as given.
func Unflatten(kind Kind, flat []FlatNode) (Tree, error) {
	t := Tree{kind: kind}
	if len(flat) == 0 {
		return t, nil
	}
	t.nodes = make(map[string]Node, len(flat))
	for _, f := range flat {
		if f.ID == "" {
			return Tree{}, errors.Wrap(ErrMalformedTree, "node with empty id")
		}
		if _, dup := t.nodes[f.ID]; dup {
			return Tree{}, errors.Wrapf(ErrMalformedTree, "duplicate id %q", f.ID)
		}
		t.nodes[f.ID] = Node{
			ID: f.ID, Value: f.Value,
			Left: f.Left, Right: f.Right, Parent: f.Parent,
			Height: f.Height,
		}
	}
	for _, f := range flat {
		for _, ref := range [3]string{f.Left, f.Right, f.Parent} {
			if ref == "" {
				continue
			}
			if _, ok := t.nodes[ref]; !ok {
				return Tree{}, errors.Wrapf(ErrMalformedTree, "node %q references unknown %q", f.ID, ref)
			}
		}
		if f.Parent == "" {
			if t.root != "" {
				return Tree{}, errors.Wrapf(ErrMalformedTree, "two roots: %q and %q", t.root, f.ID)
			}
			t.root = f.ID
		}
	}
	if t.root == "" {
		return Tree{}, errors.Wrap(ErrMalformedTree, "no node without a parent")
	}

	// Level-order walk guarding against cycles before anything recurses.
	order := make([]string, 0, len(t.nodes))
	seen := make(map[string]bool, len(t.nodes))
	for queue := []string{t.root}; len(queue) > 0; queue = queue[1:] {
		id := queue[0]
		if seen[id] {
			return Tree{}, errors.Wrapf(ErrMalformedTree, "node %q reached twice", id)
		}
		seen[id] = true
		order = append(order, id)
		n := t.nodes[id]
		for _, c := range [2]string{n.Left, n.Right} {
			if c != "" {
				queue = append(queue, c)
			}
		}
	}
	if len(order) != len(t.nodes) {
		return Tree{}, errors.Wrapf(ErrMalformedTree, "%d nodes unreachable from root", len(t.nodes)-len(order))
	}
	if kind.Heap() {
		t.slots = order
	}
	if err := t.Validate(); err != nil {
		return Tree{}, errors.Mark(errors.Wrap(err, "tree: unflatten"), ErrMalformedTree)
	}
	return t, nil
}

// treeDoc is the serialized form of a Tree.
type treeDoc struct {
	Kind  Kind       `json:"kind" yaml:"kind"`
	Nodes []FlatNode `json:"nodes" yaml:"nodes"`
}

// MarshalJSON writes the kind and the level-order flat nodes.
func (t Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(treeDoc{Kind: t.kind, Nodes: Flatten(t)})
}

// UnmarshalJSON reverses MarshalJSON through Unflatten.
func (t *Tree) UnmarshalJSON(b []byte) error {
	var doc treeDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	out, err := Unflatten(doc.Kind, doc.Nodes)
	if err != nil {
		return err
	}
	*t = out
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (t Tree) MarshalYAML() (interface{}, error) {
	return treeDoc{Kind: t.kind, Nodes: Flatten(t)}, nil
}

// UnmarshalYAML reverses MarshalYAML through Unflatten.
func (t *Tree) UnmarshalYAML(n *yaml.Node) error {
	var doc treeDoc
	if err := n.Decode(&doc); err != nil {
		return err
	}
	out, err := Unflatten(doc.Kind, doc.Nodes)
	if err != nil {
		return err
	}
	*t = out
	return nil
}
