package render

import (
	"strconv"

	"github.com/katalvlaran/structviz/linkedlist"
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/tree"
	"github.com/katalvlaran/structviz/value"
)

// DefaultCanvasWidth is the width tree coordinates are computed for.
const DefaultCanvasWidth = 800.0

// ListNodeDoc is one list node in a step document.
type ListNodeDoc struct {
	ID     string       `json:"id" yaml:"id"`
	Value  value.Value  `json:"value" yaml:"value"`
	Next   string       `json:"next,omitempty" yaml:"next,omitempty"`
	Prev   string       `json:"prev,omitempty" yaml:"prev,omitempty"`
	Status trace.Status `json:"status" yaml:"status"`
}

// ListStepDoc is the document form of a list step.
type ListStepDoc struct {
	Index       int             `json:"index" yaml:"index"`
	Description string          `json:"description" yaml:"description"`
	Kind        linkedlist.Kind `json:"kind" yaml:"kind"`
	Nodes       []ListNodeDoc   `json:"nodes" yaml:"nodes"`
}

// ListDocs converts a list trace.
func ListDocs(steps []linkedlist.Step) []ListStepDoc {
	out := make([]ListStepDoc, len(steps))
	for i, st := range steps {
		nodes := st.State.Nodes()
		doc := ListStepDoc{
			Index:       i,
			Description: st.Description,
			Kind:        st.State.Kind(),
			Nodes:       make([]ListNodeDoc, len(nodes)),
		}
		for j, n := range nodes {
			doc.Nodes[j] = ListNodeDoc{ID: n.ID, Value: n.Value, Next: n.Next, Prev: n.Prev, Status: st.Overlay.Of(n.ID)}
		}
		out[i] = doc
	}
	return out
}

// TreeNodeDoc is one tree node in a step document, placed on the canvas.
type TreeNodeDoc struct {
	ID     string       `json:"id" yaml:"id"`
	Value  value.Value  `json:"value" yaml:"value"`
	Left   string       `json:"left,omitempty" yaml:"left,omitempty"`
	Right  string       `json:"right,omitempty" yaml:"right,omitempty"`
	Status trace.Status `json:"status" yaml:"status"`
	X      float64      `json:"x" yaml:"x"`
	Y      float64      `json:"y" yaml:"y"`
}

// TreeStepDoc is the document form of a tree step. Nodes are in level order.
type TreeStepDoc struct {
	Index       int           `json:"index" yaml:"index"`
	Description string        `json:"description" yaml:"description"`
	Kind        tree.Kind     `json:"kind" yaml:"kind"`
	Root        string        `json:"root,omitempty" yaml:"root,omitempty"`
	Nodes       []TreeNodeDoc `json:"nodes" yaml:"nodes"`
	Path        []string      `json:"path,omitempty" yaml:"path,omitempty"`
}

// TreeDocs converts a tree trace, laying nodes out for a canvas of the
// given width.
func TreeDocs(steps []tree.Step, width float64) []TreeStepDoc {
	out := make([]TreeStepDoc, len(steps))
	for i, st := range steps {
		t := st.State
		pos := tree.Layout(t, width)
		ids := t.Order(tree.LevelOrder)
		doc := TreeStepDoc{
			Index:       i,
			Description: st.Description,
			Kind:        t.Kind(),
			Nodes:       make([]TreeNodeDoc, 0, len(ids)),
			Path:        st.Path,
		}
		if root, ok := t.Root(); ok {
			doc.Root = root.ID
		}
		for _, id := range ids {
			n, _ := t.Node(id)
			p := pos[id]
			doc.Nodes = append(doc.Nodes, TreeNodeDoc{
				ID: n.ID, Value: n.Value, Left: n.Left, Right: n.Right,
				Status: st.Overlay.Of(id), X: p.X, Y: p.Y,
			})
		}
		out[i] = doc
	}
	return out
}

func itoa(i int) string { return strconv.Itoa(i) }
