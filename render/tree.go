package render

import (
	"strings"

	"github.com/katalvlaran/structviz/tree"
)

// TreeFrame draws one tree step top-down, left child before right:
//
//	[50]
//	├── L [30]
//	│   └── R [40]
//	└── R [70]
//
// A traversal step adds a "path:" line with the values visited so far.
func TreeFrame(s Styles, step tree.Step) string {
	var b strings.Builder
	b.WriteString(s.Title(step.Description))
	b.WriteByte('\n')

	t := step.State
	root, ok := t.Root()
	if !ok {
		b.WriteString(s.Muted("(empty)"))
		return b.String()
	}
	b.WriteString(s.Node(root.Value.String(), step.Overlay.Of(root.ID)))
	writeChildren(&b, s, step, root, "")

	if len(step.Path) > 0 {
		b.WriteString("\npath: ")
		b.WriteString(strings.Join(step.Path, ", "))
	}
	return b.String()
}

func writeChildren(b *strings.Builder, s Styles, step tree.Step, n tree.Node, indent string) {
	type child struct {
		side string
		id   string
	}
	var kids []child
	if n.Left != "" {
		kids = append(kids, child{"L", n.Left})
	}
	if n.Right != "" {
		kids = append(kids, child{"R", n.Right})
	}
	for i, k := range kids {
		c, _ := step.State.Node(k.id)
		branch, next := "├── ", "│   "
		if i == len(kids)-1 {
			branch, next = "└── ", "    "
		}
		b.WriteString("\n" + indent + branch + k.side + " " + s.Node(c.Value.String(), step.Overlay.Of(c.ID)))
		writeChildren(b, s, step, c, indent+next)
	}
}
