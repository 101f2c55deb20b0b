package render

import (
	"strings"

	"github.com/katalvlaran/structviz/linkedlist"
)

// ListFrame draws one list step:
//
//	singly           [3] -> [9] -> null
//	doubly           null <- [3] <-> [9] -> null
//	circular singly  [3] -> [9] -> (head)
//	circular doubly  (tail) <-> [3] <-> [9] <-> (head)
func ListFrame(s Styles, step linkedlist.Step) string {
	var b strings.Builder
	b.WriteString(s.Title(step.Description))
	b.WriteByte('\n')
	b.WriteString(listLine(s, step))
	return b.String()
}

func listLine(s Styles, step linkedlist.Step) string {
	l := step.State
	if l.Empty() {
		return s.Muted("(empty)")
	}
	kind := l.Kind()
	sep := " -> "
	if kind.Doubly() {
		sep = " <-> "
	}

	var b strings.Builder
	switch {
	case kind.Circular() && kind.Doubly():
		b.WriteString(s.Muted("(tail)") + sep)
	case kind.Doubly():
		b.WriteString(s.Muted("null") + " <- ")
	}
	for i, n := range l.Nodes() {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s.Node(n.Value.String(), step.Overlay.Of(n.ID)))
	}
	switch {
	case kind.Circular() && kind.Doubly():
		b.WriteString(sep + s.Muted("(head)"))
	case kind.Circular():
		b.WriteString(" -> " + s.Muted("(head)"))
	default:
		b.WriteString(" -> " + s.Muted("null"))
	}
	return b.String()
}
