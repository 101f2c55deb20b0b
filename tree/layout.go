package tree

import "math"

// Layout geometry defaults, in renderer units.
const (
	LayoutStartY      = 80.0
	LayoutLevelHeight = 100.0
	LayoutMargin      = 100.0
)

// Point is a renderer coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Layout assigns positions to every node for a canvas of the given width.
// Layout is pure geometry and never affects the structure.
//
// Ordered kinds split the horizontal band recursively: a node sits at the
// midpoint of its band and its children take the left and right halves,
// starting from [margin, width-margin]. Heaps place slot i on level
// floor(log2(i+1)) and space the 2^level slots of a level evenly.
func Layout(t Tree, width float64) map[string]Point {
	pos := make(map[string]Point, len(t.nodes))
	if t.root == "" {
		return pos
	}
	if t.kind.Heap() {
		levelWidth := width - 2*LayoutMargin
		for i, id := range t.slots {
			level := int(math.Floor(math.Log2(float64(i + 1))))
			inLevel := 1 << level
			offset := i - (inLevel - 1)
			spacing := levelWidth / float64(inLevel+1)
			pos[id] = Point{
				X: LayoutMargin + spacing*float64(offset+1),
				Y: LayoutStartY + float64(level)*LayoutLevelHeight,
			}
		}
		return pos
	}

	var place func(id string, level int, lo, hi float64)
	place = func(id string, level int, lo, hi float64) {
		if id == "" {
			return
		}
		mid := (lo + hi) / 2
		pos[id] = Point{X: mid, Y: LayoutStartY + float64(level)*LayoutLevelHeight}
		n := t.nodes[id]
		place(n.Left, level+1, lo, mid)
		place(n.Right, level+1, mid, hi)
	}
	place(t.root, 0, LayoutMargin, width-LayoutMargin)
	return pos
}
