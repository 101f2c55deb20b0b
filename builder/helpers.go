// helpers.go - layout and insertion helpers shared by constructors.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap core errors with the constructor's method name.
//   - Readability: explicit naming, minimal nesting, consistent style.

package builder

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/core"
)

// ringPoint returns the canvas position of slot i of n on the layout circle.
// Slot 0 sits at the top and slots advance clockwise on screen.
//
//	angle = (i / n) · 2π − π/2
func ringPoint(cfg builderConfig, i, n int) (x, y float64) {
	angle := float64(i)/float64(n)*2*math.Pi - math.Pi/2
	return cfg.centerX + cfg.radius*math.Cos(angle), cfg.centerY + cfg.radius*math.Sin(angle)
}

// addRing inserts idFn(0..n-1) on the layout circle and returns the IDs.
func addRing(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		x, y := ringPoint(cfg, i, n)
		ids[i] = cfg.idFn(i)
		if err := addNode(g, method, ids[i], x, y); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// addNode inserts one node. The label equals the ID.
func addNode(g *core.Graph, method, id string, x, y float64) error {
	if err := g.AddNode(core.Node{ID: id, X: x, Y: y}); err != nil {
		return errors.Wrapf(err, "%s: AddNode(%s)", method, id)
	}
	return nil
}

// addEdge connects u and v. The weight comes from cfg.weightFn on weighted
// graphs and is 0 otherwise.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	var w int64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if _, err := g.AddEdge(u, v, w); err != nil {
		return errors.Wrapf(err, "%s: AddEdge(%s→%s, w=%d)", method, u, v, w)
	}
	return nil
}

// addCompleteEdges connects every unordered pair in ids, i<j in index order.
// Complexity: O(m²) time where m = len(ids), O(1) extra space.
func addCompleteEdges(g *core.Graph, cfg builderConfig, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

// tooFew wraps ErrTooFewVertices with the method name and bounds.
func tooFew(method string, got, min int) error {
	return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", method, got, min)
}
