// SPDX-License-Identifier: MIT
// Package: structviz/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order, evenly spaced on a
//     horizontal line through the canvas center, one diameter wide.
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/structviz/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return tooFew(MethodPath, n, MinPathNodes)
		}

		step := 2 * cfg.radius / float64(n-1)
		prev := ""
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			x := cfg.centerX - cfg.radius + step*float64(i)
			if err := addNode(g, MethodPath, id, x, cfg.centerY); err != nil {
				return err
			}
			if prev != "" {
				if err := addEdge(g, cfg, MethodPath, prev, id); err != nil {
					return err
				}
			}
			prev = id
		}

		return nil
	}
}
