// SPDX-License-Identifier: MIT
// Package: structviz/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds idFn(0..n-1) on the layout ring.
//   • Emits every unordered pair {i,j}, i<j, in lexicographic index order.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.

package builder

import "github.com/katalvlaran/structviz/core"

const minCompleteNodes = 1

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(MethodComplete, n, minCompleteNodes)
		}

		ids, err := addRing(g, cfg, MethodComplete, n)
		if err != nil {
			return err
		}

		return addCompleteEdges(g, cfg, MethodComplete, ids)
	}
}
