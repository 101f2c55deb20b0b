// SPDX-License-Identifier: MIT
// Package: structviz/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds CenterVertexID at the canvas center, then n-1 leaves idFn(0..n-2)
//     on the layout ring.
//   • Emits spokes Center -> leaf in leaf order.
//
// Complexity:
//   • Time: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/structviz/core"

// Star returns a Constructor that builds a star with n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return tooFew(MethodStar, n, MinStarNodes)
		}

		if err := addNode(g, MethodStar, CenterVertexID, cfg.centerX, cfg.centerY); err != nil {
			return err
		}
		leaves, err := addRing(g, cfg, MethodStar, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = addEdge(g, cfg, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
