// SPDX-License-Identifier: MIT
// Package: structviz/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim: Cycle over idFn(0..n-2) on the layout ring.
//   • Hub: CenterVertexID at the canvas center with one spoke per rim vertex.
//   • Edge order: all rim edges first, then spokes in rim order.
//
// Complexity:
//   • Time: O(n) vertices + O(2n-2) edges.

package builder

import "github.com/katalvlaran/structviz/core"

// Wheel returns a Constructor that builds the wheel graph W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return tooFew(MethodWheel, n, MinWheelNodes)
		}

		// Rim first, reusing Cycle so its validation and order apply.
		if err := Cycle(n-1)(g, cfg); err != nil {
			return err
		}

		if err := addNode(g, MethodWheel, CenterVertexID, cfg.centerX, cfg.centerY); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, MethodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
