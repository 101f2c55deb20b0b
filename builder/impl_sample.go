// SPDX-License-Identifier: MIT
// Package: structviz/builder
//
// impl_sample.go - implementation of Sample(n), the graph a session starts with.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Nodes idFn(0..n-1) on the layout ring, slot 0 at the top.
//   • Ring edges i → (i+1)%n in increasing i. Ring steps that would be a
//     self-loop (n = 1) or repeat a pair (n = 2) are not added.
//   • For n > ChordMinNodes, two chords: slot 0–slot 3 and slot 1–slot 4.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import "github.com/katalvlaran/structviz/core"

// Sample returns a Constructor for the n-node sample graph.
func Sample(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinInitialNodes {
			return tooFew(MethodInitial, n, MinInitialNodes)
		}

		ids, err := addRing(g, cfg, MethodInitial, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			u, v := ids[i], ids[(i+1)%n]
			if u == v || g.HasEdge(u, v) {
				continue
			}
			if err = addEdge(g, cfg, MethodInitial, u, v); err != nil {
				return err
			}
		}

		if n > ChordMinNodes {
			if err = addEdge(g, cfg, MethodInitial, ids[0], ids[3]); err != nil {
				return err
			}
			if err = addEdge(g, cfg, MethodInitial, ids[1], ids[4]); err != nil {
				return err
			}
		}

		return nil
	}
}
