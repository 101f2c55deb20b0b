// SPDX-License-Identifier: MIT
// Package: structviz/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Cell (r,c) gets ID idFn(r*cols + c), so with the default scheme IDs run
//     "1".."rows*cols" in row-major order and traversals stay numeric.
//   • Cells are cfg.gridGap apart, the whole grid centered on the canvas.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Edge order: for each (r,c) in row-major order, Right then Bottom if present.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < MinGridDim || cols < MinGridDim {
			return errors.Wrapf(ErrTooFewVertices, "%s: rows=%d, cols=%d (each must be ≥ %d)",
				MethodGrid, rows, cols, MinGridDim)
		}

		id := func(r, c int) string { return cfg.idFn(r*cols + c) }

		// 2) Add all vertices in row-major order, centered on the canvas.
		x0 := cfg.centerX - cfg.gridGap*float64(cols-1)/2
		y0 := cfg.centerY - cfg.gridGap*float64(rows-1)/2
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				x, y := x0+cfg.gridGap*float64(c), y0+cfg.gridGap*float64(r)
				if err := addNode(g, MethodGrid, id(r, c), x, y); err != nil {
					return err
				}
			}
		}

		// 3) Emit edges: Right then Bottom.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, MethodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, MethodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
