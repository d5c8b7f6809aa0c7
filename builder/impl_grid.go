// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) is vertex r·cols + c of the block (row-major).
//   • For each cell emit Right then Bottom neighbor where present
//     (4-neighborhood).
//
// Complexity: O(rows·cols) vertices and edges.

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		// Validate both dimensions before reserving any ids.
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		// Row-major layout: cell (r,c) gets id off + r*cols + c.
		off := d.AddVertices(rows * cols)
		cell := func(r, c int) int { return off + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				// Right neighbour, unless on the last column.
				if c+1 < cols {
					d.AddEdge(cell(r, c), cell(r, c+1))
				}
				// Lower neighbour, unless on the last row.
				if r+1 < rows {
					d.AddEdge(cell(r, c), cell(r+1, c))
				}
			}
		}

		// Success: rows×cols lattice fully constructed.
		return nil
	}
}
