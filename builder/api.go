// SPDX-License-Identifier: MIT
// Package: structviz/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Place every node they add on the canvas.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return g, nil
}

// Initial builds the n-node sample graph every graph session starts from:
// see Sample for the topology.
func Initial(n int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(nil, opts, Sample(n))
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Sample builds nodes on a ring with ring edges and, above four nodes, the
// chords 1–4 and 2–5 (n ≥ 1).
//func Sample(n int) Constructor
//
// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
//func Cycle(n int) Constructor
//
// Path builds a simple path P_n laid out left to right (n ≥ 2).
//func Path(n int) Constructor
//
// Star builds a star with center "Center" and n-1 leaves (n ≥ 2).
//func Star(n int) Constructor
//
// Wheel builds a wheel W_n = C_{n-1} + center "Center" (n ≥ 4).
//func Wheel(n int) Constructor
//
// Complete builds the complete simple graph K_n (n ≥ 1).
//func Complete(n int) Constructor
//
// Grid builds an R×C 4-neighborhood grid, IDs in row-major order.
//func Grid(rows, cols int) Constructor
//
// RandomSparse builds an Erdős–Rényi-like graph; requires an RNG unless p ∈ {0,1}.
//func RandomSparse(n int, p float64) Constructor

// shapes maps the names accepted by ShapeByName to one-parameter factories.
var shapes = map[string]func(n int) Constructor{
	"initial":  Sample,
	"cycle":    Cycle,
	"path":     Path,
	"star":     Star,
	"wheel":    Wheel,
	"complete": Complete,
	"grid": func(n int) Constructor {
		// square-ish grid holding at least n cells
		cols := 1
		for cols*cols < n {
			cols++
		}
		rows := (n + cols - 1) / cols
		return Grid(rows, cols)
	},
}

// ShapeNames lists the names ShapeByName accepts, sorted.
func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for k := range shapes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ShapeByName resolves a shape name (case-insensitive) and size to a
// Constructor. Unknown names return ErrUnknownShape.
func ShapeByName(name string, n int) (Constructor, error) {
	mk, ok := shapes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownShape, "%q (known: %s)", name, strings.Join(ShapeNames(), ", "))
	}
	return mk(n), nil
}
