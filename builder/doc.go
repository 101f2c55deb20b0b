// Package builder provides reusable “functional‐options”‐style constructors
// for the sample graphs a graph session starts from or switches to.
//
// Every constructor adds nodes together with canvas coordinates, so a built
// graph can be drawn as is. Ring layouts follow
//
//	angle(i) = (i / n) · 2π − π/2
//	x = cx + r·cos(angle), y = cy + r·sin(angle)
//
// with center (400,300) and radius 200 unless WithCanvas says otherwise.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a graph and apply constructors in order.
//     – Initial(n, opts...):               the session default, Sample(n) on a fresh graph.
//     – ShapeByName(name, n):              resolve "cycle", "grid", ... for CLIs and scripts.
//   - Topologies (Constructor):
//     – Sample, Cycle, Path, Star, Wheel, Complete, Grid, RandomSparse.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  RNG, ID scheme, weight function and canvas.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:      one-based decimal strings ("1","2",…).
//     – ZeroBasedIDFn:    decimal strings from "0".
//     – SymbolIDFn:       single letters ("A","B",…).
//     – ExcelColumnIDFn:  Excel‐style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn: prefix + index ("v0","v1",…).
//   - Edge‐weight distributions (WeightFn implementations), weighted graphs only:
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: same inputs, options and seed give identical graphs.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Constructors never panic; they return errors matching the package
//     sentinels (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed, ErrUnknownShape) or core's errors.
package builder
