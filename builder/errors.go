// SPDX-License-Identifier: MIT
// Package: structviz/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with errors.Wrapf; the sentinel stays
//     reachable through the chain.
//   • Constructors never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import "github.com/cockroachdb/errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not complete, for
// example because it was nil or the graph refused an insertion.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownShape indicates that ShapeByName received a name it does not know.
var ErrUnknownShape = errors.New("builder: unknown shape")
