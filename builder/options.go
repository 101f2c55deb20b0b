// SPDX-License-Identifier: MIT
// Package: structviz/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// A nil scheme is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator used on weighted
// graphs. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithCanvas moves the layout center and sets the ring radius.
// Panics if radius is not positive.
func WithCanvas(centerX, centerY, radius float64) BuilderOption {
	if radius <= 0 {
		panic(fmt.Sprintf("builder: WithCanvas radius must be > 0, got %g", radius))
	}
	return func(c *builderConfig) {
		c.centerX, c.centerY, c.radius = centerX, centerY, radius
	}
}

// WithGridGap sets the distance between neighboring Grid cells.
// Panics if gap is not positive.
func WithGridGap(gap float64) BuilderOption {
	if gap <= 0 {
		panic(fmt.Sprintf("builder: WithGridGap gap must be > 0, got %g", gap))
	}
	return func(c *builderConfig) {
		c.gridGap = gap
	}
}
