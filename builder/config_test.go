// SPDX-License-Identifier: MIT
// Package: structviz/builder
//
// config_test.go - defaults and last-wins option resolution.

package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()

	require.NotNil(t, cfg.idFn)
	require.NotNil(t, cfg.weightFn)
	assert.Nil(t, cfg.rng)
	assert.Equal(t, "1", cfg.idFn(0))
	assert.Equal(t, DefaultEdgeWeight, cfg.weightFn(nil))
	assert.Equal(t, DefaultCenterX, cfg.centerX)
	assert.Equal(t, DefaultCenterY, cfg.centerY)
	assert.Equal(t, DefaultRadius, cfg.radius)
	assert.Equal(t, DefaultGridGap, cfg.gridGap)
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	cfg := newBuilderConfig(
		WithSymbolIDs(),
		WithExcelColumnIDs(),
		WithCanvas(1, 2, 3),
		WithCanvas(10, 20, 30),
	)
	assert.Equal(t, "AA", cfg.idFn(26))
	assert.Equal(t, 10.0, cfg.centerX)
	assert.Equal(t, 30.0, cfg.radius)
}

func TestNewBuilderConfig_NilIDSchemeIgnored(t *testing.T) {
	cfg := newBuilderConfig(WithZeroBasedIDs(), WithIDScheme(nil))
	assert.Equal(t, "0", cfg.idFn(0))
}

func TestNewBuilderConfig_Seed(t *testing.T) {
	a := newBuilderConfig(WithSeed(7))
	b := newBuilderConfig(WithRand(rand.New(rand.NewSource(7))))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())
}
