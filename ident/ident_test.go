package ident_test

import (
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structviz/ident"
)

func TestSequential(t *testing.T) {
	g := ident.Sequential("n")
	assert.Equal(t, "n1", g.Next())
	assert.Equal(t, "n2", g.Next())
	assert.Equal(t, "n3", g.Next())
}

func TestSequentialConcurrentUnique(t *testing.T) {
	g := ident.Sequential("")
	const workers, per = 8, 100
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*per)
		wg   sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				id := g.Next()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*per)
}

func TestUUID(t *testing.T) {
	g := ident.UUID()
	a, b := g.Next(), g.Next()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestByName(t *testing.T) {
	g, err := ident.ByName("sequential", "x")
	require.NoError(t, err)
	assert.Equal(t, "x1", g.Next())

	_, err = ident.ByName("", "")
	require.NoError(t, err)

	_, err = ident.ByName("snowflake", "")
	assert.True(t, errors.Is(err, ident.ErrUnknownScheme))
}
