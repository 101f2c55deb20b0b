// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/structviz/core"
	"github.com/katalvlaran/structviz/trace"
)

// mustGraph builds a graph with nodes ids and undirected edges given as pairs.
func mustGraph(t *testing.T, ids []string, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddNode(core.Node{ID: id}))
	}
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	return g
}

func TestGraph_AddRemoveNode(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddNode(core.Node{}), core.ErrEmptyNodeID)

	require.NoError(t, g.AddNode(core.Node{ID: "A", X: 1, Y: 2}))
	n, ok := g.Node("A")
	require.True(t, ok)
	assert.Equal(t, "A", n.Label, "label defaults to the id")
	assert.Equal(t, 1.0, n.X)

	err := g.AddNode(core.Node{ID: "A"})
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
	assert.True(t, errors.Is(err, trace.ErrDuplicateValue))
	assert.Equal(t, 1, g.NodeCount())

	_, err = g.RemoveNode("")
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
	_, err = g.RemoveNode("X")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.True(t, errors.Is(err, trace.ErrDanglingReference))

	_, err = g.RemoveNode("A")
	require.NoError(t, err)
	assert.False(t, g.HasNode("A"))
	assert.False(t, g.HasNode(""))
}

func TestGraph_RemoveNodeDropsIncidentEdges(t *testing.T) {
	g := mustGraph(t, []string{"1", "2", "3"}, [2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "1"})
	removed, err := g.RemoveNode("2")
	require.NoError(t, err)
	require.Len(t, removed, 2)
	assert.Equal(t, "e1", removed[0].ID)
	assert.Equal(t, "e2", removed[1].ID)
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("1", "3"))
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"})

	_, err := g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "Z", 0)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)

	id, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)

	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "pairs are undirected")

	w := core.NewGraph(core.WithWeighted())
	require.NoError(t, w.AddNode(core.Node{ID: "A"}))
	require.NoError(t, w.AddNode(core.Node{ID: "B"}))
	_, err = w.AddEdge("A", "B", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), w.Edges()[0].Weight)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := mustGraph(t, []string{"1", "2", "3"}, [2]string{"1", "2"}, [2]string{"2", "3"})

	e, err := g.RemoveEdgeBetween("3", "2")
	require.NoError(t, err)
	assert.Equal(t, "e2", e.ID)
	assert.False(t, g.HasEdge("2", "3"))

	_, err = g.RemoveEdgeBetween("1", "3")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.RemoveEdge("e9")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	// IDs keep counting after removals.
	id, err := g.AddEdge("1", "3", 0)
	require.NoError(t, err)
	assert.Equal(t, "e3", id)
}

func TestCompareIDs(t *testing.T) {
	ids := []string{"b", "10", "2", "a", "1", "x1"}
	core.SortIDs(ids)
	assert.Equal(t, []string{"1", "2", "10", "a", "b", "x1"}, ids)
	assert.Zero(t, core.CompareIDs("7", "7"))
	assert.Negative(t, core.CompareIDs("9", "10"))
	assert.Positive(t, core.CompareIDs("a", "10"))
}

func TestGraph_AdjacencySymmetricAndSorted(t *testing.T) {
	g := mustGraph(t, []string{"1", "2", "3", "10", "4"},
		[2]string{"10", "1"}, [2]string{"1", "3"}, [2]string{"2", "1"})

	adj := g.Adjacency()
	assert.Equal(t, []string{"2", "3", "10"}, adj["1"])
	assert.Equal(t, []string{"1"}, adj["10"])
	assert.Equal(t, []string{}, adj["4"], "isolated nodes still appear")
	for u, nbrs := range adj {
		for _, v := range nbrs {
			assert.Contains(t, adj[v], u)
		}
	}

	nbrs, err := g.Neighbors("1")
	require.NoError(t, err)
	assert.Equal(t, adj["1"], nbrs)
	_, err = g.Neighbors("zz")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	d, err := g.Degree("1")
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestFromPartsDropsDanglingEdges(t *testing.T) {
	nodes := []core.Node{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	edges := []core.Edge{
		{Source: "1", Target: "2"},
		{Source: "2", Target: "9"},
		{Source: "3", Target: "3"},
		{Source: "2", Target: "1"},
		{ID: "k", Source: "2", Target: "3"},
	}
	g, dropped, err := core.FromParts(nodes, edges)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edges[1], edges[2], edges[3]}, dropped)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, "k", g.Edges()[1].ID)
	assert.Equal(t, []string{"2"}, g.Adjacency()["3"])

	_, _, err = core.FromParts([]core.Node{{ID: "1"}, {ID: "1"}}, nil)
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := mustGraph(t, []string{"1", "2", "3"}, [2]string{"1", "2"})
	c := g.Clone()

	_, err := c.AddEdge("2", "3", 0)
	require.NoError(t, err)
	require.NoError(t, c.MoveNode("1", 50, 60))

	assert.Equal(t, 1, g.EdgeCount())
	n, _ := g.Node("1")
	assert.Zero(t, n.X)
	assert.Equal(t, "e2", c.Edges()[1].ID, "clone continues the edge id sequence")

	empty := g.CloneEmpty()
	assert.Equal(t, 3, empty.NodeCount())
	assert.Zero(t, empty.EdgeCount())

	g.Clear()
	assert.Zero(t, g.NodeCount())
	assert.Equal(t, 3, c.NodeCount())
}

func TestGraph_Stats(t *testing.T) {
	g := mustGraph(t, []string{"1", "2", "3", "4"}, [2]string{"1", "2"})
	s := g.Stats()
	assert.Equal(t, core.GraphStats{NodeCount: 4, EdgeCount: 1, Components: 3}, s)
}

func TestGraph_Codecs(t *testing.T) {
	g := mustGraph(t, []string{"1", "2"}, [2]string{"1", "2"})

	b, err := json.Marshal(g)
	require.NoError(t, err)
	back := core.NewGraph()
	require.NoError(t, json.Unmarshal(b, back))
	assert.Equal(t, g.Nodes(), back.Nodes())
	assert.Equal(t, g.Edges(), back.Edges())

	y, err := yaml.Marshal(g)
	require.NoError(t, err)
	fromYAML := core.NewGraph()
	require.NoError(t, yaml.Unmarshal(y, fromYAML))
	assert.Equal(t, g.Edges(), fromYAML.Edges())
}

func TestGraph_ConcurrentReadsAndWrites(t *testing.T) {
	g := mustGraph(t, []string{"1", "2"})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = g.Adjacency()
			_ = g.Stats()
		}()
		go func(i int) {
			defer wg.Done()
			_ = g.MoveNode("1", float64(i), 0)
			_ = g.Clone()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 2, g.NodeCount())
}
