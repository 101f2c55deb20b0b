package dfs_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structviz/bfs"
	"github.com/katalvlaran/structviz/builder"
	"github.com/katalvlaran/structviz/core"
	"github.com/katalvlaran/structviz/dfs"
	"github.com/katalvlaran/structviz/trace"
)

func sample(t testing.TB) *core.Graph {
	t.Helper()
	g, err := builder.Initial(6)
	require.NoError(t, err)
	return g
}

// TestDFS_Errors covers nil graph and unknown start.
func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "1")
	assert.True(t, errors.Is(err, dfs.ErrGraphNil))

	var streamed []trace.TraversalStep
	res, err := dfs.DFS(sample(t), "X", dfs.WithOnStep(func(s trace.TraversalStep) {
		streamed = append(streamed, s)
	}))
	assert.True(t, errors.Is(err, dfs.ErrStartVertexNotFound))
	assert.True(t, errors.Is(err, trace.ErrInvalidStart))
	require.Len(t, res.Steps, 1)
	assert.Equal(t, `Start node "X" does not exist. Nothing to traverse.`, res.Steps[0].Description)
	assert.Equal(t, res.Steps, streamed)
}

// TestDFS_SampleOrder checks visit order, depths and parents.
func TestDFS_SampleOrder(t *testing.T) {
	res, err := dfs.DFS(sample(t), "1")
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, res.Order)
	assert.Equal(t, map[string]int{"1": 0, "2": 1, "3": 2, "4": 3, "5": 4, "6": 5}, res.Depth)
	assert.Equal(t, map[string]string{"2": "1", "3": "2", "4": "3", "5": "4", "6": "5"}, res.Parent)
	assert.Len(t, res.Visited, 6)
}

// TestDFS_Trace walks the recorded steps one by one.
func TestDFS_Trace(t *testing.T) {
	res, err := dfs.DFS(sample(t), "1")
	require.NoError(t, err)
	require.Len(t, res.Steps, 16)

	type frame struct {
		desc    string
		visited []string
		stack   []string
		edge    string // "u>v" or empty
	}
	want := []frame{
		{"Initialize DFS stack with start node 1", []string{}, []string{"1"}, ""},
		{"Popped 1 from stack and marked as visited", []string{"1"}, []string{}, ""},
		{"Pushed neighbor 6 to stack", []string{"1"}, []string{"6"}, "1>6"},
		{"Pushed neighbor 4 to stack", []string{"1"}, []string{"6", "4"}, "1>4"},
		{"Pushed neighbor 2 to stack", []string{"1"}, []string{"6", "4", "2"}, "1>2"},
		{"Popped 2 from stack and marked as visited", []string{"1", "2"}, []string{"6", "4"}, ""},
		{"Pushed neighbor 5 to stack", []string{"1", "2"}, []string{"6", "4", "5"}, "2>5"},
		{"Pushed neighbor 3 to stack", []string{"1", "2"}, []string{"6", "4", "5", "3"}, "2>3"},
		{"Popped 3 from stack and marked as visited", []string{"1", "2", "3"}, []string{"6", "4", "5"}, ""},
		{"Pushed neighbor 4 to stack", []string{"1", "2", "3"}, []string{"6", "4", "5", "4"}, "3>4"},
		{"Popped 4 from stack and marked as visited", []string{"1", "2", "3", "4"}, []string{"6", "4", "5"}, ""},
		{"Pushed neighbor 5 to stack", []string{"1", "2", "3", "4"}, []string{"6", "4", "5", "5"}, "4>5"},
		{"Popped 5 from stack and marked as visited", []string{"1", "2", "3", "4", "5"}, []string{"6", "4", "5"}, ""},
		{"Pushed neighbor 6 to stack", []string{"1", "2", "3", "4", "5"}, []string{"6", "4", "5", "6"}, "5>6"},
		{"Popped 6 from stack and marked as visited", []string{"1", "2", "3", "4", "5", "6"}, []string{"6", "4", "5"}, ""},
	}
	for i, w := range want {
		got := res.Steps[i]
		assert.Equal(t, w.desc, got.Description, "step %d", i)
		assert.Equal(t, w.visited, got.Visited, "step %d", i)
		assert.Equal(t, w.stack, got.FrontierIDs(), "step %d", i)
		if w.edge == "" {
			assert.Empty(t, got.Edges, "step %d", i)
		} else {
			require.Len(t, got.Edges, 1, "step %d", i)
			assert.Equal(t, w.edge, got.Edges[0].Source+">"+got.Edges[0].Target, "step %d", i)
		}
	}

	last := res.Steps[15]
	assert.Equal(t, "DFS Traversal Complete", last.Description)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, last.FinalOrder)
	assert.Empty(t, last.Frontier)
}

// TestDFS_MaxDepth stops pushing below the limit.
func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(sample(t), "1", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "6"}, res.Order)

	// zero disables the limit, the same as bfs.WithMaxDepth(0)
	res, err = dfs.DFS(sample(t), "1", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6)

	_, err = dfs.DFS(sample(t), "1", dfs.WithMaxDepth(-1))
	assert.True(t, errors.Is(err, dfs.ErrOptionViolation))
}

// TestMaxDepthMatchesBFS checks both engines reach the same vertex set of
// the sample graph for each limit.
func TestMaxDepthMatchesBFS(t *testing.T) {
	for d := 0; d <= 3; d++ {
		dr, err := dfs.DFS(sample(t), "1", dfs.WithMaxDepth(d))
		require.NoError(t, err)
		br, err := bfs.BFS(sample(t), "1", bfs.WithMaxDepth(d))
		require.NoError(t, err)
		assert.ElementsMatch(t, br.Order, dr.Order, "depth %d", d)
	}
}

// TestDFS_FilterNeighbor counts skipped neighbors.
func TestDFS_FilterNeighbor(t *testing.T) {
	res, err := dfs.DFS(sample(t), "1", dfs.WithFilterNeighbor(func(id string) bool { return id != "2" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4", "3", "5", "6"}, res.Order)
	assert.Equal(t, 3, res.SkippedNeighbors)
	assert.False(t, res.Visited["2"])
}

// TestDFS_OnVisitAbort returns the partial result with the hook error.
func TestDFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	res, err := dfs.DFS(sample(t), "1", dfs.WithOnVisit(func(id string) error {
		if id == "3" {
			return stop
		}
		return nil
	}))
	assert.True(t, errors.Is(err, stop))
	assert.Equal(t, []string{"1", "2", "3"}, res.Order)
}

// TestDFS_Cancelled aborts before the first pop.
func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := dfs.DFS(sample(t), "1", dfs.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, res.Order)
	assert.Len(t, res.Steps, 1)
}

// TestDFS_Disconnected stays inside the start's component.
func TestDFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(core.Node{ID: id}))
	}
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	res, err := dfs.DFS(g, "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, res.Order)
	assert.Len(t, res.Steps, 3)
}
