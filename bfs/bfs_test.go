package bfs_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structviz/bfs"
	"github.com/katalvlaran/structviz/builder"
	"github.com/katalvlaran/structviz/core"
	"github.com/katalvlaran/structviz/trace"
)

// sample returns the six-node graph every session starts with:
// a ring 1..6 plus the chords 1–4 and 2–5.
func sample(t testing.TB) *core.Graph {
	t.Helper()
	g, err := builder.Initial(6)
	require.NoError(t, err)
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.True(t, errors.Is(err, bfs.ErrGraphNil))

	g := sample(t)
	_, err = bfs.BFS(g, "1", bfs.WithMaxDepth(-1))
	assert.True(t, errors.Is(err, bfs.ErrOptionViolation))
}

// TestBFS_InvalidStart checks the single explanatory step.
func TestBFS_InvalidStart(t *testing.T) {
	var streamed int
	res, err := bfs.BFS(sample(t), "99", bfs.WithOnStep(func(trace.TraversalStep) { streamed++ }))
	require.Error(t, err)
	assert.True(t, errors.Is(err, bfs.ErrStartVertexNotFound))
	assert.True(t, errors.Is(err, trace.ErrInvalidStart))

	require.NotNil(t, res)
	require.Len(t, res.Steps, 1)
	assert.Equal(t, `Start node "99" does not exist. Nothing to traverse.`, res.Steps[0].Description)
	assert.Empty(t, res.Steps[0].Visited)
	assert.Empty(t, res.Steps[0].Frontier)
	assert.Empty(t, res.Order)
	assert.Equal(t, 1, streamed)
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g, err := builder.Initial(1)
	require.NoError(t, err)

	res, err := bfs.BFS(g, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, res.Order)
	assert.Equal(t, 0, res.Depth["1"])
	require.Len(t, res.Steps, 3)
	assert.Equal(t, []string{"1"}, res.Steps[2].FinalOrder)
}

// TestBFS_SampleOrderAndDepths checks visit order, depths and parents.
func TestBFS_SampleOrderAndDepths(t *testing.T) {
	res, err := bfs.BFS(sample(t), "1")
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "4", "6", "3", "5"}, res.Order)
	assert.Equal(t, map[string]int{"1": 0, "2": 1, "4": 1, "6": 1, "3": 2, "5": 2}, res.Depth)
	assert.Equal(t, map[string]string{"2": "1", "4": "1", "6": "1", "3": "2", "5": "2"}, res.Parent)

	path, err := res.PathTo("5")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "5"}, path)

	path, err = res.PathTo("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, path)
}

// TestBFS_Trace walks the recorded steps one by one.
func TestBFS_Trace(t *testing.T) {
	res, err := bfs.BFS(sample(t), "1")
	require.NoError(t, err)
	require.Len(t, res.Steps, 13)

	type frame struct {
		desc     string
		current  string
		visited  []string
		frontier []string
		edge     *trace.EdgeRef
	}
	want := []frame{
		{"Initialize BFS queue with start node 1", "", []string{"1"}, []string{"1"}, nil},
		{"Dequeued 1. Processing neighbors...", "1", []string{"1"}, []string{}, nil},
		{"Visited neighbor 2 and added to queue", "1", []string{"1", "2"}, []string{"2"}, &trace.EdgeRef{Source: "1", Target: "2"}},
		{"Visited neighbor 4 and added to queue", "1", []string{"1", "2", "4"}, []string{"2", "4"}, &trace.EdgeRef{Source: "1", Target: "4"}},
		{"Visited neighbor 6 and added to queue", "1", []string{"1", "2", "4", "6"}, []string{"2", "4", "6"}, &trace.EdgeRef{Source: "1", Target: "6"}},
		{"Dequeued 2. Processing neighbors...", "2", []string{"1", "2", "4", "6"}, []string{"4", "6"}, nil},
		{"Visited neighbor 3 and added to queue", "2", []string{"1", "2", "4", "6", "3"}, []string{"4", "6", "3"}, &trace.EdgeRef{Source: "2", Target: "3"}},
		{"Visited neighbor 5 and added to queue", "2", []string{"1", "2", "4", "6", "3", "5"}, []string{"4", "6", "3", "5"}, &trace.EdgeRef{Source: "2", Target: "5"}},
		{"Dequeued 4. Processing neighbors...", "4", []string{"1", "2", "4", "6", "3", "5"}, []string{"6", "3", "5"}, nil},
		{"Dequeued 6. Processing neighbors...", "6", []string{"1", "2", "4", "6", "3", "5"}, []string{"3", "5"}, nil},
		{"Dequeued 3. Processing neighbors...", "3", []string{"1", "2", "4", "6", "3", "5"}, []string{"5"}, nil},
		{"Dequeued 5. Processing neighbors...", "5", []string{"1", "2", "4", "6", "3", "5"}, []string{}, nil},
	}
	for i, w := range want {
		got := res.Steps[i]
		assert.Equal(t, w.desc, got.Description, "step %d", i)
		assert.Equal(t, w.current, got.Current, "step %d", i)
		assert.Equal(t, w.visited, got.Visited, "step %d", i)
		assert.Equal(t, w.frontier, got.FrontierIDs(), "step %d", i)
		if w.edge == nil {
			assert.Empty(t, got.Edges, "step %d", i)
		} else {
			assert.Equal(t, []trace.EdgeRef{*w.edge}, got.Edges, "step %d", i)
		}
	}

	last := res.Steps[12]
	assert.Equal(t, "BFS Traversal Complete", last.Description)
	assert.Equal(t, res.Order, last.FinalOrder)
	assert.Empty(t, last.Frontier)
	assert.Nil(t, last.Distances)
}

// TestBFS_StepsAreSnapshots ensures later steps never alias earlier ones.
func TestBFS_StepsAreSnapshots(t *testing.T) {
	var streamed []trace.TraversalStep
	res, err := bfs.BFS(sample(t), "1", bfs.WithOnStep(func(s trace.TraversalStep) {
		streamed = append(streamed, s)
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Steps, streamed)

	streamed[0].Visited[0] = "mutated"
	assert.Equal(t, "1", res.Steps[0].Visited[0])
	assert.Len(t, res.Steps[2].Visited, 2)
}

// TestBFS_MaxDepth limits exploration to the first ring.
func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(sample(t), "1", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "6"}, res.Order)

	res, err = bfs.BFS(sample(t), "1", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6)
}

// TestBFS_FilterNeighbor skips every edge into "2".
func TestBFS_FilterNeighbor(t *testing.T) {
	res, err := bfs.BFS(sample(t), "1", bfs.WithFilterNeighbor(func(_, nbr string) bool {
		return nbr != "2"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4", "6", "3", "5"}, res.Order)

	_, err = res.PathTo("2")
	assert.True(t, errors.Is(err, trace.ErrValueNotFound))
}

// TestBFS_Disconnected only reaches the start's component.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddNode(core.Node{ID: id}))
	}
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("c", "d", 0)
	require.NoError(t, err)

	res, err := bfs.BFS(g, "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, res.Order)
	assert.Equal(t, []string{"c", "d"}, res.Steps[len(res.Steps)-1].FinalOrder)
}

// TestBFS_Hooks checks hook order and OnVisit abort.
func TestBFS_Hooks(t *testing.T) {
	var enq, deq []string
	_, err := bfs.BFS(sample(t), "1",
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id string, _ int) { deq = append(deq, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "6", "3", "5"}, enq)
	assert.Equal(t, enq, deq)

	boom := errors.New("boom")
	res, err := bfs.BFS(sample(t), "1", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "4" {
			return boom
		}
		return nil
	}))
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, []string{"1", "2", "4"}, res.Order)
}

// TestBFS_Cancelled stops before the first dequeue.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := bfs.BFS(sample(t), "1", bfs.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, res.Order)
	assert.Len(t, res.Steps, 1)
}

// TestBFS_IgnoresWeights treats weighted edges as unit steps.
func TestBFS_IgnoresWeights(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithUniformWeight(1, 50), builder.WithSeed(9)},
		builder.Sample(6),
	)
	require.NoError(t, err)

	res, err := bfs.BFS(g, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "6", "3", "5"}, res.Order)
}
