package tree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/tree"
	"github.com/katalvlaran/structviz/value"
)

func heapValues(tr tree.Tree) []string {
	var out []string
	for _, v := range tr.HeapValues() {
		out = append(out, v.String())
	}
	return out
}

func TestMaxHeapInsertAndExtract(t *testing.T) {
	gen := ident.Sequential("h")
	tr := tree.New(tree.MaxHeap)
	for _, x := range []int{5, 3, 8, 1} {
		res, err := tr.Insert(value.Int(x), gen)
		require.NoError(t, err)
		require.NoError(t, res.Tree.Validate())
		tr = res.Tree
	}
	assert.Equal(t, "8", rootValue(t, tr))
	assert.Equal(t, []string{"8", "3", "5", "1"}, heapValues(tr))

	res, err := tr.ExtractRoot()
	require.NoError(t, err)
	require.NotNil(t, res.Extracted)
	assert.Equal(t, "8", res.Extracted.String())
	require.NoError(t, res.Tree.Validate())
	assert.Equal(t, []string{"5", "3", "1"}, heapValues(res.Tree))
	assert.Equal(t, "Extracted 8. Heap has 3 nodes", res.Description())
}

func TestHeapInsertTrace(t *testing.T) {
	tr := build(t, tree.MaxHeap, 5, 3)
	res, err := tr.Insert(value.Int(8), ident.Sequential("x"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Added 8 at index 2",
		"Comparing 8 with parent 5",
		"Swapped: 8 moves up to index 0",
		"Inserted 8. Heap has 3 nodes",
	}, descriptions(res.Steps))
}

// The overlay of a swap step marks the slot the moving value landed in.
func TestSiftOverlayFollowsValue(t *testing.T) {
	tr := build(t, tree.MaxHeap, 5, 3, 8, 1)
	res, err := tr.ExtractRoot()
	require.NoError(t, err)

	var checked int
	for _, st := range res.Steps {
		if st.Description != "Swapped: 1 moves down to index 2" {
			continue
		}
		checked++
		slots := st.State.Slots()
		require.Len(t, slots, 3)
		assert.Equal(t, trace.New, st.Overlay.Of(slots[2]))
		n, _ := st.State.Node(slots[2])
		assert.Equal(t, "1", n.Value.String())
	}
	assert.Equal(t, 1, checked)
}

func TestExtractRootEdges(t *testing.T) {
	one := build(t, tree.MinHeap, 4)
	res, err := one.ExtractRoot()
	require.NoError(t, err)
	assert.True(t, res.Tree.Empty())
	assert.Equal(t, "4", res.Extracted.String())
	assert.Equal(t, "Extracted 4. Heap is now empty", res.Description())

	res, err = res.Tree.ExtractRoot()
	assert.ErrorIs(t, err, tree.ErrEmptyTree)
	assert.Nil(t, res.Extracted)
	assert.Equal(t, tree.MinHeap, res.Tree.Kind())
}

func TestHeapify(t *testing.T) {
	vals := []value.Value{value.Int(5), value.Int(3), value.Int(8), value.Int(1), value.Int(9), value.Int(2)}
	res, err := tree.New(tree.MinHeap).Heapify(vals, ident.Sequential("y"))
	require.NoError(t, err)
	require.NoError(t, res.Tree.Validate())
	assert.Equal(t, 6, res.Tree.Len())
	assert.Equal(t, "1", rootValue(t, res.Tree))
	assert.Equal(t, "Heap built with 6 nodes", res.Description())

	more, err := res.Tree.Heapify([]value.Value{value.Int(0)}, ident.Sequential("z"))
	require.NoError(t, err)
	require.NoError(t, more.Tree.Validate())
	assert.Equal(t, "0", rootValue(t, more.Tree))

	none, err := res.Tree.Heapify(nil, ident.Sequential("z"))
	require.NoError(t, err)
	assert.Equal(t, 6, none.Tree.Len())
}

func TestHeapPropertyUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, kind := range []tree.Kind{tree.MaxHeap, tree.MinHeap} {
		t.Run(kind.String(), func(t *testing.T) {
			gen := ident.Sequential("r")
			tr := tree.New(kind)
			var popped []value.Value
			for i := 0; i < 200; i++ {
				if tr.Len() > 0 && rng.Intn(3) == 0 {
					res, err := tr.ExtractRoot()
					require.NoError(t, err)
					popped = append(popped, *res.Extracted)
					tr = res.Tree
				} else {
					res, err := tr.Insert(value.Int(rng.Intn(50)), gen)
					require.NoError(t, err)
					tr = res.Tree
				}
				require.NoError(t, tr.Validate(), "op %d", i)
			}

			// Draining yields a monotone sequence.
			var prev *value.Value
			for tr.Len() > 0 {
				res, err := tr.ExtractRoot()
				require.NoError(t, err)
				if prev != nil {
					c := value.Compare(*prev, *res.Extracted)
					if kind == tree.MaxHeap {
						assert.GreaterOrEqual(t, c, 0)
					} else {
						assert.LessOrEqual(t, c, 0)
					}
				}
				prev = res.Extracted
				tr = res.Tree
			}
			assert.NotEmpty(t, popped)
		})
	}
}

func TestHeapAllowsDuplicates(t *testing.T) {
	tr := build(t, tree.MaxHeap, 2, 2, 2)
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []string{"2", "2", "2"}, heapValues(tr))
}
