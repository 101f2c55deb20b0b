package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/tree"
	"github.com/katalvlaran/structviz/value"
)

func TestTraverseOrders(t *testing.T) {
	tr := build(t, tree.BST, 10, 5, 15, 3, 7)
	cases := []struct {
		order tree.Order
		want  []string
		last  string
	}{
		{tree.InOrder, []string{"3", "5", "7", "10", "15"}, "In-order traversal: 3, 5, 7, 10, 15"},
		{tree.PreOrder, []string{"10", "5", "3", "7", "15"}, "Pre-order traversal: 10, 5, 3, 7, 15"},
		{tree.PostOrder, []string{"3", "7", "5", "15", "10"}, "Post-order traversal: 3, 7, 5, 15, 10"},
		{tree.LevelOrder, []string{"10", "5", "15", "3", "7"}, "Level-order traversal: 10, 5, 15, 3, 7"},
	}
	for _, tc := range cases {
		t.Run(tc.order.String(), func(t *testing.T) {
			res, err := tr.Traverse(tc.order)
			require.NoError(t, err)
			var got []string
			for _, v := range res.Values {
				got = append(got, v.String())
			}
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.last, res.Description())

			// One step per node plus the summary; visited marks accumulate.
			require.Len(t, res.Steps, len(tc.want)+1)
			for i := 0; i < len(tc.want); i++ {
				assert.Len(t, res.Steps[i].Path, i+1)
				assert.Len(t, res.Steps[i].Overlay, i+1)
			}
			for _, st := range res.Steps {
				for _, s := range st.Overlay {
					assert.Equal(t, trace.Visited, s)
				}
			}
		})
	}
}

func TestTraverseEmpty(t *testing.T) {
	res, err := tree.New(tree.AVL).Traverse(tree.InOrder)
	require.NoError(t, err)
	assert.Empty(t, res.Values)
	assert.Equal(t, "Tree is empty", res.Description())
}

func TestParseOrder(t *testing.T) {
	o, err := tree.ParseOrder("Level_Order")
	require.NoError(t, err)
	assert.Equal(t, tree.LevelOrder, o)
	_, err = tree.ParseOrder("zigzag")
	assert.Error(t, err)
}

func TestFindMinMax(t *testing.T) {
	cases := []struct {
		kind     tree.Kind
		min, max string
	}{
		{tree.BST, "3", "15"},
		{tree.AVL, "3", "15"},
		{tree.MaxHeap, "3", "15"},
		{tree.MinHeap, "3", "15"},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			tr := build(t, tc.kind, 10, 5, 15, 3, 7)

			res, err := tr.FindMin()
			require.NoError(t, err)
			require.Len(t, res.Values, 1)
			assert.Equal(t, tc.min, res.Values[0].String())
			assert.Equal(t, "Minimum value is "+tc.min, res.Description())

			res, err = tr.FindMax()
			require.NoError(t, err)
			assert.Equal(t, tc.max, res.Values[0].String())
			n, _ := tr.Node(res.Found)
			assert.Equal(t, tc.max, n.Value.String())
		})
	}
}

func TestFindMinEmptyIsNoop(t *testing.T) {
	res, err := tree.New(tree.MinHeap).FindMin()
	require.NoError(t, err)
	assert.Empty(t, res.Values)
	assert.Equal(t, "Tree is empty. No minimum value", res.Description())
}

func TestHeapFindsOwnExtremeAtRoot(t *testing.T) {
	tr := build(t, tree.MaxHeap, 1, 9, 4)
	res, err := tr.FindMax()
	require.NoError(t, err)
	assert.Len(t, res.Steps, 2)
	root, _ := tr.Root()
	assert.Equal(t, root.ID, res.Found)
}

func TestHeight(t *testing.T) {
	res, err := tree.New(tree.BST).Height()
	require.NoError(t, err)
	assert.Equal(t, 0, res.Height)
	assert.Equal(t, "Tree is empty. Height is 0", res.Description())

	res, err = build(t, tree.BST, 1, 2, 3, 4).Height()
	require.NoError(t, err)
	assert.Equal(t, 4, res.Height)

	res, err = build(t, tree.AVL, 1, 2, 3, 4).Height()
	require.NoError(t, err)
	assert.Equal(t, 3, res.Height)
}

func TestClearKeepsKind(t *testing.T) {
	tr := build(t, tree.AVL, 1, 2, 3)
	res, err := tr.Clear()
	require.NoError(t, err)
	assert.True(t, res.Tree.Empty())
	assert.Equal(t, tree.AVL, res.Tree.Kind())
	assert.Equal(t, "Tree cleared", res.Description())
	assert.Equal(t, 3, tr.Len())

	res, err = res.Tree.Clear()
	require.NoError(t, err)
	assert.Equal(t, "Tree is already empty", res.Description())
}

func TestStats(t *testing.T) {
	s := tree.StatsOf(build(t, tree.BST, 10, 5, 15, 3))
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 3, s.Height)
	assert.True(t, s.Balanced)
	require.NotNil(t, s.Min)
	assert.Equal(t, "3", s.Min.String())
	assert.Equal(t, "15", s.Max.String())

	skewed := tree.StatsOf(build(t, tree.BST, 1, 2, 3))
	assert.False(t, skewed.Balanced)
	assert.Equal(t, 3, skewed.Height)

	heap := tree.StatsOf(build(t, tree.MinHeap, 4, 8, 1, 6))
	assert.Equal(t, "1", heap.Min.String())
	assert.Equal(t, "8", heap.Max.String())

	empty := tree.StatsOf(tree.New(tree.AVL))
	assert.Zero(t, empty.Count)
	assert.True(t, empty.Balanced)
	assert.Nil(t, empty.Min)
}

func TestStringValuesOrderLexically(t *testing.T) {
	gen := ident.Sequential("s")
	tr, err := tree.New(tree.BST).Insert(value.Str("m"), gen)
	require.NoError(t, err)
	res, err := tr.Tree.Insert(value.Str("c"), gen)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "m"}, inorder(res.Tree))
}

func TestLayout(t *testing.T) {
	ordered := build(t, tree.BST, 10, 5, 15)
	pos := tree.Layout(ordered, 800)
	byValue := map[string]tree.Point{}
	for id, p := range pos {
		n, _ := ordered.Node(id)
		byValue[n.Value.String()] = p
	}
	assert.Equal(t, tree.Point{X: 400, Y: 80}, byValue["10"])
	assert.Equal(t, tree.Point{X: 250, Y: 180}, byValue["5"])
	assert.Equal(t, tree.Point{X: 550, Y: 180}, byValue["15"])

	heap := build(t, tree.MaxHeap, 3, 2, 1)
	slots := heap.Slots()
	hp := tree.Layout(heap, 800)
	assert.Equal(t, tree.Point{X: 400, Y: 80}, hp[slots[0]])
	assert.Equal(t, tree.Point{X: 300, Y: 180}, hp[slots[1]])
	assert.Equal(t, tree.Point{X: 500, Y: 180}, hp[slots[2]])

	assert.Empty(t, tree.Layout(tree.New(tree.BST), 800))
}
