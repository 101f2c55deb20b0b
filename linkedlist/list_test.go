package linkedlist_test

import (
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/linkedlist"
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/value"
)

var allKinds = []linkedlist.Kind{
	linkedlist.Singly,
	linkedlist.Doubly,
	linkedlist.CircularSingly,
	linkedlist.CircularDoubly,
}

// ints builds a list of integer values with sequential ids n1, n2, ...
func ints(t *testing.T, kind linkedlist.Kind, vals ...int) linkedlist.List {
	t.Helper()
	vs := make([]value.Value, len(vals))
	for i, v := range vals {
		vs[i] = value.Int(v)
	}
	l, err := linkedlist.FromValues(kind, ident.Sequential("n"), vs...)
	require.NoError(t, err)
	return l
}

// valuesOf renders list values as strings for compact assertions.
func valuesOf(l linkedlist.List) []string {
	out := make([]string, 0, l.Len())
	for _, v := range l.Values() {
		out = append(out, v.String())
	}
	return out
}

func TestFromValuesLinks(t *testing.T) {
	cases := []struct {
		kind     linkedlist.Kind
		tailNext string
		headPrev string
		midPrev  string
	}{
		{linkedlist.Singly, "", "", ""},
		{linkedlist.Doubly, "", "", "n1"},
		{linkedlist.CircularSingly, "n1", "", ""},
		{linkedlist.CircularDoubly, "n1", "n3", "n1"},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			l := ints(t, tc.kind, 1, 2, 3)
			nodes := l.Nodes()
			require.Len(t, nodes, 3)
			assert.Equal(t, "n2", nodes[0].Next)
			assert.Equal(t, tc.tailNext, nodes[2].Next)
			assert.Equal(t, tc.headPrev, nodes[0].Prev)
			assert.Equal(t, tc.midPrev, nodes[1].Prev)
			assert.NoError(t, l.Validate())
		})
	}
}

func TestSingleNodeCircularSelfLoop(t *testing.T) {
	l := ints(t, linkedlist.CircularDoubly, 7)
	n, ok := l.Head()
	require.True(t, ok)
	assert.Equal(t, n.ID, n.Next)
	assert.Equal(t, n.ID, n.Prev)
	assert.NoError(t, l.Validate())
}

func TestNodesReturnsCopy(t *testing.T) {
	l := ints(t, linkedlist.Singly, 1, 2)
	nodes := l.Nodes()
	nodes[0].Value = value.Int(99)
	assert.Equal(t, []string{"1", "2"}, valuesOf(l))
}

func TestFromNodesRejectsBadIDs(t *testing.T) {
	_, err := linkedlist.FromNodes(linkedlist.Singly, []linkedlist.Node{{ID: "a"}, {ID: "a"}})
	assert.Error(t, err)
	_, err = linkedlist.FromNodes(linkedlist.Singly, []linkedlist.Node{{ID: ""}})
	assert.Error(t, err)
}

func TestFromNodesRecomputesLinks(t *testing.T) {
	l, err := linkedlist.FromNodes(linkedlist.Doubly, []linkedlist.Node{
		{ID: "a", Value: value.Int(1), Next: "zzz"},
		{ID: "b", Value: value.Int(2), Prev: "zzz"},
	})
	require.NoError(t, err)
	nodes := l.Nodes()
	assert.Equal(t, "b", nodes[0].Next)
	assert.Equal(t, "a", nodes[1].Prev)
}

func TestWithKind(t *testing.T) {
	l := ints(t, linkedlist.Singly, 1, 2, 3).WithKind(linkedlist.CircularDoubly)
	assert.Equal(t, linkedlist.CircularDoubly, l.Kind())
	tail, _ := l.Tail()
	assert.Equal(t, "n1", tail.Next)
	assert.NoError(t, l.Validate())
}

func TestParseKind(t *testing.T) {
	for _, k := range allKinds {
		got, err := linkedlist.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := linkedlist.ParseKind("skip")
	assert.True(t, errors.Is(err, linkedlist.ErrUnknownKind))
}

func TestJSONRoundTrip(t *testing.T) {
	l := ints(t, linkedlist.CircularSingly, 4, 5)
	b, err := json.Marshal(l)
	require.NoError(t, err)

	var back linkedlist.List
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, l.Nodes(), back.Nodes())
	assert.Equal(t, linkedlist.CircularSingly, back.Kind())
}

func TestErrorsMatchSharedTaxonomy(t *testing.T) {
	assert.True(t, errors.Is(linkedlist.ErrIndexOutOfRange, trace.ErrInvalidIndex))
	assert.True(t, errors.Is(linkedlist.ErrEmptyList, trace.ErrEmptyStructure))
	assert.True(t, errors.Is(linkedlist.ErrNotFound, trace.ErrValueNotFound))
}
