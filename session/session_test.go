package session_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structviz/command"
	"github.com/katalvlaran/structviz/core"
	"github.com/katalvlaran/structviz/history"
	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/internal/testutil"
	"github.com/katalvlaran/structviz/linkedlist"
	"github.com/katalvlaran/structviz/session"
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/tree"
	"github.com/katalvlaran/structviz/value"
)

func valueStrings(vs []value.Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

func mustResolve(t *testing.T, s command.Structure, token string) command.Command {
	t.Helper()
	cmd, err := command.ResolveToken(s, token)
	require.NoError(t, err)
	return cmd
}

func newList(t *testing.T, opts ...session.Option) *session.List {
	opts = append([]session.Option{
		session.WithLogger(testutil.NewTestLogger(t)),
		session.WithGenerator(ident.Sequential("n")),
	}, opts...)
	return session.NewList(linkedlist.Singly, opts...)
}

func TestListHistoryOnlyOnSuccess(t *testing.T) {
	s := newList(t)
	_, err := s.Apply(mustResolve(t, command.List, "delete_head"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, trace.ErrEmptyStructure))
	assert.False(t, s.CanUndo())

	_, err = s.Apply(mustResolve(t, command.List, "insert:1"))
	require.NoError(t, err)
	assert.True(t, s.CanUndo())

	// reads never push
	_, err = s.Apply(mustResolve(t, command.List, "traverse"))
	require.NoError(t, err)
	out, err := s.Apply(mustResolve(t, command.List, "undo"))
	require.NoError(t, err)
	assert.Equal(t, "Undid the last change", out.Description)
	assert.True(t, s.List().Empty())

	_, err = s.Apply(mustResolve(t, command.List, "undo"))
	assert.True(t, errors.Is(err, history.ErrNothingToUndo))
	assert.True(t, session.Recoverable(err))
	assert.True(t, s.CanRedo())
}

func TestListHistoryLimit(t *testing.T) {
	s := newList(t, session.WithHistoryLimit(2))
	for _, tok := range []string{"insert:1", "insert:2", "insert:3"} {
		_, err := s.Apply(mustResolve(t, command.List, tok))
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := s.Apply(mustResolve(t, command.List, "undo"))
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"1"}, valueStrings(s.List().Values()))
	_, err := s.Apply(mustResolve(t, command.List, "undo"))
	assert.True(t, errors.Is(err, history.ErrNothingToUndo))
}

func TestClearEmptyLeavesNoUndoPoint(t *testing.T) {
	l := newList(t)
	out, err := l.Apply(mustResolve(t, command.List, "clear"))
	require.NoError(t, err)
	assert.NotEmpty(t, out.Description)
	assert.False(t, l.CanUndo())

	_, err = l.Apply(mustResolve(t, command.List, "insert:1"))
	require.NoError(t, err)
	_, err = l.Apply(mustResolve(t, command.List, "clear"))
	require.NoError(t, err)
	_, err = l.Apply(mustResolve(t, command.List, "clear"))
	require.NoError(t, err)
	_, err = l.Apply(mustResolve(t, command.List, "undo"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, valueStrings(l.List().Values()), "one undo restores the cleared list")

	tr := session.NewTree(tree.BST)
	_, err = tr.Apply(mustResolve(t, command.Tree, "clear"))
	require.NoError(t, err)
	assert.False(t, tr.CanUndo())
	_, err = tr.Apply(mustResolve(t, command.Tree, "insert:4"))
	require.NoError(t, err)
	_, err = tr.Apply(mustResolve(t, command.Tree, "clear"))
	require.NoError(t, err)
	_, err = tr.Apply(mustResolve(t, command.Tree, "clear"))
	require.NoError(t, err)
	_, err = tr.Apply(mustResolve(t, command.Tree, "undo"))
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Tree().Len())
}

func TestListKindChangeClears(t *testing.T) {
	s := newList(t)
	_, err := s.Apply(mustResolve(t, command.List, "insert:1"))
	require.NoError(t, err)

	_, err = s.Apply(mustResolve(t, command.List, "change_list_type:doubly"))
	require.NoError(t, err)
	assert.Equal(t, linkedlist.Doubly, s.List().Kind())
	assert.True(t, s.List().Empty())
	assert.False(t, s.CanUndo())
}

func TestListDatasetConform(t *testing.T) {
	s := newList(t, session.WithDataset(value.Colors))
	out, err := s.Apply(mustResolve(t, command.List, "insert_head:red"))
	require.NoError(t, err)
	assert.Equal(t, "red is now the head node", out.Description)

	// a number on a text dataset becomes text
	cmd := command.Command{Structure: command.List, Op: command.OpInsertTail, Value: value.Int(7)}
	_, err = s.Apply(cmd)
	require.NoError(t, err)
	tail, ok := s.List().Tail()
	require.True(t, ok)
	assert.False(t, tail.Value.IsNumber())
}

func TestWrongStructure(t *testing.T) {
	s := newList(t)
	_, err := s.Apply(mustResolve(t, command.Tree, "inorder"))
	assert.True(t, errors.Is(err, session.ErrWrongStructure))
	assert.False(t, session.Recoverable(err))
}

func TestTreeSession(t *testing.T) {
	s := session.NewTree(tree.AVL, session.WithGenerator(ident.Sequential("t")))
	for _, v := range []string{"1", "2", "3"} {
		_, err := s.Apply(mustResolve(t, command.Tree, "insert:"+v))
		require.NoError(t, err)
	}
	root, ok := s.Tree().Root()
	require.True(t, ok)
	assert.Equal(t, "2", root.Value.String(), "AVL rotation keeps the tree balanced")

	out, err := s.Apply(mustResolve(t, command.Tree, "stats"))
	require.NoError(t, err)
	assert.Equal(t, "Nodes: 3, Height: 2, Balanced: yes, Min: 1, Max: 3", out.Description)
	assert.Equal(t, 2, out.Result.Height)

	out, err = s.Apply(mustResolve(t, command.Tree, "find_max"))
	require.NoError(t, err)
	assert.Equal(t, "Maximum value is 3", out.Description)

	_, err = s.Apply(mustResolve(t, command.Tree, "heapify:4,5"))
	assert.True(t, errors.Is(err, trace.ErrUnknownOperation))
	assert.Equal(t, 3, s.Tree().Len())
}

func TestTreeHeapifyRejectsText(t *testing.T) {
	s := session.NewTree(tree.MinHeap)
	_, err := s.Apply(mustResolve(t, command.Tree, "heapify:3,x"))
	assert.True(t, errors.Is(err, value.ErrNotNumeric))
	assert.True(t, s.Tree().Empty())
	assert.False(t, s.CanUndo())
}

func TestGraphSession(t *testing.T) {
	s, err := session.NewGraph(session.WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)

	st, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 6, st.NodeCount)
	assert.Equal(t, 8, st.EdgeCount)
	assert.True(t, st.HasCycle)
	assert.Len(t, st.Cycles, 3)

	out, err := s.Apply(mustResolve(t, command.Graph, "dijkstra:1"))
	require.NoError(t, err)
	assert.Equal(t, trace.Distance(2), out.Result.Distances["3"])
	assert.Equal(t, "Dijkstra's Algorithm Complete", out.Description)
	assert.False(t, s.CanUndo(), "traversals leave history alone")

	// the returned graph is a copy
	g := s.Graph()
	_, err = g.RemoveNode("1")
	require.NoError(t, err)
	assert.Equal(t, 6, s.Graph().NodeCount())

	out, err = s.Apply(mustResolve(t, command.Graph, "add_node:9"))
	require.NoError(t, err)
	n, ok := out.Result.Graph.Node("9")
	require.True(t, ok)
	assert.Equal(t, session.NewNodePosition.X, n.X)
	assert.Equal(t, session.NewNodePosition.Y, n.Y)

	_, err = s.Apply(mustResolve(t, command.Graph, "add_node:9"))
	assert.True(t, errors.Is(err, trace.ErrDuplicateValue))
	assert.True(t, session.Recoverable(err))
}

func TestGraphResultIsDetached(t *testing.T) {
	s, err := session.NewGraph()
	require.NoError(t, err)

	for _, tok := range []string{"bfs:1", "add_node:9", "undo", "add_edge:1:1"} {
		out, _ := s.Apply(mustResolve(t, command.Graph, tok))
		require.NotNil(t, out.Result.Graph, tok)
		require.NoError(t, out.Result.Graph.AddNode(core.Node{ID: "x"}), tok)
		_, ok := s.Graph().Node("x")
		assert.False(t, ok, "%s: result graph shares storage with the session", tok)
	}
	assert.Equal(t, 6, s.Graph().NodeCount())
}

func TestGraphTraversalCancelled(t *testing.T) {
	s, err := session.NewGraph()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.ApplyContext(ctx, mustResolve(t, command.Graph, "bfs"))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, session.Recoverable(err))
}

func TestNewGraphRejectsBadSize(t *testing.T) {
	_, err := session.NewGraph(session.WithGraphNodes(0))
	require.Error(t, err)
}
