package core_test

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/core"
)

// ExampleGraph builds a small graph, queries it and removes a node.
func ExampleGraph() {
	g := core.NewGraph()
	for _, id := range []string{"10", "2", "1", "3"} {
		_ = g.AddNode(core.Node{ID: id})
	}
	e1, _ := g.AddEdge("1", "2", 0)
	_, _ = g.AddEdge("2", "3", 0)

	fmt.Println("nodes:", g.NodeIDs())
	nb, _ := g.Neighbors("2")
	fmt.Println("neighbors of 2:", nb)
	fmt.Println("first edge:", e1)
	fmt.Printf("stats: %+v\n", g.Stats())

	removed, _ := g.RemoveNode("2")
	fmt.Println("removed edges:", len(removed))
	fmt.Println("components now:", g.Stats().Components)

	// Output:
	// nodes: [1 2 3 10]
	// neighbors of 2: [1 3]
	// first edge: e1
	// stats: {NodeCount:4 EdgeCount:2 Components:2 Weighted:false}
	// removed edges: 2
	// components now: 3
}

// ExampleGraph_AddEdge shows the rejections traversal graphs enforce.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	_ = g.AddNode(core.Node{ID: "a"})
	_ = g.AddNode(core.Node{ID: "b"})

	_, err := g.AddEdge("a", "a", 0)
	fmt.Println("loop:", errors.Is(err, core.ErrLoopNotAllowed))
	_, err = g.AddEdge("a", "z", 0)
	fmt.Println("dangling:", errors.Is(err, core.ErrNodeNotFound))
	_, _ = g.AddEdge("a", "b", 0)
	_, err = g.AddEdge("b", "a", 0)
	fmt.Println("parallel:", errors.Is(err, core.ErrMultiEdgeNotAllowed))

	// Output:
	// loop: true
	// dangling: true
	// parallel: true
}

// ExampleCompareIDs orders numeric ids before the rest.
func ExampleCompareIDs() {
	ids := []string{"b", "10", "a", "9"}
	core.SortIDs(ids)
	fmt.Println(ids)

	// Output:
	// [9 10 a b]
}
