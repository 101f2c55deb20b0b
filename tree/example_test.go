package tree_test

import (
	"fmt"

	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/tree"
	"github.com/katalvlaran/structviz/value"
)

// ExampleTree_Insert shows an AVL insert that triggers a single left rotation.
func ExampleTree_Insert() {
	gen := ident.Sequential("n")
	t, _ := tree.Build(tree.AVL, gen, value.Int(10), value.Int(20))

	res, _ := t.Insert(value.Int(30), gen)
	for _, st := range res.Steps {
		fmt.Println(st.Description)
	}
	root, _ := res.Tree.Root()
	fmt.Println("root:", root.Value)

	// Output:
	// Inserting 30
	// 30 > 10, go right
	// 30 > 20, go right
	// Inserted 30 as the right child of 20
	// Right-Right case at 10: left rotation
	// Inserted 30. Tree has 3 nodes
	// root: 20
}

// ExampleTree_ExtractRoot removes the maximum of a max-heap.
func ExampleTree_ExtractRoot() {
	t, _ := tree.Build(tree.MaxHeap, ident.Sequential("h"),
		value.Int(5), value.Int(3), value.Int(8), value.Int(1))
	fmt.Println(t.HeapValues())

	res, _ := t.ExtractRoot()
	for _, st := range res.Steps {
		fmt.Println(st.Description)
	}
	fmt.Println(res.Tree.HeapValues())

	// Output:
	// [8 3 5 1]
	// Extracting root 8
	// Moving last value 1 to the root
	// Removed the last slot; 1 is at the root
	// 5 is the larger child of 1
	// Swapped: 1 moves down to index 2
	// Heap property holds; 1 stays at index 2
	// Extracted 8. Heap has 3 nodes
	// [5 3 1]
}

// ExampleTree_Traverse prints the final frame of an in-order walk.
func ExampleTree_Traverse() {
	t, _ := tree.Build(tree.BST, ident.Sequential("b"),
		value.Int(10), value.Int(5), value.Int(15), value.Int(3), value.Int(7))

	res, _ := t.Traverse(tree.InOrder)
	fmt.Println(res.Description())

	// Output:
	// In-order traversal: 3, 5, 7, 10, 15
}
