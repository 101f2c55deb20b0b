package linkedlist_test

import (
	"fmt"

	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/linkedlist"
	"github.com/katalvlaran/structviz/value"
)

// ExampleList_FindMiddle walks the slow/fast pointers over five nodes.
func ExampleList_FindMiddle() {
	l, _ := linkedlist.FromValues(linkedlist.Singly, ident.Sequential("n"),
		value.Int(1), value.Int(2), value.Int(3), value.Int(4), value.Int(5))

	res, _ := l.FindMiddle()
	for _, st := range res.Steps {
		fmt.Println(st.Description)
	}

	// Output:
	// Slow pointer at position 0, fast pointer at position 0
	// Slow pointer at position 1, fast pointer at position 2
	// Middle element is 3
}

// ExampleList_InsertAt shows the trace of a positional insert.
func ExampleList_InsertAt() {
	gen := ident.Sequential("n")
	l, _ := linkedlist.FromValues(linkedlist.Doubly, gen, value.Str("red"), value.Str("blue"))

	res, _ := l.InsertAt(1, value.Str("green"), gen)
	for _, st := range res.Steps {
		fmt.Println(st.Description)
	}
	fmt.Println(res.List.Values())

	// Output:
	// Navigating to position 1
	// At position 0 (value red)
	// Inserted green at position 1
	// List now has 3 nodes
	// [red green blue]
}
