// Package tree implements a step-tracing binary tree engine under four
// disciplines: BST, AVL, max-heap and min-heap.
//
// Representation:
//
//	Nodes live in an arena keyed by id. Left, Right and Parent are id
//	references, so parent back-links never create ownership cycles.
//	Heaps additionally keep their implicit array as an ordered slice of ids;
//	parent(i) = (i-1)/2, left(i) = 2i+1, right(i) = 2i+2, and every link is
//	derived from those positions.
//
// Every operation is a method on the immutable Tree value and returns a
// Result with the new Tree and its full trace. Statuses live in per-step
// overlays, never on nodes.
//
// Operations by discipline:
//
//	            Insert Delete Search ExtractRoot Heapify Traverse FindMin/Max Height Clear
//	BST, AVL      ✓      ✓      ✓                            ✓         ✓          ✓     ✓
//	heaps         ✓                        ✓        ✓        ✓         ✓          ✓     ✓
//
// Operations outside a discipline return ErrUnsupported, which matches
// trace.ErrUnknownOperation.
//
// AVL rebalancing walks parent links upward from the changed position and
// picks the rotation from the balance factor of the taller child:
//
//	balance > 1,  child >= 0 → right rotation        (Left-Left)
//	balance > 1,  child <  0 → left then right       (Left-Right)
//	balance < -1, child <= 0 → left rotation         (Right-Right)
//	balance < -1, child >  0 → right then left       (Right-Left)
//
// Heap sifts swap values only. Node ids stay in their slots, so overlays
// follow the slot the moving value lands in.
//
// Flatten and Unflatten convert to and from a level-ordered []FlatNode;
// Layout offers renderer coordinates as a separate pure helper.
package tree
