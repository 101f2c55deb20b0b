// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path depths, parent links, visit order and a
// step-by-step trace of the queue for visualization.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Steps: one trace.TraversalStep per queue event
//   - Supports functional hooks at four stages:
//   - OnEnqueue (when a vertex is marked and queued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - OnStep    (every recorded step, as it happens)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0). dfs reads
//     MaxDepth the same way.
//
// Trace
//
//	A vertex is marked visited the moment it is enqueued, so Visited in every
//	step lists vertices in discovery order and Frontier is the queue, head
//	first. The steps are:
//	  - "Initialize BFS queue with start node S"
//	  - "Dequeued X. Processing neighbors..."   (Current = X)
//	  - "Visited neighbor Y and added to queue" (Edges = [X→Y])
//	  - "BFS Traversal Complete"                (FinalOrder set)
//	An unknown start records one step saying so and returns an error
//	matching both ErrStartVertexNotFound and trace.ErrInvalidStart.
//
// Determinism
//
//	Neighbors come from core.Graph.Adjacency, sorted by core.CompareIDs, and
//	BFS enqueues them in that order, so the visit sequence is reproducible.
//	Edge weights are ignored: every edge counts as one step.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus O(V·S) to snapshot S steps
//   - Memory: O(V) for queue, Depth, Parent and visited set; O(V·S) for the trace
//
// Usage
//
//		// Basic BFS with no options:
//		result, err := bfs.BFS(g, "1")
//		if err != nil {
//	      // handle one of:
//	      // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or hook errors
//		}
//
//		// With functional options:
//		result, err := bfs.BFS(
//		    g, "1",
//		    bfs.WithContext(ctx),
//		    bfs.WithMaxDepth(3),
//		    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//		    bfs.WithOnStep(func(s trace.TraversalStep) { /* ... */ }),
//		)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err().
package bfs
