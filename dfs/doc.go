// Package dfs implements depth‑first search traversal and cycle detection on
// a core.Graph. Traversals record every stack operation as a
// trace.TraversalStep so a renderer can replay them.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Visit and step hooks
//   - Cancellation via context.Context
//   - Depth limiting (MaxDepth > 0; 0 means no limit, the same as bfs)
//   - Neighbor filtering
//   - DetectCycles: reports a fundamental cycle basis of the undirected
//     graph using vertex coloring (White, Gray, Black) with back‑edge
//     recording and canonical signature deduplication.
//
// Trace:
//
//	The stack holds vertices, not edges, and a vertex is marked visited when
//	popped. The first step shows the start on the stack with nothing visited.
//	Each pop of an unvisited vertex records "Popped X from stack and marked as
//	visited"; each push records "Pushed neighbor Y to stack" with the edge
//	X→Y. Neighbors are pushed largest ID first, so the smallest is explored
//	first. Pops of vertices that were visited meanwhile produce no step. The
//	last step is "DFS Traversal Complete" with FinalOrder set.
//
// Complexity:
//
//   - DFS:           Time O(V + E), Memory O(V + E) (a vertex can be pushed once per edge)
//   - DetectCycles:  Time O(V + E + C·L), Memory O(V + L_max)
//     (C = #cycles, L = avg cycle length)
//
// Errors:
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is absent (matches trace.ErrInvalidStart).
//   - Wrapped OnVisit errors and ctx.Err() abort with the partial result.
package dfs
