// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// core.Graph in unit-cost form, recording a step-by-step trace for playback.
//
// Overview:
//
//   - Every edge costs 1, whatever Weight it stores, so the distance of a vertex
//     is its hop count from the source.
//   - The priority queue is a slice stable-sorted by distance before every pop.
//     This is O(Q log Q) per pop and exists so the queue rendered in each step
//     matches what was actually popped, ties in push order.
//   - Relaxation is strict: a neighbor is re-pushed only when a shorter distance
//     is found. Popping an already finalized vertex records no step.
//   - The terminal step carries the full distance table, Infinity for every
//     vertex the source cannot reach, and the order vertices were finalized in.
//
// Trace descriptions:
//
//	Initialize Dijkstra. Start node S distance = 0, others = Infinity.
//	Processing node U with current shortest distance D
//	Relaxing edge U->V. New distance: D
//	Dijkstra's Algorithm Complete
//
// Queue entries render as "id(d)" via trace.FrontierItem.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph to Dijkstra.
//   - ErrEmptySource, ErrVertexNotFound:
//     The source is empty or absent. Both match trace.ErrInvalidStart and come
//     with a one-step Result describing the invalid start.
//   - ErrBadMaxDistance:
//     Returned if WithMaxDistance is given a negative value.
//   - Context errors from WithContext are returned unwrapped along with the
//     partial Result.
//
// Example:
//
//	g, _ := builder.Initial(6)
//	res, err := dijkstra.Dijkstra(g, "1")
//	if err != nil {
//	    return err
//	}
//	path, _ := res.PathTo("3") // [1 2 3]
package dijkstra
