// Package linkedlist implements a step-tracing linked list engine over four
// topologies: singly, doubly, circular singly and circular doubly.
//
// A List is an immutable value. Every operation is a method that returns a
// Result holding the new List and the complete ordered trace that led to it:
//
//	res, err := l.InsertAt(2, value.Int(7), gen)
//	for _, st := range res.Steps {
//		render(st.State, st.Overlay, st.Description)
//	}
//
// Node statuses never live on the nodes. Each Step pairs a snapshot with a
// trace.Overlay keyed by node id, so replaying any prefix of a trace or
// keeping an old List for undo is always safe.
//
// Links (Next, and Prev for doubly kinds) are recomputed from sequence order
// on every commit and checked by Validate; a violation after a commit is an
// internal bug and panics with an assertion failure.
//
// Failure policy:
//
//   - InsertAt outside [0, Len] and DeleteAt outside [0, Len-1]: ErrIndexOutOfRange.
//   - Any delete on an empty list: ErrEmptyList.
//   - Search or DeleteValue miss: ErrNotFound.
//
// On failure the input list is returned unchanged together with a final step
// describing the problem. Traverse, Sort, Reverse and FindMiddle on an empty
// list are no-ops and succeed.
package linkedlist
