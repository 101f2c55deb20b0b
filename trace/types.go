// Package trace holds the records every engine emits while it works.
//
// Engines compute their whole trace eagerly and return it together with the
// resulting structure. A trace is a slice of immutable steps; each step is
// self-contained, so any prefix can be rendered without re-running the engine.
//
// Two shapes exist:
//
//   - Step[S] pairs a structure snapshot S with a per-node status Overlay.
//     Lists and trees use it.
//   - TraversalStep describes one moment of a graph traversal: visited set,
//     frontier contents, current node, highlighted edges and distances.
//
// Errors:
//
//	ErrInvalidIndex      - index outside the valid insertion/deletion range.
//	ErrEmptyStructure    - operation requiring at least one node on an empty structure.
//	ErrValueNotFound     - search or delete-by-value missed.
//	ErrDuplicateValue    - ordered tree already holds the value.
//	ErrUnknownOperation  - unrecognized command tag or op outside a discipline.
//	ErrDanglingReference - edge referencing an unknown node.
//	ErrInvalidStart      - traversal start is not a node of the graph.
//
// All of them are recoverable: the engine returns the unmodified structure and
// a final step describing the failure.
package trace

import "github.com/cockroachdb/errors"

// Sentinel errors shared across engines.
var (
	ErrInvalidIndex      = errors.New("trace: invalid index")
	ErrEmptyStructure    = errors.New("trace: structure is empty")
	ErrValueNotFound     = errors.New("trace: value not found")
	ErrDuplicateValue    = errors.New("trace: duplicate value")
	ErrUnknownOperation  = errors.New("trace: unknown operation")
	ErrDanglingReference = errors.New("trace: dangling reference")
	ErrInvalidStart      = errors.New("trace: invalid start node")
)

// Recoverable reports whether err belongs to the shared recoverable taxonomy.
func Recoverable(err error) bool {
	return errors.IsAny(err,
		ErrInvalidIndex, ErrEmptyStructure, ErrValueNotFound, ErrDuplicateValue,
		ErrUnknownOperation, ErrDanglingReference, ErrInvalidStart)
}
