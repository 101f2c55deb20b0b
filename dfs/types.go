package dfs

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/trace"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph. It matches trace.ErrInvalidStart.
	ErrStartVertexNotFound = errors.Wrap(trace.ErrInvalidStart, "dfs: start vertex not found")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is popped and marked visited.
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnStep, if non-nil, receives a copy of every recorded step.
	OnStep func(trace.TraversalStep)

	// MaxDepth, if > 0, stops pushing neighbors of vertices at that depth.
	// A value of 0 disables the limit, as in bfs.
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before it is pushed.
	// Return true to push that neighbor, false to skip it.
	FilterNeighbor func(id string) bool

	// SkippedNeighbors tracks how many neighbor vertices were skipped
	// due to FilterNeighbor returning false. Useful for diagnostics.
	SkippedNeighbors int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No hooks
//   - No depth limit (MaxDepth = 0)
//   - No neighbor filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:              context.Background(),
		OnVisit:          nil,
		OnStep:           nil,
		MaxDepth:         0,
		FilterNeighbor:   nil,
		SkippedNeighbors: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a visit hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnStep returns an Option that streams each recorded step to fn.
func WithOnStep(fn func(trace.TraversalStep)) Option {
	return func(o *DFSOptions) {
		o.OnStep = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit
// (inclusive). It reads the same as bfs.WithMaxDepth:
//
//	limit > 0: vertices deeper than limit are never pushed
//	limit == 0: explicit no depth limit
//	limit < 0: invalid option → ErrOptionViolation
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// It reports visit order, discovery depths, parent links, and visited flags,
// as well as diagnostics like SkippedNeighbors.
type DFSResult struct {
	// Order records vertices in the sequence they were popped and marked visited.
	Order []string

	// Depth maps each vertex ID to the depth of the stack entry it was visited from.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex whose push led to its visit.
	// The start vertex does not appear in this map.
	Parent map[string]string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int

	// Steps is the recorded trace.
	Steps []trace.TraversalStep
}
