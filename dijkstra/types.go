// File: types.go
// Role: Options, sentinels and the Result of a Dijkstra run.

package dijkstra

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/trace"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.Wrap(trace.ErrInvalidStart, "dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.Wrap(trace.ErrInvalidStart, "dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (must be non-empty and present in the graph).
// MaxDistance – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is trace.Infinity (no cap).
type Options struct {
	Source      string                    // The ID of the source vertex
	MaxDistance trace.Distance            // Maximum distance to explore
	Ctx         context.Context           // Cancellation
	OnStep      func(trace.TraversalStep) // Receives a copy of each step

	err error // first invalid option
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values cause ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = errors.Wrapf(ErrBadMaxDistance, "got %d", max)
			return
		}
		o.MaxDistance = trace.Distance(max)
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep streams every recorded step to fn.
func WithOnStep(fn func(trace.TraversalStep)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:      <as passed> (no validation here; validated in Dijkstra).
//   - MaxDistance: trace.Infinity (no distance limit; explore all reachable).
//   - Ctx:         context.Background().
//   - OnStep:      no-op.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: trace.Infinity,
		Ctx:         context.Background(),
		OnStep:      func(trace.TraversalStep) {},
	}
}

// Result is the outcome of one Dijkstra run.
//
//   - Dist:  every vertex → hop distance from Source; trace.Infinity if unreached.
//   - Prev:  reached vertex → predecessor on a shortest path; Source has none.
//   - Order: vertices in the order their distance became final.
//   - Steps: the recorded trace.
type Result struct {
	Dist  map[string]trace.Distance
	Prev  map[string]string
	Order []string
	Steps []trace.TraversalStep
}

// PathTo walks Prev back from dest and returns Source → … → dest.
// It returns an error matching trace.ErrValueNotFound if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Dist[dest]
	if !ok || d == trace.Infinity {
		return nil, errors.Wrapf(trace.ErrValueNotFound, "dijkstra: no path to %q", dest)
	}
	path := []string{dest}
	for cur := dest; ; {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
