// Package core defines the Graph, Node and Edge types shared by the traversal
// engines, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID         - node ID is the empty string.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrDuplicateNode       - a node with the same ID already exists.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop; traversal graphs never carry them.
//	ErrMultiEdgeNotAllowed - a second edge between the same two nodes.
package core

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/trace"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	// It matches trace.ErrDanglingReference.
	ErrNodeNotFound = errors.Wrap(trace.ErrDanglingReference, "core: node not found")

	// ErrDuplicateNode indicates AddNode met an existing ID.
	ErrDuplicateNode = errors.Wrap(trace.ErrDuplicateValue, "core: node already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.Wrap(trace.ErrValueNotFound, "core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Node is a graph vertex with a display label and a canvas position.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string `json:"id" yaml:"id"`

	// Label is the value shown for the node; defaults to ID.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// X and Y place the node for renderers. They never affect traversal.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Edge connects two nodes. Edges are undirected for traversal purposes:
// Source and Target only record how the edge was entered.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string `json:"id" yaml:"id"`

	// Source is the first endpoint.
	Source string `json:"source" yaml:"source"`

	// Target is the second endpoint.
	Target string `json:"target" yaml:"target"`

	// Weight is stored for display only; the traversal engines treat every
	// edge as costing 1.
	Weight int64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Joins reports whether e connects a and b in either direction.
func (e Edge) Joins(a, b string) bool {
	return (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the in-memory undirected graph the traversal engines read.
//
// muNode protects nodes; muEdge protects edges, edge order and the ID
// counter. Lock order is always muNode then muEdge.
type Graph struct {
	muNode sync.RWMutex // guards nodes
	muEdge sync.RWMutex // guards edges, seq and nextEdgeID

	// Configuration flags
	weighted bool // allow non-zero weights

	// Storage
	nextEdgeID uint64            // edge ID and insertion sequence generator
	nodes      map[string]*Node  // node ID → Node
	edges      map[string]*Edge  // edge ID → Edge
	seq        map[string]uint64 // edge ID → insertion sequence, for stable Edges()
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
		seq:   make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
