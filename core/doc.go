// Package core provides the thread-safe, in-memory Graph the traversal
// engines (bfs, dfs, dijkstra) read.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected: an Edge records Source and Target only as entered.
//   - Simple: no self-loops (ErrLoopNotAllowed), at most one edge per pair
//     (ErrMultiEdgeNotAllowed).
//   - Unit cost: weights may be stored (WithWeighted) for display, but every
//     traversal treats an edge as costing 1.
//   - Laid out: each Node carries a Label and X/Y canvas coordinates.
//   - Separate sync.RWMutex for nodes (muNode) and edges (muEdge), always
//     acquired in that order.
//
// Why a fresh adjacency per call?
//
//	Traversal determinism is load-bearing for the step traces. Adjacency()
//	rebuilds a symmetric neighbor map from the current node and edge sets on
//	every call and sorts each list with CompareIDs (numeric IDs by value,
//	then the rest lexicographically). Nothing is cached, so an edit between
//	two traversals can never leave stale neighbors behind.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n Node) error                     // O(1)
//	HasNode(id string) bool                   // O(1)
//	MoveNode(id string, x, y float64) error   // O(1)
//	RemoveNode(id string) ([]Edge, error)     // O(E log E); returns removed incident edges
//
//	// Edge lifecycle
//	AddEdge(source, target string, weight int64) (edgeID string, err error) // O(E)
//	RemoveEdge(edgeID string) (Edge, error)   // O(1)
//	RemoveEdgeBetween(a, b string) (Edge, error)
//	HasEdge(a, b string) bool
//
//	// Query
//	Adjacency() map[string][]string           // O(V + E log E)
//	Neighbors(id string) ([]string, error)    // O(E + d log d)
//	Nodes() []Node, NodeIDs() []string        // CompareIDs order
//	Edges() []Edge                            // insertion order
//	Stats() GraphStats                        // counts + connected components
//
//	// Snapshots
//	Clone() *Graph, CloneEmpty() *Graph, Clear()
//
//	// External input
//	FromParts(nodes, edges) (*Graph, dropped []Edge, error)
//
// FromParts is the only way malformed input reaches a Graph: edges naming
// unknown nodes, self-loops and repeated pairs are filtered out and returned
// to the caller, who decides whether to warn about them.
//
// Errors:
//
//	ErrEmptyNodeID         – zero-length node ID
//	ErrNodeNotFound        – missing node (matches trace.ErrDanglingReference)
//	ErrDuplicateNode       – repeated node ID (matches trace.ErrDuplicateValue)
//	ErrEdgeNotFound        – missing edge (matches trace.ErrValueNotFound)
//	ErrBadWeight           – non-zero weight on an unweighted graph
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – second edge between the same pair
package core
