// constants.go - shared constants used by graph builders: method names,
// minimum sizes, canvas defaults and weight/probability bounds.

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodInitial is the canonical name for the Sample constructor.
	MethodInitial = "Initial"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
)

// CenterVertexID is the identifier for the hub vertex in Star and Wheel.
const CenterVertexID = "Center"

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinInitialNodes is the smallest sample graph: a single isolated node.
const MinInitialNodes = 1

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star: center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel: a 3-cycle plus hub.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
const MinGridDim = 1

// ChordMinNodes is the node count above which Sample adds its two chords.
const ChordMinNodes = 4

//-----------------------------------------------------------------------------
// Canvas defaults
//-----------------------------------------------------------------------------

const (
	// DefaultCenterX is the x coordinate of the layout center.
	DefaultCenterX = 400.0
	// DefaultCenterY is the y coordinate of the layout center.
	DefaultCenterY = 300.0
	// DefaultRadius is the radius of ring layouts.
	DefaultRadius = 200.0
	// DefaultGridGap is the distance between neighboring grid cells.
	DefaultGridGap = 80.0
)

//-----------------------------------------------------------------------------
// Default Weights and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the weight assigned to each edge of a weighted graph
// when no custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// MinProbability is the lower bound for p in RandomSparse, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomSparse, inclusive.
const MaxProbability = 1.0
