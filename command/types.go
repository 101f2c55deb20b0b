package command

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/linkedlist"
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/tree"
	"github.com/katalvlaran/structviz/value"
)

// Sentinel errors.
var (
	// ErrUnknownOperation matches trace.ErrUnknownOperation.
	ErrUnknownOperation = errors.Wrap(trace.ErrUnknownOperation, "command")

	// ErrMissingOperand is returned when an op needs an operand the intent lacks.
	ErrMissingOperand = errors.New("command: missing operand")

	// ErrBadOperand is returned when an operand cannot be interpreted.
	ErrBadOperand = errors.New("command: bad operand")

	// ErrUnknownStructure is returned by ParseStructure.
	ErrUnknownStructure = errors.New("command: unknown structure")
)

// Structure names the kind of data structure a command targets.
type Structure uint8

const (
	List Structure = iota
	Tree
	Graph
)

var structureNames = [...]string{List: "list", Tree: "tree", Graph: "graph"}

func (s Structure) String() string {
	if int(s) < len(structureNames) {
		return structureNames[s]
	}
	return "structure(" + strconv.Itoa(int(s)) + ")"
}

// ParseStructure resolves "list", "tree" or "graph".
func ParseStructure(name string) (Structure, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range structureNames {
		if n == name {
			return Structure(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStructure, "%q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Structure) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Structure) UnmarshalText(b []byte) error {
	v, err := ParseStructure(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Op is the closed set of operations across all structures.
type Op uint8

const (
	OpUnknown Op = iota

	// list
	OpInsertHead
	OpInsertTail
	OpInsertAt
	OpDeleteValue
	OpDeleteHead
	OpDeleteTail
	OpDeleteAt
	OpTraverse
	OpReverse
	OpSort
	OpFindMiddle
	OpChangeListType

	// tree
	OpInsert
	OpDelete
	OpInOrder
	OpPreOrder
	OpPostOrder
	OpLevelOrder
	OpFindMin
	OpFindMax
	OpGetHeight
	OpExtractRoot
	OpHeapify
	OpStats
	OpChangeTreeType

	// graph
	OpStartTraversal
	OpAddNode
	OpRemoveNode
	OpAddEdge
	OpRemoveEdge
	OpReset

	// shared
	OpSearch
	OpClear
	OpUndo
	OpRedo
	OpChangeDataset

	numOps
)

var opNames = [numOps]string{
	OpUnknown:        "unknown",
	OpInsertHead:     "insert_head",
	OpInsertTail:     "insert_tail",
	OpInsertAt:       "insert_at",
	OpDeleteValue:    "delete_value",
	OpDeleteHead:     "delete_head",
	OpDeleteTail:     "delete_tail",
	OpDeleteAt:       "delete_at",
	OpTraverse:       "traverse",
	OpReverse:        "reverse",
	OpSort:           "sort",
	OpFindMiddle:     "find_middle",
	OpChangeListType: "change_list_type",
	OpInsert:         "insert",
	OpDelete:         "delete",
	OpInOrder:        "inorder",
	OpPreOrder:       "preorder",
	OpPostOrder:      "postorder",
	OpLevelOrder:     "level_order",
	OpFindMin:        "find_min",
	OpFindMax:        "find_max",
	OpGetHeight:      "get_height",
	OpExtractRoot:    "extract_root",
	OpHeapify:        "heapify",
	OpStats:          "stats",
	OpChangeTreeType: "change_tree_type",
	OpStartTraversal: "start_traversal",
	OpAddNode:        "add_node",
	OpRemoveNode:     "remove_node",
	OpAddEdge:        "add_edge",
	OpRemoveEdge:     "remove_edge",
	OpReset:          "reset",
	OpSearch:         "search",
	OpClear:          "clear",
	OpUndo:           "undo",
	OpRedo:           "redo",
	OpChangeDataset:  "change_dataset",
}

// String returns the canonical tag of op.
func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Mutates reports whether a successful op changes the structure and so must
// push a history snapshot. Undo, redo and kind changes manage history
// themselves and report false.
func (op Op) Mutates() bool {
	switch op {
	case OpInsertHead, OpInsertTail, OpInsertAt,
		OpDeleteValue, OpDeleteHead, OpDeleteTail, OpDeleteAt,
		OpReverse, OpSort, OpClear,
		OpInsert, OpDelete, OpExtractRoot, OpHeapify,
		OpAddNode, OpRemoveNode, OpAddEdge, OpRemoveEdge, OpReset:
		return true
	default:
		return false
	}
}

// Algorithm selects a graph traversal.
type Algorithm uint8

const (
	BFS Algorithm = iota
	DFS
	Dijkstra
)

var algorithmNames = [...]string{BFS: "bfs", DFS: "dfs", Dijkstra: "dijkstra"}

func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return "algorithm(" + strconv.Itoa(int(a)) + ")"
}

// ParseAlgorithm resolves "bfs", "dfs" or "dijkstra", case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, errors.Wrapf(ErrBadOperand, "unknown algorithm %q", name)
}

// Command is a resolved, validated operation. Only the fields its Op uses
// are set.
type Command struct {
	Structure Structure
	Op        Op

	// Value is the operand of inserts, deletes by value and searches. It is
	// raw: sessions conform it to their dataset.
	Value value.Value
	// Values feeds heapify.
	Values []value.Value
	// Position is the index of insert_at and delete_at.
	Position int

	ListKind  linkedlist.Kind
	TreeKind  tree.Kind
	Dataset   value.Dataset
	Order     tree.Order
	Algorithm Algorithm

	// Node is the id for add_node, remove_node and the traversal start.
	Node string
	// Source and Target name the endpoints for add_edge and remove_edge.
	Source, Target string
}

// String renders the command the way ParseToken reads it back.
func (c Command) String() string {
	parts := []string{c.Op.String()}
	switch c.Op {
	case OpInsertHead, OpInsertTail, OpDeleteValue, OpSearch, OpInsert, OpDelete:
		parts = append(parts, c.Value.String())
	case OpInsertAt:
		parts = append(parts, c.Value.String(), strconv.Itoa(c.Position))
	case OpDeleteAt:
		parts = append(parts, strconv.Itoa(c.Position))
	case OpHeapify:
		vals := make([]string, len(c.Values))
		for i, v := range c.Values {
			vals[i] = v.String()
		}
		parts = append(parts, strings.Join(vals, ","))
	case OpChangeListType:
		parts = append(parts, c.ListKind.String())
	case OpChangeTreeType:
		parts = append(parts, c.TreeKind.String())
	case OpChangeDataset:
		parts = append(parts, c.Dataset.String())
	case OpStartTraversal:
		parts = append(parts, c.Algorithm.String(), c.Node)
	case OpAddNode, OpRemoveNode:
		parts = append(parts, c.Node)
	case OpAddEdge, OpRemoveEdge:
		parts = append(parts, c.Source, c.Target)
	}
	return strings.Join(parts, ":")
}
