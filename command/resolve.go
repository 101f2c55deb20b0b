package command

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/linkedlist"
	"github.com/katalvlaran/structviz/tree"
	"github.com/katalvlaran/structviz/value"
)

// vocabularies maps each structure's accepted tags, aliases included, to ops.
var vocabularies = map[Structure]map[string]Op{
	List: {
		"insert":           OpInsertTail,
		"insert_tail":      OpInsertTail,
		"insert_head":      OpInsertHead,
		"insert_at":        OpInsertAt,
		"delete":           OpDeleteValue,
		"delete_value":     OpDeleteValue,
		"delete_head":      OpDeleteHead,
		"delete_tail":      OpDeleteTail,
		"delete_at":        OpDeleteAt,
		"search":           OpSearch,
		"traverse":         OpTraverse,
		"reverse":          OpReverse,
		"sort":             OpSort,
		"find_middle":      OpFindMiddle,
		"clear":            OpClear,
		"undo":             OpUndo,
		"redo":             OpRedo,
		"change_list_type": OpChangeListType,
		"change_dataset":   OpChangeDataset,
	},
	Tree: {
		"insert":           OpInsert,
		"delete":           OpDelete,
		"delete_value":     OpDelete,
		"search":           OpSearch,
		"inorder":          OpInOrder,
		"preorder":         OpPreOrder,
		"postorder":        OpPostOrder,
		"level_order":      OpLevelOrder,
		"find_min":         OpFindMin,
		"find_max":         OpFindMax,
		"get_height":       OpGetHeight,
		"extract_root":     OpExtractRoot,
		"heapify":          OpHeapify,
		"stats":            OpStats,
		"clear":            OpClear,
		"undo":             OpUndo,
		"redo":             OpRedo,
		"change_tree_type": OpChangeTreeType,
		"change_dataset":   OpChangeDataset,
	},
	Graph: {
		"start_traversal": OpStartTraversal,
		"bfs":             OpStartTraversal,
		"dfs":             OpStartTraversal,
		"dijkstra":        OpStartTraversal,
		"add_node":        OpAddNode,
		"remove_node":     OpRemoveNode,
		"add_edge":        OpAddEdge,
		"remove_edge":     OpRemoveEdge,
		"reset":           OpReset,
		"undo":            OpUndo,
		"redo":            OpRedo,
	},
}

// traversalOrders maps tree traversal ops to engine orders.
var traversalOrders = map[Op]tree.Order{
	OpInOrder:    tree.InOrder,
	OpPreOrder:   tree.PreOrder,
	OpPostOrder:  tree.PostOrder,
	OpLevelOrder: tree.LevelOrder,
}

// DefaultTraversalStart is used when a traversal intent names no start node.
const DefaultTraversalStart = "1"

func lookup(s Structure, tag string) (Op, bool) {
	op, ok := vocabularies[s][tag]
	return op, ok
}

// Vocabulary returns the tags accepted for s, sorted.
func Vocabulary(s Structure) []string {
	tags := make([]string, 0, len(vocabularies[s]))
	for tag := range vocabularies[s] {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Resolve validates in against s's vocabulary and operand rules.
//
// Unknown tags, including tags of another structure, return an error
// matching ErrUnknownOperation and trace.ErrUnknownOperation. List value
// operands default to 0 and positions to 0 when absent; tree value
// operands are required.
func Resolve(s Structure, in Intent) (Command, error) {
	tag := normalizeTag(in.Operation)
	op, ok := lookup(s, tag)
	if !ok {
		return Command{}, errors.Wrapf(ErrUnknownOperation, "%s: %q", s, in.Operation)
	}
	cmd := Command{Structure: s, Op: op}

	switch op {
	case OpInsertHead, OpInsertTail, OpDeleteValue:
		cmd.Value = valueOr(in.Value, value.Int(0))
	case OpInsertAt:
		cmd.Value = valueOr(in.Value, value.Int(0))
		cmd.Position = positionOr(in.Position)
	case OpDeleteAt:
		cmd.Position = positionOr(in.Position)
	case OpSearch:
		if s == List {
			cmd.Value = valueOr(in.Value, value.Int(0))
			break
		}
		if in.Value == nil {
			return Command{}, missing(s, op, "value")
		}
		cmd.Value = *in.Value
	case OpInsert, OpDelete:
		if in.Value == nil {
			return Command{}, missing(s, op, "value")
		}
		cmd.Value = *in.Value
	case OpHeapify:
		cmd.Values = append([]value.Value(nil), in.Values...)
		if len(cmd.Values) == 0 && in.Value != nil {
			cmd.Values = []value.Value{*in.Value}
		}
	case OpInOrder, OpPreOrder, OpPostOrder, OpLevelOrder:
		cmd.Order = traversalOrders[op]
	case OpChangeListType:
		if in.ListType == "" {
			return Command{}, missing(s, op, "list type")
		}
		k, err := linkedlist.ParseKind(in.ListType)
		if err != nil {
			return Command{}, errors.Mark(err, ErrBadOperand)
		}
		cmd.ListKind = k
	case OpChangeTreeType:
		if in.TreeType == "" {
			return Command{}, missing(s, op, "tree type")
		}
		k, err := tree.ParseKind(in.TreeType)
		if err != nil {
			return Command{}, errors.Mark(err, ErrBadOperand)
		}
		cmd.TreeKind = k
	case OpChangeDataset:
		if in.Dataset == "" {
			return Command{}, missing(s, op, "dataset")
		}
		d, err := value.ParseDataset(in.Dataset)
		if err != nil {
			return Command{}, errors.Mark(err, ErrBadOperand)
		}
		cmd.Dataset = d
	case OpStartTraversal:
		algo := in.Algorithm
		if algo == "" && tag != OpStartTraversal.String() {
			algo = tag
		}
		if algo == "" {
			return Command{}, missing(s, op, "algorithm")
		}
		a, err := ParseAlgorithm(algo)
		if err != nil {
			return Command{}, err
		}
		cmd.Algorithm = a
		cmd.Node = DefaultTraversalStart
		if in.Value != nil {
			cmd.Node = in.Value.String()
		}
	case OpAddNode, OpRemoveNode:
		if in.Value == nil || in.Value.String() == "" {
			return Command{}, missing(s, op, "node id")
		}
		cmd.Node = in.Value.String()
	case OpAddEdge, OpRemoveEdge:
		if in.Source == nil || in.Target == nil {
			return Command{}, missing(s, op, "source and target")
		}
		cmd.Source, cmd.Target = in.Source.String(), in.Target.String()
	case OpDeleteHead, OpDeleteTail, OpTraverse, OpReverse, OpSort, OpFindMiddle,
		OpFindMin, OpFindMax, OpGetHeight, OpExtractRoot, OpStats,
		OpReset, OpClear, OpUndo, OpRedo:
		// no operands
	default:
		return Command{}, errors.AssertionFailedf("command: op %s has no operand rule", op)
	}

	return cmd, nil
}

// ResolveToken parses and resolves a CLI token in one call.
func ResolveToken(s Structure, token string) (Command, error) {
	in, err := ParseToken(s, token)
	if err != nil {
		return Command{}, err
	}
	return Resolve(s, in)
}

func valueOr(v *value.Value, def value.Value) value.Value {
	if v == nil {
		return def
	}
	return *v
}

func positionOr(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func missing(s Structure, op Op, what string) error {
	return errors.Wrapf(ErrMissingOperand, "%s %s needs a %s", s, op, what)
}
