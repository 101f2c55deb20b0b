package session

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/command"
	"github.com/katalvlaran/structviz/history"
	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/tree"
	"github.com/katalvlaran/structviz/value"
)

// TreeOutcome is the Outcome of a tree command.
type TreeOutcome = Outcome[tree.Result]

// Tree hosts a BST, AVL tree or heap.
type Tree struct {
	tree    tree.Tree
	dataset value.Dataset
	history *history.Stack[tree.Tree]
	gen     ident.Generator
	log     *slog.Logger
}

// NewTree returns a session holding an empty tree of the given kind.
func NewTree(kind tree.Kind, opts ...Option) *Tree {
	o := buildOptions(opts)
	return &Tree{
		tree:    tree.New(kind),
		dataset: o.dataset,
		history: history.New[tree.Tree](o.historyLimit),
		gen:     o.gen,
		log:     o.logger.With("session", "tree"),
	}
}

// Tree returns the current tree.
func (s *Tree) Tree() tree.Tree { return s.tree }

// Dataset returns the current dataset.
func (s *Tree) Dataset() value.Dataset { return s.dataset }

// Stats summarizes the current tree.
func (s *Tree) Stats() tree.Stats { return tree.StatsOf(s.tree) }

func (s *Tree) CanUndo() bool { return s.history.CanUndo() }
func (s *Tree) CanRedo() bool { return s.history.CanRedo() }

// Apply runs cmd against the current tree.
func (s *Tree) Apply(cmd command.Command) (TreeOutcome, error) {
	out := TreeOutcome{Command: cmd}
	if cmd.Structure != command.Tree {
		return out, wrongStructure(command.Tree, cmd)
	}

	var (
		res tree.Result
		err error
	)
	switch cmd.Op {
	case command.OpUndo:
		res, err = s.restore(s.history.Undo, history.ErrNothingToUndo, "Nothing to undo", "Undid the last change")
	case command.OpRedo:
		res, err = s.restore(s.history.Redo, history.ErrNothingToRedo, "Nothing to redo", "Redid the last undone change")
	case command.OpChangeTreeType:
		s.reset(cmd.TreeKind, s.dataset)
		res = s.note(fmt.Sprintf("Switched tree type to %s", cmd.TreeKind))
	case command.OpChangeDataset:
		s.reset(s.tree.Kind(), cmd.Dataset)
		res = s.note(fmt.Sprintf("Switched to the %s dataset. Tree cleared", cmd.Dataset))
	case command.OpStats:
		st := s.Stats()
		res = s.note(describeStats(st))
		res.Height = st.Height
	default:
		res, err = s.run(cmd)
		// Clearing an empty tree changes nothing and leaves no undo point.
		if err == nil && cmd.Op.Mutates() && !(cmd.Op == command.OpClear && s.tree.Empty()) {
			s.history.Push(s.tree)
		}
		if err == nil {
			s.tree = res.Tree
		}
	}

	out.Result = res
	out.Description = res.Description()
	logResult(s.log, cmd, out.Description, err)
	return out, err
}

func (s *Tree) run(cmd command.Command) (tree.Result, error) {
	t := s.tree
	var v value.Value
	switch cmd.Op {
	case command.OpInsert, command.OpDelete, command.OpSearch:
		var err error
		if v, err = value.Conform(s.dataset, cmd.Value); err != nil {
			return s.note(fmt.Sprintf("%q is not a valid %s value", cmd.Value.String(), s.dataset)), err
		}
	}

	switch cmd.Op {
	case command.OpInsert:
		return t.Insert(v, s.gen)
	case command.OpDelete:
		return t.Delete(v)
	case command.OpSearch:
		return t.Search(v)
	case command.OpInOrder, command.OpPreOrder, command.OpPostOrder, command.OpLevelOrder:
		return t.Traverse(cmd.Order)
	case command.OpFindMin:
		return t.FindMin()
	case command.OpFindMax:
		return t.FindMax()
	case command.OpGetHeight:
		return t.Height()
	case command.OpExtractRoot:
		return t.ExtractRoot()
	case command.OpHeapify:
		vals := make([]value.Value, 0, len(cmd.Values))
		for _, raw := range cmd.Values {
			cv, err := value.Conform(s.dataset, raw)
			if err != nil {
				return s.note(fmt.Sprintf("%q is not a valid %s value", raw.String(), s.dataset)), err
			}
			vals = append(vals, cv)
		}
		return t.Heapify(vals, s.gen)
	case command.OpClear:
		return t.Clear()
	}
	return s.note(fmt.Sprintf("Unknown tree operation %s", cmd.Op)),
		errors.Wrapf(command.ErrUnknownOperation, "tree: %s", cmd.Op)
}

func (s *Tree) restore(pop func(tree.Tree) (tree.Tree, bool), empty error, miss, hit string) (tree.Result, error) {
	prev, ok := pop(s.tree)
	if !ok {
		return s.note(miss), empty
	}
	s.tree = prev
	return s.note(hit), nil
}

func (s *Tree) reset(kind tree.Kind, d value.Dataset) {
	s.tree = tree.New(kind)
	s.dataset = d
	s.history.Clear()
}

func (s *Tree) note(desc string) tree.Result {
	return tree.Result{
		Tree:  s.tree,
		Steps: []tree.Step{{Description: desc, State: s.tree}},
	}
}

// describeStats renders stats as one line, e.g.
// "Nodes: 3, Height: 2, Balanced: yes, Min: 1, Max: 9".
func describeStats(st tree.Stats) string {
	balanced := "no"
	if st.Balanced {
		balanced = "yes"
	}
	desc := fmt.Sprintf("Nodes: %d, Height: %d, Balanced: %s", st.Count, st.Height, balanced)
	if st.Min != nil && st.Max != nil {
		desc += fmt.Sprintf(", Min: %s, Max: %s", st.Min, st.Max)
	}
	return desc
}
