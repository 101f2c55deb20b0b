package session

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/command"
	"github.com/katalvlaran/structviz/history"
	"github.com/katalvlaran/structviz/ident"
	"github.com/katalvlaran/structviz/linkedlist"
	"github.com/katalvlaran/structviz/value"
)

// ListOutcome is the Outcome of a list command.
type ListOutcome = Outcome[linkedlist.Result]

// List hosts a linked list.
type List struct {
	list    linkedlist.List
	dataset value.Dataset
	history *history.Stack[linkedlist.List]
	gen     ident.Generator
	log     *slog.Logger
}

// NewList returns a session holding an empty list of the given kind.
func NewList(kind linkedlist.Kind, opts ...Option) *List {
	o := buildOptions(opts)
	return &List{
		list:    linkedlist.New(kind),
		dataset: o.dataset,
		history: history.New[linkedlist.List](o.historyLimit),
		gen:     o.gen,
		log:     o.logger.With("session", "list"),
	}
}

// List returns the current list.
func (s *List) List() linkedlist.List { return s.list }

// Dataset returns the current dataset.
func (s *List) Dataset() value.Dataset { return s.dataset }

// CanUndo reports whether undo has anything to restore.
func (s *List) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether redo has anything to restore.
func (s *List) CanRedo() bool { return s.history.CanRedo() }

// Apply runs cmd against the current list.
func (s *List) Apply(cmd command.Command) (ListOutcome, error) {
	out := ListOutcome{Command: cmd}
	if cmd.Structure != command.List {
		return out, wrongStructure(command.List, cmd)
	}

	var (
		res linkedlist.Result
		err error
	)
	switch cmd.Op {
	case command.OpUndo:
		res, err = s.restore(s.history.Undo, history.ErrNothingToUndo, "Nothing to undo", "Undid the last change")
	case command.OpRedo:
		res, err = s.restore(s.history.Redo, history.ErrNothingToRedo, "Nothing to redo", "Redid the last undone change")
	case command.OpChangeListType:
		s.reset(cmd.ListKind, s.dataset)
		res = s.note(fmt.Sprintf("Switched list type to %s", cmd.ListKind))
	case command.OpChangeDataset:
		s.reset(s.list.Kind(), cmd.Dataset)
		res = s.note(fmt.Sprintf("Switched to the %s dataset. List cleared", cmd.Dataset))
	default:
		res, err = s.run(cmd)
		// Clearing an empty list changes nothing and leaves no undo point.
		if err == nil && cmd.Op.Mutates() && !(cmd.Op == command.OpClear && s.list.Empty()) {
			s.history.Push(s.list)
		}
		if err == nil {
			s.list = res.List
		}
	}

	out.Result = res
	out.Description = res.Description()
	logResult(s.log, cmd, out.Description, err)
	return out, err
}

// run dispatches an engine operation. The list held by s is not touched.
func (s *List) run(cmd command.Command) (linkedlist.Result, error) {
	l := s.list
	var v value.Value
	switch cmd.Op {
	case command.OpInsertHead, command.OpInsertTail, command.OpInsertAt, command.OpDeleteValue, command.OpSearch:
		var err error
		if v, err = value.Conform(s.dataset, cmd.Value); err != nil {
			return s.note(fmt.Sprintf("%q is not a valid %s value", cmd.Value.String(), s.dataset)), err
		}
	}

	switch cmd.Op {
	case command.OpInsertHead:
		return l.InsertHead(v, s.gen)
	case command.OpInsertTail:
		return l.InsertTail(v, s.gen)
	case command.OpInsertAt:
		return l.InsertAt(cmd.Position, v, s.gen)
	case command.OpDeleteValue:
		return l.DeleteValue(v)
	case command.OpDeleteHead:
		return l.DeleteHead()
	case command.OpDeleteTail:
		return l.DeleteTail()
	case command.OpDeleteAt:
		return l.DeleteAt(cmd.Position)
	case command.OpSearch:
		return l.Search(v)
	case command.OpTraverse:
		return l.Traverse()
	case command.OpReverse:
		return l.Reverse()
	case command.OpSort:
		return l.Sort()
	case command.OpFindMiddle:
		return l.FindMiddle()
	case command.OpClear:
		return l.Clear()
	}
	return s.note(fmt.Sprintf("Unknown list operation %s", cmd.Op)),
		errors.Wrapf(command.ErrUnknownOperation, "list: %s", cmd.Op)
}

func (s *List) restore(
	pop func(linkedlist.List) (linkedlist.List, bool), empty error, miss, hit string,
) (linkedlist.Result, error) {
	prev, ok := pop(s.list)
	if !ok {
		return s.note(miss), empty
	}
	s.list = prev
	return s.note(hit), nil
}

// reset swaps in an empty list and drops the history.
func (s *List) reset(kind linkedlist.Kind, d value.Dataset) {
	s.list = linkedlist.New(kind)
	s.dataset = d
	s.history.Clear()
}

// note is a one-step result on the current list.
func (s *List) note(desc string) linkedlist.Result {
	return linkedlist.Result{
		List:  s.list,
		Steps: []linkedlist.Step{{Description: desc, State: s.list}},
		Index: -1,
	}
}
