package tree

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/value"
)

// Kind selects the discipline a Tree maintains.
type Kind uint8

const (
	// BST keeps binary-search-tree ordering without duplicates.
	BST Kind = iota
	// AVL is a BST rebalanced after every mutation.
	AVL
	// MaxHeap keeps every parent >= its children over an implicit array.
	MaxHeap
	// MinHeap keeps every parent <= its children over an implicit array.
	MinHeap
)

var kindNames = [...]string{"bst", "avl", "max_heap", "min_heap"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Heap reports whether k is one of the heap disciplines.
func (k Kind) Heap() bool { return k == MaxHeap || k == MinHeap }

// ParseKind resolves a discipline tag such as "max_heap".
func ParseKind(tag string) (Kind, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for i, n := range kindNames {
		if n == tag {
			return Kind(i), nil
		}
	}
	return BST, errors.Wrapf(ErrUnknownKind, "%q", tag)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Order names a traversal order.
type Order uint8

const (
	InOrder Order = iota
	PreOrder
	PostOrder
	LevelOrder
)

var orderNames = [...]string{"inorder", "preorder", "postorder", "level_order"}
var orderTitles = [...]string{"In-order", "Pre-order", "Post-order", "Level-order"}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return "order(" + strconv.Itoa(int(o)) + ")"
}

// ParseOrder resolves an order tag such as "level_order".
func ParseOrder(tag string) (Order, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for i, n := range orderNames {
		if n == tag {
			return Order(i), nil
		}
	}
	return InOrder, errors.Newf("tree: unknown traversal order %q", tag)
}

// Sentinel errors for tree operations. Wrapped sentinels match the shared
// trace taxonomy with errors.Is.
var (
	// ErrDuplicate is returned when BST/AVL insert meets an existing value.
	ErrDuplicate = errors.Wrap(trace.ErrDuplicateValue, "tree")

	// ErrNotFound is returned when search or delete misses.
	ErrNotFound = errors.Wrap(trace.ErrValueNotFound, "tree")

	// ErrEmptyTree is returned by delete and extract on an empty tree.
	ErrEmptyTree = errors.Wrap(trace.ErrEmptyStructure, "tree")

	// ErrUnsupported is returned when an operation is outside the discipline's
	// vocabulary, e.g. extract-root on a BST or search on a heap.
	ErrUnsupported = errors.Wrap(trace.ErrUnknownOperation, "tree")

	// ErrMalformedTree is returned by Unflatten for inconsistent input.
	ErrMalformedTree = errors.New("tree: malformed flattened tree")

	// ErrUnknownKind is returned by ParseKind.
	ErrUnknownKind = errors.New("tree: unknown tree kind")

	// ErrNilGenerator is returned when an insert is given no id generator.
	ErrNilGenerator = errors.New("tree: id generator is nil")
)

// Step is one frame of a tree trace.
type Step = trace.Step[Tree]

// Result is returned by every operation. Tree is the structure afterwards;
// on failure it is the input tree unchanged.
type Result struct {
	Tree  Tree
	Steps []Step

	// Values holds traversal output, or the single min/max value.
	Values []value.Value

	// Found is the id of the node matched by search or min/max.
	Found string

	// Extracted is the value removed by ExtractRoot.
	Extracted *value.Value

	// Height is reported by Height.
	Height int
}

// Description returns the final step description.
func (r Result) Description() string { return trace.Last(r.Steps) }

// Option configures an operation.
type Option func(*Options)

// Options holds per-call hooks.
type Options struct {
	// OnStep observes each step as it is recorded.
	OnStep func(Step)
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options { return Options{} }

// WithOnStep installs a step observer.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) { o.OnStep = fn }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
