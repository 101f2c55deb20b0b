// Package linkedlist provides kinds, options, errors and result types for the
// step-tracing linked list engine.
package linkedlist

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/trace"
)

// Kind selects the link topology of a List.
type Kind uint8

const (
	// Singly links each node forward only; the tail's next is null.
	Singly Kind = iota
	// Doubly adds symmetric back links.
	Doubly
	// CircularSingly links the tail forward to the head.
	CircularSingly
	// CircularDoubly links the tail to the head and the head back to the tail.
	CircularDoubly
)

var kindNames = [...]string{"singly", "doubly", "circular_singly", "circular_doubly"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
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

// Circular reports whether the tail links back to the head.
func (k Kind) Circular() bool { return k == CircularSingly || k == CircularDoubly }

// Doubly reports whether nodes carry back links.
func (k Kind) Doubly() bool { return k == Doubly || k == CircularDoubly }

// ParseKind resolves a kind tag such as "circular_doubly".
func ParseKind(tag string) (Kind, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for i, n := range kindNames {
		if n == tag {
			return Kind(i), nil
		}
	}
	return Singly, errors.Wrapf(ErrUnknownKind, "%q", tag)
}

// Sentinel errors for list operations. The first three wrap the shared trace
// taxonomy so errors.Is matches either form.
var (
	// ErrIndexOutOfRange is returned when an index falls outside the valid range.
	ErrIndexOutOfRange = errors.Wrap(trace.ErrInvalidIndex, "linkedlist")

	// ErrEmptyList is returned when a delete is attempted on an empty list.
	ErrEmptyList = errors.Wrap(trace.ErrEmptyStructure, "linkedlist")

	// ErrNotFound is returned when search or delete-by-value finds no match.
	ErrNotFound = errors.Wrap(trace.ErrValueNotFound, "linkedlist")

	// ErrUnknownKind is returned by ParseKind.
	ErrUnknownKind = errors.New("linkedlist: unknown list kind")

	// ErrNilGenerator is returned when an insert is given no id generator.
	ErrNilGenerator = errors.New("linkedlist: id generator is nil")
)

// Step is one frame of a list trace.
type Step = trace.Step[List]

// Result is what every operation returns. List is the structure after the
// operation; on failure it is the input list unchanged.
type Result struct {
	List  List
	Steps []Step

	// Index is the position reported by search, find-middle and insert-at;
	// -1 when not applicable.
	Index int

	// NodeID is the id of the node found, inserted or identified as middle.
	NodeID string

	// Removed holds the node taken out by a delete.
	Removed *Node

	// Swaps counts exchanges performed by Sort.
	Swaps int
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
