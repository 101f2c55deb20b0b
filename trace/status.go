package trace

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Status is the transient highlight of a node within one step.
type Status uint8

const (
	Idle Status = iota
	Searching
	Found
	Processing
	New
	Runner
	Visited
	Comparing
	Queued
	Start
)

var statusNames = [...]string{
	Idle:       "idle",
	Searching:  "searching",
	Found:      "found",
	Processing: "processing",
	New:        "new",
	Runner:     "runner",
	Visited:    "visited",
	Comparing:  "comparing",
	Queued:     "queued",
	Start:      "start",
}

// ErrUnknownStatus is returned by ParseStatus.
var ErrUnknownStatus = errors.New("trace: unknown status")

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// ParseStatus resolves a status name.
func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if n == name {
			return Status(i), nil
		}
	}
	return Idle, errors.Wrapf(ErrUnknownStatus, "%q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Overlay maps node ids to their status for a single step.
// Nodes without an entry are Idle.
type Overlay map[string]Status

// Of returns the status of id.
func (o Overlay) Of(id string) Status {
	return o[id]
}

// Clone returns an independent copy; the nil overlay clones to an empty one.
func (o Overlay) Clone() Overlay {
	c := make(Overlay, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}

// With returns a copy of o with id set to s.
func (o Overlay) With(id string, s Status) Overlay {
	c := o.Clone()
	c[id] = s
	return c
}

// Only returns an overlay holding exactly the given pairs (id, status, id, status...).
// It panics on an odd argument list.
func Only(pairs ...interface{}) Overlay {
	if len(pairs)%2 != 0 {
		panic(errors.AssertionFailedf("trace.Only: odd argument count %d", len(pairs)))
	}
	o := make(Overlay, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		o[pairs[i].(string)] = pairs[i+1].(Status)
	}
	return o
}
