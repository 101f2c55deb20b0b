package trace

import (
	"encoding/json"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Distance is a hop count. Infinity marks nodes not reached.
type Distance int64

// Infinity is the distance of an unreachable node.
const Infinity Distance = math.MaxInt64

// NoPriority marks a frontier entry shown without a distance (BFS, DFS).
const NoPriority Distance = -1

// String prints the distance, or "Infinity".
func (d Distance) String() string {
	if d == Infinity {
		return "Infinity"
	}
	return strconv.FormatInt(int64(d), 10)
}

// MarshalText implements encoding.TextMarshaler.
func (d Distance) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Distance) UnmarshalText(b []byte) error {
	if string(b) == "Infinity" {
		*d = Infinity
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*d = Distance(n)
	return nil
}

// FrontierItem is one entry of a queue, stack or priority queue. Entries
// without a priority carry NoPriority and encode without the field.
type FrontierItem struct {
	ID       string
	Priority Distance
}

// frontierDoc is the encoded form of a FrontierItem.
type frontierDoc struct {
	ID       string    `json:"id" yaml:"id"`
	Priority *Distance `json:"priority,omitempty" yaml:"priority,omitempty"`
}

func (f FrontierItem) doc() frontierDoc {
	d := frontierDoc{ID: f.ID}
	if f.Priority != NoPriority {
		p := f.Priority
		d.Priority = &p
	}
	return d
}

func (d frontierDoc) item() FrontierItem {
	f := FrontierItem{ID: d.ID, Priority: NoPriority}
	if d.Priority != nil {
		f.Priority = *d.Priority
	}
	return f
}

// MarshalJSON implements json.Marshaler.
func (f FrontierItem) MarshalJSON() ([]byte, error) { return json.Marshal(f.doc()) }

// UnmarshalJSON implements json.Unmarshaler.
func (f *FrontierItem) UnmarshalJSON(b []byte) error {
	var d frontierDoc
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	*f = d.item()
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f FrontierItem) MarshalYAML() (interface{}, error) { return f.doc(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FrontierItem) UnmarshalYAML(n *yaml.Node) error {
	var d frontierDoc
	if err := n.Decode(&d); err != nil {
		return err
	}
	*f = d.item()
	return nil
}

// String renders "id" or "id(priority)".
func (f FrontierItem) String() string {
	if f.Priority == NoPriority {
		return f.ID
	}
	return f.ID + "(" + f.Priority.String() + ")"
}

// EdgeRef names an edge by its endpoints.
type EdgeRef struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// TraversalStep is one immutable frame of a graph traversal.
type TraversalStep struct {
	Visited     []string            `json:"visited" yaml:"visited"`
	Frontier    []FrontierItem      `json:"frontier" yaml:"frontier"`
	Current     string              `json:"current,omitempty" yaml:"current,omitempty"`
	Edges       []EdgeRef           `json:"edges,omitempty" yaml:"edges,omitempty"`
	Description string              `json:"description" yaml:"description"`
	Distances   map[string]Distance `json:"distances,omitempty" yaml:"distances,omitempty"`
	FinalOrder  []string            `json:"final_order,omitempty" yaml:"final_order,omitempty"`
}

// Copy returns a deep copy of s.
func (s TraversalStep) Copy() TraversalStep {
	c := s
	c.Visited = append([]string{}, s.Visited...)
	c.Frontier = append([]FrontierItem{}, s.Frontier...)
	if s.Edges != nil {
		c.Edges = append([]EdgeRef(nil), s.Edges...)
	}
	if s.FinalOrder != nil {
		c.FinalOrder = append([]string(nil), s.FinalOrder...)
	}
	if s.Distances != nil {
		c.Distances = make(map[string]Distance, len(s.Distances))
		for k, v := range s.Distances {
			c.Distances[k] = v
		}
	}
	return c
}

// FrontierIDs returns the ids of the frontier in order.
func (s TraversalStep) FrontierIDs() []string {
	ids := make([]string, len(s.Frontier))
	for i, f := range s.Frontier {
		ids[i] = f.ID
	}
	return ids
}

// Plain wraps ids as frontier items without priority.
func Plain(ids []string) []FrontierItem {
	out := make([]FrontierItem, len(ids))
	for i, id := range ids {
		out[i] = FrontierItem{ID: id, Priority: NoPriority}
	}
	return out
}

// InvalidStart is the single step a traversal records when start is not a
// node of the graph.
func InvalidStart(start string) TraversalStep {
	return TraversalStep{
		Visited:     []string{},
		Frontier:    []FrontierItem{},
		Description: "Start node " + strconv.Quote(start) + " does not exist. Nothing to traverse.",
	}
}
