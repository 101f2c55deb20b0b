package command

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/structviz/value"
)

// Intent is an unresolved request as produced by a command source. Every
// operand is optional; Resolve decides which ones an operation needs.
type Intent struct {
	Operation string        `json:"operation" yaml:"operation"`
	Value     *value.Value  `json:"value,omitempty" yaml:"value,omitempty"`
	Values    []value.Value `json:"values,omitempty" yaml:"values,omitempty"`
	Position  *int          `json:"position,omitempty" yaml:"position,omitempty"`
	ListType  string        `json:"listType,omitempty" yaml:"list_type,omitempty"`
	TreeType  string        `json:"treeType,omitempty" yaml:"tree_type,omitempty"`
	Algorithm string        `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Source    *value.Value  `json:"source,omitempty" yaml:"source,omitempty"`
	Target    *value.Value  `json:"target,omitempty" yaml:"target,omitempty"`
	Dataset   string        `json:"dataset,omitempty" yaml:"dataset,omitempty"`
}

// DecodeJSON reads one intent object.
func DecodeJSON(b []byte) (Intent, error) {
	var in Intent
	if err := json.Unmarshal(b, &in); err != nil {
		return Intent{}, errors.Wrap(err, "command: decode json intent")
	}
	return in, nil
}

// DecodeYAML reads one intent mapping.
func DecodeYAML(b []byte) (Intent, error) {
	var in Intent
	if err := yaml.Unmarshal(b, &in); err != nil {
		return Intent{}, errors.Wrap(err, "command: decode yaml intent")
	}
	return in, nil
}

// ParseToken reads the compact CLI form op[:arg[:arg]], for example
// "insert_at:9:2", "bfs:1" or "add_edge:1:4". Operands stay raw text; the
// session conforms them to its dataset. The tag must belong to s's
// vocabulary so the arguments can be assigned.
func ParseToken(s Structure, token string) (Intent, error) {
	parts := strings.Split(strings.TrimSpace(token), ":")
	tag := normalizeTag(parts[0])
	args := parts[1:]
	in := Intent{Operation: tag}

	op, ok := lookup(s, tag)
	if !ok {
		return in, errors.Wrapf(ErrUnknownOperation, "%s: %q", s, parts[0])
	}

	want := 0
	switch op {
	case OpInsertHead, OpInsertTail, OpDeleteValue, OpSearch, OpInsert, OpDelete, OpAddNode, OpRemoveNode:
		want = 1
		if len(args) > 0 {
			v := value.Str(args[0])
			in.Value = &v
		}
	case OpInsertAt:
		want = 2
		if len(args) > 0 {
			v := value.Str(args[0])
			in.Value = &v
		}
		if len(args) > 1 {
			p, err := parsePosition(args[1])
			if err != nil {
				return in, err
			}
			in.Position = &p
		}
	case OpDeleteAt:
		want = 1
		if len(args) > 0 {
			p, err := parsePosition(args[0])
			if err != nil {
				return in, err
			}
			in.Position = &p
		}
	case OpHeapify:
		want = 1
		if len(args) > 0 && args[0] != "" {
			for _, raw := range strings.Split(args[0], ",") {
				in.Values = append(in.Values, value.Str(strings.TrimSpace(raw)))
			}
		}
	case OpChangeListType:
		want = 1
		in.ListType = arg(args, 0)
	case OpChangeTreeType:
		want = 1
		in.TreeType = arg(args, 0)
	case OpChangeDataset:
		want = 1
		in.Dataset = arg(args, 0)
	case OpStartTraversal:
		rest := args
		if tag == OpStartTraversal.String() {
			want = 2
			in.Algorithm = arg(args, 0)
			if len(args) > 0 {
				rest = args[1:]
			}
		} else {
			want = 1
		}
		if len(rest) > 0 {
			v := value.Str(rest[0])
			in.Value = &v
		}
	case OpAddEdge, OpRemoveEdge:
		want = 2
		if len(args) > 0 {
			v := value.Str(args[0])
			in.Source = &v
		}
		if len(args) > 1 {
			v := value.Str(args[1])
			in.Target = &v
		}
	}
	if len(args) > want {
		return in, errors.Wrapf(ErrBadOperand, "%q takes at most %d argument(s)", tag, want)
	}

	return in, nil
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func parsePosition(raw string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(ErrBadOperand, "position %q is not an integer", raw)
	}
	return p, nil
}

// normalizeTag lowercases a tag and maps spaces and dashes to underscores.
func normalizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(tag)
}
