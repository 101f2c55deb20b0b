package value

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Dataset selects how raw operands are interpreted.
type Dataset uint8

const (
	// Numbers parses operands as float64.
	Numbers Dataset = iota
	// Characters keeps operands as single-token text.
	Characters
	// Colors keeps operands as color names.
	Colors
	// Emojis keeps operands as emoji text.
	Emojis
)

var datasetNames = [...]string{"numbers", "characters", "colors", "emojis"}

// ErrUnknownDataset is returned by ParseDataset for unrecognized names.
var ErrUnknownDataset = errors.New("value: unknown dataset")

func (d Dataset) String() string {
	if int(d) < len(datasetNames) {
		return datasetNames[d]
	}
	return "dataset(" + strconv.Itoa(int(d)) + ")"
}

// ParseDataset resolves a dataset name. Matching is case-insensitive.
func ParseDataset(name string) (Dataset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range datasetNames {
		if n == name {
			return Dataset(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownDataset, "%q", name)
}

// Parse turns a raw operand into a Value for dataset d.
func Parse(d Dataset, raw string) (Value, error) {
	if d != Numbers {
		return Str(raw), nil
	}
	f, ok := coerce(raw)
	if !ok || strings.TrimSpace(raw) == "" {
		return Value{}, errors.Wrapf(ErrNotNumeric, "%q", raw)
	}
	return Num(f), nil
}

// Conform converts v to the representation expected by dataset d. Numbers
// keep text as text; a numeric dataset coerces numeric text.
func Conform(d Dataset, v Value) (Value, error) {
	if d != Numbers {
		if v.kind == Number {
			return Str(v.String()), nil
		}
		return v, nil
	}
	if v.kind == Number {
		return v, nil
	}
	return Parse(d, v.str)
}

// MarshalJSON writes numbers as JSON numbers and strings as JSON strings.
// JSON has no NaN or infinities, so those numbers are written as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == String || math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		return json.Marshal(v.String())
	}
	return json.Marshal(v.num)
}

// UnmarshalJSON accepts a JSON number or string.
func (v *Value) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*v = Num(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "value: expected number or string")
	}
	*v = Str(s)
	return nil
}

// MarshalYAML writes the natural scalar.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.kind == String {
		return v.str, nil
	}
	if v.num == float64(int64(v.num)) {
		return int64(v.num), nil
	}
	return v.num, nil
}

// UnmarshalYAML accepts numeric and string scalars. Quoted numbers stay text.
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Newf("value: expected scalar at line %d", n.Line)
	}
	if tag := n.ShortTag(); tag == "!!int" || tag == "!!float" {
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return errors.Wrapf(err, "value: line %d", n.Line)
		}
		*v = Num(f)
		return nil
	}
	*v = Str(n.Value)
	return nil
}
