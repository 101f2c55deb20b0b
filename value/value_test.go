package value_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/structviz/value"
)

func TestLooseEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b value.Value
		want bool
	}{
		{"numbers", value.Int(5), value.Num(5.0), true},
		{"number vs text", value.Int(5), value.Str("5"), true},
		{"text vs number padded", value.Str(" 7 "), value.Int(7), true},
		{"empty text is zero", value.Str(""), value.Int(0), true},
		{"text mismatch", value.Str("red"), value.Str("Red"), false},
		{"non numeric text", value.Str("five"), value.Int(5), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, value.LooseEqual(tc.a, tc.b))
		})
	}
}

func TestCompareTotalOrder(t *testing.T) {
	assert.Equal(t, -1, value.Compare(value.Int(3), value.Int(10)))
	assert.Equal(t, 1, value.Compare(value.Str("b"), value.Str("a")))
	assert.Equal(t, 0, value.Compare(value.Num(2), value.Int(2)))
	// numbers sort before strings regardless of text content
	assert.Equal(t, -1, value.Compare(value.Int(100), value.Str("1")))
	assert.True(t, value.Less(value.Str("1"), value.Str("2")))
	assert.False(t, value.Equal(value.Int(5), value.Str("5")))
}

func TestString(t *testing.T) {
	assert.Equal(t, "5", value.Int(5).String())
	assert.Equal(t, "-3", value.Num(-3).String())
	assert.Equal(t, "2.5", value.Num(2.5).String())
	assert.Equal(t, "🍎", value.Str("🍎").String())
}

func TestParseByDataset(t *testing.T) {
	v, err := value.Parse(value.Numbers, "42")
	require.NoError(t, err)
	assert.True(t, v.IsNumber())

	_, err = value.Parse(value.Numbers, "abc")
	assert.True(t, errors.Is(err, value.ErrNotNumeric))

	_, err = value.Parse(value.Numbers, "  ")
	assert.True(t, errors.Is(err, value.ErrNotNumeric))

	v, err = value.Parse(value.Colors, "42")
	require.NoError(t, err)
	assert.Equal(t, value.String, v.Kind())

	d, err := value.ParseDataset("Emojis")
	require.NoError(t, err)
	assert.Equal(t, value.Emojis, d)

	_, err = value.ParseDataset("planets")
	assert.True(t, errors.Is(err, value.ErrUnknownDataset))
}

func TestParseRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"inf", "+Inf", "-Inf", "Infinity", "NaN", "1e400"} {
		_, err := value.Parse(value.Numbers, raw)
		assert.True(t, errors.Is(err, value.ErrNotNumeric), raw)

		_, err = value.Conform(value.Numbers, value.Str(raw))
		assert.True(t, errors.Is(err, value.ErrNotNumeric), raw)

		_, ok := value.Str(raw).Float()
		assert.False(t, ok, raw)
	}

	// text datasets keep the word as it is
	v, err := value.Parse(value.Characters, "inf")
	require.NoError(t, err)
	assert.Equal(t, value.Str("inf"), v)

	out, err := json.Marshal([]value.Value{value.Num(math.Inf(1)), value.Num(math.NaN())})
	require.NoError(t, err)
	assert.JSONEq(t, `["+Inf", "NaN"]`, string(out))
}

func TestConform(t *testing.T) {
	v, err := value.Conform(value.Characters, value.Int(3))
	require.NoError(t, err)
	assert.Equal(t, value.Str("3"), v)

	v, err = value.Conform(value.Numbers, value.Str("8"))
	require.NoError(t, err)
	assert.Equal(t, value.Int(8), v)
}

func TestJSONAndYAMLDecoding(t *testing.T) {
	var vs []value.Value
	require.NoError(t, json.Unmarshal([]byte(`[1, "a", 2.5]`), &vs))
	assert.Equal(t, []value.Value{value.Int(1), value.Str("a"), value.Num(2.5)}, vs)

	out, err := json.Marshal(vs)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, "a", 2.5]`, string(out))

	var doc struct {
		A value.Value `yaml:"a"`
		B value.Value `yaml:"b"`
		C value.Value `yaml:"c"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: 7\nb: \"7\"\nc: blue\n"), &doc))
	assert.Equal(t, value.Int(7), doc.A)
	assert.Equal(t, value.Str("7"), doc.B)
	assert.Equal(t, value.Str("blue"), doc.C)
}
