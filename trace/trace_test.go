package trace_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/structviz/trace"
)

func TestStatusRoundTrip(t *testing.T) {
	for s := trace.Idle; s <= trace.Start; s++ {
		got, err := trace.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := trace.ParseStatus("glowing")
	assert.True(t, errors.Is(err, trace.ErrUnknownStatus))
}

func TestRecorderCopiesOverlay(t *testing.T) {
	rec := trace.NewRecorder[int](nil)
	o := trace.Overlay{"a": trace.Searching}
	path := []string{"a"}
	rec.Emit("first", 1, o, path)

	o["a"] = trace.Found
	path[0] = "b"
	rec.Emit("second", 2, o, nil)

	steps := rec.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, trace.Searching, steps[0].Overlay.Of("a"))
	assert.Equal(t, []string{"a"}, steps[0].Path)
	assert.Equal(t, trace.Found, steps[1].Overlay.Of("a"))
	assert.Nil(t, steps[1].Path)
	assert.Equal(t, "second", trace.Last(steps))
}

func TestRecorderHook(t *testing.T) {
	var seen []string
	rec := trace.NewRecorder(func(s trace.Step[string]) { seen = append(seen, s.Description) })
	rec.Emit("x", "state", nil, nil)
	rec.Emit("y", "state", nil, nil)
	assert.Equal(t, []string{"x", "y"}, seen)
	assert.Equal(t, 2, rec.Len())
}

func TestOverlayHelpers(t *testing.T) {
	o := trace.Only("a", trace.New, "b", trace.Runner)
	assert.Equal(t, trace.New, o.Of("a"))
	assert.Equal(t, trace.Idle, o.Of("zzz"))

	o2 := o.With("a", trace.Idle)
	assert.Equal(t, trace.New, o.Of("a"))
	assert.Equal(t, trace.Idle, o2.Of("a"))

	assert.Panics(t, func() { trace.Only("a") })
}

func TestTraversalStepCopyIsDeep(t *testing.T) {
	s := trace.TraversalStep{
		Visited:   []string{"1"},
		Frontier:  []trace.FrontierItem{{ID: "2", Priority: 1}},
		Distances: map[string]trace.Distance{"1": 0, "2": trace.Infinity},
	}
	c := s.Copy()
	c.Visited[0] = "x"
	c.Distances["1"] = 9
	assert.Equal(t, "1", s.Visited[0])
	assert.Equal(t, trace.Distance(0), s.Distances["1"])
	assert.Equal(t, "2(1)", s.Frontier[0].String())
	assert.Equal(t, "2", trace.Plain([]string{"2"})[0].String())
}

func TestDistanceJSON(t *testing.T) {
	out, err := json.Marshal(map[string]trace.Distance{"a": 2, "b": trace.Infinity})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"2","b":"Infinity"}`, string(out))

	var back map[string]trace.Distance
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, trace.Infinity, back["b"])
}

func TestFrontierItemEncoding(t *testing.T) {
	items := []trace.FrontierItem{
		{ID: "1", Priority: 0},
		{ID: "4", Priority: 2},
		{ID: "6", Priority: trace.NoPriority},
	}

	out, err := json.Marshal(items)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","priority":"0"},{"id":"4","priority":"2"},{"id":"6"}]`, string(out))

	var back []trace.FrontierItem
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, items, back)

	y, err := yaml.Marshal(items)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(y), "priority:"), string(y))
	assert.Contains(t, string(y), `priority: "0"`)

	back = nil
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, items, back)
}

func TestRecoverable(t *testing.T) {
	assert.True(t, trace.Recoverable(errors.Wrap(trace.ErrInvalidIndex, "ctx")))
	assert.False(t, trace.Recoverable(errors.New("boom")))
}
