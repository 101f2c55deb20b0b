package linkedlist

import (
	"fmt"

	"github.com/katalvlaran/structviz/trace"
)

// run carries the recorder and the input list through a single operation.
type run struct {
	in  List
	rec *trace.Recorder[List]
}

func newRun(l List, opts []Option) *run {
	o := buildOptions(opts)
	return &run{in: l, rec: trace.NewRecorder(o.OnStep)}
}

// step records a frame showing state under overlay.
func (r *run) step(state List, ov trace.Overlay, format string, args ...interface{}) {
	r.rec.Emit(fmt.Sprintf(format, args...), state, ov, nil)
}

// fail records a final frame on the unchanged input and returns err.
func (r *run) fail(err error, format string, args ...interface{}) (Result, error) {
	r.step(r.in, nil, format, args...)
	return Result{List: r.in, Steps: r.rec.Steps(), Index: -1}, err
}

// done finishes a successful operation on out.
func (r *run) done(out List, res Result) (Result, error) {
	res.List = out
	res.Steps = r.rec.Steps()
	return res, nil
}

// plural renders "1 node" or "n nodes".
func plural(n int) string {
	if n == 1 {
		return "1 node"
	}
	return fmt.Sprintf("%d nodes", n)
}

// overlayRange marks nodes[from:to] of l with s.
func overlayRange(l List, from, to int, s trace.Status) trace.Overlay {
	ov := make(trace.Overlay, to-from)
	for i := from; i < to; i++ {
		ov[l.nodes[i].ID] = s
	}
	return ov
}
