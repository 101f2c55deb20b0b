package tree

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/trace"
)

// run carries the input tree and recorder through one operation.
type run struct {
	in  Tree
	rec *trace.Recorder[Tree]
}

func newRun(t Tree, opts []Option) *run {
	o := buildOptions(opts)
	return &run{in: t, rec: trace.NewRecorder(o.OnStep)}
}

func (r *run) step(state Tree, ov trace.Overlay, path []string, format string, args ...interface{}) {
	r.rec.Emit(fmt.Sprintf(format, args...), state, ov, path)
}

// fail records a final frame on the unchanged input and returns err.
func (r *run) fail(err error, ov trace.Overlay, format string, args ...interface{}) (Result, error) {
	r.step(r.in, ov, nil, format, args...)
	return Result{Tree: r.in, Steps: r.rec.Steps()}, err
}

// keep finishes a read-only operation.
func (r *run) keep(res Result) (Result, error) {
	res.Tree = r.in
	res.Steps = r.rec.Steps()
	return res, nil
}

// commit freezes w as the operation's result. A result violating the
// discipline's invariants is an engine bug.
func (r *run) commit(w *arena, res Result) (Result, error) {
	out := w.freeze()
	if err := out.Validate(); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "tree: %s operation broke invariants", out.kind))
	}
	res.Tree = out
	res.Steps = r.rec.Steps()
	return res, nil
}

func plural(n int) string {
	if n == 1 {
		return "1 node"
	}
	return fmt.Sprintf("%d nodes", n)
}
