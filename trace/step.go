package trace

// Step is one frame of a list or tree trace. State is the structure as it
// stood at this moment and must be treated as read-only; Overlay carries the
// highlights and Path any accumulated visit order (tree traversals).
type Step[S any] struct {
	Description string   `json:"description" yaml:"description"`
	State       S        `json:"state" yaml:"state"`
	Overlay     Overlay  `json:"overlay,omitempty" yaml:"overlay,omitempty"`
	Path        []string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Recorder accumulates steps. Every Emit copies the overlay and path it is
// given so callers may keep mutating their working copies.
type Recorder[S any] struct {
	steps []Step[S]
	hook  func(Step[S])
}

// NewRecorder returns an empty Recorder. hook, when non-nil, observes each
// step right after it is recorded.
func NewRecorder[S any](hook func(Step[S])) *Recorder[S] {
	return &Recorder[S]{hook: hook}
}

// Emit records a step.
func (r *Recorder[S]) Emit(desc string, state S, overlay Overlay, path []string) {
	st := Step[S]{
		Description: desc,
		State:       state,
		Overlay:     overlay.Clone(),
	}
	if len(path) > 0 {
		st.Path = append([]string(nil), path...)
	}
	r.steps = append(r.steps, st)
	if r.hook != nil {
		r.hook(st)
	}
}

// Steps returns the recorded steps.
func (r *Recorder[S]) Steps() []Step[S] { return r.steps }

// Len reports the number of recorded steps.
func (r *Recorder[S]) Len() int { return len(r.steps) }

// Last returns the description of the final step, or "" for an empty trace.
func Last[S any](steps []Step[S]) string {
	if len(steps) == 0 {
		return ""
	}
	return steps[len(steps)-1].Description
}
