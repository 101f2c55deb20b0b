package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"

	"github.com/katalvlaran/structviz/command"
	"github.com/katalvlaran/structviz/config"
	"github.com/katalvlaran/structviz/internal/tui"
	"github.com/katalvlaran/structviz/playback"
	"github.com/katalvlaran/structviz/render"
	"github.com/katalvlaran/structviz/snippet"
)

// ErrNotTerminal is returned when interactive playback is asked for
// without a terminal on both ends.
var ErrNotTerminal = errors.New("interactive mode needs a terminal")

// playOptions are the per-invocation presentation switches. Code, when set,
// asks for the reference implementation of the last command.
type playOptions struct {
	Steps       bool
	Animate     bool
	Interactive bool
	Code        *snippet.Language
}

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// applyAll runs cmds in order. Rejections are recorded and do not stop the
// sequence; any other error does.
func applyAll(ctx context.Context, h host, cmds []command.Command) ([]report, error) {
	reps := make([]report, 0, len(cmds))
	for _, c := range cmds {
		if err := ctx.Err(); err != nil {
			return reps, err
		}
		rep, err := h.Apply(ctx, c)
		reps = append(reps, rep)
		if err != nil {
			return reps, err
		}
	}
	return reps, nil
}

// shown picks the frames a report prints: every step with --steps, the
// final one otherwise.
func shown(rep report, all bool) []frame {
	if all || len(rep.Frames) == 0 {
		return rep.Frames
	}
	return rep.Frames[len(rep.Frames)-1:]
}

type reportDoc struct {
	Command     string        `json:"command" yaml:"command"`
	Description string        `json:"description" yaml:"description"`
	Rejected    bool          `json:"rejected,omitempty" yaml:"rejected,omitempty"`
	Steps       []interface{} `json:"steps" yaml:"steps"`
}

// codeDoc is the reference implementation of one operation.
type codeDoc struct {
	Operation string `json:"operation" yaml:"operation"`
	Kind      string `json:"kind" yaml:"kind"`
	Language  string `json:"language" yaml:"language"`
	Source    string `json:"source" yaml:"source"`

	lang snippet.Language
}

type sessionDoc struct {
	Structure command.Structure `json:"structure" yaml:"structure"`
	Commands  []reportDoc       `json:"commands" yaml:"commands"`
	Code      *codeDoc          `json:"code,omitempty" yaml:"code,omitempty"`
}

// codeFor returns the snippet of the last command in lang, or nil when lang
// is nil or nothing ran.
func codeFor(h host, reps []report, lang *snippet.Language) *codeDoc {
	if lang == nil || len(reps) == 0 {
		return nil
	}
	last := reps[len(reps)-1]
	return &codeDoc{
		Operation: last.Op.String(),
		Kind:      h.Kind(),
		Language:  lang.String(),
		Source:    snippet.Code(h.Structure(), h.Kind(), last.Op, *lang),
		lang:      *lang,
	}
}

// writeCode prints c as a fenced block in markdown and as a commented
// header plus source otherwise.
func writeCode(w io.Writer, c *codeDoc, f render.Format, s render.Styles) error {
	if c == nil {
		return nil
	}
	if f == render.Markdown {
		_, err := fmt.Fprintf(w, "\n#### %s :: %s\n\n```%s\n%s\n```\n", c.Kind, c.Operation, c.Language, c.Source)
		return err
	}
	header := fmt.Sprintf("%s %s :: %s (%s)", c.lang.Comment(), c.Kind, c.Operation, c.Language)
	_, err := fmt.Fprintf(w, "\n%s\n%s\n", s.Muted(header), c.Source)
	return err
}

// write prints reports in format f followed by the structure summary and,
// when code is set, the last command's reference implementation.
func write(w io.Writer, h host, reps []report, f render.Format, s render.Styles, all bool, code *codeDoc) error {
	switch f {
	case render.JSON, render.YAML:
		doc := sessionDoc{Structure: h.Structure(), Commands: make([]reportDoc, len(reps)), Code: code}
		for i, rep := range reps {
			rd := reportDoc{Command: rep.Command, Description: rep.Description, Rejected: rep.Rejected}
			for _, fr := range shown(rep, all) {
				rd.Steps = append(rd.Steps, fr.Doc)
			}
			doc.Commands[i] = rd
		}
		return render.Encode(w, f, doc)

	case render.Markdown:
		for _, rep := range reps {
			heading := "### `" + rep.Command + "`"
			if rep.Rejected {
				heading += " (rejected)"
			}
			if _, err := fmt.Fprintf(w, "%s\n\n", heading); err != nil {
				return err
			}
			frames := shown(rep, all)
			descs := make([]string, len(frames))
			for i, fr := range frames {
				descs[i] = fr.Description
			}
			render.StepTable(w, descs, f)
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := h.Summary(w, f); err != nil {
			return err
		}
		return writeCode(w, code, f, s)
	}

	for _, rep := range reps {
		if err := writeHeader(w, s, rep); err != nil {
			return err
		}
		for _, fr := range shown(rep, all) {
			if _, err := fmt.Fprintf(w, "%s\n", fr.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if err := h.Summary(w, f); err != nil {
		return err
	}
	return writeCode(w, code, f, s)
}

func writeHeader(w io.Writer, s render.Styles, rep report) error {
	line := "> " + rep.Command
	if rep.Rejected {
		line += " (rejected)"
	}
	_, err := fmt.Fprintln(w, s.Muted(line))
	return err
}

// sequence flattens every step of every report, titled by its command.
func sequence(reps []report) []tui.Frame {
	var out []tui.Frame
	for _, rep := range reps {
		for i, fr := range rep.Frames {
			out = append(out, tui.Frame{
				Title: fmt.Sprintf("%s  (%d/%d)", rep.Command, i+1, len(rep.Frames)),
				Body:  fr.Text,
			})
		}
	}
	return out
}

// animate prints every step one interval apart, redrawing in place when w
// is a terminal.
func animate(ctx context.Context, w io.Writer, reps []report, s config.Settings) error {
	redraw := isTerminal(w)
	return playback.Play(ctx, sequence(reps), s.StepInterval, func(_ int, f tui.Frame) error {
		if redraw {
			if _, err := io.WriteString(w, clearScreen); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s\n%s\n\n", f.Title, f.Body)
		return err
	})
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// present shows reps the way o asks for.
func present(ctx context.Context, in io.Reader, out io.Writer, h host, reps []report, s config.Settings, o playOptions) error {
	styles := render.NewStyles(s.Color && isTerminal(out))
	code := codeFor(h, reps, o.Code)
	switch {
	case o.Interactive:
		if !isTerminal(in) || !isTerminal(out) {
			return ErrNotTerminal
		}
		if err := tui.Run(ctx, in, out, sequence(reps), s.StepInterval); err != nil {
			return err
		}
		return writeCode(out, code, render.Text, styles)
	case o.Animate:
		if s.Format != render.Text {
			return errors.Newf("--animate only supports text output, not %s", s.Format)
		}
		if err := animate(ctx, out, reps, s); err != nil && !errors.Is(err, playback.ErrNoSteps) {
			return err
		}
		if err := h.Summary(out, s.Format); err != nil {
			return err
		}
		return writeCode(out, code, s.Format, styles)
	}
	return write(out, h, reps, s.Format, styles, o.Steps, code)
}
