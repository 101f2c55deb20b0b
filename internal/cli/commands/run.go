package commands

import (
	"bytes"
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/structviz/command"
	"github.com/katalvlaran/structviz/config"
	"github.com/katalvlaran/structviz/linkedlist"
	"github.com/katalvlaran/structviz/render"
	"github.com/katalvlaran/structviz/tree"
	"github.com/katalvlaran/structviz/value"
)

// ErrBadScript marks malformed script files.
var ErrBadScript = errors.New("bad script")

// scriptFile is the YAML form of a script. Commands are either tokens
// ("insert_at:9:2") or intent mappings.
type scriptFile struct {
	Structure command.Structure `yaml:"structure"`
	Kind      string            `yaml:"kind"`
	Dataset   string            `yaml:"dataset"`
	Commands  []yaml.Node       `yaml:"commands"`
}

// script is a parsed script: the settings it overrides and its commands.
type script struct {
	Name     string
	Settings config.Settings
	Commands []command.Command
	st       command.Structure
}

// parseScript decodes b on top of base settings.
func parseScript(name string, b []byte, base config.Settings) (script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return script{}, errors.Mark(errors.Wrapf(err, "%s", name), ErrBadScript)
	}
	sc := script{Name: name, Settings: base, st: f.Structure}

	if f.Kind != "" {
		var err error
		switch f.Structure {
		case command.List:
			sc.Settings.ListKind, err = linkedlist.ParseKind(f.Kind)
		case command.Tree:
			sc.Settings.TreeKind, err = tree.ParseKind(f.Kind)
		default:
			err = errors.Newf("%s scripts take no kind", f.Structure)
		}
		if err != nil {
			return script{}, errors.Mark(errors.Wrapf(err, "%s: kind", name), ErrBadScript)
		}
	}
	if f.Dataset != "" {
		d, err := value.ParseDataset(f.Dataset)
		if err != nil {
			return script{}, errors.Mark(errors.Wrapf(err, "%s: dataset", name), ErrBadScript)
		}
		sc.Settings.Dataset = d
	}

	for i := range f.Commands {
		n := &f.Commands[i]
		var (
			c   command.Command
			err error
		)
		switch n.Kind {
		case yaml.ScalarNode:
			c, err = command.ResolveToken(f.Structure, n.Value)
		case yaml.MappingNode:
			var in command.Intent
			if err = n.Decode(&in); err == nil {
				c, err = command.Resolve(f.Structure, in)
			}
		default:
			err = errors.Newf("expected a token or a mapping")
		}
		if err != nil {
			return script{}, errors.Mark(errors.Wrapf(err, "%s: line %d", name, n.Line), ErrBadScript)
		}
		sc.Commands = append(sc.Commands, c)
	}
	return sc, nil
}

// runScript applies sc on a fresh session and writes the result to w.
func runScript(ctx context.Context, w *bytes.Buffer, sc script, steps bool) error {
	log := config.GetLogger(ctx).With("script", sc.Name)
	h, err := newHost(sc.st, sc.Settings, log)
	if err != nil {
		return err
	}
	reps, err := applyAll(ctx, h, sc.Commands)
	if err != nil {
		return errors.Wrapf(err, "%s", sc.Name)
	}
	switch sc.Settings.Format {
	case render.YAML:
		w.WriteString("---\n")
	case render.Markdown:
		w.WriteString("## " + sc.Name + "\n\n")
	case render.Text:
		w.WriteString("== " + sc.Name + " ==\n")
	}
	return write(w, h, reps, sc.Settings.Format, render.NewStyles(false), steps, nil)
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	var steps bool
	cmd := &cobra.Command{
		Use:   "run <script.yaml>...",
		Short: "Run operation scripts",
		Long: `Run one or more YAML scripts. Each script names a structure, optionally a
kind and dataset, and lists its commands either as tokens or as mappings:

  structure: tree
  kind: avl
  commands:
    - insert:50
    - operation: insert
      value: 30
    - inorder

Scripts run concurrently, each on its own session. Their output is printed
in the order the files were given.`,
		Example: `  structviz run examples/avl.yaml examples/bfs.yaml --steps`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			base := config.GetSettings(ctx)

			scripts := make([]script, len(args))
			for i, path := range args {
				b, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrap(err, "read script")
				}
				if scripts[i], err = parseScript(path, b, base); err != nil {
					return err
				}
			}

			outs := make([]bytes.Buffer, len(scripts))
			g, gctx := errgroup.WithContext(ctx)
			for i := range scripts {
				g.Go(func() error {
					return runScript(gctx, &outs[i], scripts[i], steps)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i := range outs {
				if _, err := outs[i].WriteTo(w); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&steps, "steps", false, "Print every intermediate step, not only the final state")
	return cmd
}
