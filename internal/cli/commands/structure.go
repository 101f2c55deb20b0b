package commands

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/structviz/command"
	"github.com/katalvlaran/structviz/config"
	"github.com/katalvlaran/structviz/snippet"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return newStructureCommand(command.List,
		"Apply operations to a linked list",
		`  # Build a doubly linked list and reverse it, showing every step
  structviz list --list-kind doubly insert_tail:3 insert_tail:9 insert_head:1 reverse --steps

  # Insert at a position, then look for the middle node
  structviz list insert:4 insert:8 insert_at:6:1 find_middle -o json

  # Show the C implementation of the last operation
  structviz list insert_head:5 insert_head:2 --code c`)
}

// NewTreeCommand creates the tree command.
func NewTreeCommand() *cobra.Command {
	return newStructureCommand(command.Tree,
		"Apply operations to a binary tree or heap",
		`  # Insert into an AVL tree and print the in-order traversal
  structviz tree --tree-kind avl insert:50 insert:30 insert:20 inorder --steps

  # Heapify and extract the root of a max heap, with the Python version
  structviz tree --tree-kind max_heap heapify:10,30,20 extract_root --code python`)
}

// NewGraphCommand creates the graph command.
func NewGraphCommand() *cobra.Command {
	return newStructureCommand(command.Graph,
		"Edit the sample graph and run traversals",
		`  # Breadth-first search from node 1 of the six-node sample
  structviz graph bfs:1 --steps

  # Add a node, connect it and run Dijkstra from it
  structviz graph add_node:7 add_edge:6:7 dijkstra:7 --animate`)
}

func newStructureCommand(st command.Structure, short, example string) *cobra.Command {
	var (
		o    playOptions
		code string
	)
	cmd := &cobra.Command{
		Use:   st.String() + " <operation[:arg...]>...",
		Short: short,
		Long: fmt.Sprintf(`%s

Each argument is one operation in the form name[:arg[:arg]]. Operations run
in order against a fresh session. Rejected operations, such as deleting from
an empty structure, are reported and the sequence continues.

Operations: %s`, short, strings.Join(command.Vocabulary(st), ", ")),
		Example: example,
		Args:    cobra.MinimumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return command.Vocabulary(st), cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if code != "" {
				lang, err := snippet.ParseLanguage(code)
				if err != nil {
					return errors.Wrap(err, "--code")
				}
				o.Code = &lang
			}
			return runStructure(cmd, st, args, o)
		},
	}
	addPlayFlags(cmd, &o)
	if st != command.Graph {
		cmd.Flags().StringVar(&code, "code", "",
			"Print the reference implementation of the last operation ("+strings.Join(snippet.LanguageNames(), ", ")+")")
		_ = cmd.RegisterFlagCompletionFunc("code", cobra.FixedCompletions(snippet.LanguageNames(), cobra.ShellCompDirectiveNoFileComp))
	}
	return cmd
}

func addPlayFlags(cmd *cobra.Command, o *playOptions) {
	cmd.Flags().BoolVar(&o.Steps, "steps", false, "Print every intermediate step, not only the final state")
	cmd.Flags().BoolVar(&o.Animate, "animate", false, "Replay the steps one interval apart")
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false, "Step through the trace in a terminal player")
	cmd.MarkFlagsMutuallyExclusive("animate", "interactive")
}

// resolveAll turns every token into a command before anything runs.
func resolveAll(st command.Structure, tokens []string) ([]command.Command, error) {
	cmds := make([]command.Command, len(tokens))
	for i, tok := range tokens {
		c, err := command.ResolveToken(st, tok)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		cmds[i] = c
	}
	return cmds, nil
}

func runStructure(cmd *cobra.Command, st command.Structure, tokens []string, o playOptions) error {
	ctx := cmd.Context()
	s := config.GetSettings(ctx)
	log := config.GetLogger(ctx)

	cmds, err := resolveAll(st, tokens)
	if err != nil {
		return err
	}
	h, err := newHost(st, s, log)
	if err != nil {
		return err
	}
	reps, err := applyAll(ctx, h, cmds)
	if err != nil {
		return err
	}
	log.Debug("session finished", "structure", st.String(), "commands", len(reps))
	return present(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), h, reps, s, o)
}
