// Package cli provides the structviz command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/structviz/builder"
	"github.com/katalvlaran/structviz/config"
	"github.com/katalvlaran/structviz/internal/cli/commands"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "structviz",
		Short: "structviz - step-by-step data structure visualizer",
		Long: `structviz applies operations to linked lists, binary trees, heaps and
graphs, and records every intermediate step so it can be printed, exported
as JSON or YAML, animated, or stepped through interactively.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			loaded, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			s, err := loaded.Resolve()
			if err != nil {
				return err
			}

			log := config.NewLogger(cmd.ErrOrStderr(), s.LogLevel)
			if loaded.File != "" {
				log.Debug("using config file", "path", loaded.File)
			}

			ctx := config.WithLogger(cmd.Context(), log)
			ctx = config.WithSettings(ctx, s)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./structviz.yaml)")
	pf.StringP("output", "o", "", "Output format (text|markdown|json|yaml)")
	pf.String("list-kind", "", "List kind (singly|doubly|circular_singly|circular_doubly)")
	pf.String("tree-kind", "", "Tree kind (bst|avl|max_heap|min_heap)")
	pf.String("dataset", "", "Value dataset (numbers|characters|colors|emojis)")
	pf.Int("history-limit", 0, "Undo history depth")
	pf.String("id-scheme", "", "Node id scheme (uuid|sequential)")
	pf.Duration("step-interval", 0, "Delay between animated steps")
	pf.Int("graph-nodes", 0, "Node count of the starting graph")
	pf.String("graph-shape", "", "Starting graph shape ("+strings.Join(builder.ShapeNames(), "|")+")")
	pf.String("log-level", "", "Log level (debug|info|warn|error)")
	pf.Bool("no-color", false, "Disable colored output")

	complete := func(vals ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return vals, cobra.ShellCompDirectiveNoFileComp
		}
	}
	_ = rootCmd.RegisterFlagCompletionFunc("output", complete("text", "markdown", "json", "yaml"))
	_ = rootCmd.RegisterFlagCompletionFunc("list-kind", complete("singly", "doubly", "circular_singly", "circular_doubly"))
	_ = rootCmd.RegisterFlagCompletionFunc("tree-kind", complete("bst", "avl", "max_heap", "min_heap"))
	_ = rootCmd.RegisterFlagCompletionFunc("dataset", complete("numbers", "characters", "colors", "emojis"))
	_ = rootCmd.RegisterFlagCompletionFunc("graph-shape", complete(builder.ShapeNames()...))

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewTreeCommand())
	rootCmd.AddCommand(commands.NewGraphCommand())
	rootCmd.AddCommand(commands.NewRunCommand())

	return rootCmd
}

// Execute runs the root command until it finishes or ctx ends.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
