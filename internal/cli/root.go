package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/mithrel/tabmd/internal/config"
	"github.com/mithrel/tabmd/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Execute is the entrypoint: it builds the root cobra.Command
// and calls its Execute() method to run the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "tabmd",
		Short: "tabmd: turn spreadsheet cells into Markdown tables",
		Long: `tabmd converts tab-separated text, as copied from a spreadsheet,
into a GitHub Flavored Markdown pipe table.

Without a subcommand it opens the interactive converter when stdin is a
terminal and converts stdin otherwise.`,
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsApp(cmd) {
				return nil
			}
			// Load config with Viper.
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			// Flags win over the file; BuildApp validates the merged result.
			applyConfigFlagOverrides(cmd, v)
			// Wire up the app and stash it in context for subcommands.
			app, err := wire.BuildApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey, app)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app, ok := cmd.Context().Value(appKey).(*wire.App); ok {
				app.Close()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newNormalizeCmd())
	cmd.AddCommand(newTUICmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(newConfigCmd())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if isTerminal(cmd.InOrStdin()) {
			return runTUI(cmd)
		}
		return runConvert(cmd, convertFlags{})
	}

	return cmd
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}

func isTerminal(r any) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readInput slurps stdin. Input is expected to be a pasted table, not a stream.
func readInput(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// skipAppAnnotation marks a command tree that works on the config file
// itself and must run even when that file is invalid.
const skipAppAnnotation = "tabmd/skip-app"

func skipsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[skipAppAnnotation]; ok {
			return true
		}
	}
	return false
}
