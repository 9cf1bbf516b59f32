package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/tabmd/internal/clipboard"
	"github.com/mithrel/tabmd/internal/config"
	"github.com/mithrel/tabmd/internal/present/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive converter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}
}

func runTUI(cmd *cobra.Command) error {
	app := getApp(cmd).ForTUI()
	return tui.Run(cmd.Context(), tui.Deps{
		Converter: app.Converter,
		Clipboard: app.Clipboard,
		Source:    clipboard.System{},
		Feedback:  config.FeedbackDuration(app.Cfg),
		Log:       app.Log,
	}, "")
}
