package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/tabmd/internal/util"
)

// glamourStyles are the standard styles glamour ships with.
var glamourStyles = []string{"ascii", "auto", "dark", "dracula", "light", "notty", "pink", "tokyo-night"}

// registerChoiceCompletion completes flag values from a fixed set, ranked
// against what has been typed so far.
func registerChoiceCompletion(cmd *cobra.Command, flag string, choices ...string) {
	_ = cmd.RegisterFlagCompletionFunc(flag, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return util.ScoreCompletions(toComplete, choices, 0), cobra.ShellCompDirectiveNoFileComp
	})
}
