package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/tabmd/internal/normalize"
)

func newNormalizeCmd() *cobra.Command {
	var report bool
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Replace smart punctuation in stdin with plain ASCII",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd)
			if err != nil {
				return err
			}
			if report {
				for _, o := range normalize.Detect(raw) {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), o.String())
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), normalize.Text(raw))
			return err
		},
	}
	cmd.Flags().BoolVar(&report, "report", false, "list replaced characters on stderr")
	return cmd
}
