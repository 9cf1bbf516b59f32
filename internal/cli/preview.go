package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mithrel/tabmd/internal/present"
)

const defaultPreviewWidth = 100

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render tab-separated stdin as a table",
		Long: `Render stdin the way the converter sees it: the first line is the
header, blank header cells are labelled "Column N" and numeric cells are
right-aligned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			mode, ok := present.ParsePreviewMode(strings.ToLower(app.Cfg.GetString("preview.format")))
			if !ok {
				return fmt.Errorf("unknown preview format %q", app.Cfg.GetString("preview.format"))
			}
			raw, err := readInput(cmd)
			if err != nil {
				return err
			}
			t := app.Converter.Preview(raw)
			out := cmd.OutOrStdout()
			width := terminalWidth(out)
			if mode == present.PreviewHTML {
				return present.RenderPreview(out, t, mode, width)
			}
			return withPager(cmd.Context(), out, cmd.ErrOrStderr(), func(w io.Writer) error {
				return present.RenderPreview(w, t, mode, width)
			})
		},
	}
	cmd.Flags().StringP("format", "f", "", "preview format: table|html")
	bindConfigFlag(cmd, "format", "preview.format")
	registerChoiceCompletion(cmd, "format", "table", "html")
	return cmd
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultPreviewWidth
}
