package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mithrel/tabmd/internal/markdown"
	"github.com/mithrel/tabmd/internal/present"
	"github.com/mithrel/tabmd/pkg/api"
)

type convertFlags struct {
	verify bool
	copy   bool
}

// userError carries a conversion failure; its text is the guidance shown to
// the user while the typed cause stays reachable through errors.Is.
type userError struct {
	err error
}

func (e userError) Error() string { return api.UserMessage(e.err) }
func (e userError) Unwrap() error { return e.err }

func newConvertCmd() *cobra.Command {
	var f convertFlags
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert tab-separated stdin to a Markdown table",
		Example: `  pbpaste | tabmd convert
  tabmd convert --output json < sheet.tsv
  tabmd convert --compact --copy < sheet.tsv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, f)
		},
	}
	cmd.Flags().StringP("output", "o", "", "output format: markdown|json|pretty")
	cmd.Flags().String("width-mode", "", "cell width measure: codepoint|grapheme|display")
	cmd.Flags().Bool("compact", false, "do not pad cells")
	cmd.Flags().Bool("no-escape", false, "leave | inside cells unescaped")
	cmd.Flags().String("style", "", "glamour style for --output pretty")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "parse the result back and check its shape")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "also copy the table to the clipboard")
	bindConfigFlag(cmd, "output", "output.format")
	bindConfigFlag(cmd, "width-mode", "markdown.width_mode")
	bindConfigFlag(cmd, "compact", "!markdown.align")
	bindConfigFlag(cmd, "no-escape", "!markdown.escape_pipes")
	bindConfigFlag(cmd, "style", "output.style")
	registerChoiceCompletion(cmd, "output", "markdown", "json", "pretty")
	registerChoiceCompletion(cmd, "width-mode", "codepoint", "grapheme", "display")
	registerChoiceCompletion(cmd, "style", glamourStyles...)
	return cmd
}

func runConvert(cmd *cobra.Command, f convertFlags) error {
	app := getApp(cmd)
	v := app.Cfg
	mode, ok := present.ParseMode(strings.ToLower(v.GetString("output.format")))
	if !ok {
		return fmt.Errorf("unknown output format %q", v.GetString("output.format"))
	}

	raw, err := readInput(cmd)
	if err != nil {
		return err
	}
	res := app.Converter.Convert(raw)
	if !res.OK() {
		return userError{err: res.Err}
	}
	if f.verify {
		if err := markdown.Verify(res.Markdown, res.Grid); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
	}

	err = present.RenderResult(cmd.OutOrStdout(), res, present.Options{
		Mode:       mode,
		JSONIndent: true,
		Style:      v.GetString("output.style"),
		Wrap:       v.GetInt("output.wrap"),
	})
	if err != nil {
		return err
	}

	if f.copy {
		if err := app.Clipboard.WriteText(strings.TrimSpace(res.Markdown)); err != nil {
			app.Log.Warn("copy failed", zap.Error(err))
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: copy failed: %v\n", err)
		}
	}
	return nil
}
