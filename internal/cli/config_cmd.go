package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/mithrel/tabmd/internal/config"
)

// newConfigCmd groups commands that work on the config file itself. They
// skip app wiring so a broken file can still be checked and repaired.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage configuration",
		Annotations: map[string]string{skipAppAnnotation: ""},
	}
	cmd.AddCommand(newConfigGenerateCmd())
	cmd.AddCommand(newConfigCheckCmd())
	return cmd
}

func newConfigGenerateCmd() *cobra.Command {
	var out string
	var overwrite bool
	var update bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a default config.toml",
		Long: `Write config.toml with every option at its default.

--update keeps your values, adds missing options and comments out options
tabmd no longer knows. Values that would still be rejected are listed so
they can be fixed by hand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if overwrite && update {
				return fmt.Errorf("choose either --overwrite or --update")
			}
			return generateConfig(cmd, configTarget(cmd, out), overwrite, update)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path for config.toml")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing config (creates a backup)")
	cmd.Flags().BoolVar(&update, "update", false, "merge defaults into existing config (creates a backup)")
	return cmd
}

func newConfigCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the config file and environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if p, _ := cmd.Flags().GetString("config"); p != "" {
				v.SetConfigFile(p)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			used := v.ConfigFileUsed()
			if used == "" {
				used = "defaults"
			}
			if err := config.CheckConfigValidity(v); err != nil {
				reportProblems(cmd.ErrOrStderr(), used, err)
				return fmt.Errorf("%s: %d invalid setting(s)", used, len(multierr.Errors(err)))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", used)
			return nil
		},
	}
}

// configTarget picks the file to write: --output, then the global --config,
// then the standard location.
func configTarget(cmd *cobra.Command, out string) string {
	if out != "" {
		return out
	}
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.DefaultConfigPath()
}

func generateConfig(cmd *cobra.Command, path string, overwrite, update bool) error {
	exists := fileExists(path)
	if exists && !overwrite && !update {
		return fmt.Errorf("config already exists at %s; use --overwrite to replace (this will delete your current config) or --update to merge defaults", path)
	}

	content := config.RenderDefaultTOML()
	if update && exists {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		merged, changed := config.UpdateTOML(string(data))
		// Merging only adds defaults; values the user set are kept as is.
		if err := config.ValidateTOML(merged); err != nil {
			reportProblems(cmd.ErrOrStderr(), path, err)
		}
		if !changed {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config already up to date: %s\n", path)
			return nil
		}
		content = merged
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	var backupPath string
	if exists {
		var err error
		if backupPath, err = backupConfig(path); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	if backupPath != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Backup: %s\n", backupPath)
	}
	return nil
}

// reportProblems lists every invalid setting in err, one per line.
func reportProblems(w io.Writer, source string, err error) {
	_, _ = fmt.Fprintf(w, "%s has invalid settings:\n", source)
	for _, e := range multierr.Errors(err) {
		_, _ = fmt.Fprintf(w, "  - %v\n", e)
	}
}

func backupConfig(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := path + ".bak"
	if fileExists(backup) {
		backup = fmt.Sprintf("%s.bak-%s", path, time.Now().Format("20060102-150405"))
	}
	if err := os.WriteFile(backup, data, 0o600); err != nil {
		return "", err
	}
	return backup, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
