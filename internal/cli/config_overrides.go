package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mithrel/tabmd/internal/config"
)

// configKeyAnnotation binds a flag to a config key. A key prefixed with "!"
// receives the negated value of a bool flag.
const configKeyAnnotation = "tabmd/config-key"

// bindConfigFlag marks flag as an override for key.
func bindConfigFlag(cmd *cobra.Command, flag, key string) {
	_ = cmd.Flags().SetAnnotation(flag, configKeyAnnotation, []string{key})
}

// applyConfigFlagOverrides copies changed flags into v. Flags named after a
// config key apply directly; others apply through bindConfigFlag.
func applyConfigFlagOverrides(cmd *cobra.Command, v *viper.Viper) {
	known := make(map[string]bool)
	for _, opt := range config.GetConfigOptions() {
		known[opt.Key] = true
	}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if known[f.Name] {
			setFromFlag(cmd, v, f.Name, f.Name, false)
			return
		}
		keys := f.Annotations[configKeyAnnotation]
		if len(keys) == 0 {
			return
		}
		key, negate := strings.CutPrefix(keys[0], "!")
		setFromFlag(cmd, v, f.Name, key, negate)
	})
}

func setFromFlag(cmd *cobra.Command, v *viper.Viper, flagName, key string, negate bool) {
	switch cmd.Flags().Lookup(flagName).Value.Type() {
	case "bool":
		if val, err := cmd.Flags().GetBool(flagName); err == nil {
			v.Set(key, val != negate)
		}
	case "int":
		if val, err := cmd.Flags().GetInt(flagName); err == nil {
			v.Set(key, val)
		}
	default:
		if val, err := cmd.Flags().GetString(flagName); err == nil {
			v.Set(key, val)
		}
	}
}
