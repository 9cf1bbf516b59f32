package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// If SetConfigFile was provided upstream it takes precedence;
	// these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "tabmd"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tabmd"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	// Read config file if present (overrides defaults). A missing file in
	// the search paths is fine; a broken or missing explicit file is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: TABMD_* (highest among these sources)
	v.SetEnvPrefix("tabmd")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Normalize a few values post-merge
	v.Set("markdown.width_mode", strings.ToLower(strings.TrimSpace(v.GetString("markdown.width_mode"))))
	v.Set("output.format", strings.ToLower(strings.TrimSpace(v.GetString("output.format"))))
	v.Set("preview.format", strings.ToLower(strings.TrimSpace(v.GetString("preview.format"))))
	return nil
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "tabmd", "config.toml")
}
