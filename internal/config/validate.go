package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/mithrel/tabmd/internal/logging"
	"github.com/mithrel/tabmd/internal/markdown"
)

// CheckConfigValidity reports every invalid setting in v at once.
func CheckConfigValidity(v *viper.Viper) error {
	var err error

	if _, ok := markdown.ParseWidthMode(v.GetString("markdown.width_mode")); !ok {
		err = multierr.Append(err, fmt.Errorf("markdown.width_mode must be codepoint, grapheme or display"))
	}
	if !oneOf(v.GetString("output.format"), "markdown", "json", "pretty") {
		err = multierr.Append(err, fmt.Errorf("output.format must be markdown, json or pretty"))
	}
	if strings.TrimSpace(v.GetString("output.style")) == "" {
		err = multierr.Append(err, fmt.Errorf("output.style is required"))
	}
	if v.GetInt("output.wrap") < 0 {
		err = multierr.Append(err, fmt.Errorf("output.wrap must not be negative"))
	}
	if !oneOf(v.GetString("preview.format"), "table", "html") {
		err = multierr.Append(err, fmt.Errorf("preview.format must be table or html"))
	}
	if v.GetInt("tui.feedback_ms") <= 0 {
		err = multierr.Append(err, fmt.Errorf("tui.feedback_ms must be greater than 0"))
	}
	if _, lerr := logging.ParseLevel(v.GetString("log.level")); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("log.level: %w", lerr))
	}
	return err
}

func oneOf(s string, allowed ...string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// ValidateTOML checks a TOML document the way Load would see it, defaults
// included. Problems are reported together like CheckConfigValidity.
func ValidateTOML(content string) error {
	v := viper.New()
	applyDefaults(v)
	v.SetConfigType("toml")
	if err := v.ReadConfig(strings.NewReader(content)); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return CheckConfigValidity(v)
}
