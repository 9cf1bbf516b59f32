// Package logging builds the zap logger shared by the CLI and the TUI.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger at level writing to file, or to stderr when
// file is empty. The returned func flushes buffered entries.
func New(level, file string) (*zap.Logger, func(), error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	out := "stderr"
	if strings.TrimSpace(file) != "" {
		out = file
	}
	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Development:       false,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{out},
		ErrorOutputPaths:  []string{"stderr"},
	}
	cfg.EncoderConfig.NameKey = "logger"
	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	logger = logger.Named("tabmd")
	return logger, func() { _ = logger.Sync() }, nil
}

// ParseLevel accepts zap level names; empty means warn.
func ParseLevel(s string) (zapcore.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return zapcore.WarnLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(s))
	if err != nil {
		return lvl, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}
