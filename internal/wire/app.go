package wire

import (
	"context"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mithrel/tabmd/internal/clipboard"
	"github.com/mithrel/tabmd/internal/config"
	"github.com/mithrel/tabmd/internal/convert"
	"github.com/mithrel/tabmd/internal/logging"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg       *viper.Viper
	Log       *zap.Logger
	Converter *convert.Converter
	Clipboard clipboard.Writer

	flush func()
}

// BuildApp wires dependencies with the provided config. Call Close when done.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	if err := config.CheckConfigValidity(v); err != nil {
		return nil, err
	}
	logger, flush, err := logging.New(v.GetString("log.level"), v.GetString("log.file"))
	if err != nil {
		return nil, err
	}
	return &App{
		Cfg:       v,
		Log:       logger,
		Converter: convert.New(config.MarkdownOptions(v), logger),
		Clipboard: NewClipboard(v),
		flush:     flush,
	}, nil
}

// NewClipboard returns the system clipboard, falling back to OSC 52 on
// stderr when enabled.
func NewClipboard(v *viper.Viper) clipboard.Writer {
	chain := clipboard.Chain{clipboard.System{}}
	if v.GetBool("clipboard.osc52") {
		chain = append(chain, clipboard.OSC52{Out: os.Stderr, Tmux: os.Getenv("TMUX") != ""})
	}
	return chain
}

// ForTUI returns a copy of the app whose logger stays quiet unless a log
// file is configured, so log lines never land on the alternate screen.
func (a *App) ForTUI() *App {
	cp := *a
	if a.Cfg.GetString("log.file") == "" {
		cp.Log = zap.NewNop()
		cp.Converter = convert.New(a.Converter.Options(), cp.Log)
	}
	return &cp
}

// Close flushes the logger.
func (a *App) Close() {
	if a.flush != nil {
		a.flush()
	}
}
