// Package convert runs the whole pipeline: raw text is normalized, parsed
// into a grid and emitted as a Markdown table.
package convert

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/mithrel/tabmd/internal/markdown"
	"github.com/mithrel/tabmd/internal/normalize"
	"github.com/mithrel/tabmd/internal/preview"
	"github.com/mithrel/tabmd/internal/tabular"
	"github.com/mithrel/tabmd/pkg/api"
)

// Converter holds the emitter options and a logger for diagnostics.
// It keeps no state between calls.
type Converter struct {
	opts markdown.Options
	log  *zap.Logger
	emit func(api.Grid, markdown.Options) (string, error)
}

// New returns a Converter. A nil logger disables diagnostics.
func New(opts markdown.Options, log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{opts: opts, log: log, emit: markdown.Emit}
}

// Options returns the emitter options in use.
func (c *Converter) Options() markdown.Options { return c.opts }

// Grid normalizes and parses raw without emitting anything.
func (c *Converter) Grid(raw string) api.Grid {
	if occ := normalize.Detect(raw); len(occ) > 0 && c.log.Core().Enabled(zap.DebugLevel) {
		found := make([]string, len(occ))
		for i, o := range occ {
			found[i] = o.String()
		}
		c.log.Debug("special characters detected", zap.Int("count", len(occ)), zap.Strings("occurrences", found))
	}
	return tabular.Parse(normalize.Text(raw))
}

// Preview builds the live preview for raw. Empty input gives an empty table.
func (c *Converter) Preview(raw string) preview.Table {
	return preview.Build(c.Grid(raw))
}

// Convert produces the Markdown table for raw. Failures are reported in
// Result.Err and never panic.
func (c *Converter) Convert(raw string) api.Result {
	if strings.TrimSpace(raw) == "" {
		return api.Result{Grid: api.Grid{}, Err: api.ErrEmptyInput}
	}
	g := c.Grid(raw)
	if len(g) == 0 || len(g[0]) == 0 {
		return api.Result{Grid: g, Err: api.ErrInvalidFormat}
	}
	md, err := c.emit(g, c.opts)
	if err != nil {
		var ce *api.ConversionError
		if !errors.As(err, &ce) && !errors.Is(err, api.ErrEmptyInput) {
			err = &api.ConversionError{Err: err}
		}
		c.log.Warn("conversion failed", zap.Error(err), zap.Int("rows", len(g)))
		return api.Result{Grid: g, Err: err}
	}
	c.log.Debug("converted", zap.Int("rows", len(g)), zap.Int("columns", g.MaxColumns()))
	return api.Result{Grid: g, Markdown: md}
}

// Convert runs the pipeline with default options and no logging.
func Convert(raw string) api.Result {
	return New(markdown.DefaultOptions(), nil).Convert(raw)
}
