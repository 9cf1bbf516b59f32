package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/tabmd/pkg/api"
)

// Document is the JSON form of a successful conversion.
type Document struct {
	Markdown string   `json:"markdown"`
	Rows     int      `json:"rows"`
	Columns  int      `json:"columns"`
	Digest   string   `json:"digest"`
	Grid     api.Grid `json:"grid"`
}

func NewDocument(res api.Result) Document {
	return Document{
		Markdown: res.Markdown,
		Rows:     len(res.Grid),
		Columns:  res.Grid.MaxColumns(),
		Digest:   res.Grid.Hash(),
		Grid:     res.Grid.Pad(),
	}
}

func WriteJSON(w io.Writer, res api.Result, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(NewDocument(res))
}
