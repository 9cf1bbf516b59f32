package markdown

import (
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/mithrel/tabmd/pkg/api"
)

// ErrNoTable is returned by Inspect when the document holds no table.
var ErrNoTable = errors.New("no markdown table found")

// Shape is the size of a parsed table.
type Shape struct {
	Columns  int `json:"columns"`
	BodyRows int `json:"body_rows"`
}

var tableParser = goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()

// Inspect parses md as GitHub-flavoured Markdown and reports the shape of
// the first table in it.
func Inspect(md string) (Shape, error) {
	src := []byte(md)
	doc := tableParser.Parse(text.NewReader(src))

	var shape Shape
	found := false
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != east.KindTable {
			return ast.WalkContinue, nil
		}
		found = true
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch c.Kind() {
			case east.KindTableHeader:
				shape.Columns = c.ChildCount()
			case east.KindTableRow:
				shape.BodyRows++
			}
		}
		return ast.WalkStop, nil
	})
	if err != nil {
		return Shape{}, fmt.Errorf("inspect markdown: %w", err)
	}
	if !found {
		return Shape{}, ErrNoTable
	}
	return shape, nil
}

// Verify checks that md parses back into a table shaped like g.
func Verify(md string, g api.Grid) error {
	got, err := Inspect(md)
	if err != nil {
		return err
	}
	want := Shape{Columns: g.MaxColumns(), BodyRows: len(g.Body())}
	if got != want {
		return fmt.Errorf("table shape mismatch: got %d columns x %d rows, want %d x %d",
			got.Columns, got.BodyRows, want.Columns, want.BodyRows)
	}
	return nil
}
