package api

// Row is one line of tabular input split into trimmed cells.
type Row []string

// Grid is the parsed table. Rows may be ragged until Pad is applied.
type Grid []Row

// MaxColumns returns the widest row's cell count.
func (g Grid) MaxColumns() int {
	n := 0
	for _, r := range g {
		if len(r) > n {
			n = len(r)
		}
	}
	return n
}

// Pad returns a copy of g where every row has MaxColumns cells,
// right-padded with empty strings. g itself is never modified.
func (g Grid) Pad() Grid {
	if len(g) == 0 {
		return Grid{}
	}
	cols := g.MaxColumns()
	out := make(Grid, len(g))
	for i, r := range g {
		row := make(Row, cols)
		copy(row, r)
		out[i] = row
	}
	return out
}

// Header returns row 0, or nil for an empty grid.
func (g Grid) Header() Row {
	if len(g) == 0 {
		return nil
	}
	return g[0]
}

// Body returns every row after the header.
func (g Grid) Body() []Row {
	if len(g) < 2 {
		return nil
	}
	return g[1:]
}

// Result is the outcome of one conversion: either Markdown or Err is meaningful.
type Result struct {
	Grid     Grid   `json:"grid"`
	Markdown string `json:"markdown"`
	Err      error  `json:"-"`
}

func (r Result) OK() bool { return r.Err == nil }

// Message returns the text destined for the output surface: the Markdown on
// success, otherwise the user guidance for the error.
func (r Result) Message() string {
	if r.Err != nil {
		return UserMessage(r.Err)
	}
	return r.Markdown
}
