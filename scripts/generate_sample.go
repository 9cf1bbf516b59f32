package main

import (
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
	"strings"
)

// Emits a tab-separated table shaped like a spreadsheet paste: smart
// punctuation, emoji, ragged rows and blank cells included. Pipe it into
// tabmd to exercise the converter.
func main() {
	rows := flag.Int("rows", 25, "number of body rows")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(*seed))

	names := []string{"Alice", "Bob", "Chloé", "Dmitri", "Eun-ji", "François", "Grace", "Hiro"}
	notes := []string{
		"“on track”",
		"waiting – vendor",
		"it’s fine…",
		"needs review — urgent",
		"🚀 shipped",
		"👨‍👩‍👧 team",
		"a | b",
		"",
	}
	statuses := []string{"done", "open", "blocked", "n/a"}

	var b strings.Builder
	b.WriteString("Owner\tQty\tPrice\tStatus\tNotes\n")
	for i := 0; i < *rows; i++ {
		cells := []string{
			names[mr.Intn(len(names))],
			fmt.Sprintf("%d", mr.Intn(500)),
			fmt.Sprintf("%.2f", mr.Float64()*100),
			statuses[mr.Intn(len(statuses))],
			notes[mr.Intn(len(notes))],
		}
		// ~10% of rows are ragged, as when trailing cells were empty
		if mr.Float64() < 0.1 {
			cells = cells[:2+mr.Intn(3)]
		}
		b.WriteString(strings.Join(cells, "\t"))
		b.WriteString("\n")
	}

	if _, err := os.Stdout.WriteString(b.String()); err != nil {
		panic(err)
	}
}
