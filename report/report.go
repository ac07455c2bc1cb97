package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/starcodec/star/compress"
)

// Table renders headers and rows as an aligned table to w.
func Table(w io.Writer, headers []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	hdr := make(table.Row, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	t.AppendHeader(hdr)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, c := range r {
			row[i] = c
		}
		t.AppendRow(row)
	}

	t.Render()
}

// KeyValue renders a two-column, header-free summary block, used for the
// "Baseline:" / "Structural (STAR):" style sections the reference tooling
// prints.
func KeyValue(w io.Writer, title string, pairs [][2]string) {
	fmt.Fprintln(w, title)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false

	for _, p := range pairs {
		t.AppendRow(table.Row{"  " + p[0] + ":", p[1]})
	}

	t.Render()
}

// CompressionTable renders a side-by-side comparison of compressed size
// across the algorithms in reports, alongside each one's ratio against
// baselineSize (typically the raw input's byte count).
func CompressionTable(w io.Writer, reports []compress.Report, baselineSize int64) {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		ratio := "-"
		if baselineSize > 0 {
			ratio = fmt.Sprintf("%.4f", float64(r.CompressedSize)/float64(baselineSize))
		}
		rows = append(rows, []string{
			r.Algorithm.String(),
			fmt.Sprintf("%d", r.CompressedSize),
			fmt.Sprintf("%.4f", r.Ratio()),
			ratio,
		})
	}

	Table(w, []string{"algorithm", "compressed bytes", "ratio vs input", "ratio vs baseline"}, rows)
}
